package payoff

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/greensphere/payoff/pkg/adapters"
	"github.com/greensphere/payoff/pkg/models/api"
	"github.com/greensphere/payoff/pkg/models/domain"
	"github.com/greensphere/payoff/pkg/services/analysis"
	payoffsvc "github.com/greensphere/payoff/pkg/services/payoff"
)

const (
	defaultCount = 1
	maxBodyBytes = 1 << 20
)

type Handler struct {
	analysis analysis.Service
}

func NewHandler(svc analysis.Service) *Handler {
	return &Handler{analysis: svc}
}

func (h *Handler) ListSources(w http.ResponseWriter, r *http.Request) {
	response := []api.SourceProfile{}
	for _, p := range h.analysis.Sources() {
		response = append(response, adapters.MapProfileDomainToApi(p))
	}
	writeJSON(w, r, http.StatusOK, response)
}

func (h *Handler) GetPayoff(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	source := chi.URLParam(r, "source")

	count := defaultCount
	if raw := r.URL.Query().Get("count"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			http.Error(w, "invalid 'count', expected a non-negative integer", http.StatusBadRequest)
			return
		}
		count = n
	}

	res, err := h.analysis.Compute(ctx, domain.SourceID(source), count)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, adapters.MapPayoffResultDomainToApi(res))
}

func (h *Handler) CreateReport(w http.ResponseWriter, r *http.Request) {
	selection, ok := decodeSelection(w, r)
	if !ok {
		return
	}

	result, err := h.analysis.Evaluate(r.Context(), selection)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, adapters.MapAggregateReportDomainToApi(result.Report))
}

func (h *Handler) SaveAnalysis(w http.ResponseWriter, r *http.Request) {
	user := chi.URLParam(r, "user")
	selection, ok := decodeSelection(w, r)
	if !ok {
		return
	}

	saved, err := h.analysis.Save(r.Context(), user, selection)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, adapters.MapSavedAnalysisDomainToApi(*saved))
}

func (h *Handler) ListAnalyses(w http.ResponseWriter, r *http.Request) {
	user := chi.URLParam(r, "user")

	saved, err := h.analysis.ListSaved(r.Context(), user)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, adapters.MapSavedAnalysisDomainToApi(*saved))
}

func decodeSelection(w http.ResponseWriter, r *http.Request) (domain.Selection, bool) {
	var req api.SelectionRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return nil, false
	}
	return adapters.MapSelectionApiToDomain(req.Selection), true
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, payoffsvc.ErrUnknownSource):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, payoffsvc.ErrNegativeCount),
		errors.Is(err, analysis.ErrMissingUser),
		errors.Is(err, analysis.ErrEmptySelection):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("request failed")
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zerolog.Ctx(r.Context()).Error().
			Err(err).
			Msg("failed to encode response")
	}
}
