package feedback

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/greensphere/payoff/pkg/adapters"
	"github.com/greensphere/payoff/pkg/models/api"
	"github.com/greensphere/payoff/pkg/models/domain"
	feedbacksvc "github.com/greensphere/payoff/pkg/services/feedback"
)

type Handler struct {
	feedback feedbacksvc.Service
}

func NewHandler(svc feedbacksvc.Service) *Handler {
	return &Handler{feedback: svc}
}

func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	user := chi.URLParam(r, "user")

	var req api.FeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	fb, err := h.feedback.Submit(ctx, domain.Feedback{
		UserID:  user,
		Rating:  req.Rating,
		Message: req.Message,
	})
	if err != nil {
		if errors.Is(err, feedbacksvc.ErrInvalidFeedback) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		logger.Error().Err(err).Str("user", user).Msg("failed to store feedback")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(adapters.MapFeedbackDomainToApi(fb)); err != nil {
		logger.Error().
			Err(err).
			Str("user", user).
			Msg("failed to encode feedback")
	}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	user := chi.URLParam(r, "user")

	items, err := h.feedback.List(ctx, user)
	if err != nil {
		if errors.Is(err, feedbacksvc.ErrInvalidFeedback) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		logger.Error().Err(err).Str("user", user).Msg("failed to list feedback")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	response := []api.Feedback{}
	for _, fb := range items {
		response = append(response, adapters.MapFeedbackDomainToApi(fb))
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error().
			Err(err).
			Str("user", user).
			Msg("failed to encode feedback")
	}
}
