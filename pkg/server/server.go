package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	feedbackhandlers "github.com/greensphere/payoff/pkg/handlers/feedback"
	payoffhandlers "github.com/greensphere/payoff/pkg/handlers/payoff"
	payoffmiddleware "github.com/greensphere/payoff/pkg/server/middleware"
	"github.com/greensphere/payoff/pkg/services/analysis"
	"github.com/greensphere/payoff/pkg/services/feedback"
)

const defaultShutdownTimeout = 10 * time.Second

type WebAPI struct {
	router          http.Handler
	logger          *zerolog.Logger
	server          *http.Server
	shutdownTimeout time.Duration
}

type Dependencies struct {
	Analysis analysis.Service
	Feedback feedback.Service
	Logger   zerolog.Logger
}

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	Dependencies    Dependencies
}

func ConfigureRouter(config Config) *chi.Mux {
	payoffHandler := payoffhandlers.NewHandler(config.Dependencies.Analysis)
	feedbackHandler := feedbackhandlers.NewHandler(config.Dependencies.Feedback)

	router := chi.NewRouter()

	router.Use(payoffmiddleware.Logger(&config.Dependencies.Logger))
	router.Use(middleware.Recoverer)

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/sources", payoffHandler.ListSources)
		r.Get("/sources/{source}/payoff", payoffHandler.GetPayoff)
		r.Post("/reports", payoffHandler.CreateReport)

		r.Route("/users/{user}", func(r chi.Router) {
			r.Get("/analyses", payoffHandler.ListAnalyses)
			r.Post("/analyses", payoffHandler.SaveAnalysis)
			r.Get("/feedback", feedbackHandler.List)
			r.Post("/feedback", feedbackHandler.Submit)
		})
	})

	return router
}

func NewWebAPI(config Config) *WebAPI {
	router := ConfigureRouter(config)
	logger := config.Dependencies.Logger

	timeout := config.ShutdownTimeout
	if timeout <= 0 {
		timeout = defaultShutdownTimeout
	}

	return &WebAPI{
		router:          router,
		logger:          &logger,
		shutdownTimeout: timeout,
		server: &http.Server{
			Addr:              config.Addr,
			Handler:           router,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

func (w *WebAPI) Start() error {
	serverErrors := make(chan error, 1)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		w.logger.Info().Str("addr", w.server.Addr).Msg("starting server")
		serverErrors <- w.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-shutdown:
		w.logger.Info().Msg("shutdown initiated")

		// Give outstanding requests a deadline for completion.
		ctx, cancel := context.WithTimeout(context.Background(), w.shutdownTimeout)
		defer cancel()

		err := w.server.Shutdown(ctx)
		if err != nil {
			w.logger.Error().Err(err).Msg("graceful shutdown failed")
			err = w.server.Close()
		}

		if err != nil {
			return err
		}
	}

	return nil
}
