package http

// this is entry point of the http request handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"

	"gitlab.com/codearena-2025.net/internal/config"
	"gitlab.com/codearena-2025.net/internal/core/ports/primary"
	"gitlab.com/codearena-2025.net/internal/core/services/submission"
	"gitlab.com/codearena-2025.net/internal/handlers"
	"gitlab.com/codearena-2025.net/internal/handlers/submissions"
)

type ServiceProvider struct {
	submissionService submission.ISubmissionService
}

func NewServiceProvider(submissionService submission.ISubmissionService) *ServiceProvider {
	return &ServiceProvider{
		submissionService: submissionService,
	}
}

type Server struct {
	router          *mux.Router
	srv             *http.Server
	Port            int
	ServiceName     string
	ServiceProvider ServiceProvider
	cfg             *config.AppConfig
	logger          primary.Logger
}

func NewServer(port int, serviceName string, serviceProvider ServiceProvider, cfg *config.AppConfig, logger primary.Logger) *Server {
	return &Server{
		Port:            port,
		ServiceName:     serviceName,
		ServiceProvider: serviceProvider,
		cfg:             cfg,
		logger:          logger,
	}
}

func (s *Server) Init() error {
	r := mux.NewRouter()

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}).Methods("GET")

	// Everything under /api is service-to-service; healthz stays open.
	api := r.PathPrefix("/api").Subrouter()
	if s.cfg.JwtConfig.Secret != "" {
		api.Use(handlers.New(s.cfg.JwtConfig.Secret).JWTMiddleware)
	}

	submissions.
		NewSubmissionHandler(s.ServiceProvider.submissionService, s.cfg.JudgeConfig, s.logger).
		RegisterRoutes(api)

	s.router = r
	return nil
}

func (s *Server) Start(ctx context.Context) {
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	s.srv = srv

	go func() {
		s.logger.Info("Server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("Server error", "error", err)
			os.Exit(1)
		}
	}()
}

func (s *Server) Stop(ctx context.Context) {
	s.logger.Info("Shutting down http server...")
	if s.srv == nil {
		return
	}
	if err := s.srv.Shutdown(ctx); err != nil {
		s.logger.Error("Server forced to shutdown", "error", err)
	}
}
