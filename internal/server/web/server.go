// Package web exposes the dashboard page and the JSON API the dashboard
// talks to.
package web

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/autoblog/internal/logging"
	"github.com/dmitrijs2005/autoblog/internal/server/services"
)

// Server serves the dashboard and its API over HTTP.
type Server struct {
	address     string
	logger      logging.Logger
	credentials *services.CredentialService
	pipeline    *services.PipelineService
	posts       *services.PostService
	scheduler   *services.SchedulerService
}

// NewServer constructs a Server bound to the given address.
func NewServer(address string, l logging.Logger, c *services.CredentialService, pl *services.PipelineService, ps *services.PostService, sch *services.SchedulerService) *Server {
	return &Server{
		address:     address,
		logger:      l.With("module", "http_server"),
		credentials: c,
		pipeline:    pl,
		posts:       ps,
		scheduler:   sch,
	}
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.address,
		Handler: s.routes(),

		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
