// Package httpapi exposes the income tracker over an HTTP/JSON surface:
// auth endpoints, the income ledger, targets, and the summary queries.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/earntrack/internal/logging"
	"github.com/dmitrijs2005/earntrack/internal/server/services"
)

type Server struct {
	address   string
	logger    logging.Logger
	users     *services.UserService
	incomes   *services.IncomeService
	targets   *services.TargetService
	summaries *services.SummaryService
}

func NewServer(
	address string,
	logger logging.Logger,
	users *services.UserService,
	incomes *services.IncomeService,
	targets *services.TargetService,
	summaries *services.SummaryService,
) *Server {
	return &Server{
		address:   address,
		logger:    logger.With("module", "http_server"),
		users:     users,
		incomes:   incomes,
		targets:   targets,
		summaries: summaries,
	}
}

// Run serves the API until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:           s.address,
		Handler:        s.Routes(),
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 16,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "Server shutdown error", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
