// Package httpapi exposes the nutritrack services as a JSON HTTP API.
// Every response uses the Envelope shape; errors carry a stable code.
package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/nutritrack/internal/logging"
	"github.com/dmitrijs2005/nutritrack/internal/server/services"
	"github.com/gorilla/mux"
)

type Server struct {
	addr            string
	logger          logging.Logger
	handler         http.Handler
	shutdownTimeout time.Duration
}

func NewServer(addr string, logger logging.Logger, auth *services.AuthService, records *services.RecordService, verifier TokenVerifier, shutdownTimeout time.Duration) *Server {
	return &Server{
		addr:            addr,
		logger:          logger,
		handler:         NewRouter(logger, auth, records, verifier),
		shutdownTimeout: shutdownTimeout,
	}
}

// NewRouter wires routes and middleware. Exposed for tests.
func NewRouter(logger logging.Logger, auth *services.AuthService, records *services.RecordService, verifier TokenVerifier) http.Handler {
	h := &handlers{auth: auth, records: records, today: utcToday}

	r := mux.NewRouter()
	r.Use(RequestLogger(logger))
	r.Use(Recover(logger))

	r.HandleFunc("/ping", h.ping).Methods(http.MethodGet)

	r.HandleFunc("/auth/login", h.login).Methods(http.MethodPost)
	r.HandleFunc("/auth/register", h.register).Methods(http.MethodPost)
	r.HandleFunc("/auth/refresh", h.refresh).Methods(http.MethodPost)
	r.Handle("/auth/logout", OptionalAuth(verifier)(http.HandlerFunc(h.logout))).Methods(http.MethodPost)

	authed := func(f http.HandlerFunc) http.Handler { return RequireAuth(verifier)(f) }
	r.Handle("/profile", authed(h.profile)).Methods(http.MethodGet)
	r.Handle("/meals", authed(h.listMeals)).Methods(http.MethodGet)
	r.Handle("/meals", authed(h.addMeal)).Methods(http.MethodPost)
	r.Handle("/workouts", authed(h.listWorkouts)).Methods(http.MethodGet)
	r.Handle("/workouts", authed(h.addWorkout)).Methods(http.MethodPost)
	r.Handle("/stats/daily", authed(h.dailyStats)).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, CodeNotFound, "route not found")
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, CodeValidation, "method not allowed")
	})

	return r
}

// Run serves until ctx is cancelled, then drains in-flight requests for
// at most the shutdown timeout.
func (s *Server) Run(ctx context.Context) error {
	lis, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info(ctx, "HTTP server listening", "addr", lis.Addr().String())
		if err := srv.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		return err
	}

	s.logger.Info(ctx, "Shutting down HTTP server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
