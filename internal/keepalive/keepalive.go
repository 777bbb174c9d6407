package keepalive

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/whykushh/discord-panel-bot/internal/logger"
)

// Server exposes a minimal HTTP liveness endpoint so hosting platforms
// keep the bot process alive.
type Server struct {
	srv *http.Server
}

// New builds a keepalive server bound to the given address.
func New(listen string) *Server {
	r := mux.NewRouter()
	r.HandleFunc("/", handleRoot).Methods(http.MethodGet, http.MethodHead)
	r.HandleFunc("/healthz", handleRoot).Methods(http.MethodGet, http.MethodHead)

	return &Server{
		srv: &http.Server{
			Addr:              listen,
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       10 * time.Second,
			WriteTimeout:      10 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
	}
}

func handleRoot(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

// Start begins serving in a background goroutine. Listen failures are
// logged and never take the bot down.
func (s *Server) Start(ctx context.Context) {
	logger.Info(ctx, "http", "keepalive.start",
		slog.String("listen", s.srv.Addr),
	)
	go func() {
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error(ctx, "http", "keepalive.fail",
				slog.String("listen", s.srv.Addr),
				slog.String("err", err.Error()),
			)
		}
	}()
}

// Stop gracefully shuts the server down.
func (s *Server) Stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	err := s.srv.Shutdown(shutdownCtx)
	logger.Info(ctx, "http", "keepalive.stop",
		slog.String("status", logger.Status(err)),
	)
	return err
}

// Handler returns the HTTP handler for tests.
func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}
