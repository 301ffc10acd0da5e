// Package httpapi exposes the HTTP/JSON surface: registration and login,
// session save/list, video upload/list. Every protected route goes through
// the single token-validation middleware before touching any data.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/poseform/formtrack/internal/logging"
	"github.com/poseform/formtrack/internal/server/config"
	"github.com/poseform/formtrack/internal/server/sessions"
	"github.com/poseform/formtrack/internal/server/users"
	"github.com/poseform/formtrack/internal/server/videos"
)

type Server struct {
	address        string
	logger         logging.Logger
	users          *users.Service
	sessions       *sessions.Service
	videos         *videos.Service
	jwtSecret      []byte
	maxUploadBytes int64
}

func NewServer(cfg *config.Config, l logging.Logger, us *users.Service, ss *sessions.Service, vs *videos.Service) *Server {
	return &Server{
		address:        cfg.EndpointAddr,
		logger:         l.With("module", "http_server"),
		users:          us,
		sessions:       ss,
		videos:         vs,
		jwtSecret:      []byte(cfg.SecretKey),
		maxUploadBytes: cfg.MaxUploadBytes,
	}
}

// Handler builds the route table. Split out from Run so tests can drive the
// full stack through httptest.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /auth/register", s.handleRegister)
	mux.HandleFunc("POST /auth/login", s.handleLogin)
	mux.HandleFunc("GET /auth/user/{id}", s.requireAuth(s.handleGetUser))

	mux.HandleFunc("POST /session", s.requireAuth(s.handleCreateSession))
	mux.HandleFunc("GET /session/{userId}", s.requireAuth(s.handleListSessions))

	mux.HandleFunc("POST /api/upload", s.requireAuth(s.handleUpload))
	mux.HandleFunc("GET /videos", s.requireAuth(s.handleListVideos))

	return mux
}

func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
