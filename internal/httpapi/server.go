package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/PacMac-Mobile-LLC/Velour-sub002/internal/auth"
	apimw "github.com/PacMac-Mobile-LLC/Velour-sub002/internal/httpapi/middleware"
)

type Server struct {
	logger  *zap.Logger
	auth    *auth.Service
	started time.Time
}

func NewServer(l *zap.Logger, a *auth.Service) *Server {
	return &Server{logger: l, auth: a, started: time.Now()}
}

type RouterOptions struct {
	FrontendURL string // CORS allow-list entry; empty allows all (dev)
	AuthRPM     int    // per-IP requests/minute on /api/auth; 0 disables
	AuthBurst   int
}

func (s *Server) Router(opts RouterOptions) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(corsHandler(opts.FrontendURL))

	// liveness must not depend on anything else; no auth, no rate limit
	r.Get("/api/ping", s.handlePing)

	r.Route("/api/auth", func(r chi.Router) {
		r.Use(apimw.RateLimit(opts.AuthRPM, opts.AuthBurst))
		r.Get("/test", s.handleAuthTest)
		r.Post("/register", s.handleRegister)
	})

	return r
}

func corsHandler(frontendURL string) func(http.Handler) http.Handler {
	if frontendURL == "" {
		return cors.AllowAll().Handler
	}
	return cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	})
}
