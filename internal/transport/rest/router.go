package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/studytrack-backend/internal/config"
	"github.com/heartmarshall/studytrack-backend/internal/transport/middleware"
)

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (uuid.UUID, error)
}

// RouterDeps bundles everything NewRouter mounts.
type RouterDeps struct {
	Logger    *slog.Logger
	Tokens    tokenValidator
	Health    *HealthHandler
	Auth      *AuthHandler
	Records   *RecordHandler
	Weather   *WeatherHandler
	CORS      config.CORSConfig
	RateLimit config.RateLimitConfig
	Upload    config.UploadConfig
}

// NewRouter builds the HTTP API.
func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recovery(d.Logger),
		middleware.RequestID,
		middleware.Logger(d.Logger),
		middleware.Metrics(),
		middleware.CORS(d.CORS),
	)

	r.Get("/live", d.Health.Live)
	r.Get("/ready", d.Health.Ready)
	r.Get("/health", d.Health.Health)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				if d.RateLimit.AuthRequestsPerMinute > 0 {
					r.Use(middleware.RateLimit(d.RateLimit.AuthRequestsPerMinute, time.Minute))
				}
				r.Post("/register", d.Auth.Register)
				r.Post("/login", d.Auth.Login)
			})
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAuth(d.Tokens))
				r.Get("/me", d.Auth.Me)
				r.Put("/update", d.Auth.UpdateProfile)
				r.Post("/upload-avatar", d.Auth.UploadAvatar)
			})
		})

		r.Route("/records", func(r chi.Router) {
			r.Use(middleware.RequireAuth(d.Tokens))
			r.Get("/", d.Records.List)
			r.Post("/", d.Records.Create)
			r.Get("/stats", d.Records.Stats)
			r.Get("/leaderboard", d.Records.Leaderboard)
			r.Get("/score", d.Records.Score)
			r.Get("/{id}", d.Records.Get)
			r.Put("/{id}", d.Records.Update)
			r.Delete("/{id}", d.Records.Delete)
		})

		// Public; a token is optional and only attributes the request.
		r.With(middleware.Auth(d.Tokens)).Get("/weather", d.Weather.Current)
	})

	if d.Upload.Dir != "" {
		prefix := "/" + strings.Trim(d.Upload.URLPrefix, "/")
		files := http.StripPrefix(prefix, http.FileServer(http.Dir(d.Upload.Dir)))
		r.Method(http.MethodGet, prefix+"/*", files)
	}

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	return r
}
