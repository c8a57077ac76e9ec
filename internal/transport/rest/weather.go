package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/studytrack-backend/internal/adapter/provider/weather"
	"github.com/heartmarshall/studytrack-backend/internal/domain"
)

type weatherProvider interface {
	Current(ctx context.Context, q weather.Query) (*weather.Report, error)
}

// WeatherHandler proxies current conditions from the weather provider.
type WeatherHandler struct {
	provider weatherProvider
	log      *slog.Logger
}

// NewWeatherHandler creates a new WeatherHandler.
func NewWeatherHandler(provider weatherProvider, logger *slog.Logger) *WeatherHandler {
	return &WeatherHandler{provider: provider, log: logger.With("handler", "weather")}
}

// Current handles GET /api/weather.
func (h *WeatherHandler) Current(w http.ResponseWriter, r *http.Request) {
	var errs []domain.FieldError
	q := weather.Query{
		Lat:  queryFloat(r, "lat", &errs),
		Lon:  queryFloat(r, "lon", &errs),
		City: r.URL.Query().Get("city"),
		Lang: r.URL.Query().Get("lang"),
	}
	if len(errs) > 0 {
		writeServiceError(h.log, w, r, domain.NewValidationErrors(errs))
		return
	}

	report, err := h.provider.Current(r.Context(), q)
	if err != nil {
		var upstream *weather.UpstreamError
		switch {
		case errors.Is(err, weather.ErrNotConfigured):
			writeError(w, http.StatusServiceUnavailable, "weather service is not configured")
		case errors.As(err, &upstream) && upstream.Status >= 400 && upstream.Status < 600:
			writeError(w, upstream.Status, upstream.Message)
		default:
			h.log.WarnContext(r.Context(), "weather lookup failed", slog.String("error", err.Error()))
			writeError(w, http.StatusBadGateway, "failed to fetch weather data")
		}
		return
	}
	writeJSON(w, http.StatusOK, report)
}
