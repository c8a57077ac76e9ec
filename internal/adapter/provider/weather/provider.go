// Package weather fetches current conditions from the OpenWeatherMap API.
package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/heartmarshall/studytrack-backend/internal/config"
)

// Defaults applied to queries without a location or language.
const (
	DefaultCity = "Tokyo"
	DefaultLang = "en"
)

const maxBodyBytes = 1 << 20

// ErrNotConfigured is returned when no API key is configured.
var ErrNotConfigured = errors.New("weather: api key not configured")

// UpstreamError reports a non-200 answer from the weather API.
type UpstreamError struct {
	Status  int
	Message string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("weather: upstream status %d: %s", e.Status, e.Message)
}

// Query selects the location. Lat and Lon win over City when both are set.
type Query struct {
	Lat  *float64
	Lon  *float64
	City string
	Lang string
}

// Report is the simplified current weather.
type Report struct {
	City        string  `json:"city"`
	Country     string  `json:"country"`
	Temp        int     `json:"temp"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
	Condition   string  `json:"condition"`
	Humidity    int     `json:"humidity"`
	WindSpeed   float64 `json:"windSpeed"`
}

// Provider calls the OpenWeatherMap current weather endpoint.
type Provider struct {
	baseURL     string
	apiKey      string
	defaultCity string
	defaultLang string
	httpClient  *http.Client
	retryDelay  time.Duration
	log         *slog.Logger
}

// NewProvider creates a Provider from config.
func NewProvider(cfg config.WeatherConfig, logger *slog.Logger) *Provider {
	p := &Provider{
		baseURL:     cfg.BaseURL,
		apiKey:      strings.TrimSpace(cfg.APIKey),
		defaultCity: cfg.DefaultCity,
		defaultLang: cfg.DefaultLang,
		httpClient:  &http.Client{Timeout: cfg.Timeout},
		retryDelay:  500 * time.Millisecond,
		log:         logger.With("adapter", "weather"),
	}
	if p.defaultCity == "" {
		p.defaultCity = DefaultCity
	}
	if p.defaultLang == "" {
		p.defaultLang = DefaultLang
	}
	return p
}

// Enabled reports whether the provider has an API key.
func (p *Provider) Enabled() bool { return p.apiKey != "" }

// Current returns the current weather for q.
func (p *Provider) Current(ctx context.Context, q Query) (*Report, error) {
	if !p.Enabled() {
		return nil, ErrNotConfigured
	}

	reqURL, err := p.buildURL(q)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("weather: create request: %w", err)
	}

	resp, err := p.doWithRetry(ctx, req)
	if err != nil {
		p.log.ErrorContext(ctx, "weather request failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("weather: request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("weather: read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr apiError
		_ = json.Unmarshal(body, &apiErr)
		if apiErr.Message == "" {
			apiErr.Message = http.StatusText(resp.StatusCode)
		}
		p.log.WarnContext(ctx, "weather upstream error",
			slog.Int("status", resp.StatusCode),
			slog.String("message", apiErr.Message))
		return nil, &UpstreamError{Status: resp.StatusCode, Message: apiErr.Message}
	}

	var data apiResponse
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("weather: decode json: %w", err)
	}

	return mapAPIResponse(data), nil
}

func (p *Provider) buildURL(q Query) (string, error) {
	u, err := url.Parse(p.baseURL)
	if err != nil {
		return "", fmt.Errorf("weather: parse base url: %w", err)
	}

	lang := strings.TrimSpace(q.Lang)
	if lang == "" {
		lang = p.defaultLang
	}

	params := u.Query()
	if q.Lat != nil && q.Lon != nil {
		params.Set("lat", strconv.FormatFloat(*q.Lat, 'f', -1, 64))
		params.Set("lon", strconv.FormatFloat(*q.Lon, 'f', -1, 64))
	} else {
		city := strings.TrimSpace(q.City)
		if city == "" {
			city = p.defaultCity
		}
		params.Set("q", city)
	}
	params.Set("units", "metric")
	params.Set("lang", lang)
	params.Set("appid", p.apiKey)
	u.RawQuery = params.Encode()

	return u.String(), nil
}

// doWithRetry executes the request with a single retry on 5xx or network errors.
func (p *Provider) doWithRetry(ctx context.Context, req *http.Request) (*http.Response, error) {
	resp, err := p.httpClient.Do(req)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry || ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil && resp != nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
	}
	p.log.WarnContext(ctx, "weather retry", slog.String("reason", reason))

	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	timer := time.NewTimer(p.retryDelay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-timer.C:
	}

	return p.httpClient.Do(req)
}

func mapAPIResponse(data apiResponse) *Report {
	r := &Report{
		City:      data.Name,
		Country:   data.Sys.Country,
		Temp:      roundHalfUp(data.Main.Temp),
		Humidity:  data.Main.Humidity,
		WindSpeed: data.Wind.Speed,
	}
	if len(data.Weather) > 0 {
		w := data.Weather[0]
		r.Description = w.Description
		r.Icon = w.Icon
		r.Condition = w.Main
	}
	return r
}

// roundHalfUp rounds x to the nearest integer, halves toward positive
// infinity, so -2.5 becomes -2.
func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}
