package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/jonboulle/clockwork"
)

const pingTimeout = 3 * time.Second

type dbPinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves liveness, readiness and detailed health probes.
type HealthHandler struct {
	db             dbPinger
	version        string
	weatherEnabled bool
	clock          clockwork.Clock
	started        time.Time
}

// NewHealthHandler creates a HealthHandler. A nil clock uses wall time.
func NewHealthHandler(db dbPinger, version string, weatherEnabled bool, clock clockwork.Clock) *HealthHandler {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &HealthHandler{
		db:             db,
		version:        version,
		weatherEnabled: weatherEnabled,
		clock:          clock,
		started:        clock.Now(),
	}
}

// HealthResponse is the JSON body of every probe.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Uptime     string                `json:"uptime,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of one dependency.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live always answers 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: h.clock.Now()})
}

// Ready answers 503 while the database is unreachable.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	db := h.pingDB(r.Context())
	status := http.StatusOK
	if db.Status != "ok" {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, HealthResponse{Status: db.Status, Timestamp: h.clock.Now()})
}

// Health reports every component. Only the database decides the overall
// status; an unconfigured weather key is reported as "disabled".
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	db := h.pingDB(r.Context())

	weatherStatus := "disabled"
	if h.weatherEnabled {
		weatherStatus = "ok"
	}

	status := http.StatusOK
	if db.Status != "ok" {
		status = http.StatusServiceUnavailable
	}

	now := h.clock.Now()
	writeJSON(w, status, HealthResponse{
		Status:  db.Status,
		Version: h.version,
		Uptime:  now.Sub(h.started).Truncate(time.Second).String(),
		Components: map[string]CompStatus{
			"database": db,
			"weather":  {Status: weatherStatus},
		},
		Timestamp: now,
	})
}

func (h *HealthHandler) pingDB(ctx context.Context) CompStatus {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	start := time.Now()
	if err := h.db.Ping(ctx); err != nil {
		return CompStatus{Status: "down"}
	}
	return CompStatus{Status: "ok", Latency: time.Since(start).String()}
}
