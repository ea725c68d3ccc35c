package rest

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"time"

	"github.com/Jaychaware/hrms-lite/internal"
)

type HealthStatus string

const (
	HealthOK          HealthStatus = "ok"
	HealthUnavailable HealthStatus = "unavailable"
)

type HealthResponse struct {
	Status     HealthStatus          `json:"status"`
	CheckedAt  time.Time             `json:"checked_at"`
	Components map[string]CheckEntry `json:"components"`
}

type CheckEntry struct {
	Status     HealthStatus `json:"status"`
	Message    string       `json:"message,omitempty"`
	DurationMs int64        `json:"duration_ms"`
}

type HealthHandler struct {
	db      *sql.DB
	timeout time.Duration
}

func NewHealthHandler(db *sql.DB) *HealthHandler {
	return &HealthHandler{db: db, timeout: internal.DefaultCheckTimeout}
}

// Ping reports liveness without touching the database.
func (h *HealthHandler) Ping(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": string(HealthOK)})
}

// Health reports readiness; 503 when the database does not answer.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := internal.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	start := time.Now()
	entry := CheckEntry{Status: HealthOK}
	if err := h.db.PingContext(ctx); err != nil {
		entry.Status = HealthUnavailable
		entry.Message = err.Error()
	}
	entry.DurationMs = time.Since(start).Milliseconds()

	status := http.StatusOK
	if entry.Status != HealthOK {
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, HealthResponse{
		Status:     entry.Status,
		CheckedAt:  time.Now().UTC(),
		Components: map[string]CheckEntry{"database": entry},
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
