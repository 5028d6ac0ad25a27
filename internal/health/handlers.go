package health

import (
	"encoding/json"
	"net/http"
	"time"
)

// Handler exposes HTTP handlers for health endpoints. The sheet holds no
// external dependencies, so readiness only reports process uptime.
type Handler struct {
	StartedAt time.Time
}

// Live reports liveness status.
func (h Handler) Live(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// Ready reports readiness status.
func (h Handler) Ready(w http.ResponseWriter, _ *http.Request) {
	status := map[string]string{"status": "ok"}
	if !h.StartedAt.IsZero() {
		status["uptime"] = time.Since(h.StartedAt).Truncate(time.Second).String()
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(status)
}
