package booking

import (
	"encoding/json"
	"net/http"

	"github.com/noah-isme/backend-quote/internal/common"
)

// Handler exposes the booking metadata form over HTTP.
type Handler struct {
	Store *Store
}

// Get returns the stored booking details.
func (h *Handler) Get(w http.ResponseWriter, _ *http.Request) {
	if h.Store == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "booking store not configured", nil)
		return
	}
	common.JSON(w, http.StatusOK, map[string]any{"data": h.Store.Get()})
}

// Put replaces the stored booking details.
func (h *Handler) Put(w http.ResponseWriter, r *http.Request) {
	if h.Store == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "booking store not configured", nil)
		return
	}
	var details Details
	_ = json.NewDecoder(r.Body).Decode(&details)
	common.JSON(w, http.StatusOK, map[string]any{"data": h.Store.Set(details)})
}
