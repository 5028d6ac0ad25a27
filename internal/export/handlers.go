package export

import (
	"net/http"

	"github.com/noah-isme/backend-quote/internal/booking"
	"github.com/noah-isme/backend-quote/internal/common"
	"github.com/noah-isme/backend-quote/internal/pricing"
	"github.com/noah-isme/backend-quote/internal/sheet"
)

// Handler renders the current sheet as a standalone HTML quotation.
type Handler struct {
	Renderer *Renderer
	Svc      *sheet.Service
	Booking  *booking.Store
}

// Page writes the quotation HTML for the current sheet state.
func (h *Handler) Page(w http.ResponseWriter, _ *http.Request) {
	if h.Renderer == nil || h.Svc == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "export not configured", nil)
		return
	}
	page := Page{
		Rows:   h.Svc.Rows(),
		Totals: pricing.FormatTotals(h.Svc.Totals()),
	}
	if h.Booking != nil {
		page.Booking = h.Booking.Get()
		if page.Booking.Brand != "" {
			page.Title = page.Booking.Brand + " — Quotation"
		}
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.Renderer.Render(w, page); err != nil {
		// Headers are already out; nothing useful left to send.
		return
	}
}
