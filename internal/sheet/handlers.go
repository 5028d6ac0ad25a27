package sheet

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/noah-isme/backend-quote/internal/catalog"
	"github.com/noah-isme/backend-quote/internal/common"
	"github.com/noah-isme/backend-quote/internal/pricing"
)

// Handler wires the sheet service to HTTP. Handlers only decode and coerce
// input and encode snapshots; all pricing logic lives in the service.
type Handler struct {
	Svc    *Service
	Panels []catalog.Panel
}

// Sheet returns the full sheet snapshot: rows, rates and totals.
func (h *Handler) Sheet(w http.ResponseWriter, r *http.Request) {
	if h.Svc == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "sheet service not configured", nil)
		return
	}
	totals := h.Svc.Totals()
	common.JSON(w, http.StatusOK, map[string]any{
		"data": map[string]any{
			"rows":      h.Svc.Rows(),
			"rates":     h.Svc.Rates(),
			"totals":    totals,
			"formatted": pricing.FormatTotals(totals),
		},
	})
}

// Catalog returns the service panels offered to the user.
func (h *Handler) Catalog(w http.ResponseWriter, _ *http.Request) {
	common.JSON(w, http.StatusOK, map[string]any{"data": h.Panels})
}

// Types returns the type dropdown contents with icons and quantity schemas.
func (h *Handler) Types(w http.ResponseWriter, _ *http.Request) {
	if h.Svc == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "sheet service not configured", nil)
		return
	}
	keys := h.Svc.Types(catalog.Flatten(h.Panels))
	types := make([]map[string]any, 0, len(keys))
	for _, key := range keys {
		types = append(types, map[string]any{
			"key":    key,
			"icon":   h.Svc.registry.IconFor(key),
			"schema": h.Svc.registry.SchemaFor(key),
		})
	}
	common.JSON(w, http.StatusOK, map[string]any{"data": types})
}

// CreateRow appends a row. An empty body adds a blank line; a catalog entry
// payload adds the clicked service with its type inferred when absent.
func (h *Handler) CreateRow(w http.ResponseWriter, r *http.Request) {
	if h.Svc == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "sheet service not configured", nil)
		return
	}
	var payload map[string]any
	_ = json.NewDecoder(r.Body).Decode(&payload)

	var (
		view   RowView
		totals pricing.Totals
	)
	if len(payload) == 0 {
		view, totals = h.Svc.AddBlank()
	} else {
		str := func(key string) string {
			s, _ := payload[key].(string)
			return s
		}
		view, totals = h.Svc.AddFromCatalog(catalog.Entry{
			Type:      str("type"),
			Icon:      str("icon"),
			Name:      str("name"),
			Panel:     str("panel"),
			UnitPrice: common.PriceDefault(payload["unitPrice"]),
			Currency:  str("currency"),
		})
	}
	common.JSON(w, http.StatusCreated, map[string]any{
		"data": map[string]any{"row": view, "totals": totals},
	})
}

// UpdateRow edits a row's name, price, currency or quantity factors.
func (h *Handler) UpdateRow(w http.ResponseWriter, r *http.Request) {
	if h.Svc == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "sheet service not configured", nil)
		return
	}
	var payload map[string]any
	_ = json.NewDecoder(r.Body).Decode(&payload)

	patch := RowPatch{}
	if v, ok := payload["name"]; ok {
		name, _ := v.(string)
		patch.Name = &name
	}
	if v, ok := payload["unitPrice"]; ok {
		patch.HasPrice = true
		patch.UnitPrice = v
	}
	if v, ok := payload["currency"]; ok {
		currency, _ := v.(string)
		patch.Currency = &currency
	}
	if v, ok := payload["factors"]; ok {
		if values, ok := v.([]any); ok {
			patch.Factors = make(map[int]any, len(values))
			for i, value := range values {
				if value != nil {
					patch.Factors[i] = value
				}
			}
		}
	}

	view, totals, err := h.Svc.UpdateRow(chi.URLParam(r, "id"), patch)
	if err != nil {
		h.writeError(w, err)
		return
	}
	common.JSON(w, http.StatusOK, map[string]any{
		"data": map[string]any{"row": view, "totals": totals},
	})
}

// ChangeType switches a row to a new canonical type, resetting its fields.
func (h *Handler) ChangeType(w http.ResponseWriter, r *http.Request) {
	if h.Svc == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "sheet service not configured", nil)
		return
	}
	var payload struct {
		Type string `json:"type"`
	}
	_ = json.NewDecoder(r.Body).Decode(&payload)

	view, totals, err := h.Svc.ChangeRowType(chi.URLParam(r, "id"), payload.Type)
	if err != nil {
		h.writeError(w, err)
		return
	}
	common.JSON(w, http.StatusOK, map[string]any{
		"data": map[string]any{"row": view, "totals": totals},
	})
}

// DeleteRow removes a row. Unknown ids still return 204: removal is idempotent.
func (h *Handler) DeleteRow(w http.ResponseWriter, r *http.Request) {
	if h.Svc == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "sheet service not configured", nil)
		return
	}
	h.Svc.RemoveRow(chi.URLParam(r, "id"))
	common.NoContent(w)
}

// PutRates replaces the conversion rates and returns the refreshed totals.
func (h *Handler) PutRates(w http.ResponseWriter, r *http.Request) {
	if h.Svc == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "sheet service not configured", nil)
		return
	}
	var payload struct {
		VNDPerUSD any `json:"vndPerUsd"`
		KRWPerUSD any `json:"krwPerUsd"`
	}
	_ = json.NewDecoder(r.Body).Decode(&payload)

	totals := h.Svc.SetRates(pricing.RateSet{
		VNDPerUSD: common.NumberDefault(payload.VNDPerUSD, 0),
		KRWPerUSD: common.NumberDefault(payload.KRWPerUSD, 0),
	})
	common.JSON(w, http.StatusOK, map[string]any{
		"data": map[string]any{"totals": totals, "formatted": pricing.FormatTotals(totals)},
	})
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrRowNotFound) {
		common.JSONError(w, http.StatusNotFound, "NOT_FOUND", "row not found", nil)
		return
	}
	common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "unable to update sheet", nil)
}
