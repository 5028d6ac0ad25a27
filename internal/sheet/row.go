package sheet

import (
	"github.com/noah-isme/backend-quote/internal/catalog"
	"github.com/noah-isme/backend-quote/internal/pricing"
)

// row is one mutable line item on the quotation sheet. Only the Service
// mutates rows; everything leaving the package is a RowView snapshot.
type row struct {
	id      string
	typeKey string
	icon    string
	name    string

	unitPrice float64
	currency  pricing.Currency

	// schema is bound once at creation and never changes, even when the
	// row's type changes later. The quantity input layout is a property of
	// the row, not of its current type.
	schema  []catalog.QuantityFactor
	factors []float64

	// Derived on every recompute.
	usdValue    float64
	nativeTotal float64
	display     string
}

func (r *row) resetForType(key, icon string) {
	r.typeKey = key
	r.icon = icon
	r.name = ""
	r.unitPrice = 0
	for i := range r.factors {
		r.factors[i] = 1
	}
}

func (r *row) line() pricing.Line {
	return pricing.Line{
		UnitPrice: r.unitPrice,
		Currency:  r.currency,
		Factors:   append([]float64(nil), r.factors...),
	}
}

// FactorView pairs a quantity value with the role and label its schema slot
// defines.
type FactorView struct {
	Role  string  `json:"role"`
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// RowView is the immutable snapshot of a row handed to callers and rendered
// by the presentation layer.
type RowView struct {
	ID        string           `json:"id"`
	Type      string           `json:"type"`
	Icon      string           `json:"icon"`
	Name      string           `json:"name"`
	UnitPrice float64          `json:"unitPrice"`
	Currency  pricing.Currency `json:"currency"`
	Factors   []FactorView     `json:"factors"`
	Total     string           `json:"total"`
	USDValue  float64          `json:"usdValue"`
}

func (r *row) view() RowView {
	factors := make([]FactorView, len(r.schema))
	for i, f := range r.schema {
		factors[i] = FactorView{Role: f.Role, Label: f.Label, Value: r.factors[i]}
	}
	typeKey := r.typeKey
	if typeKey == "" {
		// Stored keys stay verbatim; only the rendered label falls back.
		typeKey = catalog.OtherKey
	}
	return RowView{
		ID:        r.id,
		Type:      typeKey,
		Icon:      r.icon,
		Name:      r.name,
		UnitPrice: r.unitPrice,
		Currency:  r.currency,
		Factors:   factors,
		Total:     r.display,
		USDValue:  r.usdValue,
	}
}
