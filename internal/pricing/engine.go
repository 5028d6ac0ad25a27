package pricing

import (
	"math"
	"strings"
)

// Currency is one of the three currencies a line item can be priced in.
type Currency string

// Supported currencies.
const (
	USD Currency = "USD"
	VND Currency = "VND"
	KRW Currency = "KRW"
)

// ParseCurrency maps free-form input to a supported currency, defaulting to USD.
func ParseCurrency(s string) Currency {
	switch Currency(strings.ToUpper(strings.TrimSpace(s))) {
	case VND:
		return VND
	case KRW:
		return KRW
	default:
		return USD
	}
}

// RateSet carries the externally supplied conversion rates from USD to the
// secondary currencies. Zero is a valid, degenerate rate.
type RateSet struct {
	VNDPerUSD float64 `json:"vndPerUsd"`
	KRWPerUSD float64 `json:"krwPerUsd"`
}

// Sanitize clamps bad rate input to zero so conversion stays defined.
func (r RateSet) Sanitize() RateSet {
	return RateSet{
		VNDPerUSD: sanitizeRate(r.VNDPerUSD),
		KRWPerUSD: sanitizeRate(r.KRWPerUSD),
	}
}

func sanitizeRate(rate float64) float64 {
	if rate < 0 || math.IsNaN(rate) || math.IsInf(rate, 0) {
		return 0
	}
	return rate
}

// Line is the pricing input for one row.
type Line struct {
	UnitPrice float64
	Currency  Currency
	Factors   []float64
}

// Result carries the computed values for one line: the quantity product, the
// USD-normalized value used for aggregation, the face-value total in the
// line's own currency, and its formatted display string.
type Result struct {
	Quantity    float64
	USDValue    float64
	NativeTotal float64
	Display     string
}

// Compute derives a line result from the price, currency, rates and quantity
// factors. Quantity is the product of all factors, each floored at 1: a
// fractional or non-positive factor counts as 1, so a quantity never shrinks
// a line total. Only the USD value is converted; the display total stays in
// the currency the user priced in. A rate of zero yields a zero USD value
// instead of dividing by zero.
func Compute(l Line, rates RateSet) Result {
	rates = rates.Sanitize()
	qty := 1.0
	for _, f := range l.Factors {
		if f < 1 || math.IsNaN(f) || math.IsInf(f, 0) {
			f = 1
		}
		qty *= f
	}
	price := l.UnitPrice
	if price < 0 || math.IsNaN(price) || math.IsInf(price, 0) {
		price = 0
	}
	native := price * qty

	res := Result{Quantity: qty, NativeTotal: native}
	switch l.Currency {
	case VND:
		if rates.VNDPerUSD > 0 {
			res.USDValue = price / rates.VNDPerUSD * qty
		}
		res.Display = Format(VND, native)
	case KRW:
		if rates.KRWPerUSD > 0 {
			res.USDValue = price / rates.KRWPerUSD * qty
		}
		res.Display = Format(KRW, native)
	default:
		res.USDValue = native
		res.Display = Format(USD, native)
	}
	return res
}

// Totals is the multi-currency grand total snapshot.
type Totals struct {
	USD float64 `json:"usdTotal"`
	VND float64 `json:"vndTotal"`
	KRW float64 `json:"krwTotal"`
}

// Aggregate sums USD-normalized line values and converts the sum to each
// display currency. It tolerates an empty slice and zero rates.
func Aggregate(usdValues []float64, rates RateSet) Totals {
	rates = rates.Sanitize()
	var usd float64
	for _, v := range usdValues {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		usd += v
	}
	return Totals{
		USD: usd,
		VND: usd * rates.VNDPerUSD,
		KRW: usd * rates.KRWPerUSD,
	}
}
