package pricing

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Printers for the locales the sheet renders in. Grouping separators follow
// each locale: 1,234.56 for en-US, 1.234 for vi-VN, 1,234 for ko-KR.
var (
	usdPrinter = message.NewPrinter(language.AmericanEnglish)
	vndPrinter = message.NewPrinter(language.Vietnamese)
	krwPrinter = message.NewPrinter(language.Korean)
)

// Format renders a monetary value in the given currency with its symbol and
// locale-correct digits: USD keeps two decimals, VND and KRW none. Undefined
// values render as zero so a degenerate computation still displays.
func Format(c Currency, v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}
	switch c {
	case VND:
		return vndPrinter.Sprintf("%v ₫", number.Decimal(v, number.MaxFractionDigits(0)))
	case KRW:
		return krwPrinter.Sprintf("₩%v", number.Decimal(v, number.MaxFractionDigits(0)))
	default:
		return usdPrinter.Sprintf("$%v", number.Decimal(v,
			number.MinFractionDigits(2), number.MaxFractionDigits(2)))
	}
}

// FormatTotals renders a totals snapshot in all three display currencies.
func FormatTotals(t Totals) map[string]string {
	return map[string]string{
		"usd": Format(USD, t.USD),
		"vnd": Format(VND, t.VND),
		"krw": Format(KRW, t.KRW),
	}
}
