package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/noah-isme/backend-quote/internal/booking"
	"github.com/noah-isme/backend-quote/internal/catalog"
	"github.com/noah-isme/backend-quote/internal/pricing"
	"github.com/noah-isme/backend-quote/internal/sheet"
)

func TestRenderQuotationPage(t *testing.T) {
	svc := sheet.NewService(sheet.Config{Rates: pricing.RateSet{VNDPerUSD: 25_000}})
	svc.AddFromCatalog(catalog.Entry{Type: "골프", Name: "Long Thanh", UnitPrice: 95, Currency: "USD"})
	svc.AddFromCatalog(catalog.Entry{Type: "차량", Name: "공항 픽업", UnitPrice: 1_000_000, Currency: "VND"})

	var buf bytes.Buffer
	err := NewRenderer().Render(&buf, Page{
		Booking: booking.Details{
			Brand:        "Saigon Tours",
			CustomerName: "김민수",
			BankName:     "Vietcombank",
		},
		Rows:   svc.Rows(),
		Totals: pricing.FormatTotals(svc.Totals()),
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	html := buf.String()
	for _, want := range []string{"골프", "Long Thanh", "$95.00", "1.000.000 ₫", "김민수", "Vietcombank"} {
		if !strings.Contains(html, want) {
			t.Fatalf("rendered page missing %q", want)
		}
	}
	if strings.Contains(html, "삭제") {
		t.Fatal("export view must not contain the delete column")
	}
}

func TestRenderEmptySheet(t *testing.T) {
	var buf bytes.Buffer
	err := NewRenderer().Render(&buf, Page{Totals: pricing.FormatTotals(pricing.Totals{})})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(buf.String(), "$0.00") {
		t.Fatal("empty sheet must still render zero totals")
	}
}
