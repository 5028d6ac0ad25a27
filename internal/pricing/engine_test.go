package pricing

import (
	"math"
	"testing"
)

func TestComputeUSD(t *testing.T) {
	res := Compute(Line{UnitPrice: 100, Currency: USD, Factors: []float64{1}}, RateSet{})
	if res.USDValue != 100 {
		t.Fatalf("expected 100 USD, got %g", res.USDValue)
	}
	if res.NativeTotal != 100 {
		t.Fatalf("expected native total 100, got %g", res.NativeTotal)
	}
}

func TestComputeQuantityIsMultiplicative(t *testing.T) {
	base := Compute(Line{UnitPrice: 50, Currency: USD, Factors: []float64{2, 3}}, RateSet{})
	if base.Quantity != 6 {
		t.Fatalf("expected quantity 6, got %g", base.Quantity)
	}
	if base.USDValue != 300 {
		t.Fatalf("expected 300 USD, got %g", base.USDValue)
	}
	// Doubling one factor doubles the value.
	doubled := Compute(Line{UnitPrice: 50, Currency: USD, Factors: []float64{4, 3}}, RateSet{})
	if doubled.USDValue != 2*base.USDValue {
		t.Fatalf("expected proportional rescale, got %g", doubled.USDValue)
	}
}

func TestComputeVNDRoundTrip(t *testing.T) {
	res := Compute(Line{UnitPrice: 2_380_000, Currency: VND, Factors: []float64{1}}, RateSet{VNDPerUSD: 23_800})
	if math.Abs(res.USDValue-100) > 1e-9 {
		t.Fatalf("expected 100 USD, got %g", res.USDValue)
	}
	if res.NativeTotal != 2_380_000 {
		t.Fatalf("native total must stay in VND face value, got %g", res.NativeTotal)
	}
}

func TestComputeZeroRateGuard(t *testing.T) {
	for _, c := range []Currency{VND, KRW} {
		res := Compute(Line{UnitPrice: 1000, Currency: c, Factors: []float64{2}}, RateSet{})
		if res.USDValue != 0 {
			t.Fatalf("%s with zero rate must yield 0 USD, got %g", c, res.USDValue)
		}
		if res.NativeTotal != 2000 {
			t.Fatalf("%s native total must still compute, got %g", c, res.NativeTotal)
		}
	}
}

func TestComputeGuardsDegenerateInput(t *testing.T) {
	res := Compute(Line{
		UnitPrice: math.NaN(),
		Currency:  USD,
		Factors:   []float64{0, math.Inf(1), -3},
	}, RateSet{VNDPerUSD: math.NaN()})
	if res.USDValue != 0 || res.Quantity != 1 {
		t.Fatalf("degenerate input must collapse to defined values, got %+v", res)
	}
}

func TestComputeFloorsFractionalFactors(t *testing.T) {
	res := Compute(Line{UnitPrice: 100, Currency: USD, Factors: []float64{0.5, 3}}, RateSet{})
	if res.Quantity != 3 {
		t.Fatalf("factors below 1 must count as 1, got quantity %g", res.Quantity)
	}
	if res.USDValue != 300 {
		t.Fatalf("expected 300 USD, got %g", res.USDValue)
	}
}

func TestAggregate(t *testing.T) {
	rates := RateSet{VNDPerUSD: 25_000, KRWPerUSD: 1_300}
	totals := Aggregate([]float64{300, 160}, rates)
	if totals.USD != 460 {
		t.Fatalf("expected 460 USD total, got %g", totals.USD)
	}
	if totals.VND != 460*25_000 {
		t.Fatalf("expected VND conversion, got %g", totals.VND)
	}
	if totals.KRW != 460*1_300 {
		t.Fatalf("expected KRW conversion, got %g", totals.KRW)
	}
}

func TestAggregateEmptyAndZeroRates(t *testing.T) {
	totals := Aggregate(nil, RateSet{})
	if totals != (Totals{}) {
		t.Fatalf("empty aggregation must be all zero, got %+v", totals)
	}
}

func TestParseCurrency(t *testing.T) {
	if ParseCurrency(" vnd ") != VND || ParseCurrency("KRW") != KRW {
		t.Fatal("expected case-insensitive currency parsing")
	}
	if ParseCurrency("") != USD || ParseCurrency("EUR") != USD {
		t.Fatal("expected USD default for unknown currencies")
	}
}
