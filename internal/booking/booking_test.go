package booking

import "testing"

func TestStoreTrimsAndRoundTrips(t *testing.T) {
	s := &Store{}
	stored := s.Set(Details{
		Brand:        "  Saigon Tours  ",
		CustomerName: " 김민수 ",
		BankName:     "Vietcombank",
	})
	if stored.Brand != "Saigon Tours" || stored.CustomerName != "김민수" {
		t.Fatalf("expected trimmed fields, got %+v", stored)
	}
	if got := s.Get(); got != stored {
		t.Fatalf("Get must return the stored value, got %+v", got)
	}
}

func TestStoreZeroValue(t *testing.T) {
	s := &Store{}
	if got := s.Get(); got != (Details{}) {
		t.Fatalf("expected empty details, got %+v", got)
	}
}
