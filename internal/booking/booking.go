package booking

import (
	"strings"
	"sync"
)

// Details holds the booking metadata collected alongside the service sheet.
// Fields are captured as-is (trimmed only) and echoed into the export view;
// they never affect pricing.
type Details struct {
	Brand        string `json:"brand"`
	CustomerName string `json:"customerName"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`

	CheckIn  string `json:"checkIn"`
	CheckOut string `json:"checkOut"`
	Guests   string `json:"guests"`
	Note     string `json:"note"`

	BankName          string `json:"bankName"`
	BankAccountName   string `json:"bankAccountName"`
	BankAccountNumber string `json:"bankAccountNumber"`
	BankNote          string `json:"bankNote"`
}

func (d Details) trimmed() Details {
	d.Brand = strings.TrimSpace(d.Brand)
	d.CustomerName = strings.TrimSpace(d.CustomerName)
	d.Phone = strings.TrimSpace(d.Phone)
	d.Email = strings.TrimSpace(d.Email)
	d.CheckIn = strings.TrimSpace(d.CheckIn)
	d.CheckOut = strings.TrimSpace(d.CheckOut)
	d.Guests = strings.TrimSpace(d.Guests)
	d.Note = strings.TrimSpace(d.Note)
	d.BankName = strings.TrimSpace(d.BankName)
	d.BankAccountName = strings.TrimSpace(d.BankAccountName)
	d.BankAccountNumber = strings.TrimSpace(d.BankAccountNumber)
	d.BankNote = strings.TrimSpace(d.BankNote)
	return d
}

// Store keeps the session's booking details. Like the sheet, details live in
// memory only and do not outlive the process.
type Store struct {
	mu      sync.RWMutex
	details Details
}

// Get returns the current booking details.
func (s *Store) Get() Details {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.details
}

// Set replaces the booking details and returns the stored value.
func (s *Store) Set(d Details) Details {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.details = d.trimmed()
	return s.details
}
