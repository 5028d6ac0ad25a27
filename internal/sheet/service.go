package sheet

import (
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/noah-isme/backend-quote/internal/catalog"
	"github.com/noah-isme/backend-quote/internal/common"
	"github.com/noah-isme/backend-quote/internal/obs"
	"github.com/noah-isme/backend-quote/internal/pricing"
)

// ErrRowNotFound indicates an edit referenced a row that is not on the sheet.
// Removal of an unknown row is deliberately a no-op instead.
var ErrRowNotFound = errors.New("row not found")

// Service is the collection controller: it owns the ordered row set and the
// rate set, and it is their sole mutator. Every mutating operation runs a
// full totals recompute before returning, so callers never observe a row
// whose cached USD value disagrees with the published totals.
type Service struct {
	mu sync.Mutex

	registry *catalog.Registry
	resolver *catalog.Resolver
	inferrer *catalog.Inferrer
	log      zerolog.Logger
	newID    func() string

	rows   []*row
	rates  pricing.RateSet
	totals pricing.Totals
}

// Config groups Service dependencies. Nil components fall back to the
// built-in catalog so the zero configuration still yields a working sheet.
type Config struct {
	Registry *catalog.Registry
	Resolver *catalog.Resolver
	Inferrer *catalog.Inferrer
	Rates    pricing.RateSet
	Logger   zerolog.Logger
	NewID    func() string
}

// NewService constructs a sheet service with an empty row set.
func NewService(cfg Config) *Service {
	registry := cfg.Registry
	if registry == nil {
		registry = catalog.DefaultRegistry()
	}
	resolver := cfg.Resolver
	if resolver == nil {
		resolver = catalog.NewResolver(catalog.DefaultAliases())
	}
	inferrer := cfg.Inferrer
	if inferrer == nil {
		inferrer = catalog.NewInferrer(registry, resolver)
	}
	newID := cfg.NewID
	if newID == nil {
		newID = uuid.NewString
	}
	s := &Service{
		registry: registry,
		resolver: resolver,
		inferrer: inferrer,
		log:      cfg.Logger,
		newID:    newID,
		rates:    cfg.Rates.Sanitize(),
	}
	s.totals = pricing.Aggregate(nil, s.rates)
	return s
}

// AddFromCatalog creates a row from a service-panel entry, inferring the
// canonical type when the entry carries none, and appends it to the sheet.
func (s *Service) AddFromCatalog(entry catalog.Entry) (RowView, pricing.Totals) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := s.inferrer.Infer(entry)
	icon := entry.Icon
	if icon == "" {
		icon = s.registry.IconFor(key)
	}
	r := s.appendRowLocked(key, icon, entry.Name, common.PriceDefault(entry.UnitPrice), pricing.ParseCurrency(entry.Currency))
	obs.CountRowAdded("catalog")
	s.log.Debug().Str("row_id", r.id).Str("type", key).Msg("row added from catalog")
	return r.view(), s.totals
}

// AddBlank appends an empty fallback-typed row for manual entry.
func (s *Service) AddBlank() (RowView, pricing.Totals) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := catalog.OtherKey
	r := s.appendRowLocked(key, s.registry.IconFor(key), "", 0, pricing.USD)
	obs.CountRowAdded("blank")
	s.log.Debug().Str("row_id", r.id).Msg("blank row added")
	return r.view(), s.totals
}

// RemoveRow deletes the row and recomputes totals. Removing an id that is
// not present is a no-op.
func (s *Service) RemoveRow(id string) pricing.Totals {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, r := range s.rows {
		if r.id == id {
			s.rows = append(s.rows[:i], s.rows[i+1:]...)
			s.recomputeLocked()
			obs.CountRowRemoved()
			s.log.Debug().Str("row_id", id).Msg("row removed")
			break
		}
	}
	return s.totals
}

// RowPatch describes a partial edit of one row. Numeric fields arrive as raw
// decoded JSON values and are coerced, never rejected: a bad price becomes 0,
// a bad quantity factor keeps its prior value.
type RowPatch struct {
	Name      *string
	HasPrice  bool
	UnitPrice any
	Currency  *string
	Factors   map[int]any
}

// UpdateRow applies the patch and recomputes totals synchronously.
func (s *Service) UpdateRow(id string, patch RowPatch) (RowView, pricing.Totals, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := s.findLocked(id)
	if r == nil {
		return RowView{}, s.totals, ErrRowNotFound
	}
	if patch.Name != nil {
		r.name = *patch.Name
	}
	if patch.HasPrice {
		r.unitPrice = common.PriceDefault(patch.UnitPrice)
	}
	if patch.Currency != nil {
		r.currency = pricing.ParseCurrency(*patch.Currency)
	}
	for idx, value := range patch.Factors {
		if idx < 0 || idx >= len(r.factors) {
			continue
		}
		r.factors[idx] = common.FactorDefault(value, r.factors[idx])
	}
	s.recomputeLocked()
	return r.view(), s.totals, nil
}

// ChangeRowType re-canonicalizes the row under a new type. The name, price
// and quantity values reset because switching category invalidates the
// previous item's identity; the quantity schema itself stays frozen.
func (s *Service) ChangeRowType(id, newType string) (RowView, pricing.Totals, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := s.findLocked(id)
	if r == nil {
		return RowView{}, s.totals, ErrRowNotFound
	}
	key := s.resolver.Normalize(newType)
	r.resetForType(key, s.registry.IconFor(key))
	s.recomputeLocked()
	s.log.Debug().Str("row_id", id).Str("type", key).Msg("row type changed")
	return r.view(), s.totals, nil
}

// SetRates replaces the conversion rates and recomputes every row. Rates are
// clamped to non-negative; zero is allowed and simply zeroes converted values.
func (s *Service) SetRates(rates pricing.RateSet) pricing.Totals {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rates = rates.Sanitize()
	s.recomputeLocked()
	return s.totals
}

// Rates returns the current rate set.
func (s *Service) Rates() pricing.RateSet {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rates
}

// Totals returns the last computed totals snapshot.
func (s *Service) Totals() pricing.Totals {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totals
}

// Rows returns snapshots of all rows in display order.
func (s *Service) Rows() []RowView {
	s.mu.Lock()
	defer s.mu.Unlock()

	views := make([]RowView, len(s.rows))
	for i, r := range s.rows {
		views[i] = r.view()
	}
	return views
}

// Types returns the type dropdown contents: canonical keys of the discovered
// entries first, then the catalog keys, deduplicated.
func (s *Service) Types(discovered []catalog.Entry) []string {
	keys := make([]string, 0, len(discovered))
	for _, e := range discovered {
		keys = append(keys, s.inferrer.Infer(e))
	}
	return s.registry.ListTypes(keys)
}

func (s *Service) appendRowLocked(key, icon, name string, price float64, currency pricing.Currency) *row {
	schema := s.registry.SchemaFor(key)
	factors := make([]float64, len(schema))
	for i, f := range schema {
		factors[i] = f.Default
		if factors[i] < 1 {
			factors[i] = 1
		}
	}
	r := &row{
		id:        s.newID(),
		typeKey:   key,
		icon:      icon,
		name:      name,
		unitPrice: price,
		currency:  currency,
		schema:    schema,
		factors:   factors,
	}
	s.rows = append(s.rows, r)
	s.recomputeLocked()
	return r
}

func (s *Service) findLocked(id string) *row {
	for _, r := range s.rows {
		if r.id == id {
			return r
		}
	}
	return nil
}

// recomputeLocked refreshes every row's cached values and the grand totals.
// Recompute is eager and total: row counts are small and stale totals cost
// more than the arithmetic.
func (s *Service) recomputeLocked() {
	usd := make([]float64, len(s.rows))
	for i, r := range s.rows {
		res := pricing.Compute(r.line(), s.rates)
		r.usdValue = res.USDValue
		r.nativeTotal = res.NativeTotal
		r.display = res.Display
		usd[i] = res.USDValue
	}
	s.totals = pricing.Aggregate(usd, s.rates)
	obs.CountRecompute()
}
