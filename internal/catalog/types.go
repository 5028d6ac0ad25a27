package catalog

import "strings"

// OtherKey is the canonical key every unrecognized service falls back to at render time.
const OtherKey = "기타"

// QuantityFactor describes one multiplicative quantity input bound to a service type.
type QuantityFactor struct {
	Role    string  `json:"role"`
	Label   string  `json:"label"`
	Default float64 `json:"default"`
}

// Well-known quantity factors. Defaults are at least 1 so a freshly created
// row never multiplies its price to zero.
var (
	FactorPersons = QuantityFactor{Role: "persons", Label: "인원", Default: 1}
	FactorDays    = QuantityFactor{Role: "days", Label: "일수", Default: 1}
	FactorRounds  = QuantityFactor{Role: "rounds", Label: "라운드", Default: 1}
	FactorCount   = QuantityFactor{Role: "count", Label: "수량", Default: 1}
)

// ServiceType is an immutable catalog entry binding a canonical label to its
// display icon and quantity schema.
type ServiceType struct {
	Key    string           `json:"key"`
	Icon   string           `json:"icon"`
	Schema []QuantityFactor `json:"schema"`
}

// Registry holds the canonical service-type catalog. Lookups never fail: an
// unknown key resolves to the fallback icon and a single generic count factor.
type Registry struct {
	types    map[string]ServiceType
	order    []string
	fallback ServiceType
}

// NewRegistry builds a registry from the provided catalog. Entry order is the
// presentation order used by ListTypes.
func NewRegistry(types []ServiceType) *Registry {
	r := &Registry{
		types:    make(map[string]ServiceType, len(types)),
		order:    make([]string, 0, len(types)),
		fallback: ServiceType{Key: OtherKey, Icon: "🧾", Schema: []QuantityFactor{FactorCount}},
	}
	for _, t := range types {
		key := strings.TrimSpace(t.Key)
		if key == "" {
			continue
		}
		if _, exists := r.types[key]; exists {
			continue
		}
		t.Key = key
		t.Schema = cloneSchema(t.Schema)
		r.types[key] = t
		r.order = append(r.order, key)
	}
	if other, ok := r.types[OtherKey]; ok {
		r.fallback.Icon = other.Icon
	}
	return r
}

// DefaultRegistry returns the built-in travel-services catalog. Golf and
// apartment bookings bill per person per round/day; everything else bills per
// person.
func DefaultRegistry() *Registry {
	return NewRegistry([]ServiceType{
		{Key: "골프", Icon: "🏌️", Schema: []QuantityFactor{FactorPersons, FactorRounds}},
		{Key: "아파트", Icon: "🏢", Schema: []QuantityFactor{FactorPersons, FactorDays}},
		{Key: "차량", Icon: "🚐", Schema: []QuantityFactor{FactorPersons}},
		{Key: "빌라", Icon: "🏘️", Schema: []QuantityFactor{FactorPersons}},
		{Key: "크루즈", Icon: "🛳️", Schema: []QuantityFactor{FactorPersons}},
		{Key: "유람선", Icon: "🛳️", Schema: []QuantityFactor{FactorPersons}},
		{Key: "호텔", Icon: "🏨", Schema: []QuantityFactor{FactorPersons}},
		{Key: "식사", Icon: "🍽️", Schema: []QuantityFactor{FactorPersons}},
		{Key: "관광", Icon: "🗺️", Schema: []QuantityFactor{FactorPersons}},
		{Key: "노래방", Icon: "🎤", Schema: []QuantityFactor{FactorPersons}},
		{Key: "공항 서비스", Icon: "✈️", Schema: []QuantityFactor{FactorPersons}},
		{Key: OtherKey, Icon: "🧾", Schema: []QuantityFactor{FactorPersons}},
	})
}

// Lookup returns the catalog entry for the key when one exists.
func (r *Registry) Lookup(key string) (ServiceType, bool) {
	t, ok := r.types[strings.TrimSpace(key)]
	if ok {
		t.Schema = cloneSchema(t.Schema)
	}
	return t, ok
}

// IconFor returns the display icon for the key, falling back to the generic
// icon for unknown keys. It never fails.
func (r *Registry) IconFor(key string) string {
	if t, ok := r.types[strings.TrimSpace(key)]; ok {
		return t.Icon
	}
	return r.fallback.Icon
}

// SchemaFor returns the quantity schema bound to the key. Unknown keys get a
// single generic count factor.
func (r *Registry) SchemaFor(key string) []QuantityFactor {
	if t, ok := r.types[strings.TrimSpace(key)]; ok {
		return cloneSchema(t.Schema)
	}
	return cloneSchema(r.fallback.Schema)
}

// Keys returns the catalog keys in presentation order.
func (r *Registry) Keys() []string {
	return append([]string(nil), r.order...)
}

// ListTypes merges dynamically discovered keys with the catalog keys,
// deduplicated. Discovered keys keep their lead position so the dropdown
// matches the source-panel presentation order.
func (r *Registry) ListTypes(discovered []string) []string {
	seen := make(map[string]struct{}, len(discovered)+len(r.order))
	merged := make([]string, 0, len(discovered)+len(r.order))
	appendKey := func(key string) {
		key = strings.TrimSpace(key)
		if key == "" {
			return
		}
		if _, dup := seen[key]; dup {
			return
		}
		seen[key] = struct{}{}
		merged = append(merged, key)
	}
	for _, key := range discovered {
		appendKey(key)
	}
	for _, key := range r.order {
		appendKey(key)
	}
	return merged
}

func cloneSchema(schema []QuantityFactor) []QuantityFactor {
	return append([]QuantityFactor(nil), schema...)
}
