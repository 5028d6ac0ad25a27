package catalog

import (
	"sort"
	"strings"
)

// Entry is one item offered in a service panel. Type and icon may be absent;
// the inferrer fills the gap from whatever hints the entry carries.
type Entry struct {
	Type      string  `json:"type,omitempty"`
	Icon      string  `json:"icon,omitempty"`
	Name      string  `json:"name,omitempty"`
	Panel     string  `json:"panel,omitempty"`
	UnitPrice float64 `json:"unitPrice"`
	Currency  string  `json:"currency,omitempty"`
}

// Inferrer resolves the canonical type of a catalog entry through a fixed
// chain of fallback strategies: explicit type, icon reverse-lookup,
// panel-title keyword, name keyword, then the generic fallback type. The
// order decides which hint wins when hints disagree, so it must not change.
type Inferrer struct {
	resolver   *Resolver
	strategies []strategy
}

type strategy func(Entry) string

// NewInferrer builds the strategy chain against the given registry and
// resolver.
func NewInferrer(registry *Registry, resolver *Resolver) *Inferrer {
	iconIndex := buildIconIndex(registry)
	keywords := buildKeywordIndex(registry, resolver)
	inf := &Inferrer{resolver: resolver}
	inf.strategies = []strategy{
		func(e Entry) string { return resolver.Normalize(e.Type) },
		func(e Entry) string { return iconIndex[strings.TrimSpace(e.Icon)] },
		func(e Entry) string { return matchKeyword(keywords, e.Panel) },
		func(e Entry) string { return matchKeyword(keywords, e.Name) },
	}
	return inf
}

// Infer returns the canonical type for the entry, or the fallback key when no
// strategy produces one.
func (i *Inferrer) Infer(e Entry) string {
	for _, s := range i.strategies {
		if key := s(e); key != "" {
			return key
		}
	}
	return OtherKey
}

type keyword struct {
	token string
	key   string
}

func buildIconIndex(registry *Registry) map[string]string {
	index := make(map[string]string)
	for _, key := range registry.Keys() {
		t, _ := registry.Lookup(key)
		if t.Icon == "" {
			continue
		}
		// First catalog entry wins for shared icons (크루즈 over 유람선).
		if _, taken := index[t.Icon]; !taken {
			index[t.Icon] = key
		}
	}
	return index
}

func buildKeywordIndex(registry *Registry, resolver *Resolver) []keyword {
	keywords := make([]keyword, 0, len(registry.Keys())+len(resolver.aliases))
	for _, key := range registry.Keys() {
		keywords = append(keywords, keyword{token: strings.ToLower(key), key: key})
	}
	aliases := make([]keyword, 0, len(resolver.aliases))
	for token, key := range resolver.aliases {
		aliases = append(aliases, keyword{token: token, key: key})
	}
	// Longer alias tokens first so "other service" beats "other"; ties break
	// lexicographically to keep matching deterministic.
	sort.Slice(aliases, func(a, b int) bool {
		if len(aliases[a].token) != len(aliases[b].token) {
			return len(aliases[a].token) > len(aliases[b].token)
		}
		return aliases[a].token < aliases[b].token
	})
	return append(keywords, aliases...)
}

func matchKeyword(keywords []keyword, text string) string {
	lowered := strings.ToLower(strings.TrimSpace(text))
	if lowered == "" {
		return ""
	}
	for _, kw := range keywords {
		if strings.Contains(lowered, kw.token) {
			return kw.key
		}
	}
	return ""
}
