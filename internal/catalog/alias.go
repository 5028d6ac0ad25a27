package catalog

import "strings"

// AliasTable maps lowercased free-text tokens (any language, abbreviation or
// shorthand) to canonical type keys. Many tokens map to one key.
type AliasTable map[string]string

// DefaultAliases returns the built-in multilingual alias table mapping
// Vietnamese, English and abbreviated Korean labels to the canonical Korean
// catalog keys.
func DefaultAliases() AliasTable {
	return AliasTable{
		// vi → ko
		"chung cư":     "아파트",
		"xe":           "차량",
		"khách sạn":    "호텔",
		"ăn uống":      "식사",
		"tham quan":    "관광",
		"khác":         OtherKey,
		"dịch vụ khác": OtherKey,
		"biệt thự":     "빌라",
		"du thuyền":    "유람선",

		// en → ko
		"golf":          "골프",
		"apartment":     "아파트",
		"car":           "차량",
		"hotel":         "호텔",
		"food":          "식사",
		"tour":          "관광",
		"other":         OtherKey,
		"other service": OtherKey,
		"services":      OtherKey,
		"cruise":        "크루즈",
		"yacht":         "유람선",
		"boat":          "유람선",
		"villa":         "빌라",

		// ko abbreviations
		"아파":    "아파트",
		"골":     "골프",
		"차":     "차량",
		"기타서비스": OtherKey,
	}
}

// Resolver canonicalizes free-text service-type labels against an immutable
// alias table.
type Resolver struct {
	aliases AliasTable
}

// NewResolver copies the provided alias table so later mutations of the
// caller's map cannot change resolution results.
func NewResolver(aliases AliasTable) *Resolver {
	copied := make(AliasTable, len(aliases))
	for token, key := range aliases {
		token = strings.ToLower(strings.TrimSpace(token))
		if token == "" || strings.TrimSpace(key) == "" {
			continue
		}
		copied[token] = strings.TrimSpace(key)
	}
	return &Resolver{aliases: copied}
}

// Normalize trims the input and returns its canonical key when the lowercased
// form is a known alias. Unknown labels pass through trimmed but otherwise
// verbatim so novel types can act as their own canonical key. Empty input
// normalizes to the empty string; substituting the fallback type happens at
// render time, not here.
func (r *Resolver) Normalize(input string) string {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return ""
	}
	if canonical, ok := r.aliases[strings.ToLower(trimmed)]; ok {
		return canonical
	}
	return trimmed
}
