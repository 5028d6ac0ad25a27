package catalog

import "testing"

func TestNormalizeAliases(t *testing.T) {
	r := NewResolver(DefaultAliases())
	cases := map[string]string{
		"golf":      "골프",
		"  GOLF  ":  "골프",
		"apartment": "아파트",
		"chung cư":  "아파트",
		"xe":        "차량",
		"차":         "차량",
		"boat":      "유람선",
		"khác":      OtherKey,
		"기타서비스":     OtherKey,
	}
	for input, want := range cases {
		if got := r.Normalize(input); got != want {
			t.Fatalf("Normalize(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestNormalizePassthrough(t *testing.T) {
	r := NewResolver(DefaultAliases())
	if got := r.Normalize("  Spa Day  "); got != "Spa Day" {
		t.Fatalf("expected verbatim passthrough, got %q", got)
	}
	if got := r.Normalize("   "); got != "" {
		t.Fatalf("expected empty result for whitespace input, got %q", got)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	r := NewResolver(DefaultAliases())
	inputs := []string{"golf", "골프", "Spa Day", "", "villa", "du thuyền"}
	for _, input := range inputs {
		once := r.Normalize(input)
		if twice := r.Normalize(once); twice != once {
			t.Fatalf("Normalize not idempotent for %q: %q then %q", input, once, twice)
		}
	}
}

func TestResolverCopiesTable(t *testing.T) {
	table := AliasTable{"spa": "관광"}
	r := NewResolver(table)
	table["spa"] = "골프"
	if got := r.Normalize("spa"); got != "관광" {
		t.Fatalf("resolver observed caller mutation: %q", got)
	}
}
