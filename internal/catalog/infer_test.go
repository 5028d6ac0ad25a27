package catalog

import "testing"

func newTestInferrer() *Inferrer {
	registry := DefaultRegistry()
	resolver := NewResolver(DefaultAliases())
	return NewInferrer(registry, resolver)
}

func TestInferExplicitTypeWins(t *testing.T) {
	inf := newTestInferrer()
	got := inf.Infer(Entry{Type: "golf", Icon: "🏢", Panel: "차량", Name: "hotel"})
	if got != "골프" {
		t.Fatalf("explicit type must win, got %q", got)
	}
}

func TestInferFromIcon(t *testing.T) {
	inf := newTestInferrer()
	if got := inf.Infer(Entry{Icon: "🚐", Name: "hotel"}); got != "차량" {
		t.Fatalf("icon must beat name keyword, got %q", got)
	}
	// 🛳️ is shared by 크루즈 and 유람선; the first catalog entry wins.
	if got := inf.Infer(Entry{Icon: "🛳️"}); got != "크루즈" {
		t.Fatalf("shared icon must resolve to first catalog entry, got %q", got)
	}
}

func TestInferFromPanelTitle(t *testing.T) {
	inf := newTestInferrer()
	if got := inf.Infer(Entry{Panel: "골프 투어", Name: "hotel package"}); got != "골프" {
		t.Fatalf("panel keyword must beat name keyword, got %q", got)
	}
}

func TestInferFromName(t *testing.T) {
	inf := newTestInferrer()
	if got := inf.Infer(Entry{Name: "City tour guide"}); got != "관광" {
		t.Fatalf("expected name keyword match, got %q", got)
	}
}

func TestInferFallsBackToOther(t *testing.T) {
	inf := newTestInferrer()
	if got := inf.Infer(Entry{Name: "zzz"}); got != OtherKey {
		t.Fatalf("expected fallback type, got %q", got)
	}
	if got := inf.Infer(Entry{}); got != OtherKey {
		t.Fatalf("expected fallback type for empty entry, got %q", got)
	}
}
