package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("RATE_VND_PER_USD", "")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.HTTPAddr() != ":8080" {
		t.Fatalf("expected default addr, got %q", cfg.HTTPAddr())
	}
	if cfg.MetricsNamespace != "quote" {
		t.Fatalf("expected default metrics namespace, got %q", cfg.MetricsNamespace)
	}
	if !cfg.EnablePrometheus || cfg.EnableTracing {
		t.Fatalf("unexpected observability defaults: %+v", cfg)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("RATE_VND_PER_USD", "25000")
	t.Setenv("RATE_KRW_PER_USD", "junk")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test ,")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.HTTPAddr() != ":9090" {
		t.Fatalf("expected :9090, got %q", cfg.HTTPAddr())
	}
	if cfg.DefaultVNDPerUSD != 25000 {
		t.Fatalf("expected vnd rate 25000, got %g", cfg.DefaultVNDPerUSD)
	}
	if cfg.DefaultKRWPerUSD != 0 {
		t.Fatalf("junk rates must fall back to zero, got %g", cfg.DefaultKRWPerUSD)
	}
	if len(cfg.CORSAllowedOrigins) != 2 {
		t.Fatalf("expected two origins, got %v", cfg.CORSAllowedOrigins)
	}
}
