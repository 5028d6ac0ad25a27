package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// Config holds application configuration loaded from the environment.
type Config struct {
	AppEnv             string
	Port               string
	CORSAllowedOrigins []string
	CatalogPath        string
	DefaultVNDPerUSD   float64
	DefaultKRWPerUSD   float64
	LogFormat          string
	LogLevel           string
	MetricsNamespace   string
	EnablePrometheus   bool
	EnableTracing      bool
	TracingEndpoint    string
	TracingSampling    float64
}

// Load reads configuration from environment variables and optional .env files.
// Every value has a working default; the server boots with an empty environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	k := koanf.New(".")
	if err := k.Load(env.Provider("", ".", func(s string) string { return s }), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := &Config{
		AppEnv:             valueOrDefault(k.String("APP_ENV"), "development"),
		Port:               valueOrDefault(k.String("PORT"), "8080"),
		CORSAllowedOrigins: splitAndTrim(k.String("CORS_ALLOWED_ORIGINS")),
		CatalogPath:        strings.TrimSpace(k.String("CATALOG_PATH")),
		DefaultVNDPerUSD:   parseFloat(k.String("RATE_VND_PER_USD"), 0),
		DefaultKRWPerUSD:   parseFloat(k.String("RATE_KRW_PER_USD"), 0),
		LogFormat:          valueOrDefault(k.String("OBS_LOG_FORMAT"), "json"),
		LogLevel:           valueOrDefault(k.String("OBS_LOG_LEVEL"), "info"),
		MetricsNamespace:   valueOrDefault(k.String("OBS_METRICS_NAMESPACE"), "quote"),
		EnablePrometheus:   parseBool(k.String("OBS_ENABLE_PROMETHEUS"), true),
		EnableTracing:      parseBool(k.String("OBS_ENABLE_TRACING"), false),
		TracingEndpoint:    strings.TrimSpace(k.String("OBS_OTLP_ENDPOINT")),
		TracingSampling:    parseFloat(k.String("OBS_TRACING_SAMPLING_RATIO"), 1.0),
	}

	if cfg.DefaultVNDPerUSD < 0 {
		cfg.DefaultVNDPerUSD = 0
	}
	if cfg.DefaultKRWPerUSD < 0 {
		cfg.DefaultKRWPerUSD = 0
	}

	return cfg, nil
}

// HTTPAddr returns the address the HTTP server should bind to.
func (c *Config) HTTPAddr() string {
	port := strings.TrimSpace(c.Port)
	if port == "" {
		port = "8080"
	}
	if strings.HasPrefix(port, ":") {
		return port
	}
	return ":" + port
}

func splitAndTrim(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func valueOrDefault(value, fallback string) string {
	if strings.TrimSpace(value) != "" {
		return value
	}
	return fallback
}

func parseFloat(value string, fallback float64) float64 {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return fallback
	}
	return f
}

func parseBool(value string, fallback bool) bool {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fallback
	}
	b, err := strconv.ParseBool(trimmed)
	if err != nil {
		return fallback
	}
	return b
}
