package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/noah-isme/backend-quote/internal/booking"
	"github.com/noah-isme/backend-quote/internal/catalog"
	"github.com/noah-isme/backend-quote/internal/config"
	"github.com/noah-isme/backend-quote/internal/export"
	"github.com/noah-isme/backend-quote/internal/health"
	"github.com/noah-isme/backend-quote/internal/obs"
	"github.com/noah-isme/backend-quote/internal/pricing"
	"github.com/noah-isme/backend-quote/internal/sheet"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := obs.NewLogger(cfg.LogFormat, cfg.LogLevel).With().Str("env", cfg.AppEnv).Logger()

	if cfg.EnablePrometheus {
		obs.MustRegisterDomainMetrics(cfg.MetricsNamespace, nil)
	}

	tracingEnabled := cfg.EnableTracing
	if tracingEnabled {
		shutdown, err := obs.InitTracer(context.Background(), obs.TracingConfig{
			ServiceName:   "quote-api",
			Endpoint:      cfg.TracingEndpoint,
			SamplingRatio: cfg.TracingSampling,
			Environment:   cfg.AppEnv,
		})
		if err != nil {
			logger.Error().Err(err).Msg("initialise tracing")
			tracingEnabled = false
		} else {
			defer func() {
				if err := shutdown(context.Background()); err != nil {
					logger.Error().Err(err).Msg("shutdown tracer")
				}
			}()
		}
	}

	panels, err := catalog.LoadPanels(cfg.CatalogPath)
	if err != nil {
		logger.Fatal().Err(err).Str("path", cfg.CatalogPath).Msg("load catalog")
	}

	registry := catalog.DefaultRegistry()
	resolver := catalog.NewResolver(catalog.DefaultAliases())
	sheetSvc := sheet.NewService(sheet.Config{
		Registry: registry,
		Resolver: resolver,
		Inferrer: catalog.NewInferrer(registry, resolver),
		Rates: pricing.RateSet{
			VNDPerUSD: cfg.DefaultVNDPerUSD,
			KRWPerUSD: cfg.DefaultKRWPerUSD,
		},
		Logger: logger,
	})
	sheetHandler := &sheet.Handler{Svc: sheetSvc, Panels: panels}

	bookingStore := &booking.Store{}
	bookingHandler := &booking.Handler{Store: bookingStore}
	exportHandler := &export.Handler{
		Renderer: export.NewRenderer(),
		Svc:      sheetSvc,
		Booking:  bookingStore,
	}

	var httpMetrics *obs.HTTPMetrics
	if cfg.EnablePrometheus {
		httpMetrics = obs.NewHTTPMetrics(cfg.MetricsNamespace, nil, nil)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(obs.RoutePatternMiddleware)
	if tracingEnabled {
		r.Use(obs.TracingMiddleware)
	}
	if httpMetrics != nil {
		r.Use(obs.HTTPObs{Metrics: httpMetrics}.Middleware)
	}
	r.Use(obs.RequestLogger{Logger: logger}.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins(cfg),
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	if cfg.EnablePrometheus {
		r.Handle("/metrics", promhttp.Handler())
	}

	healthHandler := health.Handler{StartedAt: time.Now()}
	r.Get("/health/live", healthHandler.Live)
	r.Get("/health/ready", healthHandler.Ready)

	r.Route("/api/v1", func(v chi.Router) {
		v.Get("/catalog", sheetHandler.Catalog)
		v.Get("/types", sheetHandler.Types)
		v.Get("/sheet", sheetHandler.Sheet)
		v.Post("/rows", sheetHandler.CreateRow)
		v.Patch("/rows/{id}", sheetHandler.UpdateRow)
		v.Post("/rows/{id}/type", sheetHandler.ChangeType)
		v.Delete("/rows/{id}", sheetHandler.DeleteRow)
		v.Put("/rates", sheetHandler.PutRates)
		v.Get("/booking", bookingHandler.Get)
		v.Put("/booking", bookingHandler.Put)
		v.Get("/export", exportHandler.Page)
	})

	srv := &http.Server{
		Addr:    cfg.HTTPAddr(),
		Handler: r,
	}

	logger.Info().Str("addr", srv.Addr).Msg("server starting")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal().Err(err).Msg("server exited unexpectedly")
	}
}

func allowedOrigins(cfg *config.Config) []string {
	if len(cfg.CORSAllowedOrigins) == 0 {
		return []string{"*"}
	}
	return cfg.CORSAllowedOrigins
}
