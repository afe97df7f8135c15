package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/mathieu/brandscope/internal/classify"
	"github.com/mathieu/brandscope/internal/config"
	"github.com/mathieu/brandscope/internal/db"
	"github.com/mathieu/brandscope/internal/extract"
	"github.com/mathieu/brandscope/internal/fetch"
	"github.com/mathieu/brandscope/internal/jobs"
	"github.com/mathieu/brandscope/internal/monitoring"
)

// app bundles the wired pipeline and its supporting resources.
type app struct {
	orchestrator *jobs.Orchestrator
	registry     *prometheus.Registry
	logger       *slog.Logger
	closers      []func()
}

func (a *app) close() {
	for _, fn := range a.closers {
		fn()
	}
}

// buildApp wires the fetch chain, pipeline and job store from config.
// Without a DATABASE_URL the in-memory job store is used.
func buildApp(ctx context.Context, cfg *config.Config) (*app, error) {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	registry := prometheus.NewRegistry()
	metrics := monitoring.New(registry)

	var strategies []fetch.Strategy
	if cfg.PrimaryAPIKey != "" {
		strategies = append(strategies, &fetch.PrimaryStrategy{
			Endpoint:    cfg.PrimaryEndpoint,
			APIKey:      cfg.PrimaryAPIKey,
			CountryCode: cfg.CountryCode,
			Client:      http.DefaultClient,
		})
	}
	if cfg.UseBrowser || cfg.PrimaryAPIKey == "" {
		strategies = append(strategies, &fetch.BrowserStrategy{})
	}
	strategies = append(strategies, fetch.RelayStrategies(fetch.DefaultRelayEndpoints(), nil)...)

	chain := fetch.NewChain(strategies, cfg.StrategyTimeout(), metrics, logger)
	pipeline := extract.NewPipeline(chain, classify.New(classify.DefaultIndustries()), logger)

	a := &app{registry: registry, logger: logger}

	var store jobs.Store
	if cfg.DatabaseURL != "" {
		pgStore, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		if err := pgStore.EnsureSchema(ctx); err != nil {
			pgStore.Close()
			return nil, err
		}
		a.closers = append(a.closers, pgStore.Close)
		store = pgStore
	} else {
		store = jobs.NewMemStore()
	}

	a.orchestrator = jobs.New(store, pipeline, metrics, logger)
	return a, nil
}
