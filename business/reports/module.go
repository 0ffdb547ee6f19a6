// Package reports implements the reports bounded context: fetching
// marketplace seller reports and folding them into per-product figures.
package reports

import (
	"context"

	"github.com/profitlens/seller-analytics/business/reports/app"
	reportsDI "github.com/profitlens/seller-analytics/business/reports/di"
	"github.com/profitlens/seller-analytics/business/reports/infra/file"
	"github.com/profitlens/seller-analytics/business/reports/infra/wbstats"
	"github.com/profitlens/seller-analytics/internal/config"
	"github.com/profitlens/seller-analytics/internal/di"
	"github.com/profitlens/seller-analytics/internal/logger"
	"github.com/profitlens/seller-analytics/internal/monolith"
)

// Module implements the reports bounded context.
type Module struct{}

// RegisterServices registers all reports services with the DI container.
func (m *Module) RegisterServices(c di.Container) error {
	// Statistics API client - private dependency. The client owns the
	// rate limiter and circuit breaker, so fetch and aggregate paths
	// must share the one memoized instance.
	di.RegisterToken(c, reportsDI.StatsClient, func(sr di.ServiceRegistry) *wbstats.Client {
		cfg := sr.Get("config").(*config.Config)
		log := sr.Get("logger").(logger.LoggerInterface)

		client, err := wbstats.NewClient(wbstats.ClientConfig{
			APIKey:             cfg.API.Key,
			BaseURL:            cfg.API.BaseURL,
			AnalyticsBaseURL:   cfg.API.AnalyticsBaseURL,
			Timeout:            cfg.API.Timeout,
			RateLimitPerMinute: cfg.API.RateLimitPerMinute,
		}, log)
		if err != nil {
			panic("failed to create statistics API client: " + err.Error())
		}
		return client
	})

	di.RegisterToken(c, reportsDI.RecordSource, func(sr di.ServiceRegistry) app.RecordSource {
		return di.GetToken(sr, reportsDI.StatsClient)
	})

	di.RegisterToken(c, reportsDI.CSVReader, func(sr di.ServiceRegistry) app.RecordReader {
		return file.NewCSVReader()
	})

	di.RegisterToken(c, reportsDI.JSONReader, func(sr di.ServiceRegistry) app.RecordReader {
		return file.NewJSONReader()
	})

	di.RegisterToken(c, reportsDI.Downloader, func(sr di.ServiceRegistry) app.Downloader {
		log := sr.Get("logger").(logger.LoggerInterface)
		return wbstats.NewLoader(di.GetToken(sr, reportsDI.StatsClient), log)
	})

	// Aggregator (public - exposed to other modules)
	di.RegisterToken(c, reportsDI.Aggregator, func(sr di.ServiceRegistry) *app.Aggregator {
		log := sr.Get("logger").(logger.LoggerInterface)
		return app.NewAggregator(
			di.GetToken(sr, reportsDI.RecordSource),
			di.GetToken(sr, reportsDI.CSVReader),
			di.GetToken(sr, reportsDI.JSONReader),
			log,
		)
	})

	// FetchService (public)
	di.RegisterToken(c, reportsDI.FetchService, func(sr di.ServiceRegistry) *app.FetchService {
		log := sr.Get("logger").(logger.LoggerInterface)
		return app.NewFetchService(di.GetToken(sr, reportsDI.Downloader), log)
	})

	return nil
}

// Startup initializes the reports module.
func (m *Module) Startup(ctx context.Context, mono monolith.Monolith) error {
	mono.Logger().Info(ctx, "reports module started")
	return nil
}
