// Package reconcile implements the reconcile bounded context: comparing
// the API rendition of a reporting period against a local report file.
package reconcile

import (
	"context"

	"github.com/profitlens/seller-analytics/business/reconcile/app"
	reconcileDI "github.com/profitlens/seller-analytics/business/reconcile/di"
	"github.com/profitlens/seller-analytics/business/reconcile/domain"
	"github.com/profitlens/seller-analytics/business/reconcile/infra"
	reportsDI "github.com/profitlens/seller-analytics/business/reports/di"
	"github.com/profitlens/seller-analytics/internal/config"
	"github.com/profitlens/seller-analytics/internal/di"
	"github.com/profitlens/seller-analytics/internal/logger"
	"github.com/profitlens/seller-analytics/internal/monolith"
)

// Module implements the reconcile bounded context. It depends on the
// reports module for aggregation.
type Module struct{}

// RegisterServices registers all reconcile services with the DI container.
func (m *Module) RegisterServices(c di.Container) error {
	di.RegisterToken(c, reconcileDI.Writer, func(sr di.ServiceRegistry) app.ReportWriter {
		return infra.NewJSONWriter()
	})

	di.RegisterToken(c, reconcileDI.Reporter, func(sr di.ServiceRegistry) *infra.ConsoleReporter {
		return infra.NewConsoleReporter()
	})

	// Service (public - exposed to other modules)
	di.RegisterToken(c, reconcileDI.Service, func(sr di.ServiceRegistry) *app.Service {
		cfg := sr.Get("config").(*config.Config)
		log := sr.Get("logger").(logger.LoggerInterface)

		return app.NewService(
			reportsDI.GetAggregator(sr),
			domain.NewComparator(cfg.Analytics.DivergenceThresholdDecimal()),
			di.GetToken(sr, reconcileDI.Writer),
			log,
		)
	})

	return nil
}

// Startup initializes the reconcile module.
func (m *Module) Startup(ctx context.Context, mono monolith.Monolith) error {
	mono.Logger().Info(ctx, "reconcile module started")
	return nil
}
