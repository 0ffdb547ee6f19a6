// Package analytics implements the analytics bounded context: computing
// profitability metrics over marketplace product reports.
package analytics

import (
	"context"

	"github.com/profitlens/seller-analytics/business/analytics/app"
	analyticsDI "github.com/profitlens/seller-analytics/business/analytics/di"
	"github.com/profitlens/seller-analytics/business/analytics/domain"
	"github.com/profitlens/seller-analytics/business/analytics/infra"
	catalogFile "github.com/profitlens/seller-analytics/business/catalog/infra/file"
	"github.com/profitlens/seller-analytics/internal/config"
	"github.com/profitlens/seller-analytics/internal/di"
	"github.com/profitlens/seller-analytics/internal/logger"
	"github.com/profitlens/seller-analytics/internal/monolith"
)

// Module implements the analytics bounded context.
type Module struct{}

// RegisterServices registers all analytics services with the DI container.
func (m *Module) RegisterServices(c di.Container) error {
	di.RegisterToken(c, analyticsDI.ProductSource, func(sr di.ServiceRegistry) app.ProductSource {
		return catalogFile.NewProductReader()
	})

	di.RegisterToken(c, analyticsDI.ManualSource, func(sr di.ServiceRegistry) app.ManualSource {
		return catalogFile.NewManualLoader()
	})

	di.RegisterToken(c, analyticsDI.Exporter, func(sr di.ServiceRegistry) app.Exporter {
		return infra.NewFileExporter()
	})

	di.RegisterToken(c, analyticsDI.Reporter, func(sr di.ServiceRegistry) *infra.ConsoleReporter {
		return infra.NewConsoleReporter()
	})

	// Analyzer (public - exposed to other modules)
	di.RegisterToken(c, analyticsDI.Analyzer, func(sr di.ServiceRegistry) *app.Analyzer {
		cfg := sr.Get("config").(*config.Config)
		log := sr.Get("logger").(logger.LoggerInterface)

		var opts []domain.CalculatorOption
		if cfg.Analytics.ClampNegativeCogs {
			opts = append(opts, domain.WithClampNegativeCogs())
		}

		return app.NewAnalyzer(
			di.GetToken(sr, analyticsDI.ProductSource),
			di.GetToken(sr, analyticsDI.ManualSource),
			domain.NewCalculator(opts...),
			di.GetToken(sr, analyticsDI.Exporter),
			log,
		)
	})

	return nil
}

// Startup initializes the analytics module.
func (m *Module) Startup(ctx context.Context, mono monolith.Monolith) error {
	mono.Logger().Info(ctx, "analytics module started")
	return nil
}
