// Package di contains dependency injection tokens for the analytics context.
package di

import (
	"github.com/profitlens/seller-analytics/business/analytics/app"
	"github.com/profitlens/seller-analytics/business/analytics/infra"
	"github.com/profitlens/seller-analytics/internal/di"
)

// Public service tokens - exposed to other modules
var (
	Analyzer = di.NewToken[*app.Analyzer]("analytics.Analyzer")
	Reporter = di.NewToken[*infra.ConsoleReporter]("analytics.Reporter")
)

// Private dependency tokens - internal to analytics module
var (
	ProductSource = di.NewToken[app.ProductSource]("analytics:productSource")
	ManualSource  = di.NewToken[app.ManualSource]("analytics:manualSource")
	Exporter      = di.NewToken[app.Exporter]("analytics:exporter")
)

// Helper functions for type-safe access
func GetAnalyzer(c di.ServiceRegistry) *app.Analyzer {
	return di.GetToken(c, Analyzer)
}

func GetReporter(c di.ServiceRegistry) *infra.ConsoleReporter {
	return di.GetToken(c, Reporter)
}
