// Package di contains dependency injection tokens for the reconcile context.
package di

import (
	"github.com/profitlens/seller-analytics/business/reconcile/app"
	"github.com/profitlens/seller-analytics/business/reconcile/infra"
	"github.com/profitlens/seller-analytics/internal/di"
)

// Public service tokens - exposed to other modules
var (
	Service  = di.NewToken[*app.Service]("reconcile.Service")
	Reporter = di.NewToken[*infra.ConsoleReporter]("reconcile.Reporter")
)

// Private dependency tokens - internal to reconcile module
var (
	Writer = di.NewToken[app.ReportWriter]("reconcile:writer")
)

// Helper functions for type-safe access
func GetService(c di.ServiceRegistry) *app.Service {
	return di.GetToken(c, Service)
}

func GetReporter(c di.ServiceRegistry) *infra.ConsoleReporter {
	return di.GetToken(c, Reporter)
}
