// Package di contains dependency injection tokens for the reports context.
package di

import (
	"github.com/profitlens/seller-analytics/business/reports/app"
	"github.com/profitlens/seller-analytics/business/reports/infra/wbstats"
	"github.com/profitlens/seller-analytics/internal/di"
)

// Public service tokens - exposed to other modules
var (
	Aggregator   = di.NewToken[*app.Aggregator]("reports.Aggregator")
	FetchService = di.NewToken[*app.FetchService]("reports.FetchService")
)

// Private dependency tokens - internal to reports module
var (
	StatsClient  = di.NewToken[*wbstats.Client]("reports:statsClient")
	RecordSource = di.NewToken[app.RecordSource]("reports:recordSource")
	CSVReader    = di.NewToken[app.RecordReader]("reports:csvReader")
	JSONReader   = di.NewToken[app.RecordReader]("reports:jsonReader")
	Downloader   = di.NewToken[app.Downloader]("reports:downloader")
)

// Helper functions for type-safe access
func GetAggregator(c di.ServiceRegistry) *app.Aggregator {
	return di.GetToken(c, Aggregator)
}

func GetFetchService(c di.ServiceRegistry) *app.FetchService {
	return di.GetToken(c, FetchService)
}

func GetRecordSource(c di.ServiceRegistry) app.RecordSource {
	return di.GetToken(c, RecordSource)
}
