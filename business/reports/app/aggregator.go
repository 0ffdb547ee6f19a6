package app

import (
	"context"
	"strings"
	"time"

	"github.com/profitlens/seller-analytics/business/reports/domain"
	"github.com/profitlens/seller-analytics/internal/apperror"
	"github.com/profitlens/seller-analytics/internal/logger"
)

// Aggregator folds realization report records into per-product buckets,
// whatever the source.
type Aggregator struct {
	api    RecordSource
	csv    RecordReader
	json   RecordReader
	logger logger.LoggerInterface
}

// NewAggregator creates an Aggregator.
func NewAggregator(api RecordSource, csv, json RecordReader, log logger.LoggerInterface) *Aggregator {
	return &Aggregator{api: api, csv: csv, json: json, logger: log}
}

// FromAPI fetches the period's records from the statistics API and
// aggregates them.
func (a *Aggregator) FromAPI(ctx context.Context, from, to time.Time) (*domain.Aggregate, error) {
	records, err := a.api.Records(ctx, from, to)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, apperror.New(apperror.CodeEmptyReport,
			apperror.WithContext("statistics API returned no records for the period"))
	}

	agg := a.Fold(records)
	a.logger.Info(ctx, "aggregated API records",
		"records", len(records), "products", agg.Len(), "skipped", agg.Skipped())
	return agg, nil
}

// FromFile reads records from a local report file, choosing the reader
// by extension, and aggregates them.
func (a *Aggregator) FromFile(ctx context.Context, path string) (*domain.Aggregate, error) {
	var reader RecordReader
	switch {
	case strings.HasSuffix(path, ".csv"):
		reader = a.csv
	case strings.HasSuffix(path, ".json"):
		reader = a.json
	default:
		return nil, apperror.New(apperror.CodeInvalidFormat,
			apperror.WithContext(path+": expected .csv or .json"))
	}

	records, err := reader.ReadRecords(path)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, apperror.New(apperror.CodeEmptyReport, apperror.WithContext(path))
	}

	agg := a.Fold(records)
	a.logger.Info(ctx, "aggregated file records",
		"path", path, "records", len(records), "products", agg.Len(), "skipped", agg.Skipped())
	return agg, nil
}

// Fold aggregates an in-memory record slice.
func (a *Aggregator) Fold(records []domain.Record) *domain.Aggregate {
	agg := domain.NewAggregate()
	for _, rec := range records {
		agg.Add(rec)
	}
	return agg
}
