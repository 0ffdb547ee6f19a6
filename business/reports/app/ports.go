// Package app contains application services and port definitions for the
// reports context.
package app

import (
	"context"
	"time"

	"github.com/profitlens/seller-analytics/business/reports/domain"
)

// RecordSource fetches realization report records for a period.
type RecordSource interface {
	Records(ctx context.Context, from, to time.Time) ([]domain.Record, error)
}

// RecordReader reads realization report records from a local file.
type RecordReader interface {
	ReadRecords(path string) ([]domain.Record, error)
}

// Downloader fetches a set of reports and persists them as one bundle.
type Downloader interface {
	// Download returns how many reports succeeded and failed.
	Download(ctx context.Context, keys []string, from, to time.Time, outPath string) (succeeded, failed int, err error)
}
