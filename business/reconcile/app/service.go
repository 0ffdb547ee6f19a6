package app

import (
	"context"
	"time"

	"github.com/profitlens/seller-analytics/business/reconcile/domain"
	reportsApp "github.com/profitlens/seller-analytics/business/reports/app"
	"github.com/profitlens/seller-analytics/internal/logger"
)

// Service reconciles the API rendition of a period against a local
// report file.
type Service struct {
	aggregator *reportsApp.Aggregator
	comparator *domain.Comparator
	writer     ReportWriter
	logger     logger.LoggerInterface
}

// NewService creates a reconcile Service.
func NewService(agg *reportsApp.Aggregator, cmp *domain.Comparator, writer ReportWriter, log logger.LoggerInterface) *Service {
	return &Service{
		aggregator: agg,
		comparator: cmp,
		writer:     writer,
		logger:     log,
	}
}

// Reconcile fetches the period from the API, reads the local file, and
// compares the two aggregates.
func (s *Service) Reconcile(ctx context.Context, from, to time.Time, filePath string) (*Result, error) {
	apiAgg, err := s.aggregator.FromAPI(ctx, from, to)
	if err != nil {
		return nil, err
	}

	fileAgg, err := s.aggregator.FromFile(ctx, filePath)
	if err != nil {
		return nil, err
	}

	report := s.comparator.Compare(apiAgg, fileAgg)

	result := &Result{
		From:       from,
		To:         to,
		FilePath:   filePath,
		APITotals:  apiAgg.Totals(),
		FileTotals: fileAgg.Totals(),
		Report:     report,
	}

	s.logger.Info(ctx, "reconciliation complete",
		"common", report.Partition.CommonCount,
		"only_api", report.Partition.OnlyACount,
		"only_file", report.Partition.OnlyBCount,
		"divergent", report.Divergent())

	return result, nil
}

// Save persists the result through the configured writer.
func (s *Service) Save(ctx context.Context, result *Result, path string) error {
	if err := s.writer.Save(result, path); err != nil {
		return err
	}
	s.logger.Info(ctx, "reconciliation report saved", "path", path)
	return nil
}
