package app

import (
	"context"
	"time"

	"github.com/profitlens/seller-analytics/internal/apperror"
	"github.com/profitlens/seller-analytics/internal/logger"
)

// FetchService downloads report bundles for offline analysis.
type FetchService struct {
	downloader Downloader
	logger     logger.LoggerInterface
}

// NewFetchService creates a FetchService.
func NewFetchService(downloader Downloader, log logger.LoggerInterface) *FetchService {
	return &FetchService{downloader: downloader, logger: log}
}

// Fetch downloads the requested reports into one bundle file. An error
// is returned only when every report failed; partial results are saved.
func (s *FetchService) Fetch(ctx context.Context, keys []string, from, to time.Time, outPath string) (succeeded, failed int, err error) {
	succeeded, failed, err = s.downloader.Download(ctx, keys, from, to, outPath)
	if err != nil {
		return 0, 0, err
	}

	s.logger.Info(ctx, "report bundle saved",
		"path", outPath, "succeeded", succeeded, "failed", failed)

	if succeeded == 0 {
		return succeeded, failed, apperror.New(apperror.CodeReportFetchFailed,
			apperror.WithContext("all requested reports failed"))
	}
	return succeeded, failed, nil
}
