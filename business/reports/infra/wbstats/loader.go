package wbstats

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/profitlens/seller-analytics/internal/apperror"
	"github.com/profitlens/seller-analytics/internal/logger"
)

// Loader downloads several reports in parallel and bundles the results.
type Loader struct {
	client *Client
	logger logger.LoggerInterface
}

// NewLoader creates a Loader.
func NewLoader(client *Client, log logger.LoggerInterface) *Loader {
	return &Loader{client: client, logger: log}
}

// LoadReports fetches all requested reports concurrently. Every key gets
// a result; per-report failures are recorded in the envelope.
func (l *Loader) LoadReports(ctx context.Context, keys []string, from, to time.Time) map[string]*ReportResult {
	results := make(map[string]*ReportResult, len(keys))

	var wg sync.WaitGroup
	out := make(chan *ReportResult, len(keys))

	for _, key := range keys {
		wg.Add(1)
		go func(key string) {
			defer wg.Done()
			out <- l.client.FetchReport(ctx, key, from, to)
		}(key)
	}

	wg.Wait()
	close(out)

	for result := range out {
		results[result.Key] = result
	}

	return results
}

// bundle is the on-disk shape of a saved report set.
type bundle struct {
	Metadata bundleMetadata           `json:"metadata"`
	Reports  map[string]*ReportResult `json:"reports"`
}

type bundleMetadata struct {
	GeneratedAt   string   `json:"generated_at"`
	ReportsCount  int      `json:"reports_count"`
	ReportsLoaded []string `json:"reports_loaded"`
}

// SaveJSON writes the fetched reports with metadata to path.
func (l *Loader) SaveJSON(results map[string]*ReportResult, path string) error {
	loaded := make([]string, 0, len(results))
	for key := range results {
		loaded = append(loaded, key)
	}

	b := bundle{
		Metadata: bundleMetadata{
			GeneratedAt:   time.Now().Format(time.RFC3339),
			ReportsCount:  len(results),
			ReportsLoaded: loaded,
		},
		Reports: results,
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return apperror.New(apperror.CodeExportFailed, apperror.WithCause(err),
			apperror.WithContext(filepath.Dir(path)))
	}

	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return apperror.New(apperror.CodeExportFailed, apperror.WithCause(err))
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return apperror.New(apperror.CodeExportFailed, apperror.WithCause(err),
			apperror.WithContext(path))
	}

	return nil
}

// LogSummary writes a per-report outcome summary to the log.
func (l *Loader) LogSummary(ctx context.Context, results map[string]*ReportResult) {
	for key, result := range results {
		if result.OK() {
			l.logger.Info(ctx, "report loaded", "report", key, "name", result.Name, "rows", result.Count)
		} else {
			l.logger.Warn(ctx, "report failed", "report", key, "name", result.Name, "error", result.Error)
		}
	}
}

// Download fetches keys in parallel and saves the bundle to outPath.
// It returns how many reports succeeded and failed.
func (l *Loader) Download(ctx context.Context, keys []string, from, to time.Time, outPath string) (int, int, error) {
	results := l.LoadReports(ctx, keys, from, to)
	l.LogSummary(ctx, results)

	var succeeded, failed int
	for _, result := range results {
		if result.OK() {
			succeeded++
		} else {
			failed++
		}
	}

	if err := l.SaveJSON(results, outPath); err != nil {
		return succeeded, failed, err
	}
	return succeeded, failed, nil
}

// DefaultBundlePath returns a timestamped path inside dir.
func DefaultBundlePath(dir string) string {
	return filepath.Join(dir, fmt.Sprintf("wb_reports_%s.json", time.Now().Format("20060102_150405")))
}
