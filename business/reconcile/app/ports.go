// Package app contains application services and port definitions for the
// reconcile context.
package app

import (
	"time"

	"github.com/profitlens/seller-analytics/business/reconcile/domain"
	reports "github.com/profitlens/seller-analytics/business/reports/domain"
)

// Result bundles a reconciliation report with its inputs.
type Result struct {
	From       time.Time      `json:"from"`
	To         time.Time      `json:"to"`
	FilePath   string         `json:"file_path"`
	APITotals  reports.Totals `json:"api_totals"`
	FileTotals reports.Totals `json:"file_totals"`
	Report     *domain.Report `json:"comparison"`
}

// ReportWriter persists a reconciliation result.
type ReportWriter interface {
	Save(result *Result, path string) error
}
