// Package infra contains infrastructure adapters for the analytics
// context.
package infra

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"

	catalog "github.com/profitlens/seller-analytics/business/catalog/domain"
	"github.com/profitlens/seller-analytics/internal/apperror"
)

// summaryHeader is the fixed CSV column order, matching the JSON keys.
var summaryHeader = []string{
	"product_id", "product_name", "sales", "returns", "net_sales",
	"revenue", "cogs", "gross_profit", "total_expenses", "net_profit",
	"profit_margin_percent", "roi_percent", "avg_check",
}

// FileExporter writes analysis summaries to JSON and CSV files.
type FileExporter struct{}

// NewFileExporter creates a FileExporter.
func NewFileExporter() *FileExporter {
	return &FileExporter{}
}

// ExportJSON writes the summaries as a JSON array.
func (e *FileExporter) ExportJSON(summaries []catalog.Summary, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return apperror.New(apperror.CodeExportFailed, apperror.WithCause(err),
			apperror.WithContext(filepath.Dir(path)))
	}

	data, err := json.MarshalIndent(summaries, "", "  ")
	if err != nil {
		return apperror.New(apperror.CodeExportFailed, apperror.WithCause(err))
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return apperror.New(apperror.CodeExportFailed, apperror.WithCause(err),
			apperror.WithContext(path))
	}
	return nil
}

// ExportCSV writes the summaries with a fixed header order.
func (e *FileExporter) ExportCSV(summaries []catalog.Summary, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return apperror.New(apperror.CodeExportFailed, apperror.WithCause(err),
			apperror.WithContext(filepath.Dir(path)))
	}

	f, err := os.Create(path)
	if err != nil {
		return apperror.New(apperror.CodeExportFailed, apperror.WithCause(err),
			apperror.WithContext(path))
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(summaryHeader); err != nil {
		return apperror.New(apperror.CodeExportFailed, apperror.WithCause(err))
	}

	money := func(v float64) string {
		return strconv.FormatFloat(v, 'f', 2, 64)
	}

	for _, s := range summaries {
		row := []string{
			strconv.FormatInt(s.ProductID, 10),
			s.ProductName,
			strconv.FormatInt(s.Sales, 10),
			strconv.FormatInt(s.Returns, 10),
			strconv.FormatInt(s.NetSales, 10),
			money(s.Revenue),
			money(s.Cogs),
			money(s.GrossProfit),
			money(s.TotalExpenses),
			money(s.NetProfit),
			money(s.ProfitMarginPct),
			money(s.RoiPct),
			money(s.AvgCheck),
		}
		if err := w.Write(row); err != nil {
			return apperror.New(apperror.CodeExportFailed, apperror.WithCause(err))
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return apperror.New(apperror.CodeExportFailed, apperror.WithCause(err))
	}
	return nil
}
