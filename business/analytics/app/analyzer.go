package app

import (
	"context"
	"path/filepath"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/profitlens/seller-analytics/business/analytics/domain"
	catalog "github.com/profitlens/seller-analytics/business/catalog/domain"
	"github.com/profitlens/seller-analytics/internal/apperror"
	"github.com/profitlens/seller-analytics/internal/logger"
)

// Totals sums the headline figures across all analyzed products.
type Totals struct {
	Revenue     decimal.Decimal
	Cogs        decimal.Decimal
	GrossProfit decimal.Decimal
	NetProfit   decimal.Decimal
}

// Analysis is the outcome of one analyze run. Metrics are ordered by
// net profit, most profitable first.
type Analysis struct {
	Metrics []catalog.ProductMetrics
	Totals  Totals
}

// Summaries returns the export shape of all metrics in order.
func (a *Analysis) Summaries() []catalog.Summary {
	out := make([]catalog.Summary, len(a.Metrics))
	for i := range a.Metrics {
		out[i] = a.Metrics[i].ToSummary()
	}
	return out
}

// Top returns the n most profitable products.
func (a *Analysis) Top(n int) []catalog.ProductMetrics {
	if n > len(a.Metrics) {
		n = len(a.Metrics)
	}
	return a.Metrics[:n]
}

// Bottom returns the n least profitable products, worst first.
func (a *Analysis) Bottom(n int) []catalog.ProductMetrics {
	if n > len(a.Metrics) {
		n = len(a.Metrics)
	}
	out := make([]catalog.ProductMetrics, n)
	for i := 0; i < n; i++ {
		out[i] = a.Metrics[len(a.Metrics)-1-i]
	}
	return out
}

// Analyzer runs the profitability analysis over a product report plus
// the seller's manual input.
type Analyzer struct {
	products   ProductSource
	manual     ManualSource
	calculator *domain.Calculator
	exporter   Exporter
	logger     logger.LoggerInterface
}

// NewAnalyzer creates an Analyzer.
func NewAnalyzer(products ProductSource, manual ManualSource, calc *domain.Calculator, exporter Exporter, log logger.LoggerInterface) *Analyzer {
	return &Analyzer{
		products:   products,
		manual:     manual,
		calculator: calc,
		exporter:   exporter,
		logger:     log,
	}
}

// Analyze loads products from inputPath, attaches manual input from
// manualPath when given, and computes all metrics.
func (a *Analyzer) Analyze(ctx context.Context, inputPath, manualPath string) (*Analysis, error) {
	products, err := a.products.ReadProducts(inputPath)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, apperror.New(apperror.CodeEmptyReport, apperror.WithContext(inputPath))
	}

	if manualPath != "" {
		manual, err := a.manual.LoadManualData(manualPath)
		if err != nil {
			return nil, err
		}
		for _, p := range products {
			if m, ok := manual[p.ID]; ok {
				p.Manual = m
			}
		}
	}

	analysis := &Analysis{Metrics: make([]catalog.ProductMetrics, 0, len(products))}
	for _, p := range products {
		m := a.calculator.Calculate(p)
		analysis.Metrics = append(analysis.Metrics, m)

		analysis.Totals.Revenue = analysis.Totals.Revenue.Add(p.Revenue())
		analysis.Totals.Cogs = analysis.Totals.Cogs.Add(m.Cogs)
		analysis.Totals.GrossProfit = analysis.Totals.GrossProfit.Add(m.GrossProfit)
		analysis.Totals.NetProfit = analysis.Totals.NetProfit.Add(m.NetProfit)
	}

	sort.SliceStable(analysis.Metrics, func(i, j int) bool {
		return analysis.Metrics[i].NetProfit.GreaterThan(analysis.Metrics[j].NetProfit)
	})

	a.logger.Info(ctx, "analysis complete",
		"products", len(analysis.Metrics),
		"net_profit", analysis.Totals.NetProfit.StringFixed(2))

	return analysis, nil
}

// Export writes the analysis into dir in the requested format: "json",
// "csv" or "both".
func (a *Analyzer) Export(ctx context.Context, analysis *Analysis, dir, format string) error {
	summaries := analysis.Summaries()

	if format == "json" || format == "both" {
		path := filepath.Join(dir, "report.json")
		if err := a.exporter.ExportJSON(summaries, path); err != nil {
			return err
		}
		a.logger.Info(ctx, "exported analysis", "path", path)
	}

	if format == "csv" || format == "both" {
		path := filepath.Join(dir, "report.csv")
		if err := a.exporter.ExportCSV(summaries, path); err != nil {
			return err
		}
		a.logger.Info(ctx, "exported analysis", "path", path)
	}

	return nil
}
