package app

import (
	"context"
	"io"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/profitlens/seller-analytics/business/analytics/domain"
	catalog "github.com/profitlens/seller-analytics/business/catalog/domain"
	"github.com/profitlens/seller-analytics/internal/apperror"
	"github.com/profitlens/seller-analytics/internal/logger"
)

type fakeProducts struct {
	products []*catalog.Product
	err      error
}

func (f *fakeProducts) ReadProducts(path string) ([]*catalog.Product, error) {
	return f.products, f.err
}

type fakeManual struct {
	data  map[catalog.ProductID]catalog.ManualInputData
	calls int
}

func (f *fakeManual) LoadManualData(path string) (map[catalog.ProductID]catalog.ManualInputData, error) {
	f.calls++
	return f.data, nil
}

type fakeExporter struct {
	jsonPaths []string
	csvPaths  []string
}

func (f *fakeExporter) ExportJSON(summaries []catalog.Summary, path string) error {
	f.jsonPaths = append(f.jsonPaths, path)
	return nil
}

func (f *fakeExporter) ExportCSV(summaries []catalog.Summary, path string) error {
	f.csvPaths = append(f.csvPaths, path)
	return nil
}

func testLogger() *logger.Logger {
	return logger.New(io.Discard, logger.LevelInfo, "test", nil)
}

func TestAnalyzer_Analyze(t *testing.T) {
	products := &fakeProducts{products: []*catalog.Product{
		{
			ID:                  100,
			Name:                "Jacket",
			Sales:               10,
			SalesAmountAfterSPP: decimal.RequireFromString("1000"),
			LogisticsCost:       decimal.RequireFromString("100"),
		},
		{
			ID:                  200,
			Name:                "Scarf",
			Sales:               5,
			Returns:             1,
			SalesAmountAfterSPP: decimal.RequireFromString("300"),
			LogisticsCost:       decimal.RequireFromString("50"),
		},
	}}
	manual := &fakeManual{data: map[catalog.ProductID]catalog.ManualInputData{
		100: {CostPerUnit: decimal.RequireFromString("50")},
	}}

	a := NewAnalyzer(products, manual, domain.NewCalculator(), &fakeExporter{}, testLogger())

	analysis, err := a.Analyze(context.Background(), "report.json", "manual.json")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if len(analysis.Metrics) != 2 {
		t.Fatalf("got %d metrics, want 2", len(analysis.Metrics))
	}
	if manual.calls != 1 {
		t.Errorf("manual source called %d times, want 1", manual.calls)
	}

	// Sorted by net profit, most profitable first.
	// Jacket: cogs 10x50=500, gross 500, expenses 100, net 400.
	// Scarf: no manual cost, gross 300, expenses 50, net 250.
	if got := analysis.Metrics[0].Product.ID; got != 100 {
		t.Errorf("first product = %d, want 100", got)
	}
	if got := analysis.Metrics[0].NetProfit; !got.Equal(decimal.RequireFromString("400")) {
		t.Errorf("jacket net profit = %s, want 400", got)
	}
	if got := analysis.Metrics[1].NetProfit; !got.Equal(decimal.RequireFromString("250")) {
		t.Errorf("scarf net profit = %s, want 250", got)
	}

	wantTotals := []struct {
		name string
		got  decimal.Decimal
		want string
	}{
		{"revenue", analysis.Totals.Revenue, "1300"},
		{"cogs", analysis.Totals.Cogs, "500"},
		{"gross profit", analysis.Totals.GrossProfit, "800"},
		{"net profit", analysis.Totals.NetProfit, "650"},
	}
	for _, tt := range wantTotals {
		if !tt.got.Equal(decimal.RequireFromString(tt.want)) {
			t.Errorf("total %s = %s, want %s", tt.name, tt.got, tt.want)
		}
	}
}

func TestAnalyzer_AnalyzeWithoutManualPath(t *testing.T) {
	products := &fakeProducts{products: []*catalog.Product{
		{ID: 100, Sales: 1, SalesAmountAfterSPP: decimal.RequireFromString("100")},
	}}
	manual := &fakeManual{}

	a := NewAnalyzer(products, manual, domain.NewCalculator(), &fakeExporter{}, testLogger())

	if _, err := a.Analyze(context.Background(), "report.json", ""); err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if manual.calls != 0 {
		t.Errorf("manual source called %d times, want 0", manual.calls)
	}
}

func TestAnalyzer_AnalyzeEmptyReport(t *testing.T) {
	a := NewAnalyzer(&fakeProducts{}, &fakeManual{}, domain.NewCalculator(), &fakeExporter{}, testLogger())

	_, err := a.Analyze(context.Background(), "report.json", "")
	if err == nil {
		t.Fatal("expected error for empty report")
	}
	if code := apperror.GetCode(err); code != apperror.CodeEmptyReport {
		t.Errorf("error code = %s, want %s", code, apperror.CodeEmptyReport)
	}
}

func TestAnalyzer_ExportFormats(t *testing.T) {
	tests := []struct {
		format   string
		wantJSON int
		wantCSV  int
	}{
		{"json", 1, 0},
		{"csv", 0, 1},
		{"both", 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			exporter := &fakeExporter{}
			a := NewAnalyzer(&fakeProducts{}, &fakeManual{}, domain.NewCalculator(), exporter, testLogger())

			err := a.Export(context.Background(), &Analysis{}, "out", tt.format)
			if err != nil {
				t.Fatalf("Export: %v", err)
			}
			if len(exporter.jsonPaths) != tt.wantJSON {
				t.Errorf("json exports = %d, want %d", len(exporter.jsonPaths), tt.wantJSON)
			}
			if len(exporter.csvPaths) != tt.wantCSV {
				t.Errorf("csv exports = %d, want %d", len(exporter.csvPaths), tt.wantCSV)
			}
		})
	}
}
