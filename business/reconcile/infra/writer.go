// Package infra contains infrastructure adapters for the reconcile
// context.
package infra

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/profitlens/seller-analytics/business/reconcile/app"
	"github.com/profitlens/seller-analytics/internal/apperror"
)

// JSONWriter saves reconciliation results as JSON files.
type JSONWriter struct{}

// NewJSONWriter creates a JSONWriter.
func NewJSONWriter() *JSONWriter {
	return &JSONWriter{}
}

type savedResult struct {
	GeneratedAt string `json:"generated_at"`
	*app.Result
}

// Save writes the result with a generation timestamp.
func (w *JSONWriter) Save(result *app.Result, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return apperror.New(apperror.CodeExportFailed, apperror.WithCause(err),
			apperror.WithContext(filepath.Dir(path)))
	}

	data, err := json.MarshalIndent(savedResult{
		GeneratedAt: time.Now().Format(time.RFC3339),
		Result:      result,
	}, "", "  ")
	if err != nil {
		return apperror.New(apperror.CodeExportFailed, apperror.WithCause(err))
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return apperror.New(apperror.CodeExportFailed, apperror.WithCause(err),
			apperror.WithContext(path))
	}
	return nil
}

// ConsoleReporter prints a reconciliation result for CLI runs.
type ConsoleReporter struct {
	out io.Writer
}

// NewConsoleReporter creates a ConsoleReporter.
func NewConsoleReporter() *ConsoleReporter {
	return &ConsoleReporter{out: os.Stdout}
}

// Report prints the per-total differences and the id partition.
func (r *ConsoleReporter) Report(result *app.Result) {
	fmt.Fprintln(r.out, "")
	fmt.Fprintln(r.out, "================================================================================")
	fmt.Fprintln(r.out, "API vs FILE RECONCILIATION")
	fmt.Fprintln(r.out, "================================================================================")
	fmt.Fprintf(r.out, "Period:         %s to %s\n",
		result.From.Format("2006-01-02"), result.To.Format("2006-01-02"))
	fmt.Fprintf(r.out, "File:           %s\n", result.FilePath)
	fmt.Fprintln(r.out, "--------------------------------------------------------------------------------")
	fmt.Fprintln(r.out, "TOTALS")

	for _, t := range result.Report.Totals {
		flag := "ok"
		if t.Divergent {
			flag = "DIVERGENT"
		}
		fmt.Fprintf(r.out, "  %-12s API: %s  FILE: %s  diff: %s (%s%%)  [%s]\n",
			t.Name, t.A.StringFixed(2), t.B.StringFixed(2),
			t.Diff.StringFixed(2), t.DiffPct.StringFixed(1), flag)
	}

	p := result.Report.Partition
	fmt.Fprintln(r.out, "--------------------------------------------------------------------------------")
	fmt.Fprintln(r.out, "PRODUCTS")
	fmt.Fprintf(r.out, "  Common:         %d\n", p.CommonCount)
	fmt.Fprintf(r.out, "  Only in API:    %d", p.OnlyACount)
	if len(p.OnlyA) > 0 {
		fmt.Fprintf(r.out, "  %v", p.OnlyA)
	}
	fmt.Fprintln(r.out, "")
	fmt.Fprintf(r.out, "  Only in file:   %d", p.OnlyBCount)
	if len(p.OnlyB) > 0 {
		fmt.Fprintf(r.out, "  %v", p.OnlyB)
	}
	fmt.Fprintln(r.out, "")
	fmt.Fprintln(r.out, "================================================================================")
}
