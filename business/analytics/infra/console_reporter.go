package infra

import (
	"fmt"
	"io"
	"os"

	"github.com/profitlens/seller-analytics/business/analytics/app"
	catalog "github.com/profitlens/seller-analytics/business/catalog/domain"
)

// ConsoleReporter prints an analysis summary for CLI runs.
type ConsoleReporter struct {
	out io.Writer
}

// NewConsoleReporter creates a new ConsoleReporter.
func NewConsoleReporter() *ConsoleReporter {
	return &ConsoleReporter{
		out: os.Stdout,
	}
}

// Report prints totals and the best and worst performers.
func (r *ConsoleReporter) Report(analysis *app.Analysis) {
	fmt.Fprintln(r.out, "")
	fmt.Fprintln(r.out, "================================================================================")
	fmt.Fprintln(r.out, "PROFITABILITY SUMMARY")
	fmt.Fprintln(r.out, "================================================================================")
	fmt.Fprintf(r.out, "Products:       %d\n", len(analysis.Metrics))
	fmt.Fprintln(r.out, "--------------------------------------------------------------------------------")
	fmt.Fprintln(r.out, "TOTALS")
	fmt.Fprintf(r.out, "  Revenue:        %s\n", analysis.Totals.Revenue.StringFixed(2))
	fmt.Fprintf(r.out, "  COGS:           %s\n", analysis.Totals.Cogs.StringFixed(2))
	fmt.Fprintf(r.out, "  Gross Profit:   %s\n", analysis.Totals.GrossProfit.StringFixed(2))
	fmt.Fprintf(r.out, "  Net Profit:     %s\n", analysis.Totals.NetProfit.StringFixed(2))

	fmt.Fprintln(r.out, "--------------------------------------------------------------------------------")
	fmt.Fprintln(r.out, "TOP PERFORMERS")
	for i, m := range analysis.Top(3) {
		r.printProduct(i+1, m)
	}

	fmt.Fprintln(r.out, "--------------------------------------------------------------------------------")
	fmt.Fprintln(r.out, "WORST PERFORMERS")
	for i, m := range analysis.Bottom(3) {
		r.printProduct(i+1, m)
	}

	fmt.Fprintln(r.out, "================================================================================")
}

func (r *ConsoleReporter) printProduct(rank int, m catalog.ProductMetrics) {
	name := m.Product.Name
	if name == "" {
		name = fmt.Sprintf("product %d", m.Product.ID)
	}
	fmt.Fprintf(r.out, "  %d. %s\n", rank, name)
	fmt.Fprintf(r.out, "     Net Profit: %s | Margin: %s%% | ROI: %s%%\n",
		m.NetProfit.StringFixed(2),
		m.ProfitMarginPct.StringFixed(1),
		m.RoiPct.StringFixed(1))
}
