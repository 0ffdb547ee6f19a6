package domain

import (
	"testing"

	"github.com/shopspring/decimal"

	catalog "github.com/profitlens/seller-analytics/business/catalog/domain"
	reports "github.com/profitlens/seller-analytics/business/reports/domain"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func aggregateOf(t *testing.T, entries map[catalog.ProductID]string) *reports.Aggregate {
	t.Helper()
	agg := reports.NewAggregate()
	for id, forPay := range entries {
		agg.Add(reports.Record{ProductID: id, Quantity: 1, ForPay: d(forPay)})
	}
	return agg
}

func findTotal(t *testing.T, r *Report, name string) FieldDiff {
	t.Helper()
	for _, total := range r.Totals {
		if total.Name == name {
			return total
		}
	}
	t.Fatalf("total %q not in report", name)
	return FieldDiff{}
}

func TestCompareTotals(t *testing.T) {
	a := aggregateOf(t, map[catalog.ProductID]string{1: "1050", 2: "500"})
	b := aggregateOf(t, map[catalog.ProductID]string{1: "1000", 2: "500"})

	report := NewComparator(DefaultDivergenceThresholdPct).Compare(a, b)

	toPay := findTotal(t, report, "to_pay")
	if !toPay.Diff.Equal(d("50")) {
		t.Errorf("to_pay diff = %s, want 50", toPay.Diff)
	}
	wantPct := d("50").Div(d("1500")).Mul(d("100"))
	if !toPay.DiffPct.Equal(wantPct) {
		t.Errorf("to_pay diff_pct = %s, want %s", toPay.DiffPct, wantPct)
	}
	if toPay.Divergent {
		t.Error("to_pay flagged divergent below threshold")
	}

	articles := findTotal(t, report, "articles")
	if !articles.Diff.IsZero() || articles.Divergent {
		t.Errorf("articles diff = %s divergent=%v, want 0 and false", articles.Diff, articles.Divergent)
	}
}

func TestCompareDivergenceAtThreshold(t *testing.T) {
	// 105 vs 100 is exactly 5 percent, which counts as divergent.
	a := aggregateOf(t, map[catalog.ProductID]string{1: "105"})
	b := aggregateOf(t, map[catalog.ProductID]string{1: "100"})

	report := NewComparator(DefaultDivergenceThresholdPct).Compare(a, b)

	if !findTotal(t, report, "to_pay").Divergent {
		t.Error("5 percent difference not flagged divergent")
	}
}

func TestCompareZeroBaseline(t *testing.T) {
	a := aggregateOf(t, map[catalog.ProductID]string{1: "100"})
	b := reports.NewAggregate()

	report := NewComparator(DefaultDivergenceThresholdPct).Compare(a, b)

	toPay := findTotal(t, report, "to_pay")
	if !toPay.DiffPct.IsZero() {
		t.Errorf("diff_pct against zero baseline = %s, want 0", toPay.DiffPct)
	}
}

func TestComparePartition(t *testing.T) {
	a := aggregateOf(t, map[catalog.ProductID]string{1: "1", 2: "1", 3: "1", 10: "1", 11: "1", 12: "1", 13: "1", 14: "1", 15: "1"})
	b := aggregateOf(t, map[catalog.ProductID]string{1: "1", 2: "1", 3: "1", 99: "1"})

	report := NewComparator(DefaultDivergenceThresholdPct).Compare(a, b)
	p := report.Partition

	if p.CommonCount != 3 {
		t.Errorf("CommonCount = %d, want 3", p.CommonCount)
	}
	if p.OnlyACount != 6 {
		t.Errorf("OnlyACount = %d, want 6", p.OnlyACount)
	}
	if p.OnlyBCount != 1 {
		t.Errorf("OnlyBCount = %d, want 1", p.OnlyBCount)
	}
	if len(p.OnlyA) != 5 {
		t.Errorf("OnlyA preview length = %d, want 5", len(p.OnlyA))
	}
	want := []catalog.ProductID{10, 11, 12, 13, 14}
	for i, id := range p.OnlyA {
		if id != want[i] {
			t.Errorf("OnlyA[%d] = %d, want %d", i, id, want[i])
		}
	}
}

func TestCustomThreshold(t *testing.T) {
	a := aggregateOf(t, map[catalog.ProductID]string{1: "102"})
	b := aggregateOf(t, map[catalog.ProductID]string{1: "100"})

	if findTotal(t, NewComparator(d("10")).Compare(a, b), "to_pay").Divergent {
		t.Error("2 percent flagged divergent with 10 percent threshold")
	}
	if !findTotal(t, NewComparator(d("1")).Compare(a, b), "to_pay").Divergent {
		t.Error("2 percent not flagged divergent with 1 percent threshold")
	}
}
