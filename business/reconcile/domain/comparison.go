// Package domain contains the comparison logic for the reconcile
// context: it measures how far two renditions of the same report
// diverge.
package domain

import (
	"sort"

	"github.com/shopspring/decimal"

	catalog "github.com/profitlens/seller-analytics/business/catalog/domain"
	reports "github.com/profitlens/seller-analytics/business/reports/domain"
)

// DefaultDivergenceThresholdPct flags per-total differences of five
// percent or more.
var DefaultDivergenceThresholdPct = decimal.NewFromInt(5)

const previewLimit = 5

var hundred = decimal.NewFromInt(100)

// FieldDiff is the comparison of one total between sources A and B.
type FieldDiff struct {
	Name      string          `json:"name"`
	A         decimal.Decimal `json:"a"`
	B         decimal.Decimal `json:"b"`
	Diff      decimal.Decimal `json:"diff"`
	DiffPct   decimal.Decimal `json:"diff_pct"`
	Divergent bool            `json:"divergent"`
}

// Partition splits the product id sets of the two sources.
type Partition struct {
	CommonCount int                 `json:"common_count"`
	OnlyACount  int                 `json:"only_a_count"`
	OnlyBCount  int                 `json:"only_b_count"`
	OnlyA       []catalog.ProductID `json:"only_a_preview,omitempty"`
	OnlyB       []catalog.ProductID `json:"only_b_preview,omitempty"`
}

// Report is the full reconciliation outcome.
type Report struct {
	Totals    []FieldDiff `json:"totals"`
	Partition Partition   `json:"partition"`
}

// Divergent reports whether any compared total crossed the threshold.
func (r *Report) Divergent() bool {
	for _, t := range r.Totals {
		if t.Divergent {
			return true
		}
	}
	return false
}

// Comparator compares two aggregates of the same reporting period.
type Comparator struct {
	threshold decimal.Decimal
}

// NewComparator creates a Comparator with a divergence threshold in
// percent. Non-positive thresholds fall back to the default.
func NewComparator(thresholdPct decimal.Decimal) *Comparator {
	if thresholdPct.LessThanOrEqual(decimal.Zero) {
		thresholdPct = DefaultDivergenceThresholdPct
	}
	return &Comparator{threshold: thresholdPct}
}

// Compare reconciles aggregate a against aggregate b. By convention a
// is the API rendition and b is the file rendition.
func (c *Comparator) Compare(a, b *reports.Aggregate) *Report {
	ta, tb := a.Totals(), b.Totals()

	return &Report{
		Totals: []FieldDiff{
			c.diff("articles", decimal.NewFromInt(int64(ta.Articles)), decimal.NewFromInt(int64(tb.Articles))),
			c.diff("quantity", decimal.NewFromInt(ta.Quantity), decimal.NewFromInt(tb.Quantity)),
			c.diff("to_pay", ta.ToPay, tb.ToPay),
		},
		Partition: partition(a.IDs(), b.IDs()),
	}
}

// diff computes one total's difference. The percentage is zero when b
// is zero.
func (c *Comparator) diff(name string, a, b decimal.Decimal) FieldDiff {
	d := a.Sub(b)

	var pct decimal.Decimal
	if !b.IsZero() {
		pct = d.Div(b).Mul(hundred)
	}

	return FieldDiff{
		Name:      name,
		A:         a,
		B:         b,
		Diff:      d,
		DiffPct:   pct,
		Divergent: pct.Abs().GreaterThanOrEqual(c.threshold),
	}
}

func partition(a, b []catalog.ProductID) Partition {
	inA := make(map[catalog.ProductID]bool, len(a))
	for _, id := range a {
		inA[id] = true
	}
	inB := make(map[catalog.ProductID]bool, len(b))
	for _, id := range b {
		inB[id] = true
	}

	var common, onlyA, onlyB []catalog.ProductID
	for _, id := range a {
		if inB[id] {
			common = append(common, id)
		} else {
			onlyA = append(onlyA, id)
		}
	}
	for _, id := range b {
		if !inA[id] {
			onlyB = append(onlyB, id)
		}
	}

	sort.Slice(onlyA, func(i, j int) bool { return onlyA[i] < onlyA[j] })
	sort.Slice(onlyB, func(i, j int) bool { return onlyB[i] < onlyB[j] })

	return Partition{
		CommonCount: len(common),
		OnlyACount:  len(onlyA),
		OnlyBCount:  len(onlyB),
		OnlyA:       preview(onlyA),
		OnlyB:       preview(onlyB),
	}
}

// preview keeps the first entries of an ordered id list.
func preview(ids []catalog.ProductID) []catalog.ProductID {
	if len(ids) <= previewLimit {
		return ids
	}
	return ids[:previewLimit]
}
