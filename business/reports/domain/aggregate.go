// Package domain contains the report aggregation types for the reports
// context.
package domain

import (
	"sort"

	"github.com/shopspring/decimal"

	catalog "github.com/profitlens/seller-analytics/business/catalog/domain"
)

// Record is one realization report row, already coerced to typed values.
type Record struct {
	ProductID   catalog.ProductID
	SubjectName string
	BrandName   string

	Quantity        int64
	ForPay          decimal.Decimal
	RetailAmount    decimal.Decimal
	SalesCommission decimal.Decimal
	DeliveryCost    decimal.Decimal
	StorageFee      decimal.Decimal
	Penalty         decimal.Decimal
	Acceptance      decimal.Decimal
}

// Bucket accumulates all records of one product.
type Bucket struct {
	ProductID   catalog.ProductID
	SubjectName string
	BrandName   string

	Quantity        int64
	ForPay          decimal.Decimal
	RetailAmount    decimal.Decimal
	SalesCommission decimal.Decimal
	DeliveryCost    decimal.Decimal
	StorageFee      decimal.Decimal
	Penalty         decimal.Decimal
	Acceptance      decimal.Decimal
}

// Totals summarizes an aggregate across all products.
type Totals struct {
	Articles int             `json:"total_articles"`
	Quantity int64           `json:"total_quantity"`
	ToPay    decimal.Decimal `json:"total_to_pay"`
}

// Aggregate folds report records into per-product buckets. Records with
// an invalid product id are counted but not folded.
type Aggregate struct {
	buckets map[catalog.ProductID]*Bucket
	skipped int
}

// NewAggregate creates an empty Aggregate.
func NewAggregate() *Aggregate {
	return &Aggregate{
		buckets: make(map[catalog.ProductID]*Bucket),
	}
}

// Add folds one record into its product bucket. It reports whether the
// record was accepted; rows without a real product id are skipped.
func (a *Aggregate) Add(rec Record) bool {
	if !rec.ProductID.IsValid() {
		a.skipped++
		return false
	}

	b, ok := a.buckets[rec.ProductID]
	if !ok {
		b = &Bucket{
			ProductID:   rec.ProductID,
			SubjectName: rec.SubjectName,
			BrandName:   rec.BrandName,
		}
		a.buckets[rec.ProductID] = b
	}

	// Names come from the first row that carried them.
	if b.SubjectName == "" {
		b.SubjectName = rec.SubjectName
	}
	if b.BrandName == "" {
		b.BrandName = rec.BrandName
	}

	b.Quantity += rec.Quantity
	b.ForPay = b.ForPay.Add(rec.ForPay)
	b.RetailAmount = b.RetailAmount.Add(rec.RetailAmount)
	b.SalesCommission = b.SalesCommission.Add(rec.SalesCommission)
	b.DeliveryCost = b.DeliveryCost.Add(rec.DeliveryCost)
	b.StorageFee = b.StorageFee.Add(rec.StorageFee)
	b.Penalty = b.Penalty.Add(rec.Penalty)
	b.Acceptance = b.Acceptance.Add(rec.Acceptance)

	return true
}

// Bucket returns the bucket for a product id, or nil.
func (a *Aggregate) Bucket(id catalog.ProductID) *Bucket {
	return a.buckets[id]
}

// Len returns the number of distinct products.
func (a *Aggregate) Len() int {
	return len(a.buckets)
}

// Skipped returns the number of rejected records.
func (a *Aggregate) Skipped() int {
	return a.skipped
}

// IDs returns all product ids in ascending order.
func (a *Aggregate) IDs() []catalog.ProductID {
	ids := make([]catalog.ProductID, 0, len(a.buckets))
	for id := range a.buckets {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Buckets returns all buckets ordered by product id.
func (a *Aggregate) Buckets() []*Bucket {
	ids := a.IDs()
	out := make([]*Bucket, 0, len(ids))
	for _, id := range ids {
		out = append(out, a.buckets[id])
	}
	return out
}

// Totals computes the cross-product totals.
func (a *Aggregate) Totals() Totals {
	t := Totals{Articles: len(a.buckets)}
	for _, b := range a.buckets {
		t.Quantity += b.Quantity
		t.ToPay = t.ToPay.Add(b.ForPay)
	}
	return t
}
