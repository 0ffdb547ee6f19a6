package domain

import (
	"testing"

	"github.com/shopspring/decimal"

	catalog "github.com/profitlens/seller-analytics/business/catalog/domain"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestAggregateFoldsByProduct(t *testing.T) {
	agg := NewAggregate()

	agg.Add(Record{
		ProductID:    111,
		SubjectName:  "Mugs",
		Quantity:     2,
		ForPay:       d("500.50"),
		RetailAmount: d("700"),
		DeliveryCost: d("60"),
	})
	agg.Add(Record{
		ProductID:    111,
		Quantity:     3,
		ForPay:       d("749.50"),
		RetailAmount: d("1050"),
		DeliveryCost: d("90"),
	})
	agg.Add(Record{
		ProductID: 222,
		Quantity:  1,
		ForPay:    d("200"),
	})

	if agg.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", agg.Len())
	}

	b := agg.Bucket(111)
	if b == nil {
		t.Fatal("Bucket(111) = nil")
	}
	if b.Quantity != 5 {
		t.Errorf("Quantity = %d, want 5", b.Quantity)
	}
	if !b.ForPay.Equal(d("1250")) {
		t.Errorf("ForPay = %s, want 1250", b.ForPay)
	}
	if !b.RetailAmount.Equal(d("1750")) {
		t.Errorf("RetailAmount = %s, want 1750", b.RetailAmount)
	}
	if !b.DeliveryCost.Equal(d("150")) {
		t.Errorf("DeliveryCost = %s, want 150", b.DeliveryCost)
	}
	if b.SubjectName != "Mugs" {
		t.Errorf("SubjectName = %q, want Mugs", b.SubjectName)
	}
}

func TestAggregateSkipsInvalidIDs(t *testing.T) {
	agg := NewAggregate()

	if agg.Add(Record{ProductID: 0, Quantity: 1}) {
		t.Error("Add with zero id accepted, want skipped")
	}
	if agg.Add(Record{ProductID: -1, Quantity: 1}) {
		t.Error("Add with -1 id accepted, want skipped")
	}
	if !agg.Add(Record{ProductID: 333, Quantity: 1}) {
		t.Error("Add with valid id skipped, want accepted")
	}

	if agg.Len() != 1 {
		t.Errorf("Len() = %d, want 1", agg.Len())
	}
	if agg.Skipped() != 2 {
		t.Errorf("Skipped() = %d, want 2", agg.Skipped())
	}
}

func TestAggregateTotals(t *testing.T) {
	agg := NewAggregate()
	agg.Add(Record{ProductID: 1, Quantity: 4, ForPay: d("100.25")})
	agg.Add(Record{ProductID: 2, Quantity: 6, ForPay: d("199.75")})
	agg.Add(Record{ProductID: 1, Quantity: 2, ForPay: d("50")})

	got := agg.Totals()
	if got.Articles != 2 {
		t.Errorf("Articles = %d, want 2", got.Articles)
	}
	if got.Quantity != 12 {
		t.Errorf("Quantity = %d, want 12", got.Quantity)
	}
	if !got.ToPay.Equal(d("350")) {
		t.Errorf("ToPay = %s, want 350", got.ToPay)
	}
}

func TestAggregateDeterministic(t *testing.T) {
	records := []Record{
		{ProductID: 111, SubjectName: "Mugs", Quantity: 2, ForPay: d("500.50"), RetailAmount: d("700")},
		{ProductID: 222, Quantity: 1, ForPay: d("200"), DeliveryCost: d("30")},
		{ProductID: 111, Quantity: 3, ForPay: d("749.50")},
		{ProductID: 0, Quantity: 9},
	}

	fold := func() *Aggregate {
		agg := NewAggregate()
		for _, r := range records {
			agg.Add(r)
		}
		return agg
	}

	first := fold()
	second := fold()

	if first.Len() != second.Len() {
		t.Fatalf("Len() = %d and %d, want equal", first.Len(), second.Len())
	}
	if first.Skipped() != second.Skipped() {
		t.Errorf("Skipped() = %d and %d, want equal", first.Skipped(), second.Skipped())
	}

	ft, st := first.Totals(), second.Totals()
	if ft.Articles != st.Articles || ft.Quantity != st.Quantity || !ft.ToPay.Equal(st.ToPay) {
		t.Errorf("Totals() = %+v and %+v, want equal", ft, st)
	}

	fb, sb := first.Buckets(), second.Buckets()
	for i := range fb {
		if fb[i].ProductID != sb[i].ProductID {
			t.Errorf("Buckets()[%d].ProductID = %d and %d, want equal", i, fb[i].ProductID, sb[i].ProductID)
		}
		if fb[i].Quantity != sb[i].Quantity {
			t.Errorf("Buckets()[%d].Quantity = %d and %d, want equal", i, fb[i].Quantity, sb[i].Quantity)
		}
		if !fb[i].ForPay.Equal(sb[i].ForPay) {
			t.Errorf("Buckets()[%d].ForPay = %s and %s, want equal", i, fb[i].ForPay, sb[i].ForPay)
		}
	}
}

func TestAggregateBucketsOrdered(t *testing.T) {
	agg := NewAggregate()
	for _, id := range []catalog.ProductID{555, 111, 333} {
		agg.Add(Record{ProductID: id, Quantity: 1})
	}

	buckets := agg.Buckets()
	want := []catalog.ProductID{111, 333, 555}
	for i, b := range buckets {
		if b.ProductID != want[i] {
			t.Errorf("Buckets()[%d].ProductID = %d, want %d", i, b.ProductID, want[i])
		}
	}
}
