package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestProductNetSales(t *testing.T) {
	tests := []struct {
		name          string
		sales         int64
		returns       int64
		selfPurchases int64
		want          int64
	}{
		{
			name:  "no_returns_no_buybacks",
			sales: 100,
			want:  100,
		},
		{
			name:    "returns_subtracted",
			sales:   100,
			returns: 12,
			want:    88,
		},
		{
			name:          "buybacks_subtracted",
			sales:         100,
			returns:       10,
			selfPurchases: 5,
			want:          85,
		},
		{
			name:          "can_go_negative",
			sales:         3,
			returns:       2,
			selfPurchases: 4,
			want:          -3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Product{
				Sales:   tt.sales,
				Returns: tt.returns,
				Manual:  ManualInputData{SelfPurchaseCount: tt.selfPurchases},
			}
			if got := p.NetSales(); got != tt.want {
				t.Errorf("NetSales() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestProductRates(t *testing.T) {
	p := Product{
		Deliveries: 200,
		Sales:      160,
		Returns:    16,
		Refusals:   30,
	}

	wantRefusal := decimal.RequireFromString("15")
	if got := p.RefusalRate(); !got.Equal(wantRefusal) {
		t.Errorf("RefusalRate() = %s, want %s", got, wantRefusal)
	}

	wantReturn := decimal.RequireFromString("10")
	if got := p.ReturnRate(); !got.Equal(wantReturn) {
		t.Errorf("ReturnRate() = %s, want %s", got, wantReturn)
	}
}

func TestProductRatesZeroDenominator(t *testing.T) {
	p := Product{Refusals: 5, Returns: 5}

	if got := p.RefusalRate(); !got.IsZero() {
		t.Errorf("RefusalRate() with zero deliveries = %s, want 0", got)
	}
	if got := p.ReturnRate(); !got.IsZero() {
		t.Errorf("ReturnRate() with zero sales = %s, want 0", got)
	}
}

func TestProductIDIsValid(t *testing.T) {
	tests := []struct {
		id   ProductID
		want bool
	}{
		{id: 12345678, want: true},
		{id: 1, want: true},
		{id: 0, want: false},
		{id: -1, want: false},
	}

	for _, tt := range tests {
		if got := tt.id.IsValid(); got != tt.want {
			t.Errorf("ProductID(%d).IsValid() = %v, want %v", tt.id, got, tt.want)
		}
	}
}

func TestToSummaryRounding(t *testing.T) {
	p := Product{
		ID:                  1234567,
		Name:                "Thermal mug 450ml",
		Sales:               30,
		Returns:             3,
		SalesAmountAfterSPP: decimal.RequireFromString("45123.4567"),
	}
	m := ProductMetrics{
		Product:         &p,
		Cogs:            decimal.RequireFromString("12000"),
		GrossProfit:     decimal.RequireFromString("33123.4567"),
		TotalExpenses:   decimal.RequireFromString("9876.54"),
		NetProfit:       decimal.RequireFromString("23246.9167"),
		ProfitMarginPct: decimal.RequireFromString("73.41234"),
		RoiPct:          decimal.RequireFromString("193.72430"),
		AvgCheck:        decimal.RequireFromString("1504.115223"),
	}

	s := m.ToSummary()

	if s.ProductID != 1234567 {
		t.Errorf("ProductID = %d, want 1234567", s.ProductID)
	}
	if s.NetSales != 27 {
		t.Errorf("NetSales = %d, want 27", s.NetSales)
	}
	if s.ProfitMarginPct != 73.41 {
		t.Errorf("ProfitMarginPct = %v, want 73.41", s.ProfitMarginPct)
	}
	if s.RoiPct != 193.72 {
		t.Errorf("RoiPct = %v, want 193.72", s.RoiPct)
	}
	if s.AvgCheck != 1504.12 {
		t.Errorf("AvgCheck = %v, want 1504.12", s.AvgCheck)
	}
	if s.GrossProfit != 33123.4567 {
		t.Errorf("GrossProfit = %v, want unrounded 33123.4567", s.GrossProfit)
	}
}
