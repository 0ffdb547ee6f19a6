package domain

import (
	"testing"

	"github.com/shopspring/decimal"

	catalog "github.com/profitlens/seller-analytics/business/catalog/domain"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCogs(t *testing.T) {
	tests := []struct {
		name         string
		sales        int64
		returns      int64
		buybacks     int64
		giveaways    int64
		costPerUnit  string
		giveawayCost string
		want         string
	}{
		{
			name:        "plain_sales",
			sales:       100,
			costPerUnit: "250",
			giveawayCost: "0",
			want:        "25000",
		},
		{
			name:        "returns_and_buybacks_excluded",
			sales:       100,
			returns:     10,
			buybacks:    5,
			costPerUnit: "250",
			giveawayCost: "0",
			want:        "21250",
		},
		{
			name:        "giveaway_cost_added",
			sales:       100,
			giveaways:   4,
			costPerUnit: "250",
			giveawayCost: "1000",
			want:        "25000", // (100-4)*250 + 1000
		},
		{
			name:        "zero_cost_per_unit",
			sales:       50,
			costPerUnit: "0",
			giveawayCost: "0",
			want:        "0",
		},
		{
			name:        "negative_when_returns_exceed_sales",
			sales:       5,
			returns:     8,
			costPerUnit: "100",
			giveawayCost: "0",
			want:        "-300",
		},
	}

	calc := NewCalculator()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &catalog.Product{
				Sales:   tt.sales,
				Returns: tt.returns,
				Manual: catalog.ManualInputData{
					CostPerUnit:       d(tt.costPerUnit),
					SelfPurchaseCount: tt.buybacks,
					GiveawayCount:     tt.giveaways,
					GiveawayCost:      d(tt.giveawayCost),
				},
			}
			got := calc.Cogs(p)
			if !got.Equal(d(tt.want)) {
				t.Errorf("Cogs() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestCogsClampNegative(t *testing.T) {
	p := &catalog.Product{
		Sales:   5,
		Returns: 8,
		Manual:  catalog.ManualInputData{CostPerUnit: d("100")},
	}

	clamped := NewCalculator(WithClampNegativeCogs()).Cogs(p)
	if !clamped.IsZero() {
		t.Errorf("clamped Cogs() = %s, want 0", clamped)
	}

	unclamped := NewCalculator().Cogs(p)
	if !unclamped.Equal(d("-300")) {
		t.Errorf("unclamped Cogs() = %s, want -300", unclamped)
	}
}

func TestTotalExpenses(t *testing.T) {
	p := &catalog.Product{
		LogisticsCost:     d("1200.50"),
		StorageCost:       d("340"),
		PenaltyCost:       d("100"),
		AcceptanceCost:    d("59.50"),
		CommissionWithSPP: d("4500"),
		DrrCost:           d("800"),
		Surcharges:        d("250"),
		Manual:            catalog.ManualInputData{MarketingCost: d("1500")},
	}

	got := NewCalculator().TotalExpenses(p)
	want := d("8250") // 1200.50+340+100+59.50+4500+800+1500-250
	if !got.Equal(want) {
		t.Errorf("TotalExpenses() = %s, want %s", got, want)
	}
}

func TestRoi(t *testing.T) {
	tests := []struct {
		name      string
		netProfit string
		cogs      string
		want      string
	}{
		{"repeating_fraction", "2000", "6000", "33.33"},
		{"whole_percent", "500", "1000", "50"},
		{"negative_profit", "-300", "1000", "-30"},
	}

	calc := NewCalculator()
	tolerance := d("0.01")

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calc.Roi(d(tt.netProfit), d(tt.cogs))
			if got.Sub(d(tt.want)).Abs().GreaterThan(tolerance) {
				t.Errorf("Roi(%s, %s) = %s, want %s within 0.01", tt.netProfit, tt.cogs, got, tt.want)
			}
		})
	}
}

func TestRatiosZeroDenominator(t *testing.T) {
	calc := NewCalculator()

	if got := calc.ProfitMargin(d("500"), decimal.Zero); !got.IsZero() {
		t.Errorf("ProfitMargin with zero revenue = %s, want 0", got)
	}
	if got := calc.Roi(d("500"), decimal.Zero); !got.IsZero() {
		t.Errorf("Roi with zero cogs = %s, want 0", got)
	}
	if got := calc.AvgCheck(d("500"), 0); !got.IsZero() {
		t.Errorf("AvgCheck with zero sales = %s, want 0", got)
	}
}

func TestCalculateAllMetrics(t *testing.T) {
	p := &catalog.Product{
		ID:                  987654,
		Name:                "Backpack 20L",
		Sales:               40,
		Returns:             4,
		SalesAmountAfterSPP: d("60000"),
		LogisticsCost:       d("3000"),
		StorageCost:         d("500"),
		CommissionWithSPP:   d("9000"),
		Manual: catalog.ManualInputData{
			CostPerUnit: d("400"),
		},
	}

	m := NewCalculator().Calculate(p)

	wantCogs := d("14400") // 36 * 400
	if !m.Cogs.Equal(wantCogs) {
		t.Fatalf("Cogs = %s, want %s", m.Cogs, wantCogs)
	}

	wantGross := d("45600")
	if !m.GrossProfit.Equal(wantGross) {
		t.Errorf("GrossProfit = %s, want %s", m.GrossProfit, wantGross)
	}

	wantExpenses := d("12500")
	if !m.TotalExpenses.Equal(wantExpenses) {
		t.Errorf("TotalExpenses = %s, want %s", m.TotalExpenses, wantExpenses)
	}

	wantNet := d("33100")
	if !m.NetProfit.Equal(wantNet) {
		t.Errorf("NetProfit = %s, want %s", m.NetProfit, wantNet)
	}

	wantMargin := d("76") // 45600/60000*100
	if !m.ProfitMarginPct.Equal(wantMargin) {
		t.Errorf("ProfitMarginPct = %s, want %s", m.ProfitMarginPct, wantMargin)
	}

	wantAvgCheck := d("1500")
	if !m.AvgCheck.Equal(wantAvgCheck) {
		t.Errorf("AvgCheck = %s, want %s", m.AvgCheck, wantAvgCheck)
	}
}
