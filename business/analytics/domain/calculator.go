// Package domain contains the profitability calculation logic for the
// analytics context.
package domain

import (
	"github.com/shopspring/decimal"

	catalog "github.com/profitlens/seller-analytics/business/catalog/domain"
)

var hundred = decimal.NewFromInt(100)

// Calculator computes profitability metrics for a product's period figures.
type Calculator struct {
	clampNegativeCogs bool
}

// CalculatorOption configures a Calculator.
type CalculatorOption func(*Calculator)

// WithClampNegativeCogs floors COGS at zero. Negative COGS happens when
// returns plus buybacks plus giveaways exceed sales for the period.
func WithClampNegativeCogs() CalculatorOption {
	return func(c *Calculator) {
		c.clampNegativeCogs = true
	}
}

// NewCalculator creates a Calculator.
func NewCalculator(opts ...CalculatorOption) *Calculator {
	c := &Calculator{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Cogs returns the cost of goods sold:
// (sales - returns - buybacks - giveaways) x cost per unit, plus the
// production cost of the giveaways themselves.
func (c *Calculator) Cogs(p *catalog.Product) decimal.Decimal {
	netSold := p.Sales - p.Returns - p.Manual.SelfPurchaseCount - p.Manual.GiveawayCount

	cogs := decimal.NewFromInt(netSold).
		Mul(p.Manual.CostPerUnit).
		Add(p.Manual.GiveawayCost)

	if c.clampNegativeCogs && cogs.IsNegative() {
		return decimal.Zero
	}

	return cogs
}

// GrossProfit returns revenue after the buyer discount minus COGS.
func (c *Calculator) GrossProfit(p *catalog.Product, cogs decimal.Decimal) decimal.Decimal {
	return p.SalesAmountAfterSPP.Sub(cogs)
}

// TotalExpenses sums the marketplace charges and the manual marketing
// spend. Surcharges are payments from the marketplace to the seller, so
// they reduce the total.
func (c *Calculator) TotalExpenses(p *catalog.Product) decimal.Decimal {
	return p.LogisticsCost.
		Add(p.StorageCost).
		Add(p.PenaltyCost).
		Add(p.AcceptanceCost).
		Add(p.CommissionWithSPP).
		Add(p.DrrCost).
		Add(p.Manual.MarketingCost).
		Sub(p.Surcharges)
}

// NetProfit returns gross profit minus total expenses.
func (c *Calculator) NetProfit(grossProfit, totalExpenses decimal.Decimal) decimal.Decimal {
	return grossProfit.Sub(totalExpenses)
}

// ProfitMargin returns gross profit as a percentage of revenue.
// Zero when revenue is zero.
func (c *Calculator) ProfitMargin(grossProfit, revenue decimal.Decimal) decimal.Decimal {
	if revenue.IsZero() {
		return decimal.Zero
	}
	return grossProfit.Div(revenue).Mul(hundred)
}

// Roi returns net profit as a percentage of COGS. Zero when COGS is zero.
func (c *Calculator) Roi(netProfit, cogs decimal.Decimal) decimal.Decimal {
	if cogs.IsZero() {
		return decimal.Zero
	}
	return netProfit.Div(cogs).Mul(hundred)
}

// AvgCheck returns revenue per sold unit. Zero when there were no sales.
func (c *Calculator) AvgCheck(revenue decimal.Decimal, sales int64) decimal.Decimal {
	if sales == 0 {
		return decimal.Zero
	}
	return revenue.Div(decimal.NewFromInt(sales))
}

// Calculate computes the full metric set for one product.
func (c *Calculator) Calculate(p *catalog.Product) catalog.ProductMetrics {
	cogs := c.Cogs(p)
	grossProfit := c.GrossProfit(p, cogs)
	totalExpenses := c.TotalExpenses(p)
	netProfit := c.NetProfit(grossProfit, totalExpenses)

	return catalog.ProductMetrics{
		Product:         p,
		Cogs:            cogs,
		GrossProfit:     grossProfit,
		TotalExpenses:   totalExpenses,
		NetProfit:       netProfit,
		ProfitMarginPct: c.ProfitMargin(grossProfit, p.SalesAmountAfterSPP),
		RoiPct:          c.Roi(netProfit, cogs),
		AvgCheck:        c.AvgCheck(p.SalesAmountAfterSPP, p.Sales),
	}
}
