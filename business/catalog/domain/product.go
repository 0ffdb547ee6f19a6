// Package domain contains the core domain types for the catalog context.
package domain

import (
	"github.com/shopspring/decimal"
)

// ProductID identifies a product listing in the marketplace catalog.
type ProductID int64

// IsValid reports whether the id refers to a real listing. Zero means
// the id was missing from the source row, -1 is the marketplace's
// placeholder for service rows.
func (id ProductID) IsValid() bool {
	return id > 0
}

// ManualInputData holds the seller-entered figures that the marketplace
// reports do not carry.
type ManualInputData struct {
	CostPerUnit       decimal.Decimal // production cost per unit
	SelfPurchaseCount int64           // units the seller bought back
	SelfPurchaseCost  decimal.Decimal // total spent on buybacks
	GiveawayCount     int64           // units given away for promotion
	GiveawayCost      decimal.Decimal // production cost of the giveaways
	MarketingCost     decimal.Decimal // marketing spend outside the marketplace
}

// Product aggregates one listing's period figures from the marketplace
// reports plus the seller's manual input.
type Product struct {
	ID   ProductID
	Name string

	// Volumes (units)
	Deliveries int64
	Sales      int64
	Returns    int64
	Refusals   int64

	// Revenue
	SalesAmountBeforeSPP decimal.Decimal
	SalesAmountAfterSPP  decimal.Decimal
	ReturnsAmount        decimal.Decimal

	// Marketplace charges
	LogisticsCost        decimal.Decimal
	StorageCost          decimal.Decimal
	AcceptanceCost       decimal.Decimal
	PenaltyCost          decimal.Decimal
	Surcharges           decimal.Decimal
	CommissionWithSPP    decimal.Decimal
	CommissionWithoutSPP decimal.Decimal
	DrrCost              decimal.Decimal

	Manual ManualInputData
}

// Revenue returns the period revenue after the marketplace's buyer discount.
func (p *Product) Revenue() decimal.Decimal {
	return p.SalesAmountAfterSPP
}

// NetSales returns units actually kept by real buyers.
func (p *Product) NetSales() int64 {
	return p.Sales - p.Returns - p.Manual.SelfPurchaseCount
}

// RefusalRate returns refused deliveries as a percentage of all deliveries.
// Zero when there were no deliveries.
func (p *Product) RefusalRate() decimal.Decimal {
	if p.Deliveries == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(p.Refusals).
		Div(decimal.NewFromInt(p.Deliveries)).
		Mul(decimal.NewFromInt(100))
}

// ReturnRate returns returned units as a percentage of sold units.
// Zero when there were no sales.
func (p *Product) ReturnRate() decimal.Decimal {
	if p.Sales == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(p.Returns).
		Div(decimal.NewFromInt(p.Sales)).
		Mul(decimal.NewFromInt(100))
}

// ProductMetrics holds the computed profitability figures for one product.
type ProductMetrics struct {
	Product *Product

	Cogs            decimal.Decimal
	GrossProfit     decimal.Decimal
	TotalExpenses   decimal.Decimal
	NetProfit       decimal.Decimal
	ProfitMarginPct decimal.Decimal
	RoiPct          decimal.Decimal
	AvgCheck        decimal.Decimal
}

// Summary is the export shape of ProductMetrics. Percentages and the
// average check are rounded to two decimal places.
type Summary struct {
	ProductID       int64   `json:"product_id"`
	ProductName     string  `json:"product_name"`
	Sales           int64   `json:"sales"`
	Returns         int64   `json:"returns"`
	NetSales        int64   `json:"net_sales"`
	Revenue         float64 `json:"revenue"`
	Cogs            float64 `json:"cogs"`
	GrossProfit     float64 `json:"gross_profit"`
	TotalExpenses   float64 `json:"total_expenses"`
	NetProfit       float64 `json:"net_profit"`
	ProfitMarginPct float64 `json:"profit_margin_percent"`
	RoiPct          float64 `json:"roi_percent"`
	AvgCheck        float64 `json:"avg_check"`
}

// ToSummary converts the metrics into their export shape.
func (m *ProductMetrics) ToSummary() Summary {
	return Summary{
		ProductID:       int64(m.Product.ID),
		ProductName:     m.Product.Name,
		Sales:           m.Product.Sales,
		Returns:         m.Product.Returns,
		NetSales:        m.Product.NetSales(),
		Revenue:         m.Product.Revenue().InexactFloat64(),
		Cogs:            m.Cogs.InexactFloat64(),
		GrossProfit:     m.GrossProfit.InexactFloat64(),
		TotalExpenses:   m.TotalExpenses.InexactFloat64(),
		NetProfit:       m.NetProfit.InexactFloat64(),
		ProfitMarginPct: m.ProfitMarginPct.Round(2).InexactFloat64(),
		RoiPct:          m.RoiPct.Round(2).InexactFloat64(),
		AvgCheck:        m.AvgCheck.Round(2).InexactFloat64(),
	}
}
