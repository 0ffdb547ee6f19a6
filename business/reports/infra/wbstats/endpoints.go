package wbstats

import (
	"net/url"
	"time"
)

const dateOnly = "2006-01-02"

// Host selects which API host an endpoint lives on.
type Host int

const (
	StatisticsHost Host = iota
	AnalyticsHost
)

// Endpoint describes one downloadable report.
type Endpoint struct {
	Name   string
	Path   string
	Host   Host
	Params func(from, to time.Time) url.Values
}

// Report keys accepted by FetchReport and the loader.
const (
	ReportDetail = "report_detail"
	Sales        = "sales"
	Orders       = "orders"
	Stocks       = "stocks"
	Incomes      = "incomes"
	Antifraud    = "antifraud"
	Penalties    = "penalties"
	Balance      = "balance"
	RegionSales  = "region_sales"
	Excise       = "excise"
)

// Endpoints is the catalog of all downloadable reports.
var Endpoints = map[string]Endpoint{
	ReportDetail: {
		Name: "Realization report (v5)",
		Path: "/api/v5/supplier/reportDetailByPeriod",
		Params: func(from, to time.Time) url.Values {
			return url.Values{
				"dateFrom": {from.Format(dateOnly)},
				"dateTo":   {to.Format(dateOnly)},
				"limit":    {"100000"},
			}
		},
	},
	Sales: {
		Name: "Sales and returns",
		Path: "/api/v1/supplier/sales",
		Params: func(from, _ time.Time) url.Values {
			return url.Values{"dateFrom": {from.Format(time.RFC3339)}}
		},
	},
	Orders: {
		Name: "Orders",
		Path: "/api/v1/supplier/orders",
		Params: func(from, _ time.Time) url.Values {
			return url.Values{"dateFrom": {from.Format(time.RFC3339)}}
		},
	},
	Stocks: {
		Name: "Warehouse stocks",
		Path: "/api/v1/supplier/stocks",
		Params: func(from, _ time.Time) url.Values {
			return url.Values{"dateFrom": {from.Format(time.RFC3339)}}
		},
	},
	Incomes: {
		Name: "Supplies",
		Path: "/api/v1/supplier/incomes",
		Params: func(from, _ time.Time) url.Values {
			return url.Values{"dateFrom": {from.Format(time.RFC3339)}}
		},
	},
	Antifraud: {
		Name: "Self-purchase detection",
		Path: "/api/v1/analytics/antifraud-details",
		Host: AnalyticsHost,
		Params: func(_, to time.Time) url.Values {
			return url.Values{"date": {to.Format(dateOnly)}}
		},
	},
	Penalties: {
		Name: "Warehouse measurements and penalties",
		Path: "/api/v1/analytics/warehouse-measurements",
		Host: AnalyticsHost,
		Params: func(from, to time.Time) url.Values {
			return url.Values{
				"dateFrom": {from.Format(time.RFC3339)},
				"dateTo":   {to.Format(time.RFC3339)},
				"tab":      {"penalty"},
				"limit":    {"1000"},
			}
		},
	},
	Balance: {
		Name: "Seller balance",
		Path: "/api/v1/account/balance",
		Params: func(_, _ time.Time) url.Values {
			return url.Values{}
		},
	},
	RegionSales: {
		Name: "Sales by region",
		Path: "/api/v1/analytics/region-sale",
		Host: AnalyticsHost,
		Params: func(from, to time.Time) url.Values {
			return url.Values{
				"dateFrom": {from.Format(dateOnly)},
				"dateTo":   {to.Format(dateOnly)},
			}
		},
	},
	Excise: {
		Name: "Excise goods",
		Path: "/api/v1/analytics/excise-report",
		Host: AnalyticsHost,
		Params: func(from, to time.Time) url.Values {
			return url.Values{
				"dateFrom": {from.Format(dateOnly)},
				"dateTo":   {to.Format(dateOnly)},
			}
		},
	},
}

// KnownReport reports whether key names a catalog entry.
func KnownReport(key string) bool {
	_, ok := Endpoints[key]
	return ok
}
