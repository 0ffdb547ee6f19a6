// Package app contains application services and port definitions for the
// analytics context.
package app

import (
	catalog "github.com/profitlens/seller-analytics/business/catalog/domain"
)

// ProductSource reads period product figures from a local file.
type ProductSource interface {
	ReadProducts(path string) ([]*catalog.Product, error)
}

// ManualSource reads the seller's manual input keyed by product id.
type ManualSource interface {
	LoadManualData(path string) (map[catalog.ProductID]catalog.ManualInputData, error)
}

// Exporter persists computed summaries.
type Exporter interface {
	ExportJSON(summaries []catalog.Summary, path string) error
	ExportCSV(summaries []catalog.Summary, path string) error
}
