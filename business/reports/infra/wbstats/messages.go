package wbstats

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	catalog "github.com/profitlens/seller-analytics/business/catalog/domain"
	"github.com/profitlens/seller-analytics/business/reports/domain"
)

// ReportDetailRow is one row of the v5 realization report.
type ReportDetailRow struct {
	NmID            int64           `json:"nm_id"`
	SubjectName     string          `json:"subject_name"`
	BrandName       string          `json:"brand_name"`
	SaName          string          `json:"sa_name"`
	DocTypeName     string          `json:"doc_type_name"`
	SupplierOper    string          `json:"supplier_oper_name"`
	Quantity        int64           `json:"quantity"`
	RetailAmount    decimal.Decimal `json:"retail_amount"`
	PpvzForPay      decimal.Decimal `json:"ppvz_for_pay"`
	SalesCommission decimal.Decimal `json:"ppvz_sales_commission"`
	DeliveryRub     decimal.Decimal `json:"delivery_rub"`
	StorageFee      decimal.Decimal `json:"storage_fee"`
	Penalty         decimal.Decimal `json:"penalty"`
	Acceptance      decimal.Decimal `json:"acceptance"`
}

// ToRecord converts the API row into a domain record.
func (r *ReportDetailRow) ToRecord() domain.Record {
	return domain.Record{
		ProductID:       catalog.ProductID(r.NmID),
		SubjectName:     r.SubjectName,
		BrandName:       r.BrandName,
		Quantity:        r.Quantity,
		ForPay:          r.PpvzForPay,
		RetailAmount:    r.RetailAmount,
		SalesCommission: r.SalesCommission,
		DeliveryCost:    r.DeliveryRub,
		StorageFee:      r.StorageFee,
		Penalty:         r.Penalty,
		Acceptance:      r.Acceptance,
	}
}

// ReportResult is the envelope for one fetched report.
type ReportResult struct {
	Key      string          `json:"-"`
	Name     string          `json:"name"`
	Status   string          `json:"status"`
	HTTPCode int             `json:"http_code,omitempty"`
	Count    int             `json:"count,omitempty"`
	Data     json.RawMessage `json:"data,omitempty"`
	Error    string          `json:"error,omitempty"`
}

// OK reports whether the report was fetched successfully.
func (r *ReportResult) OK() bool {
	return r.Status == "success"
}

// Rows decodes the data payload as realization report rows.
func (r *ReportResult) Rows() ([]ReportDetailRow, error) {
	if len(r.Data) == 0 {
		return nil, nil
	}
	var rows []ReportDetailRow
	if err := json.Unmarshal(r.Data, &rows); err != nil {
		return nil, fmt.Errorf("decoding %s rows: %w", r.Key, err)
	}
	return rows, nil
}

// APIError is an error payload returned by the statistics API.
type APIError struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
	Code   string `json:"code"`
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("statistics API error %s: %s", e.Code, e.Detail)
	}
	return fmt.Sprintf("statistics API error %s: %s", e.Code, e.Title)
}
