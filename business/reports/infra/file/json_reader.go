package file

import (
	"encoding/json"
	"os"

	"github.com/profitlens/seller-analytics/business/reports/domain"
	"github.com/profitlens/seller-analytics/business/reports/infra/wbstats"
	"github.com/profitlens/seller-analytics/internal/apperror"
)

// JSONReader reads realization report rows from JSON files: either a
// plain row array or a saved report bundle.
type JSONReader struct{}

// NewJSONReader creates a JSONReader.
func NewJSONReader() *JSONReader {
	return &JSONReader{}
}

type savedBundle struct {
	Reports map[string]*wbstats.ReportResult `json:"reports"`
}

// ReadRecords parses path into domain records. Rows without a real
// product id are dropped.
func (r *JSONReader) ReadRecords(path string) ([]domain.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperror.New(apperror.CodeFileUnreadable,
			apperror.WithCause(err), apperror.WithContext(path))
	}

	rows, err := decodeRows(data)
	if err != nil {
		return nil, apperror.New(apperror.CodeParseError,
			apperror.WithCause(err), apperror.WithContext(path))
	}

	records := make([]domain.Record, 0, len(rows))
	for i := range rows {
		rec := rows[i].ToRecord()
		if !rec.ProductID.IsValid() {
			continue
		}
		records = append(records, rec)
	}

	return records, nil
}

func decodeRows(data []byte) ([]wbstats.ReportDetailRow, error) {
	// Plain array first.
	var rows []wbstats.ReportDetailRow
	if err := json.Unmarshal(data, &rows); err == nil {
		return rows, nil
	}

	// Otherwise a saved bundle: take the realization report.
	var b savedBundle
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, err
	}

	result, ok := b.Reports[wbstats.ReportDetail]
	if !ok || !result.OK() {
		return nil, apperror.New(apperror.CodeEmptyReport,
			apperror.WithContext("bundle has no realization report"))
	}

	result.Key = wbstats.ReportDetail
	return result.Rows()
}
