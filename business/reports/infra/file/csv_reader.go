package file

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	catalog "github.com/profitlens/seller-analytics/business/catalog/domain"
	"github.com/profitlens/seller-analytics/business/reports/domain"
	"github.com/profitlens/seller-analytics/internal/apperror"
	"github.com/profitlens/seller-analytics/internal/numparse"
)

// Realization report exports carry several banner lines before the
// header row. The header is located by scanning, not by a fixed offset.
const maxPreambleRows = 20

// CSVReader reads realization report rows from marketplace CSV exports.
type CSVReader struct {
	separator rune
}

// CSVOption configures a CSVReader.
type CSVOption func(*CSVReader)

// WithSeparator overrides the field separator. Marketplace exports use
// either comma or semicolon depending on the export locale.
func WithSeparator(sep rune) CSVOption {
	return func(r *CSVReader) {
		r.separator = sep
	}
}

// NewCSVReader creates a CSVReader.
func NewCSVReader(opts ...CSVOption) *CSVReader {
	r := &CSVReader{separator: ','}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ReadRecords parses path into domain records. Rows without a real
// product id are dropped.
func (r *CSVReader) ReadRecords(path string) ([]domain.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperror.New(apperror.CodeFileUnreadable,
			apperror.WithCause(err), apperror.WithContext(path))
	}
	defer f.Close()

	return r.readFrom(f, path)
}

func (r *CSVReader) readFrom(src io.Reader, path string) ([]domain.Record, error) {
	reader := csv.NewReader(src)
	reader.Comma = r.separator
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	resolved, err := r.locateHeader(reader, path)
	if err != nil {
		return nil, err
	}

	var records []domain.Record
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, apperror.New(apperror.CodeParseError,
				apperror.WithCause(err), apperror.WithContext(path))
		}

		rec, ok := parseRow(row, resolved)
		if !ok {
			continue
		}
		records = append(records, rec)
	}

	return records, nil
}

// locateHeader consumes rows until one resolves all required columns.
func (r *CSVReader) locateHeader(reader *csv.Reader, path string) (map[Column]int, error) {
	var lastMissing []Column

	for i := 0; i < maxPreambleRows; i++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Preamble rows may have mismatched quoting; keep scanning.
			continue
		}

		if len(row) > 0 {
			row[0] = strings.TrimPrefix(row[0], "\uFEFF")
		}

		resolved := resolveColumns(row)
		missing := missingRequired(resolved)
		if len(missing) == 0 {
			return resolved, nil
		}
		lastMissing = missing
	}

	return nil, apperror.New(apperror.CodeMissingColumn,
		apperror.WithContext(fmt.Sprintf("%s: no header row with columns %v", path, lastMissing)))
}

// parseRow coerces one data row. ok is false for rows that must be
// skipped: missing id, unparsable id, or the "-1" service row.
func parseRow(row []string, resolved map[Column]int) (domain.Record, bool) {
	cell := func(col Column) string {
		idx, ok := resolved[col]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	id, ok := numparse.Int64(cell(ColProductID))
	if !ok {
		return domain.Record{}, false
	}
	productID := catalog.ProductID(id)
	if !productID.IsValid() {
		return domain.Record{}, false
	}

	quantity := numparse.Decimal(cell(ColQuantity)).IntPart()

	return domain.Record{
		ProductID:       productID,
		SubjectName:     cell(ColName),
		Quantity:        quantity,
		ForPay:          numparse.Decimal(cell(ColForPay)),
		RetailAmount:    numparse.Decimal(cell(ColRetailAmount)),
		SalesCommission: numparse.Decimal(cell(ColCommission)),
		DeliveryCost:    numparse.Decimal(cell(ColDelivery)),
		StorageFee:      numparse.Decimal(cell(ColStorage)),
		Penalty:         numparse.Decimal(cell(ColPenalty)),
		Acceptance:      numparse.Decimal(cell(ColAcceptance)),
	}, true
}
