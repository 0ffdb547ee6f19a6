// Package file loads products and seller manual input from local files.
package file

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/profitlens/seller-analytics/business/catalog/domain"
	"github.com/profitlens/seller-analytics/internal/apperror"
	"github.com/profitlens/seller-analytics/internal/numparse"
)

// productAliases maps logical product fields to the header and key
// names seen across marketplace exports. Matching is case-insensitive.
var productAliases = map[string][]string{
	"nm_id":                  {"nm_id", "nmId", "Артикул ВБ", "Код номенклатуры"},
	"product_name":           {"product_name", "sa_name", "Название", "Предмет"},
	"deliveries":             {"deliveries", "Доставки"},
	"sales":                  {"sales", "Продажи"},
	"returns":                {"returns", "Возвраты"},
	"refusals":               {"refusals", "Отказы"},
	"sales_before_spp":       {"sales_before_spp", "Выручка до СПП"},
	"sales_after_spp":        {"sales_after_spp", "Выручка после СПП"},
	"returns_amount":         {"returns_amount", "Сумма возвратов"},
	"logistics":              {"logistics", "Логистика"},
	"storage":                {"storage", "Хранение"},
	"acceptance":             {"acceptance", "Приёмка"},
	"penalty":                {"penalty", "Штрафы"},
	"surcharges":             {"surcharges", "Доплаты"},
	"commission_with_spp":    {"commission_with_spp", "Комиссия с СПП"},
	"commission_without_spp": {"commission_without_spp", "Комиссия без СПП"},
	"drr":                    {"drr", "drr_cost", "Реклама"},
}

// ProductReader loads period product figures from CSV or JSON files.
type ProductReader struct{}

// NewProductReader creates a ProductReader.
func NewProductReader() *ProductReader {
	return &ProductReader{}
}

// ReadProducts parses path by extension. Rows without a real product id
// are dropped.
func (r *ProductReader) ReadProducts(path string) ([]*domain.Product, error) {
	switch {
	case strings.HasSuffix(path, ".json"):
		return r.readJSON(path)
	case strings.HasSuffix(path, ".csv"):
		return r.readCSV(path)
	default:
		return nil, apperror.New(apperror.CodeInvalidFormat,
			apperror.WithContext(fmt.Sprintf("%s: expected .csv or .json", path)))
	}
}

func (r *ProductReader) readJSON(path string) ([]*domain.Product, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperror.New(apperror.CodeFileUnreadable,
			apperror.WithCause(err), apperror.WithContext(path))
	}

	var rows []map[string]any
	if err := json.Unmarshal(data, &rows); err != nil {
		// Single object files are wrapped into a one-row list.
		var row map[string]any
		if err2 := json.Unmarshal(data, &row); err2 != nil {
			return nil, apperror.New(apperror.CodeParseError,
				apperror.WithCause(err), apperror.WithContext(path))
		}
		rows = []map[string]any{row}
	}

	var products []*domain.Product
	for _, row := range rows {
		if p, ok := productFromRow(row); ok {
			products = append(products, p)
		}
	}
	return products, nil
}

func (r *ProductReader) readCSV(path string) ([]*domain.Product, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperror.New(apperror.CodeFileUnreadable,
			apperror.WithCause(err), apperror.WithContext(path))
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		return nil, apperror.New(apperror.CodeParseError,
			apperror.WithCause(err), apperror.WithContext(path))
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\uFEFF")
	}

	var products []*domain.Product
	for {
		cells, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, apperror.New(apperror.CodeParseError,
				apperror.WithCause(err), apperror.WithContext(path))
		}

		row := make(map[string]any, len(header))
		for i, name := range header {
			if i < len(cells) {
				row[name] = cells[i]
			}
		}
		if p, ok := productFromRow(row); ok {
			products = append(products, p)
		}
	}

	return products, nil
}

// productFromRow coerces one key-value row into a product. ok is false
// when the row has no real product id.
func productFromRow(row map[string]any) (*domain.Product, bool) {
	get := func(field string) string {
		for _, alias := range productAliases[field] {
			for key, value := range row {
				if strings.EqualFold(strings.TrimSpace(key), alias) {
					return stringify(value)
				}
			}
		}
		return ""
	}

	id, ok := numparse.Int64(get("nm_id"))
	if !ok {
		return nil, false
	}
	productID := domain.ProductID(id)
	if !productID.IsValid() {
		return nil, false
	}

	count := func(field string) int64 {
		return numparse.Decimal(get(field)).IntPart()
	}

	return &domain.Product{
		ID:                   productID,
		Name:                 get("product_name"),
		Deliveries:           count("deliveries"),
		Sales:                count("sales"),
		Returns:              count("returns"),
		Refusals:             count("refusals"),
		SalesAmountBeforeSPP: numparse.Decimal(get("sales_before_spp")),
		SalesAmountAfterSPP:  numparse.Decimal(get("sales_after_spp")),
		ReturnsAmount:        numparse.Decimal(get("returns_amount")),
		LogisticsCost:        numparse.Decimal(get("logistics")),
		StorageCost:          numparse.Decimal(get("storage")),
		AcceptanceCost:       numparse.Decimal(get("acceptance")),
		PenaltyCost:          numparse.Decimal(get("penalty")),
		Surcharges:           numparse.Decimal(get("surcharges")),
		CommissionWithSPP:    numparse.Decimal(get("commission_with_spp")),
		CommissionWithoutSPP: numparse.Decimal(get("commission_without_spp")),
		DrrCost:              numparse.Decimal(get("drr")),
	}, true
}

// stringify renders a JSON value for numeric coercion.
func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		// %v renders large ids in scientific notation.
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return fmt.Sprintf("%v", t)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", t)
	}
}
