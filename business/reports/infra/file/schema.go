// Package file reads marketplace realization reports from local CSV and
// JSON files.
package file

import "strings"

// Column identifies a logical report column.
type Column string

const (
	ColProductID     Column = "product_id"
	ColSellerArticle Column = "seller_article"
	ColName          Column = "name"
	ColQuantity      Column = "quantity"
	ColForPay        Column = "for_pay"
	ColRetailAmount  Column = "retail_amount"
	ColCommission    Column = "commission"
	ColDelivery      Column = "delivery"
	ColStorage       Column = "storage"
	ColPenalty       Column = "penalty"
	ColAcceptance    Column = "acceptance"
)

// columnAliases maps logical columns to the header names the marketplace
// has used across report versions. Matching is case-insensitive.
var columnAliases = map[Column][]string{
	ColProductID:     {"Артикул ВБ", "Код номенклатуры", "nm_id", "nmId"},
	ColSellerArticle: {"Артикул продавца", "Артикул поставщика", "sa_name"},
	ColName:          {"Название", "Предмет", "НазваниеГруппы", "subject_name"},
	ColQuantity:      {"Кол-во", "Количество", "Продажи, шт", "quantity"},
	ColForPay:        {"К перечислению за товар", "К перечислению Продавцу за реализованный Товар", "ppvz_for_pay"},
	ColRetailAmount:  {"Вайлдберриз реализовал Товар (Пр)", "Цена розничная с учетом согласованной скидки", "retail_amount"},
	ColCommission:    {"Вознаграждение Вайлдберриз (ВВ), без НДС", "ppvz_sales_commission"},
	ColDelivery:      {"Услуги по доставке товара покупателю", "delivery_rub"},
	ColStorage:       {"Хранение", "storage_fee"},
	ColPenalty:       {"Общая сумма штрафов", "Штрафы", "penalty"},
	ColAcceptance:    {"Платная приемка", "acceptance"},
}

// requiredColumns must all be present for a file to be readable.
var requiredColumns = []Column{ColProductID, ColQuantity, ColForPay}

// normalizeHeader canonicalizes a header cell for alias matching.
func normalizeHeader(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// resolveColumns maps a header row to column indexes. Unknown headers
// are ignored; a column keeps the first index that matched.
func resolveColumns(header []string) map[Column]int {
	byName := make(map[string]int, len(header))
	for i, cell := range header {
		name := normalizeHeader(cell)
		if _, seen := byName[name]; !seen {
			byName[name] = i
		}
	}

	resolved := make(map[Column]int)
	for col, aliases := range columnAliases {
		for _, alias := range aliases {
			if idx, ok := byName[normalizeHeader(alias)]; ok {
				resolved[col] = idx
				break
			}
		}
	}
	return resolved
}

// missingRequired returns the required columns absent from resolved.
func missingRequired(resolved map[Column]int) []Column {
	var missing []Column
	for _, col := range requiredColumns {
		if _, ok := resolved[col]; !ok {
			missing = append(missing, col)
		}
	}
	return missing
}
