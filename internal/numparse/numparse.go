// Package numparse coerces messy spreadsheet cell values into decimals.
// Marketplace exports mix thousands separators, currency signs, percent
// signs and comma decimal points depending on the locale of whoever
// downloaded the file.
package numparse

import (
	"strings"

	"github.com/shopspring/decimal"
)

var cleaner = strings.NewReplacer(
	" ", "",
	" ", "", // non-breaking space used as thousands separator
	" ", "", // narrow no-break space, same role
	"₽", "",
	"$", "",
	"€", "",
	"%", "",
)

// Decimal parses s into a decimal, tolerating separators and currency
// symbols. Unparsable or empty input coerces to zero; a bad cell must
// never abort processing of the remaining rows.
func Decimal(s string) decimal.Decimal {
	d, _ := DecimalStrict(s)
	return d
}

// DecimalStrict behaves like Decimal but reports whether the value was
// actually parsed, so callers can count unusable cells.
func DecimalStrict(s string) (decimal.Decimal, bool) {
	s = cleaner.Replace(strings.TrimSpace(s))
	if s == "" || s == "-" || strings.EqualFold(s, "nan") {
		return decimal.Zero, false
	}

	// Russian exports use the comma as a decimal point. A value with both
	// separators ("1,234.56") keeps the dot as the decimal point.
	if strings.Contains(s, ",") {
		if strings.Contains(s, ".") {
			s = strings.ReplaceAll(s, ",", "")
		} else {
			s = strings.ReplaceAll(s, ",", ".")
		}
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// Int64 parses s as an integer identifier. Returns 0 and false when the
// cell is empty or not a whole number.
func Int64(s string) (int64, bool) {
	d, ok := DecimalStrict(s)
	if !ok {
		return 0, false
	}
	if !d.IsInteger() {
		return 0, false
	}
	return d.IntPart(), true
}
