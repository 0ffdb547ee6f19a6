package numparse

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestDecimal(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain_number", in: "1234.56", want: "1234.56"},
		{name: "comma_decimal_point", in: "1234,56", want: "1234.56"},
		{name: "space_thousands_and_currency", in: "1 234,56 ₽", want: "1234.56"},
		{name: "nbsp_thousands", in: "12 345", want: "12345"},
		{name: "both_separators", in: "1,234.56", want: "1234.56"},
		{name: "percent_sign", in: "12%", want: "12"},
		{name: "dollar_sign", in: "$99.90", want: "99.9"},
		{name: "negative", in: "-45,10", want: "-45.1"},
		{name: "empty", in: "", want: "0"},
		{name: "whitespace_only", in: "   ", want: "0"},
		{name: "nan_cell", in: "nan", want: "0"},
		{name: "garbage", in: "n/a", want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decimal(tt.in)
			want := decimal.RequireFromString(tt.want)
			if !got.Equal(want) {
				t.Errorf("Decimal(%q) = %s, want %s", tt.in, got, want)
			}
		})
	}
}

func TestDecimalStrict_ReportsUnparsable(t *testing.T) {
	if _, ok := DecimalStrict("abc"); ok {
		t.Error("DecimalStrict(\"abc\") reported ok, want false")
	}
	if _, ok := DecimalStrict("10.5"); !ok {
		t.Error("DecimalStrict(\"10.5\") reported not ok, want true")
	}
}

func TestInt64(t *testing.T) {
	tests := []struct {
		in     string
		want   int64
		wantOK bool
	}{
		{in: "147205694", want: 147205694, wantOK: true},
		{in: " 147205694 ", want: 147205694, wantOK: true},
		{in: "-1", want: -1, wantOK: true},
		{in: "12.5", want: 0, wantOK: false},
		{in: "", want: 0, wantOK: false},
		{in: "nan", want: 0, wantOK: false},
	}

	for _, tt := range tests {
		got, ok := Int64(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("Int64(%q) = (%d, %v), want (%d, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}
