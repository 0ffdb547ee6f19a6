package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/profitlens/seller-analytics/internal/apperror"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadManualData(t *testing.T) {
	path := writeTemp(t, "manual.json", `{
		"11111111": {"cost_per_unit": 250.50, "self_purchase_count": 3, "giveaway_count": 2, "giveaway_cost": 500},
		"22222222": {"cost_per_unit": 99}
	}`)

	data, err := LoadManualData(path)
	if err != nil {
		t.Fatalf("LoadManualData() error: %v", err)
	}
	if len(data) != 2 {
		t.Fatalf("got %d entries, want 2", len(data))
	}

	m := data[11111111]
	if !m.CostPerUnit.Equal(decimal.RequireFromString("250.50")) {
		t.Errorf("CostPerUnit = %s, want 250.50", m.CostPerUnit)
	}
	if m.SelfPurchaseCount != 3 {
		t.Errorf("SelfPurchaseCount = %d, want 3", m.SelfPurchaseCount)
	}
	if !m.GiveawayCost.Equal(decimal.RequireFromString("500")) {
		t.Errorf("GiveawayCost = %s, want 500", m.GiveawayCost)
	}
	if !data[22222222].MarketingCost.IsZero() {
		t.Error("missing fields should default to zero")
	}
}

func TestLoadManualDataRejectsNegative(t *testing.T) {
	path := writeTemp(t, "bad.json", `{"11111111": {"cost_per_unit": -5}}`)

	_, err := LoadManualData(path)
	if err == nil {
		t.Fatal("LoadManualData() = nil error, want validation error")
	}
	if code := apperror.GetCode(err); code != apperror.CodeManualDataInvalid {
		t.Errorf("error code = %s, want %s", code, apperror.CodeManualDataInvalid)
	}
}

func TestLoadManualDataRejectsBadID(t *testing.T) {
	path := writeTemp(t, "badid.json", `{"abc": {"cost_per_unit": 5}}`)

	if _, err := LoadManualData(path); err == nil {
		t.Fatal("LoadManualData() = nil error, want bad id error")
	}
}

func TestReadProductsJSON(t *testing.T) {
	path := writeTemp(t, "products.json", `[
		{"nm_id": 11111111, "product_name": "Mug", "sales": 10, "returns": 1, "sales_after_spp": "15 000,50"},
		{"nm_id": -1, "product_name": "Service row"},
		{"product_name": "No id"}
	]`)

	products, err := NewProductReader().ReadProducts(path)
	if err != nil {
		t.Fatalf("ReadProducts() error: %v", err)
	}
	if len(products) != 1 {
		t.Fatalf("got %d products, want 1", len(products))
	}

	p := products[0]
	if p.ID != 11111111 {
		t.Errorf("ID = %d, want 11111111", p.ID)
	}
	if p.Sales != 10 {
		t.Errorf("Sales = %d, want 10", p.Sales)
	}
	if !p.SalesAmountAfterSPP.Equal(decimal.RequireFromString("15000.50")) {
		t.Errorf("SalesAmountAfterSPP = %s, want 15000.50", p.SalesAmountAfterSPP)
	}
}

func TestReadProductsCSV(t *testing.T) {
	csvData := "nm_id,product_name,sales,returns,sales_after_spp,logistics\n" +
		"22222222,Backpack,5,0,\"9 000\",450.25\n"
	path := writeTemp(t, "products.csv", csvData)

	products, err := NewProductReader().ReadProducts(path)
	if err != nil {
		t.Fatalf("ReadProducts() error: %v", err)
	}
	if len(products) != 1 {
		t.Fatalf("got %d products, want 1", len(products))
	}
	if !products[0].LogisticsCost.Equal(decimal.RequireFromString("450.25")) {
		t.Errorf("LogisticsCost = %s, want 450.25", products[0].LogisticsCost)
	}
}
