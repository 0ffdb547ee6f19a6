package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/profitlens/seller-analytics/internal/apperror"
)

const sampleCSV = "\uFEFFРеализация за неделю 43\n" +
	"Продавец:,ИП Иванов\n" +
	",\n" +
	"№,Номер поставки,Артикул ВБ,Артикул продавца,Баркод,Название,Размер,Тип документа,Обоснование,Кол-во,К перечислению за товар\n" +
	"1,123,11111111,SKU-1,460000,Кружка,0,Продажа,Продажа,2,\"1 200,50\"\n" +
	"2,123,11111111,SKU-1,460000,Кружка,0,Продажа,Продажа,1,600\n" +
	"3,123,22222222,SKU-2,460001,Рюкзак,0,Продажа,Продажа,1,2500\n" +
	"4,123,-1,,,Нераспределенное,,,,0,99\n" +
	"5,123,,,,Пустая строка,,,,1,50\n"

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCSVReaderParsesPastPreamble(t *testing.T) {
	path := writeTemp(t, "report.csv", sampleCSV)

	records, err := NewCSVReader().ReadRecords(path)
	if err != nil {
		t.Fatalf("ReadRecords() error: %v", err)
	}

	// Rows with the -1 service id and a missing id are dropped.
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}

	first := records[0]
	if first.ProductID != 11111111 {
		t.Errorf("ProductID = %d, want 11111111", first.ProductID)
	}
	if first.Quantity != 2 {
		t.Errorf("Quantity = %d, want 2", first.Quantity)
	}
	if !first.ForPay.Equal(decimal.RequireFromString("1200.50")) {
		t.Errorf("ForPay = %s, want 1200.50", first.ForPay)
	}
	if first.SubjectName != "Кружка" {
		t.Errorf("SubjectName = %q, want Кружка", first.SubjectName)
	}
}

func TestCSVReaderMissingColumns(t *testing.T) {
	path := writeTemp(t, "bad.csv", "a,b,c\n1,2,3\n")

	_, err := NewCSVReader().ReadRecords(path)
	if err == nil {
		t.Fatal("ReadRecords() = nil error, want missing column error")
	}
	if code := apperror.GetCode(err); code != apperror.CodeMissingColumn {
		t.Errorf("error code = %s, want %s", code, apperror.CodeMissingColumn)
	}
}

func TestCSVReaderFileNotFound(t *testing.T) {
	_, err := NewCSVReader().ReadRecords("does/not/exist.csv")
	if err == nil {
		t.Fatal("ReadRecords() = nil error, want file error")
	}
	if code := apperror.GetCode(err); code != apperror.CodeFileUnreadable {
		t.Errorf("error code = %s, want %s", code, apperror.CodeFileUnreadable)
	}
}

func TestCSVReaderEnglishHeaders(t *testing.T) {
	csvData := "nm_id,quantity,ppvz_for_pay,subject_name\n" +
		"333,4,\"1 000 ₽\",Mug\n"
	path := writeTemp(t, "api.csv", csvData)

	records, err := NewCSVReader().ReadRecords(path)
	if err != nil {
		t.Fatalf("ReadRecords() error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if !records[0].ForPay.Equal(decimal.RequireFromString("1000")) {
		t.Errorf("ForPay = %s, want 1000", records[0].ForPay)
	}
}
