package export

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/finance-pal/backend/internal/application/adapter"
	"github.com/finance-pal/backend/internal/domain/valueobject"
)

var (
	_ adapter.TableEncoder = (*CSVEncoder)(nil)
	_ adapter.TableEncoder = (*XLSXEncoder)(nil)
)

func sampleTable() valueobject.Table {
	return valueobject.Table{
		Name:   "transactions",
		Header: []string{"ID", "Category", "Description"},
		Rows: [][]string{
			{"1", "Food", "Lunch, with team"},
			{"2", "Rent", `He said "hi"`},
			{"3", "Other", "multi\nline"},
		},
	}
}

func TestCSVEncoder_Encode(t *testing.T) {
	var buf bytes.Buffer
	if err := NewCSVEncoder().Encode(&buf, sampleTable()); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	want := "ID,Category,Description\n" +
		"1,Food,\"Lunch, with team\"\n" +
		"2,Rent,\"He said \"\"hi\"\"\"\n" +
		"3,Other,\"multi\nline\"\n"
	if buf.String() != want {
		t.Errorf("Encode() =\n%q\nwant\n%q", buf.String(), want)
	}
}

func TestCSVEncoder_EmptyTable(t *testing.T) {
	var buf bytes.Buffer
	table := valueobject.Table{Header: []string{"ID", "Name"}}
	if err := NewCSVEncoder().Encode(&buf, table); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if buf.String() != "ID,Name\n" {
		t.Errorf("Encode() = %q, want header only", buf.String())
	}
}

func TestXLSXEncoder_Encode(t *testing.T) {
	var buf bytes.Buffer
	if err := NewXLSXEncoder().Encode(&buf, sampleTable()); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("OpenReader() error = %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("transactions")
	if err != nil {
		t.Fatalf("GetRows() error = %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("got %d rows, want 4", len(rows))
	}
	if rows[0][2] != "Description" || rows[1][2] != "Lunch, with team" {
		t.Errorf("unexpected cells: %v", rows[:2])
	}
}

func TestSheetName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", "Sheet1"},
		{"short", "budgets", "budgets"},
		{"truncated", "a-very-long-collection-name-for-export", "a-very-long-collection-name-for"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sheetName(tt.in); got != tt.want {
				t.Errorf("sheetName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
