package lineitems

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/Simplici0/producequote/internal/pricing"
)

func TestReadCSV_MapsHeaderAliases(t *testing.T) {
	input := "Product, Unit Cost, Unit Price, Quantity\n" +
		"\"Apples, Gala\", 2, 5, 10\n" +
		"Pears, 1, 3,\n" +
		"\n" +
		"Plums, abc, 4, 2\n"

	items, err := ReadCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}

	want := []pricing.RawLineItem{
		{Name: "Apples, Gala", Cost: "2", Sell: "5", Quantity: "10"},
		{Name: "Pears", Cost: "1", Sell: "3", Quantity: ""},
		{Name: "Plums", Cost: "abc", Sell: "4", Quantity: "2"},
	}
	if len(items) != len(want) {
		t.Fatalf("expected %d items, got %d: %+v", len(want), len(items), items)
	}
	for i := range want {
		if items[i] != want[i] {
			t.Fatalf("item %d = %+v, want %+v", i, items[i], want[i])
		}
	}
}

func TestReadCSV_ColumnOrderAndMissingColumns(t *testing.T) {
	input := "qty,sell,name\n3,2.5,Leeks\n"

	items, err := ReadCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0] != (pricing.RawLineItem{Name: "Leeks", Sell: "2.5", Quantity: "3"}) {
		t.Fatalf("unexpected item: %+v", items[0])
	}
}

func TestReadCSV_ReadsExportedQuote(t *testing.T) {
	input := "Product, Quantity, Unit Cost, Unit Price, Total Revenue, Profit, Margin %\n" +
		"\"Organic Apples\", 10, 2.00, 5.00, 50.00, 30.00, 60.0\n"

	items, err := ReadCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	if len(items) != 1 || items[0] != (pricing.RawLineItem{Name: "Organic Apples", Cost: "2.00", Sell: "5.00", Quantity: "10"}) {
		t.Fatalf("unexpected items: %+v", items)
	}
}

func TestReadCSV_Errors(t *testing.T) {
	if _, err := ReadCSV(strings.NewReader("")); !errors.Is(err, ErrNoHeader) {
		t.Fatalf("expected ErrNoHeader, got %v", err)
	}
	if _, err := ReadCSV(strings.NewReader("name,qty\nKale,2\n")); !errors.Is(err, ErrNoPriceColumns) {
		t.Fatalf("expected ErrNoPriceColumns, got %v", err)
	}
}

func TestReadExcel(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	rows := [][]any{
		{"Name", "Cost", "Sell", "Qty"},
		{"Carrots", 0.4, 1.2, 25},
		{"Beets", 0.8, 2, nil},
	}
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := f.SetSheetRow(sheet, cell, &r); err != nil {
			t.Fatalf("set row %d: %v", i, err)
		}
	}
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	f.Close()

	items, err := ReadExcel(&buf)
	if err != nil {
		t.Fatalf("ReadExcel: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d: %+v", len(items), items)
	}
	if items[0] != (pricing.RawLineItem{Name: "Carrots", Cost: "0.4", Sell: "1.2", Quantity: "25"}) {
		t.Fatalf("unexpected first item: %+v", items[0])
	}
	if items[1].Name != "Beets" || items[1].Quantity != "" {
		t.Fatalf("unexpected second item: %+v", items[1])
	}
}

func TestRead_DispatchesOnExtension(t *testing.T) {
	items, err := Read("quote.CSV", strings.NewReader("name,cost\nKale,1\n"))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}

	if _, err := Read("quote.txt", strings.NewReader("")); err == nil {
		t.Fatalf("expected error for unsupported extension")
	}
}
