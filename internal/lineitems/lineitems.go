// Package lineitems reads line items from CSV and Excel files so a quote can
// be prepared in a spreadsheet and loaded into the calculator.
package lineitems

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/Simplici0/producequote/internal/pricing"
)

var (
	// ErrNoHeader is returned when the file has no header row.
	ErrNoHeader = errors.New("file must start with a header row")
	// ErrNoPriceColumns is returned when neither a cost nor a sell column is present.
	ErrNoPriceColumns = errors.New("header must name a cost or sell price column")
)

// aliases maps normalised header names to line item fields.
var aliases = map[string]string{
	"name":         "name",
	"product":      "name",
	"product name": "name",
	"item":         "name",
	"cost":         "cost",
	"unit cost":    "cost",
	"sell":         "sell",
	"price":        "sell",
	"unit price":   "sell",
	"sell price":   "sell",
	"unit sell":    "sell",
	"qty":          "qty",
	"quantity":     "qty",
	"units":        "qty",
}

type columns struct {
	name, cost, sell, qty int
}

func mapHeader(header []string) (columns, error) {
	cols := columns{name: -1, cost: -1, sell: -1, qty: -1}
	for i, h := range header {
		key := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		switch aliases[key] {
		case "name":
			if cols.name < 0 {
				cols.name = i
			}
		case "cost":
			if cols.cost < 0 {
				cols.cost = i
			}
		case "sell":
			if cols.sell < 0 {
				cols.sell = i
			}
		case "qty":
			if cols.qty < 0 {
				cols.qty = i
			}
		}
	}
	if cols.cost < 0 && cols.sell < 0 {
		return cols, ErrNoPriceColumns
	}
	return cols, nil
}

func field(record []string, i int) string {
	if i < 0 || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

func toRawItems(rows [][]string) ([]pricing.RawLineItem, error) {
	if len(rows) == 0 {
		return nil, ErrNoHeader
	}

	cols, err := mapHeader(rows[0])
	if err != nil {
		return nil, err
	}

	items := make([]pricing.RawLineItem, 0, len(rows)-1)
	for _, record := range rows[1:] {
		item := pricing.RawLineItem{
			Name:     field(record, cols.name),
			Cost:     field(record, cols.cost),
			Sell:     field(record, cols.sell),
			Quantity: field(record, cols.qty),
		}
		if item == (pricing.RawLineItem{}) {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

// ReadCSV reads line items from a CSV file with a header row.
func ReadCSV(r io.Reader) ([]pricing.RawLineItem, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	return toRawItems(rows)
}

// ReadExcel reads line items from the first sheet of an xlsx workbook.
func ReadExcel(r io.Reader) ([]pricing.RawLineItem, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}
	return toRawItems(rows)
}

// Read picks the reader from the file name extension.
func Read(filename string, r io.Reader) ([]pricing.RawLineItem, error) {
	switch ext := strings.ToLower(filename); {
	case strings.HasSuffix(ext, ".xlsx"):
		return ReadExcel(r)
	case strings.HasSuffix(ext, ".csv"):
		return ReadCSV(r)
	default:
		return nil, fmt.Errorf("unsupported file type %q: use .csv or .xlsx", filename)
	}
}
