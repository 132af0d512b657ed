package export

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Simplici0/producequote/internal/pricing"
)

// CSVHeader is the first line of every CSV export.
var CSVHeader = []string{"Product", "Quantity", "Unit Cost", "Unit Price", "Total Revenue", "Profit", "Margin %"}

// CSVRow is one data row read back from a CSV export.
type CSVRow struct {
	Product       string
	Quantity      decimal.Decimal
	UnitCost      decimal.Decimal
	UnitPrice     decimal.Decimal
	TotalRevenue  decimal.Decimal
	Profit        decimal.Decimal
	MarginPercent decimal.Decimal
}

// WriteCSV writes the header and one row per included item. Product names
// are always quoted; numbers are fixed to two decimals, margins to one.
func WriteCSV(w io.Writer, r pricing.Result) error {
	bw := bufio.NewWriter(w)

	if _, err := bw.WriteString(strings.Join(CSVHeader, ", ") + "\n"); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, item := range r.Items {
		fields := []string{
			quoteCSV(item.Name),
			Quantity(item.Quantity),
			Amount(item.UnitCost),
			Amount(item.UnitSell),
			Amount(item.TotalRevenue),
			Amount(item.Profit),
			Percent(item.MarginPercent),
		}
		if _, err := bw.WriteString(strings.Join(fields, ", ") + "\n"); err != nil {
			return fmt.Errorf("write csv row %q: %w", item.Name, err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

func quoteCSV(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// ReadCSV parses a CSV export produced by WriteCSV.
func ReadCSV(r io.Reader) ([]CSVRow, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = len(CSVHeader)

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("csv export is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	if header[0] != CSVHeader[0] {
		return nil, fmt.Errorf("unexpected csv header %q", strings.Join(header, ","))
	}

	rows := make([]CSVRow, 0)
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row: %w", err)
		}

		row := CSVRow{Product: record[0]}
		targets := []*decimal.Decimal{
			&row.Quantity,
			&row.UnitCost,
			&row.UnitPrice,
			&row.TotalRevenue,
			&row.Profit,
			&row.MarginPercent,
		}
		for i, target := range targets {
			v, err := decimal.NewFromString(strings.TrimSpace(record[i+1]))
			if err != nil {
				return nil, fmt.Errorf("parse %s for %q: %w", CSVHeader[i+1], row.Product, err)
			}
			*target = v
		}
		rows = append(rows, row)
	}

	return rows, nil
}
