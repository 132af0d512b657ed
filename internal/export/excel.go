package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/Simplici0/producequote/internal/pricing"
)

const sheetName = "Quote"

// GenerateExcel builds a one-sheet workbook with the quote table and totals
// and returns the xlsx bytes.
func GenerateExcel(r pricing.Result, now time.Time) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	columns := []string{"A", "B", "C", "D", "E", "F", "G"}
	lastCol := columns[len(columns)-1]

	widths := []float64{36, 10, 12, 12, 16, 14, 12}
	for i, col := range columns {
		if err := f.SetColWidth(sheetName, col, col, widths[i]); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", col, err)
		}
	}

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 16},
	})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#2E7D32"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	// Keep two decimals on currency cells and one on margins.
	moneyFmt := "0.00"
	percentFmt := "0.0"
	moneyStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &moneyFmt, Border: thinBorders()})
	if err != nil {
		return nil, fmt.Errorf("create money style: %w", err)
	}
	percentStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &percentFmt, Border: thinBorders()})
	if err != nil {
		return nil, fmt.Errorf("create percent style: %w", err)
	}
	textStyle, err := f.NewStyle(&excelize.Style{Border: thinBorders()})
	if err != nil {
		return nil, fmt.Errorf("create text style: %w", err)
	}
	totalsStyle, err := f.NewStyle(&excelize.Style{
		Font:         &excelize.Font{Bold: true},
		CustomNumFmt: &moneyFmt,
	})
	if err != nil {
		return nil, fmt.Errorf("create totals style: %w", err)
	}

	if err := f.MergeCell(sheetName, "A1", lastCol+"1"); err != nil {
		return nil, fmt.Errorf("merge title: %w", err)
	}
	f.SetCellValue(sheetName, "A1", "Produce Quote")
	f.SetCellStyle(sheetName, "A1", lastCol+"1", titleStyle)
	f.SetCellValue(sheetName, "A2", "Date: "+QuoteDate(now))

	for i, h := range CSVHeader {
		f.SetCellValue(sheetName, columns[i]+"4", h)
	}
	f.SetCellStyle(sheetName, "A4", lastCol+"4", headerStyle)

	row := 5
	for _, item := range r.Items {
		rowStr := fmt.Sprintf("%d", row)
		f.SetCellValue(sheetName, "A"+rowStr, sanitizeExcelCell(item.Name))
		f.SetCellValue(sheetName, "B"+rowStr, item.Quantity)
		f.SetCellValue(sheetName, "C"+rowStr, item.UnitCost)
		f.SetCellValue(sheetName, "D"+rowStr, item.UnitSell)
		f.SetCellValue(sheetName, "E"+rowStr, item.TotalRevenue)
		f.SetCellValue(sheetName, "F"+rowStr, item.Profit)
		f.SetCellValue(sheetName, "G"+rowStr, item.MarginPercent)

		f.SetCellStyle(sheetName, "A"+rowStr, "B"+rowStr, textStyle)
		f.SetCellStyle(sheetName, "C"+rowStr, "F"+rowStr, moneyStyle)
		f.SetCellStyle(sheetName, "G"+rowStr, "G"+rowStr, percentStyle)
		row++
	}

	row++
	summary := []struct {
		label string
		value float64
	}{
		{"Total Cost:", r.Totals.TotalCost},
		{"Total Revenue:", r.Totals.TotalRevenue},
		{"Total Profit:", r.Totals.TotalProfit},
		{"Overall " + r.Method.Label() + " %:", r.Totals.OverallMarginPercent},
	}
	for _, s := range summary {
		rowStr := fmt.Sprintf("%d", row)
		f.SetCellValue(sheetName, "E"+rowStr, s.label)
		f.SetCellValue(sheetName, "F"+rowStr, s.value)
		f.SetCellStyle(sheetName, "F"+rowStr, "F"+rowStr, totalsStyle)
		row++
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}
	return buf.Bytes(), nil
}

// sanitizeExcelCell prefixes values Excel would evaluate as formulas.
func sanitizeExcelCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{Type: side, Color: "#000000", Style: 1}
	}
	return borders
}
