package export

import (
	"fmt"
	"time"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/Simplici0/producequote/internal/pricing"
)

var (
	lossColor  = &props.Color{Red: 198, Green: 40, Blue: 40}
	gainColor  = &props.Color{Red: 46, Green: 125, Blue: 50}
	mutedColor = &props.Color{Red: 110, Green: 110, Blue: 110}
)

// GeneratePDF renders the printable quote and returns the PDF bytes.
func GeneratePDF(r pricing.Result, now time.Time) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).
		WithTopMargin(12).
		WithRightMargin(12).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   mutedColor,
		}).
		Build()

	m := maroto.New(cfg)

	addPDFHeader(m, now)
	addPDFTableHeader(m)
	for _, item := range r.Items {
		addPDFRow(m, item)
	}
	addPDFTotals(m, r)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

func addPDFHeader(m core.Maroto, now time.Time) {
	m.AddRows(
		row.New(12).Add(
			col.New(8).Add(
				text.New("Produce Quote", props.Text{Size: 16, Style: fontstyle.Bold, Align: align.Left}),
			),
			col.New(4).Add(
				text.New("Date: "+QuoteDate(now), props.Text{Size: 9, Align: align.Right, Color: mutedColor}),
			),
		),
	)
	m.AddRows(row.New(4))
}

func addPDFTableHeader(m core.Maroto) {
	headerCell := &props.Cell{BackgroundColor: &props.Color{Red: 33, Green: 37, Blue: 41}}
	headerText := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Right,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerLeft := headerText
	headerLeft.Align = align.Left

	m.AddRows(
		row.New(8).Add(
			col.New(3).Add(text.New("Product", headerLeft)).WithStyle(headerCell),
			col.New(1).Add(text.New("Qty", headerText)).WithStyle(headerCell),
			col.New(2).Add(text.New("Unit Cost", headerText)).WithStyle(headerCell),
			col.New(2).Add(text.New("Unit Price", headerText)).WithStyle(headerCell),
			col.New(2).Add(text.New("Total", headerText)).WithStyle(headerCell),
			col.New(1).Add(text.New("Profit", headerText)).WithStyle(headerCell),
			col.New(1).Add(text.New("Margin", headerText)).WithStyle(headerCell),
		),
	)
}

func addPDFRow(m core.Maroto, item pricing.LineItemResult) {
	base := props.Text{Size: 8, Align: align.Right}
	left := base
	left.Align = align.Left
	result := base
	result.Color = gainColor
	if item.Profit < 0 {
		result.Color = lossColor
	}

	m.AddRows(
		row.New(7).Add(
			col.New(3).Add(text.New(item.Name, left)),
			col.New(1).Add(text.New(Quantity(item.Quantity), base)),
			col.New(2).Add(text.New(Money(item.UnitCost), base)),
			col.New(2).Add(text.New(Money(item.UnitSell), base)),
			col.New(2).Add(text.New(Money(item.TotalRevenue), base)),
			col.New(1).Add(text.New(Money(item.Profit), result)),
			col.New(1).Add(text.New(Percent(item.MarginPercent)+"%", result)),
		),
	)
}

func addPDFTotals(m core.Maroto, r pricing.Result) {
	m.AddRows(row.New(4))

	summaryCell := &props.Cell{BackgroundColor: &props.Color{Red: 240, Green: 240, Blue: 240}}
	label := props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right}
	value := label
	if r.Totals.TotalProfit < 0 {
		value.Color = lossColor
	}

	lines := []struct {
		label string
		value string
	}{
		{"Total Cost", Money(r.Totals.TotalCost)},
		{"Total Revenue", Money(r.Totals.TotalRevenue)},
		{"Total Profit", Money(r.Totals.TotalProfit)},
		{"Overall " + r.Method.Label(), Percent(r.Totals.OverallMarginPercent) + "%"},
	}
	for _, l := range lines {
		m.AddRows(
			row.New(8).Add(
				col.New(8).Add(text.New(l.label, label)).WithStyle(summaryCell),
				col.New(4).Add(text.New(l.value, value)).WithStyle(summaryCell),
			),
		)
	}
}
