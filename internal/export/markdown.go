package export

import (
	"fmt"
	"strings"

	"github.com/Simplici0/producequote/internal/pricing"
)

// Markdown renders the results table with a totals row and a short summary.
func Markdown(r pricing.Result) string {
	var b strings.Builder

	b.WriteString("| Product | Qty | Unit Cost | Unit Price | Total | Profit | Margin |\n")
	b.WriteString("|:---|---:|---:|---:|---:|---:|---:|\n")
	for _, item := range r.Items {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s%% |\n",
			escapeCell(item.Name),
			Quantity(item.Quantity),
			Money(item.UnitCost),
			Money(item.UnitSell),
			Money(item.TotalRevenue),
			Money(item.Profit),
			Percent(item.MarginPercent),
		)
	}
	fmt.Fprintf(&b, "| **TOTALS** | | | | %s | %s | %s%% |\n\n",
		Money(r.Totals.TotalRevenue),
		Money(r.Totals.TotalProfit),
		Percent(r.Totals.OverallMarginPercent),
	)

	fmt.Fprintf(&b, "- Total cost: %s\n", Money(r.Totals.TotalCost))
	fmt.Fprintf(&b, "- Total revenue: %s\n", Money(r.Totals.TotalRevenue))
	fmt.Fprintf(&b, "- Total profit: %s\n", Money(r.Totals.TotalProfit))
	fmt.Fprintf(&b, "- Overall %s: %s%%\n", r.Method.Label(), Percent(r.Totals.OverallMarginPercent))

	return b.String()
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
