package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/Simplici0/producequote/internal/pricing"
)

var separator = strings.Repeat("=", 60)

// WriteText writes the plain text quote meant for pasting into emails and
// messages.
func WriteText(w io.Writer, r pricing.Result, now time.Time) error {
	var b strings.Builder

	fmt.Fprintf(&b, "PRODUCE QUOTE - %s\n", QuoteDate(now))
	b.WriteString(separator + "\n\n")

	for _, item := range r.Items {
		fmt.Fprintf(&b, "%s\n", item.Name)
		fmt.Fprintf(&b, " Qty: %s @ %s = %s (Profit: %s, Margin: %s%%)\n\n",
			Quantity(item.Quantity),
			Money(item.UnitSell),
			Money(item.TotalRevenue),
			Money(item.Profit),
			Percent(item.MarginPercent),
		)
	}

	b.WriteString(separator + "\n")
	fmt.Fprintf(&b, "TOTAL REVENUE: %s\n", Money(r.Totals.TotalRevenue))
	fmt.Fprintf(&b, "TOTAL PROFIT:  %s\n", Money(r.Totals.TotalProfit))
	fmt.Fprintf(&b, "OVERALL MARGIN: %s%%\n", Percent(r.Totals.OverallMarginPercent))

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("write text quote: %w", err)
	}
	return nil
}
