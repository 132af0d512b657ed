package pricing

import "iter"

// LineItemInput is one product entry after boundary coercion.
type LineItemInput struct {
	Name     string
	UnitCost float64
	UnitSell float64
	Quantity float64
}

// LineItemResult holds the derived values for one included line item.
type LineItemResult struct {
	Name          string
	Quantity      float64
	UnitCost      float64
	UnitSell      float64
	TotalCost     float64
	TotalRevenue  float64
	Profit        float64
	MarginPercent float64
}

// Totals contains roll-up values across all valid items of a calculation.
type Totals struct {
	TotalCost            float64
	TotalRevenue         float64
	TotalProfit          float64
	OverallMarginPercent float64
	ValidItemCount       int
}

// Empty reports whether no item survived filtering. An empty quote has
// nothing to report and should not be presented as a quote worth zero.
func (t Totals) Empty() bool {
	return t.ValidItemCount == 0
}

// Result groups the full calculation output.
type Result struct {
	Method Method
	Items  []LineItemResult
	Totals Totals
}

// isEmptyRow reports whether an item has neither a cost nor a sell price.
func isEmptyRow(item LineItemInput) bool {
	return item.UnitCost == 0 && item.UnitSell == 0
}

// Lines yields a result for every non-empty item, in input order.
//
// The per-item margin is computed from unit profit (profit / quantity)
// against unit cost and unit sell price. A zero quantity falls back to the
// difference of the unit prices.
func Lines(items []LineItemInput, m Method) iter.Seq[LineItemResult] {
	return func(yield func(LineItemResult) bool) {
		for _, item := range items {
			if isEmptyRow(item) {
				continue
			}

			totalCost := item.UnitCost * item.Quantity
			totalRevenue := item.UnitSell * item.Quantity
			profit := totalRevenue - totalCost

			unitProfit := item.UnitSell - item.UnitCost
			if item.Quantity != 0 {
				unitProfit = profit / item.Quantity
			}

			res := LineItemResult{
				Name:          item.Name,
				Quantity:      item.Quantity,
				UnitCost:      item.UnitCost,
				UnitSell:      item.UnitSell,
				TotalCost:     totalCost,
				TotalRevenue:  totalRevenue,
				Profit:        profit,
				MarginPercent: Margin(item.UnitCost, item.UnitSell, unitProfit, m),
			}
			if !yield(res) {
				return
			}
		}
	}
}

// Calculate computes per-item results and grand totals for items.
//
// The overall margin uses the aggregate totals directly, unlike the
// per-item margins which use unit profit.
func Calculate(items []LineItemInput, m Method) Result {
	result := Result{
		Method: m,
		Items:  make([]LineItemResult, 0, len(items)),
	}

	for line := range Lines(items, m) {
		result.Items = append(result.Items, line)
		result.Totals.TotalCost += line.TotalCost
		result.Totals.TotalRevenue += line.TotalRevenue
		result.Totals.TotalProfit += line.Profit
		result.Totals.ValidItemCount++
	}

	result.Totals.OverallMarginPercent = Margin(
		result.Totals.TotalCost,
		result.Totals.TotalRevenue,
		result.Totals.TotalProfit,
		m,
	)

	return result
}
