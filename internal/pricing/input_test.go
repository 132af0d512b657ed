package pricing

import (
	"math"
	"testing"
)

func TestCoerce_Fallbacks(t *testing.T) {
	tests := []struct {
		name string
		raw  RawLineItem
		want LineItemInput
	}{
		{
			name: "all blank",
			raw:  RawLineItem{},
			want: LineItemInput{Name: DefaultName, Quantity: 1},
		},
		{
			name: "whitespace name",
			raw:  RawLineItem{Name: "   ", Cost: "1", Sell: "2", Quantity: "3"},
			want: LineItemInput{Name: DefaultName, UnitCost: 1, UnitSell: 2, Quantity: 3},
		},
		{
			name: "non numeric",
			raw:  RawLineItem{Name: "Kale", Cost: "abc", Sell: "n/a", Quantity: "lots"},
			want: LineItemInput{Name: "Kale", Quantity: 1},
		},
		{
			name: "zero quantity",
			raw:  RawLineItem{Name: "Kale", Cost: "1.25", Sell: "2", Quantity: "0"},
			want: LineItemInput{Name: "Kale", UnitCost: 1.25, UnitSell: 2, Quantity: 1},
		},
		{
			name: "numeric prefix",
			raw:  RawLineItem{Name: "Leeks", Cost: " 0.75/lb", Sell: "1.5e1x", Quantity: "2.5 boxes"},
			want: LineItemInput{Name: "Leeks", UnitCost: 0.75, UnitSell: 15, Quantity: 2.5},
		},
		{
			name: "leading dot",
			raw:  RawLineItem{Name: "Herbs", Cost: ".5", Sell: "-.25", Quantity: "-2"},
			want: LineItemInput{Name: "Herbs", UnitCost: 0.5, UnitSell: -0.25, Quantity: -2},
		},
		{
			name: "overflow",
			raw:  RawLineItem{Name: "Huge", Cost: "1e400", Sell: "3", Quantity: "1e999"},
			want: LineItemInput{Name: "Huge", UnitSell: 3, Quantity: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Coerce(tt.raw); got != tt.want {
				t.Fatalf("Coerce(%+v) = %+v, want %+v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestCoerce_RejectsOutOfRangeMagnitudes(t *testing.T) {
	got := Coerce(RawLineItem{Name: "Huge", Cost: "1e308", Sell: "-1e13", Quantity: "1e300"})
	want := LineItemInput{Name: "Huge", UnitCost: 0, UnitSell: 0, Quantity: 1}
	if got != want {
		t.Fatalf("Coerce = %+v, want %+v", got, want)
	}

	kept := Coerce(RawLineItem{Cost: "1e12", Sell: "999999999999.5", Quantity: "2"})
	if kept.UnitCost != 1e12 || kept.UnitSell != 999999999999.5 {
		t.Fatalf("values within range should be kept, got %+v", kept)
	}
}

func TestCoerceAll_LargeInputsStayFinite(t *testing.T) {
	result := Calculate(CoerceAll([]RawLineItem{
		{Name: "Huge", Cost: "1e308", Sell: "1e308", Quantity: "10"},
		{Name: "Big", Cost: "999999999999", Sell: "1000000000000", Quantity: "1000000000000"},
	}), MethodGross)

	for _, item := range result.Items {
		for _, v := range []float64{item.TotalCost, item.TotalRevenue, item.Profit, item.MarginPercent} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Fatalf("non-finite value in %+v", item)
			}
		}
	}
	if v := result.Totals.OverallMarginPercent; math.IsNaN(v) || math.IsInf(v, 0) {
		t.Fatalf("overall margin = %v", v)
	}
}

func TestCoerceAll_KeepsOrderAndFeedsCalculate(t *testing.T) {
	raws := []RawLineItem{
		{Name: "Blank"},
		{Name: "Onions", Cost: "1", Sell: "3", Quantity: "4"},
		{Name: "Garlic", Cost: "2", Sell: "5", Quantity: "10"},
	}

	items := CoerceAll(raws)
	if len(items) != 3 {
		t.Fatalf("expected 3 coerced items, got %d", len(items))
	}

	result := Calculate(items, MethodGross)
	if result.Totals.ValidItemCount != 2 {
		t.Fatalf("expected 2 valid items, got %d", result.Totals.ValidItemCount)
	}
	if result.Items[0].Name != "Onions" || result.Items[1].Name != "Garlic" {
		t.Fatalf("unexpected order: %+v", result.Items)
	}
}
