package worksheet

import (
	"errors"
	"testing"

	"github.com/Simplici0/producequote/internal/pricing"
)

func ids(w *Worksheet) []int {
	var out []int
	for _, r := range w.Rows() {
		out = append(out, r.ID)
	}
	return out
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestNew_StartsWithOneRow(t *testing.T) {
	w := New()
	if got := ids(w); !equalInts(got, []int{1}) {
		t.Fatalf("ids = %v, want [1]", got)
	}
	if w.NextID() != 2 {
		t.Fatalf("NextID = %d, want 2", w.NextID())
	}
}

func TestAddRemove_IdentifiersAreNeverReused(t *testing.T) {
	w := New()
	w.Add()
	w.Add()

	if err := w.Remove(3); err != nil {
		t.Fatalf("Remove(3): %v", err)
	}
	if id := w.Add(); id != 4 {
		t.Fatalf("Add after remove = %d, want 4", id)
	}
	if got := ids(w); !equalInts(got, []int{1, 2, 4}) {
		t.Fatalf("ids = %v, want [1 2 4]", got)
	}
	if w.LastID() != 4 {
		t.Fatalf("LastID = %d, want 4", w.LastID())
	}
}

func TestRemove_Errors(t *testing.T) {
	w := New()

	if err := w.Remove(1); !errors.Is(err, ErrLastRow) {
		t.Fatalf("expected ErrLastRow, got %v", err)
	}
	if err := w.Remove(42); !errors.Is(err, ErrUnknownRow) {
		t.Fatalf("expected ErrUnknownRow, got %v", err)
	}
	if n := len(w.Rows()); n != 1 {
		t.Fatalf("rows = %d, want 1", n)
	}
}

func TestClear_ResetsCounter(t *testing.T) {
	w := New()
	w.Load([]pricing.RawLineItem{{Name: "Kale", Cost: "1"}, {Name: "Leeks"}})

	w.Clear()

	if got := ids(w); !equalInts(got, []int{1}) {
		t.Fatalf("ids after clear = %v, want [1]", got)
	}
	if w.Rows()[0].Fields != (pricing.RawLineItem{}) {
		t.Fatalf("expected cleared row to be empty, got %+v", w.Rows()[0].Fields)
	}
}

func TestRestore_RaisesCounterAboveRows(t *testing.T) {
	w := Restore([]Row{{ID: 3}, {ID: 7}}, 2)
	if id := w.Add(); id != 8 {
		t.Fatalf("Add after restore = %d, want 8", id)
	}

	empty := Restore(nil, 0)
	if got := ids(empty); !equalInts(got, []int{1}) {
		t.Fatalf("restore of nothing = %v, want [1]", got)
	}
}

func TestRows_ReturnsCopy(t *testing.T) {
	w := New()
	rows := w.Rows()
	rows[0].Fields.Name = "changed"
	if w.Rows()[0].Fields.Name != "" {
		t.Fatalf("Rows leaked internal state")
	}
}

func TestLoadAndInputs(t *testing.T) {
	w := New()
	w.Load([]pricing.RawLineItem{
		{Name: "Onions", Cost: "1", Sell: "3", Quantity: "4"},
		{Name: "", Cost: "", Sell: "", Quantity: ""},
	})

	if got := ids(w); !equalInts(got, []int{2, 3}) {
		t.Fatalf("ids after load = %v, want [2 3]", got)
	}

	inputs := w.Inputs()
	if len(inputs) != 2 {
		t.Fatalf("expected 2 inputs, got %d", len(inputs))
	}
	if inputs[0] != (pricing.LineItemInput{Name: "Onions", UnitCost: 1, UnitSell: 3, Quantity: 4}) {
		t.Fatalf("unexpected first input: %+v", inputs[0])
	}
	if inputs[1] != (pricing.LineItemInput{Name: pricing.DefaultName, Quantity: 1}) {
		t.Fatalf("unexpected second input: %+v", inputs[1])
	}

	w.Load(nil)
	if n := len(w.Rows()); n != 1 {
		t.Fatalf("Load(nil) should leave one row, got %d", n)
	}
}
