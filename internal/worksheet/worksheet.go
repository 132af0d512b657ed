// Package worksheet tracks the entry rows of the quote form.
//
// Row identifiers come from a counter owned by the worksheet. They only grow
// during the worksheet's lifetime and are never reused, except after Clear.
package worksheet

import (
	"errors"
	"slices"

	"github.com/Simplici0/producequote/internal/pricing"
)

var (
	// ErrLastRow is returned when removing the only remaining row.
	ErrLastRow = errors.New("you need at least one line item")
	// ErrUnknownRow is returned for identifiers not present in the worksheet.
	ErrUnknownRow = errors.New("unknown line item")
)

// Row is one entry row with its raw field values.
type Row struct {
	ID     int
	Fields pricing.RawLineItem
}

// Worksheet is an ordered collection of entry rows.
type Worksheet struct {
	rows   []Row
	nextID int
}

// New returns a worksheet holding a single empty row.
func New() *Worksheet {
	w := &Worksheet{}
	w.Clear()
	return w
}

// Restore rebuilds a worksheet from rows posted back by the form. nextID is
// raised above every restored identifier so new rows never collide.
func Restore(rows []Row, nextID int) *Worksheet {
	w := &Worksheet{rows: slices.Clone(rows), nextID: nextID}
	for _, r := range rows {
		if r.ID >= w.nextID {
			w.nextID = r.ID + 1
		}
	}
	if w.nextID < 1 {
		w.nextID = 1
	}
	if len(w.rows) == 0 {
		w.Add()
	}
	return w
}

// Add appends an empty row and returns its identifier.
func (w *Worksheet) Add() int {
	id := w.nextID
	w.nextID++
	w.rows = append(w.rows, Row{ID: id})
	return id
}

// Remove deletes the row with the given identifier.
func (w *Worksheet) Remove(id int) error {
	i := w.index(id)
	if i < 0 {
		return ErrUnknownRow
	}
	if len(w.rows) <= 1 {
		return ErrLastRow
	}
	w.rows = slices.Delete(w.rows, i, i+1)
	return nil
}

// Clear drops every row, resets the counter and starts over with one empty row.
func (w *Worksheet) Clear() {
	w.rows = nil
	w.nextID = 1
	w.Add()
}

// Rows returns a copy of the rows in display order.
func (w *Worksheet) Rows() []Row {
	return slices.Clone(w.rows)
}

// NextID returns the identifier the next added row will receive.
func (w *Worksheet) NextID() int {
	return w.nextID
}

// LastID returns the identifier of the last row, or 0 when empty.
func (w *Worksheet) LastID() int {
	if len(w.rows) == 0 {
		return 0
	}
	return w.rows[len(w.rows)-1].ID
}

// Load replaces all rows with the given field values, one row each.
func (w *Worksheet) Load(items []pricing.RawLineItem) {
	w.rows = nil
	for _, item := range items {
		id := w.Add()
		w.rows[len(w.rows)-1] = Row{ID: id, Fields: item}
	}
	if len(w.rows) == 0 {
		w.Add()
	}
}

// Inputs coerces every row into calculator input, in display order.
func (w *Worksheet) Inputs() []pricing.LineItemInput {
	raws := make([]pricing.RawLineItem, 0, len(w.rows))
	for _, r := range w.rows {
		raws = append(raws, r.Fields)
	}
	return pricing.CoerceAll(raws)
}

func (w *Worksheet) index(id int) int {
	return slices.IndexFunc(w.rows, func(r Row) bool { return r.ID == id })
}
