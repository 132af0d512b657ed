package pricing

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// DefaultName labels line items entered without a name.
const DefaultName = "Unnamed Product"

// RawLineItem carries the free-form field values of one entry row.
type RawLineItem struct {
	Name     string
	Cost     string
	Sell     string
	Quantity string
}

// maxMagnitude bounds coerced values so totals stay finite.
const maxMagnitude = 1e12

// leadingNumber matches the numeric prefix of a field, e.g. "12.5" in "12.5kg".
var leadingNumber = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// Coerce turns raw field text into a well-typed LineItemInput.
//
// Cost and sell price fall back to 0, quantity falls back to 1. A quantity
// of 0 is treated as missing, and so is any value beyond ±1e12.
func Coerce(raw RawLineItem) LineItemInput {
	name := raw.Name
	if strings.TrimSpace(name) == "" {
		name = DefaultName
	}

	qty := parseNumber(raw.Quantity, 1)
	if qty == 0 {
		qty = 1
	}

	return LineItemInput{
		Name:     name,
		UnitCost: parseNumber(raw.Cost, 0),
		UnitSell: parseNumber(raw.Sell, 0),
		Quantity: qty,
	}
}

// CoerceAll applies Coerce to every row, preserving order.
func CoerceAll(raws []RawLineItem) []LineItemInput {
	items := make([]LineItemInput, 0, len(raws))
	for _, raw := range raws {
		items = append(items, Coerce(raw))
	}
	return items
}

func parseNumber(s string, fallback float64) float64 {
	match := leadingNumber.FindString(strings.TrimLeft(s, " \t\r\n"))
	if match == "" {
		return fallback
	}

	v, err := strconv.ParseFloat(match, 64)
	if err != nil || math.IsNaN(v) || math.Abs(v) > maxMagnitude {
		return fallback
	}
	return v
}
