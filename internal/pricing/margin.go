package pricing

import (
	"math"
	"strings"
)

// Method selects how profit is expressed as a percentage.
type Method string

const (
	MethodGross  Method = "gross"
	MethodMarkup Method = "markup"
	MethodNet    Method = "net"
)

// Methods lists the selectable methods in display order.
var Methods = []Method{MethodGross, MethodMarkup, MethodNet}

// ParseMethod maps user input to a Method. Unknown values fall back to gross.
func ParseMethod(s string) Method {
	switch m := Method(strings.ToLower(strings.TrimSpace(s))); m {
	case MethodMarkup, MethodNet:
		return m
	default:
		return MethodGross
	}
}

// Label returns the caption shown next to an overall margin.
func (m Method) Label() string {
	switch m {
	case MethodMarkup:
		return "Markup"
	case MethodNet:
		return "Net Margin"
	default:
		return "Gross Margin"
	}
}

// Margin returns profit as a percentage of cost (markup) or revenue (gross,
// net). A non-positive denominator yields 0, as does a result that is not a
// finite number.
func Margin(cost, revenue, profit float64, m Method) float64 {
	switch m {
	case MethodMarkup:
		return percentOf(profit, cost)
	case MethodNet:
		// Same formula as gross; the two are distinct labels for the user.
		return percentOf(profit, revenue)
	default:
		return percentOf(profit, revenue)
	}
}

func percentOf(profit, base float64) float64 {
	if !(base > 0) {
		return 0
	}
	v := profit / base * 100
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
