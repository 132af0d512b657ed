// Package export renders calculated quotes into the formats users take
// away from the calculator: CSV, plain text, markdown, spreadsheet and PDF.
package export

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

const filenamePrefix = "produce-quote-"

// Filename returns the download name for an export created at now,
// e.g. produce-quote-2024-03-09.csv.
func Filename(now time.Time, ext string) string {
	return filenamePrefix + now.Format(time.DateOnly) + "." + ext
}

// Amount formats a currency value with two decimals and no symbol.
func Amount(v float64) string {
	return exact(v).StringFixed(2)
}

// Money formats a currency value as "$12.50". Losses keep the sign after
// the symbol ("$-3.00").
func Money(v float64) string {
	return "$" + Amount(v)
}

// Percent formats a margin with one decimal and no percent sign.
func Percent(v float64) string {
	return exact(v).StringFixed(1)
}

// exact converts v from its binary value rather than its shortest decimal
// form, so 1.005 (stored as 1.00499...) rounds down to 1.00. Values that
// are not finite format as zero.
func exact(v float64) decimal.Decimal {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(strconv.FormatFloat(v, 'f', 30, 64))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Quantity formats a quantity in its shortest form: 10, 2.5.
func Quantity(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// QuoteDate formats the human readable date printed on a quote.
func QuoteDate(now time.Time) string {
	return fmt.Sprintf("%d/%d/%d", now.Month(), now.Day(), now.Year())
}
