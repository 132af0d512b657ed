package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/glamour"

	"github.com/Simplici0/producequote/internal/lineitems"
	"github.com/Simplici0/producequote/internal/pricing"
)

const emptyQuoteMessage = "No items to calculate."

var errEmptyQuote = errors.New("no items to calculate")

// readQuote loads the line items of a CSV or xlsx file and calculates them.
func readQuote(name string, method pricing.Method) (pricing.Result, error) {
	f, err := os.Open(name)
	if err != nil {
		return pricing.Result{}, err
	}
	defer f.Close()

	raws, err := lineitems.Read(filepath.Base(name), f)
	if err != nil {
		return pricing.Result{}, fmt.Errorf("read %s: %w", name, err)
	}

	result := pricing.Calculate(pricing.CoerceAll(raws), method)
	if result.Totals.Empty() {
		return result, errEmptyQuote
	}
	return result, nil
}

// renderMarkdown formats md for the terminal.
func renderMarkdown(md string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return "", err
	}
	return r.Render(md)
}
