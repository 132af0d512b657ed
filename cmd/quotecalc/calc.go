package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/google/subcommands"

	"github.com/Simplici0/producequote/internal/export"
	"github.com/Simplici0/producequote/internal/pricing"
)

// calcCmd prints a quote to the terminal.
type calcCmd struct {
	method string
	format string
	raw    bool

	defaultMethod  pricing.Method
	stdout, stderr io.Writer
	now            func() time.Time
}

func newCalcCmd(defaultMethod pricing.Method, stdout, stderr io.Writer) *calcCmd {
	return &calcCmd{defaultMethod: defaultMethod, stdout: stdout, stderr: stderr, now: time.Now}
}

func (*calcCmd) Name() string     { return "calc" }
func (*calcCmd) Synopsis() string { return "calculate margins for a file of line items" }
func (*calcCmd) Usage() string {
	return `quotecalc calc [-m gross|markup|net] [-f markdown|csv|text] [-raw] <file.csv|file.xlsx>

  Reads line items (product, cost, price, quantity) and prints the quote.
`
}

func (c *calcCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.method, "m", string(c.defaultMethod), "Margin method: gross, markup or net.")
	f.StringVar(&c.format, "f", "markdown", "Output format: markdown, csv or text.")
	f.BoolVar(&c.raw, "raw", false, "Print markdown without terminal styling.")
}

func (c *calcCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintf(c.stderr, "calc expects exactly one file\n%s", c.Usage())
		return subcommands.ExitUsageError
	}

	result, err := readQuote(f.Arg(0), pricing.ParseMethod(c.method))
	if errors.Is(err, errEmptyQuote) {
		fmt.Fprintln(c.stderr, emptyQuoteMessage)
		return subcommands.ExitFailure
	}
	if err != nil {
		fmt.Fprintf(c.stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	switch c.format {
	case "markdown", "md":
		md := export.Markdown(result)
		if !c.raw {
			md, err = renderMarkdown(md)
		}
		if err == nil {
			_, err = io.WriteString(c.stdout, md)
		}
	case "csv":
		err = export.WriteCSV(c.stdout, result)
	case "text", "txt":
		err = export.WriteText(c.stdout, result, c.now())
	default:
		fmt.Fprintf(c.stderr, "unknown format %q\n", c.format)
		return subcommands.ExitUsageError
	}
	if err != nil {
		fmt.Fprintf(c.stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
