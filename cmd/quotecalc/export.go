package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/subcommands"

	"github.com/Simplici0/producequote/internal/export"
	"github.com/Simplici0/producequote/internal/pricing"
)

// exportCmd writes a quote file next to the other downloads.
type exportCmd struct {
	method string
	format string
	dir    string

	defaultMethod  pricing.Method
	stdout, stderr io.Writer
	now            func() time.Time
}

func newExportCmd(defaultMethod pricing.Method, stdout, stderr io.Writer) *exportCmd {
	return &exportCmd{defaultMethod: defaultMethod, stdout: stdout, stderr: stderr, now: time.Now}
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "write a quote as csv, txt, xlsx or pdf" }
func (*exportCmd) Usage() string {
	return `quotecalc export [-m gross|markup|net] [-f csv|txt|xlsx|pdf] [-o <dir>] <file.csv|file.xlsx>

  Writes produce-quote-<date>.<format> into the output directory.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.method, "m", string(c.defaultMethod), "Margin method: gross, markup or net.")
	f.StringVar(&c.format, "f", "csv", "Export format: csv, txt, xlsx or pdf.")
	f.StringVar(&c.dir, "o", ".", "Output directory.")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintf(c.stderr, "export expects exactly one file\n%s", c.Usage())
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

	now := c.now()
	var buf bytes.Buffer
	switch c.format {
	case "csv":
		err = export.WriteCSV(&buf, result)
	case "txt":
		err = export.WriteText(&buf, result, now)
	case "xlsx":
		var data []byte
		data, err = export.GenerateExcel(result, now)
		buf.Write(data)
	case "pdf":
		var data []byte
		data, err = export.GeneratePDF(result, now)
		buf.Write(data)
	default:
		fmt.Fprintf(c.stderr, "unknown format %q\n", c.format)
		return subcommands.ExitUsageError
	}
	if err != nil {
		fmt.Fprintf(c.stderr, "Error exporting %s: %v\n", c.format, err)
		return subcommands.ExitFailure
	}

	out := filepath.Join(c.dir, export.Filename(now, c.format))
	if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
		fmt.Fprintf(c.stderr, "Error writing %s: %v\n", out, err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(c.stdout, "Wrote %s (%d items)\n", out, len(result.Items))
	return subcommands.ExitSuccess
}
