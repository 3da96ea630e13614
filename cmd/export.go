package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/successione/export"
	"github.com/google/subcommands"
)

// exportCmd holds the flags for the 'export' subcommand.
type exportCmd struct {
	ledgerFile string
	format     string
	output     string
	title      string
	subtitle   string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the settlement document as PDF or HTML" }
func (*exportCmd) Usage() string {
	return `scs export [-format pdf|html] [-o <file>] [-title <title>] [-subtitle <subtitle>]

  Produces the printable settlement document: per-heir summary table,
  balance chart and expense detail.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ledgerFile, "l", "", "Ledger file to export. Defaults to "+defaultLedgerFile+".")
	f.StringVar(&c.format, "format", "pdf", "Output format: pdf or html.")
	f.StringVar(&c.output, "o", "", "Output file. Defaults to "+export.DefaultFileName+".")
	f.StringVar(&c.title, "title", "", "Document title.")
	f.StringVar(&c.subtitle, "subtitle", "", "Document subtitle.")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger(c.ledgerFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding ledger %q: %v\n", c.ledgerFile, err)
		return subcommands.ExitFailure
	}

	opts := export.Options{Title: c.title, FileName: c.output, Subtitle: c.subtitle}

	var doc []byte
	switch c.format {
	case "pdf":
		doc, err = export.PDF(ledger, opts)
	case "html":
		if opts.FileName == "" {
			opts.FileName = strings.TrimSuffix(export.DefaultFileName, ".pdf") + ".html"
		}
		doc, err = export.HTML(ledger, opts)
	default:
		fmt.Fprintf(os.Stderr, "Unknown format %q, want pdf or html\n", c.format)
		return subcommands.ExitUsageError
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	filename := c.output
	if filename == "" {
		filename = opts.FileName
		if filename == "" {
			filename = export.DefaultFileName
		}
	}
	if err := os.WriteFile(filename, doc, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Exported %s\n", filename)
	return subcommands.ExitSuccess
}
