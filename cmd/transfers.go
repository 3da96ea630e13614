package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/successione"
	"github.com/etnz/successione/renderer"
	"github.com/google/subcommands"
)

// transfersCmd holds the flags for the 'transfers' subcommand.
type transfersCmd struct {
	ledgerFile string
	sort       string
	desc       bool
	cards      bool
}

func (*transfersCmd) Name() string     { return "transfers" }
func (*transfersCmd) Synopsis() string { return "list transfers between heirs" }
func (*transfersCmd) Usage() string {
	return `scs transfers [-sort <column>] [-desc] [-cards]

  Lists the transfers between heirs. Sortable columns are data, da, a,
  importo and note.
`
}

func (c *transfersCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ledgerFile, "l", "", "Ledger file to report on. Defaults to "+defaultLedgerFile+".")
	f.StringVar(&c.sort, "sort", "", "Column to sort by: data, da, a, importo, note.")
	f.BoolVar(&c.desc, "desc", false, "Sort in descending order.")
	f.BoolVar(&c.cards, "cards", false, "Force the stacked card layout.")
}

var transferColumns = map[string]bool{
	successione.ColData:    true,
	successione.ColDa:      true,
	successione.ColA:       true,
	successione.ColImporto: true,
	successione.ColNote:    true,
}

func (c *transfersCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.sort != "" && !transferColumns[c.sort] {
		fmt.Fprintf(os.Stderr, "Unknown sort column %q\n", c.sort)
		return subcommands.ExitUsageError
	}

	ledger, err := DecodeLedger(c.ledgerFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding ledger %q: %v\n", c.ledgerFile, err)
		return subcommands.ExitFailure
	}

	if c.sort != "" {
		ledger.SortTransfers(successione.SortState{Column: c.sort, Descending: c.desc})
	}

	cardMode := c.cards || viewport().CardMode()
	printMarkdown(renderer.TransfersMarkdown(ledger.Transfers(), cardMode))

	return subcommands.ExitSuccess
}
