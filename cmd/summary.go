package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/successione"
	"github.com/etnz/successione/renderer"
	"github.com/google/subcommands"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	ledgerFile string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the per-heir balance summary" }
func (*summaryCmd) Usage() string {
	return `scs summary [-l <ledger>]

  Displays each heir's quota, owed share, payments, transfers and net
  balance, followed by the who-owes-whom settlement state.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ledgerFile, "l", "", "Ledger file to report on. Defaults to "+defaultLedgerFile+".")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger(c.ledgerFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding ledger %q: %v\n", c.ledgerFile, err)
		return subcommands.ExitFailure
	}

	var b strings.Builder
	b.WriteString(renderer.SummaryMarkdown(successione.Balances(ledger)))
	b.WriteString(renderer.SettlementMarkdown(successione.NewSettlement(ledger)))

	printMarkdown(b.String())

	return subcommands.ExitSuccess
}
