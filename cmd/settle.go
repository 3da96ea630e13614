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

// settleCmd holds the flags for the 'settle' subcommand.
type settleCmd struct {
	ledgerFile string
	debtor     string
	amount     float64
}

func (*settleCmd) Name() string     { return "settle" }
func (*settleCmd) Synopsis() string { return "suggest settlement payments for a debtor" }
func (*settleCmd) Usage() string {
	return `scs settle -debtor <name> [-amount <euros>]

  Suggests who the debtor should pay, largest creditor first. The amount
  defaults to the debtor's full outstanding balance.
`
}

func (c *settleCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ledgerFile, "l", "", "Ledger file to report on. Defaults to "+defaultLedgerFile+".")
	f.StringVar(&c.debtor, "debtor", "", "Heir paying their debt.")
	f.Float64Var(&c.amount, "amount", 0, "Amount available to pay, in euros. Defaults to the full debt.")
}

func (c *settleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.debtor == "" {
		fmt.Fprintln(os.Stderr, "Missing -debtor flag")
		return subcommands.ExitUsageError
	}

	ledger, err := DecodeLedger(c.ledgerFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding ledger %q: %v\n", c.ledgerFile, err)
		return subcommands.ExitFailure
	}
	if !ledger.HasHeir(c.debtor) {
		fmt.Fprintf(os.Stderr, "Unknown heir %q\n", c.debtor)
		return subcommands.ExitUsageError
	}

	settlement := successione.NewSettlement(ledger)
	available := successione.M(c.amount)
	if available.IsZero() {
		for _, d := range settlement.Debtors {
			if d.Heir == c.debtor {
				available = d.Amount
			}
		}
	}

	plan := settlement.Suggest(c.debtor, available)
	if len(plan) == 0 {
		fmt.Printf("%s has nothing to settle.\n", c.debtor)
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.PaymentsMarkdown(plan))

	return subcommands.ExitSuccess
}
