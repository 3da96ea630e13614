package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/successione"
	"github.com/google/subcommands"
)

type fmtCmd struct {
	ledgerFile string
}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats the ledger file into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `scs fmt [-l <ledger>]

  Validates and formats the ledger file. This command reads the ledger,
  reports consistency warnings (shares not summing to 100, unknown heirs,
  negative amounts), and writes it back in a canonical indented JSON form.
`
}

func (c *fmtCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ledgerFile, "l", "", "Ledger file to format. Defaults to "+defaultLedgerFile+".")
}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	filename := c.ledgerFile
	if filename == "" {
		filename = defaultLedgerFile
	}

	ledger, err := DecodeLedger(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding ledger %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}

	if err := successione.SaveLedger(filename, ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving formatted ledger %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}

	fmt.Fprintf(os.Stderr, "Finished formatting ledger %q.\n", ledger.Name())
	return subcommands.ExitSuccess
}
