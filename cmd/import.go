package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/successione"
	"github.com/google/subcommands"
)

// importCmd holds the flags for the 'import' subcommand.
type importCmd struct {
	ledgerFile string
	path       string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import expenses from an external JSON file" }
func (*importCmd) Usage() string {
	return `scs import [-path <jsonpath>] <file>

  Imports expenses from a JSON export and appends them to the ledger.
  The -path expression selects the expense list inside the document,
  for instance "$.spese" or "$.export.rows".
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ledgerFile, "l", "", "Ledger file to import into. Defaults to "+defaultLedgerFile+".")
	f.StringVar(&c.path, "path", "$.spese", "JSONPath expression selecting the expenses in the source file.")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Expected exactly one source file")
		return subcommands.ExitUsageError
	}
	source := f.Arg(0)

	filename := c.ledgerFile
	if filename == "" {
		filename = defaultLedgerFile
	}

	ledger, err := DecodeLedger(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding ledger %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}

	in, err := os.Open(source)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening %q: %v\n", source, err)
		return subcommands.ExitFailure
	}
	defer in.Close()

	expenses, err := successione.ImportExpenses(in, c.path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing from %q: %v\n", source, err)
		return subcommands.ExitFailure
	}

	ledger.AddExpense(expenses...)
	if err := successione.SaveLedger(filename, ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving ledger %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Imported %d expenses into %s\n", len(expenses), filename)
	return subcommands.ExitSuccess
}
