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

// expensesCmd holds the flags for the 'expenses' subcommand.
type expensesCmd struct {
	ledgerFile string
	category   string
	search     string
	pending    bool
	sort       string
	desc       bool
	cards      bool
}

func (*expensesCmd) Name() string     { return "expenses" }
func (*expensesCmd) Synopsis() string { return "list shared expenses, filtered and sorted" }
func (*expensesCmd) Usage() string {
	return `scs expenses [-category <cat>] [-search <text>] [-pending] [-sort <column>] [-desc] [-cards]

  Lists the shared expenses. Filters compose: category is an exact match,
  search is a case-insensitive substring over description and creditor,
  -pending keeps only expenses without a date. Sortable columns are
  data, categoria, creditore, descrizione and importo.
`
}

func (c *expensesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ledgerFile, "l", "", "Ledger file to report on. Defaults to "+defaultLedgerFile+".")
	f.StringVar(&c.category, "category", "", "Keep only expenses with this exact category.")
	f.StringVar(&c.search, "search", "", "Keep only expenses whose description or creditor contains this text.")
	f.BoolVar(&c.pending, "pending", false, "Keep only expenses without a date.")
	f.StringVar(&c.sort, "sort", "", "Column to sort by: data, categoria, creditore, descrizione, importo.")
	f.BoolVar(&c.desc, "desc", false, "Sort in descending order.")
	f.BoolVar(&c.cards, "cards", false, "Force the stacked card layout.")
}

var expenseColumns = map[string]bool{
	successione.ColData:        true,
	successione.ColCategoria:   true,
	successione.ColCreditore:   true,
	successione.ColDescrizione: true,
	successione.ColImporto:     true,
}

func (c *expensesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.sort != "" && !expenseColumns[c.sort] {
		fmt.Fprintf(os.Stderr, "Unknown sort column %q\n", c.sort)
		return subcommands.ExitUsageError
	}

	ledger, err := DecodeLedger(c.ledgerFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding ledger %q: %v\n", c.ledgerFile, err)
		return subcommands.ExitFailure
	}

	dash := successione.NewDashboard(ledger)
	dash.View = viewport()
	dash.Filter = successione.ExpenseFilter{
		Category:    c.category,
		Search:      c.search,
		PendingOnly: c.pending,
	}
	if c.sort != "" {
		dash.Sorts.Expenses = successione.SortState{Column: c.sort, Descending: c.desc}
		ledger.SortExpenses(dash.Sorts.Expenses)
	}

	cardMode := c.cards || dash.View.CardMode()
	printMarkdown(renderer.ExpensesMarkdown(dash.VisibleExpenses(), cardMode))

	return subcommands.ExitSuccess
}
