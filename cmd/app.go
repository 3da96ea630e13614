// Package cmd implements the CLI application to manage an estate ledger.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/successione"
	"github.com/google/subcommands"
	"golang.org/x/term"
)

// Commands holds the subcommands in registration order. A main package
// ranges over it and registers each one on its commander.
var Commands = []subcommands.Command{
	&summaryCmd{},
	&expensesCmd{},
	&transfersCmd{},
	&settleCmd{},
	&exportCmd{},
	&fmtCmd{},
	&importCmd{},
	&cacheCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

const defaultLedgerFile = "successione.json"

// compactColumns is the terminal width below which the card layout applies,
// the terminal counterpart of the compact viewport width.
const compactColumns = 72

// DecodeLedger loads the ledger the subcommand should operate on. An empty
// filename means the default ledger file. Consistency warnings are logged,
// they never block a command.
func DecodeLedger(filename string) (*successione.Ledger, error) {
	if filename == "" {
		filename = defaultLedgerFile
	}
	ledger, err := successione.LoadLedger(filename)
	if err != nil {
		return nil, err
	}
	for _, w := range ledger.Check() {
		slog.Warn("ledger check", "file", filename, "issue", w)
	}
	return ledger, nil
}

// viewport measures the terminal the command renders into. A non-terminal
// stdout gets a fixed landscape viewport, which keeps the tabular layout.
func viewport() successione.Viewport {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		w, h = 80, 24
	}
	return successione.Viewport{Width: w, Height: h, Compact: compactColumns}
}

// printMarkdown renders markdown to the terminal through glamour, falling
// back to the raw markdown when the renderer is not available.
func printMarkdown(markdown string) {
	width := viewport().Width
	if width > 120 {
		width = 120
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		fmt.Print(markdown)
		return
	}
	out, err := r.Render(markdown)
	if err != nil {
		fmt.Print(markdown)
		return
	}
	fmt.Print(out)
}
