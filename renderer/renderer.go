// Package renderer turns ledger figures into markdown reports.
//
// All figures come from the successione balance calculator; nothing in this
// package recomputes a balance. Each renderer takes a cardMode flag where it
// matters: table layout for wide viewports, stacked cards for narrow
// portrait ones.
package renderer

import (
	"strings"

	"github.com/etnz/successione"
)

// dash substitutes an em dash for empty values, as the tables do for
// pending dates.
func dash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}

// paidBy lists the heirs with a positive payment on the expense, with their
// amounts, or "Nessuno".
func paidBy(e successione.Expense) string {
	names := e.Payers()
	if len(names) == 0 {
		return "Nessuno"
	}
	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+" ("+e.Payments[name].String()+")")
	}
	return strings.Join(parts, ", ")
}
