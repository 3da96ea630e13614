package successione

import (
	"fmt"
	"slices"
	"strings"

	"github.com/etnz/successione/date"
)

// Heir is a beneficiary entitled to a percentage share of the total expenses.
type Heir struct {
	Name  string
	Quota Percent // share of total expenses, 0-100
}

// Expense is a cost to be split among heirs according to their shares,
// partially or fully pre-paid by some of them.
//
// A zero Date means the expense is still pending (not yet paid). An heir
// absent from Payments has paid nothing toward this expense.
type Expense struct {
	Date        date.Date
	Category    string
	Creditor    string
	Description string
	Amount      Money
	Payments    map[string]Money // by heir name
}

// Pending reports whether the expense has no date, i.e. is still unpaid.
func (e Expense) Pending() bool { return e.Date.IsZero() }

// Payers returns the heirs with a positive payment on this expense, in
// alphabetical order for deterministic display.
func (e Expense) Payers() []string {
	var names []string
	for name, amount := range e.Payments {
		if amount.IsPositive() {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}

// Transfer is a direct payment between two heirs, outside the
// expense-splitting mechanism.
type Transfer struct {
	Date   date.Date
	From   string
	To     string
	Amount Money
	Note   string
}

// Ledger holds the heirs, expenses and transfers of one estate settlement.
//
// A Ledger is built once (decoded from its data file) and then read-only,
// with a single exception: SortExpenses and SortTransfers reorder the
// underlying sequences in place. The input order is recoverable only by
// reloading the file.
type Ledger struct {
	name      string
	heirs     []Heir
	expenses  []Expense
	transfers []Transfer
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{}
}

// Name returns the ledger name, derived from its file by the loader.
func (l *Ledger) Name() string { return l.name }

// AddHeir appends an heir. Duplicate names are rejected.
func (l *Ledger) AddHeir(name string, quota Percent) error {
	if l.HasHeir(name) {
		return fmt.Errorf("heir %q is already defined", name)
	}
	l.heirs = append(l.heirs, Heir{Name: name, Quota: quota})
	return nil
}

// AddExpense appends an expense to the ledger.
func (l *Ledger) AddExpense(e ...Expense) { l.expenses = append(l.expenses, e...) }

// AddTransfer appends a transfer to the ledger.
func (l *Ledger) AddTransfer(t ...Transfer) { l.transfers = append(l.transfers, t...) }

// Heirs returns the heirs in their declaration order.
func (l *Ledger) Heirs() []Heir { return l.heirs }

// HasHeir reports whether name is a declared heir.
func (l *Ledger) HasHeir(name string) bool {
	return slices.ContainsFunc(l.heirs, func(h Heir) bool { return h.Name == name })
}

// Quota returns the share of the named heir, or 0 if unknown.
func (l *Ledger) Quota(name string) Percent {
	for _, h := range l.heirs {
		if h.Name == name {
			return h.Quota
		}
	}
	return 0
}

// Expenses returns the backing expense sequence, in its current order.
func (l *Ledger) Expenses() []Expense { return l.expenses }

// Transfers returns the backing transfer sequence, in its current order.
func (l *Ledger) Transfers() []Transfer { return l.transfers }

// Categories returns the distinct non-empty expense categories, sorted.
func (l *Ledger) Categories() []string {
	var cats []string
	for _, e := range l.expenses {
		if e.Category != "" && !slices.Contains(cats, e.Category) {
			cats = append(cats, e.Category)
		}
	}
	slices.Sort(cats)
	return cats
}

// TotalExpenses returns the sum of all expense amounts.
func (l *Ledger) TotalExpenses() Money {
	var total Money
	for _, e := range l.expenses {
		total = total.Add(e.Amount)
	}
	return total
}

// Check returns advisory warnings about the ledger: heirs referenced in
// payment maps or transfers that are not declared, shares not summing to
// 100%, negative amounts. None of these prevent the ledger from being used;
// unknown heirs simply contribute zero everywhere.
func (l *Ledger) Check() []error {
	var warnings []error
	var totalQuota Percent
	for _, h := range l.heirs {
		totalQuota += h.Quota
	}
	if len(l.heirs) > 0 && !totalQuota.Equal(100) {
		warnings = append(warnings, fmt.Errorf("heir shares sum to %s, not 100%%", totalQuota))
	}
	for i, e := range l.expenses {
		if e.Amount.IsNegative() {
			warnings = append(warnings, fmt.Errorf("expense #%d %q has a negative amount", i+1, e.Description))
		}
		for name := range e.Payments {
			if !l.HasHeir(name) {
				warnings = append(warnings, fmt.Errorf("expense #%d %q paid by unknown heir %q", i+1, e.Description, name))
			}
		}
	}
	for i, t := range l.transfers {
		if t.Amount.IsNegative() {
			warnings = append(warnings, fmt.Errorf("transfer #%d has a negative amount", i+1))
		}
		for _, name := range []string{t.From, t.To} {
			if !l.HasHeir(name) {
				warnings = append(warnings, fmt.Errorf("transfer #%d references unknown heir %q", i+1, name))
			}
		}
	}
	return warnings
}

// String returns a short human description, for logs.
func (l *Ledger) String() string {
	var names []string
	for _, h := range l.heirs {
		names = append(names, h.Name)
	}
	return fmt.Sprintf("ledger %q: %d heirs (%s), %d expenses, %d transfers",
		l.name, len(l.heirs), strings.Join(names, ", "), len(l.expenses), len(l.transfers))
}
