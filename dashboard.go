package successione

// Dashboard is the explicit application state: the ledger plus the current
// filter, sort and viewport selections. Rendering reads everything through
// this object; there is no package-level state.
type Dashboard struct {
	Ledger *Ledger
	Filter ExpenseFilter
	Sorts  SortBook
	View   Viewport
}

// NewDashboard creates a dashboard over a ledger, with no filter and no sort.
func NewDashboard(l *Ledger) *Dashboard {
	return &Dashboard{Ledger: l}
}

// VisibleExpenses returns the expenses that pass the current filter, in the
// ledger's current order.
func (d *Dashboard) VisibleExpenses() []Expense {
	return d.Filter.Apply(d.Ledger.Expenses())
}

// VisibleTransfers returns the transfers in the ledger's current order.
// Transfers have no filter.
func (d *Dashboard) VisibleTransfers() []Transfer {
	return d.Ledger.Transfers()
}

// ToggleExpenseSort applies a header click on the expense table and re-sorts
// the ledger accordingly.
func (d *Dashboard) ToggleExpenseSort(column string) {
	d.Sorts.Expenses.Toggle(column)
	d.Ledger.SortExpenses(d.Sorts.Expenses)
}

// ToggleTransferSort applies a header click on the transfer table and
// re-sorts the ledger accordingly.
func (d *Dashboard) ToggleTransferSort(column string) {
	d.Sorts.Transfers.Toggle(column)
	d.Ledger.SortTransfers(d.Sorts.Transfers)
}
