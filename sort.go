package successione

import (
	"sort"
	"strings"
)

// Column names for the sortable tables. They mirror the keys of the data
// file: "importo" compares numerically, every other column compares as
// lowercased text. An unknown column compares everything equal, which leaves
// the order untouched (the sorts are stable).
const (
	ColData        = "data"
	ColCategoria   = "categoria"
	ColCreditore   = "creditore"
	ColDescrizione = "descrizione"
	ColImporto     = "importo"
	ColDa          = "da"
	ColA           = "a"
	ColNote        = "note"
)

// SortState is the sort selection of one table: a single active column and a
// direction. The zero value means "no sort".
type SortState struct {
	Column     string
	Descending bool
}

// Toggle applies a click on a column header: the active column flips
// direction, a new column becomes active ascending.
func (s *SortState) Toggle(column string) {
	if s.Column == column {
		s.Descending = !s.Descending
		return
	}
	s.Column = column
	s.Descending = false
}

// SortBook tracks the sort state of each table independently, so the
// expense sort survives re-renders of the transfer table and vice versa.
type SortBook struct {
	Expenses  SortState
	Transfers SortState
}

// sortValue is one comparable cell: textual by default, numeric for amounts.
type sortValue struct {
	text    string
	num     float64
	numeric bool
}

func textValue(s string) sortValue { return sortValue{text: strings.ToLower(s)} }

func (v sortValue) less(w sortValue) bool {
	if v.numeric {
		return v.num < w.num
	}
	return v.text < w.text
}

func expenseValue(e Expense, column string) sortValue {
	switch column {
	case ColData:
		return textValue(e.Date.String())
	case ColCategoria:
		return textValue(e.Category)
	case ColCreditore:
		return textValue(e.Creditor)
	case ColDescrizione:
		return textValue(e.Description)
	case ColImporto:
		return sortValue{num: e.Amount.Float64(), numeric: true}
	}
	return sortValue{}
}

func transferValue(t Transfer, column string) sortValue {
	switch column {
	case ColData:
		return textValue(t.Date.String())
	case ColDa:
		return textValue(t.From)
	case ColA:
		return textValue(t.To)
	case ColImporto:
		return sortValue{num: t.Amount.Float64(), numeric: true}
	case ColNote:
		return textValue(t.Note)
	}
	return sortValue{}
}

// SortExpenses reorders the expense sequence in place, stably, according to
// the given state. Sorting is destructive: the previous order is not kept
// around.
func (l *Ledger) SortExpenses(state SortState) {
	if state.Column == "" {
		return
	}
	sort.SliceStable(l.expenses, func(i, j int) bool {
		a := expenseValue(l.expenses[i], state.Column)
		b := expenseValue(l.expenses[j], state.Column)
		if state.Descending {
			a, b = b, a
		}
		return a.less(b)
	})
}

// SortTransfers reorders the transfer sequence in place, stably.
func (l *Ledger) SortTransfers(state SortState) {
	if state.Column == "" {
		return
	}
	sort.SliceStable(l.transfers, func(i, j int) bool {
		a := transferValue(l.transfers[i], state.Column)
		b := transferValue(l.transfers[j], state.Column)
		if state.Descending {
			a, b = b, a
		}
		return a.less(b)
	})
}
