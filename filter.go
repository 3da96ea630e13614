package successione

import "strings"

// ExpenseFilter selects a subset of the expenses for display. The zero value
// matches everything.
type ExpenseFilter struct {
	// Category keeps only expenses with exactly this category ("" keeps all).
	Category string
	// Search keeps expenses whose description or creditor contains this text,
	// case-insensitively ("" keeps all).
	Search string
	// PendingOnly keeps only expenses without a date.
	PendingOnly bool
}

// Match reports whether the expense passes all three conditions.
func (f ExpenseFilter) Match(e Expense) bool {
	if f.Category != "" && e.Category != f.Category {
		return false
	}
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(e.Description), needle) &&
			!strings.Contains(strings.ToLower(e.Creditor), needle) {
			return false
		}
	}
	if f.PendingOnly && !e.Pending() {
		return false
	}
	return true
}

// Apply returns the matching expenses in their current order, in a fresh
// slice. The input is not modified.
func (f ExpenseFilter) Apply(expenses []Expense) []Expense {
	matched := make([]Expense, 0, len(expenses))
	for _, e := range expenses {
		if f.Match(e) {
			matched = append(matched, e)
		}
	}
	return matched
}
