package successione

import (
	"testing"

	"github.com/etnz/successione/date"
)

// aliceBobLedger builds the two-heir ledger used across tests: Alice and Bob
// at 50% each, one expense of 100 fully paid by Alice.
func aliceBobLedger(t *testing.T) *Ledger {
	t.Helper()
	l := NewLedger()
	if err := l.AddHeir("Alice", 50); err != nil {
		t.Fatal(err)
	}
	if err := l.AddHeir("Bob", 50); err != nil {
		t.Fatal(err)
	}
	l.AddExpense(Expense{
		Date:        date.MustParse("2024-01-05"),
		Category:    "Notaio",
		Creditor:    "Studio Rossi",
		Description: "Atto di successione",
		Amount:      M(100),
		Payments:    map[string]Money{"Alice": M(100)},
	})
	return l
}
