package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/successione"
	"github.com/etnz/successione/date"
)

// testLedger is the worked example: Alice paid the single 100 expense, so
// she is a creditor for 50 and Bob a debtor for 50.
func testLedger(t *testing.T) *successione.Ledger {
	t.Helper()
	l := successione.NewLedger()
	if err := l.AddHeir("Alice", 50); err != nil {
		t.Fatal(err)
	}
	if err := l.AddHeir("Bob", 50); err != nil {
		t.Fatal(err)
	}
	l.AddExpense(successione.Expense{
		Date:        date.MustParse("2024-01-05"),
		Category:    "Notaio",
		Creditor:    "Studio Rossi",
		Description: "Atto di successione",
		Amount:      successione.M(100),
		Payments:    map[string]successione.Money{"Alice": successione.M(100)},
	})
	l.AddTransfer(successione.Transfer{
		Date:   date.MustParse("2024-02-01"),
		From:   "Bob",
		To:     "Alice",
		Amount: successione.M(20),
		Note:   "acconto",
	})
	return l
}

func TestSummaryMarkdown(t *testing.T) {
	got := SummaryMarkdown(successione.Balances(testLedger(t)))

	for _, want := range []string{
		"Riepilogo per Erede",
		"Alice", "Bob",
		"Dovuto", "Pagato", "Trasf. Ric.", "Trasf. Inv.", "Saldo",
		"€100,00", // Alice paid
		"€50,00",  // each owes half
	} {
		if !strings.Contains(got, want) {
			t.Errorf("summary missing %q in:\n%s", want, got)
		}
	}
}

func TestSettlementMarkdown(t *testing.T) {
	s := successione.NewSettlement(testLedger(t))
	got := SettlementMarkdown(s)

	for _, want := range []string{"Chi deve a chi", "Debitori", "Creditori", "Alice", "Bob", "€30,00"} {
		if !strings.Contains(got, want) {
			t.Errorf("settlement missing %q in:\n%s", want, got)
		}
	}
	if strings.Contains(got, "pareggio") {
		t.Error("unsettled ledger must not render the settled message")
	}
}

func TestSettlementMarkdown_Settled(t *testing.T) {
	got := SettlementMarkdown(successione.NewSettlement(successione.NewLedger()))
	if !strings.Contains(got, "Tutti i conti sono in pareggio.") {
		t.Errorf("settled ledger should say so, got:\n%s", got)
	}
}

func TestExpensesMarkdown(t *testing.T) {
	spese := testLedger(t).Expenses()

	table := ExpensesMarkdown(spese, false)
	for _, want := range []string{"Elenco Spese", "2024-01-05", "Notaio", "Studio Rossi", "Alice (€100,00)"} {
		if !strings.Contains(table, want) {
			t.Errorf("table missing %q in:\n%s", want, table)
		}
	}

	cards := ExpensesMarkdown(spese, true)
	for _, want := range []string{"Creditore: Studio Rossi", "Pagato da: Alice (€100,00)"} {
		if !strings.Contains(cards, want) {
			t.Errorf("cards missing %q in:\n%s", want, cards)
		}
	}
	if strings.Contains(cards, "| Data |") {
		t.Error("card mode must not render the table header")
	}
}

func TestExpensesMarkdown_PendingAndUnpaid(t *testing.T) {
	spese := []successione.Expense{{Description: "IMU", Amount: successione.M(300)}}
	got := ExpensesMarkdown(spese, false)
	if !strings.Contains(got, "—") {
		t.Errorf("pending expense should render a dash for the date:\n%s", got)
	}
	if !strings.Contains(got, "Nessuno") {
		t.Errorf("expense without payments should render Nessuno:\n%s", got)
	}
}

func TestTransfersMarkdown(t *testing.T) {
	trasf := testLedger(t).Transfers()

	table := TransfersMarkdown(trasf, false)
	for _, want := range []string{"Trasferimenti", "Bob", "Alice", "€20,00", "acconto"} {
		if !strings.Contains(table, want) {
			t.Errorf("table missing %q in:\n%s", want, table)
		}
	}

	cards := TransfersMarkdown(trasf, true)
	for _, want := range []string{"Da: Bob", "A: Alice"} {
		if !strings.Contains(cards, want) {
			t.Errorf("cards missing %q in:\n%s", want, cards)
		}
	}

	empty := TransfersMarkdown(nil, false)
	if !strings.Contains(empty, "Nessun trasferimento") {
		t.Errorf("empty listing should say so:\n%s", empty)
	}
}
