package successione

import (
	"testing"

	"github.com/etnz/successione/date"
)

func TestNewBalance_AliceBob(t *testing.T) {
	l := aliceBobLedger(t)

	alice := NewBalance(l, "Alice")
	if !alice.Owed.Equal(M(50)) {
		t.Errorf("owed(Alice) = %s, want %s", alice.Owed, M(50))
	}
	if !alice.Paid.Equal(M(100)) {
		t.Errorf("paid(Alice) = %s, want %s", alice.Paid, M(100))
	}
	if !alice.Net.Equal(M(-50)) {
		t.Errorf("balance(Alice) = %s, want %s", alice.Net, M(-50))
	}
	if !alice.IsCreditor() || alice.IsDebtor() {
		t.Error("Alice should be a creditor")
	}

	bob := NewBalance(l, "Bob")
	if !bob.Net.Equal(M(50)) {
		t.Errorf("balance(Bob) = %s, want %s", bob.Net, M(50))
	}
	if !bob.IsDebtor() || bob.IsCreditor() {
		t.Error("Bob should be a debtor")
	}

	if NewSettlement(l).Settled() {
		t.Error("ledger should not be settled (|50| > epsilon)")
	}
}

func TestNewBalance_TransferSettles(t *testing.T) {
	// Checking against the canonical formula: after Bob transfers 50 to
	// Alice, received(Alice)=50 and sent(Bob)=50, so
	// balance(Alice) = 50 - 100 + 50 - 0 = 0 and
	// balance(Bob)   = 50 - 0 + 0 - 50 = 0.
	l := aliceBobLedger(t)
	l.AddTransfer(Transfer{
		Date:   date.MustParse("2024-02-01"),
		From:   "Bob",
		To:     "Alice",
		Amount: M(50),
	})

	for _, name := range []string{"Alice", "Bob"} {
		b := NewBalance(l, name)
		if !b.Net.IsZero() {
			t.Errorf("balance(%s) = %s, want exactly zero", name, b.Net)
		}
	}
	if !NewSettlement(l).Settled() {
		t.Error("ledger should be settled after the transfer")
	}
}

func TestNewBalance_EmptyLedgerIsSettled(t *testing.T) {
	l := NewLedger()
	if err := l.AddHeir("Alice", 60); err != nil {
		t.Fatal(err)
	}
	if err := l.AddHeir("Bob", 40); err != nil {
		t.Fatal(err)
	}

	for _, b := range Balances(l) {
		if !b.Net.IsZero() {
			t.Errorf("balance(%s) = %s, want exactly zero", b.Heir, b.Net)
		}
	}
	if !NewSettlement(l).Settled() {
		t.Error("ledger without expenses nor transfers should be settled")
	}

	// Zero heirs is also a settled state, with no balances at all.
	empty := NewLedger()
	if got := Balances(empty); len(got) != 0 {
		t.Errorf("Balances() on empty ledger = %d entries, want 0", len(got))
	}
	if !NewSettlement(empty).Settled() {
		t.Error("ledger without heirs should be settled")
	}
}

func TestNewBalance_PayingDecreasesBalance(t *testing.T) {
	// Sign invariant: increasing an heir's paid amount strictly decreases
	// that heir's balance and leaves the others unchanged.
	l := aliceBobLedger(t)
	before := NewBalance(l, "Bob")
	otherBefore := NewBalance(l, "Alice")

	l.Expenses()[0].Payments["Bob"] = M(30)

	after := NewBalance(l, "Bob")
	if !after.Net.LessThan(before.Net) {
		t.Errorf("balance(Bob) went from %s to %s, want a strict decrease", before.Net, after.Net)
	}
	if diff := before.Net.Sub(after.Net); !diff.Equal(M(30)) {
		t.Errorf("balance(Bob) decreased by %s, want %s", diff, M(30))
	}
	otherAfter := NewBalance(l, "Alice")
	if !otherAfter.Net.Equal(otherBefore.Net) {
		t.Errorf("balance(Alice) changed from %s to %s", otherBefore.Net, otherAfter.Net)
	}
}

func TestNewBalance_UnknownHeirContributesZero(t *testing.T) {
	l := aliceBobLedger(t)
	// A payment map entry for someone not in the heir set must not break
	// anything: it just never surfaces in any balance.
	l.Expenses()[0].Payments["Caio"] = M(10)

	b := NewBalance(l, "Caio")
	if !b.Quota.Equal(0) {
		t.Errorf("quota of unknown heir = %s, want 0", b.Quota)
	}
	if !b.Paid.Equal(M(10)) {
		t.Errorf("paid of unknown heir = %s, want %s", b.Paid, M(10))
	}
	if len(l.Check()) == 0 {
		t.Error("Check() should warn about the unknown heir")
	}
}

func TestNewSettlement_CreditorOrdering(t *testing.T) {
	l := NewLedger()
	for _, h := range []struct {
		name  string
		quota Percent
	}{{"Alice", 25}, {"Bob", 25}, {"Carla", 25}, {"Dario", 25}} {
		if err := l.AddHeir(h.name, h.quota); err != nil {
			t.Fatal(err)
		}
	}
	l.AddExpense(Expense{
		Description: "Spese condominiali",
		Amount:      M(400),
		Payments:    map[string]Money{"Carla": M(150), "Alice": M(250)},
	})

	s := NewSettlement(l)
	if len(s.Creditors) != 2 || len(s.Debtors) != 2 {
		t.Fatalf("got %d creditors, %d debtors, want 2 and 2", len(s.Creditors), len(s.Debtors))
	}
	// Largest creditor first: Alice is owed 150, Carla 50.
	if s.Creditors[0].Heir != "Alice" || !s.Creditors[0].Amount.Equal(M(150)) {
		t.Errorf("first creditor = %+v, want Alice with %s", s.Creditors[0], M(150))
	}
	if s.Creditors[1].Heir != "Carla" || !s.Creditors[1].Amount.Equal(M(50)) {
		t.Errorf("second creditor = %+v, want Carla with %s", s.Creditors[1], M(50))
	}
}

func TestSettlement_Suggest(t *testing.T) {
	l := NewLedger()
	for _, h := range []struct {
		name  string
		quota Percent
	}{{"Alice", 25}, {"Bob", 25}, {"Carla", 25}, {"Dario", 25}} {
		if err := l.AddHeir(h.name, h.quota); err != nil {
			t.Fatal(err)
		}
	}
	l.AddExpense(Expense{
		Description: "Spese condominiali",
		Amount:      M(400),
		Payments:    map[string]Money{"Carla": M(150), "Alice": M(250)},
	})
	s := NewSettlement(l)

	testCases := []struct {
		name      string
		debtor    string
		available Money
		want      []Payment
	}{
		{
			name:      "covers the largest creditor and part of the next",
			debtor:    "Bob",
			available: M(180),
			want: []Payment{
				{From: "Bob", To: "Alice", Amount: M(150)},
				{From: "Bob", To: "Carla", Amount: M(30)},
			},
		},
		{
			name:      "small amount goes entirely to the largest creditor",
			debtor:    "Dario",
			available: M(40),
			want:      []Payment{{From: "Dario", To: "Alice", Amount: M(40)}},
		},
		{
			name:      "non-positive amount yields nothing",
			debtor:    "Bob",
			available: M(0),
			want:      nil,
		},
		{
			name:      "unknown debtor yields nothing",
			debtor:    "Alice", // a creditor, not a debtor
			available: M(100),
			want:      nil,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := s.Suggest(tc.debtor, tc.available)
			if len(got) != len(tc.want) {
				t.Fatalf("Suggest() = %+v, want %+v", got, tc.want)
			}
			for i := range got {
				if got[i].From != tc.want[i].From || got[i].To != tc.want[i].To || !got[i].Amount.Equal(tc.want[i].Amount) {
					t.Errorf("Suggest()[%d] = %+v, want %+v", i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestBalances_OwedSumsToTotalWhenSharesSumTo100(t *testing.T) {
	l := NewLedger()
	for _, h := range []struct {
		name  string
		quota Percent
	}{{"Alice", 50}, {"Bob", 30}, {"Carla", 20}} {
		if err := l.AddHeir(h.name, h.quota); err != nil {
			t.Fatal(err)
		}
	}
	l.AddExpense(
		Expense{Description: "Imposta", Amount: M(123.45)},
		Expense{Description: "Perizia", Amount: M(876.55)},
	)

	var owed Money
	for _, b := range Balances(l) {
		owed = owed.Add(b.Owed)
	}
	if !owed.Equal(l.TotalExpenses()) {
		t.Errorf("sum of owed = %s, want total expenses %s", owed, l.TotalExpenses())
	}
}
