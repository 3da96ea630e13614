package successione

import "sort"

// Epsilon is the fixed threshold under which a balance is considered settled.
// It absorbs floating point noise carried in from imported data and is not
// configurable.
const Epsilon = 0.01

// Balance is the net settlement position of one heir.
//
// Sign convention: a positive Net means the heir is a net debtor (owes
// money into the pool), a negative Net
// means the pool owes the heir. Flipping this silently changes the
// user-facing meaning of every report.
type Balance struct {
	Heir     string
	Quota    Percent
	Owed     Money // share of the total expenses
	Paid     Money // paid toward expenses
	Received Money // transfers received from other heirs
	Sent     Money // transfers sent to other heirs
	Net      Money // Owed - Paid + Received - Sent
}

// IsDebtor reports whether the heir owes more than Epsilon into the pool.
func (b Balance) IsDebtor() bool { return b.Net.GreaterThan(M(Epsilon)) }

// IsCreditor reports whether the pool owes the heir more than Epsilon.
func (b Balance) IsCreditor() bool { return b.Net.LessThan(M(-Epsilon)) }

// NewBalance computes the settlement balance of one heir. It is a pure
// function of the ledger content: heirs unknown to an expense's payment map
// contribute zero, and an empty ledger yields an exactly zero balance.
func NewBalance(l *Ledger, heir string) Balance {
	b := Balance{Heir: heir, Quota: l.Quota(heir)}

	b.Owed = l.TotalExpenses().Share(b.Quota)
	for _, e := range l.Expenses() {
		b.Paid = b.Paid.Add(e.Payments[heir])
	}
	for _, t := range l.Transfers() {
		if t.To == heir {
			b.Received = b.Received.Add(t.Amount)
		}
		if t.From == heir {
			b.Sent = b.Sent.Add(t.Amount)
		}
	}
	b.Net = b.Owed.Sub(b.Paid).Add(b.Received).Sub(b.Sent)
	return b
}

// Balances computes the balance of every heir, in declaration order.
func Balances(l *Ledger) []Balance {
	balances := make([]Balance, 0, len(l.Heirs()))
	for _, h := range l.Heirs() {
		balances = append(balances, NewBalance(l, h.Name))
	}
	return balances
}

// Stake is one heir's side of the settlement, always a positive magnitude.
type Stake struct {
	Heir   string
	Amount Money
}

// Payment is a suggested settlement payment between two heirs.
type Payment struct {
	From   string
	To     string
	Amount Money
}

// Settlement is the debtor/creditor split of a ledger.
type Settlement struct {
	// Debtors owe their Amount into the pool, in heir declaration order.
	Debtors []Stake
	// Creditors are owed their Amount by the pool, ordered by descending
	// amount: the largest creditor is paid back first.
	Creditors []Stake
}

// NewSettlement splits the heirs into debtors and creditors. Heirs within
// Epsilon of zero appear on neither side.
func NewSettlement(l *Ledger) *Settlement {
	s := &Settlement{}
	for _, b := range Balances(l) {
		switch {
		case b.IsDebtor():
			s.Debtors = append(s.Debtors, Stake{Heir: b.Heir, Amount: b.Net})
		case b.IsCreditor():
			s.Creditors = append(s.Creditors, Stake{Heir: b.Heir, Amount: b.Net.Neg()})
		}
	}
	sort.SliceStable(s.Creditors, func(i, j int) bool {
		return s.Creditors[j].Amount.LessThan(s.Creditors[i].Amount)
	})
	return s
}

// Settled reports whether no heir exceeds Epsilon in either direction.
func (s *Settlement) Settled() bool {
	return len(s.Debtors) == 0 && len(s.Creditors) == 0
}

// Suggest builds a payment plan for a debtor with a given available amount:
// pay the largest creditors first, each up to what they are owed, until the
// available amount runs out. An unknown debtor or a non-positive amount
// yields no suggestions.
func (s *Settlement) Suggest(debtor string, available Money) []Payment {
	if !available.IsPositive() {
		return nil
	}
	found := false
	for _, d := range s.Debtors {
		if d.Heir == debtor {
			found = true
			break
		}
	}
	if !found {
		return nil
	}

	var plan []Payment
	for _, c := range s.Creditors {
		if !available.IsPositive() {
			break
		}
		due := available.Min(c.Amount)
		if !due.IsPositive() {
			continue
		}
		plan = append(plan, Payment{From: debtor, To: c.Heir, Amount: due})
		available = available.Sub(due)
	}
	return plan
}
