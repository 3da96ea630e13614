package successione

import (
	"strings"
	"testing"

	"github.com/etnz/successione/date"
)

const sampleLedger = `{
  "eredi": ["Alice", "Bob"],
  "quote_percentuali": {"Alice": 50, "Bob": 50},
  "spese": [
    {"data": "2024-01-05", "categoria": "Notaio", "creditore": "Studio Rossi", "descrizione": "Atto di successione", "importo": 1200.50, "pagamenti": {"Alice": 1200.50}},
    {"categoria": "Tasse", "creditore": "Comune", "descrizione": "IMU arretrata", "importo": 300}
  ],
  "trasferimenti": [
    {"data": "2024-02-01", "da": "Bob", "a": "Alice", "importo": 600.25, "note": "primo acconto"}
  ]
}`

func TestDecodeLedger(t *testing.T) {
	l, err := DecodeLedger(strings.NewReader(sampleLedger))
	if err != nil {
		t.Fatalf("DecodeLedger() error = %v", err)
	}

	heirs := l.Heirs()
	if len(heirs) != 2 || heirs[0].Name != "Alice" || heirs[1].Name != "Bob" {
		t.Fatalf("heirs = %+v, want Alice and Bob in order", heirs)
	}
	if !l.Quota("Alice").Equal(50) {
		t.Errorf("quota(Alice) = %s, want 50%%", l.Quota("Alice"))
	}

	spese := l.Expenses()
	if len(spese) != 2 {
		t.Fatalf("got %d expenses, want 2", len(spese))
	}
	if got := spese[0].Date; got != date.MustParse("2024-01-05") {
		t.Errorf("expense date = %v, want 2024-01-05", got)
	}
	if !spese[0].Amount.Equal(M(1200.50)) {
		t.Errorf("expense amount = %s, want %s", spese[0].Amount, M(1200.50))
	}
	if !spese[0].Payments["Alice"].Equal(M(1200.50)) {
		t.Errorf("payment(Alice) = %s, want %s", spese[0].Payments["Alice"], M(1200.50))
	}
	// Optional fields absent: zero values, never an error.
	if !spese[1].Pending() {
		t.Error("dateless expense should be pending")
	}
	if got := spese[1].Payments["Alice"]; !got.IsZero() {
		t.Errorf("absent payment = %s, want zero", got)
	}

	trasf := l.Transfers()
	if len(trasf) != 1 || trasf[0].From != "Bob" || trasf[0].To != "Alice" {
		t.Fatalf("transfers = %+v, want one from Bob to Alice", trasf)
	}
	if trasf[0].Note != "primo acconto" {
		t.Errorf("note = %q", trasf[0].Note)
	}
}

func TestDecodeLedger_MalformedDateDegradesToPending(t *testing.T) {
	in := `{"eredi":["Alice"],"quote_percentuali":{"Alice":100},
	  "spese":[{"data":"gennaio","descrizione":"Perizia","importo":100}]}`
	l, err := DecodeLedger(strings.NewReader(in))
	if err != nil {
		t.Fatalf("DecodeLedger() error = %v, want lenient decode", err)
	}
	if !l.Expenses()[0].Pending() {
		t.Error("malformed date should degrade to a pending expense")
	}
}

func TestDecodeLedger_AmountAsString(t *testing.T) {
	in := `{"eredi":["Alice"],"quote_percentuali":{"Alice":100},
	  "spese":[{"descrizione":"Perizia","importo":"123.45"}]}`
	l, err := DecodeLedger(strings.NewReader(in))
	if err != nil {
		t.Fatalf("DecodeLedger() error = %v", err)
	}
	if got := l.Expenses()[0].Amount; !got.Equal(M(123.45)) {
		t.Errorf("amount = %s, want %s", got, M(123.45))
	}
}

func TestEncodeLedger_RoundTrip(t *testing.T) {
	l, err := DecodeLedger(strings.NewReader(sampleLedger))
	if err != nil {
		t.Fatalf("DecodeLedger() error = %v", err)
	}

	var buf strings.Builder
	if err := EncodeLedger(&buf, l); err != nil {
		t.Fatalf("EncodeLedger() error = %v", err)
	}

	back, err := DecodeLedger(strings.NewReader(buf.String()))
	if err != nil {
		t.Fatalf("DecodeLedger() of canonical form error = %v", err)
	}
	if len(back.Heirs()) != 2 || len(back.Expenses()) != 2 || len(back.Transfers()) != 1 {
		t.Fatalf("round trip lost records: %s", back)
	}
	if !back.Expenses()[0].Amount.Equal(M(1200.50)) {
		t.Errorf("round trip amount = %s, want %s", back.Expenses()[0].Amount, M(1200.50))
	}
	if !back.TotalExpenses().Equal(l.TotalExpenses()) {
		t.Errorf("round trip total = %s, want %s", back.TotalExpenses(), l.TotalExpenses())
	}
}
