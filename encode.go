package successione

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/etnz/successione/date"
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// This file contains the codec for the ledger data file: a single JSON
// document with Italian keys ("eredi", "quote_percentuali", "spese",
// "trasferimenti"). Decoding is deliberately tolerant: absent optional
// fields become zero values, an unparseable expense
// date degrades to "pending" with a log line, and referential problems are
// left to Ledger.Check.

// jexpense is the object read from the file using the json parser.
type jexpense struct {
	Data        string           `json:"data,omitempty"`
	Categoria   string           `json:"categoria,omitempty"`
	Creditore   string           `json:"creditore"`
	Descrizione string           `json:"descrizione"`
	Importo     Money            `json:"importo"`
	Pagamenti   map[string]Money `json:"pagamenti,omitempty"`
}

type jtransfer struct {
	Data    string `json:"data,omitempty"`
	Da      string `json:"da"`
	A       string `json:"a"`
	Importo Money  `json:"importo"`
	Note    string `json:"note,omitempty"`
}

type jledger struct {
	Eredi            []string           `json:"eredi"`
	QuotePercentuali map[string]Percent `json:"quote_percentuali"`
	Spese            []jexpense         `json:"spese"`
	Trasferimenti    []jtransfer        `json:"trasferimenti"`
}

// DecodeLedger decodes a ledger data file from r.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	var jl jledger
	dec := json.NewDecoder(r)
	if err := dec.Decode(&jl); err != nil {
		return nil, fmt.Errorf("could not parse ledger data: %w", err)
	}

	l := NewLedger()
	for _, name := range jl.Eredi {
		if err := l.AddHeir(name, jl.QuotePercentuali[name]); err != nil {
			return nil, fmt.Errorf("invalid heir list: %w", err)
		}
	}
	for _, je := range jl.Spese {
		l.AddExpense(Expense{
			Date:        lenientDate(je.Data, "expense", je.Descrizione),
			Category:    je.Categoria,
			Creditor:    je.Creditore,
			Description: je.Descrizione,
			Amount:      je.Importo,
			Payments:    je.Pagamenti,
		})
	}
	for _, jt := range jl.Trasferimenti {
		l.AddTransfer(Transfer{
			Date:   lenientDate(jt.Data, "transfer", jt.Da+"->"+jt.A),
			From:   jt.Da,
			To:     jt.A,
			Amount: jt.Importo,
			Note:   jt.Note,
		})
	}
	return l, nil
}

// lenientDate parses a date, degrading an unparseable value to the zero
// (pending) date instead of failing the whole load.
func lenientDate(s, kind, label string) date.Date {
	d, err := date.Parse(s)
	if err != nil {
		slog.Warn("ignoring malformed date", "kind", kind, "record", label, "date", s)
		return date.Date{}
	}
	return d
}

// EncodeLedger writes the ledger to w in its canonical form: indented JSON,
// amounts rounded to cents, heirs in declaration order, map keys sorted.
func EncodeLedger(w io.Writer, l *Ledger) error {
	jl := jledger{
		QuotePercentuali: make(map[string]Percent, len(l.Heirs())),
		Spese:            make([]jexpense, 0, len(l.Expenses())),
		Trasferimenti:    make([]jtransfer, 0, len(l.Transfers())),
	}
	for _, h := range l.Heirs() {
		jl.Eredi = append(jl.Eredi, h.Name)
		jl.QuotePercentuali[h.Name] = h.Quota
	}
	for _, e := range l.Expenses() {
		jl.Spese = append(jl.Spese, jexpense{
			Data:        e.Date.String(),
			Categoria:   e.Category,
			Creditore:   e.Creditor,
			Descrizione: e.Description,
			Importo:     e.Amount,
			Pagamenti:   e.Payments,
		})
	}
	for _, t := range l.Transfers() {
		jl.Trasferimenti = append(jl.Trasferimenti, jtransfer{
			Data:    t.Date.String(),
			Da:      t.From,
			A:       t.To,
			Importo: t.Amount,
			Note:    t.Note,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(jl); err != nil {
		return fmt.Errorf("could not encode ledger: %w", err)
	}
	return nil
}
