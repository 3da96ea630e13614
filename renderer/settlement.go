package renderer

import (
	"bytes"

	"github.com/etnz/successione"
	md "github.com/nao1215/markdown"
)

// SettlementMarkdown renders the debtor/creditor split, or the settled
// message when every balance is within the epsilon.
func SettlementMarkdown(s *successione.Settlement) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H2("Chi deve a chi")
	if s.Settled() {
		doc.PlainText("Tutti i conti sono in pareggio.")
		return doc.String()
	}

	debtors := make([][]string, 0, len(s.Debtors))
	for _, d := range s.Debtors {
		debtors = append(debtors, []string{d.Heir, d.Amount.String()})
	}
	doc.H3("Debitori")
	doc.Table(md.TableSet{Header: []string{"Erede", "Deve versare"}, Rows: debtors})

	creditors := make([][]string, 0, len(s.Creditors))
	for _, c := range s.Creditors {
		creditors = append(creditors, []string{c.Heir, c.Amount.String()})
	}
	doc.H3("Creditori")
	doc.Table(md.TableSet{Header: []string{"Erede", "Deve ricevere"}, Rows: creditors})

	return doc.String()
}

// PaymentsMarkdown renders a suggested payment plan.
func PaymentsMarkdown(plan []successione.Payment) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H2("Suggerimento pagamenti")
	if len(plan) == 0 {
		doc.PlainText("Nessun suggerimento disponibile.")
		return doc.String()
	}
	rows := make([][]string, 0, len(plan))
	for _, p := range plan {
		rows = append(rows, []string{p.From, p.To, p.Amount.String()})
	}
	doc.Table(md.TableSet{Header: []string{"Da", "A", "Importo"}, Rows: rows})
	return doc.String()
}
