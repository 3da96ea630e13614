package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/successione"
	md "github.com/nao1215/markdown"
)

// ExpensesMarkdown renders the expense listing: a table in the normal
// layout, one stacked card per expense in card mode.
func ExpensesMarkdown(expenses []successione.Expense, cardMode bool) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H2("Elenco Spese")
	if len(expenses) == 0 {
		doc.PlainText("Nessuna spesa corrisponde ai filtri.")
		return doc.String()
	}

	if cardMode {
		for _, e := range expenses {
			doc.H3(fmt.Sprintf("%s · %s", dash(e.Date.String()), e.Amount))
			if e.Category != "" {
				doc.PlainText("Categoria: " + e.Category)
			}
			if e.Description != "" {
				doc.PlainText(e.Description)
			}
			doc.PlainText("Creditore: " + dash(e.Creditor))
			doc.PlainText("Pagato da: " + paidBy(e))
		}
		return doc.String()
	}

	rows := make([][]string, 0, len(expenses))
	for _, e := range expenses {
		rows = append(rows, []string{
			dash(e.Date.String()),
			e.Category,
			e.Creditor,
			e.Description,
			e.Amount.String(),
			paidBy(e),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Data", "Categoria", "Creditore", "Descrizione", "Importo", "Pagato da"},
		Rows:   rows,
	})
	return doc.String()
}
