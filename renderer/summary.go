package renderer

import (
	"bytes"

	"github.com/etnz/successione"
	md "github.com/nao1215/markdown"
)

// SummaryMarkdown renders the per-heir settlement summary.
func SummaryMarkdown(balances []successione.Balance) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Riepilogo per Erede")
	if len(balances) == 0 {
		doc.PlainText("Nessun erede nel registro.")
		return doc.String()
	}

	rows := make([][]string, 0, len(balances))
	for _, b := range balances {
		rows = append(rows, []string{
			b.Heir,
			b.Quota.String(),
			b.Owed.String(),
			b.Paid.String(),
			b.Received.String(),
			b.Sent.String(),
			b.Net.String(),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Erede", "Quota", "Dovuto", "Pagato", "Trasf. Ric.", "Trasf. Inv.", "Saldo"},
		Rows:   rows,
	})
	doc.PlainText("Saldo positivo: l'erede deve versare. Saldo negativo: l'erede deve ricevere.")

	return doc.String()
}
