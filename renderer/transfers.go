package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/successione"
	md "github.com/nao1215/markdown"
)

// TransfersMarkdown renders the transfer listing, table or cards.
func TransfersMarkdown(transfers []successione.Transfer, cardMode bool) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H2("Trasferimenti")
	if len(transfers) == 0 {
		doc.PlainText("Nessun trasferimento registrato.")
		return doc.String()
	}

	if cardMode {
		for _, t := range transfers {
			doc.H3(fmt.Sprintf("%s · %s", dash(t.Date.String()), t.Amount))
			doc.PlainText("Da: " + t.From)
			doc.PlainText("A: " + t.To)
			if t.Note != "" {
				doc.PlainText(t.Note)
			}
		}
		return doc.String()
	}

	rows := make([][]string, 0, len(transfers))
	for _, t := range transfers {
		rows = append(rows, []string{
			dash(t.Date.String()),
			t.From,
			t.To,
			t.Amount.String(),
			t.Note,
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Data", "Da", "A", "Importo", "Note"},
		Rows:   rows,
	})
	return doc.String()
}
