package export

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/etnz/successione"
	"github.com/etnz/successione/renderer"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// htmlShell wraps the converted report body in a minimal printable page.
const htmlShell = `<!DOCTYPE html>
<html lang="it">
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
body { font-family: sans-serif; margin: 2em; color: #222; }
h1 { color: #667eea; }
table { border-collapse: collapse; margin: 1em 0; }
th { background: #667eea; color: white; }
th, td { border: 1px solid #ccc; padding: 4px 10px; }
.subtitle { color: #666; }
@media print { body { margin: 0; } }
</style>
</head>
<body>
%s
</body>
</html>
`

// HTML renders the settlement document as a standalone printable HTML page:
// summary table, settlement split, expense and transfer listings.
func HTML(l *successione.Ledger, opts Options) ([]byte, error) {
	opts = opts.withDefaults()

	var report strings.Builder
	fmt.Fprintf(&report, "# %s\n\n%s\n\nGenerato il: %s\n\n",
		opts.Title, opts.Subtitle, time.Now().Format("02/01/2006"))
	report.WriteString(renderer.SummaryMarkdown(successione.Balances(l)))
	report.WriteString("\n")
	report.WriteString(renderer.SettlementMarkdown(successione.NewSettlement(l)))
	report.WriteString("\n")
	report.WriteString(renderer.ExpensesMarkdown(l.Expenses(), false))
	report.WriteString("\n")
	report.WriteString(renderer.TransfersMarkdown(l.Transfers(), false))

	gm := goldmark.New(goldmark.WithExtensions(extension.Table))
	var body bytes.Buffer
	if err := gm.Convert([]byte(report.String()), &body); err != nil {
		return nil, fmt.Errorf("could not convert report to HTML: %w", err)
	}
	return fmt.Appendf(nil, htmlShell, opts.Title, body.String()), nil
}
