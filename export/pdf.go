package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/etnz/successione"
	"github.com/go-pdf/fpdf"
)

// Document palette: header violet, debtor red, creditor green.
var (
	headerColor   = [3]int{102, 126, 234}
	debtorColor   = [3]int{235, 51, 73}
	creditorColor = [3]int{17, 153, 142}
)

const marginX = 14.0

// PDF renders the multi-page settlement document: summary table and balance
// chart on the first page, the full expense listing on the next.
func PDF(l *successione.Ledger, opts Options) ([]byte, error) {
	opts = opts.withDefaults()
	balances := successione.Balances(l)

	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	// Title block.
	pdf.SetFont("Helvetica", "B", 20)
	pdf.SetTextColor(headerColor[0], headerColor[1], headerColor[2])
	pdf.Text(marginX, 20, tr(opts.Title))
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(100, 100, 100)
	pdf.Text(marginX, 27, tr(opts.Subtitle))
	pdf.Text(marginX, 33, tr("Generato il: "+time.Now().Format("02/01/2006")))

	// Per-heir summary table.
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetTextColor(0, 0, 0)
	pdf.Text(marginX, 42, "Riepilogo per Erede")
	pdf.SetY(46)
	summaryTable(pdf, tr, balances)

	// Balance chart.
	y := pdf.GetY() + 10
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetTextColor(0, 0, 0)
	pdf.Text(marginX, y, "Saldo per Erede")
	balanceChart(pdf, tr, balances, y+7)

	// Expense listing on its own page.
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetTextColor(0, 0, 0)
	pdf.Text(marginX, 20, "Elenco Spese")
	pdf.SetY(24)
	expenseTable(pdf, tr, l.Expenses())

	if pdf.Err() {
		return nil, fmt.Errorf("could not build PDF: %w", pdf.Error())
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("could not write PDF: %w", err)
	}
	return buf.Bytes(), nil
}

func summaryTable(pdf *fpdf.Fpdf, tr func(string) string, balances []successione.Balance) {
	headers := []string{"Erede", "Dovuto", "Pagato", "Trasf. Ric.", "Trasf. Inv.", "Saldo"}
	widths := []float64{42, 28, 28, 28, 28, 28}

	pdf.SetX(marginX)
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(headerColor[0], headerColor[1], headerColor[2])
	pdf.SetTextColor(255, 255, 255)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, tr(h), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(0, 0, 0)
	for _, b := range balances {
		pdf.SetX(marginX)
		cells := []string{
			b.Heir,
			b.Owed.String(),
			b.Paid.String(),
			b.Received.String(),
			b.Sent.String(),
			b.Net.String(),
		}
		for i, c := range cells {
			align := "R"
			if i == 0 {
				align = "L"
			}
			pdf.CellFormat(widths[i], 6, tr(c), "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}
}

// balanceChart draws the sign-colored bar chart: red bars for debtors above
// the zero line, green bars for creditors below it.
func balanceChart(pdf *fpdf.Fpdf, tr func(string) string, balances []successione.Balance, top float64) {
	if len(balances) == 0 {
		return
	}

	const (
		chartLeft   = 20.0
		chartWidth  = 170.0
		chartHeight = 70.0
	)
	chartTop := top + 10
	chartBottom := chartTop + chartHeight

	maxVal, minVal, maxAbs := 0.0, 0.0, 0.0
	for _, b := range balances {
		v := b.Net.Float64()
		if v > maxVal {
			maxVal = v
		}
		if v < minVal {
			minVal = v
		}
		if a := b.Net.Abs().Float64(); a > maxAbs {
			maxAbs = a
		}
	}
	if maxAbs <= successione.Epsilon {
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(creditorColor[0], creditorColor[1], creditorColor[2])
		pdf.Text(chartLeft, chartTop, tr("Tutti i conti sono in pareggio."))
		pdf.SetY(chartTop)
		return
	}

	// Zero axis position, proportional to the positive share of the range.
	zeroY := chartTop + chartHeight*(maxVal/(maxVal-minVal))
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.8)
	pdf.Line(chartLeft, zeroY, chartLeft+chartWidth, zeroY)
	pdf.SetDrawColor(180, 180, 180)
	pdf.SetLineWidth(0.5)
	pdf.Line(chartLeft, chartTop, chartLeft, chartBottom)

	barWidth := chartWidth/float64(len(balances)) - 8
	for i, b := range balances {
		v := b.Net.Float64()
		barX := chartLeft + float64(i)*(barWidth+8)
		barHeight := b.Net.Abs().Float64() / maxAbs * (chartHeight / 2)
		barY := zeroY
		if v >= 0 {
			barY = zeroY - barHeight
			pdf.SetFillColor(debtorColor[0], debtorColor[1], debtorColor[2])
		} else {
			pdf.SetFillColor(creditorColor[0], creditorColor[1], creditorColor[2])
		}
		pdf.Rect(barX, barY, barWidth, barHeight, "F")

		labelY := barY + barHeight + 5
		if v >= 0 {
			labelY = barY - 3
		}
		pdf.SetFont("Helvetica", "", 8)
		pdf.SetTextColor(0, 0, 0)
		centerText(pdf, tr(b.Net.String()), barX+barWidth/2, labelY)
		pdf.SetFont("Helvetica", "", 9)
		centerText(pdf, tr(b.Heir), barX+barWidth/2, chartBottom+10)
	}

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(0, 0, 0)
	pdf.Text(chartLeft, chartBottom+16, tr("Rosso: deve versare la cifra indicata"))
	pdf.Text(chartLeft+90, chartBottom+16, tr("Verde: deve ricevere la cifra indicata"))
	pdf.SetY(chartBottom + 16)
}

func expenseTable(pdf *fpdf.Fpdf, tr func(string) string, expenses []successione.Expense) {
	headers := []string{"Data", "Categoria", "Creditore", "Descrizione", "Importo", "Pagato da"}
	widths := []float64{22, 26, 30, 48, 24, 32}

	pdf.SetX(marginX)
	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetFillColor(headerColor[0], headerColor[1], headerColor[2])
	pdf.SetTextColor(255, 255, 255)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 6, tr(h), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(0, 0, 0)
	for _, e := range expenses {
		// Page break with some bottom margin.
		if pdf.GetY() > 270 {
			pdf.AddPage()
			pdf.SetY(20)
		}
		date := e.Date.String()
		if date == "" {
			date = "-"
		}
		payers := "Nessuno"
		if names := e.Payers(); len(names) > 0 {
			payers = ""
			for i, n := range names {
				if i > 0 {
					payers += ", "
				}
				payers += n
			}
		}
		pdf.SetX(marginX)
		cells := []string{date, e.Category, e.Creditor, e.Description, e.Amount.String(), payers}
		for i, c := range cells {
			align := "L"
			if i == 4 {
				align = "R"
			}
			pdf.CellFormat(widths[i], 6, tr(c), "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}
}

func centerText(pdf *fpdf.Fpdf, s string, x, y float64) {
	pdf.Text(x-pdf.GetStringWidth(s)/2, y, s)
}
