package successione

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// this file contains functions to pull expenses out of foreign JSON exports
// (online banking dumps, spreadsheets saved as JSON, ...) whose layout we do
// not control. A jsonpath expression selects the expense array, and each
// field is coerced leniently: a missing field is a zero value, an amount that
// fails to parse counts as zero.

// ImportExpenses extracts expenses from a foreign JSON document. pathExpr is
// a jsonpath expression selecting a list of expense-like objects, e.g.
// "$.spese[*]" or "$.movimenti[?(@.tipo=='spesa')]".
func ImportExpenses(r io.Reader, pathExpr string) ([]Expense, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("cannot read import data: %w", err)
	}
	var jobj any
	if err := json.Unmarshal(raw, &jobj); err != nil {
		return nil, fmt.Errorf("cannot parse import data: %w", err)
	}

	jval, err := jsonpath.Get(pathExpr, jobj)
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", pathExpr, err)
	}
	// because jsonpath is never clear about whether it returns a list of
	// answers or a single answer, accept both.
	jlist, ok := jval.([]any)
	if !ok {
		jlist = []any{jval}
	}

	var expenses []Expense
	for i, item := range jlist {
		jmap, ok := item.(map[string]any)
		if !ok {
			slog.Warn("skipping non-object entry in import", "index", i)
			continue
		}
		e := Expense{
			Date:        lenientDate(jstr(jmap["data"]), "import", jstr(jmap["descrizione"])),
			Category:    jstr(jmap["categoria"]),
			Creditor:    jstr(jmap["creditore"]),
			Description: jstr(jmap["descrizione"]),
			Amount:      jmoney(jmap["importo"]),
		}
		if payments, ok := jmap["pagamenti"].(map[string]any); ok {
			e.Payments = make(map[string]Money, len(payments))
			for heir, amount := range payments {
				e.Payments[heir] = jmoney(amount)
			}
		}
		expenses = append(expenses, e)
	}
	return expenses, nil
}

// jstr coerces a JSON value to a string, empty when absent or not a string.
func jstr(v any) string {
	s, _ := v.(string)
	return s
}

// jmoney coerces a JSON value to a Money: numbers directly, numeric strings
// parsed, anything else zero.
func jmoney(v any) Money {
	switch n := v.(type) {
	case float64:
		return M(n)
	case string:
		d, err := decimal.NewFromString(n)
		if err != nil {
			return Money{}
		}
		return MoneyFromDecimal(d)
	}
	return Money{}
}
