// Package csvexport renders a user's transaction history as CSV. The quoting
// rules are deliberately stricter than RFC 4180: fields containing a comma,
// quote or apostrophe are quoted with internal quotes doubled, and embedded
// line breaks are flattened to spaces so every record stays on one line.
package csvexport

import (
	"bytes"
	"strings"

	"github.com/budgetwise/backend/internal/models"
)

var header = []string{
	"Date", "Type", "Category", "Amount (INR)",
	"Original Amount", "Original Currency", "Description",
}

// Render writes one row per transaction in the order given.
func Render(txs []models.Transaction) []byte {
	var buf bytes.Buffer
	buf.WriteString(strings.Join(header, ","))
	buf.WriteString("\n")

	for _, t := range txs {
		row := []string{
			t.Date.Format("2006-01-02"),
			t.Type,
			escapeField(t.Category),
			t.Amount.String(),
			t.OriginalAmount.String(),
			escapeField(t.OriginalCurrency),
			escapeField(t.Description),
		}
		buf.WriteString(strings.Join(row, ","))
		buf.WriteString("\n")
	}
	return buf.Bytes()
}

var lineBreaks = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ")

func escapeField(s string) string {
	s = lineBreaks.Replace(s)
	if strings.ContainsAny(s, ",\"'") {
		s = strings.ReplaceAll(s, `"`, `""`)
		return `"` + s + `"`
	}
	return s
}
