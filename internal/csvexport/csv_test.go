package csvexport

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/budgetwise/backend/internal/models"
)

func sampleTx(category, description string) models.Transaction {
	return models.Transaction{
		Type:             models.TypeExpense,
		Category:         category,
		Amount:           decimal.NewFromInt(300),
		OriginalAmount:   decimal.NewFromInt(300),
		OriginalCurrency: "INR",
		ConversionRate:   decimal.NewFromInt(1),
		Date:             time.Date(2024, time.June, 5, 0, 0, 0, 0, time.UTC),
		Description:      description,
	}
}

func TestRender_HeaderOnlyForEmptyHistory(t *testing.T) {
	out := string(Render(nil))
	assert.Equal(t, "Date,Type,Category,Amount (INR),Original Amount,Original Currency,Description\n", out)
}

func TestRender_PlainRow(t *testing.T) {
	out := string(Render([]models.Transaction{sampleTx("Food", "groceries")}))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "2024-06-05,EXPENSE,Food,300,300,INR,groceries", lines[1])
}

func TestEscapeField_QuotesOnCommaQuoteApostrophe(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"a,b", `"a,b"`},
		{`say "hi"`, `"say ""hi"""`},
		{"it's fine", `"it's fine"`},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, escapeField(tc.in), "input %q", tc.in)
	}
}

func TestEscapeField_StripsLineBreaks(t *testing.T) {
	assert.Equal(t, "two words", escapeField("two\nwords"))
	assert.Equal(t, "two words", escapeField("two\r\nwords"))
}

func TestRender_DescriptionWithCommaStaysOneLine(t *testing.T) {
	out := string(Render([]models.Transaction{sampleTx("Food", "milk, eggs\nand bread")}))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], `"milk, eggs and bread"`)
}
