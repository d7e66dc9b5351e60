package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/budgetwise/backend/internal/models"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func tx(typ, category, amount string, on time.Time) models.Transaction {
	return models.Transaction{Type: typ, Category: category, Amount: dec(amount), Date: on}
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil, AllTime)
	assert.True(t, s.Income.IsZero())
	assert.True(t, s.Expense.IsZero())
	assert.True(t, s.Balance.IsZero())
	assert.Empty(t, s.ExpenseByCategory)
}

func TestSummarize_BalanceIdentity(t *testing.T) {
	txs := []models.Transaction{
		tx(models.TypeIncome, "Salary", "1000.50", date(2024, time.June, 2)),
		tx(models.TypeExpense, "Food", "300.25", date(2024, time.June, 5)),
		tx(models.TypeExpense, "Transport", "99.99", date(2024, time.June, 9)),
		tx(models.TypeIncome, "Bonus", "250.00", date(2024, time.July, 1)),
	}
	s := Summarize(txs, AllTime)
	assert.True(t, s.Balance.Equal(s.Income.Sub(s.Expense)))
	assert.True(t, s.Income.Equal(dec("1250.50")))
	assert.True(t, s.Expense.Equal(dec("400.24")))
}

func TestSummarize_CategoryTotalsMatchExpense(t *testing.T) {
	txs := []models.Transaction{
		tx(models.TypeExpense, "Food", "10.01", date(2024, time.June, 1)),
		tx(models.TypeExpense, "Food", "20.02", date(2024, time.June, 2)),
		tx(models.TypeExpense, "Rent", "500.00", date(2024, time.June, 3)),
		tx(models.TypeIncome, "Salary", "1000.00", date(2024, time.June, 4)),
	}
	s := Summarize(txs, AllTime)

	sum := decimal.Zero
	for _, v := range s.ExpenseByCategory {
		sum = sum.Add(v)
	}
	assert.True(t, sum.Equal(s.Expense), "per-category sum %s != expense %s", sum, s.Expense)
	assert.Len(t, s.ExpenseByCategory, 2)
	assert.True(t, s.ExpenseByCategory["Food"].Equal(dec("30.03")))
}

func TestSummarize_WindowBoundsInclusive(t *testing.T) {
	w, ok := MonthWindow(6, 2024)
	require.True(t, ok)

	txs := []models.Transaction{
		tx(models.TypeExpense, "Food", "1", date(2024, time.May, 31)),
		tx(models.TypeExpense, "Food", "2", date(2024, time.June, 1)),
		tx(models.TypeExpense, "Food", "4", date(2024, time.June, 30)),
		tx(models.TypeExpense, "Food", "8", date(2024, time.July, 1)),
	}
	s := Summarize(txs, w)
	assert.True(t, s.Expense.Equal(dec("6")), "got %s", s.Expense)
}

func TestMonthWindow_Invalid(t *testing.T) {
	for _, m := range []int{0, 13, -1} {
		_, ok := MonthWindow(m, 2024)
		assert.False(t, ok, "month %d", m)
	}
}

func TestMonthWindow_DecemberSpansYearEnd(t *testing.T) {
	w, ok := MonthWindow(12, 2024)
	require.True(t, ok)
	assert.Equal(t, date(2024, time.December, 1), w.Start)
	assert.Equal(t, date(2024, time.December, 31), w.End)
}

func TestSpentForBudget_CaseInsensitiveCategory(t *testing.T) {
	b := models.Budget{Category: "Food", Month: 6, Year: 2024}
	txs := []models.Transaction{
		tx(models.TypeExpense, "food", "100", date(2024, time.June, 5)),
		tx(models.TypeExpense, "FOOD", "50", date(2024, time.June, 6)),
		tx(models.TypeExpense, "Rent", "999", date(2024, time.June, 7)),
		tx(models.TypeIncome, "Food", "777", date(2024, time.June, 8)),
	}
	assert.True(t, SpentForBudget(b, txs).Equal(dec("150")))
}

func TestSpentForBudget_InvalidMonthDegradesToZero(t *testing.T) {
	b := models.Budget{Category: "Food", Month: 13, Year: 2024}
	txs := []models.Transaction{
		tx(models.TypeExpense, "Food", "100", date(2024, time.June, 5)),
	}
	assert.True(t, SpentForBudget(b, txs).IsZero())
}

func TestProgressForSavings_InvalidMonthDegradesToZero(t *testing.T) {
	s := models.Savings{Month: 0, Year: 2024}
	txs := []models.Transaction{
		tx(models.TypeIncome, "Salary", "100", date(2024, time.June, 5)),
	}
	assert.True(t, ProgressForSavings(s, txs).IsZero())
}

// Scenario: income 1000 on 2024-06-02, expense 300 "Food" on 2024-06-05,
// expense 50 "Food" on 2024-07-01. June's Food budget sees only the 300 and
// the June savings goal progresses by 1000 - 300 = 700.
func TestMonthlyScenario(t *testing.T) {
	txs := []models.Transaction{
		tx(models.TypeIncome, "Salary", "1000", date(2024, time.June, 2)),
		tx(models.TypeExpense, "Food", "300", date(2024, time.June, 5)),
		tx(models.TypeExpense, "Food", "50", date(2024, time.July, 1)),
	}

	b := models.Budget{Category: "Food", Month: 6, Year: 2024}
	assert.True(t, SpentForBudget(b, txs).Equal(dec("300")))

	s := models.Savings{Month: 6, Year: 2024, TargetAmount: dec("500")}
	assert.True(t, ProgressForSavings(s, txs).Equal(dec("700")))
}
