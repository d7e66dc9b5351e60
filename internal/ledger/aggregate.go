// Package ledger holds the aggregation rules that turn a user's raw
// transaction history into derived figures: income/expense summaries, the
// spent amount behind a budget and the progress behind a savings goal.
// Everything operates on ledger-currency decimals; no float64 money.
package ledger

import (
	"strings"
	"time"

	"github.com/budgetwise/backend/internal/models"
	"github.com/shopspring/decimal"
)

// Window is an inclusive calendar-date range. The zero value means all time.
type Window struct {
	Start time.Time
	End   time.Time
}

// AllTime is the unbounded window.
var AllTime = Window{}

func (w Window) Contains(d time.Time) bool {
	if w.Start.IsZero() && w.End.IsZero() {
		return true
	}
	d = dateOf(d)
	return !d.Before(dateOf(w.Start)) && !d.After(dateOf(w.End))
}

// MonthWindow returns the first-to-last-day window of a calendar month.
// ok is false for months outside [1,12].
func MonthWindow(month, year int) (Window, bool) {
	if month < 1 || month > 12 {
		return Window{}, false
	}
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	return Window{Start: start, End: end}, true
}

// CurrentMonthWindow is MonthWindow for the month containing now.
func CurrentMonthWindow(now time.Time) Window {
	w, _ := MonthWindow(int(now.Month()), now.Year())
	return w
}

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

type Summary struct {
	Income            decimal.Decimal
	Expense           decimal.Decimal
	Balance           decimal.Decimal
	ExpenseByCategory map[string]decimal.Decimal
}

// Summarize totals income and expense over the window and breaks expenses
// down by category. Empty input yields zero sums and an empty map.
func Summarize(txs []models.Transaction, w Window) Summary {
	s := Summary{
		Income:            decimal.Zero,
		Expense:           decimal.Zero,
		ExpenseByCategory: make(map[string]decimal.Decimal),
	}
	for _, t := range txs {
		if !w.Contains(t.Date) {
			continue
		}
		switch t.Type {
		case models.TypeIncome:
			s.Income = s.Income.Add(t.Amount)
		case models.TypeExpense:
			s.Expense = s.Expense.Add(t.Amount)
			s.ExpenseByCategory[t.Category] = s.ExpenseByCategory[t.Category].Add(t.Amount)
		}
	}
	s.Balance = s.Income.Sub(s.Expense)
	return s
}

// SpentForBudget sums the expenses in the budget's month that match its
// category, case-insensitively. A budget read must never fail because of the
// derived figure, so an unusable month degrades to zero instead of erroring.
func SpentForBudget(b models.Budget, txs []models.Transaction) decimal.Decimal {
	w, ok := MonthWindow(b.Month, b.Year)
	if !ok {
		return decimal.Zero
	}
	spent := decimal.Zero
	for _, t := range txs {
		if t.Type != models.TypeExpense {
			continue
		}
		if !strings.EqualFold(t.Category, b.Category) {
			continue
		}
		if !w.Contains(t.Date) {
			continue
		}
		spent = spent.Add(t.Amount)
	}
	return spent
}

// ProgressForSavings is income minus expense over the goal's month. Same
// degrade-to-zero policy as SpentForBudget.
func ProgressForSavings(s models.Savings, txs []models.Transaction) decimal.Decimal {
	w, ok := MonthWindow(s.Month, s.Year)
	if !ok {
		return decimal.Zero
	}
	sum := Summarize(txs, w)
	return sum.Balance
}
