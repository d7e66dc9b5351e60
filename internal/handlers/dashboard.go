package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/budgetwise/backend/internal/httputil"
	"github.com/budgetwise/backend/internal/ledger"
	"github.com/budgetwise/backend/internal/models"
	"github.com/budgetwise/backend/internal/store"
)

// DashboardHandler composes the all-time and current-month summaries with the
// user's budgets and the current month's savings goal. Spent and progress are
// recomputed per entity on every call; fine for one user's history.
func DashboardHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	resp, err := composeDashboard(user)
	if err != nil {
		writeDomainError(w, err, "failed to compose dashboard")
		return
	}
	httputil.WriteJSON(w, http.StatusOK, resp)
}

func composeDashboard(user models.User) (DashboardResponse, error) {
	txs, err := store.TransactionsForUser(user.ID)
	if err != nil {
		return DashboardResponse{}, err
	}

	now := time.Now()
	allTime := ledger.Summarize(txs, ledger.AllTime)
	monthly := ledger.Summarize(txs, ledger.CurrentMonthWindow(now))

	budgets, err := store.BudgetsForUser(user.ID)
	if err != nil {
		return DashboardResponse{}, err
	}
	budgetLines := make([]BudgetResponse, 0, len(budgets))
	for _, b := range budgets {
		budgetLines = append(budgetLines, toBudgetResponse(b, ledger.SpentForBudget(b, txs)))
	}

	resp := DashboardResponse{
		TotalIncome:              allTime.Income,
		TotalExpense:             allTime.Expense,
		Balance:                  allTime.Balance,
		ExpenseByCategory:        allTime.ExpenseByCategory,
		MonthlyIncome:            monthly.Income,
		MonthlyExpense:           monthly.Expense,
		MonthlyBalance:           monthly.Balance,
		MonthlyExpenseByCategory: monthly.ExpenseByCategory,
		Budgets:                  budgetLines,
	}

	goal, err := store.SavingsByNaturalKey(user.ID, int(now.Month()), now.Year())
	switch {
	case err == nil:
		s := toSavingsResponse(goal, ledger.ProgressForSavings(goal, txs))
		resp.MonthlySavings = &s
	case errors.Is(err, ledger.ErrNotFound):
		// no goal set this month
	default:
		return DashboardResponse{}, err
	}

	return resp, nil
}
