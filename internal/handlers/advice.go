package handlers

import (
	"net/http"

	"github.com/budgetwise/backend/internal/advice"
	"github.com/budgetwise/backend/internal/httputil"
)

type AdviceResponse struct {
	Advice string `json:"advice"`
}

// AdviceHandler feeds the current-month dashboard data to the AI advisor.
// The advisor degrades to fixed messages on any failure, so this endpoint
// always answers 200 once the dashboard is composed.
func AdviceHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	dash, err := composeDashboard(user)
	if err != nil {
		writeDomainError(w, err, "failed to compose dashboard")
		return
	}

	snap := advice.Snapshot{
		MonthlyIncome:  dash.MonthlyIncome,
		MonthlyExpense: dash.MonthlyExpense,
		MonthlyBalance: dash.MonthlyBalance,
	}
	for _, b := range dash.Budgets {
		snap.Budgets = append(snap.Budgets, advice.BudgetLine{
			Category: b.Category,
			Spent:    b.SpentAmount,
			Limit:    b.LimitAmount,
		})
	}
	if dash.MonthlySavings != nil {
		snap.Savings = &advice.SavingsLine{
			Target:   dash.MonthlySavings.TargetAmount,
			Progress: dash.MonthlySavings.ProgressAmount,
		}
	}

	text := advice.Default.BudgetAdvice(r.Context(), snap)
	httputil.WriteJSON(w, http.StatusOK, AdviceResponse{Advice: text})
}
