package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/budgetwise/backend/internal/httputil"
	"github.com/budgetwise/backend/internal/ledger"
	"github.com/budgetwise/backend/internal/models"
	"github.com/budgetwise/backend/internal/store"
	"github.com/go-chi/chi/v5"
	"gorm.io/gorm"
)

// UpsertBudgetHandler creates or replaces the budget for one natural key
// (user, category, month, year). An existing row only has its limit mutated;
// a concurrent upsert for the same key is last-write-wins, which is accepted
// for a single end-user editing their own data.
func UpsertBudgetHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req BudgetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	month, year, err := ledger.ResolveSchedule(req.Month, req.Year, time.Now())
	if err != nil {
		writeDomainError(w, err, "")
		return
	}
	if err := ledger.ValidateBudget(req.Category, req.LimitAmount); err != nil {
		writeDomainError(w, err, "")
		return
	}

	budget, err := store.BudgetByNaturalKey(user.ID, req.Category, month, year)
	switch {
	case err == nil:
		budget.LimitAmount = req.LimitAmount
		if err := store.DB.Save(&budget).Error; err != nil {
			writeDomainError(w, err, "failed to update budget")
			return
		}
	case errors.Is(err, ledger.ErrNotFound):
		budget = models.Budget{
			UserID:      user.ID,
			Category:    req.Category,
			LimitAmount: req.LimitAmount,
			Month:       month,
			Year:        year,
		}
		if err := store.DB.Create(&budget).Error; err != nil {
			writeDomainError(w, err, "failed to create budget")
			return
		}
	default:
		writeDomainError(w, err, "failed to look up budget")
		return
	}

	txs, err := store.TransactionsForUser(user.ID)
	if err != nil {
		writeDomainError(w, err, "failed to fetch transactions")
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toBudgetResponse(budget, ledger.SpentForBudget(budget, txs)))
}

// ListBudgetsHandler returns all of the user's budgets, or the single budget
// for (category, month, year) when all three filters are supplied.
func ListBudgetsHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	category := q.Get("category")
	month, _ := strconv.Atoi(q.Get("month"))
	year, _ := strconv.Atoi(q.Get("year"))

	var budgets []models.Budget
	if category != "" && month != 0 && year != 0 {
		b, err := store.BudgetByNaturalKey(user.ID, category, month, year)
		if err == nil {
			budgets = []models.Budget{b}
		} else if !errors.Is(err, ledger.ErrNotFound) {
			writeDomainError(w, err, "failed to look up budget")
			return
		}
	} else {
		var err error
		budgets, err = store.BudgetsForUser(user.ID)
		if err != nil {
			writeDomainError(w, err, "failed to fetch budgets")
			return
		}
	}

	txs, err := store.TransactionsForUser(user.ID)
	if err != nil {
		writeDomainError(w, err, "failed to fetch transactions")
		return
	}

	out := make([]BudgetResponse, 0, len(budgets))
	for _, b := range budgets {
		out = append(out, toBudgetResponse(b, ledger.SpentForBudget(b, txs)))
	}
	httputil.WriteJSON(w, http.StatusOK, out)
}

func DeleteBudgetHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httputil.WriteError(w, http.StatusBadRequest, "invalid budget id")
		return
	}

	var budget models.Budget
	if err := store.DB.First(&budget, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			writeDomainError(w, ledger.ErrNotFound, "")
			return
		}
		writeDomainError(w, err, "failed to fetch budget")
		return
	}
	if budget.UserID != user.ID {
		writeDomainError(w, ledger.ErrNotOwned, "")
		return
	}

	// Hard delete. A soft-deleted row would still occupy the natural-key
	// unique index and block re-creating a budget for the same
	// (category, month, year).
	if err := store.DB.Unscoped().Delete(&budget).Error; err != nil {
		writeDomainError(w, err, "failed to delete budget")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
