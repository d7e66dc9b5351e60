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

// UpsertSavingsHandler creates or replaces the one savings goal a user may
// hold per calendar month; only the target is mutated on an existing row.
func UpsertSavingsHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req SavingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	month, year, err := ledger.ResolveSchedule(req.Month, req.Year, time.Now())
	if err != nil {
		writeDomainError(w, err, "")
		return
	}
	if err := ledger.ValidateSavingsTarget(req.TargetAmount); err != nil {
		writeDomainError(w, err, "")
		return
	}

	goal, err := store.SavingsByNaturalKey(user.ID, month, year)
	switch {
	case err == nil:
		goal.TargetAmount = req.TargetAmount
		if err := store.DB.Save(&goal).Error; err != nil {
			writeDomainError(w, err, "failed to update savings goal")
			return
		}
	case errors.Is(err, ledger.ErrNotFound):
		goal = models.Savings{
			UserID:       user.ID,
			TargetAmount: req.TargetAmount,
			Month:        month,
			Year:         year,
		}
		if err := store.DB.Create(&goal).Error; err != nil {
			writeDomainError(w, err, "failed to create savings goal")
			return
		}
	default:
		writeDomainError(w, err, "failed to look up savings goal")
		return
	}

	txs, err := store.TransactionsForUser(user.ID)
	if err != nil {
		writeDomainError(w, err, "failed to fetch transactions")
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toSavingsResponse(goal, ledger.ProgressForSavings(goal, txs)))
}

// ListSavingsHandler returns all of the user's savings goals, or the single
// goal for (month, year) when both filters are supplied.
func ListSavingsHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	month, _ := strconv.Atoi(q.Get("month"))
	year, _ := strconv.Atoi(q.Get("year"))

	var goals []models.Savings
	if month != 0 && year != 0 {
		s, err := store.SavingsByNaturalKey(user.ID, month, year)
		if err == nil {
			goals = []models.Savings{s}
		} else if !errors.Is(err, ledger.ErrNotFound) {
			writeDomainError(w, err, "failed to look up savings goal")
			return
		}
	} else {
		var err error
		goals, err = store.SavingsForUser(user.ID)
		if err != nil {
			writeDomainError(w, err, "failed to fetch savings goals")
			return
		}
	}

	txs, err := store.TransactionsForUser(user.ID)
	if err != nil {
		writeDomainError(w, err, "failed to fetch transactions")
		return
	}

	out := make([]SavingsResponse, 0, len(goals))
	for _, s := range goals {
		out = append(out, toSavingsResponse(s, ledger.ProgressForSavings(s, txs)))
	}
	httputil.WriteJSON(w, http.StatusOK, out)
}

func DeleteSavingsHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httputil.WriteError(w, http.StatusBadRequest, "invalid savings id")
		return
	}

	var goal models.Savings
	if err := store.DB.First(&goal, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			writeDomainError(w, ledger.ErrNotFound, "")
			return
		}
		writeDomainError(w, err, "failed to fetch savings goal")
		return
	}
	if goal.UserID != user.ID {
		writeDomainError(w, ledger.ErrNotOwned, "")
		return
	}

	// Hard delete, so the month's natural-key slot is free for a new goal.
	if err := store.DB.Unscoped().Delete(&goal).Error; err != nil {
		writeDomainError(w, err, "failed to delete savings goal")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
