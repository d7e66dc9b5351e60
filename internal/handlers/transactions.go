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

func CreateTransactionHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req TransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Type != models.TypeIncome && req.Type != models.TypeExpense {
		httputil.WriteError(w, http.StatusBadRequest, "type must be INCOME or EXPENSE")
		return
	}
	if req.Category == "" {
		httputil.WriteError(w, http.StatusBadRequest, "category is required")
		return
	}
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		httputil.WriteError(w, http.StatusBadRequest, "date must be formatted as YYYY-MM-DD")
		return
	}

	// When the caller omits the original amount, the plain amount is taken to
	// be the pre-conversion value.
	original := req.Amount
	if req.OriginalAmount != nil {
		original = *req.OriginalAmount
	}
	if !original.IsPositive() {
		httputil.WriteError(w, http.StatusBadRequest, "amount must be positive")
		return
	}

	amount, rate, curr := norm.Normalize(r.Context(), original, req.OriginalCurrency)

	tx := models.Transaction{
		UserID:           user.ID,
		Type:             req.Type,
		Category:         req.Category,
		Amount:           amount,
		OriginalAmount:   original,
		OriginalCurrency: curr,
		ConversionRate:   rate,
		Date:             date,
		Description:      req.Description,
	}
	if err := store.DB.Create(&tx).Error; err != nil {
		writeDomainError(w, err, "failed to create transaction")
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, toTransactionResponse(tx))
}

func ListTransactionsHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	txs, err := store.TransactionsForUser(user.ID)
	if err != nil {
		writeDomainError(w, err, "failed to fetch transactions")
		return
	}

	out := make([]TransactionResponse, 0, len(txs))
	for _, t := range txs {
		out = append(out, toTransactionResponse(t))
	}
	httputil.WriteJSON(w, http.StatusOK, out)
}

func DeleteTransactionHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httputil.WriteError(w, http.StatusBadRequest, "invalid transaction id")
		return
	}

	var tx models.Transaction
	if err := store.DB.First(&tx, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			writeDomainError(w, ledger.ErrNotFound, "")
			return
		}
		writeDomainError(w, err, "failed to fetch transaction")
		return
	}
	if tx.UserID != user.ID {
		writeDomainError(w, ledger.ErrNotOwned, "")
		return
	}

	if err := store.DB.Delete(&tx).Error; err != nil {
		writeDomainError(w, err, "failed to delete transaction")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
