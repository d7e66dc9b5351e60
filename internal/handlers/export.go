package handlers

import (
	"net/http"

	"github.com/budgetwise/backend/internal/csvexport"
	"github.com/budgetwise/backend/internal/store"
)

// ExportCSVHandler streams the user's full transaction history as a CSV
// attachment.
func ExportCSVHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	txs, err := store.TransactionsForUser(user.ID)
	if err != nil {
		writeDomainError(w, err, "failed to fetch transactions")
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="transactions.csv"`)
	w.Write(csvexport.Render(txs))
}
