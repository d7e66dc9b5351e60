package handlers

import (
	"errors"
	"net/http"

	"github.com/budgetwise/backend/configs"
	"github.com/budgetwise/backend/internal/currency"
	"github.com/budgetwise/backend/internal/httputil"
	"github.com/budgetwise/backend/internal/ledger"
	"github.com/budgetwise/backend/internal/logger"
	"github.com/budgetwise/backend/internal/middleware"
	"github.com/budgetwise/backend/internal/models"
	"github.com/budgetwise/backend/internal/store"
	"go.uber.org/zap"
)

var norm *currency.Normalizer

// Init wires the currency normalizer from config. Called once from main
// after LoadConfig.
func Init() {
	norm = currency.NewNormalizer(
		configs.AppConfig.Ledger.Currency,
		currency.NewClient(configs.AppConfig.Rates.BaseURL),
	)
}

// requireUser resolves the authenticated principal into a user row, creating
// it lazily on first sight. Returns ok=false after writing the error response.
func requireUser(w http.ResponseWriter, r *http.Request) (models.User, bool) {
	p, ok := middleware.PrincipalFrom(r.Context())
	if !ok {
		httputil.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return models.User{}, false
	}
	user, _, err := store.GetOrCreateUser(p.ExternalID, p.Email, p.Name)
	if err != nil {
		writeDomainError(w, err, "failed to resolve user")
		return models.User{}, false
	}
	return user, true
}

// writeDomainError maps the error taxonomy onto status codes: validation
// problems are the caller's fault, ownership mismatches are forbidden,
// missing rows are not found, everything else is a 500.
func writeDomainError(w http.ResponseWriter, err error, logMsg string) {
	var verr *ledger.ValidationError
	switch {
	case errors.As(err, &verr):
		httputil.WriteError(w, http.StatusBadRequest, verr.Reason)
	case errors.Is(err, ledger.ErrNotFound):
		httputil.WriteError(w, http.StatusNotFound, ledger.ErrNotFound.Error())
	case errors.Is(err, ledger.ErrNotOwned):
		httputil.WriteError(w, http.StatusForbidden, ledger.ErrNotOwned.Error())
	default:
		logger.Log.Error(logMsg, zap.Error(err))
		httputil.WriteError(w, http.StatusInternalServerError, logMsg)
	}
}
