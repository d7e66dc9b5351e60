package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/budgetwise/backend/internal/httputil"
	"github.com/budgetwise/backend/internal/middleware"
	"github.com/budgetwise/backend/internal/store"
)

// SyncUserHandler reconciles the stored profile with the token claims,
// creating the user on first sight. Claims win over the request body.
func SyncUserHandler(w http.ResponseWriter, r *http.Request) {
	p, ok := middleware.PrincipalFrom(r.Context())
	if !ok {
		httputil.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req UserRequest
	// Body is optional; decode errors on an empty body are fine to ignore.
	json.NewDecoder(r.Body).Decode(&req)

	email := p.Email
	if email == "" {
		email = req.Email
	}
	name := p.Name
	if name == "" {
		name = req.Name
	}

	user, err := store.SyncUser(p.ExternalID, email, name)
	if err != nil {
		writeDomainError(w, err, "failed to sync user")
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toUserResponse(user))
}

func MeHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toUserResponse(user))
}

func UpdateProfileHandler(w http.ResponseWriter, r *http.Request) {
	p, ok := middleware.PrincipalFrom(r.Context())
	if !ok {
		httputil.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req UserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := store.UpdateUserName(p.ExternalID, p.Email, p.Name, req.Name)
	if err != nil {
		writeDomainError(w, err, "failed to update profile")
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toUserResponse(user))
}
