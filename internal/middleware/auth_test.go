package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/budgetwise/backend/configs"
)

const testSecret = "test-secret"

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func callAuthenticated(t *testing.T, authHeader string) (*httptest.ResponseRecorder, *Principal) {
	t.Helper()
	configs.AppConfig.JWT.SECRET = testSecret

	var got *Principal
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if p, ok := PrincipalFrom(r.Context()); ok {
			got = &p
		}
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	Authenticated(next).ServeHTTP(rec, req)
	return rec, got
}

func TestAuthenticated_ValidToken(t *testing.T) {
	token := signToken(t, jwt.MapClaims{
		"sub":   "user_abc123",
		"email": "jo@example.com",
		"name":  "Jo",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	rec, p := callAuthenticated(t, "Bearer "+token)
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, p)
	assert.Equal(t, "user_abc123", p.ExternalID)
	assert.Equal(t, "jo@example.com", p.Email)
	assert.Equal(t, "Jo", p.Name)
}

func TestAuthenticated_OptionalClaimsMayBeAbsent(t *testing.T) {
	token := signToken(t, jwt.MapClaims{
		"sub": "user_abc123",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	rec, p := callAuthenticated(t, "Bearer "+token)
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, p)
	assert.Empty(t, p.Email)
	assert.Empty(t, p.Name)
}

func TestAuthenticated_MissingHeader(t *testing.T) {
	rec, p := callAuthenticated(t, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, p)
}

func TestAuthenticated_MalformedHeader(t *testing.T) {
	rec, _ := callAuthenticated(t, "Basic abc")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticated_ExpiredToken(t *testing.T) {
	token := signToken(t, jwt.MapClaims{
		"sub": "user_abc123",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})
	rec, _ := callAuthenticated(t, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticated_NonStringSubject(t *testing.T) {
	token := signToken(t, jwt.MapClaims{
		"sub": 12345,
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	rec, _ := callAuthenticated(t, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
