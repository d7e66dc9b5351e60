package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/budgetwise/backend/configs"
	"github.com/budgetwise/backend/internal/httputil"
	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

const principalContextKey contextKey = "principal"

// Principal is the verified caller identity extracted from the bearer token.
// Email and Name are optional claims; they are only needed the first time an
// identity is seen, when the user row gets created.
type Principal struct {
	ExternalID string
	Email      string
	Name       string
}

// PrincipalFrom returns the principal the Authenticated middleware stored in
// the request context. Handlers extract it once and pass it down explicitly.
func PrincipalFrom(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalContextKey).(Principal)
	return p, ok
}

func Authenticated(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			httputil.WriteError(w, http.StatusUnauthorized, "missing authorization header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httputil.WriteError(w, http.StatusUnauthorized, "invalid authorization header")
			return
		}

		tokenStr := parts[1]

		token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenSignatureInvalid
			}
			return []byte(configs.AppConfig.JWT.SECRET), nil
		})
		if err != nil || !token.Valid {
			httputil.WriteError(w, http.StatusUnauthorized, "invalid or expired token")
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			httputil.WriteError(w, http.StatusUnauthorized, "invalid token claims")
			return
		}

		sub, ok := claims["sub"].(string)
		if !ok || sub == "" {
			httputil.WriteError(w, http.StatusUnauthorized, "invalid token payload")
			return
		}

		p := Principal{ExternalID: sub}
		if email, ok := claims["email"].(string); ok {
			p.Email = email
		}
		if name, ok := claims["name"].(string); ok {
			p.Name = name
		}

		ctx := context.WithValue(r.Context(), principalContextKey, p)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
