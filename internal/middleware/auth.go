package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/passgate/passgate-go/internal/crypto"
	"github.com/passgate/passgate-go/internal/model"
	"github.com/passgate/passgate-go/internal/store"
)

type contextKey string

const userKey contextKey = "user"

// Authenticate returns middleware that gates protected routes: it extracts
// the Bearer token from the Authorization header, validates it, and resolves
// the subject claim against the user store. Every failure — missing or
// malformed header, bad signature, expired token, or a subject with no stored
// record — is the same 401, so the response never reveals which check failed.
func Authenticate(secret string, users store.UserStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := authenticate(r, secret, users)
			if !ok {
				w.Header().Set("WWW-Authenticate", "Bearer")
				writeJSONError(w, http.StatusUnauthorized, "not authenticated")
				return
			}

			ctx := context.WithValue(r.Context(), userKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func authenticate(r *http.Request, secret string, users store.UserStore) (*model.User, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return nil, false
	}

	token, found := strings.CutPrefix(authHeader, "Bearer ")
	if !found || token == "" {
		return nil, false
	}

	subject, err := crypto.ValidateToken(token, secret)
	if err != nil {
		return nil, false
	}

	user, err := users.GetByEmail(r.Context(), subject)
	if err != nil {
		return nil, false
	}

	return user, true
}

// UserFromContext extracts the authenticated user from the request context.
func UserFromContext(ctx context.Context) (*model.User, bool) {
	user, ok := ctx.Value(userKey).(*model.User)
	return user, ok
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
