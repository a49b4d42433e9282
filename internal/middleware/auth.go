package middleware

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/voyago/voyago-api/internal/domain"
	"github.com/voyago/voyago-api/internal/policy"
	"github.com/voyago/voyago-api/internal/store"
	"github.com/voyago/voyago-api/internal/token"
)

// userContextKey is the private context key under which the authenticated
// user travels. Use WithUser / UserFrom; the key itself is not exported.
type userContextKey struct{}

// WithUser returns a context carrying user. Exported for handler tests that
// need an authenticated request without running the middleware.
func WithUser(ctx context.Context, user domain.User) context.Context {
	return context.WithValue(ctx, userContextKey{}, user)
}

// UserFrom returns the authenticated user stored by the Authenticator.
// ok is false on requests that did not pass through Require.
func UserFrom(ctx context.Context) (domain.User, bool) {
	user, ok := ctx.Value(userContextKey{}).(domain.User)
	return user, ok
}

// Authenticator resolves bearer tokens to user records.
//
// Token claims are verified first (signature + expiry) and malformed tokens
// fail fast without a store read. For valid tokens the user is re-read from
// the store by id, so identity and role always reflect current state — a
// deleted user's token stops working immediately, and the role embedded in
// the token is never trusted.
type Authenticator struct {
	tokens *token.Manager
	store  store.Store
}

// NewAuthenticator wires the token manager and store into an Authenticator.
func NewAuthenticator(tokens *token.Manager, st store.Store) *Authenticator {
	return &Authenticator{tokens: tokens, store: st}
}

// Require rejects unauthenticated requests with 401 and stores the resolved
// user in the request context for downstream handlers.
func (a *Authenticator) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			writeError(w, http.StatusUnauthorized, "no token provided")
			return
		}
		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			writeError(w, http.StatusUnauthorized, "invalid token format")
			return
		}

		claims, err := a.tokens.Parse(raw)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "invalid token")
			return
		}

		doc, err := a.store.Load(r.Context())
		if err != nil {
			slog.ErrorContext(r.Context(), "auth: load store", "error", err)
			writeError(w, http.StatusInternalServerError, "internal server error")
			return
		}
		user := doc.UserByID(claims.Subject)
		if user == nil {
			writeError(w, http.StatusUnauthorized, "user not found")
			return
		}

		next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), *user)))
	})
}

// RequireAdmin gates a route on the admin policy. Wire it after Require.
func (a *Authenticator) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := UserFrom(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "no token provided")
			return
		}
		if !policy.IsAdmin(user) {
			writeError(w, http.StatusForbidden, "admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// writeError emits the API's {"error": ...} body from middleware, which
// cannot reach the handler package's helpers without an import cycle.
func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message}) //nolint:errcheck // headers already sent
}
