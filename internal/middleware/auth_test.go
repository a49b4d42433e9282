package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voyago/voyago-api/internal/domain"
	"github.com/voyago/voyago-api/internal/middleware"
	"github.com/voyago/voyago-api/internal/store"
	"github.com/voyago/voyago-api/internal/token"
)

// countingStore wraps a Store and counts Load calls, to prove malformed
// tokens are rejected before any store read.
type countingStore struct {
	inner store.Store
	loads atomic.Int64
}

var _ store.Store = (*countingStore)(nil)

func (c *countingStore) Load(ctx context.Context) (domain.Document, error) {
	c.loads.Add(1)
	return c.inner.Load(ctx)
}

func (c *countingStore) Update(ctx context.Context, fn func(*domain.Document) error) error {
	return c.inner.Update(ctx, fn)
}

func newAuthFixture(t *testing.T) (*middleware.Authenticator, *token.Manager, *countingStore) {
	t.Helper()
	st := &countingStore{inner: store.NewMemory(domain.Document{
		Users: []domain.User{{ID: "u1", Username: "alice", Role: domain.RoleUser}},
	})}
	tokens := token.NewManager([]byte("test-secret"), time.Hour)
	return middleware.NewAuthenticator(tokens, st), tokens, st
}

// echoUser writes the authenticated username, proving the context was set.
var echoUser = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		http.Error(w, "no user in context", http.StatusInternalServerError)
		return
	}
	w.Write([]byte(user.Username)) //nolint:errcheck
})

func TestAuthenticator_Require_ValidToken(t *testing.T) {
	authn, tokens, _ := newAuthFixture(t)
	raw, err := tokens.Issue(domain.User{ID: "u1", Username: "alice"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/trips", nil)
	req.Header.Set("Authorization", "Bearer "+raw)
	rec := httptest.NewRecorder()

	authn.Require(echoUser).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "alice", rec.Body.String())
}

func TestAuthenticator_Require_Rejections(t *testing.T) {
	authn, _, st := newAuthFixture(t)
	garbage := "not-a-token"
	wrongSecret, err := token.NewManager([]byte("other-secret"), time.Hour).
		Issue(domain.User{ID: "u1", Username: "alice"})
	require.NoError(t, err)

	for _, tc := range []struct {
		name   string
		header string
		want   string
	}{
		{"missing header", "", "no token provided"},
		{"not bearer", "Basic abc123", "invalid token format"},
		{"garbage token", "Bearer " + garbage, "invalid token"},
		{"wrong signature", "Bearer " + wrongSecret, "invalid token"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/trips", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()

			authn.Require(echoUser).ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Body.String(), tc.want)
		})
	}

	// None of the rejected requests should have touched the store.
	assert.Zero(t, st.loads.Load())
}

func TestAuthenticator_Require_DeletedUser(t *testing.T) {
	authn, tokens, _ := newAuthFixture(t)
	// Token for a user id that is not in the store.
	raw, err := tokens.Issue(domain.User{ID: "gone", Username: "ghost"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/trips", nil)
	req.Header.Set("Authorization", "Bearer "+raw)
	rec := httptest.NewRecorder()

	authn.Require(echoUser).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "user not found")
}

func TestAuthenticator_RequireAdmin(t *testing.T) {
	authn, _, _ := newAuthFixture(t)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	for _, tc := range []struct {
		name string
		user domain.User
		want int
	}{
		{"admin", domain.User{ID: "a1", Role: domain.RoleAdmin}, http.StatusNoContent},
		{"super admin", domain.User{ID: "s1", Role: domain.RoleUser, IsSuperAdmin: true}, http.StatusNoContent},
		{"regular user", domain.User{ID: "u1", Role: domain.RoleUser}, http.StatusForbidden},
	} {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/admin/users", nil)
			req = req.WithContext(middleware.WithUser(req.Context(), tc.user))
			rec := httptest.NewRecorder()

			authn.RequireAdmin(next).ServeHTTP(rec, req)

			assert.Equal(t, tc.want, rec.Code)
		})
	}
}

func TestAuthenticator_RequireAdmin_NoUser(t *testing.T) {
	authn, _, _ := newAuthFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/users", nil)
	rec := httptest.NewRecorder()

	authn.RequireAdmin(http.NotFoundHandler()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
