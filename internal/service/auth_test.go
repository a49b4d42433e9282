package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/voyago/voyago-api/internal/domain"
	"github.com/voyago/voyago-api/internal/service"
	"github.com/voyago/voyago-api/internal/store"
	"github.com/voyago/voyago-api/internal/token"
)

func newAuthService(doc domain.Document) (*service.AuthService, store.Store) {
	st := store.NewMemory(doc)
	tokens := token.NewManager([]byte("test-secret"), time.Hour)
	return service.NewAuthService(st, tokens), st
}

func TestAuthService_Register(t *testing.T) {
	svc, st := newAuthService(domain.Document{})

	user, err := svc.Register(context.Background(), "alice", "s3cret", "alice@example.com")

	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, domain.RoleUser, user.Role)
	assert.False(t, user.IsSuperAdmin)

	// The stored hash verifies against the original password and is not the
	// plaintext itself.
	doc, err := st.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, doc.Users, 1)
	stored := doc.Users[0]
	assert.NotEqual(t, "s3cret", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("s3cret")))
}

func TestAuthService_Register_MissingFields(t *testing.T) {
	svc, _ := newAuthService(domain.Document{})

	_, err := svc.Register(context.Background(), "", "s3cret", "")
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.Register(context.Background(), "alice", "", "")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAuthService_Register_DuplicateUsername(t *testing.T) {
	svc, _ := newAuthService(domain.Document{
		Users: []domain.User{{ID: "u1", Username: "alice"}},
	})

	_, err := svc.Register(context.Background(), "alice", "s3cret", "")

	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	svc, _ := newAuthService(domain.Document{
		Users: []domain.User{{ID: "u1", Username: "alice", Email: "alice@example.com"}},
	})

	_, err := svc.Register(context.Background(), "alice2", "s3cret", "alice@example.com")

	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestAuthService_Login(t *testing.T) {
	svc, _ := newAuthService(domain.Document{})
	_, err := svc.Register(context.Background(), "alice", "s3cret", "alice@example.com")
	require.NoError(t, err)

	user, signed, err := svc.Login(context.Background(), "alice", "s3cret")

	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.NotEmpty(t, signed)
}

func TestAuthService_Login_ByEmail(t *testing.T) {
	svc, _ := newAuthService(domain.Document{})
	_, err := svc.Register(context.Background(), "alice", "s3cret", "alice@example.com")
	require.NoError(t, err)

	user, _, err := svc.Login(context.Background(), "alice@example.com", "s3cret")

	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
}

func TestAuthService_Login_BadCredentials(t *testing.T) {
	svc, _ := newAuthService(domain.Document{})
	_, err := svc.Register(context.Background(), "alice", "s3cret", "")
	require.NoError(t, err)

	// Wrong password and unknown user fail identically.
	_, _, err = svc.Login(context.Background(), "alice", "wrong")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, _, err = svc.Login(context.Background(), "nobody", "s3cret")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestAuthService_UpdateProfile(t *testing.T) {
	svc, st := newAuthService(domain.Document{})
	user, err := svc.Register(context.Background(), "alice", "s3cret", "alice@example.com")
	require.NoError(t, err)

	bio := "Chasing northern lights"
	dream := "Tromsø"
	updated, err := svc.UpdateProfile(context.Background(), user.ID, domain.ProfilePatch{
		Bio:              &bio,
		DreamDestination: &dream,
	})

	require.NoError(t, err)
	assert.Equal(t, bio, updated.Bio)
	assert.Equal(t, dream, updated.DreamDestination)
	// Untouched fields survive the patch.
	assert.Equal(t, "alice@example.com", updated.Email)
	assert.Equal(t, "alice", updated.Username)

	doc, err := st.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, bio, doc.Users[0].Bio)
}

func TestAuthService_UpdateProfile_EmailConflict(t *testing.T) {
	svc, _ := newAuthService(domain.Document{})
	_, err := svc.Register(context.Background(), "alice", "s3cret", "alice@example.com")
	require.NoError(t, err)
	bob, err := svc.Register(context.Background(), "bob", "s3cret", "bob@example.com")
	require.NoError(t, err)

	taken := "alice@example.com"
	_, err = svc.UpdateProfile(context.Background(), bob.ID, domain.ProfilePatch{Email: &taken})

	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestAuthService_UpdateProfile_UnknownUser(t *testing.T) {
	svc, _ := newAuthService(domain.Document{})

	bio := "ghost"
	_, err := svc.UpdateProfile(context.Background(), "no-such-id", domain.ProfilePatch{Bio: &bio})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
