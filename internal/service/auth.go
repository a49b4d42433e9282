// Package service contains the business logic for the Voyago API.
// Services validate input, consult the authorization policy, and orchestrate
// document-store reads and updates. No HTTP concepts live here — services
// depend on the store interface and return domain types and sentinel errors.
package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/voyago/voyago-api/internal/domain"
	"github.com/voyago/voyago-api/internal/store"
	"github.com/voyago/voyago-api/internal/token"
)

// AuthService implements registration, login and profile management.
// Passwords are stored as bcrypt hashes; login is a constant-time hash
// comparison, never a string equality check.
type AuthService struct {
	store  store.Store
	tokens *token.Manager
}

// NewAuthService constructs an AuthService.
func NewAuthService(st store.Store, tokens *token.Manager) *AuthService {
	return &AuthService{store: st, tokens: tokens}
}

// Register creates a new user with role "user". Username is required and
// unique; email is optional but unique when present.
func (s *AuthService) Register(ctx context.Context, username, password, email string) (domain.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || password == "" {
		return domain.User{}, fmt.Errorf("service.AuthService.Register: %w: username and password are required", domain.ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, fmt.Errorf("service.AuthService.Register: hash password: %w", err)
	}

	user := domain.User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		CreatedAt:    time.Now().UTC(),
	}

	err = s.store.Update(ctx, func(doc *domain.Document) error {
		if doc.UserByUsername(username) != nil {
			return fmt.Errorf("%w: username already exists", domain.ErrConflict)
		}
		if email != "" && doc.UserByEmail(email) != nil {
			return fmt.Errorf("%w: email already exists", domain.ErrConflict)
		}
		doc.Users = append(doc.Users, user)
		return nil
	})
	if err != nil {
		return domain.User{}, fmt.Errorf("service.AuthService.Register: %w", err)
	}
	return user, nil
}

// Login verifies credentials and returns the matching user plus a signed
// bearer token. The login value may be a username or an email; which one
// failed is never disclosed.
func (s *AuthService) Login(ctx context.Context, login, password string) (domain.User, string, error) {
	if login == "" || password == "" {
		return domain.User{}, "", fmt.Errorf("service.AuthService.Login: %w: username and password are required", domain.ErrValidation)
	}

	doc, err := s.store.Load(ctx)
	if err != nil {
		return domain.User{}, "", fmt.Errorf("service.AuthService.Login: %w", err)
	}

	user := doc.UserByUsername(login)
	if user == nil {
		user = doc.UserByEmail(login)
	}
	if user == nil {
		return domain.User{}, "", fmt.Errorf("service.AuthService.Login: %w: invalid credentials", domain.ErrUnauthorized)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return domain.User{}, "", fmt.Errorf("service.AuthService.Login: %w: invalid credentials", domain.ErrUnauthorized)
	}

	signed, err := s.tokens.Issue(*user)
	if err != nil {
		return domain.User{}, "", fmt.Errorf("service.AuthService.Login: %w", err)
	}
	return *user, signed, nil
}

// UpdateProfile applies the allow-listed profile patch to the user's own
// record and returns the updated user. Changing the email re-checks email
// uniqueness.
func (s *AuthService) UpdateProfile(ctx context.Context, userID string, patch domain.ProfilePatch) (domain.User, error) {
	var updated domain.User
	err := s.store.Update(ctx, func(doc *domain.Document) error {
		user := doc.UserByID(userID)
		if user == nil {
			return fmt.Errorf("%w: user not found", domain.ErrNotFound)
		}
		if patch.Email != nil && *patch.Email != "" && *patch.Email != user.Email {
			if other := doc.UserByEmail(*patch.Email); other != nil && other.ID != user.ID {
				return fmt.Errorf("%w: email already exists", domain.ErrConflict)
			}
		}
		patch.Apply(user)
		updated = *user
		return nil
	})
	if err != nil {
		return domain.User{}, fmt.Errorf("service.AuthService.UpdateProfile: %w", err)
	}
	return updated, nil
}
