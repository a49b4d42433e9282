package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/voyago/voyago-api/internal/domain"
	"github.com/voyago/voyago-api/internal/policy"
	"github.com/voyago/voyago-api/internal/store"
)

// UserService implements the admin-facing account operations: listing
// accounts, creating admins, and deleting accounts. The route layer gates
// these behind the admin policy; the super-admin rules are re-checked here
// because they depend on the specific actor and target.
type UserService struct {
	store store.Store
}

// NewUserService constructs a UserService.
func NewUserService(st store.Store) *UserService {
	return &UserService{store: st}
}

// List returns every account with credential material stripped.
// Never returns nil.
func (s *UserService) List(ctx context.Context) ([]domain.PublicUser, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.UserService.List: %w", err)
	}

	users := make([]domain.PublicUser, 0, len(doc.Users))
	for _, u := range doc.Users {
		users = append(users, u.Public())
	}
	return users, nil
}

// CreateAdmin creates a new admin account. Only the super-admin may do
// this, and the created account is an ordinary admin, never a super-admin.
func (s *UserService) CreateAdmin(ctx context.Context, actor domain.User, username, password, email string) (domain.User, error) {
	if !policy.CanCreateAdmin(actor) {
		return domain.User{}, fmt.Errorf("service.UserService.CreateAdmin: %w: only the super admin can create admins", domain.ErrForbidden)
	}
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return domain.User{}, fmt.Errorf("service.UserService.CreateAdmin: %w: username and password are required", domain.ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, fmt.Errorf("service.UserService.CreateAdmin: hash password: %w", err)
	}

	admin := domain.User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        strings.TrimSpace(email),
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		CreatedAt:    time.Now().UTC(),
	}

	err = s.store.Update(ctx, func(doc *domain.Document) error {
		if doc.UserByUsername(username) != nil {
			return fmt.Errorf("%w: username already exists", domain.ErrConflict)
		}
		if admin.Email != "" && doc.UserByEmail(admin.Email) != nil {
			return fmt.Errorf("%w: email already exists", domain.ErrConflict)
		}
		doc.Users = append(doc.Users, admin)
		return nil
	})
	if err != nil {
		return domain.User{}, fmt.Errorf("service.UserService.CreateAdmin: %w", err)
	}
	return admin, nil
}

// Delete removes an account. Super-admin accounts cannot be deleted by any
// actor.
func (s *UserService) Delete(ctx context.Context, actor domain.User, id string) error {
	err := s.store.Update(ctx, func(doc *domain.Document) error {
		target := doc.UserByID(id)
		if target == nil {
			return fmt.Errorf("%w: user not found", domain.ErrNotFound)
		}
		if !policy.CanDeleteUser(actor, *target) {
			if target.IsSuperAdmin {
				return fmt.Errorf("%w: cannot delete the super admin", domain.ErrForbidden)
			}
			return fmt.Errorf("%w: admin access required", domain.ErrForbidden)
		}

		users := doc.Users[:0]
		for _, u := range doc.Users {
			if u.ID != id {
				users = append(users, u)
			}
		}
		doc.Users = users
		return nil
	})
	if err != nil {
		return fmt.Errorf("service.UserService.Delete: %w", err)
	}
	return nil
}
