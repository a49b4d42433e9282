// Package domain contains the core data types for the Voyago API.
// This package has zero dependencies on the other internal packages and is
// imported by every one of them (store, policy, service, handler).
package domain

import "time"

// Roles a User can hold. Super-admin is not a role of its own — it is the
// IsSuperAdmin flag on top of the admin role.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is a registered account.
// PasswordHash holds a bcrypt hash; the plaintext password is never stored.
// IsSuperAdmin grants rights beyond ordinary admin: creating other admins
// and immunity to deletion.
type User struct {
	ID               string    `json:"id"`
	Username         string    `json:"username"`
	Email            string    `json:"email,omitempty"`
	PasswordHash     string    `json:"passwordHash,omitempty"`
	Role             string    `json:"role"`
	IsSuperAdmin     bool      `json:"isSuperAdmin,omitempty"`
	Avatar           string    `json:"avatar,omitempty"`
	Bio              string    `json:"bio,omitempty"`
	DreamDestination string    `json:"dreamDestination,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
}

// PublicUser is the representation of a User safe to return to clients:
// everything except the password hash.
type PublicUser struct {
	ID               string    `json:"id"`
	Username         string    `json:"username"`
	Email            string    `json:"email,omitempty"`
	Role             string    `json:"role"`
	IsSuperAdmin     bool      `json:"isSuperAdmin"`
	Avatar           string    `json:"avatar,omitempty"`
	Bio              string    `json:"bio,omitempty"`
	DreamDestination string    `json:"dreamDestination,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
}

// Public strips the credential material from a User.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:               u.ID,
		Username:         u.Username,
		Email:            u.Email,
		Role:             u.Role,
		IsSuperAdmin:     u.IsSuperAdmin,
		Avatar:           u.Avatar,
		Bio:              u.Bio,
		DreamDestination: u.DreamDestination,
		CreatedAt:        u.CreatedAt,
	}
}

// ProfilePatch is the allow-listed set of User fields the owner may change
// via PUT /api/auth/me. Nil fields are left untouched. ID, username, role,
// the super-admin flag and the password hash are deliberately not patchable.
type ProfilePatch struct {
	Email            *string `json:"email,omitempty"`
	Avatar           *string `json:"avatar,omitempty"`
	Bio              *string `json:"bio,omitempty"`
	DreamDestination *string `json:"dreamDestination,omitempty"`
}

// Apply copies the non-nil patch fields onto u.
func (p ProfilePatch) Apply(u *User) {
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Avatar != nil {
		u.Avatar = *p.Avatar
	}
	if p.Bio != nil {
		u.Bio = *p.Bio
	}
	if p.DreamDestination != nil {
		u.DreamDestination = *p.DreamDestination
	}
}
