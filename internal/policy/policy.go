// Package policy holds the access-control rules for every entity type.
// All functions are pure: they inspect the acting user and the target record
// and return a verdict, with no I/O and no side effects. Services consult
// them before any store mutation begins, so a denial never leaves a partial
// write behind.
package policy

import (
	"slices"

	"github.com/voyago/voyago-api/internal/domain"
)

// CanAccessTrip reports whether user may read or mutate trip: the owner and
// every invited collaborator have access.
func CanAccessTrip(user domain.User, trip domain.Trip) bool {
	return trip.UserID == user.ID || slices.Contains(trip.Collaborators, user.Username)
}

// CanDeleteTrip reports whether user may delete trip. Only the owner may;
// collaborators cannot.
func CanDeleteTrip(user domain.User, trip domain.Trip) bool {
	return trip.UserID == user.ID
}

// IsAdmin reports whether user holds admin rights. A super-admin counts as
// an admin regardless of role.
func IsAdmin(user domain.User) bool {
	return user.Role == domain.RoleAdmin || user.IsSuperAdmin
}

// CanDeleteUser reports whether actor may delete target. Admins may delete
// any account except a super-admin, which no actor may delete.
func CanDeleteUser(actor, target domain.User) bool {
	return IsAdmin(actor) && !target.IsSuperAdmin
}

// CanCreateAdmin reports whether actor may create new admin accounts.
// Reserved for the super-admin.
func CanCreateAdmin(actor domain.User) bool {
	return IsAdmin(actor) && actor.IsSuperAdmin
}
