package policy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/voyago/voyago-api/internal/domain"
	"github.com/voyago/voyago-api/internal/policy"
)

var (
	owner        = domain.User{ID: "u-owner", Username: "alice", Role: domain.RoleUser}
	collaborator = domain.User{ID: "u-collab", Username: "bob", Role: domain.RoleUser}
	stranger     = domain.User{ID: "u-other", Username: "carol", Role: domain.RoleUser}
	admin        = domain.User{ID: "u-admin", Username: "root", Role: domain.RoleAdmin}
	superAdmin   = domain.User{ID: "u-super", Username: "boss", Role: domain.RoleAdmin, IsSuperAdmin: true}
)

func sharedTrip() domain.Trip {
	return domain.Trip{ID: "t1", UserID: owner.ID, Collaborators: []string{"bob"}}
}

func TestCanAccessTrip(t *testing.T) {
	trip := sharedTrip()

	assert.True(t, policy.CanAccessTrip(owner, trip))
	assert.True(t, policy.CanAccessTrip(collaborator, trip))
	assert.False(t, policy.CanAccessTrip(stranger, trip))
	// Admin rights grant no trip access — trips are strictly personal.
	assert.False(t, policy.CanAccessTrip(admin, trip))
}

func TestCanDeleteTrip_OwnerOnly(t *testing.T) {
	trip := sharedTrip()

	assert.True(t, policy.CanDeleteTrip(owner, trip))
	assert.False(t, policy.CanDeleteTrip(collaborator, trip))
	assert.False(t, policy.CanDeleteTrip(stranger, trip))
}

func TestIsAdmin(t *testing.T) {
	assert.True(t, policy.IsAdmin(admin))
	assert.True(t, policy.IsAdmin(superAdmin))
	assert.False(t, policy.IsAdmin(owner))

	// The super-admin flag counts even if the role field is off.
	odd := domain.User{ID: "u-odd", Role: domain.RoleUser, IsSuperAdmin: true}
	assert.True(t, policy.IsAdmin(odd))
}

func TestCanDeleteUser(t *testing.T) {
	assert.True(t, policy.CanDeleteUser(admin, stranger))
	assert.True(t, policy.CanDeleteUser(superAdmin, admin))
	assert.False(t, policy.CanDeleteUser(stranger, admin))

	// No actor may delete a super-admin, however privileged.
	assert.False(t, policy.CanDeleteUser(admin, superAdmin))
	assert.False(t, policy.CanDeleteUser(superAdmin, superAdmin))
}

func TestCanCreateAdmin(t *testing.T) {
	assert.True(t, policy.CanCreateAdmin(superAdmin))
	assert.False(t, policy.CanCreateAdmin(admin))
	assert.False(t, policy.CanCreateAdmin(stranger))
}
