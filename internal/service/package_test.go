package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voyago/voyago-api/internal/domain"
	"github.com/voyago/voyago-api/internal/service"
	"github.com/voyago/voyago-api/internal/store"
)

func TestPackageService_List_NeverNil(t *testing.T) {
	svc := service.NewPackageService(store.NewMemory(domain.Document{}))

	pkgs, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, pkgs)
	assert.Empty(t, pkgs)
}

func TestPackageService_Create(t *testing.T) {
	st := store.NewMemory(domain.Document{})
	svc := service.NewPackageService(st)

	pkg, err := svc.Create(context.Background(), domain.Package{
		ID:          "client-chosen", // must be ignored
		Title:       "Paris Getaway",
		Destination: "Paris, France",
	})

	require.NoError(t, err)
	assert.NotEqual(t, "client-chosen", pkg.ID)
	assert.NotNil(t, pkg.Activities)
	assert.False(t, pkg.CreatedAt.IsZero())

	pkgs, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, pkgs, 1)
}

func TestPackageService_Create_TitleRequired(t *testing.T) {
	svc := service.NewPackageService(store.NewMemory(domain.Document{}))

	_, err := svc.Create(context.Background(), domain.Package{Title: "  "})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestPackageService_Delete(t *testing.T) {
	st := store.NewMemory(domain.Document{Packages: []domain.Package{parisPackage()}})
	svc := service.NewPackageService(st)

	require.NoError(t, svc.Delete(context.Background(), "p1"))

	pkgs, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, pkgs)

	err = svc.Delete(context.Background(), "p1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPackageService_Delete_LeavesBookingsIntact(t *testing.T) {
	st := store.NewMemory(domain.Document{
		Packages: []domain.Package{parisPackage()},
		Bookings: []domain.Booking{
			{ID: "b1", UserID: alice.ID, PackageID: "p1", PackageTitle: "Paris Getaway"},
		},
	})
	svc := service.NewPackageService(st)

	require.NoError(t, svc.Delete(context.Background(), "p1"))

	doc, err := st.Load(context.Background())
	require.NoError(t, err)
	// The booking and its title snapshot survive the catalog delete.
	require.Len(t, doc.Bookings, 1)
	assert.Equal(t, "Paris Getaway", doc.Bookings[0].PackageTitle)
}
