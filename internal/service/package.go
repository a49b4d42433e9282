package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/voyago/voyago-api/internal/domain"
	"github.com/voyago/voyago-api/internal/store"
)

// PackageService implements the curated-package catalog. Reading is public;
// create and delete are admin-only and gated at the route level, so the
// service itself takes no acting user.
type PackageService struct {
	store store.Store
}

// NewPackageService constructs a PackageService.
func NewPackageService(st store.Store) *PackageService {
	return &PackageService{store: st}
}

// List returns every package. Never returns nil.
func (s *PackageService) List(ctx context.Context) ([]domain.Package, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.PackageService.List: %w", err)
	}
	if doc.Packages == nil {
		return []domain.Package{}, nil
	}
	return doc.Packages, nil
}

// Create persists a new package with a fresh id.
func (s *PackageService) Create(ctx context.Context, pkg domain.Package) (domain.Package, error) {
	if strings.TrimSpace(pkg.Title) == "" {
		return domain.Package{}, fmt.Errorf("service.PackageService.Create: %w: title is required", domain.ErrValidation)
	}

	pkg.ID = uuid.NewString()
	if pkg.Activities == nil {
		pkg.Activities = []string{}
	}
	pkg.CreatedAt = time.Now().UTC()

	err := s.store.Update(ctx, func(doc *domain.Document) error {
		doc.Packages = append(doc.Packages, pkg)
		return nil
	})
	if err != nil {
		return domain.Package{}, fmt.Errorf("service.PackageService.Create: %w", err)
	}
	return pkg, nil
}

// Delete removes a package by id. Existing bookings and trips that reference
// the package are left untouched — their packageTitle snapshots are the
// record of what was booked.
func (s *PackageService) Delete(ctx context.Context, id string) error {
	err := s.store.Update(ctx, func(doc *domain.Document) error {
		if doc.PackageByID(id) == nil {
			return fmt.Errorf("%w: package not found", domain.ErrNotFound)
		}
		pkgs := doc.Packages[:0]
		for _, p := range doc.Packages {
			if p.ID != id {
				pkgs = append(pkgs, p)
			}
		}
		doc.Packages = pkgs
		return nil
	})
	if err != nil {
		return fmt.Errorf("service.PackageService.Delete: %w", err)
	}
	return nil
}
