package service

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/voyago/voyago-api/internal/domain"
	"github.com/voyago/voyago-api/internal/policy"
	"github.com/voyago/voyago-api/internal/store"
)

// defaultTripImage is the placeholder applied when a trip is created with no
// image of its own.
const defaultTripImage = "https://images.unsplash.com/photo-1502602898657-3e91760cbb34?q=80&w=2073&auto=format&fit=crop"

// TripService implements trip CRUD and collaborator invites, enforcing the
// owner/collaborator access policy on every scoped operation.
type TripService struct {
	store store.Store
}

// NewTripService constructs a TripService.
func NewTripService(st store.Store) *TripService {
	return &TripService{store: st}
}

// Create persists a new trip owned by user. Client-supplied id, owner and
// collaborators are ignored: the id is fresh, the owner is the caller, and
// new trips always start with no collaborators.
func (s *TripService) Create(ctx context.Context, user domain.User, trip domain.Trip) (domain.Trip, error) {
	if strings.TrimSpace(trip.Title) == "" {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w: title is required", domain.ErrValidation)
	}

	trip.ID = uuid.NewString()
	trip.UserID = user.ID
	trip.Collaborators = []string{}
	if trip.Image == "" {
		trip.Image = defaultTripImage
	}
	if trip.Itinerary == nil {
		trip.Itinerary = []domain.ItineraryEntry{}
	}
	trip.CreatedAt = time.Now().UTC()

	err := s.store.Update(ctx, func(doc *domain.Document) error {
		doc.Trips = append(doc.Trips, trip)
		return nil
	})
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}
	return trip, nil
}

// List returns the trips user may see: owned ones plus those shared with
// them as a collaborator. Never returns nil.
func (s *TripService) List(ctx context.Context, user domain.User) ([]domain.Trip, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.TripService.List: %w", err)
	}

	trips := []domain.Trip{}
	for _, t := range doc.Trips {
		if policy.CanAccessTrip(user, t) {
			trips = append(trips, t)
		}
	}
	return trips, nil
}

// Get returns one trip, enforcing access. A missing trip is reported as not
// found before any access consideration.
func (s *TripService) Get(ctx context.Context, user domain.User, id string) (domain.Trip, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Get: %w", err)
	}

	trip := doc.TripByID(id)
	if trip == nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Get: %w: trip not found", domain.ErrNotFound)
	}
	if !policy.CanAccessTrip(user, *trip) {
		return domain.Trip{}, fmt.Errorf("service.TripService.Get: %w: unauthorized access", domain.ErrForbidden)
	}
	return *trip, nil
}

// Update applies the allow-listed merge-patch to a trip the user may access
// and returns the updated trip.
func (s *TripService) Update(ctx context.Context, user domain.User, id string, patch domain.TripPatch) (domain.Trip, error) {
	var updated domain.Trip
	err := s.store.Update(ctx, func(doc *domain.Document) error {
		trip := doc.TripByID(id)
		if trip == nil {
			return fmt.Errorf("%w: trip not found", domain.ErrNotFound)
		}
		if !policy.CanAccessTrip(user, *trip) {
			return fmt.Errorf("%w: unauthorized access", domain.ErrForbidden)
		}
		patch.Apply(trip)
		updated = *trip
		return nil
	})
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}
	return updated, nil
}

// Delete removes a trip and its checklist items. Only the owner may delete;
// collaborators cannot.
func (s *TripService) Delete(ctx context.Context, user domain.User, id string) error {
	err := s.store.Update(ctx, func(doc *domain.Document) error {
		trip := doc.TripByID(id)
		if trip == nil {
			return fmt.Errorf("%w: trip not found", domain.ErrNotFound)
		}
		if !policy.CanDeleteTrip(user, *trip) {
			return fmt.Errorf("%w: only the owner can delete a trip", domain.ErrForbidden)
		}

		trips := doc.Trips[:0]
		for _, t := range doc.Trips {
			if t.ID != id {
				trips = append(trips, t)
			}
		}
		doc.Trips = trips

		// Checklist items are owned by the trip; orphans would be
		// unreachable, so remove them in the same write.
		items := doc.Checklists[:0]
		for _, item := range doc.Checklists {
			if item.TripID != id {
				items = append(items, item)
			}
		}
		doc.Checklists = items
		return nil
	})
	if err != nil {
		return fmt.Errorf("service.TripService.Delete: %w", err)
	}
	return nil
}

// Invite adds the named user to the trip's collaborators. Only the owner may
// invite, the target username must exist, and inviting an existing
// collaborator is a no-op.
func (s *TripService) Invite(ctx context.Context, user domain.User, tripID, username string) (domain.Trip, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return domain.Trip{}, fmt.Errorf("service.TripService.Invite: %w: username is required", domain.ErrValidation)
	}

	var updated domain.Trip
	err := s.store.Update(ctx, func(doc *domain.Document) error {
		trip := doc.TripByID(tripID)
		if trip == nil {
			return fmt.Errorf("%w: trip not found", domain.ErrNotFound)
		}
		if trip.UserID != user.ID {
			return fmt.Errorf("%w: only the owner can invite collaborators", domain.ErrForbidden)
		}
		if doc.UserByUsername(username) == nil {
			return fmt.Errorf("%w: user not found", domain.ErrNotFound)
		}

		if !slices.Contains(trip.Collaborators, username) {
			trip.Collaborators = append(trip.Collaborators, username)
		}
		updated = *trip
		return nil
	})
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Invite: %w", err)
	}
	return updated, nil
}
