package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/voyago/voyago-api/internal/domain"
	"github.com/voyago/voyago-api/internal/policy"
	"github.com/voyago/voyago-api/internal/store"
)

// ChecklistService implements the per-trip checklists. Every operation
// resolves the parent trip first and applies the trip access policy; a
// missing parent trip is a not-found error, not an empty result.
type ChecklistService struct {
	store store.Store
}

// NewChecklistService constructs a ChecklistService.
func NewChecklistService(st store.Store) *ChecklistService {
	return &ChecklistService{store: st}
}

// ListByTrip returns the checklist items of a trip the user may access.
// Never returns nil.
func (s *ChecklistService) ListByTrip(ctx context.Context, user domain.User, tripID string) ([]domain.ChecklistItem, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ChecklistService.ListByTrip: %w", err)
	}
	if err := checkTripAccess(&doc, user, tripID); err != nil {
		return nil, fmt.Errorf("service.ChecklistService.ListByTrip: %w", err)
	}

	items := []domain.ChecklistItem{}
	for _, item := range doc.Checklists {
		if item.TripID == tripID {
			items = append(items, item)
		}
	}
	return items, nil
}

// Add appends a new incomplete item to the trip's checklist.
func (s *ChecklistService) Add(ctx context.Context, user domain.User, tripID, text string) (domain.ChecklistItem, error) {
	if strings.TrimSpace(text) == "" {
		return domain.ChecklistItem{}, fmt.Errorf("service.ChecklistService.Add: %w: text is required", domain.ErrValidation)
	}

	item := domain.ChecklistItem{
		ID:        uuid.NewString(),
		TripID:    tripID,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}

	err := s.store.Update(ctx, func(doc *domain.Document) error {
		if err := checkTripAccess(doc, user, tripID); err != nil {
			return err
		}
		doc.Checklists = append(doc.Checklists, item)
		return nil
	})
	if err != nil {
		return domain.ChecklistItem{}, fmt.Errorf("service.ChecklistService.Add: %w", err)
	}
	return item, nil
}

// UpdateItem applies the allow-listed patch to one item, after re-checking
// access through the item's parent trip.
func (s *ChecklistService) UpdateItem(ctx context.Context, user domain.User, itemID string, patch domain.ChecklistPatch) (domain.ChecklistItem, error) {
	var updated domain.ChecklistItem
	err := s.store.Update(ctx, func(doc *domain.Document) error {
		item := doc.ChecklistItemByID(itemID)
		if item == nil {
			return fmt.Errorf("%w: item not found", domain.ErrNotFound)
		}
		if err := checkTripAccess(doc, user, item.TripID); err != nil {
			return err
		}
		patch.Apply(item)
		updated = *item
		return nil
	})
	if err != nil {
		return domain.ChecklistItem{}, fmt.Errorf("service.ChecklistService.UpdateItem: %w", err)
	}
	return updated, nil
}

// DeleteItem removes one item, after re-checking access through its parent
// trip.
func (s *ChecklistService) DeleteItem(ctx context.Context, user domain.User, itemID string) error {
	err := s.store.Update(ctx, func(doc *domain.Document) error {
		item := doc.ChecklistItemByID(itemID)
		if item == nil {
			return fmt.Errorf("%w: item not found", domain.ErrNotFound)
		}
		if err := checkTripAccess(doc, user, item.TripID); err != nil {
			return err
		}

		items := doc.Checklists[:0]
		for _, it := range doc.Checklists {
			if it.ID != itemID {
				items = append(items, it)
			}
		}
		doc.Checklists = items
		return nil
	})
	if err != nil {
		return fmt.Errorf("service.ChecklistService.DeleteItem: %w", err)
	}
	return nil
}

// checkTripAccess resolves tripID and applies the trip access policy.
// Access to a checklist is exactly access to its parent trip.
func checkTripAccess(doc *domain.Document, user domain.User, tripID string) error {
	trip := doc.TripByID(tripID)
	if trip == nil {
		return fmt.Errorf("%w: trip not found", domain.ErrNotFound)
	}
	if !policy.CanAccessTrip(user, *trip) {
		return fmt.Errorf("%w: unauthorized access to trip", domain.ErrForbidden)
	}
	return nil
}
