package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/voyago/voyago-api/internal/domain"
	"github.com/voyago/voyago-api/internal/store"
)

// customRequestTitle is the packageTitle snapshot for bookings that name no
// resolvable package.
const customRequestTitle = "Custom Request"

// customTripImage decorates trips materialized from custom booking requests.
const customTripImage = "https://images.unsplash.com/photo-1469854523086-cc02fe5d8800?w=800&auto=format&fit=crop"

// BookingService implements booking requests and the admin approval flow.
//
// New bookings start pending and wait for an admin decision. The first
// transition to approved materializes exactly one trip for the booking's
// owner; the booking's TripCreatedID guard makes re-approval a no-op.
type BookingService struct {
	store store.Store
}

// NewBookingService constructs a BookingService.
func NewBookingService(st store.Store) *BookingService {
	return &BookingService{store: st}
}

// Create records a booking request by user. packageID may be empty for a
// custom request; a packageID that resolves to nothing is treated as custom
// rather than rejected, matching the catalog's fluid lifetime. The package
// title is snapshotted now and never recomputed.
func (s *BookingService) Create(ctx context.Context, user domain.User, packageID, customNotes string) (domain.Booking, error) {
	booking := domain.Booking{
		ID:          uuid.NewString(),
		UserID:      user.ID,
		Username:    user.Username,
		PackageID:   packageID,
		Status:      domain.BookingPending,
		CustomNotes: customNotes,
		CreatedAt:   time.Now().UTC(),
	}

	err := s.store.Update(ctx, func(doc *domain.Document) error {
		booking.PackageTitle = customRequestTitle
		if packageID != "" {
			if pkg := doc.PackageByID(packageID); pkg != nil {
				booking.PackageTitle = pkg.Title
			}
		}
		doc.Bookings = append(doc.Bookings, booking)
		return nil
	})
	if err != nil {
		return domain.Booking{}, fmt.Errorf("service.BookingService.Create: %w", err)
	}
	return booking, nil
}

// ListAll returns every booking, for the admin dashboard. Never returns nil.
func (s *BookingService) ListAll(ctx context.Context) ([]domain.Booking, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.BookingService.ListAll: %w", err)
	}
	if doc.Bookings == nil {
		return []domain.Booking{}, nil
	}
	return doc.Bookings, nil
}

// ListMine returns the bookings owned by user. Never returns nil.
func (s *BookingService) ListMine(ctx context.Context, user domain.User) ([]domain.Booking, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.BookingService.ListMine: %w", err)
	}

	mine := []domain.Booking{}
	for _, b := range doc.Bookings {
		if b.UserID == user.ID {
			mine = append(mine, b)
		}
	}
	return mine, nil
}

// SetStatus transitions a booking to status and records the admin's
// response. A transition to approved synthesizes the booking's trip exactly
// once: if TripCreatedID is already set — from an earlier approval, even one
// later reverted — no second trip is created.
func (s *BookingService) SetStatus(ctx context.Context, id string, status domain.BookingStatus, adminResponse, adminNotes string) (domain.Booking, error) {
	if !status.Valid() {
		return domain.Booking{}, fmt.Errorf("service.BookingService.SetStatus: %w: invalid status %q", domain.ErrValidation, status)
	}

	var updated domain.Booking
	err := s.store.Update(ctx, func(doc *domain.Document) error {
		booking := doc.BookingByID(id)
		if booking == nil {
			return fmt.Errorf("%w: booking not found", domain.ErrNotFound)
		}

		booking.Status = status
		if adminResponse != "" {
			booking.AdminResponse = adminResponse
		}
		if adminNotes != "" {
			booking.AdminNotes = adminNotes
		}

		if status == domain.BookingApproved && booking.TripCreatedID == "" {
			trip := materializeTrip(doc, *booking)
			doc.Trips = append(doc.Trips, trip)
			booking.TripCreatedID = trip.ID
		}

		updated = *booking
		return nil
	})
	if err != nil {
		return domain.Booking{}, fmt.Errorf("service.BookingService.SetStatus: %w", err)
	}
	return updated, nil
}

// materializeTrip builds the trip an approved booking turns into.
//
// When the booking's package still exists, the trip inherits its title,
// image and description, and each package activity becomes one itinerary
// entry on a consecutive numbered day. Otherwise the trip is a blank shell
// described by the booking's custom notes.
func materializeTrip(doc *domain.Document, booking domain.Booking) domain.Trip {
	trip := domain.Trip{
		ID:            uuid.NewString(),
		UserID:        booking.UserID,
		Dates:         "Dates TBD",
		Collaborators: []string{},
		Itinerary:     []domain.ItineraryEntry{},
		CreatedAt:     time.Now().UTC(),
	}

	var pkg *domain.Package
	if booking.PackageID != "" {
		pkg = doc.PackageByID(booking.PackageID)
	}

	if pkg != nil {
		trip.Title = pkg.Title
		trip.Destination = pkg.Destination
		trip.Description = pkg.Description
		trip.Image = pkg.Image
		if trip.Image == "" {
			trip.Image = defaultTripImage
		}
		for i, activity := range pkg.Activities {
			trip.Itinerary = append(trip.Itinerary, domain.ItineraryEntry{
				Day:   fmt.Sprintf("Day %d", i+1),
				Title: activity,
				Notes: "Included in package",
			})
		}
		return trip
	}

	// Custom request, or the package vanished between booking and
	// approval. The snapshot title keeps the trip recognizable.
	if booking.PackageTitle != "" && booking.PackageTitle != customRequestTitle {
		trip.Title = "Custom Trip: " + booking.PackageTitle
	} else {
		trip.Title = "Custom Trip: My Custom Adventure"
	}
	trip.Image = customTripImage
	trip.Description = booking.CustomNotes
	if trip.Description == "" {
		trip.Description = "Custom trip request."
	}
	return trip
}
