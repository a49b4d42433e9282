package domain

import "time"

// BookingStatus is the lifecycle state of a booking request.
type BookingStatus string

const (
	BookingPending      BookingStatus = "pending"
	BookingApproved     BookingStatus = "approved"
	BookingRejected     BookingStatus = "rejected"
	BookingInfoRequired BookingStatus = "info_required"
)

// Valid reports whether s is one of the known booking statuses.
func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingApproved, BookingRejected, BookingInfoRequired:
		return true
	}
	return false
}

// Booking is a user's request to book a package (PackageID set) or a custom
// trip (PackageID empty).
//
// PackageTitle is a snapshot resolved when the booking is created; it is
// never recomputed, so it goes stale if the package is later deleted. That
// is intentional — the booking records what the user asked for.
//
// TripCreatedID is the idempotency guard for trip synthesis: it is set to
// the ID of the trip materialized on the first transition to approved, and
// a booking with a non-empty TripCreatedID never produces a second trip.
type Booking struct {
	ID            string        `json:"id"`
	UserID        string        `json:"userId"`
	Username      string        `json:"username"`
	PackageID     string        `json:"packageId,omitempty"`
	PackageTitle  string        `json:"packageTitle"`
	Status        BookingStatus `json:"status"`
	CustomNotes   string        `json:"customNotes,omitempty"`
	AdminResponse string        `json:"adminResponse,omitempty"`
	AdminNotes    string        `json:"adminNotes,omitempty"`
	TripCreatedID string        `json:"tripCreatedId,omitempty"`
	CreatedAt     time.Time     `json:"createdAt"`
}
