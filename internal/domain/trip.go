package domain

import "time"

// ItineraryEntry is one planned day (or free-form slot) of a trip.
type ItineraryEntry struct {
	Day   string `json:"day"`
	Title string `json:"title"`
	Notes string `json:"notes,omitempty"`
}

// Trip is a personal travel plan. UserID is the owner and is immutable after
// creation. Collaborators holds usernames granted shared access; order is
// irrelevant. Dates is free text ("June 2026"), not a structured date — see
// the notification service for the one place that interprets it.
type Trip struct {
	ID            string           `json:"id"`
	UserID        string           `json:"userId"`
	Title         string           `json:"title"`
	Destination   string           `json:"destination,omitempty"`
	Dates         string           `json:"dates,omitempty"`
	Image         string           `json:"image,omitempty"`
	Description   string           `json:"description,omitempty"`
	Collaborators []string         `json:"collaborators"`
	Itinerary     []ItineraryEntry `json:"itinerary"`
	CreatedAt     time.Time        `json:"createdAt"`
}

// TripPatch is the allow-listed merge-patch for PUT /api/trips/{id}.
// Nil fields are left untouched. ID, UserID, Collaborators and CreatedAt are
// not patchable: the owner is immutable and collaborators change only through
// the invite endpoint.
type TripPatch struct {
	Title       *string           `json:"title,omitempty"`
	Destination *string           `json:"destination,omitempty"`
	Dates       *string           `json:"dates,omitempty"`
	Image       *string           `json:"image,omitempty"`
	Description *string           `json:"description,omitempty"`
	Itinerary   *[]ItineraryEntry `json:"itinerary,omitempty"`
}

// Apply copies the non-nil patch fields onto t.
func (p TripPatch) Apply(t *Trip) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Destination != nil {
		t.Destination = *p.Destination
	}
	if p.Dates != nil {
		t.Dates = *p.Dates
	}
	if p.Image != nil {
		t.Image = *p.Image
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Itinerary != nil {
		t.Itinerary = *p.Itinerary
	}
}
