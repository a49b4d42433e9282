package domain

import "time"

// Package is a curated travel package offered by the site. Packages are not
// owned by any user and are mutated only by admins (create/delete — there is
// no update operation). Activities is an ordered list of activity names;
// booking approval turns it into a day-by-day trip itinerary.
type Package struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Destination string    `json:"destination,omitempty"`
	Price       float64   `json:"price"`
	Duration    string    `json:"duration,omitempty"`
	Description string    `json:"description,omitempty"`
	Image       string    `json:"image,omitempty"`
	Activities  []string  `json:"activities"`
	CreatedAt   time.Time `json:"createdAt"`
}
