package domain

import "time"

// ChecklistItem is a packing/preparation item attached to a trip.
// Access is derived transitively through the parent trip: whoever may access
// the trip may create, read, update and delete its checklist items.
type ChecklistItem struct {
	ID         string    `json:"id"`
	TripID     string    `json:"tripId"`
	Text       string    `json:"text"`
	IsComplete bool      `json:"isComplete"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ChecklistPatch is the allow-listed merge-patch for a checklist item.
// Nil fields are left untouched.
type ChecklistPatch struct {
	Text       *string `json:"text,omitempty"`
	IsComplete *bool   `json:"isComplete,omitempty"`
}

// Apply copies the non-nil patch fields onto item.
func (p ChecklistPatch) Apply(item *ChecklistItem) {
	if p.Text != nil {
		item.Text = *p.Text
	}
	if p.IsComplete != nil {
		item.IsComplete = *p.IsComplete
	}
}
