package domain

// Notification types. Notifications are ephemeral: they are derived from
// trips and bookings at request time and never persisted.
const (
	NotificationInvite   = "invite"
	NotificationReminder = "reminder"
	NotificationBooking  = "booking"
)

// Notification is one entry in the per-request notification feed.
// Time is display text, not a structured timestamp, matching the feed's
// best-effort nature ("Recently", "Soon", or a formatted date).
type Notification struct {
	Type string `json:"type"`
	Text string `json:"text"`
	Time string `json:"time"`
	Link string `json:"link"`
}
