package service

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"time"

	"github.com/voyago/voyago-api/internal/domain"
	"github.com/voyago/voyago-api/internal/store"
)

// maxBookingNotifications caps phase three of the feed at the five most
// recently created approved bookings.
const maxBookingNotifications = 5

// NotificationService derives the per-user notification feed. Nothing is
// persisted: every request scans the user's trips and bookings fresh, in
// three fixed phases — collaboration invites, upcoming-trip reminders,
// recent booking confirmations.
type NotificationService struct {
	store store.Store
}

// NewNotificationService constructs a NotificationService.
func NewNotificationService(st store.Store) *NotificationService {
	return &NotificationService{store: st}
}

// ForUser builds the feed for user as of now. Entries appear in phase
// order; within a phase, in document order (booking confirmations oldest of
// the retained five first). Never returns nil.
func (s *NotificationService) ForUser(ctx context.Context, user domain.User, now time.Time) ([]domain.Notification, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.NotificationService.ForUser: %w", err)
	}

	feed := []domain.Notification{}

	// Phase one: trips shared with the user.
	for _, t := range doc.Trips {
		if t.UserID == user.ID {
			continue
		}
		for _, c := range t.Collaborators {
			if c == user.Username {
				feed = append(feed, domain.Notification{
					Type: domain.NotificationInvite,
					Text: fmt.Sprintf("You have access to trip: %q", t.Title),
					Time: "Recently",
					Link: "trip-details.html?id=" + t.ID,
				})
				break
			}
		}
	}

	// Phase two: owned trips that look upcoming.
	for _, t := range doc.Trips {
		if t.UserID == user.ID && isUpcoming(t.Dates, now) {
			feed = append(feed, domain.Notification{
				Type: domain.NotificationReminder,
				Text: fmt.Sprintf("Upcoming trip: %q", t.Title),
				Time: "Soon",
				Link: "trip-details.html?id=" + t.ID,
			})
		}
	}

	// Phase three: the user's most recent approved bookings.
	approved := []domain.Booking{}
	for _, b := range doc.Bookings {
		if b.UserID == user.ID && b.Status == domain.BookingApproved {
			approved = append(approved, b)
		}
	}
	sort.SliceStable(approved, func(i, j int) bool {
		return approved[i].CreatedAt.Before(approved[j].CreatedAt)
	})
	if len(approved) > maxBookingNotifications {
		approved = approved[len(approved)-maxBookingNotifications:]
	}
	for _, b := range approved {
		feed = append(feed, domain.Notification{
			Type: domain.NotificationBooking,
			Text: fmt.Sprintf("Booking Confirmed: %q", b.PackageTitle),
			Time: b.CreatedAt.Format("2006-01-02"),
			Link: "dashboard.html",
		})
	}

	return feed, nil
}

// yearPattern matches four-digit year tokens inside a free-text dates field.
var yearPattern = regexp.MustCompile(`\b(\d{4})\b`)

// isUpcoming decides whether a trip's free-text dates field describes a
// future trip. The dates field is unstructured ("Summer 2027", "Jun 10-20,
// 2026"), so this is a substring-year heuristic: the trip counts as
// upcoming when any year token is later than now's year. Callers go through
// this function only, so a structured date model can replace the heuristic
// in one place.
func isUpcoming(dates string, now time.Time) bool {
	for _, match := range yearPattern.FindAllString(dates, -1) {
		year, err := strconv.Atoi(match)
		if err != nil {
			continue
		}
		if year > now.Year() {
			return true
		}
	}
	return false
}
