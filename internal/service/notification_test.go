package service_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voyago/voyago-api/internal/domain"
	"github.com/voyago/voyago-api/internal/service"
	"github.com/voyago/voyago-api/internal/store"
)

func TestNotificationService_ForUser_PhaseOrder(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	st := store.NewMemory(domain.Document{
		Trips: []domain.Trip{
			// Shared with alice by bob — phase one.
			{ID: "t-shared", UserID: bob.ID, Title: "Alps Hike", Collaborators: []string{"alice"}},
			// Owned by alice, dated next year — phase two.
			{ID: "t-upcoming", UserID: alice.ID, Title: "Kyoto in Autumn", Dates: "November 2027"},
			// Owned by alice, dated in the past — no reminder.
			{ID: "t-past", UserID: alice.ID, Title: "Old Rome Trip", Dates: "May 2019"},
		},
		Bookings: []domain.Booking{
			// Approved booking — phase three.
			{ID: "b1", UserID: alice.ID, Status: domain.BookingApproved, PackageTitle: "Paris Getaway",
				CreatedAt: now.Add(-24 * time.Hour)},
			// Pending booking — excluded.
			{ID: "b2", UserID: alice.ID, Status: domain.BookingPending, PackageTitle: "Bali Escape"},
			// Someone else's approved booking — excluded.
			{ID: "b3", UserID: bob.ID, Status: domain.BookingApproved, PackageTitle: "Safari"},
		},
	})
	svc := service.NewNotificationService(st)

	feed, err := svc.ForUser(context.Background(), alice, now)

	require.NoError(t, err)
	require.Len(t, feed, 3)

	assert.Equal(t, domain.NotificationInvite, feed[0].Type)
	assert.Contains(t, feed[0].Text, "Alps Hike")
	assert.Equal(t, "trip-details.html?id=t-shared", feed[0].Link)

	assert.Equal(t, domain.NotificationReminder, feed[1].Type)
	assert.Contains(t, feed[1].Text, "Kyoto in Autumn")

	assert.Equal(t, domain.NotificationBooking, feed[2].Type)
	assert.Contains(t, feed[2].Text, "Paris Getaway")
	assert.Equal(t, "dashboard.html", feed[2].Link)
}

func TestNotificationService_ForUser_Empty(t *testing.T) {
	svc := service.NewNotificationService(store.NewMemory(domain.Document{}))

	feed, err := svc.ForUser(context.Background(), alice, time.Now())

	require.NoError(t, err)
	assert.NotNil(t, feed)
	assert.Empty(t, feed)
}

func TestNotificationService_ForUser_BookingCap(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	doc := domain.Document{}
	for i := 0; i < 8; i++ {
		doc.Bookings = append(doc.Bookings, domain.Booking{
			ID:           fmt.Sprintf("b%d", i),
			UserID:       alice.ID,
			Status:       domain.BookingApproved,
			PackageTitle: fmt.Sprintf("Package %d", i),
			CreatedAt:    now.Add(time.Duration(i) * time.Hour),
		})
	}
	svc := service.NewNotificationService(store.NewMemory(doc))

	feed, err := svc.ForUser(context.Background(), alice, now)

	require.NoError(t, err)
	// Only the five newest approved bookings appear, oldest of those first.
	require.Len(t, feed, 5)
	assert.Contains(t, feed[0].Text, "Package 3")
	assert.Contains(t, feed[4].Text, "Package 7")
}

func TestNotificationService_ForUser_OwnSharedTripNotAnInvite(t *testing.T) {
	// A trip alice owns never shows as an invite, even if her own username
	// somehow appears among the collaborators.
	st := store.NewMemory(domain.Document{
		Trips: []domain.Trip{
			{ID: "t1", UserID: alice.ID, Title: "Odd Data", Collaborators: []string{"alice"}},
		},
	})
	svc := service.NewNotificationService(st)

	feed, err := svc.ForUser(context.Background(), alice, time.Now())

	require.NoError(t, err)
	assert.Empty(t, feed)
}

func TestNotificationService_UpcomingHeuristic(t *testing.T) {
	now := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)

	for _, tc := range []struct {
		dates string
		want  bool
	}{
		{"Summer 2027", true},
		{"Jun 10-20, 2026", false}, // same year does not count as upcoming
		{"May 2019", false},
		{"sometime soon", false}, // no year token at all
		{"2025 or maybe 2028", true},
		{"", false},
	} {
		st := store.NewMemory(domain.Document{
			Trips: []domain.Trip{{ID: "t1", UserID: alice.ID, Title: "Trip", Dates: tc.dates}},
		})
		feed, err := service.NewNotificationService(st).ForUser(context.Background(), alice, now)
		require.NoError(t, err)
		if tc.want {
			assert.Len(t, feed, 1, "dates %q", tc.dates)
		} else {
			assert.Empty(t, feed, "dates %q", tc.dates)
		}
	}
}
