// Package handler implements the HTTP handlers for the Voyago API.
// All handlers are methods on Server. Methods are split into entity-specific
// files (auth.go, trip.go, booking.go, ...) but share the same Server struct
// so they can access its dependencies.
package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/voyago/voyago-api/internal/domain"
	"github.com/voyago/voyago-api/internal/middleware"
)

// The interfaces below define the business operations each handler depends
// on. Defining them here, in the consumer package, follows the Go
// convention "accept interfaces, return concrete types" and lets handler
// tests inject a mock without touching the service layer or the store.

// AuthServicer covers registration, login and profile management.
type AuthServicer interface {
	Register(ctx context.Context, username, password, email string) (domain.User, error)
	Login(ctx context.Context, login, password string) (domain.User, string, error)
	UpdateProfile(ctx context.Context, userID string, patch domain.ProfilePatch) (domain.User, error)
}

// TripServicer covers trip CRUD and collaborator invites.
type TripServicer interface {
	Create(ctx context.Context, user domain.User, trip domain.Trip) (domain.Trip, error)
	List(ctx context.Context, user domain.User) ([]domain.Trip, error)
	Get(ctx context.Context, user domain.User, id string) (domain.Trip, error)
	Update(ctx context.Context, user domain.User, id string, patch domain.TripPatch) (domain.Trip, error)
	Delete(ctx context.Context, user domain.User, id string) error
	Invite(ctx context.Context, user domain.User, tripID, username string) (domain.Trip, error)
}

// PackageServicer covers the public catalog and its admin mutations.
type PackageServicer interface {
	List(ctx context.Context) ([]domain.Package, error)
	Create(ctx context.Context, pkg domain.Package) (domain.Package, error)
	Delete(ctx context.Context, id string) error
}

// BookingServicer covers booking requests and the admin approval flow.
type BookingServicer interface {
	Create(ctx context.Context, user domain.User, packageID, customNotes string) (domain.Booking, error)
	ListAll(ctx context.Context) ([]domain.Booking, error)
	ListMine(ctx context.Context, user domain.User) ([]domain.Booking, error)
	SetStatus(ctx context.Context, id string, status domain.BookingStatus, adminResponse, adminNotes string) (domain.Booking, error)
}

// ChecklistServicer covers the per-trip checklists.
type ChecklistServicer interface {
	ListByTrip(ctx context.Context, user domain.User, tripID string) ([]domain.ChecklistItem, error)
	Add(ctx context.Context, user domain.User, tripID, text string) (domain.ChecklistItem, error)
	UpdateItem(ctx context.Context, user domain.User, itemID string, patch domain.ChecklistPatch) (domain.ChecklistItem, error)
	DeleteItem(ctx context.Context, user domain.User, itemID string) error
}

// UserServicer covers the admin account operations.
type UserServicer interface {
	List(ctx context.Context) ([]domain.PublicUser, error)
	CreateAdmin(ctx context.Context, actor domain.User, username, password, email string) (domain.User, error)
	Delete(ctx context.Context, actor domain.User, id string) error
}

// NotificationServicer derives the per-user notification feed.
type NotificationServicer interface {
	ForUser(ctx context.Context, user domain.User, now time.Time) ([]domain.Notification, error)
}

// Server implements every API endpoint. Construct it with NewServer and
// mount Routes on the application router.
type Server struct {
	auth          AuthServicer
	trips         TripServicer
	packages      PackageServicer
	bookings      BookingServicer
	checklists    ChecklistServicer
	users         UserServicer
	notifications NotificationServicer

	authn     *middleware.Authenticator
	authLimit func(http.Handler) http.Handler
	openapi   []byte
}

// NewServer constructs the Server with all its dependencies. authLimit is
// the rate-limit middleware applied to the credential endpoints; pass nil
// to disable throttling (tests do).
func NewServer(
	auth AuthServicer,
	trips TripServicer,
	packages PackageServicer,
	bookings BookingServicer,
	checklists ChecklistServicer,
	users UserServicer,
	notifications NotificationServicer,
	authn *middleware.Authenticator,
	authLimit func(http.Handler) http.Handler,
	openapi []byte,
) *Server {
	return &Server{
		auth:          auth,
		trips:         trips,
		packages:      packages,
		bookings:      bookings,
		checklists:    checklists,
		users:         users,
		notifications: notifications,
		authn:         authn,
		authLimit:     authLimit,
		openapi:       openapi,
	}
}

// Routes builds the full routing table. Authentication and the admin gate
// are applied per group; handlers themselves assume the middleware ran.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/health", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPI)

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				if s.authLimit != nil {
					r.Use(s.authLimit)
				}
				r.Post("/register", s.Register)
				r.Post("/login", s.Login)
			})
			r.Group(func(r chi.Router) {
				r.Use(s.authn.Require)
				r.Get("/me", s.GetMe)
				r.Put("/me", s.UpdateMe)
			})
		})

		r.Route("/packages", func(r chi.Router) {
			r.Get("/", s.ListPackages)
			r.Group(func(r chi.Router) {
				r.Use(s.authn.Require, s.authn.RequireAdmin)
				r.Post("/", s.CreatePackage)
				r.Delete("/{id}", s.DeletePackage)
			})
		})

		r.Route("/trips", func(r chi.Router) {
			r.Use(s.authn.Require)
			r.Get("/", s.ListTrips)
			r.Post("/", s.CreateTrip)
			r.Get("/{id}", s.GetTrip)
			r.Put("/{id}", s.UpdateTrip)
			r.Delete("/{id}", s.DeleteTrip)
			r.Post("/{id}/collaborators", s.InviteCollaborator)
		})

		// The checklist paths share one wildcard: GET/POST interpret it
		// as a trip id, PUT/DELETE as an item id, as the original API
		// shape dictates.
		r.Route("/checklists", func(r chi.Router) {
			r.Use(s.authn.Require)
			r.Get("/{id}", s.ListChecklist)
			r.Post("/{id}", s.AddChecklistItem)
			r.Put("/{id}", s.UpdateChecklistItem)
			r.Delete("/{id}", s.DeleteChecklistItem)
		})

		r.Route("/bookings", func(r chi.Router) {
			r.Use(s.authn.Require)
			r.Post("/", s.CreateBooking)
			r.Get("/my-bookings", s.ListMyBookings)
			r.Group(func(r chi.Router) {
				r.Use(s.authn.RequireAdmin)
				r.Get("/", s.ListBookings)
				r.Put("/{id}", s.UpdateBooking)
			})
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(s.authn.Require, s.authn.RequireAdmin)
			r.Get("/users", s.ListUsers)
			r.Post("/create-admin", s.CreateAdmin)
			r.Delete("/users/{id}", s.DeleteUser)
		})

		r.Group(func(r chi.Router) {
			r.Use(s.authn.Require)
			r.Get("/notifications", s.ListNotifications)
		})
	})

	return r
}

// mustUser returns the authenticated user placed in the context by the
// Authenticator. Routes using it are always behind Require, so a miss is a
// wiring bug, not a client error.
func mustUser(r *http.Request) domain.User {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		panic("handler: route served without authentication middleware")
	}
	return user
}
