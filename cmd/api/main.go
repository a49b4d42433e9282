// Package main is the entry point for the Voyago API server.
// Its sole responsibility is wiring dependencies together and starting the
// server. No business logic belongs here.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/time/rate"

	"github.com/voyago/voyago-api/internal/config"
	"github.com/voyago/voyago-api/internal/domain"
	"github.com/voyago/voyago-api/internal/handler"
	"github.com/voyago/voyago-api/internal/middleware"
	"github.com/voyago/voyago-api/internal/service"
	"github.com/voyago/voyago-api/internal/store"
	"github.com/voyago/voyago-api/internal/token"
	"github.com/voyago/voyago-api/spec"
)

// maxBodyBytes caps request bodies. The largest legitimate payload is a
// trip with a long itinerary, far below 1 MiB.
const maxBodyBytes = 1 << 20

func main() {
	// --- Config -----------------------------------------------------------
	// .env is a development convenience; absence is not an error.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("could not load .env file", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	// log/slog with a JSON handler writes machine-readable output suitable
	// for log aggregators.
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// --- Store ------------------------------------------------------------
	// A missing data file is fine — it is created on first write — but an
	// unreadable or corrupt one should stop the server before it accepts
	// traffic.
	st := store.NewFileStore(cfg.DataFile)
	if _, err := st.Load(context.Background()); err != nil {
		slog.Error("failed to open document store", "path", cfg.DataFile, "error", err)
		os.Exit(1)
	}
	slog.Info("document store ready", "path", cfg.DataFile)

	if err := seedSuperAdmin(context.Background(), st, cfg.AdminUsername, cfg.AdminPassword); err != nil {
		slog.Error("failed to seed super admin", "error", err)
		os.Exit(1)
	}

	// --- Services ---------------------------------------------------------
	tokens := token.NewManager([]byte(cfg.JWTSecret), cfg.TokenTTL)
	authn := middleware.NewAuthenticator(tokens, st)

	// 1 req/s with burst 5 per client IP on the credential endpoints.
	authLimiter := middleware.NewRateLimiter(rate.Limit(1), 5)

	srvHandler := handler.NewServer(
		service.NewAuthService(st, tokens),
		service.NewTripService(st),
		service.NewPackageService(st),
		service.NewBookingService(st),
		service.NewChecklistService(st),
		service.NewUserService(st),
		service.NewNotificationService(st),
		authn,
		authLimiter.Limit,
		spec.OpenAPI,
	)

	// --- Router -----------------------------------------------------------
	// Middleware order: RequestID → RealIP → Logger → Recoverer → CORS →
	// body limit. RealIP must precede the rate limiter buried in the auth
	// routes so limits key on the true client address.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(maxBodyBytes))
	r.Mount("/", srvHandler.Routes())

	// --- HTTP Server ------------------------------------------------------
	// Explicit timeouts prevent slowloris and resource exhaustion attacks.
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown: wait for an OS signal, then give in-flight
	// requests up to 15 seconds to complete before closing.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

// seedSuperAdmin creates the initial super-admin account when the store
// holds no users at all. A populated store is never touched, so the seed
// credentials only matter on first boot.
func seedSuperAdmin(ctx context.Context, st store.Store, username, password string) error {
	if username == "" || password == "" {
		return nil
	}

	return st.Update(ctx, func(doc *domain.Document) error {
		if len(doc.Users) > 0 {
			return nil
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash seed password: %w", err)
		}
		doc.Users = append(doc.Users, domain.User{
			ID:           uuid.NewString(),
			Username:     username,
			PasswordHash: string(hash),
			Role:         domain.RoleAdmin,
			IsSuperAdmin: true,
			CreatedAt:    time.Now().UTC(),
		})
		slog.Info("seeded super admin", "username", username)
		return nil
	})
}
