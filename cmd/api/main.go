// Copyright (c) 2026 Urugo Women's Opportunity Center. All rights reserved.

// Command api is the entry point for the Urugo HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Run database migrations (idempotent).
//  4. Connect to PostgreSQL (pgxpool).
//  5. Connect to Redis.
//  6. Wire HTTP handlers.
//  7. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/urugowoc/urugo/internal/api"
	"github.com/urugowoc/urugo/internal/commerce/dining"
	"github.com/urugowoc/urugo/internal/commerce/document"
	"github.com/urugowoc/urugo/internal/commerce/donation"
	"github.com/urugowoc/urugo/internal/commerce/listing"
	"github.com/urugowoc/urugo/internal/commerce/order"
	"github.com/urugowoc/urugo/internal/commerce/partner"
	"github.com/urugowoc/urugo/internal/content/about"
	"github.com/urugowoc/urugo/internal/content/contact"
	"github.com/urugowoc/urugo/internal/content/media"
	"github.com/urugowoc/urugo/internal/content/post"
	"github.com/urugowoc/urugo/internal/content/slider"
	"github.com/urugowoc/urugo/internal/content/social"
	"github.com/urugowoc/urugo/internal/content/team"
	"github.com/urugowoc/urugo/internal/content/testimonial"
	"github.com/urugowoc/urugo/internal/platform/config"
	"github.com/urugowoc/urugo/internal/platform/constants"
	"github.com/urugowoc/urugo/internal/platform/migration"
	pgstore "github.com/urugowoc/urugo/internal/platform/postgres"
	redisstore "github.com/urugowoc/urugo/internal/platform/redis"
	"github.com/urugowoc/urugo/internal/platform/sec"
	"github.com/urugowoc/urugo/internal/users/account"
	"github.com/urugowoc/urugo/internal/users/auth"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", constants.AppName))
	slog.SetDefault(log)

	log.Info("service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	// A local .env file is a development convenience; absence is not an error.
	_ = godotenv.Load()

	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", constants.AppName))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	// ── 4. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing postgres pool")
		pool.Close()
	}()

	// ── 5. Redis ──────────────────────────────────────────────────────────
	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("closing redis client")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis close error", slog.Any("error", cerr))
		}
	}()

	// ── 6. Token Service ──────────────────────────────────────────────────
	jwtSvc, err := sec.NewTokenService(cfg.JWTPrivKeyPath, cfg.JWTPubKeyPath, constants.AuthIssuer)
	must(log, err, "initialize jwt service")

	// ── 7. Domain Wiring ──────────────────────────────────────────────────
	authService := auth.NewService(
		auth.NewUserRepository(pool),
		auth.NewSessionRepository(pool),
		auth.NewBlacklistRepository(rdb),
		jwtSvc,
	)
	accountService := account.NewService(account.NewPostgresRepository(pool), log)

	aboutService := about.NewService(about.NewPostgresRepository(pool), log)
	contactService := contact.NewService(contact.NewPostgresRepository(pool), log)
	socialService := social.NewService(social.NewPostgresRepository(pool), log)
	teamService := team.NewService(team.NewPostgresRepository(pool), log)
	sliderService := slider.NewService(slider.NewPostgresRepository(pool), log)
	mediaService := media.NewService(media.NewPostgresRepository(pool), log)
	testimonialService := testimonial.NewService(testimonial.NewPostgresRepository(pool), log)
	postService := post.NewService(post.NewPostgresRepository(pool), log)

	listingService := listing.NewService(listing.NewPostgresRepository(pool), log)
	diningService := dining.NewService(dining.NewPostgresRepository(pool), log)
	donationService := donation.NewService(donation.NewPostgresRepository(pool), log)
	orderService := order.NewService(order.NewPostgresRepository(pool), log)
	partnerService := partner.NewService(partner.NewPostgresRepository(pool), log)
	documentService := document.NewService(document.NewPostgresRepository(pool), log)

	handlers := api.Handlers{
		Auth:        auth.NewHandler(authService),
		Account:     account.NewHandler(accountService, authService),
		About:       about.NewHandler(aboutService),
		Contact:     contact.NewHandler(contactService),
		Social:      social.NewHandler(socialService),
		Team:        team.NewHandler(teamService),
		Slider:      slider.NewHandler(sliderService),
		Media:       media.NewHandler(mediaService),
		Testimonial: testimonial.NewHandler(testimonialService),
		Post:        post.NewHandler(postService),
		Listing:     listing.NewHandler(listingService),
		Dining:      dining.NewHandler(diningService),
		Donation:    donation.NewHandler(donationService),
		Order:       order.NewHandler(orderService),
		Partner:     partner.NewHandler(partnerService),
		Document:    document.NewHandler(documentService),
	}

	// ── 8. HTTP Server ────────────────────────────────────────────────────
	// The run context ends on SIGINT/SIGTERM; Start drains in-flight
	// requests before returning.
	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := api.New(runCtx, cfg, log, pool, rdb, jwtSvc, handlers)

	if err := server.Start(runCtx); err != nil {
		log.Error("server error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
