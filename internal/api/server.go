// Copyright (c) 2026 Urugo Women's Opportunity Center. All rights reserved.

/*
Package api assembles the HTTP surface of the Urugo platform.

It composes the cross-cutting middleware chain, mounts every resource
collection under /api, and manages the listener lifecycle including graceful
shutdown.
*/
package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"

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
	"github.com/urugowoc/urugo/internal/platform/middleware"
	"github.com/urugowoc/urugo/internal/users/account"
	"github.com/urugowoc/urugo/internal/users/auth"
)

// Handlers aggregates every resource handler mounted by the server.
type Handlers struct {
	Auth        *auth.Handler
	Account     *account.Handler
	About       *about.Handler
	Contact     *contact.Handler
	Social      *social.Handler
	Team        *team.Handler
	Slider      *slider.Handler
	Media       *media.Handler
	Testimonial *testimonial.Handler
	Post        *post.Handler
	Listing     *listing.Handler
	Dining      *dining.Handler
	Donation    *donation.Handler
	Order       *order.Handler
	Partner     *partner.Handler
	Document    *document.Handler
}

// Server wraps the HTTP listener and its dependencies.
type Server struct {
	config *config.Config
	logger *slog.Logger
	pool   *pgxpool.Pool
	redis  *goredis.Client
	server *http.Server
}

// New builds a fully-routed server.
//
// # Parameters
//   - ctx: Lifecycle context, used by the rate limiter's cleanup routine.
//   - cfg: Application configuration.
//   - logger: Structured root logger.
//   - pool: PostgreSQL pool, used by readiness checks.
//   - redisClient: Redis client, used by readiness checks.
//   - verifier: JWT verifier for the authentication middleware.
//   - handlers: Resource handlers to mount.
func New(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	pool *pgxpool.Pool,
	redisClient *goredis.Client,
	verifier middleware.TokenVerifier,
	handlers Handlers,
) *Server {
	server := &Server{
		config: cfg,
		logger: logger,
		pool:   pool,
		redis:  redisClient,
	}

	server.server = &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           server.router(ctx, verifier, handlers),
		ReadTimeout:       constants.DefaultReadTimeout,
		WriteTimeout:      constants.DefaultWriteTimeout,
		IdleTimeout:       constants.DefaultIdleTimeout,
		ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
	}

	return server
}

func (s *Server) router(ctx context.Context, verifier middleware.TokenVerifier, handlers Handlers) chi.Router {
	router := chi.NewRouter()

	// Cross-cutting chain. Authentication runs for every request so public
	// endpoints can still see the caller when a token is supplied.
	router.Use(middleware.RequestID())
	router.Use(middleware.StructuredLogger(s.logger))
	router.Use(chimiddleware.Timeout(constants.GlobalRequestTimeout))
	router.Use(middleware.RateLimit(ctx))
	router.Use(middleware.PanicRecovery(s.logger))
	router.Use(middleware.Authenticate(verifier))
	router.Use(middleware.CORS(s.config))

	// Operational probes
	router.Get("/health", s.health)
	router.Get("/ready", s.ready)

	// Uploaded media (images, documents, partner logos)
	router.Handle("/media/*", http.StripPrefix("/media/",
		http.FileServer(http.Dir(s.config.MediaRoot))))

	router.Route("/api", func(api chi.Router) {
		handlers.Auth.RegisterRoutes(api)

		api.Route("/users", handlers.Account.RegisterRoutes)

		// Content
		api.Route("/about", handlers.About.RegisterRoutes)
		api.Route("/contact", handlers.Contact.RegisterRoutes)
		api.Route("/social-media", handlers.Social.RegisterRoutes)
		api.Route("/team", handlers.Team.RegisterMemberRoutes)
		api.Route("/team-social-media", handlers.Team.RegisterSocialLinkRoutes)
		api.Route("/sliders", handlers.Slider.RegisterRoutes)
		api.Route("/gallery", handlers.Media.RegisterGalleryRoutes)
		api.Route("/videos", handlers.Media.RegisterVideoRoutes)
		api.Route("/testimonials", handlers.Testimonial.RegisterRoutes)
		api.Route("/blog-posts", handlers.Post.RegisterRoutes)

		// Commerce
		api.Route("/listings", handlers.Listing.RegisterRoutes)
		api.Route("/dining", handlers.Dining.RegisterAreaRoutes)
		api.Route("/dining-bookings", handlers.Dining.RegisterBookingRoutes)
		api.Route("/donations", handlers.Donation.RegisterRoutes)
		api.Route("/orders", handlers.Order.RegisterOrderRoutes)
		api.Route("/order-items", handlers.Order.RegisterItemRoutes)
		api.Route("/partners", handlers.Partner.RegisterRoutes)
		api.Route("/documents", handlers.Document.RegisterRoutes)
	})

	return router
}

// Start runs the listener until ctx is cancelled, then drains in-flight
// requests within the shutdown timeout.
func (s *Server) Start(ctx context.Context) error {
	errChan := make(chan error, 1)

	go func() {
		s.logger.Info("server_listening",
			slog.String("addr", s.server.Addr),
			slog.String("environment", s.config.Environment))

		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
	defer cancel()

	s.logger.Info("server_shutting_down")
	return s.server.Shutdown(shutdownCtx)
}
