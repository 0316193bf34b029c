// Package app wires the storefront services into a Fiber application.
package app

import (
	"context"
	"fmt"
	"time"

	"lumina/internal/checkout"
	"lumina/internal/config"
	"lumina/internal/filter"
	"lumina/internal/handlers"
	"lumina/internal/metrics"
	"lumina/internal/middleware"
	"lumina/internal/payment"
	"lumina/internal/repositories"
	"lumina/internal/services"
	"lumina/internal/session"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// Options carries the external collaborators. Searcher, Chatter and
// Publisher are optional.
type Options struct {
	Store     repositories.SlotStore
	Provider  payment.Provider
	Searcher  services.SemanticSearcher
	Chatter   services.Chatter
	Publisher services.OrderEventPublisher
}

// App is the assembled service.
type App struct {
	Fiber    *fiber.App
	Sessions *session.Registry
	Products *services.ProductService
	Orders   *services.OrderService

	logger *logrus.Logger
}

// New loads the persisted collections and builds the HTTP application.
func New(ctx context.Context, cfg *config.Config, logger *logrus.Logger, opts Options) (*App, error) {
	if opts.Store == nil || opts.Provider == nil {
		return nil, fmt.Errorf("a slot store and a payment provider are required")
	}

	decimal.MarshalJSONWithoutQuotes = true

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m, err := metrics.New(registry)
	if err != nil {
		return nil, fmt.Errorf("failed to register metrics: %w", err)
	}

	// --- Repositories ---
	productRepo := repositories.NewSlotProductRepository(opts.Store, repositories.DefaultProducts)
	orderRepo := repositories.NewSlotOrderRepository(opts.Store)
	ownedRepo := repositories.NewSlotOwnedItemRepository(opts.Store)
	for name, load := range map[string]func(context.Context) error{
		repositories.SlotProducts: productRepo.Load,
		repositories.SlotOrders:   orderRepo.Load,
		repositories.SlotOwned:    ownedRepo.Load,
	} {
		if err := load(ctx); err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", name, err)
		}
	}

	// --- Services ---
	productService := services.NewProductService(productRepo, logger)
	orderService := services.NewOrderService(orderRepo, ownedRepo, opts.Publisher, m, logger)
	authService, err := services.NewAuthService(cfg.AdminPasscode, cfg.JWTSecret, logger)
	if err != nil {
		return nil, err
	}
	searchService := services.NewSearchService(productService, opts.Searcher, m, logger)
	chatService := services.NewChatService(productService, opts.Chatter, logger)
	backupService := services.NewBackupService(productService, orderService, logger)

	sessions := session.NewRegistry(session.Options{
		Defaults: filter.WithMaxPrice(cfg.DefaultMaxPrice),
		Checkout: checkout.Config{
			Provider: opts.Provider,
			Recorder: orderService,
			Currency: cfg.PaymentCurrency,
			Logger:   logger,
			Metrics:  m,
		},
		Greeting: chatService.Greeting(),
		Logger:   logger,
	})

	// --- Fiber ---
	// Handlers keep path parameters in the catalog and sessions, so
	// request strings must not alias pooled buffers.
	f := fiber.New(fiber.Config{AppName: "Lumina", Immutable: true})
	f.Use(fiberlogger.New(fiberlogger.Config{Output: logger.Out}))

	f.Get("/health", func(c *fiber.Ctx) error {
		events := "disabled"
		if opts.Publisher != nil {
			events = "enabled"
		}
		return c.JSON(fiber.Map{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"sessions": sessions.Len(),
			"events":   events,
			"provider": opts.Provider.Name(),
		})
	})
	f.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	apiV1 := f.Group("/api/v1")

	// Admin routes carry their own credentials and never need a session.
	handlers.NewAuthHandler(authService, logger).RegisterRoutes(apiV1)
	admin := apiV1.Group("/admin", middleware.AdminRequired(authService, logger))
	orderHandler := handlers.NewOrderHandler(orderService, logger)
	orderHandler.RegisterAdminRoutes(admin)
	handlers.NewAdminHandler(productService, backupService, logger).RegisterRoutes(admin)

	store := apiV1.Group("", middleware.Session(sessions))
	handlers.NewProductHandler(productService, logger).RegisterRoutes(store)
	handlers.NewFilterHandler(productService, searchService, logger).RegisterRoutes(store)
	handlers.NewCartHandler(productService, logger).RegisterRoutes(store)
	handlers.NewCheckoutHandler(logger).RegisterRoutes(store)
	handlers.NewChatHandler(chatService).RegisterRoutes(store)
	orderHandler.RegisterRoutes(store)

	return &App{
		Fiber:    f,
		Sessions: sessions,
		Products: productService,
		Orders:   orderService,
		logger:   logger,
	}, nil
}

// SweepSessions drops idle sessions every interval until ctx is done.
func (a *App) SweepSessions(ctx context.Context, interval, maxIdle time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			a.Sessions.Sweep(maxIdle)
		}
	}
}
