// Package app wires repositories, services and handlers into the Fiber
// application.
package app

import (
	"time"

	"tokoadmin/internal/config"
	"tokoadmin/internal/handlers"
	"tokoadmin/internal/middleware"
	"tokoadmin/internal/models"
	"tokoadmin/internal/pages"
	"tokoadmin/internal/repositories"
	"tokoadmin/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

type App struct {
	Fiber *fiber.App
	DB    *gorm.DB

	Auth       *services.AuthService
	Stores     *services.StoreService
	Boards     *services.BoardService
	Categories *services.CategoryService
	Sizes      *services.SizeService
	Colors     *services.ColorService
	Products   *services.ProductService
	Pages      *pages.Loader
}

type options struct {
	accessLog bool
}

// Option tweaks how NewApp builds the App.
type Option func(*options)

// WithoutAccessLog disables the request logger, e.g. in tests.
func WithoutAccessLog() Option {
	return func(o *options) { o.accessLog = false }
}

// NewApp builds the application on db. events may be nil, which disables
// catalog change events.
func NewApp(cfg config.Config, db *gorm.DB, events services.EventPublisher, opts ...Option) *App {
	storeRepo := repositories.NewGORMStoreRepository(db)
	userRepo := repositories.NewGORMUserRepository(db)
	boardRepo := repositories.NewGORMCatalogRepository[models.Board](db)
	categoryRepo := repositories.NewGORMCatalogRepository[models.Category](db, "Board")
	sizeRepo := repositories.NewGORMCatalogRepository[models.Size](db)
	colorRepo := repositories.NewGORMCatalogRepository[models.Color](db)
	productRepo := repositories.NewGORMProductRepository(db)

	guard := services.NewOwnershipGuard(storeRepo)

	a := &App{DB: db}
	a.Auth = services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	a.Stores = services.NewStoreService(storeRepo, guard)
	a.Boards = services.NewBoardService(boardRepo, guard, events)
	a.Categories = services.NewCategoryService(categoryRepo, guard, events)
	a.Sizes = services.NewSizeService(sizeRepo, guard, events)
	a.Colors = services.NewColorService(colorRepo, guard, events, cfg.StrictColorValues)
	a.Products = services.NewProductService(productRepo, guard, events)
	a.Pages = pages.NewLoader(a.Stores, a.Boards, a.Categories, a.Sizes, a.Colors, a.Products, cfg.PublicURL)

	o := options{accessLog: true}
	for _, opt := range opts {
		opt(&o)
	}
	a.Fiber = fiber.New(fiber.Config{AppName: "tokoadmin"})
	if o.accessLog {
		a.Fiber.Use(logger.New())
	}

	a.routes(events != nil)
	return a
}

func (a *App) routes(eventsEnabled bool) {
	a.Fiber.Get("/health", func(c *fiber.Ctx) error {
		database := "connected"
		if sqlDB, err := a.DB.DB(); err != nil || sqlDB.PingContext(c.UserContext()) != nil {
			database = "unavailable"
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": database,
			"events":   eventsEnabled,
		})
	})

	// Auth and store routes come first so that /api/:storeId/... never
	// captures them.
	api := a.Fiber.Group("/api", middleware.Identify(a.Auth))
	handlers.NewAuthHandler(a.Auth).RegisterRoutes(api)

	handlers.NewStoreHandler(a.Stores).RegisterRoutes(api, middleware.AuthRequired(a.Auth))

	handlers.NewBoardHandler(a.Boards).RegisterRoutes(api)
	handlers.NewCategoryHandler(a.Categories).RegisterRoutes(api)
	handlers.NewSizeHandler(a.Sizes).RegisterRoutes(api)
	handlers.NewColorHandler(a.Colors).RegisterRoutes(api)
	handlers.NewProductHandler(a.Products).RegisterRoutes(api)

	dashboard := a.Fiber.Group("/dashboard", middleware.AuthRequired(a.Auth))
	handlers.NewPageHandler(a.Pages).RegisterRoutes(dashboard)
}
