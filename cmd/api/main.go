package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hecho/catalog_api/internal/cache"
	"github.com/hecho/catalog_api/internal/config"
	"github.com/hecho/catalog_api/internal/database"
	"github.com/hecho/catalog_api/internal/handler"
	"github.com/hecho/catalog_api/internal/middleware"
	"github.com/hecho/catalog_api/internal/repository"
	"github.com/hecho/catalog_api/internal/service"
	"github.com/hecho/catalog_api/internal/sse"
	"github.com/hecho/catalog_api/internal/utils"
	"github.com/hecho/catalog_api/internal/worker"
)

// main is the application entrypoint for the HECHO catalog API.
func main() {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// 2. Setup logger
	setupLogger(cfg.Env)
	log.Info().Str("env", cfg.Env).Msg("starting catalog api")

	utils.SetJWTSecret(cfg.JWTSecret)

	// 3. Connect database
	db, err := database.Connect(&cfg.DB)
	if err != nil {
		log.Error().Err(err).Msg("database connection failed")
		fmt.Fprintf(os.Stderr, "database connection failed: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	// 3a. Run migrations
	if err := runMigrations(db.DB); err != nil {
		log.Error().Err(err).Msg("migration failed")
		fmt.Fprintf(os.Stderr, "migration failed: %v\n", err)
		os.Exit(1)
	}
	log.Info().Msg("migrations completed successfully")

	// 3b. Connect to Redis
	redisClient, err := cache.NewRedisClient(&cfg.Redis)
	if err != nil {
		log.Error().Err(err).Msg("redis connection failed")
		fmt.Fprintf(os.Stderr, "redis connection failed: %v\n", err)
		os.Exit(1)
	}
	defer redisClient.Close()
	log.Info().Msg("redis connected successfully")

	// 3c. Initialize facet cache
	facetCache := cache.NewFacetCache(redisClient, cfg.Catalog.FacetCacheTTL)

	// 4. Initialize repositories
	productRepo := repository.NewProductRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	brandRepo := repository.NewBrandRepository(db)
	bannerRepo := repository.NewBannerRepository(db)
	testimonialRepo := repository.NewTestimonialRepository(db)
	contactRepo := repository.NewContactRepository(db)
	promotionRepo := repository.NewPromotionRepository(db)
	adminUserRepo := repository.NewAdminUserRepository(db)

	// 5. Initialize SSE hub and notifier
	hub := sse.NewHub()
	notifier := sse.NewHubNotifier(hub)

	// 6. Initialize services
	catalogSvc := service.NewCatalogService(productRepo, promotionRepo, categoryRepo, facetCache, cfg.Catalog.PageSize)
	contentSvc := service.NewContentService(brandRepo, bannerRepo, testimonialRepo, categoryRepo, contactRepo)
	authSvc := service.NewAuthService(adminUserRepo)

	// 7. Initialize facet worker (also serves as the admin-side facet refresher)
	facetWorker := worker.NewFacetWorker(catalogSvc, facetCache, cfg.Catalog.FacetRefreshInterval, cfg.Catalog.SearchDebounce)

	// 8. Initialize handlers
	handlers := &Handlers{
		Health:           handler.NewHealthHandler(db, redisClient),
		Catalog:          handler.NewCatalogHandler(catalogSvc, notifier),
		Content:          handler.NewContentHandler(contentSvc),
		Auth:             handler.NewAuthHandler(authSvc),
		SSE:              handler.NewSSEHandler(hub),
		AdminProduct:     handler.NewAdminProductHandler(productRepo, notifier, facetWorker),
		AdminCategory:    handler.NewAdminCategoryHandler(categoryRepo, notifier, facetWorker),
		AdminBrand:       handler.NewAdminBrandHandler(brandRepo, notifier),
		AdminBanner:      handler.NewAdminBannerHandler(bannerRepo, notifier),
		AdminTestimonial: handler.NewAdminTestimonialHandler(testimonialRepo, notifier),
		AdminContact:     handler.NewAdminContactHandler(contactRepo, notifier),
		AdminPromotion:   handler.NewAdminPromotionHandler(promotionRepo, productRepo, notifier),
	}

	// 9. Setup router
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.LocaleMiddleware())
	setupRoutes(router, handlers, middleware.NewJWTMiddleware())

	// 10. Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 11. Start workers
	go facetWorker.Start(ctx)

	// 12. Start HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// 13. Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// 14. Cancel context to stop workers
	cancel()

	// 15. Shutdown HTTP server with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited")
}

// Handlers groups all HTTP handlers used by the server.
type Handlers struct {
	Health           *handler.HealthHandler
	Catalog          *handler.CatalogHandler
	Content          *handler.ContentHandler
	Auth             *handler.AuthHandler
	SSE              *handler.SSEHandler
	AdminProduct     *handler.AdminProductHandler
	AdminCategory    *handler.AdminCategoryHandler
	AdminBrand       *handler.AdminBrandHandler
	AdminBanner      *handler.AdminBannerHandler
	AdminTestimonial *handler.AdminTestimonialHandler
	AdminContact     *handler.AdminContactHandler
	AdminPromotion   *handler.AdminPromotionHandler
}

// setupRoutes registers all routes.
func setupRoutes(router *gin.Engine, handlers *Handlers, jwtMiddleware *middleware.JWTMiddleware) {
	router.GET("/v1/health", handlers.Health.GetHealth)

	// Public storefront routes
	router.GET("/v1/catalog/products", handlers.Catalog.GetProducts)
	router.GET("/v1/catalog/categories", handlers.Catalog.GetCategories)
	router.POST("/v1/catalog/filter", handlers.Catalog.Filter)
	router.GET("/v1/featured", handlers.Catalog.GetFeatured)
	router.GET("/v1/brands", handlers.Content.GetBrands)
	router.GET("/v1/banners", handlers.Content.GetBanners)
	router.GET("/v1/testimonials", handlers.Content.GetTestimonials)
	router.GET("/v1/categories", handlers.Content.GetCategories)
	router.GET("/v1/contact", handlers.Content.GetContact)
	router.GET("/v1/events", handlers.SSE.Stream)

	// Admin routes
	admin := router.Group("/v1/admin")
	admin.POST("/auth/login", handlers.Auth.Login)
	admin.Use(jwtMiddleware.Handle())
	{
		admin.GET("/products", handlers.AdminProduct.List)
		admin.POST("/products", handlers.AdminProduct.Create)
		admin.GET("/products/:id", handlers.AdminProduct.Get)
		admin.PUT("/products/:id", handlers.AdminProduct.Update)
		admin.DELETE("/products/:id", handlers.AdminProduct.Delete)

		admin.GET("/categories", handlers.AdminCategory.List)
		admin.POST("/categories", handlers.AdminCategory.Create)
		admin.GET("/categories/:id", handlers.AdminCategory.Get)
		admin.PUT("/categories/:id", handlers.AdminCategory.Update)
		admin.DELETE("/categories/:id", handlers.AdminCategory.Delete)

		admin.GET("/brands", handlers.AdminBrand.List)
		admin.POST("/brands", handlers.AdminBrand.Create)
		admin.GET("/brands/:id", handlers.AdminBrand.Get)
		admin.PUT("/brands/:id", handlers.AdminBrand.Update)
		admin.DELETE("/brands/:id", handlers.AdminBrand.Delete)

		admin.GET("/banners", handlers.AdminBanner.List)
		admin.POST("/banners", handlers.AdminBanner.Create)
		admin.GET("/banners/:id", handlers.AdminBanner.Get)
		admin.PUT("/banners/:id", handlers.AdminBanner.Update)
		admin.DELETE("/banners/:id", handlers.AdminBanner.Delete)

		admin.GET("/testimonials", handlers.AdminTestimonial.List)
		admin.POST("/testimonials", handlers.AdminTestimonial.Create)
		admin.GET("/testimonials/:id", handlers.AdminTestimonial.Get)
		admin.PUT("/testimonials/:id", handlers.AdminTestimonial.Update)
		admin.DELETE("/testimonials/:id", handlers.AdminTestimonial.Delete)

		admin.GET("/contact", handlers.AdminContact.Get)
		admin.PUT("/contact", handlers.AdminContact.Save)

		admin.GET("/promotions", handlers.AdminPromotion.List)
		admin.POST("/promotions", handlers.AdminPromotion.Create)
		admin.GET("/promotions/:id", handlers.AdminPromotion.Get)
		admin.PUT("/promotions/:id", handlers.AdminPromotion.Update)
		admin.DELETE("/promotions/:id", handlers.AdminPromotion.Delete)
	}
}

// runMigrations runs database migrations using golang-migrate.
func runMigrations(db *sql.DB) error {
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("could not create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://migrations",
		"postgres", driver)
	if err != nil {
		return fmt.Errorf("could not create migration instance: %w", err)
	}

	// Run migrations
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("could not run migrations: %w", err)
	}

	return nil
}

// setupLogger configures zerolog output per environment.
func setupLogger(env string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if env == "production" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		return
	}
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
}
