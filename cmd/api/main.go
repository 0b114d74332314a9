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

	"github.com/akronstore/akron_api/internal/config"
	"github.com/akronstore/akron_api/internal/database"
	"github.com/akronstore/akron_api/internal/handler"
	"github.com/akronstore/akron_api/internal/middleware"
	"github.com/akronstore/akron_api/internal/repository"
	"github.com/akronstore/akron_api/internal/service"
	"github.com/akronstore/akron_api/internal/storage"
)

// main is the application entrypoint for the Akron storefront and admin API.
func main() {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// 2. Setup logger
	setupLogger(cfg.Env)
	log.Info().Str("env", cfg.Env).Str("store", cfg.Store.Driver).Msg("starting akron api")

	// 3. Connect the key-value store
	store, err := openStore(cfg)
	if err != nil {
		log.Error().Err(err).Msg("store connection failed")
		fmt.Fprintf(os.Stderr, "store connection failed: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()
	log.Info().Msg("store connected successfully")

	// 4. Initialize repository
	catalogRepo := repository.NewCatalogRepository(store)

	// 5. Initialize services
	catalogSvc := service.NewCatalogService(catalogRepo)
	productSvc := service.NewProductService(catalogRepo)
	backupSvc := service.NewBackupService(catalogRepo)
	composer := service.NewWhatsAppComposer(cfg.WhatsApp.Number)

	adminAuthSvc, err := service.NewAdminAuthService(catalogRepo, cfg.Admin.Password, cfg.JWTSecret)
	if err != nil {
		log.Error().Err(err).Msg("admin auth initialization failed")
		os.Exit(1)
	}

	// 6. Initialize middleware
	jwtMw := middleware.NewJWTMiddleware(cfg.JWTSecret, catalogRepo)
	loginLimiter := middleware.NewLoginRateLimiter()

	// 7. Initialize handlers
	handlers := &Handlers{
		Health:   handler.NewHealthHandler(store),
		Catalog:  handler.NewCatalogHandler(catalogSvc),
		Checkout: handler.NewCheckoutHandler(catalogSvc, composer),
		Product:  handler.NewProductAdminHandler(productSvc),
		Hero:     handler.NewHeroHandler(catalogSvc),
		Auth:     handler.NewAuthHandler(adminAuthSvc, loginLimiter),
		Backup:   handler.NewBackupHandler(backupSvc),
	}

	// 8. Setup router
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LoggingMiddleware())
	setupRoutes(router, handlers, jwtMw)

	// 9. Start HTTP server
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

	// 10. Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// 11. Shutdown HTTP server with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited")
}

// Handlers groups all HTTP handlers used by the server.
type Handlers struct {
	Health   *handler.HealthHandler
	Catalog  *handler.CatalogHandler
	Checkout *handler.CheckoutHandler
	Product  *handler.ProductAdminHandler
	Hero     *handler.HeroHandler
	Auth     *handler.AuthHandler
	Backup   *handler.BackupHandler
}

// setupRoutes registers all routes.
func setupRoutes(router *gin.Engine, handlers *Handlers, jwtMiddleware *middleware.JWTMiddleware) {
	router.GET("/v1/health", handlers.Health.GetHealth)

	// Public storefront routes
	v1 := router.Group("/v1")
	{
		v1.GET("/hero", handlers.Catalog.GetHero)
		v1.GET("/status", handlers.Catalog.GetStatus)
		v1.GET("/catalog", handlers.Catalog.GetCatalog)
		v1.GET("/catalog/featured", handlers.Catalog.GetFeatured)
		v1.GET("/catalog/:id", handlers.Catalog.GetProduct)

		v1.POST("/checkout", handlers.Checkout.Checkout)
		v1.POST("/inquiry", handlers.Checkout.Inquiry)
		v1.POST("/contact", handlers.Checkout.Contact)
		v1.POST("/newsletter", handlers.Checkout.Newsletter)
	}

	// Admin routes
	admin := router.Group("/v1/admin")
	admin.POST("/auth/login", handlers.Auth.Login)
	admin.Use(jwtMiddleware.Handle())
	{
		admin.POST("/auth/logout", handlers.Auth.Logout)

		// Product Management
		admin.GET("/products", handlers.Product.ListProducts)
		admin.POST("/products", handlers.Product.CreateProduct)
		admin.GET("/products/:id/edit", handlers.Product.EditProduct)
		admin.PUT("/products/:id", handlers.Product.UpdateProduct)
		admin.DELETE("/products/:id", handlers.Product.DeleteProduct)
		admin.GET("/stats", handlers.Product.GetStats)

		// Hero Section
		admin.PUT("/hero", handlers.Hero.UpdateHero)

		// System actions
		admin.GET("/export", handlers.Backup.Export)
		admin.DELETE("/data", handlers.Backup.Wipe)
	}
}

// openStore builds the configured key-value store driver. The postgres
// driver also runs migrations, matching how the store schema is managed.
func openStore(cfg *config.Config) (storage.Store, error) {
	switch cfg.Store.Driver {
	case "redis":
		return storage.NewRedisStore(&cfg.Redis)
	case "postgres":
		db, err := database.Connect(&cfg.DB)
		if err != nil {
			return nil, err
		}
		if err := runMigrations(db.DB); err != nil {
			return nil, fmt.Errorf("migration failed: %w", err)
		}
		log.Info().Msg("migrations completed successfully")
		return storage.NewPostgresStore(db), nil
	case "memory":
		log.Warn().Msg("using in-memory store: data will not survive a restart")
		return storage.NewMemoryStore(), nil
	}
	return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
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

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("could not run migrations: %w", err)
	}

	return nil
}

func setupLogger(env string) {
	if env == "production" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
}
