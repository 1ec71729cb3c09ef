package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/electromart/marketplace-api/internal/api/handler"
	"github.com/electromart/marketplace-api/internal/api/middleware"
	"github.com/electromart/marketplace-api/internal/core/ports"
	"github.com/electromart/marketplace-api/internal/core/service"
	mongodb "github.com/electromart/marketplace-api/internal/infrastructure/db/mongo"
	redisdb "github.com/electromart/marketplace-api/internal/infrastructure/db/redis"
)

// Options carries everything the router needs beyond its datastores.
type Options struct {
	JWTSecret string
	TokenTTL  time.Duration
	UploadDir string
	Images    ports.ImageStore
	Logger    zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(opts.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("electromart"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	productRepo := mongodb.NewProductRepository(db)
	notificationRepo := mongodb.NewNotificationRepository(db)
	unreadCache := redisdb.NewUnreadCache(rdb)

	authService := service.NewAuthService(userRepo, opts.JWTSecret, opts.TokenTTL)
	profileService := service.NewProfileService(userRepo, opts.Images, opts.Logger)
	productService := service.NewProductService(productRepo, opts.Images, opts.Logger)
	notificationService := service.NewNotificationService(notificationRepo, unreadCache, opts.Logger)
	adminService := service.NewAdminService(userRepo, productRepo, opts.Logger)

	authHandler := handler.NewAuthHandler(authService)
	profileHandler := handler.NewProfileHandler(profileService)
	productHandler := handler.NewProductHandler(productService)
	notificationHandler := handler.NewNotificationHandler(notificationService)
	adminHandler := handler.NewAdminHandler(authService, adminService)

	auth := middleware.Auth(opts.JWTSecret)
	adminOnly := middleware.AdminOnly()

	// --- Auth routes ---
	e.POST("/api/auth/signup", authHandler.Signup)
	e.POST("/api/auth/login", authHandler.Login)

	// --- Profile routes ---
	e.GET("/api/profile", profileHandler.Get, auth)
	e.PUT("/api/profile", profileHandler.Update, auth)

	// --- Product routes ---
	e.POST("/api/products/add", productHandler.Add, auth)
	e.GET("/api/products/all", productHandler.ListAll)
	e.GET("/api/products/category/:category", productHandler.ListByCategory)
	e.GET("/api/products/my-products", productHandler.ListMine, auth)

	// --- Notification routes ---
	e.POST("/api/notifications/whatsapp-contact", notificationHandler.Contact, auth)
	e.GET("/api/notifications/seller", notificationHandler.ListForSeller, auth)
	e.GET("/api/notifications/unread-count", notificationHandler.UnreadCount, auth)
	e.PUT("/api/notifications/:id/read", notificationHandler.MarkRead, auth)

	// --- Admin routes ---
	e.POST("/api/admin/login", adminHandler.Login)
	admin := e.Group("/api/admin", auth, adminOnly)
	admin.GET("/stats", adminHandler.Stats)
	admin.GET("/users", adminHandler.Users)
	admin.GET("/products", adminHandler.Products)
	admin.DELETE("/users/:id", adminHandler.DeleteUser)
	admin.DELETE("/products/:id", adminHandler.DeleteProduct)

	// --- Uploaded images (public) ---
	e.Static("/uploads", opts.UploadDir)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
