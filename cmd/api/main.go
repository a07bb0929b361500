package main

import (
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberLogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"

	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/selimacar/studiofoto-backend/internal/config"
	"github.com/selimacar/studiofoto-backend/internal/handler"
	"github.com/selimacar/studiofoto-backend/internal/middleware"
	"github.com/selimacar/studiofoto-backend/internal/repository"
	"github.com/selimacar/studiofoto-backend/internal/service"
	"github.com/selimacar/studiofoto-backend/pkg/cache"
	"github.com/selimacar/studiofoto-backend/pkg/database"
	"github.com/selimacar/studiofoto-backend/pkg/email"
	"github.com/selimacar/studiofoto-backend/pkg/logger"
	"github.com/selimacar/studiofoto-backend/pkg/payment"
	"github.com/selimacar/studiofoto-backend/pkg/qrcode"
	"github.com/selimacar/studiofoto-backend/pkg/storage"
	"github.com/selimacar/studiofoto-backend/pkg/utils"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
	defer logger.Sync()

	// Config'i yükle
	cfg := config.LoadConfig()

	// Initialize database
	db := database.NewDatabase()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	packageRepo := repository.NewPackageRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	albumRepo := repository.NewAlbumRepository(db)
	photoRepo := repository.NewPhotoRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)

	// Storage service
	r2Storage, err := storage.NewCloudflareStorage(cfg)
	if err != nil {
		log.Fatal("Failed to initialize R2 storage:", err)
	}

	// Email service
	emailService := email.NewEmailService()

	// Catalog cache
	catalogCache := cache.NewCache(cfg.Redis.Addr, cfg.Redis.Password)

	// QR service
	qrService := qrcode.NewQRService(cfg.FrontendURL + "/g/")

	// Services
	bookingService := service.NewBookingService(bookingRepo, packageRepo, userRepo, emailService)
	authService := service.NewAuthService(userRepo, bookingService, emailService)
	userService := service.NewUserService(userRepo)
	galleryService := service.NewGalleryService(albumRepo, photoRepo, favoriteRepo, r2Storage)
	packageService := service.NewPackageService(packageRepo, catalogCache)

	// Stripe service
	stripeService := payment.NewStripeService(os.Getenv("STRIPE_SECRET_KEY"))
	paymentService := service.NewPaymentService(stripeService, bookingRepo, packageRepo, userRepo)

	// Validator'ı önce tanımla
	validator := utils.NewValidator()

	// Handlers
	authHandler := handler.NewAuthHandler(authService, validator)
	userHandler := handler.NewUserHandler(userService, validator)
	bookingHandler := handler.NewBookingHandler(bookingService, validator)
	albumHandler := handler.NewAlbumHandler(galleryService, qrService, validator)
	packageHandler := handler.NewPackageHandler(packageService, validator)
	paymentHandler := handler.NewPaymentHandler(paymentService)

	// Router
	app := fiber.New()

	// Global Middleware'ler önce tanımlanmalı
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "https://studiofoto.co, https://www.studiofoto.co, http://localhost:5173",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE",
		AllowCredentials: true,
	}))
	app.Use(fiberLogger.New())
	app.Use(limiter.New(limiter.Config{
		Max:        30,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
	}))

	api := app.Group("/api")

	// Public routes
	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/forgot-password", authHandler.ForgotPassword)
	auth.Post("/reset-password", authHandler.ResetPassword)

	// Public package catalog
	api.Get("/packages", packageHandler.GetAllPackages)
	api.Get("/packages/:id", packageHandler.GetPackageByID)
	api.Get("/packages/:id/related", packageHandler.GetRelatedPackages)

	// Public gallery (paylaşım linkiyle)
	api.Get("/gallery/:shareUrl", albumHandler.GetPublicAlbum)
	api.Get("/gallery/:shareUrl/qr", albumHandler.GetAlbumQR)

	// Booking gönderimi misafir veya giriş yapmış kullanıcıdan gelebilir
	api.Post("/bookings", middleware.OptionalAuthMiddleware(), bookingHandler.SubmitBooking)

	// Stripe webhook (public)
	api.Post("/payments/webhook", paymentHandler.HandleStripeWebhook)

	// Protected routes
	api.Use(middleware.AuthMiddleware())
	{
		user := api.Group("/user")
		user.Get("/profile", userHandler.GetMyProfile)
		user.Put("/profile", userHandler.UpdateProfile)
		user.Post("/change-password", userHandler.ChangePassword)

		bookings := api.Group("/bookings")
		bookings.Get("/", bookingHandler.GetMyBookings)
		bookings.Get("/:id", bookingHandler.GetBooking)
		bookings.Patch("/:id/status", bookingHandler.UpdateStatus)
		bookings.Post("/:id/deposit", paymentHandler.CreateDepositCheckout)

		albums := api.Group("/albums")
		albums.Get("/", albumHandler.GetMyAlbums)
		albums.Get("/:id/photos", albumHandler.GetAlbumPhotos)
		albums.Post("/:id/favorites", albumHandler.ToggleFavorite)

		// Admin routes
		admin := api.Group("/admin", middleware.RequireAdmin())
		admin.Get("/bookings", bookingHandler.GetAllBookings)
		admin.Post("/packages", packageHandler.CreatePackage)
		admin.Put("/packages/:id", packageHandler.UpdatePackage)
		admin.Post("/albums", albumHandler.CreateAlbum)
		admin.Put("/albums/:id", albumHandler.UpdateAlbum)
		admin.Post("/albums/:id/photos", albumHandler.UploadPhotos)
		admin.Delete("/albums/:id/photos", albumHandler.DeletePhotos)
		admin.Put("/albums/:id/cover", albumHandler.SetCoverImage)
	}

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Fatal(app.Listen(":" + port))
}
