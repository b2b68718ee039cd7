// File: maggamhub/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"maggamhub/config"
	"maggamhub/database"
	bookingRepo "maggamhub/database/repository/booking"
	galleryRepo "maggamhub/database/repository/gallery"
	"maggamhub/handlers"
	"maggamhub/middleware"
	"maggamhub/routes"
	"maggamhub/services/admin"
	"maggamhub/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()

	mediaService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary media service: %v", err)
	}

	// Admin credentials: prefer the configured hash, hash the plaintext
	// fallback once at startup.
	passwordHash := config.AppConfig.AdminPasswordHash
	if passwordHash == "" {
		if config.AppConfig.AdminPassword == "" {
			logger.Sugar().Fatal("main: no admin password configured")
		}
		passwordHash, err = admin.HashPassword(config.AppConfig.AdminPassword)
		if err != nil {
			logger.Sugar().Fatalf("main: %v", err)
		}
	}

	// Token store: Redis when configured (shared across instances), in-memory
	// otherwise.
	var tokenStore admin.TokenStore
	if config.AppConfig.RedisAddr != "" {
		utils.InitAuthCache()
		tokenStore = admin.NewRedisTokenStore(utils.GetAuthCacheClient())
	} else {
		tokenStore = admin.NewMemoryTokenStore()
	}
	authService := &admin.DefaultAuthService{
		Store:        tokenStore,
		PasswordHash: passwordHash,
	}

	utils.StartHealthMonitor(database.MongoClient, utils.AuthCacheClient)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	bookings := bookingRepo.NewMongoBookingRepo()
	gallery := galleryRepo.NewMongoGalleryRepo()

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Auth:           authService,
		AdminHandler:   handlers.NewAdminHandler(authService),
		BookingHandler: handlers.NewBookingHandler(bookings),
		GalleryHandler: handlers.NewGalleryHandler(gallery, mediaService, config.AppConfig.GalleryFolder),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
