package routes

import (
	"net/http"
	"time"

	"maggamhub/handlers"
	"maggamhub/middleware"
	"maggamhub/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterPublicRoutes registers the endpoints that need no authentication.
func RegisterPublicRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Backend running successfully 🚀")
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.GetHealthStatus())
	})

	r.POST("/booking", hb.BookingHandler.CreateBookingHandler)
	r.GET("/gallery", hb.GalleryHandler.ListGalleryHandler)
	r.POST("/admin/login", hb.AdminHandler.LoginHandler)
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/admin")
	{
		adminGroup.Use(middleware.AdminAuthMiddleware(hb.Auth))
		adminGroup.GET("/bookings", hb.BookingHandler.ListBookingsHandler)
		adminGroup.PUT("/update-status", hb.BookingHandler.UpdateStatusHandler)
		adminGroup.POST("/upload-image", hb.GalleryHandler.UploadImageHandler)
		adminGroup.DELETE("/delete-image", hb.GalleryHandler.DeleteImageHandler)
	}
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterPublicRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
