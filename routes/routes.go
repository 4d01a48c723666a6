package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"glowbook/handlers"
	"glowbook/utils"
)

// RegisterCatalogRoutes registers shop/service browsing endpoints.
func RegisterCatalogRoutes(r *gin.Engine, h *handlers.CatalogHandler) {
	api := r.Group("/api")
	{
		api.GET("/services", h.ListServicesHandler)
		api.GET("/services/:id", h.GetServiceHandler)
		api.GET("/shops", h.ListShopsHandler)
		api.GET("/shops/:id", h.GetShopHandler)
	}
}

// RegisterAvailabilityRoutes registers the calendar and slot endpoints.
func RegisterAvailabilityRoutes(r *gin.Engine, h *handlers.AvailabilityHandler) {
	api := r.Group("/api/availability")
	{
		api.GET("/:serviceID/calendar", h.GetCalendarHandler)
		api.GET("/:serviceID/slots", h.GetDaySlotsHandler)
	}
}

// RegisterBookingRoutes registers booking submission endpoints.
func RegisterBookingRoutes(r *gin.Engine, h *handlers.BookingHandler) {
	api := r.Group("/api/bookings")
	{
		api.POST("", h.ConfirmBookingHandler)
		api.GET("/:id", h.GetBookingHandler)
		api.DELETE("/:id", h.CancelBookingHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, catalog *handlers.CatalogHandler, availability *handlers.AvailabilityHandler, booking *handlers.BookingHandler) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterCatalogRoutes(r, catalog)
	RegisterAvailabilityRoutes(r, availability)
	RegisterBookingRoutes(r, booking)
	RegisterHealthRoute(r)
}
