package routes

import (
	"net/http"

	"github.com/savinash9/happy-hotels/config"
	"github.com/savinash9/happy-hotels/handlers"
	"github.com/savinash9/happy-hotels/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle collects every handler the router needs.
type HandlerBundle struct {
	Booking   *handlers.BookingHandler
	Assistant *handlers.AssistantHandler
}

// RegisterBookingRoutes registers the record-store CRUD endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.APIKeyAuthMiddleware(config.AppConfig.APIKey))
		api.POST("", hb.Booking.CreateBooking)
		api.GET("", hb.Booking.ListBookings)
		api.GET("/:id", hb.Booking.GetBooking)
		api.PATCH("/:id", hb.Booking.UpdateBooking)
		api.DELETE("/:id", hb.Booking.DeleteBooking)
	}
}

// RegisterAssistantRoutes registers the conversational endpoint.
func RegisterAssistantRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/assistant")
	{
		api.Use(middleware.APIKeyAuthMiddleware(config.AppConfig.APIKey))
		api.POST("/chat", hb.Assistant.Chat)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Happy Hotels"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Authorization", "Content-Type", "X-API-Key"},
		ExposeHeaders: []string{"Content-Length"},
	}))

	RegisterHealthRoute(r)
	RegisterBookingRoutes(r, hb)
	RegisterAssistantRoutes(r, hb)
}
