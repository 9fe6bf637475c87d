package routes

import (
	"net/http"
	"time"

	"swiftcab/handlers"
	"swiftcab/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle collects the handlers the route tables need.
type HandlerBundle struct {
	Booking *handlers.BookingHandler
	Fare    *handlers.FareHandler
	Payment *handlers.PaymentHandler
	Chat    *handlers.ChatHandler
	Voice   *handlers.VoiceHandler
}

// RegisterBookingRoutes sets up the booking CRUD endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.POST("", hb.Booking.CreateBooking)
		api.GET("", hb.Booking.ListBookings)
		api.GET("/:id", hb.Booking.GetBooking)
		api.PUT("/:id/cancel", hb.Booking.CancelBooking)

		// Destructive removal is admin only.
		api.DELETE("/:id", middleware.AdminAuthMiddleware(), hb.Booking.DeleteBooking)
	}
}

// RegisterFareRoutes sets up the fare calculator endpoint.
func RegisterFareRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.POST("/api/fares/quote", hb.Fare.QuoteFare)
}

// RegisterPaymentRoutes sets up payment intents and the gateway webhook.
// The webhook is authenticated by its signature, not by a bearer token.
func RegisterPaymentRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/payments")
	{
		api.POST("/intent", hb.Payment.CreatePaymentIntent)
	}
	r.POST("/api/webhooks/stripe", hb.Payment.StripeWebhook)
}

// RegisterChatRoutes sets up the FAQ chatbot endpoint.
func RegisterChatRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.POST("/api/chat", hb.Chat.HandleChat)
}

// RegisterVoiceRoutes sets up the voice dialogue session endpoints.
func RegisterVoiceRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/voice")
	{
		api.POST("/sessions", hb.Voice.StartSession)
		api.GET("/sessions/:sessionID", hb.Voice.GetSession)
		api.POST("/sessions/:sessionID/utterances", hb.Voice.PostUtterance)
		api.DELETE("/sessions/:sessionID", hb.Voice.AbandonSession)
	}
	r.POST("/api/stt", handlers.STTHandler)
}

// RegisterAdminRoutes sets up admin operations.
func RegisterAdminRoutes(r *gin.Engine, _ *HandlerBundle) {
	r.POST("/api/admin/login", handlers.AdminLoginHandler)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm SwiftCab"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterBookingRoutes(r, hb)
	RegisterFareRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
	RegisterChatRoutes(r, hb)
	RegisterVoiceRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
