// File: swiftcab/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"swiftcab/config"
	"swiftcab/cron"
	"swiftcab/database"
	bookingRepo "swiftcab/database/repository/booking"
	"swiftcab/handlers"
	"swiftcab/middleware"
	"swiftcab/routes"
	"swiftcab/services/booking"
	"swiftcab/services/chat"
	"swiftcab/services/dialogue"
	"swiftcab/services/fare"
	"swiftcab/services/payment"
	"swiftcab/services/tasks"
	"swiftcab/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitDialogueCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	bkRepo := bookingRepo.NewMongoBookingRepo()
	if err := bkRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure booking indexes: %v", err)
	}

	// services.
	fareService := &fare.DefaultFareService{}

	bookingService := &booking.DefaultBookingService{
		Repo:     bkRepo,
		Cache:    booking.NewRedisBookingCache(utils.GetCacheClient(), 10*time.Minute),
		FareSvc:  fareService,
		Reminder: tasks.NewReminderScheduler(),
		Logger:   logger,
	}

	paymentService := &payment.StripeService{
		Bookings: bookingService,
		Logger:   logger,
	}

	chatService := &chat.DefaultChatService{Logger: logger}
	if key := config.AppConfig.GeminiAPIKey; key != "" {
		gemini, err := chat.NewGeminiClient(key)
		if err != nil {
			logger.Sugar().Warnf("main: gemini disabled: %v", err)
		} else {
			chatService.Gemini = gemini
		}
	}

	// The voice dialogue engine. Sessions live in Redis with a TTL; the
	// remote NLU is optional and the deterministic grammar covers its absence.
	sessionStore := dialogue.NewRedisSessionStore(
		utils.GetDialogueCacheClient(),
		time.Duration(config.AppConfig.DialogueTTLMins)*time.Minute,
	)
	var nluClient dialogue.NLUClient
	if url := config.AppConfig.NLUServiceURL; url != "" {
		nluClient = dialogue.NewHTTPNLUClient(url,
			time.Duration(config.AppConfig.NLUTimeoutSecs)*time.Second, logger)
	}
	dialogueManager := dialogue.NewManager(
		sessionStore,
		nluClient,
		bookingService,
		dialogue.NopSpeaker{},
		logger,
		dialogue.Config{
			NLUTimeout:    time.Duration(config.AppConfig.NLUTimeoutSecs) * time.Second,
			HardBound:     time.Duration(config.AppConfig.NLUHardBoundSecs) * time.Second,
			RecoveryDelay: time.Duration(config.AppConfig.ErrorRecoverySecs) * time.Second,
		},
	)

	// Background reminder worker.
	cron.InitReminderWorker(logger)

	// Assemble the handler bundle.
	handlerBundle := &routes.HandlerBundle{
		Booking: handlers.NewBookingHandler(bookingService, logger),
		Fare:    handlers.NewFareHandler(fareService),
		Payment: handlers.NewPaymentHandler(paymentService, logger),
		Chat:    handlers.NewChatHandler(chatService),
		Voice:   handlers.NewVoiceHandler(dialogueManager),
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
