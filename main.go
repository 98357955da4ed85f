package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/savinash9/happy-hotels/config"
	"github.com/savinash9/happy-hotels/database"
	bookingRepo "github.com/savinash9/happy-hotels/database/repository/booking"
	"github.com/savinash9/happy-hotels/handlers"
	"github.com/savinash9/happy-hotels/middleware"
	"github.com/savinash9/happy-hotels/routes"
	"github.com/savinash9/happy-hotels/services/assistant"
	"github.com/savinash9/happy-hotels/services/booking"
	"github.com/savinash9/happy-hotels/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Repositories.
	repo := bookingRepo.NewMongoBookingRepo()

	// Services.
	bookingService := &booking.DefaultBookingService{Repo: repo}

	llm, err := assistant.NewGeminiClient(context.Background(), config.AppConfig.GeminiAPIKey, config.AppConfig.GeminiModel)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize Gemini client: %v", err)
	}
	store := assistant.NewHTTPRecordStore(assistant.StoreConfig{
		BaseURL: config.AppConfig.BookingAPIBaseURL,
		APIKey:  config.AppConfig.BookingAPIKey,
	})
	assistantService := assistant.NewDefaultAssistantService(llm, store)

	// Handlers.
	handlerBundle := &routes.HandlerBundle{
		Booking:   handlers.NewBookingHandler(bookingService, logger),
		Assistant: handlers.NewAssistantHandler(assistantService, logger),
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
