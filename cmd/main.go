package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/sbilibin2017/ai-video-studio/internal/handlers"
	"github.com/sbilibin2017/ai-video-studio/internal/logger"
	"github.com/sbilibin2017/ai-video-studio/internal/middlewares"
	"github.com/sbilibin2017/ai-video-studio/internal/services"
	"github.com/sbilibin2017/ai-video-studio/internal/simulator"
	"github.com/sbilibin2017/ai-video-studio/internal/storage"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title ai-video-studio API
// @version 1.0.0
// @description In-memory API for AI video generation with simulated processing and payments
// @host localhost:8080
// @BasePath /api
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel, videoDelay, paymentDelay, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), appHost, appPort, logLevel, videoDelay, paymentDelay); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns the
// application and simulator configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	videoDelay, paymentDelay time.Duration,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// Simulator config
	var videoDelayMs, paymentDelayMs int
	if videoDelayMs, err = strconv.Atoi(getEnv("VIDEO_PROCESSING_DELAY_MS", "2000")); err != nil {
		return
	}
	if paymentDelayMs, err = strconv.Atoi(getEnv("PAYMENT_PROCESSING_DELAY_MS", "3000")); err != nil {
		return
	}
	videoDelay = time.Duration(videoDelayMs) * time.Millisecond
	paymentDelay = time.Duration(paymentDelayMs) * time.Millisecond

	return
}

// run initializes the logger, store, simulator and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, appHost, appPort, logLevel string, videoDelay, paymentDelay time.Duration) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Initialize store and job simulator
	store := storage.NewMemStorage()
	sim := simulator.New(store, videoDelay, paymentDelay)

	// Initialize services
	userService := services.NewUserService(store)
	videoService := services.NewVideoService(store, sim)
	paymentService := services.NewPaymentService(store, sim)

	// Initialize handlers
	createUserHandler := handlers.NewCreateUserHandler(userService)
	getUserHandler := handlers.NewGetUserHandler(userService)
	updateSubscriptionHandler := handlers.NewUpdateSubscriptionHandler(userService)
	createVideoHandler := handlers.NewCreateVideoHandler(videoService)
	getVideoHandler := handlers.NewGetVideoHandler(videoService)
	listVideosHandler := handlers.NewListVideosHandler(videoService)
	listUserVideosHandler := handlers.NewListUserVideosHandler(videoService)
	createPaymentHandler := handlers.NewCreatePaymentHandler(paymentService)
	getPaymentHandler := handlers.NewGetPaymentHandler(paymentService)
	listUserPaymentsHandler := handlers.NewListUserPaymentsHandler(paymentService)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)
	r.Use(middlewares.MetricsMiddleware)

	r.Route("/api", func(r chi.Router) {
		r.Post("/users", createUserHandler)
		r.Get("/users/{id}", getUserHandler)
		r.Post("/users/{id}/subscription", updateSubscriptionHandler)
		r.Get("/users/{userId}/videos", listUserVideosHandler)
		r.Get("/users/{userId}/payments", listUserPaymentsHandler)

		r.Post("/videos", createVideoHandler)
		r.Get("/videos", listVideosHandler)
		r.Get("/videos/{id}", getVideoHandler)

		r.Post("/payments", createPaymentHandler)
		r.Get("/payments/{id}", getPaymentHandler)
	})

	r.Handle("/metrics", promhttp.Handler())

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	// Let in-flight simulated jobs run to completion before exiting.
	logger.Log.Info("Waiting for in-flight simulated jobs...")
	sim.Wait()

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
