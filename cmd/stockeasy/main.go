package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"github.com/adilet/stockeasy/internal/app"
	"github.com/adilet/stockeasy/internal/catalog/domain"
	"github.com/adilet/stockeasy/internal/catalog/seed"
	sessiondomain "github.com/adilet/stockeasy/internal/session/domain"
	"github.com/adilet/stockeasy/kafka"
	"github.com/adilet/stockeasy/pkg/database"
	"github.com/adilet/stockeasy/pkg/logger"
	"github.com/adilet/stockeasy/pkg/tracing"
)

func main() {
	// .env is optional; environment variables win either way
	_ = godotenv.Load()

	serviceName := getEnv("SERVICE_NAME", "stockeasy")
	isDevelopment := getEnv("ENVIRONMENT", "development") == "development"
	logger.Init(serviceName, isDevelopment)

	logLevel := getEnv("LOG_LEVEL", "info")
	logger.SetLevel(logLevel)

	logger.Logger.Info().
		Str("service", serviceName).
		Str("environment", getEnv("ENVIRONMENT", "development")).
		Str("log_level", logLevel).
		Msg("Starting StockEasy")

	// Tracing
	tp, err := tracing.InitTracer(serviceName)
	if err != nil {
		logger.Logger.Warn().Err(err).Msg("Failed to initialize tracer, continuing without tracing")
	} else {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tracing.Shutdown(ctx, tp); err != nil {
				logger.Logger.Warn().Err(err).Msg("Failed to shut down tracer")
			}
		}()
	}

	// The catalog lives in an in-memory database for the lifetime of the
	// process; nothing survives a restart.
	db, err := database.NewGormConnection(getEnv("DATABASE_DSN", ""))
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to open database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to get database instance")
	}
	defer sqlDB.Close()

	if err := db.AutoMigrate(&domain.Product{}); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to run migrations")
	}

	if err := seed.Products(db); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to seed catalog")
	}

	logger.Logger.Info().Msg("Catalog initialized with seed products")

	// The default authenticator accepts any credentials; setting
	// ADMIN_PASSWORD_HASH swaps in a real check without touching navigation.
	var authenticator sessiondomain.Authenticator = sessiondomain.AllowAllAuthenticator{}
	if hash := os.Getenv("ADMIN_PASSWORD_HASH"); hash != "" {
		authenticator = sessiondomain.StaticAuthenticator{
			Email:        os.Getenv("ADMIN_EMAIL"),
			PasswordHash: hash,
		}
		logger.Logger.Info().Msg("Static authenticator enabled")
	}

	session := sessiondomain.NewSession(authenticator)

	// Event publishing is optional; without brokers the nil publisher drops
	// every event.
	var publisher *kafka.Publisher
	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		publisher, err = kafka.NewPublisher(strings.Split(brokers, ","))
		if err != nil {
			logger.Logger.Warn().Err(err).Msg("Failed to connect to Kafka, continuing without events")
			publisher = nil
		} else {
			defer publisher.Close()
		}
	}

	handlers, err := app.InitializeHandlers(db, session, publisher)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize handlers")
	}

	httpPort := getEnv("HTTP_PORT", "8080")
	startHTTPServer(handlers, sqlDB, httpPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server...")
}

func startHTTPServer(handlers *app.Handlers, db *sql.DB, port string) {
	router := mux.NewRouter()

	handlers.RegisterRoutes(router)

	// Health check endpoint
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}).Methods("GET")

	// Prometheus metrics endpoint
	router.Handle("/metrics", promhttp.Handler())

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	logger.Logger.Info().
		Str("port", port).
		Str("metrics_endpoint", "/metrics").
		Msg("HTTP server started")

	go func() {
		if err := http.ListenAndServe(":"+port, c.Handler(router)); err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
