package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/choudharymahi74/AIinterview-Tutor/internal/config"
	"github.com/choudharymahi74/AIinterview-Tutor/internal/handlers"
	"github.com/choudharymahi74/AIinterview-Tutor/internal/interview"
	"github.com/choudharymahi74/AIinterview-Tutor/internal/llm"
	_ "github.com/choudharymahi74/AIinterview-Tutor/internal/llm/gemini"
	"github.com/choudharymahi74/AIinterview-Tutor/internal/metrics"
	"github.com/choudharymahi74/AIinterview-Tutor/internal/middleware"
	"github.com/choudharymahi74/AIinterview-Tutor/internal/models"
	"github.com/choudharymahi74/AIinterview-Tutor/internal/prompts"
	"github.com/choudharymahi74/AIinterview-Tutor/internal/realtime"
	"github.com/choudharymahi74/AIinterview-Tutor/internal/realtime/livekit"
	"github.com/choudharymahi74/AIinterview-Tutor/internal/routers"
	"github.com/choudharymahi74/AIinterview-Tutor/internal/storage"
)

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// initDatabase initializes the PostgreSQL database connection
func initDatabase() (*gorm.DB, error) {
	host := getEnv("POSTGRES_HOST", "localhost")
	user := getEnv("POSTGRES_USER", "postgres")
	password := getEnv("POSTGRES_PASSWORD", "postgres")
	dbname := getEnv("POSTGRES_DB", "postgres")
	port := getEnv("POSTGRES_PORT", "5432")
	sslmode := getEnv("POSTGRES_SSLMODE", "disable")

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		host, user, password, dbname, port, sslmode)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Interview{},
		&models.InterviewQuestion{},
		&models.UserPreferences{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}

func main() {
	// .env is optional; real deployments use the process environment
	_ = godotenv.Load()

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	logger.Info("Configuration loaded",
		zap.String("provider", cfg.Provider))

	db, err := initDatabase()
	if err != nil {
		logger.Fatal("Failed to initialize database", zap.Error(err))
	}

	// prompt manager
	promptManager, err := prompts.NewPromptManager()
	if err != nil {
		logger.Fatal("Failed to initialize prompt manager", zap.Error(err))
	}

	// AI provider based on configuration
	aiProvider, err := llm.NewProvider(cfg.Provider)
	if err != nil {
		logger.Fatal("Failed to initialize AI provider", zap.Error(err))
	}

	// voice rooms are optional; without credentials the service degrades to
	// text-only interviews
	var voice realtime.Service = realtime.Disabled{}
	if lkConfig, err := livekit.NewConfig(); err != nil {
		logger.Warn("Voice rooms disabled", zap.Error(err))
	} else {
		voice = livekit.New(lkConfig)
		logger.Info("Voice rooms enabled", zap.String("url", lkConfig.URL))
	}

	interviewRepo := &storage.InterviewRepository{DB: db}
	questionRepo := &storage.QuestionRepository{DB: db}
	userRepo := &storage.UserRepository{DB: db}
	preferenceRepo := &storage.PreferenceRepository{DB: db}

	service := interview.NewService(interviewRepo, questionRepo, userRepo, aiProvider, voice, logger)

	authenticator := &middleware.JWTAuthenticator{Secret: cfg.SessionSecret, Users: userRepo}

	authHandler := handlers.NewAuthHandler(userRepo, logger)
	interviewHandler := handlers.NewInterviewHandler(service, logger)
	questionHandler := handlers.NewQuestionHandler(service, logger)
	preferencesHandler := handlers.NewPreferencesHandler(preferenceRepo, logger)
	analyticsHandler := handlers.NewAnalyticsHandler(service, logger)
	healthHandler := handlers.NewHealthHandler(db, aiProvider, promptManager)

	router := chi.NewRouter()

	// cors middleware
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	router.Use(chimiddleware.RequestID, chimiddleware.RealIP, chimiddleware.Logger, chimiddleware.Recoverer, chimiddleware.Timeout(60*time.Second))
	router.Use(metrics.Middleware)

	routers.HealthRoutes(router, healthHandler)
	routers.APIRoutes(router, authenticator, authHandler, interviewHandler, questionHandler, preferencesHandler, analyticsHandler)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	serverAddr := ":" + port

	// http server with timeouts
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// starting server in a goroutine
	go func() {
		logger.Info("Interview service starting", zap.String("addr", serverAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	// wait for interrupt signal to gracefully shutdown the server
	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)
	<-shutdownChan

	logger.Info("Interview service shutting down...")

	// graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Info("Interview service exited")
}
