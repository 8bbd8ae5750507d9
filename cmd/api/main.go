// cmd/api/main.go
// FlatMatch API server entry point

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/flatmatchau/flatmatch-backend/internal/auth"
	"github.com/flatmatchau/flatmatch-backend/internal/common/database"
	"github.com/flatmatchau/flatmatch-backend/internal/common/utils"
	"github.com/flatmatchau/flatmatch-backend/internal/config"
	"github.com/flatmatchau/flatmatch-backend/internal/matching"
	"github.com/flatmatchau/flatmatch-backend/internal/notification"
	"github.com/flatmatchau/flatmatch-backend/internal/quiz"
	"github.com/flatmatchau/flatmatch-backend/internal/sheets"
	"github.com/flatmatchau/flatmatch-backend/internal/storage"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Database
	db, err := database.NewPostgresDBFromURL(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	log.Println("Connected to PostgreSQL")

	if err := runMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Redis is optional; without it scores are recomputed on every request
	redisClient, err := database.NewRedisClientFromURL(cfg.RedisURL)
	if err != nil {
		log.Printf("Redis unavailable, score caching disabled: %v", err)
		redisClient = nil
	} else {
		defer redisClient.Close()
		log.Println("Connected to Redis")
	}

	// Google Sheets sink
	var sheetsClient *sheets.Client
	if cfg.SheetsEnabled {
		sheetsClient, err = sheets.NewClient(context.Background(), cfg.SheetsSpreadsheetID, cfg.SheetsCredentialsFile)
		if err != nil {
			log.Fatalf("Failed to create sheets client: %v", err)
		}
		log.Println("Sheets sink enabled")
	}

	// Notification providers
	var emailProvider notification.EmailProvider
	switch cfg.EmailProvider {
	case "sendgrid":
		emailProvider = notification.NewSendGridEmailProvider(cfg.SendGridAPIKey, cfg.EmailFrom)
	case "smtp":
		emailProvider = notification.NewSMTPEmailProvider(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.EmailFrom)
	default:
		emailProvider = notification.NewMockEmailProvider()
	}

	var smsProvider notification.SMSProvider
	if cfg.SMSProvider == "twilio" {
		smsProvider = notification.NewTwilioSMSProvider(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioPhoneNumber)
	} else {
		smsProvider = notification.NewMockSMSProvider()
	}

	// Upload storage
	var uploadService storage.UploadService
	if cfg.UseS3 {
		uploadService, err = storage.NewS3UploadService(cfg.S3Bucket, cfg.AWSRegion)
		if err != nil {
			log.Fatalf("Failed to create S3 upload service: %v", err)
		}
	} else {
		uploadService = storage.NewLocalUploadService(cfg.LocalUploadDir, cfg.BaseURL)
	}

	// Auth
	authService := auth.NewService(&auth.Config{
		JWTSecret: cfg.SupabaseJWTSecret,
		Issuer:    cfg.SupabaseIssuer,
	})
	authMiddleware := auth.NewMiddleware(authService)

	scoreCache := matching.NewScoreCache(redisClient, cfg.ScoreCacheTTL)

	// Quiz module
	quizRepo := quiz.NewPostgresRepository(db)
	var quizSink quiz.SheetsSink
	if sheetsClient != nil {
		quizSink = sheetsClient
	}
	quizService := quiz.NewService(quizRepo, quizSink, scoreCache)
	quizHandlers := quiz.NewHandlers(quizService)

	// Matching module
	matchRepo := matching.NewPostgresRepository(db)
	var matchSink matching.MatchSink
	if sheetsClient != nil {
		matchSink = sheetsClient
	}
	matchService := matching.NewService(matchRepo, matching.NewEngine(), scoreCache, matchSink, cfg.CandidatePoolMax)

	// Notifications
	notifService := notification.NewService(emailProvider, smsProvider, cfg.SupportInbox)
	notifHandlers := notification.NewHandlers(notifService)

	var alertService notification.Service
	if cfg.EnableMatchAlerts {
		alertService = notifService
	}
	matchHandlers := matching.NewHandlers(matchService, alertService)

	// Uploads
	storageHandlers := storage.NewHandlers(uploadService, cfg.MaxUploadSize)

	// Router
	router := mux.NewRouter()
	router.Use(loggingMiddleware)
	router.Use(corsMiddleware)

	router.HandleFunc("/health", healthHandler).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	api := router.PathPrefix("/api/v1").Subrouter()
	quiz.RegisterRoutes(api, quizHandlers, authMiddleware)
	matching.RegisterRoutes(api, matchHandlers, authMiddleware)
	notification.RegisterRoutes(api, notifHandlers, authMiddleware)
	storage.RegisterRoutes(api, storageHandlers, authMiddleware)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on port %s (%s)", cfg.Port, cfg.Environment)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server stopped")
}

func runMigrations(db *sqlx.DB) error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS flatmate_profiles (
			user_id VARCHAR(255) PRIMARY KEY,
			display_name VARCHAR(255) NOT NULL DEFAULT '',
			answers JSONB NOT NULL DEFAULT '{}',
			traits JSONB NOT NULL DEFAULT '{}',
			preferences JSONB NOT NULL DEFAULT '{}',
			property JSONB NOT NULL DEFAULT '{}',
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_profiles_state
			ON flatmate_profiles ((answers->>'state'))
			WHERE is_active = TRUE`,
		`CREATE INDEX IF NOT EXISTS idx_profiles_updated
			ON flatmate_profiles (updated_at DESC)`,
	}

	for _, migration := range migrations {
		if _, err := db.Exec(migration); err != nil {
			return err
		}
	}
	log.Println("Database migrations complete")
	return nil
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   time.Now().Format(time.RFC3339),
	})
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s %v", r.Method, r.URL.Path, time.Since(start))
	})
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
