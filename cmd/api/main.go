package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/njuphywg-cyber/weight-loss-app/internal/adapters/cache"
	adapterHTTP "github.com/njuphywg-cyber/weight-loss-app/internal/adapters/handler/http"
	"github.com/njuphywg-cyber/weight-loss-app/internal/adapters/repository"
	"github.com/njuphywg-cyber/weight-loss-app/internal/core/domain"
	"github.com/njuphywg-cyber/weight-loss-app/internal/core/services"
	"github.com/njuphywg-cyber/weight-loss-app/internal/core/workers"
)

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	startTime := time.Now()

	_ = godotenv.Load()

	dbUser := os.Getenv("DB_USER")
	dbPass := os.Getenv("DB_PASSWORD")
	dbName := os.Getenv("DB_NAME")
	dbHost := getenv("DB_HOST", "localhost")
	dbPort := getenv("DB_PORT", "5432")
	serverPort := getenv("PORT", "8080")

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("Critical: JWT_SECRET is not set")
	}

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		dbUser, dbPass, dbHost, dbPort, dbName)

	log.Println("Connecting to database...")

	db, err := sqlx.Connect("pgx", dsn)
	if err != nil {
		log.Fatalf("Critical: Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	log.Println("Database connected successfully.")

	// Redis is optional: without it the app runs with no binding cache
	// and no rate limiter.
	var rdb *redis.Client
	if redisHost := os.Getenv("REDIS_HOST"); redisHost != "" {
		redisDB, _ := strconv.Atoi(getenv("REDIS_DB", "0"))
		rdb, err = cache.NewRedisClient(redisHost, getenv("REDIS_PORT", "6379"), os.Getenv("REDIS_PASSWORD"), redisDB)
		if err != nil {
			log.Printf("Redis unavailable, continuing without cache: %v", err)
			rdb = nil
		} else {
			log.Println("Redis connected successfully.")
		}
	}

	profileRepo := repository.NewPostgresProfileRepository(db)
	checkInRepo := repository.NewPostgresCheckInRepository(db)
	weightRepo := repository.NewPostgresWeightRepository(db)
	goalRepo := repository.NewPostgresGoalRepository(db)
	coupleGoalRepo := repository.NewPostgresCoupleGoalRepository(db)
	cheerRepo := repository.NewPostgresCheerCardRepository(db)
	milestoneRepo := repository.NewPostgresMilestoneRepository(db)
	recapRepo := repository.NewPostgresRecapRepository(db)
	privacyRepo := repository.NewPostgresPrivacySettingsRepository(db)
	reminderRepo := repository.NewPostgresReminderSettingsRepository(db)

	var bindingRepo domain.CoupleBindingRepository = repository.NewPostgresBindingRepository(db)
	if rdb != nil {
		bindingRepo = repository.NewCachedBindingRepository(bindingRepo, rdb)
	}

	classifier := services.NewStateClassifier()
	feedback := services.NewFeedbackGenerator()
	tracker := services.NewMilestoneTracker(checkInRepo, milestoneRepo, goalRepo, weightRepo, profileRepo)

	recapService := services.NewRecapService(checkInRepo, recapRepo, bindingRepo)
	recapWorker := workers.NewRecapWorker(recapService)

	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()
	recapWorker.Start(workerCtx)

	authService := services.NewAuthService(profileRepo, privacyRepo)
	tokenService := services.NewTokenService(jwtSecret, "weight-loss-app", 24*time.Hour, profileRepo)
	checkInService := services.NewCheckInService(checkInRepo, profileRepo, classifier, feedback, tracker, recapWorker)
	bindingService := services.NewBindingService(bindingRepo, profileRepo)
	cheerService := services.NewCheerService(cheerRepo, checkInRepo, bindingRepo, classifier)
	coupleService := services.NewCoupleService(bindingService, checkInRepo, privacyRepo, coupleGoalRepo, services.NewPrivacyFilter())
	profileService := services.NewProfileService(profileRepo, goalRepo, weightRepo, privacyRepo, reminderRepo)

	router := adapterHTTP.NewRouter(adapterHTTP.RouterDependencies{
		AuthHandler:    adapterHTTP.NewAuthHandler(authService, tokenService),
		CheckInHandler: adapterHTTP.NewCheckInHandler(checkInService, milestoneRepo),
		BindingHandler: adapterHTTP.NewBindingHandler(bindingService),
		CoupleHandler:  adapterHTTP.NewCoupleHandler(coupleService, cheerService),
		RecapHandler:   adapterHTTP.NewRecapHandler(recapService),
		ProfileHandler: adapterHTTP.NewProfileHandler(profileService),
		TokenService:   tokenService,
		DB:             db,
		Redis:          rdb,
		StartTime:      startTime,
	})

	srv := &http.Server{
		Addr:         ":" + serverPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("Weight Loss App API running on http://localhost:%s", serverPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Critical server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Stop signal received. Shutting down...")

	stopWorker()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Forced shutdown error:", err)
	}

	log.Println("Server stopped gracefully.")
}
