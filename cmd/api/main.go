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

	"github.com/joho/godotenv"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"

	"github.com/andycampbellcrowe-del/watertracker/internal/adapters/cache"
	adapterHTTP "github.com/andycampbellcrowe-del/watertracker/internal/adapters/handler/http"
	"github.com/andycampbellcrowe-del/watertracker/internal/adapters/repository"
	"github.com/andycampbellcrowe-del/watertracker/internal/core/domain"
	"github.com/andycampbellcrowe-del/watertracker/internal/core/services"
	"github.com/andycampbellcrowe-del/watertracker/internal/core/workers"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	startTime := time.Now()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from the environment.")
	}

	dbUser := os.Getenv("DB_USER")
	dbPass := os.Getenv("DB_PASSWORD")
	dbName := os.Getenv("DB_NAME")
	dbHost := envOr("DB_HOST", "localhost")
	dbPort := envOr("DB_PORT", "5432")
	serverPort := envOr("PORT", "8080")

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

	redisDB, _ := strconv.Atoi(envOr("REDIS_DB", "0"))
	redisClient, err := cache.NewRedisClient(
		envOr("REDIS_HOST", "localhost"),
		envOr("REDIS_PORT", "6379"),
		os.Getenv("REDIS_PASSWORD"),
		redisDB,
	)
	if err != nil {
		log.Printf("Redis unavailable, running without member cache and rate limiting: %v", err)
		redisClient = nil
	} else {
		defer redisClient.Close()
		log.Println("Redis connected successfully.")
	}

	userRepo := repository.NewPostgresUserRepository(db)
	householdRepo := repository.NewPostgresHouseholdRepository(db)
	invitationRepo := repository.NewPostgresInvitationRepository(db)
	settingsRepo := repository.NewPostgresSettingsRepository(db)
	celebrationRepo := repository.NewPostgresCelebrationRepository(db)
	intakeRepo := repository.NewPostgresIntakeRepository(db)
	workoutRepo := repository.NewPostgresWorkoutRepository(db)

	var memberRepo domain.HouseholdUserRepository = repository.NewPostgresHouseholdUserRepository(db)
	if redisClient != nil {
		memberRepo = repository.NewCachedMemberRepository(memberRepo, redisClient)
	}

	tokenService := services.NewTokenService(jwtSecret, envOr("JWT_ISSUER", "watertracker"), 24*time.Hour, userRepo)
	authService := services.NewAuthService(userRepo, tokenService)
	householdService := services.NewHouseholdService(householdRepo, memberRepo, invitationRepo, settingsRepo, intakeRepo, workoutRepo)

	goalWorker := workers.NewGoalWorker(settingsRepo, intakeRepo, memberRepo, celebrationRepo)

	intakeService := services.NewIntakeService(intakeRepo, memberRepo, goalWorker)
	workoutService := services.NewWorkoutService(workoutRepo, memberRepo)
	statsService := services.NewStatsService(memberRepo, settingsRepo, intakeRepo, workoutRepo)

	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()
	goalWorker.Start(workerCtx)

	router := adapterHTTP.NewRouter(adapterHTTP.RouterDependencies{
		AuthHandler:      adapterHTTP.NewAuthHandler(authService),
		HouseholdHandler: adapterHTTP.NewHouseholdHandler(householdService),
		IntakeHandler:    adapterHTTP.NewIntakeHandler(intakeService, householdService),
		WorkoutHandler:   adapterHTTP.NewWorkoutHandler(workoutService, householdService),
		StatsHandler:     adapterHTTP.NewStatsHandler(statsService, householdService),
		TokenService:     tokenService,
		DB:               db,
		Redis:            redisClient,
		StartTime:        startTime,
	})

	srv := &http.Server{
		Addr:         ":" + serverPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("Water Tracker API running on http://localhost:%s", serverPort)
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
