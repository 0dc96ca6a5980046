package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-candidate-backend/config"
	_ "go-candidate-backend/docs" // Important for Swagger
	v1 "go-candidate-backend/internal/delivery/http/v1"
	"go-candidate-backend/internal/repository/postgres"
	"go-candidate-backend/internal/usecase"
	"go-candidate-backend/pkg/auth"
	"go-candidate-backend/pkg/database"
	"go-candidate-backend/pkg/logger"
	"go-candidate-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// @title           Candidate Backend API
// @version         1.0
// @description     CRUD backend for user accounts and candidate profiles with JWT auth.
// @host            localhost:8080
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting candidate backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	candidateRepo := postgres.NewCandidateRepository(dbPool)

	// 5. Setup Auth primitives
	hasher := auth.NewPasswordHasher(cfg.BcryptCost)
	tokens := auth.NewTokenManager(cfg.SecretKey, cfg.Algorithm,
		time.Duration(cfg.AccessTokenExpireMinutes)*time.Minute)

	// 6. Setup UseCases
	validate := validator.New()
	validation.RegisterValidators(validate)
	authUC := usecase.NewAuthUsecase(userRepo, hasher, tokens)
	userUC := usecase.NewUserUsecase(userRepo, hasher, validate)
	candidateUC := usecase.NewCandidateUsecase(candidateRepo, validate)

	// 7. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:       authUC,
		UserUC:       userUC,
		CandidateUC:  candidateUC,
		TokenManager: tokens,
		Config:       cfg,
	})

	// 8. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
