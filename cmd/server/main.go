package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/golang-migrate/migrate/v4"
	pgmigrate "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"

	"hackfinder/config"
	authadapter "hackfinder/internal/adapters/auth"
	emailadapter "hackfinder/internal/adapters/email"
	httpdelivery "hackfinder/internal/delivery/http"
	"hackfinder/internal/delivery/http/controllers"
	"hackfinder/internal/delivery/http/middleware"
	"hackfinder/internal/repository/postgres"
	"hackfinder/internal/services"

	_ "hackfinder/docs"
)

const bcryptCost = 10

// @title HackFinder API
// @version 1.0
// @description Hackathon catalog and discovery service with preference-driven ranking.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	logger := config.NewLogger(cfg)

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("ping database", "err", err)
		os.Exit(1)
	}

	if err := runMigrations(db, cfg.MigrationsDir); err != nil {
		logger.Error("run migrations", "err", err)
		os.Exit(1)
	}

	// Adapters
	hasher := authadapter.NewBcryptHasher(bcryptCost)
	tokenIssuer, tokenVerifier := authadapter.NewJWTCodec(cfg.JWTSecret)
	mailer, err := emailadapter.NewMailer(emailadapter.MailerConfig{
		Provider:    cfg.MailProvider,
		FromAddress: cfg.MailFromAddress,
		FromName:    cfg.MailFromName,
		SES: emailadapter.SESConfig{
			Region:          cfg.SESRegion,
			AccessKeyID:     cfg.SESAccessKeyID,
			SecretAccessKey: cfg.SESSecretKey,
		},
	}, logger)
	if err != nil {
		logger.Error("create mailer", "err", err)
		os.Exit(1)
	}

	// Repositories
	hackathonRepo := postgres.NewHackathonRepository(db)
	userRepo := postgres.NewUserRepository(db)
	bookmarkRepo := postgres.NewBookmarkRepository(db)
	participationRepo := postgres.NewParticipationRepository(db)

	// Services
	emailSvc := services.NewEmailService(mailer, emailadapter.NewTemplateRenderer())
	authSvc := services.NewAuthService(userRepo, hasher, tokenIssuer, tokenVerifier, cfg.TokenExpiry, cfg.AdminSecret, emailSvc, logger)
	hackathonSvc := services.NewHackathonService(hackathonRepo, userRepo)
	relationshipSvc := services.NewRelationshipService(hackathonRepo, bookmarkRepo, participationRepo, userRepo, emailSvc, logger)
	userSvc := services.NewUserService(userRepo, bookmarkRepo, participationRepo)

	// Controllers
	hackathonController := controllers.NewHackathonController(logger, hackathonSvc)
	authController := controllers.NewAuthController(logger, authSvc, userSvc, relationshipSvc)
	userController := controllers.NewUserController(logger, userSvc)

	mux := httpdelivery.NewRouter(authSvc, hackathonController, authController, userController)

	var handler http.Handler = mux
	handler = middleware.CORS(cfg.AllowedOrigins, handler)
	handler = middleware.RequestLogging(logger, handler)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		logger.Info("server starting", "port", cfg.Port, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("listen", "err", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", "err", err)
		os.Exit(1)
	}
	logger.Info("server stopped")
}

func runMigrations(db *sql.DB, migrationsDir string) error {
	driver, err := pgmigrate.WithInstance(db, &pgmigrate.Config{})
	if err != nil {
		return fmt.Errorf("migration driver: %w", err)
	}
	m, err := migrate.NewWithDatabaseInstance(fmt.Sprintf("file://%s", migrationsDir), "postgres", driver)
	if err != nil {
		return fmt.Errorf("migration setup: %w", err)
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate up: %w", err)
	}
	return nil
}
