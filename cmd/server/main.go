package main

import (
	"log"
	"net/http"
	"os"

	_ "talenthub/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"talenthub/internal/auth"
	"talenthub/internal/cache"
	"talenthub/internal/config"
	"talenthub/internal/db"
	"talenthub/internal/handler"
	"talenthub/internal/metrics"
	"talenthub/internal/model"
	"talenthub/internal/repository"
	"talenthub/internal/router"
	"talenthub/internal/service"
)

// @title TalentHub API
// @version 1.0
// @description Recruitment management API: candidates, clients, applications, resume export.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewPostgres(cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.Application{},
			&model.Candidate{},
			&model.Client{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Client{},
		&model.Candidate{},
		&model.Application{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	clientRepo := repository.NewClientRepository(gormDB)
	candidateRepo := repository.NewCandidateRepository(gormDB)
	applicationRepo := repository.NewApplicationRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)
	sessionStore := auth.NewSessionStore(cfg.SessionSecret)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, tokenStore)
	userService := service.NewUserService(userRepo)
	clientService := service.NewClientService(clientRepo)
	candidateService := service.NewCandidateService(candidateRepo, cacheClient)
	applicationService := service.NewApplicationService(applicationRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, userService, sessionStore)
	userHandler := handler.NewUserHandler(userService)
	clientHandler := handler.NewClientHandler(clientService)
	candidateHandler := handler.NewCandidateHandler(candidateService, cfg.UploadDir)
	applicationHandler := handler.NewApplicationHandler(applicationService)
	uploadHandler := handler.NewUploadHandler(cfg.UploadDir)

	collector := metrics.NewCollector()

	// Register routes
	router.Register(
		e,
		cfg,
		collector,
		sessionStore,
		authHandler,
		userHandler,
		clientHandler,
		candidateHandler,
		applicationHandler,
		uploadHandler,
	)

	if cfg.SwaggerHost != "" {
		log.Printf("Swagger documentation available at: %s/swagger/index.html", cfg.SwaggerHost)
	} else {
		log.Printf("Swagger documentation available at: http://localhost:%s/swagger/index.html", cfg.ServerPort)
	}

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
