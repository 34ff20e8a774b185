package main

import (
	"context"
	"errors"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"talenthub/internal/config"
	"talenthub/internal/db"
	"talenthub/internal/model"
	"talenthub/internal/repository"
)

// Seeds the bootstrap admin account. Credentials come from the environment;
// the account is created with must_change_password set so the password is
// rotated on first login.
func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewPostgres(cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	username := getEnv("ADMIN_USERNAME", "admin")
	email := getEnv("ADMIN_EMAIL", "admin@talenthub.local")
	password := getEnv("ADMIN_PASSWORD", "changeme123")

	userRepo := repository.NewUserRepository(gormDB)
	ctx := context.Background()

	existing, err := userRepo.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Fatalf("Failed to check existing admin: %v", err)
	}
	if existing != nil {
		log.Printf("Admin account %s already exists, nothing to do", email)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	admin := &model.User{
		Username:           username,
		Email:              email,
		PasswordHash:       string(hash),
		Role:               model.RoleAdmin,
		MustChangePassword: true,
	}

	if err := userRepo.Create(ctx, admin); err != nil {
		log.Fatalf("Failed to create admin account: %v", err)
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - Admin account created: %s (%s)", username, email)
	log.Printf("  - Password must be changed on first login")
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
