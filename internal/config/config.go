package config

import (
	"log"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds application level configuration loaded from environment
// variables, optionally overlaid from a YAML file pointed to by CONFIG_FILE.
type Config struct {
	ServerPort    string `yaml:"server_port"`
	PostgresDSN   string `yaml:"postgres_dsn"`
	RedisAddr     string `yaml:"redis_addr"`
	RedisDB       int    `yaml:"redis_db"`
	RedisPass     string `yaml:"redis_password"`
	JWTSecret     string `yaml:"jwt_secret"`
	SessionSecret string `yaml:"session_secret"`
	UploadDir     string `yaml:"upload_dir"`
	SwaggerHost   string `yaml:"swagger_host"`
}

// Load builds Config from environment with sensible defaults. When
// CONFIG_FILE is set, the YAML file is read first and environment variables
// override its values.
func Load() *Config {
	cfg := &Config{
		ServerPort:    "8080",
		PostgresDSN:   "host=localhost user=talenthub password=talenthub dbname=talenthub port=5432 sslmode=disable",
		RedisAddr:     "localhost:6379",
		JWTSecret:     "change-me",
		SessionSecret: "change-me-too",
		UploadDir:     "uploads",
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := overlayFile(cfg, path); err != nil {
			log.Printf("config file %s ignored: %v", path, err)
		}
	}

	cfg.ServerPort = getEnv("SERVER_PORT", cfg.ServerPort)
	cfg.PostgresDSN = getEnv("POSTGRES_DSN", cfg.PostgresDSN)
	cfg.RedisAddr = getEnv("REDIS_ADDR", cfg.RedisAddr)
	cfg.RedisDB = getEnvInt("REDIS_DB", cfg.RedisDB)
	cfg.RedisPass = getEnv("REDIS_PASSWORD", cfg.RedisPass)
	cfg.JWTSecret = getEnv("JWT_SECRET", cfg.JWTSecret)
	cfg.SessionSecret = getEnv("SESSION_SECRET", cfg.SessionSecret)
	cfg.UploadDir = getEnv("UPLOAD_DIR", cfg.UploadDir)
	cfg.SwaggerHost = getEnv("SWAGGER_HOST", cfg.SwaggerHost)

	return cfg
}

func overlayFile(cfg *Config, path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(b, cfg)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}
