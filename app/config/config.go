package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds everything read from the environment at startup. The
// database handle is constructed separately (app/database.Connect) and
// passed around explicitly; nothing in this package is process-global.
type Config struct {
	DatabaseURL string
	JWTSecret   string
	Port        string
}

// Load reads .env (when present) and the environment. DATABASE_URL wins;
// otherwise the DSN is assembled from the discrete PG* variables with local
// development defaults.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	cfg := &Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		JWTSecret:   getEnv("JWT_SECRET", "bluebell-school-secret-key"),
		Port:        getEnv("PORT", "8080"),
	}

	if cfg.DatabaseURL == "" {
		host := getEnv("PGHOST", "localhost")
		port, err := strconv.Atoi(getEnv("PGPORT", "5432"))
		if err != nil {
			log.Fatalf("Invalid PGPORT: %v", err)
		}
		user := getEnv("PGUSER", "postgres")
		password := os.Getenv("PGPASSWORD")
		dbname := getEnv("PGDATABASE", "bluebell")

		cfg.DatabaseURL = fmt.Sprintf("host=%s port=%d user=%s dbname=%s sslmode=disable", host, port, user, dbname)
		if password != "" {
			cfg.DatabaseURL += " password=" + password
		}
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
