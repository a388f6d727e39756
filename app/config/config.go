package config

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/lib/pq"
)

type Config struct {
	DatabaseURL string
	Port        string
}

// Load reads configuration from the environment. The storage connection
// is opened separately and injected into every component that needs it;
// there is no package-level singleton.
func Load() *Config {
	cfg := &Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		Port:        os.Getenv("PORT"),
	}
	if cfg.DatabaseURL == "" {
		host := envOr("PGHOST", "localhost")
		port := envOr("PGPORT", "5432")
		user := envOr("PGUSER", "postgres")
		dbname := envOr("PGDATABASE", "sage")
		cfg.DatabaseURL = fmt.Sprintf("host=%s port=%s user=%s dbname=%s sslmode=disable", host, port, user, dbname)
		if password := os.Getenv("PGPASSWORD"); password != "" {
			cfg.DatabaseURL += " password=" + password
		}
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	return cfg
}

// OpenDB opens and pings the PostgreSQL connection with pool settings.
// The caller owns the lifecycle: open on startup, close on shutdown.
func OpenDB(cfg *Config) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return db, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
