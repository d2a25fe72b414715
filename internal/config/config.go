// Package config loads runtime settings from the environment. A .env file in
// the working directory is applied first when present.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	_ "github.com/joho/godotenv/autoload"
)

const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

type Config struct {
	Port          int
	StoreDriver   string
	Mongo         Mongo
	Postgres      Postgres
	CORSOrigins   []string
	LogLevel      string
	LogFormat     string
	HasherWorkers int
}

type Mongo struct {
	URI            string
	Database       string
	Collection     string
	ConnectTimeout time.Duration
}

type Postgres struct {
	Host     string
	Port     string
	Username string
	Password string
	Database string
	Schema   string
	SSLMode  string
}

// DSN builds a pgx connection string.
func (p Postgres) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(p.Username, p.Password),
		Host:   p.Host + ":" + p.Port,
		Path:   "/" + p.Database,
	}
	q := url.Values{}
	q.Set("sslmode", p.SSLMode)
	if p.Schema != "" {
		q.Set("search_path", p.Schema)
	}
	u.RawQuery = q.Encode()
	return u.String()
}

// Load reads the configuration from the environment, applying defaults for
// unset variables.
func Load() (*Config, error) {
	cfg := &Config{
		StoreDriver: getenv("STORE_DRIVER", DriverMongo),
		Mongo: Mongo{
			URI:        getenv("MONGO_URI", "mongodb://localhost:27017"),
			Database:   getenv("MONGO_DATABASE", "local"),
			Collection: getenv("MONGO_COLLECTION", "user"),
		},
		Postgres: Postgres{
			Host:     getenv("DB_HOST", "localhost"),
			Port:     getenv("DB_PORT", "5432"),
			Username: os.Getenv("DB_USERNAME"),
			Password: os.Getenv("DB_PASSWORD"),
			Database: os.Getenv("DB_DATABASE"),
			Schema:   os.Getenv("DB_SCHEMA"),
			SSLMode:  getenv("DB_SSLMODE", "require"),
		},
		CORSOrigins: splitList(getenv("CORS_ORIGINS", "http://localhost:3000")),
		LogLevel:    getenv("LOG_LEVEL", "info"),
		LogFormat:   getenv("LOG_FORMAT", "json"),
	}

	var err error
	if cfg.Port, err = intEnv("PORT", 8080); err != nil {
		return nil, err
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("config: PORT out of range: %d", cfg.Port)
	}
	if cfg.HasherWorkers, err = intEnv("HASHER_WORKERS", 0); err != nil {
		return nil, err
	}
	if cfg.Mongo.ConnectTimeout, err = durationEnv("MONGO_CONNECT_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}

	switch cfg.StoreDriver {
	case DriverMongo, DriverPostgres, DriverMemory:
	default:
		return nil, fmt.Errorf("config: unknown STORE_DRIVER %q", cfg.StoreDriver)
	}

	return cfg, nil
}

func getenv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func intEnv(key string, def int) (int, error) {
	s := strings.TrimSpace(os.Getenv(key))
	if s == "" {
		return def, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("config: %s is not a valid integer: %w", key, err)
	}
	return v, nil
}

func durationEnv(key string, def time.Duration) (time.Duration, error) {
	s := strings.TrimSpace(os.Getenv(key))
	if s == "" {
		return def, nil
	}
	v, err := time.ParseDuration(s)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("config: %s is not a valid duration: %q", key, s)
	}
	return v, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
