package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
)

const DefaultLookupURL = "https://calculat.ru/wp-content/themes/EmptyCanvas/db123.php"

type Config struct {
	DBHost     string
	DBPort     int
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	HTTPPort int

	LookupURL     string
	LookupTimeout time.Duration

	LogMode string // "production" or "development"
	LogFile string // rotated log file, empty for stdout only
}

// Load reads a .env file when one exists and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}
	return FromEnv()
}

// FromEnv reads the configuration from the process environment. Numeric
// values that do not parse and a lookup timeout of zero or less are errors.
func FromEnv() (*Config, error) {
	dbPort, err := cast.ToIntE(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}
	httpPort, err := cast.ToIntE(getEnv("HTTP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_PORT: %w", err)
	}
	lookupTimeout, err := cast.ToDurationE(getEnv("LOOKUP_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid LOOKUP_TIMEOUT: %w", err)
	}
	// A bare number is read as nanoseconds; anything below a millisecond is a typo.
	if lookupTimeout < time.Millisecond {
		return nil, fmt.Errorf("invalid LOOKUP_TIMEOUT %s: must be at least 1ms", lookupTimeout)
	}

	return &Config{
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        dbPort,
		DBUser:        getEnv("DB_USER", "postgres"),
		DBPassword:    getEnv("DB_PASSWORD", ""),
		DBName:        getEnv("DB_NAME", "calories"),
		DBSSLMode:     getEnv("DB_SSLMODE", "disable"),
		HTTPPort:      httpPort,
		LookupURL:     getEnv("LOOKUP_URL", DefaultLookupURL),
		LookupTimeout: lookupTimeout,
		LogMode:       getEnv("LOG_MODE", "development"),
		LogFile:       getEnv("LOG_FILE", ""),
	}, nil
}

func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost,
		c.DBPort,
		c.DBUser,
		c.DBPassword,
		c.DBName,
		c.DBSSLMode,
	)
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
