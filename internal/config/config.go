// Package config handles loading application configuration from environment
// variables. All config is centralized here so no other package reads env
// vars directly. A .env file in the working directory is loaded first when
// present; real environment variables always win over it.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
)

// Config holds all application configuration. Populated from environment
// variables at startup. Passed to other packages via dependency injection.
type Config struct {
	// Env is the runtime environment: "development" or "production".
	Env string

	// Port is the HTTP listen port (default: 8080).
	Port int

	// BaseURL is the public-facing URL used for links and redirects.
	BaseURL string

	// FrontendOrigins are extra origins allowed to call the JSON API
	// (e.g. a separately served SPA on http://localhost:5173).
	FrontendOrigins []string

	// LogLevel controls log verbosity: "debug", "info", "warn", "error".
	LogLevel string

	// MigrationsPath is the directory holding golang-migrate SQL files.
	MigrationsPath string

	// OperatorToken guards operator-only routes such as the generation log.
	// Empty leaves those routes unregistered.
	OperatorToken string

	// Database holds MariaDB connection settings.
	Database DatabaseConfig

	// Redis holds Redis connection settings.
	Redis RedisConfig

	// ImageGen holds settings for the upstream image-generation API.
	ImageGen ImageGenConfig

	// Gallery holds template gallery settings.
	Gallery GalleryConfig

	// Designs holds settings for the design suggestion service.
	Designs DesignsConfig
}

// DatabaseConfig holds MariaDB connection parameters. Individual fields
// (Host, User, Password, Name) are read from separate env vars so
// container orchestrators can manage each independently.
// If DATABASE_URL is set, it takes precedence over the individual fields.
type DatabaseConfig struct {
	// Host is the MariaDB address in host:port format (default: "localhost:3306").
	// If no port is specified, 3306 is appended automatically.
	Host string

	// User is the MariaDB username (default: "cardstudio").
	User string

	// Password is the MariaDB password (default: "cardstudio").
	Password string

	// Name is the database name (default: "cardstudio").
	Name string

	// dsnOverride is set when DATABASE_URL is provided, bypassing individual fields.
	dsnOverride string

	// MaxOpenConns is the maximum number of open connections in the pool.
	MaxOpenConns int

	// MaxIdleConns is the maximum number of idle connections in the pool.
	MaxIdleConns int

	// ConnMaxLifetime is how long a connection can be reused.
	ConnMaxLifetime time.Duration
}

// DSN returns the go-sql-driver/mysql connection string. If DATABASE_URL was
// set, it is returned as-is. Otherwise the DSN is built from the individual
// Host/User/Password/Name fields using the driver's Config.FormatDSN()
// to safely handle special characters in passwords.
func (d DatabaseConfig) DSN() string {
	if d.dsnOverride != "" {
		return d.dsnOverride
	}
	cfg := mysql.NewConfig()
	cfg.User = d.User
	cfg.Passwd = d.Password
	cfg.Net = "tcp"
	cfg.Addr = ensurePort(d.Host, "3306")
	cfg.DBName = d.Name
	cfg.ParseTime = true
	return cfg.FormatDSN()
}

// ensurePort appends the default port if the host string doesn't include one.
// Allows users to set DB_HOST=mydb (gets :3306) or DB_HOST=mydb:3307 (as-is).
func ensurePort(host, defaultPort string) string {
	_, _, err := net.SplitHostPort(host)
	if err != nil {
		return net.JoinHostPort(host, defaultPort)
	}
	return host
}

// RedisConfig holds Redis connection parameters.
type RedisConfig struct {
	// URL is the Redis connection URL (e.g., "redis://localhost:6379").
	URL string
}

// ImageGenConfig configures the image-generation proxy.
type ImageGenConfig struct {
	// URL is the model inference endpoint the proxy posts prompts to.
	URL string

	// APIKey is sent as a Bearer token. Required in production.
	APIKey string

	// Timeout bounds a single upstream call.
	Timeout time.Duration

	// CacheTTL is how long successful responses stay in Redis. Zero disables caching.
	CacheTTL time.Duration

	// RequestsPerSecond caps outbound calls across all clients.
	RequestsPerSecond float64
}

// GalleryConfig configures the classic template gallery.
type GalleryConfig struct {
	// DefaultCount is how many templates the gallery shows without ?count=.
	DefaultCount int
}

// DesignsConfig configures the design suggestion service.
type DesignsConfig struct {
	// Delay simulates model latency before suggestions are returned.
	Delay time.Duration

	// Seed fixes the random source so suggestions repeat across restarts.
	// Zero seeds from the clock.
	Seed uint64
}

// defaultImageGenURL is the hosted SDXL inference endpoint.
const defaultImageGenURL = "https://api-inference.huggingface.co/models/stabilityai/stable-diffusion-xl-base-1.0"

// Load reads configuration from environment variables with sensible defaults.
// Returns an error if required variables are missing.
func Load() (*Config, error) {
	// A missing .env is normal outside local development.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	cfg := &Config{
		Env:             getEnv("ENV", "development"),
		Port:            getEnvInt("PORT", 8080),
		BaseURL:         getEnv("BASE_URL", "http://localhost:8080"),
		FrontendOrigins: getEnvList("FRONTEND_ORIGINS", nil),
		LogLevel:        getEnv("LOG_LEVEL", "debug"),
		MigrationsPath:  getEnv("MIGRATIONS_PATH", "db/migrations"),
		OperatorToken:   getEnv("OPERATOR_TOKEN", ""),

		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost:3306"),
			User:            getEnv("DB_USER", "cardstudio"),
			Password:        getEnv("DB_PASSWORD", "cardstudio"),
			Name:            getEnv("DB_NAME", "cardstudio"),
			dsnOverride:     getEnv("DATABASE_URL", ""),
			MaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getEnvDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
		},

		Redis: RedisConfig{
			URL: getEnv("REDIS_URL", "redis://localhost:6379"),
		},

		ImageGen: ImageGenConfig{
			URL:               getEnv("IMAGEGEN_URL", defaultImageGenURL),
			APIKey:            getEnv("HF_API_KEY", ""),
			Timeout:           getEnvDuration("IMAGEGEN_TIMEOUT", 60*time.Second),
			CacheTTL:          getEnvDuration("IMAGEGEN_CACHE_TTL", 24*time.Hour),
			RequestsPerSecond: getEnvFloat("IMAGEGEN_RPS", 1),
		},

		Gallery: GalleryConfig{
			DefaultCount: getEnvInt("GALLERY_COUNT", 50),
		},

		Designs: DesignsConfig{
			Delay: getEnvDuration("DESIGNS_DELAY", time.Second),
			Seed:  getEnvUint("DESIGNS_SEED", 0),
		},
	}

	// Validate required fields in production. Case-insensitive check catches
	// common variants like "Production", "prod", etc.
	envLower := strings.ToLower(cfg.Env)
	if envLower == "production" || envLower == "prod" {
		if cfg.ImageGen.APIKey == "" {
			return nil, fmt.Errorf("HF_API_KEY is required in production")
		}
	}

	if cfg.Gallery.DefaultCount < 0 {
		return nil, fmt.Errorf("GALLERY_COUNT must not be negative, got %d", cfg.Gallery.DefaultCount)
	}
	if cfg.ImageGen.RequestsPerSecond <= 0 {
		return nil, fmt.Errorf("IMAGEGEN_RPS must be positive, got %v", cfg.ImageGen.RequestsPerSecond)
	}

	return cfg, nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	env := strings.ToLower(c.Env)
	return env == "development" || env == "dev"
}

// AllowedOrigins returns the CORS allow-list: the public base URL plus any
// configured frontend origins.
func (c *Config) AllowedOrigins() []string {
	origins := make([]string, 0, len(c.FrontendOrigins)+1)
	origins = append(origins, c.BaseURL)
	return append(origins, c.FrontendOrigins...)
}

// --- Helper functions for reading environment variables ---

// getEnv reads a string env var or returns the default.
func getEnv(key, defaultVal string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return defaultVal
}

// getEnvInt reads an integer env var or returns the default.
func getEnvInt(key string, defaultVal int) int {
	if val, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

// getEnvUint reads an unsigned integer env var or returns the default.
func getEnvUint(key string, defaultVal uint64) uint64 {
	if val, ok := os.LookupEnv(key); ok {
		if u, err := strconv.ParseUint(val, 10, 64); err == nil {
			return u
		}
	}
	return defaultVal
}

// getEnvFloat reads a float env var or returns the default.
func getEnvFloat(key string, defaultVal float64) float64 {
	if val, ok := os.LookupEnv(key); ok {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}
	return defaultVal
}

// getEnvDuration reads a duration env var (e.g., "720h") or returns the default.
func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if val, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}

// getEnvList reads a comma-separated env var, dropping empty entries.
func getEnvList(key string, defaultVal []string) []string {
	val, ok := os.LookupEnv(key)
	if !ok {
		return defaultVal
	}
	var out []string
	for _, part := range strings.Split(val, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
