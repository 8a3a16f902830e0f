package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/SscSPs/ledgerflow/internal/core/domain"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	EnableDBCheck  bool
	MigrationsPath string

	JWTSecret string
	JWTIssuer string

	RateLimit          string // ulule formatted, e.g. "100-M"
	CORSAllowedOrigins []string
	RequestTimeout     time.Duration

	DefaultDecimalPlaces int32
	PostMaxRetries       int
	DefaultApprovalRole  domain.UserRole // used when no approval rule matches; empty rejects
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("JWT_ISSUER", "ledgerflow")
	v.SetDefault("RATE_LIMIT", "100-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("REQUEST_TIMEOUT", "15s")
	v.SetDefault("DEFAULT_DECIMAL_PLACES", int(domain.DefaultDecimalPlaces))
	v.SetDefault("POST_MAX_RETRIES", 3)
	v.SetDefault("DEFAULT_APPROVAL_ROLE", string(domain.RoleApprover))
	v.AutomaticEnv()

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		DatabaseURL:    v.GetString("PGSQL_URL"),
		Port:           v.GetString("PORT"),
		IsProduction:   v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:  v.GetBool("ENABLE_DB_CHECK"),
		MigrationsPath: v.GetString("MIGRATIONS_PATH"),
		JWTSecret:      v.GetString("JWT_SECRET"),
		JWTIssuer:      v.GetString("JWT_ISSUER"),
		RateLimit:      v.GetString("RATE_LIMIT"),
		PostMaxRetries: v.GetInt("POST_MAX_RETRIES"),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	if cfg.JWTSecret == "" {
		if cfg.IsProduction {
			return nil, fmt.Errorf("JWT_SECRET must be set in production")
		}
		cfg.JWTSecret = "a-very-secret-key-should-be-longer-and-random" // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	timeoutStr := v.GetString("REQUEST_TIMEOUT")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil || timeout <= 0 {
		return nil, fmt.Errorf("invalid REQUEST_TIMEOUT %q", timeoutStr)
	}
	cfg.RequestTimeout = timeout

	places := v.GetInt("DEFAULT_DECIMAL_PLACES")
	if places < 0 || places > int(domain.MaxAmountScale) {
		return nil, fmt.Errorf("DEFAULT_DECIMAL_PLACES must be between 0 and %d, got %d", domain.MaxAmountScale, places)
	}
	cfg.DefaultDecimalPlaces = int32(places)

	if cfg.PostMaxRetries < 0 {
		return nil, fmt.Errorf("POST_MAX_RETRIES must not be negative, got %d", cfg.PostMaxRetries)
	}

	if role := strings.TrimSpace(v.GetString("DEFAULT_APPROVAL_ROLE")); role != "" {
		parsed, err := domain.ParseUserRole(strings.ToUpper(role))
		if err != nil {
			return nil, fmt.Errorf("DEFAULT_APPROVAL_ROLE: %w", err)
		}
		cfg.DefaultApprovalRole = parsed
	}

	return cfg, nil
}
