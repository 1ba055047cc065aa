package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/zenithcamp/medcamp-backend/internal/pkg/logger"
)

const PROD_STRING = "prod"

// Token transports accepted by TOKEN_TRANSPORT.
const (
	TransportCookie = "cookie"
	TransportHeader = "header"
)

// Config holds all application configuration loaded from environment.
type Config struct {
	IsProduction     bool
	ProdOrigins      string
	TrustedProxies   []string
	HTTPAddr         string
	DBDSN            string
	DBMaxConns       int
	JWTSecret        string
	TokenTransport   string
	CookieSecure     bool
	StripeSecretKey  string
	PaymentCurrency  string
	UploadDir        string
	RegListAdminOnly bool
	AutoMigrate      bool
	LogLevel         string
}

// Load loads configuration from .env (optional) and environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists
	err := godotenv.Load()
	if err != nil {
		logger.Debug().Err(err).Msg("no .env file loaded")
	}

	cfg := &Config{}

	// Production origin (default: empty)
	cfg.ProdOrigins = getEnv("PROD_ORIGINS", "")

	// Proxies whose X-Forwarded-For is believed (default: none, the socket peer is the client)
	cfg.TrustedProxies, err = getEnvAsProxies("TRUSTED_PROXIES")
	if err != nil {
		return nil, fmt.Errorf("invalid TRUSTED_PROXIES: %w", err)
	}

	// Application environment (default: dev)
	appEnvStr := getEnv("APP_ENV", "dev")
	cfg.IsProduction = appEnvStr == PROD_STRING

	// HTTP listen address. PORT wins when set, as most hosts only export PORT.
	cfg.HTTPAddr = getEnv("HTTP_ADDR", ":8080")
	if port := os.Getenv("PORT"); port != "" {
		cfg.HTTPAddr = ":" + strings.TrimPrefix(port, ":")
	}

	// Database DSN is required
	cfg.DBDSN = os.Getenv("DB_DSN")
	if cfg.DBDSN == "" {
		return nil, fmt.Errorf("DB_DSN is required")
	}

	// Pool size (default: 10)
	cfg.DBMaxConns, err = getEnvAsInt("DB_MAX_CONNS", 10)
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_CONNS: %w", err)
	}

	// JWT secret is required for signing tokens
	cfg.JWTSecret = os.Getenv("JWT_SECRET")
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	cfg.TokenTransport = strings.ToLower(getEnv("TOKEN_TRANSPORT", TransportCookie))
	if cfg.TokenTransport != TransportCookie && cfg.TokenTransport != TransportHeader {
		return nil, fmt.Errorf("invalid TOKEN_TRANSPORT %q: must be %q or %q", cfg.TokenTransport, TransportCookie, TransportHeader)
	}

	if cfg.CookieSecure, err = getEnvAsBool("COOKIE_SECURE", false); err != nil {
		return nil, fmt.Errorf("invalid COOKIE_SECURE: %w", err)
	}

	// Payment intents are rejected at request time when the key is missing.
	cfg.StripeSecretKey = os.Getenv("STRIPE_SECRET_KEY")
	cfg.PaymentCurrency = strings.ToLower(getEnv("PAYMENT_CURRENCY", "usd"))

	cfg.UploadDir = getEnv("UPLOAD_DIR", "./uploads")

	if cfg.RegListAdminOnly, err = getEnvAsBool("REG_LIST_ADMIN_ONLY", true); err != nil {
		return nil, fmt.Errorf("invalid REG_LIST_ADMIN_ONLY: %w", err)
	}

	if cfg.AutoMigrate, err = getEnvAsBool("AUTO_MIGRATE", true); err != nil {
		return nil, fmt.Errorf("invalid AUTO_MIGRATE: %w", err)
	}

	cfg.LogLevel = getEnv("LOG_LEVEL", "info")

	return cfg, nil
}

// getEnv returns the value of the environment variable if set,
// otherwise returns the provided default value.
func getEnv(key, defaultValue string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer.
// It returns the default value if the variable is not set.
func getEnvAsInt(key string, defaultValue int) (int, error) {
	valStr := getEnv(key, "")
	if valStr == "" {
		return defaultValue, nil
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		return 0, fmt.Errorf("env %s value %q is not a valid integer: %w", key, valStr, err)
	}

	return val, nil
}

// getEnvAsBool retrieves an environment variable as a boolean.
func getEnvAsBool(key string, defaultValue bool) (bool, error) {
	valStr := getEnv(key, "")
	if valStr == "" {
		return defaultValue, nil
	}

	val, err := strconv.ParseBool(valStr)
	if err != nil {
		return false, fmt.Errorf("env %s value %q is not a valid boolean: %w", key, valStr, err)
	}

	return val, nil
}

// getEnvAsProxies reads a comma separated list of IPs or CIDRs.
func getEnvAsProxies(key string) ([]string, error) {
	var out []string
	for _, p := range strings.Split(getEnv(key, ""), ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if net.ParseIP(p) == nil {
			if _, _, err := net.ParseCIDR(p); err != nil {
				return nil, fmt.Errorf("env %s entry %q is neither an IP nor a CIDR", key, p)
			}
		}
		out = append(out, p)
	}
	return out, nil
}
