package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"APP_ENV", "PROD_ORIGINS", "HTTP_ADDR", "PORT", "DB_MAX_CONNS", "TOKEN_TRANSPORT",
	"COOKIE_SECURE", "STRIPE_SECRET_KEY", "PAYMENT_CURRENCY", "UPLOAD_DIR",
	"REG_LIST_ADMIN_ONLY", "AUTO_MIGRATE", "LOG_LEVEL", "TRUSTED_PROXIES",
}

func setRequired(t *testing.T) {
	// t.Setenv restores the previous value on cleanup, so unsetting afterwards is safe.
	for _, k := range configKeys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	t.Setenv("DB_DSN", "postgres://localhost/camps")
	t.Setenv("JWT_SECRET", "secret")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, TransportCookie, cfg.TokenTransport)
	assert.False(t, cfg.CookieSecure)
	assert.True(t, cfg.RegListAdminOnly)
	assert.True(t, cfg.AutoMigrate)
	assert.Equal(t, "usd", cfg.PaymentCurrency)
	assert.Equal(t, 10, cfg.DBMaxConns)
	assert.False(t, cfg.IsProduction)
	assert.Empty(t, cfg.TrustedProxies)
}

func TestLoadTrustedProxies(t *testing.T) {
	setRequired(t)
	t.Setenv("TRUSTED_PROXIES", "10.0.0.1, 172.16.0.0/12,")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"10.0.0.1", "172.16.0.0/12"}, cfg.TrustedProxies)
}

func TestLoadPortOverridesAddr(t *testing.T) {
	setRequired(t)
	t.Setenv("HTTP_ADDR", ":9000")
	t.Setenv("PORT", "5000")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":5000", cfg.HTTPAddr)
}

func TestLoadHeaderTransport(t *testing.T) {
	setRequired(t)
	t.Setenv("TOKEN_TRANSPORT", "Header")
	t.Setenv("REG_LIST_ADMIN_ONLY", "false")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, TransportHeader, cfg.TokenTransport)
	assert.False(t, cfg.RegListAdminOnly)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"missing dsn", map[string]string{"DB_DSN": "", "JWT_SECRET": "s"}},
		{"missing secret", map[string]string{"DB_DSN": "x", "JWT_SECRET": ""}},
		{"bad transport", map[string]string{"DB_DSN": "x", "JWT_SECRET": "s", "TOKEN_TRANSPORT": "query"}},
		{"bad bool", map[string]string{"DB_DSN": "x", "JWT_SECRET": "s", "COOKIE_SECURE": "maybe"}},
		{"bad proxy", map[string]string{"DB_DSN": "x", "JWT_SECRET": "s", "TRUSTED_PROXIES": "proxy.local"}},
		{"bad int", map[string]string{"DB_DSN": "x", "JWT_SECRET": "s", "DB_MAX_CONNS": "ten"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequired(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
