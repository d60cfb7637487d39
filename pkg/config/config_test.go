package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "ENV", "POSTGRES_CONN_STR", "SECRET_KEY", "ACCESS_TOKEN_EXPIRE_MINUTES", "METRICS_PORT", "LOG_LEVEL", "CORS_ALLOW_ORIGINS"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, 30*time.Minute, cfg.AccessTokenTTL)
	assert.Equal(t, "9090", cfg.MetricsPort)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowOrigins)
	assert.False(t, cfg.IsProduction())
	assert.Error(t, cfg.Validate())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("POSTGRES_CONN_STR", "postgres://localhost/rede")
	t.Setenv("SECRET_KEY", "s3cret")
	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "5")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example, https://b.example ,")

	cfg := Load()
	require.NoError(t, cfg.Validate())
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 5*time.Minute, cfg.AccessTokenTTL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowOrigins)
}

func TestLoad_BadTTLFallsBack(t *testing.T) {
	for _, v := range []string{"abc", "0", "-3"} {
		t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", v)
		assert.Equal(t, 30*time.Minute, Load().AccessTokenTTL, v)
	}
}

func TestValidate_RequiresSecret(t *testing.T) {
	cfg := &Config{PostgresUrl: "postgres://localhost/rede"}
	assert.EqualError(t, cfg.Validate(), "SECRET_KEY environment variable not set")
}

func TestNewLogger(t *testing.T) {
	log := NewLogger(&Config{Env: "production", LogLevel: "debug"})
	assert.Equal(t, "debug", log.GetLevel().String())

	log = NewLogger(&Config{LogLevel: "nonsense"})
	assert.Equal(t, "info", log.GetLevel().String())
}
