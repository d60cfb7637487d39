package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// RefreshTokenTTL is the lifetime of refresh tokens issued at login.
const RefreshTokenTTL = 7 * 24 * time.Hour

type Config struct {
	Port             string
	Env              string
	PostgresUrl      string
	SecretKey        string
	AccessTokenTTL   time.Duration
	MetricsPort      string
	LogLevel         string
	CORSAllowOrigins []string
}

// Load reads the optional .env file and then the process environment.
func Load() *Config {
	// A missing .env is fine, the variables may come from the environment.
	_ = godotenv.Load()

	minutes, err := strconv.Atoi(getEnv("ACCESS_TOKEN_EXPIRE_MINUTES", "30"))
	if err != nil || minutes <= 0 {
		minutes = 30
	}

	return &Config{
		Port:             getEnv("PORT", "8080"),
		Env:              getEnv("ENV", "development"),
		PostgresUrl:      getEnv("POSTGRES_CONN_STR", ""),
		SecretKey:        getEnv("SECRET_KEY", ""),
		AccessTokenTTL:   time.Duration(minutes) * time.Minute,
		MetricsPort:      getEnv("METRICS_PORT", "9090"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		CORSAllowOrigins: splitList(getEnv("CORS_ALLOW_ORIGINS", "*")),
	}
}

// Validate reports settings the server cannot start without.
func (c *Config) Validate() error {
	if c.PostgresUrl == "" {
		return fmt.Errorf("POSTGRES_CONN_STR environment variable not set")
	}
	if c.SecretKey == "" {
		return fmt.Errorf("SECRET_KEY environment variable not set")
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
