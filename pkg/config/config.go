package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	AppEnv   string
	LogLevel string

	HTTPPort int

	Postgres Postgres
	Redis    Redis

	SessionCookie string
	SessionTTL    time.Duration

	CheckoutWorkers int
}

type Postgres struct {
	Host string
	Port int
	User string
	Pass string
	DB   string
}

type Redis struct {
	Addr string
}

func Load() Config {
	return Config{
		AppEnv:   getEnv("APP_ENV", "dev"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		HTTPPort: getEnvInt("HTTP_PORT", 8080),
		Postgres: Postgres{
			Host: getEnv("POSTGRES_HOST", "localhost"),
			Port: getEnvInt("POSTGRES_PORT", 5432),
			User: getEnv("POSTGRES_USER", "gamestore"),
			Pass: getEnv("POSTGRES_PASSWORD", "gamestorepassword"),
			DB:   getEnv("POSTGRES_DB", "gamestore_db"),
		},
		Redis: Redis{
			Addr: getEnv("REDIS_ADDR", "localhost:6379"),
		},
		SessionCookie:   getEnv("SESSION_COOKIE", "gs_session"),
		SessionTTL:      getEnvDuration("SESSION_TTL", 72*time.Hour),
		CheckoutWorkers: getEnvInt("CHECKOUT_WORKERS", 10),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)

	if v == "" {
		return def
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}

	return n
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)

	if v == "" {
		return def
	}

	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}

	return d
}
