package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Env              string
	HTTPPort         string
	DatabaseURL      string
	JWTAccessSecret  string
	JWTRefreshSecret string
	JWTIssuer        string
	RateRPS          int
	// Business timezone as a fixed UTC offset in hours. Daily limits are
	// counted per calendar day in this zone.
	TZOffsetHours int
}

func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		Env:              get("APP_ENV", "dev"),
		HTTPPort:         get("HTTP_PORT", "8080"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		JWTAccessSecret:  get("JWT_ACCESS_SECRET", "changeme-access"),
		JWTRefreshSecret: get("JWT_REFRESH_SECRET", "changeme-refresh"),
		JWTIssuer:        get("JWT_ISSUER", "fuelcard-backend"),
		RateRPS:          getInt("RATE_RPS", 100),
		TZOffsetHours:    getInt("BUSINESS_TZ_OFFSET_HOURS", 3),
	}
	return cfg
}

func get(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func getInt(key string, def int) int {
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
