package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds everything the dashboard needs that is not stored in
// PocketBase: how to reach the remote backend API and the company
// letterhead printed on exported documents.
type Config struct {
	BackendBaseURL   string
	BackendTimeoutMs int
	BackendRetryMax  int
	BackendRateRPS   int

	DefaultCurrency string

	CompanyName    string
	CompanyAddress string
	CompanyCity    string
	CompanyPhone   string
	CompanyEmail   string

	QuoteValidityDays int
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		BackendBaseURL:   getEnv("BACKEND_API_BASE_URL", "http://localhost:8000/api/"),
		BackendTimeoutMs: getEnvInt("BACKEND_TIMEOUT_MS", 15000),
		BackendRetryMax:  getEnvInt("BACKEND_RETRY_MAX", 4),
		BackendRateRPS:   getEnvInt("BACKEND_RATE_LIMIT_RPS", 10),

		DefaultCurrency: getEnv("DEFAULT_CURRENCY", "USD"),

		CompanyName:    getEnv("COMPANY_NAME", "Supply Nd Product"),
		CompanyAddress: getEnv("COMPANY_ADDRESS", "Gota"),
		CompanyCity:    getEnv("COMPANY_CITY", "Ahmedabad, 363310"),
		CompanyPhone:   getEnv("COMPANY_PHONE", "+91 9876543234"),
		CompanyEmail:   getEnv("COMPANY_EMAIL", "supplynproduct@gmail.com"),

		QuoteValidityDays: getEnvInt("QUOTE_VALIDITY_DAYS", 30),
	}

	if strings.TrimSpace(cfg.BackendBaseURL) == "" {
		return Config{}, fmt.Errorf("BACKEND_API_BASE_URL must not be empty")
	}
	if cfg.BackendTimeoutMs <= 0 {
		return Config{}, fmt.Errorf("BACKEND_TIMEOUT_MS must be positive, got %d", cfg.BackendTimeoutMs)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return fallback
	}
	return n
}
