package config

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv              string
	AppName             string
	AppPort             string
	CORSAllowOrigins    []string
	OpenAIAPIKey        string
	OpenAIModel         string
	OpenAIBaseURL       string
	AIUseMock           bool
	AITemperature       float64
	AIMaxOutputTokens   int
	AITimeoutSeconds    int
	SessionTTLMinutes   int
	SessionSweepMinutes int
	RateLimitPerSecond  float64
	RateLimitBurst      int
}

func Load() Config {
	_ = godotenv.Load(".env")

	return Config{
		AppEnv:              getEnv("APP_ENV", "local"),
		AppName:             getEnv("APP_NAME", "rebound-ai"),
		AppPort:             getEnv("APP_PORT", "5050"),
		CORSAllowOrigins:    getEnvCSV("CORS_ALLOW_ORIGINS", []string{"*"}),
		OpenAIAPIKey:        getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:         getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		OpenAIBaseURL:       getEnv("OPENAI_BASE_URL", ""),
		AIUseMock:           getEnvBool("AI_USE_MOCK", false),
		AITemperature:       getEnvFloat("AI_TEMPERATURE", 0.85),
		AIMaxOutputTokens:   getEnvInt("AI_MAX_OUTPUT_TOKENS", 200),
		AITimeoutSeconds:    getEnvInt("AI_TIMEOUT_SECONDS", 20),
		SessionTTLMinutes:   getEnvInt("SESSION_TTL_MINUTES", 120),
		SessionSweepMinutes: getEnvInt("SESSION_SWEEP_MINUTES", 10),
		RateLimitPerSecond:  getEnvFloat("RATE_LIMIT_RPS", 5),
		RateLimitBurst:      getEnvInt("RATE_LIMIT_BURST", 20),
	}
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.AppPort) == "" {
		return errors.New("APP_PORT is required")
	}
	if !c.AIUseMock && strings.TrimSpace(c.OpenAIAPIKey) == "" {
		return errors.New("OPENAI_API_KEY is required unless AI_USE_MOCK is enabled")
	}
	if c.AITemperature < 0 || c.AITemperature > 2 {
		return errors.New("AI_TEMPERATURE must be between 0 and 2")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvCSV(key string, fallback []string) []string {
	raw, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(raw) == "" {
		return fallback
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, item := range parts {
		trimmed := strings.TrimSpace(item)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	if len(result) == 0 {
		return fallback
	}
	return result
}

func getEnvBool(key string, fallback bool) bool {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(value) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvFloat(key string, fallback float64) float64 {
	value, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(value) == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return fallback
	}
	return parsed
}
