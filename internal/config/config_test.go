package config

import "testing"

func TestValidateRequiresProviderKeyWithoutMock(t *testing.T) {
	cfg := Config{AppPort: "5050"}
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected validation to fail without OPENAI_API_KEY")
	}

	cfg.AIUseMock = true
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected mock mode to pass without a key: %v", err)
	}

	cfg.AIUseMock = false
	cfg.OpenAIAPIKey = "sk-test"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected validation to pass with a key: %v", err)
	}
}

func TestValidateRejectsOutOfRangeTemperature(t *testing.T) {
	cfg := Config{AppPort: "5050", AIUseMock: true, AITemperature: 3.5}
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected out-of-range temperature to fail validation")
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_PORT", "")
	t.Setenv("AI_TEMPERATURE", "")
	t.Setenv("SESSION_TTL_MINUTES", "")

	cfg := Load()
	if cfg.AppPort != "5050" {
		t.Fatalf("expected default port 5050, got %q", cfg.AppPort)
	}
	if cfg.AITemperature != 0.85 {
		t.Fatalf("expected default temperature 0.85, got %v", cfg.AITemperature)
	}
	if cfg.SessionTTLMinutes != 120 {
		t.Fatalf("expected default session TTL 120, got %d", cfg.SessionTTLMinutes)
	}
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("APP_PORT", "9000")
	t.Setenv("AI_MAX_OUTPUT_TOKENS", "350")
	t.Setenv("AI_USE_MOCK", "true")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://app.example.com, https://staging.example.com")
	t.Setenv("RATE_LIMIT_RPS", "2.5")

	cfg := Load()
	if cfg.AppPort != "9000" {
		t.Fatalf("expected port 9000, got %q", cfg.AppPort)
	}
	if cfg.AIMaxOutputTokens != 350 {
		t.Fatalf("expected 350 output tokens, got %d", cfg.AIMaxOutputTokens)
	}
	if !cfg.AIUseMock {
		t.Fatalf("expected mock mode enabled")
	}
	if len(cfg.CORSAllowOrigins) != 2 || cfg.CORSAllowOrigins[1] != "https://staging.example.com" {
		t.Fatalf("unexpected CORS origins: %v", cfg.CORSAllowOrigins)
	}
	if cfg.RateLimitPerSecond != 2.5 {
		t.Fatalf("expected rps 2.5, got %v", cfg.RateLimitPerSecond)
	}
}

func TestEnvHelpersIgnoreMalformedValues(t *testing.T) {
	t.Setenv("AI_TIMEOUT_SECONDS", "soon")
	t.Setenv("AI_USE_MOCK", "definitely")
	t.Setenv("AI_TEMPERATURE", "warm")

	cfg := Load()
	if cfg.AITimeoutSeconds != 20 {
		t.Fatalf("expected fallback timeout 20, got %d", cfg.AITimeoutSeconds)
	}
	if cfg.AIUseMock {
		t.Fatalf("expected fallback mock=false for malformed bool")
	}
	if cfg.AITemperature != 0.85 {
		t.Fatalf("expected fallback temperature for malformed float, got %v", cfg.AITemperature)
	}
}
