package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port string

	// Tutorial data sources
	StepsPath      string
	TranscriptPath string

	// Auth (optional; empty disables bearer auth)
	ChatbotAPIKey string

	// OpenAI completion
	OpenAIAPIKey string
	OpenAIModel  string
	LLMMaxTokens int
	LLMTimeout   time.Duration

	// Retrieval tuning
	MaxSteps          int
	SnippetLength     int
	RetrievalStrategy string

	// CORS
	AllowedOrigins []string
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8085"),

		StepsPath:      os.Getenv("STEPS_PATH"),
		TranscriptPath: os.Getenv("TRANSCRIPT_PATH"),

		ChatbotAPIKey: os.Getenv("CHATBOT_API_KEY"),

		OpenAIAPIKey: os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:  envOr("OPENAI_MODEL", "gpt-4o-mini"),
		LLMMaxTokens: envInt("LLM_MAX_TOKENS", 700),
		LLMTimeout:   envDuration("LLM_TIMEOUT", 60*time.Second),

		MaxSteps:          envInt("MAX_STEPS", 4),
		SnippetLength:     envInt("SNIPPET_LENGTH", 1200),
		RetrievalStrategy: envOr("RETRIEVAL_STRATEGY", "keyword"),

		AllowedOrigins: splitCSV(envOr("ALLOWED_ORIGINS", "*")),
	}

	if cfg.MaxSteps <= 0 {
		cfg.MaxSteps = 4
	}
	if cfg.SnippetLength <= 0 {
		cfg.SnippetLength = 1200
	}
	if cfg.LLMMaxTokens <= 0 {
		cfg.LLMMaxTokens = 700
	}
	if cfg.LLMTimeout <= 0 {
		cfg.LLMTimeout = 60 * time.Second
	}

	return cfg
}

func (c Config) Validate() error {
	if c.OpenAIAPIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY is required")
	}
	if c.StepsPath == "" {
		return fmt.Errorf("STEPS_PATH is required")
	}
	switch c.RetrievalStrategy {
	case "keyword", "first-n":
	default:
		return fmt.Errorf("RETRIEVAL_STRATEGY must be %q or %q, got %q", "keyword", "first-n", c.RetrievalStrategy)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	var out []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
