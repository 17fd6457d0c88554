package mcpserver

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/marvinmarnold/mcp-demo/internal/llm/anthropic"
)

// serverConfig holds all configurable server settings.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// Collaborator settings.
	APIKey      string
	Model       string
	MaxTokens   int
	HTTPTimeout time.Duration

	// Optional prompt template override file.
	TemplateFile string
}

// loadConfig reads configuration from the environment. Invalid values log a
// warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		APIKey:       os.Getenv("ANTHROPIC_API_KEY"),
		Model:        envString("MCPDEMO_MODEL", anthropic.DefaultModel),
		MaxTokens:    envInt("MCPDEMO_MAX_TOKENS", 4096),
		HTTPTimeout:  envDuration("MCPDEMO_HTTP_TIMEOUT", 2*time.Minute),
		TemplateFile: envString("MCPDEMO_TEMPLATE_FILE", ""),
	}
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		slog.Warn("invalid duration env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return d
}
