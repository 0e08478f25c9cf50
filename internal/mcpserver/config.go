package mcpserver

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/erraggy/namekit/element"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// Preview tool defaults.
	PreviewLimit int
	MaxLimit     int

	// DefaultScope applies when a tool call names no scope.
	DefaultScope element.Scope

	// DryRun makes apply report changes without writing them unless the
	// call sets dry_run explicitly.
	DryRun bool

	// MaxInlineSize caps inline document content, in bytes.
	MaxInlineSize int64
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from NAMEKIT_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		PreviewLimit:  envInt("NAMEKIT_PREVIEW_LIMIT", 100),
		MaxLimit:      envInt("NAMEKIT_MAX_LIMIT", 1000),
		DefaultScope:  envScope("NAMEKIT_DEFAULT_SCOPE", element.CurrentPage),
		DryRun:        envBool("NAMEKIT_DRY_RUN", false),
		MaxInlineSize: int64(envInt("NAMEKIT_MAX_INLINE_SIZE", 10*1024*1024)),
	}
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return b
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return n
}

func envScope(key string, fallback element.Scope) element.Scope {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	scope, err := element.ParseScope(v)
	if err != nil {
		slog.Warn("invalid scope env var, using default", "key", key, "value", v, "default", fallback.String()) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return scope
}
