package mcpserver

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/erraggy/fmttools/internal/styles"
	"github.com/erraggy/fmttools/pathfmt"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// CaseStyle is the default style for case_convert when a call omits
	// one. Empty means "render every style".
	CaseStyle string

	// PathConfig holds the default path normalization toggles.
	PathConfig pathfmt.Config
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from FMTTOOLS_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		CaseStyle: envStyle("FMTTOOLS_CASE_STYLE"),
		PathConfig: pathfmt.Config{
			StripEscapes:     envBool("FMTTOOLS_PATH_STRIP_ESCAPES", true),
			StripDisallowed:  envBool("FMTTOOLS_PATH_STRIP_DISALLOWED", true),
			ResolveParents:   envBool("FMTTOOLS_PATH_RESOLVE_PARENTS", true),
			CollapseSlashes:  envBool("FMTTOOLS_PATH_COLLAPSE_SLASHES", true),
			UnifyBackslashes: envBool("FMTTOOLS_PATH_UNIFY_BACKSLASHES", true),
		},
	}
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return b
}

func envStyle(key string) string {
	v := os.Getenv(key)
	if v == "" {
		return ""
	}
	if !styles.Valid(v) {
		slog.Warn("invalid style env var, rendering all styles", "key", key, "value", v)
		return ""
	}
	return v
}
