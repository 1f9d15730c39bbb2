package mcpserver

import (
	"context"

	"github.com/erraggy/fmttools/pathfmt"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// pathNormalizeInput uses negative keep_* flags so the zero value means
// "apply the server defaults": a true flag disables that transform for
// this call.
type pathNormalizeInput struct {
	Path              string `json:"path"                          jsonschema:"The path string to normalize"`
	KeepEscapes       bool   `json:"keep_escapes,omitempty"        jsonschema:"Do not strip terminal escape sequences"`
	KeepDisallowed    bool   `json:"keep_disallowed,omitempty"     jsonschema:"Do not strip the characters Windows forbids in filenames"`
	KeepParents       bool   `json:"keep_parents,omitempty"        jsonschema:"Do not resolve . and .. components"`
	KeepDoubleSlashes bool   `json:"keep_double_slashes,omitempty" jsonschema:"Do not collapse duplicate forward slashes"`
	KeepBackslashes   bool   `json:"keep_backslashes,omitempty"    jsonschema:"Do not replace backslashes with forward slashes"`
}

type pathNormalizeOutput struct {
	Normalized string `json:"normalized"`
	Changed    bool   `json:"changed"`
}

func handlePathNormalize(_ context.Context, _ *mcp.CallToolRequest, input pathNormalizeInput) (*mcp.CallToolResult, pathNormalizeOutput, error) {
	pc := cfg.PathConfig
	if input.KeepEscapes {
		pc.StripEscapes = false
	}
	if input.KeepDisallowed {
		pc.StripDisallowed = false
	}
	if input.KeepParents {
		pc.ResolveParents = false
	}
	if input.KeepDoubleSlashes {
		pc.CollapseSlashes = false
	}
	if input.KeepBackslashes {
		pc.UnifyBackslashes = false
	}

	normalized, err := pathfmt.NormalizeWith(input.Path, pc)
	if err != nil {
		return errResult(err), pathNormalizeOutput{}, nil
	}

	return nil, pathNormalizeOutput{
		Normalized: normalized,
		Changed:    normalized != input.Path,
	}, nil
}
