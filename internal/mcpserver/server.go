// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes fmttools capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"

	"github.com/erraggy/fmttools"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `fmttools MCP server — converts strings between naming conventions and normalizes path strings.

Configuration: All defaults are configurable via FMTTOOLS_* environment variables set in your MCP client config. The Go MCP SDK does not support initializationOptions; use env vars instead.

Key settings:
- FMTTOOLS_CASE_STYLE — default style for case_convert when the call omits one (default: return all styles)
- FMTTOOLS_PATH_STRIP_ESCAPES (default: true) — strip terminal escape sequences
- FMTTOOLS_PATH_STRIP_DISALLOWED (default: true) — strip * ? " < > |
- FMTTOOLS_PATH_RESOLVE_PARENTS (default: true) — resolve . and .. components
- FMTTOOLS_PATH_COLLAPSE_SLASHES (default: true) — collapse duplicate forward slashes
- FMTTOOLS_PATH_UNIFY_BACKSLASHES (default: true) — replace backslashes with forward slashes

Both tools are pure string transforms: no filesystem or network access.`

// Run starts the MCP server over stdio and blocks until the client
// disconnects or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "fmttools", Version: fmttools.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "case_convert",
		Description: "Convert a string between naming conventions. Splits the input into word tokens (separator characters and camelCase boundaries both count as word breaks) and renders them in the requested style. Styles: camel, pascal, snake, kebab, dot, title, lower, upper. Omit style to get every style at once. The default style is configurable via FMTTOOLS_CASE_STYLE.",
	}, handleCaseConvert)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "path_normalize",
		Description: "Normalize a path string without filesystem access: strips terminal escape sequences, unifies backslashes to forward slashes, collapses duplicate slashes, removes characters Windows forbids in filenames, and resolves . and .. components at the string level. Each transform can be disabled per call with the keep_* flags; defaults are configurable via FMTTOOLS_PATH_* env vars.",
	}, handlePathNormalize)
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
	}
}
