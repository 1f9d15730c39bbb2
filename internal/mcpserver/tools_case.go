package mcpserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/erraggy/fmttools/casefmt"
	"github.com/erraggy/fmttools/internal/styles"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type caseConvertInput struct {
	Input string `json:"input"           jsonschema:"The string to convert"`
	Style string `json:"style,omitempty" jsonschema:"Target style: camel\\, pascal\\, snake\\, kebab\\, dot\\, title\\, lower\\, or upper. Omit to get every style."`
}

type caseConvertOutput struct {
	Tokens []string          `json:"tokens"`
	Style  string            `json:"style,omitempty"`
	Result string            `json:"result,omitempty"`
	Styles map[string]string `json:"styles,omitempty"`
}

func handleCaseConvert(_ context.Context, _ *mcp.CallToolRequest, input caseConvertInput) (*mcp.CallToolResult, caseConvertOutput, error) {
	style := input.Style
	if style == "" {
		style = cfg.CaseStyle
	}
	if style != "" && !styles.Valid(style) {
		return errResult(fmt.Errorf("unknown style %q: valid styles are %s",
			style, strings.Join(styles.Names, ", "))), caseConvertOutput{}, nil
	}

	f := casefmt.New(input.Input)
	output := caseConvertOutput{Tokens: f.Tokens()}

	if style != "" {
		output.Style = style
		output.Result, _ = styles.Render(f, style)
		return nil, output, nil
	}

	output.Styles = styles.All(f)
	return nil, output, nil
}
