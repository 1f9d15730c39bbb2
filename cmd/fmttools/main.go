package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/erraggy/fmttools"
	"github.com/erraggy/fmttools/casefmt"
	"github.com/erraggy/fmttools/cmd/fmttools/commands"
	"github.com/erraggy/fmttools/internal/cliutil"
	"github.com/erraggy/fmttools/internal/mcpserver"
	"github.com/erraggy/fmttools/internal/styles"
	"github.com/erraggy/fmttools/pathfmt"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Println(fmttools.BuildInfo())
	case "help", "-h", "--help":
		printUsage()
	case "case":
		if err := handleCase(os.Args[2:], os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "path":
		if err := handlePath(os.Args[2:], os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "mcp":
		if err := handleMCP(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean '%s'?\n", suggestion)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}
}

// caseFlags contains flags for the case command
type caseFlags struct {
	style  string
	format string
}

func setupCaseFlags() (*flag.FlagSet, *caseFlags) {
	fs := flag.NewFlagSet("case", flag.ContinueOnError)
	flags := &caseFlags{}

	fs.StringVar(&flags.style, "style", "", "render a single style: "+strings.Join(styles.Names, ", ")+" (default: all styles)")
	fs.StringVar(&flags.format, "format", commands.FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: fmttools case [flags] <input|->\n\n")
		_, _ = fmt.Fprintf(output, "Convert a string between naming conventions.\n")
		_, _ = fmt.Fprintf(output, "Use '-' as the input to read from stdin.\n\n")
		_, _ = fmt.Fprintf(output, "Flags:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(output, "\nExamples:\n")
		_, _ = fmt.Fprintf(output, "  fmttools case brew_coffee\n")
		_, _ = fmt.Fprintf(output, "  fmttools case -style camel \"Brew Coffee\"\n")
		_, _ = fmt.Fprintf(output, "  echo brewCoffee | fmttools case -style snake -\n")
	}

	return fs, flags
}

// caseResult is the structured output of the case command.
type caseResult struct {
	Input  string            `json:"input"            yaml:"input"`
	Tokens []string          `json:"tokens"           yaml:"tokens"`
	Style  string            `json:"style,omitempty"  yaml:"style,omitempty"`
	Result string            `json:"result,omitempty" yaml:"result,omitempty"`
	Styles map[string]string `json:"styles,omitempty" yaml:"styles,omitempty"`
}

func handleCase(args []string, stdout io.Writer) error {
	fs, flags := setupCaseFlags()

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	if err := commands.ValidateOutputFormat(flags.format); err != nil {
		return err
	}
	if flags.style != "" && !styles.Valid(flags.style) {
		return fmt.Errorf("unknown style '%s'. Valid styles: %s", flags.style, strings.Join(styles.Names, ", "))
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("case command requires exactly one input string")
	}

	input, err := readInput(fs.Arg(0))
	if err != nil {
		return err
	}

	f := casefmt.New(input)
	result := caseResult{Input: input, Tokens: f.Tokens()}

	if flags.style != "" {
		result.Style = flags.style
		result.Result, _ = styles.Render(f, flags.style)
	} else {
		result.Styles = styles.All(f)
	}

	if flags.format != commands.FormatText {
		return commands.OutputStructured(stdout, result, flags.format)
	}

	if flags.style != "" {
		cliutil.Writeln(stdout, result.Result)
		return nil
	}
	for _, name := range styles.Names {
		cliutil.Writef(stdout, "%-7s %s\n", commands.StyleHeading(name)+":", result.Styles[name])
	}
	return nil
}

// pathFlags contains flags for the path command
type pathFlags struct {
	keepEscapes       bool
	keepDisallowed    bool
	keepParents       bool
	keepDoubleSlashes bool
	keepBackslashes   bool
	format            string
}

func setupPathFlags() (*flag.FlagSet, *pathFlags) {
	fs := flag.NewFlagSet("path", flag.ContinueOnError)
	flags := &pathFlags{}

	fs.BoolVar(&flags.keepEscapes, "keep-escapes", false, "do not strip terminal escape sequences")
	fs.BoolVar(&flags.keepDisallowed, "keep-disallowed", false, "do not strip the characters Windows forbids in filenames")
	fs.BoolVar(&flags.keepParents, "keep-parents", false, "do not resolve . and .. components")
	fs.BoolVar(&flags.keepDoubleSlashes, "keep-double-slashes", false, "do not collapse duplicate forward slashes")
	fs.BoolVar(&flags.keepBackslashes, "keep-backslashes", false, "do not replace backslashes with forward slashes")
	fs.StringVar(&flags.format, "format", commands.FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: fmttools path [flags] <path|->\n\n")
		_, _ = fmt.Fprintf(output, "Normalize a path string without filesystem access.\n")
		_, _ = fmt.Fprintf(output, "All transforms are enabled by default; each keep-* flag disables one.\n")
		_, _ = fmt.Fprintf(output, "Use '-' as the path to read from stdin.\n\n")
		_, _ = fmt.Fprintf(output, "Flags:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(output, "\nExamples:\n")
		_, _ = fmt.Fprintf(output, "  fmttools path 'C:\\Users\\\\test'\n")
		_, _ = fmt.Fprintf(output, "  fmttools path -keep-disallowed '/path/with/*globs'\n")
		_, _ = fmt.Fprintf(output, "  fmttools path -format json './home/file.txt'\n")
	}

	return fs, flags
}

// pathResult is the structured output of the path command.
type pathResult struct {
	Input      string `json:"input"      yaml:"input"`
	Normalized string `json:"normalized" yaml:"normalized"`
	Changed    bool   `json:"changed"    yaml:"changed"`
}

func handlePath(args []string, stdout io.Writer) error {
	fs, flags := setupPathFlags()

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	if err := commands.ValidateOutputFormat(flags.format); err != nil {
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("path command requires exactly one path string")
	}

	input, err := readInput(fs.Arg(0))
	if err != nil {
		return err
	}

	cfg := pathfmt.DefaultConfig()
	cfg.StripEscapes = !flags.keepEscapes
	cfg.StripDisallowed = !flags.keepDisallowed
	cfg.ResolveParents = !flags.keepParents
	cfg.CollapseSlashes = !flags.keepDoubleSlashes
	cfg.UnifyBackslashes = !flags.keepBackslashes

	normalized, err := pathfmt.NormalizeWith(input, cfg)
	if err != nil {
		return fmt.Errorf("normalizing path: %w", err)
	}

	result := pathResult{Input: input, Normalized: normalized, Changed: normalized != input}

	if flags.format != commands.FormatText {
		return commands.OutputStructured(stdout, result, flags.format)
	}

	cliutil.Writeln(stdout, result.Normalized)
	return nil
}

func handleMCP() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return mcpserver.Run(ctx)
}

// readInput returns arg itself, or all of stdin when arg is "-".
// Stdin input has a single trailing newline trimmed so that
// `echo value | fmttools case -` behaves like `fmttools case value`.
func readInput(arg string) (string, error) {
	if arg != commands.StdinInput {
		return arg, nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	s := string(data)
	s = strings.TrimSuffix(s, "\n")
	s = strings.TrimSuffix(s, "\r")
	return s, nil
}

// cliCommands lists the command names used for typo suggestions.
var cliCommands = []string{"case", "path", "mcp", "version", "help"}

// suggestCommand returns the closest known command within an edit distance
// of 2, or "" when nothing is close enough.
func suggestCommand(input string) string {
	best := ""
	bestDist := 3

	for _, cmd := range cliCommands {
		if d := editDistance(input, cmd); d < bestDist {
			best = cmd
			bestDist = d
		}
	}
	return best
}

// editDistance computes the Levenshtein distance between two strings.
func editDistance(a, b string) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)

	for j := 0; j <= len(b); j++ {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func printUsage() {
	fmt.Println(`fmttools - Text Normalization Tools

Usage:
  fmttools <command> [options]

Commands:
  case        Convert a string between naming conventions
  path        Normalize a path string (no filesystem access)
  mcp         Run the MCP server over stdio
  version     Show version information
  help        Show this help message

Examples:
  fmttools case brew_coffee
  fmttools case -style camel "Brew Coffee"
  fmttools path 'C:\Users\\test'
  fmttools path -format json -keep-parents './a/../b'

Run 'fmttools <command> --help' for more information on a command.`)
}
