// Package styles maps case style names to casefmt renders, shared by the
// CLI and the MCP server.
package styles

import "github.com/erraggy/fmttools/casefmt"

// Names lists the supported case style names in display order.
var Names = []string{"camel", "pascal", "snake", "kebab", "dot", "title", "lower", "upper"}

// Valid reports whether name is a supported style name.
func Valid(name string) bool {
	for _, n := range Names {
		if n == name {
			return true
		}
	}
	return false
}

// Render renders f in the named style. The second return value is false
// for an unknown style name.
func Render(f *casefmt.Formatter, name string) (string, bool) {
	switch name {
	case "camel":
		return f.CamelCase(), true
	case "pascal":
		return f.PascalCase(), true
	case "snake":
		return f.SnakeCase(), true
	case "kebab":
		return f.KebabCase(), true
	case "dot":
		return f.DotCase(), true
	case "title":
		return f.TitleCase(), true
	case "lower":
		return f.LowerCase(), true
	case "upper":
		return f.UpperCase(), true
	default:
		return "", false
	}
}

// All renders every style, keyed by style name.
func All(f *casefmt.Formatter) map[string]string {
	out := make(map[string]string, len(Names))
	for _, name := range Names {
		s, _ := Render(f, name)
		out[name] = s
	}
	return out
}
