package pathfmt

import (
	"strings"
	"unicode/utf8"

	"github.com/erraggy/fmttools/internal/ansi"
)

// Normalize canonicalizes a path string using DefaultConfig.
//
// Example: `C:\Users\\test` -> "C:/Users/test"
// Example: "/home/my_user/Workspace/../Vault/" -> "/home/my_user/Vault/"
func Normalize(path string) (string, error) {
	return NormalizeWith(path, DefaultConfig())
}

// NormalizeWith canonicalizes a path string, running only the transforms
// cfg enables. The transforms run in a fixed order: escape stripping,
// backslash unification, duplicate-slash collapsing, disallowed-character
// removal, then parent-directory resolution. A trailing slash on the input
// is restored on the output, and a result of exactly "./" collapses to "".
//
// The only possible error is a *InvalidTextError, and only when
// cfg.StripEscapes is enabled.
func NormalizeWith(path string, cfg Config) (string, error) {
	endsWithSlash := strings.HasSuffix(path, "/")

	if cfg.StripEscapes {
		stripped := ansi.Strip([]byte(path))
		if off := invalidOffset(stripped); off >= 0 {
			return "", newInvalidText(stripped[off], off)
		}
		path = string(stripped)
	}

	if cfg.UnifyBackslashes {
		path = strings.ReplaceAll(path, "\\", "/")
	}

	if cfg.CollapseSlashes {
		path = collapseSlashes(path)
	}

	if cfg.StripDisallowed {
		path = stripDisallowed(path)
	}

	if cfg.ResolveParents {
		path = resolveParents(path)
	}

	if endsWithSlash && !strings.HasSuffix(path, "/") {
		path += "/"
	}

	if path == "./" {
		return "", nil
	}

	return path, nil
}

// collapseSlashes drops every forward slash that immediately follows
// another emitted forward slash. The scan is byte-wise: with escape
// stripping disabled the input carries no UTF-8 validity guarantee, and
// non-ASCII bytes must pass through untouched.
func collapseSlashes(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevSlash := false

	for i := 0; i < len(s); i++ {
		if s[i] == '/' && prevSlash {
			continue
		}
		b.WriteByte(s[i])
		prevSlash = s[i] == '/'
	}

	return b.String()
}

// stripDisallowed removes the characters Windows forbids in filenames.
// Byte-wise for the same reason as collapseSlashes.
func stripDisallowed(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '*', '?', '"', '<', '>', '|':
		default:
			b.WriteByte(s[i])
		}
	}

	return b.String()
}

// rootMarker is the stack entry representing an absolute-path root. It is an
// ordinary stack entry: a ".." can pop it, so "/.." resolves to ".".
const rootMarker = "/"

// resolveParents resolves "." and ".." components by walking the slash-split
// components with a stack. A ".." pops the most recent entry and is silently
// ignored when the stack is empty, so resolution never escapes above the
// start of the string. An all-consumed path yields ".".
func resolveParents(s string) string {
	var stack []string
	if strings.HasPrefix(s, "/") {
		stack = append(stack, rootMarker)
	}

	for _, comp := range strings.Split(s, "/") {
		switch comp {
		case "", ".":
			// Empty components (duplicate or trailing slashes) and
			// current-directory references contribute nothing.
		case "..":
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		default:
			stack = append(stack, comp)
		}
	}

	switch {
	case len(stack) == 0:
		return "."
	case stack[0] == rootMarker:
		return "/" + strings.Join(stack[1:], "/")
	default:
		return strings.Join(stack, "/")
	}
}

// invalidOffset returns the byte offset of the first invalid UTF-8 sequence
// in b, or -1 if b is valid.
func invalidOffset(b []byte) int {
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return -1
}
