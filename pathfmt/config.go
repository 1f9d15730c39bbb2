package pathfmt

// Config selects which normalization transforms run. Each field is
// independent and all combinations are valid. The zero value disables every
// transform; DefaultConfig enables them all.
type Config struct {
	// StripEscapes removes terminal escape sequences (e.g. "\x1b[31m")
	// before any other transform. This is the only transform that can
	// fail: the remaining bytes must be valid UTF-8.
	StripEscapes bool

	// StripDisallowed removes the characters Windows forbids in filenames:
	// * ? " < > |
	StripDisallowed bool

	// ResolveParents resolves "." and ".." components at the string level,
	// e.g. "/a/b/../c" becomes "/a/c". No filesystem access is involved.
	ResolveParents bool

	// CollapseSlashes collapses runs of forward slashes,
	// e.g. "/home//user" becomes "/home/user".
	CollapseSlashes bool

	// UnifyBackslashes replaces every backslash with a forward slash,
	// unifying Windows-style separators to Unix style.
	UnifyBackslashes bool
}

// DefaultConfig returns a Config with every transform enabled.
func DefaultConfig() Config {
	return Config{
		StripEscapes:     true,
		StripDisallowed:  true,
		ResolveParents:   true,
		CollapseSlashes:  true,
		UnifyBackslashes: true,
	}
}
