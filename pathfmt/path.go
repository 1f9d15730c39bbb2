package pathfmt

import "strings"

// Path is a structured slash-delimited path value. It exists for callers
// that pass paths around as a distinct type rather than bare strings; its
// display form is the string itself, so normalizing a Path is behaviorally
// identical to normalizing the equivalent string.
type Path string

// String returns the display form of the path.
func (p Path) String() string {
	return string(p)
}

// Components returns the non-empty slash-separated components of the path.
func (p Path) Components() []string {
	var comps []string
	for _, c := range strings.Split(string(p), "/") {
		if c != "" {
			comps = append(comps, c)
		}
	}
	return comps
}

// NormalizePath canonicalizes a Path using DefaultConfig, by normalizing its
// display form and reconstructing the value.
func NormalizePath(p Path) (Path, error) {
	return NormalizePathWith(p, DefaultConfig())
}

// NormalizePathWith canonicalizes a Path with an explicit Config. See
// NormalizeWith for the transform semantics.
func NormalizePathWith(p Path, cfg Config) (Path, error) {
	s, err := NormalizeWith(p.String(), cfg)
	if err != nil {
		return "", err
	}
	return Path(s), nil
}
