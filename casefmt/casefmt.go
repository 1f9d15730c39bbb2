package casefmt

import "strings"

// Formatter holds the word tokens extracted from an input string and renders
// them into named case styles. The token sequence is built once by New and
// never mutated afterward, so a Formatter is safe for concurrent use.
type Formatter struct {
	tokens []string
}

// New builds a Formatter by tokenizing input. Tokenization happens eagerly;
// the renders themselves are cheap joins over the stored tokens.
func New(input string) *Formatter {
	return &Formatter{tokens: splitWords(input)}
}

// Tokens returns a copy of the extracted word tokens, in input order.
// Each token is non-empty, lowercase, and contains only ASCII letters and
// digits. Mutating the returned slice does not affect the Formatter.
func (f *Formatter) Tokens() []string {
	if len(f.tokens) == 0 {
		return nil
	}
	out := make([]string, len(f.tokens))
	copy(out, f.tokens)
	return out
}

// splitWords extracts lowercase word tokens from an arbitrary string.
//
// Pass 1 classifies characters: ASCII letters and digits pass through,
// separator characters collapse to a single space boundary, everything else
// is deleted. Pass 2 inserts a boundary at each lowercase-to-uppercase
// transition. Pass 3 lowercases and splits on whitespace.
// Example: "b&rewCoffee" -> ["brew", "coffee"] (deletion precedes boundary
// detection, so the "&" vanishes before the w->C boundary is found)
func splitWords(input string) []string {
	var compressed strings.Builder
	compressed.Grow(len(input))
	prevSpace := false

	for _, r := range input {
		switch {
		case r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9':
			compressed.WriteRune(r)
			prevSpace = false
		case r == '_' || r == ',' || r == '.' || r == '-' || r == ' ':
			if !prevSpace {
				compressed.WriteByte(' ')
				prevSpace = true
			}
		}
	}

	// Only ASCII letters, digits, and spaces remain, so byte indexing is safe.
	s := compressed.String()
	var marked strings.Builder
	marked.Grow(len(s) + len(s)/2)

	for i := 0; i < len(s); i++ {
		marked.WriteByte(s[i])
		if i+1 < len(s) && isLower(s[i]) && isUpper(s[i+1]) {
			marked.WriteByte(' ')
		}
	}

	return strings.Fields(strings.ToLower(marked.String()))
}

func isLower(b byte) bool {
	return b >= 'a' && b <= 'z'
}

func isUpper(b byte) bool {
	return b >= 'A' && b <= 'Z'
}
