package casefmt

import (
	"strings"
	"testing"
)

// FuzzSplitWords is a Go Fuzz Test targeting the tokenizer.
// It mutates the input string to try and find inputs that violate the token
// invariants or break idempotence of the render/re-tokenize cycle.
func FuzzSplitWords(f *testing.F) {
	seedCorpus := []string{
		"",
		"brew_coffee",
		"brew, coffee",
		"bRewCofFee",
		"b&rewCoffee",
		"BREW COFFEE",
		"__--..,,  ",
		"日本語_test",
		"a1B2c3D4",
		"\x00\x1b[31mbrew\x1b[0m",
		strings.Repeat("aB", 512),
	}
	for _, seed := range seedCorpus {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, input string) {
		fmtr := New(input)
		tokens := fmtr.Tokens()

		for _, tok := range tokens {
			if tok == "" {
				t.Fatalf("empty token for input %q", input)
			}
			for i := 0; i < len(tok); i++ {
				b := tok[i]
				if !(b >= 'a' && b <= 'z' || b >= '0' && b <= '9') {
					t.Fatalf("token %q contains non-lowercase-alnum byte %q (input %q)", tok, b, input)
				}
			}
		}

		// Re-tokenizing a canonical render must reproduce the tokens.
		again := New(fmtr.SnakeCase()).Tokens()
		if len(again) != len(tokens) {
			t.Fatalf("round trip changed token count: %v vs %v (input %q)", tokens, again, input)
		}
		for i := range tokens {
			if tokens[i] != again[i] {
				t.Fatalf("round trip changed token %d: %v vs %v (input %q)", i, tokens, again, input)
			}
		}
	})
}
