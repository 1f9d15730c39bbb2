package casefmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitWords(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		// Empty and degenerate inputs
		{name: "empty string", input: "", want: nil},
		{name: "only separators", input: "_-., ", want: nil},
		{name: "only symbols", input: "&@#!", want: nil},
		{name: "single letter", input: "a", want: []string{"a"}},
		{name: "single digit", input: "7", want: []string{"7"}},

		// Separator boundaries
		{name: "underscore", input: "brew_coffee", want: []string{"brew", "coffee"}},
		{name: "comma and space", input: "brew, coffee", want: []string{"brew", "coffee"}},
		{name: "hyphen", input: "brew-coffee", want: []string{"brew", "coffee"}},
		{name: "dot", input: "brew.coffee", want: []string{"brew", "coffee"}},
		{name: "consecutive separators collapse", input: "brew__,,--coffee", want: []string{"brew", "coffee"}},
		{name: "leading separator", input: "_brew", want: []string{"brew"}},
		{name: "trailing separator", input: "brew-", want: []string{"brew"}},

		// Camel boundaries
		{name: "camelCase", input: "brewCoffee", want: []string{"brew", "coffee"}},
		{name: "PascalCase", input: "BrewCoffee", want: []string{"brew", "coffee"}},
		{name: "consecutive camel boundaries", input: "bRewCofFee", want: []string{"b", "rew", "cof", "fee"}},
		{name: "all caps has no boundary", input: "BREW", want: []string{"brew"}},
		{name: "upper then lower", input: "BREW COFFEE", want: []string{"brew", "coffee"}},

		// Deletion happens before boundary detection
		{name: "ampersand deleted", input: "b&rewCoffee", want: []string{"brew", "coffee"}},
		{name: "symbol is not a boundary", input: "brew&coffee", want: []string{"brewcoffee"}},
		{name: "non-ascii letters dropped", input: "brëw_coffee", want: []string{"brw", "coffee"}},
		{name: "control characters dropped", input: "brew\x00\x1b_coffee", want: []string{"brew", "coffee"}},

		// Digits
		{name: "digits kept", input: "brew2go", want: []string{"brew2go"}},
		{name: "digit before uppercase is not a boundary", input: "brew2Go", want: []string{"brew2go"}},
		{name: "letter boundary after digit run", input: "apiV2beTa", want: []string{"api", "v2be", "ta"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := New(tt.input)
			assert.Equal(t, tt.want, f.Tokens())
		})
	}
}

func TestCamelCaseScenarios(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "brew_coffee", want: "brewCoffee"},
		{input: "brew, coffee", want: "brewCoffee"},
		{input: "brew-coffee", want: "brewCoffee"},
		{input: "Brew.Coffee", want: "brewCoffee"},
		{input: "bRewCofFee", want: "bRewCofFee"},
		{input: "brewCoffee", want: "brewCoffee"},
		{input: "b&rewCoffee", want: "brewCoffee"},
		{input: "BrewCoffee", want: "brewCoffee"},
		{input: "brew.coffee", want: "brewCoffee"},
		{input: "Brew_Coffee", want: "brewCoffee"},
		{input: "BREW COFFEE", want: "brewCoffee"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, New(tt.input).CamelCase())
		})
	}
}

func TestTokensAreImmutable(t *testing.T) {
	f := New("brew_coffee")

	tokens := f.Tokens()
	require.Equal(t, []string{"brew", "coffee"}, tokens)

	tokens[0] = "mutated"
	assert.Equal(t, []string{"brew", "coffee"}, f.Tokens(),
		"mutating the returned slice must not affect the Formatter")
	assert.Equal(t, "brewCoffee", f.CamelCase())
}

func TestRoundTripThroughSnakeCase(t *testing.T) {
	inputs := []string{
		"brew_coffee",
		"brewCoffee",
		"BREW COFFEE",
		"bRewCofFee",
		"api_v2_client",
		"get-user.by_id",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			f := New(input)
			require.NotEmpty(t, f.Tokens())

			again := New(f.SnakeCase())
			assert.Equal(t, f.Tokens(), again.Tokens(),
				"re-tokenizing the snake_case render must reproduce the tokens")
		})
	}
}
