package casefmt

import "strings"

// CamelCase renders the tokens as camelCase.
// Example: ["brew", "coffee"] -> "brewCoffee"
func (f *Formatter) CamelCase() string {
	var b strings.Builder
	for i, tok := range f.tokens {
		if i == 0 {
			b.WriteString(tok)
			continue
		}
		b.WriteString(capitalize(tok))
	}
	return b.String()
}

// PascalCase renders the tokens as PascalCase.
// Example: ["brew", "coffee"] -> "BrewCoffee"
func (f *Formatter) PascalCase() string {
	var b strings.Builder
	for _, tok := range f.tokens {
		b.WriteString(capitalize(tok))
	}
	return b.String()
}

// KebabCase renders the tokens as kebab-case.
// Example: ["brew", "coffee"] -> "brew-coffee"
func (f *Formatter) KebabCase() string {
	return strings.Join(f.tokens, "-")
}

// SnakeCase renders the tokens as snake_case.
// Example: ["brew", "coffee"] -> "brew_coffee"
func (f *Formatter) SnakeCase() string {
	return strings.Join(f.tokens, "_")
}

// DotCase renders the tokens as dot.case.
// Example: ["brew", "coffee"] -> "brew.coffee"
func (f *Formatter) DotCase() string {
	return strings.Join(f.tokens, ".")
}

// TitleCase renders the tokens as Title Case.
// Example: ["brew", "coffee"] -> "Brew Coffee"
func (f *Formatter) TitleCase() string {
	var b strings.Builder
	for i, tok := range f.tokens {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(capitalize(tok))
	}
	return b.String()
}

// LowerCase renders the tokens as space-separated lower case.
// Example: ["brew", "coffee"] -> "brew coffee"
func (f *Formatter) LowerCase() string {
	return strings.Join(f.tokens, " ")
}

// UpperCase renders the tokens as space-separated UPPER CASE.
// Example: ["brew", "coffee"] -> "BREW COFFEE"
func (f *Formatter) UpperCase() string {
	return strings.ToUpper(strings.Join(f.tokens, " "))
}

// capitalize uppercases the first character of an already-lowercase ASCII
// token. Tokens contain only ASCII letters and digits, so byte arithmetic
// is sufficient.
func capitalize(tok string) string {
	if tok == "" {
		return tok
	}
	if isLower(tok[0]) {
		return string(tok[0]-'a'+'A') + tok[1:]
	}
	return tok
}
