package casefmt

// One-shot helpers combining tokenization and a single render.

// ToCamelCase converts a string to camelCase.
// Example: "brew_coffee" -> "brewCoffee"
func ToCamelCase(s string) string {
	return New(s).CamelCase()
}

// ToPascalCase converts a string to PascalCase.
// Example: "brew_coffee" -> "BrewCoffee"
func ToPascalCase(s string) string {
	return New(s).PascalCase()
}

// ToKebabCase converts a string to kebab-case.
// Example: "brewCoffee" -> "brew-coffee"
func ToKebabCase(s string) string {
	return New(s).KebabCase()
}

// ToSnakeCase converts a string to snake_case.
// Example: "brewCoffee" -> "brew_coffee"
func ToSnakeCase(s string) string {
	return New(s).SnakeCase()
}

// ToDotCase converts a string to dot.case.
// Example: "brew_coffee" -> "brew.coffee"
func ToDotCase(s string) string {
	return New(s).DotCase()
}

// ToTitleCase converts a string to Title Case.
// Example: "brew_coffee" -> "Brew Coffee"
func ToTitleCase(s string) string {
	return New(s).TitleCase()
}

// ToLowerCase converts a string to space-separated lower case.
// Example: "BREW COFFEE" -> "brew coffee"
func ToLowerCase(s string) string {
	return New(s).LowerCase()
}

// ToUpperCase converts a string to space-separated UPPER CASE.
// Example: "brew coffee" -> "BREW COFFEE"
func ToUpperCase(s string) string {
	return New(s).UpperCase()
}
