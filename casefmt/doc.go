// Package casefmt converts strings between naming conventions.
//
// A Formatter splits its input into lowercase word tokens once at
// construction, then renders those tokens into any of eight naming styles:
// camelCase, PascalCase, snake_case, kebab-case, dot.case, Title Case,
// lower case, and UPPER CASE.
//
// Word boundaries are detected two ways: separator characters (underscore,
// comma, dot, hyphen, space) and lowercase-to-uppercase transitions inside a
// word ("camelCase" splits between "camel" and "Case"). Characters that are
// neither ASCII letters/digits nor separators are deleted before boundary
// detection, so "b&rewCoffee" tokenizes the same as "brewCoffee".
//
// Package-level helpers (ToCamelCase, ToSnakeCase, ...) combine construction
// and a single render for one-shot use.
package casefmt
