// Package fmttools provides text-normalization utilities for identifiers and
// path strings: naming-convention case conversion and string-level path
// canonicalization, with no filesystem access anywhere in the core.
//
// # Overview
//
// The library consists of two primary packages:
//
//   - casefmt: Convert strings between naming conventions (camelCase,
//     PascalCase, snake_case, kebab-case, dot.case, Title Case, lower case,
//     UPPER CASE)
//   - pathfmt: Normalize slash-delimited path strings (separator
//     unification, duplicate-slash collapsing, disallowed-character
//     stripping, parent-directory resolution, terminal-escape removal)
//
// Both packages are purely functional: every operation works only on its
// inputs and local buffers, so values may be used concurrently from multiple
// goroutines without synchronization.
//
// # Installation
//
// Install the library using go get:
//
//	go get github.com/erraggy/fmttools
//
// # Quick Start
//
// Convert an identifier between naming conventions:
//
//	import "github.com/erraggy/fmttools/casefmt"
//
//	f := casefmt.New("brew_coffee")
//	fmt.Println(f.CamelCase())  // brewCoffee
//	fmt.Println(f.PascalCase()) // BrewCoffee
//	fmt.Println(f.KebabCase())  // brew-coffee
//
//	// Or use the one-shot helpers:
//	fmt.Println(casefmt.ToSnakeCase("brewCoffee")) // brew_coffee
//
// Normalize a path string:
//
//	import "github.com/erraggy/fmttools/pathfmt"
//
//	s, err := pathfmt.Normalize(`C:\Users\\test`)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(s) // C:/Users/test
//
// Normalization is configurable; each transform can be disabled
// independently:
//
//	cfg := pathfmt.DefaultConfig()
//	cfg.StripDisallowed = false
//	s, err := pathfmt.NormalizeWith("/path/with/*globs", cfg)
//
// # CLI
//
// The fmttools command exposes both packages, plus an MCP server over stdio:
//
//	go install github.com/erraggy/fmttools/cmd/fmttools@latest
//
//	fmttools case -all "brew_coffee"
//	fmttools path "C:\Users\\test"
//	fmttools mcp
package fmttools
