package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggestCommand(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		// Typos within edit distance 2
		{"cas", "case"},
		{"csae", "case"},
		{"pth", "path"},
		{"paht", "path"},
		{"mcpp", "mcp"},
		{"versio", "version"},
		{"hep", "help"},

		// Too far - no suggestion (distance > 2)
		{"normalize", ""},
		{"foobar", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := suggestCommand(tt.input)
			if got != tt.expected {
				t.Errorf("suggestCommand(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestEditDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"case", "case", 0},
		{"case", "cast", 1},
		{"kitten", "sitting", 3},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, editDistance(tt.a, tt.b), "editDistance(%q, %q)", tt.a, tt.b)
	}
}

func TestHandleCase_SingleStyle(t *testing.T) {
	var buf bytes.Buffer
	err := handleCase([]string{"-style", "camel", "brew_coffee"}, &buf)
	require.NoError(t, err)
	assert.Equal(t, "brewCoffee\n", buf.String())
}

func TestHandleCase_AllStylesText(t *testing.T) {
	var buf bytes.Buffer
	err := handleCase([]string{"brew_coffee"}, &buf)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "brewCoffee")
	assert.Contains(t, out, "BrewCoffee")
	assert.Contains(t, out, "brew-coffee")
	assert.Contains(t, out, "BREW COFFEE")
	assert.Contains(t, out, "Camel:")
	assert.Contains(t, out, "Kebab:")
}

func TestHandleCase_JSON(t *testing.T) {
	var buf bytes.Buffer
	err := handleCase([]string{"-style", "snake", "-format", "json", "brewCoffee"}, &buf)
	require.NoError(t, err)

	var result caseResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	assert.Equal(t, "brewCoffee", result.Input)
	assert.Equal(t, []string{"brew", "coffee"}, result.Tokens)
	assert.Equal(t, "snake", result.Style)
	assert.Equal(t, "brew_coffee", result.Result)
}

func TestHandleCase_UnknownStyle(t *testing.T) {
	var buf bytes.Buffer
	err := handleCase([]string{"-style", "screaming", "brew_coffee"}, &buf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown style")
}

func TestHandleCase_TooManyArgs(t *testing.T) {
	var buf bytes.Buffer
	err := handleCase([]string{"-style", "camel", "a", "b"}, &buf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly one input")
}

func TestHandlePath_Text(t *testing.T) {
	var buf bytes.Buffer
	err := handlePath([]string{`C:\Users\\test`}, &buf)
	require.NoError(t, err)
	assert.Equal(t, "C:/Users/test\n", buf.String())
}

func TestHandlePath_KeepFlags(t *testing.T) {
	var buf bytes.Buffer
	err := handlePath([]string{"-keep-disallowed", "/path/*keep?"}, &buf)
	require.NoError(t, err)
	assert.Equal(t, "/path/*keep?\n", buf.String())
}

func TestHandlePath_JSON(t *testing.T) {
	var buf bytes.Buffer
	err := handlePath([]string{"-format", "json", "./home/file.txt"}, &buf)
	require.NoError(t, err)

	var result pathResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	assert.Equal(t, "./home/file.txt", result.Input)
	assert.Equal(t, "home/file.txt", result.Normalized)
	assert.True(t, result.Changed)
}

func TestHandlePath_InvalidText(t *testing.T) {
	var buf bytes.Buffer
	err := handlePath([]string{"/home/\xff"}, &buf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "normalizing path")
}

func TestHandlePath_InvalidFormat(t *testing.T) {
	var buf bytes.Buffer
	err := handlePath([]string{"-format", "xml", "/a"}, &buf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}
