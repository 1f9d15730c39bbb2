package ansi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStrip(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: ""},
		{name: "plain text untouched", input: "/home/user/file.txt", want: "/home/user/file.txt"},

		// SGR color codes
		{name: "sgr wrapping path", input: "\x1b[31m/path\x1b[0m", want: "/path"},
		{name: "sgr with multiple params", input: "\x1b[1;32;44mbold\x1b[0m", want: "bold"},
		{name: "sgr mid string", input: "a\x1b[33mb\x1b[0mc", want: "abc"},

		// Other CSI sequences
		{name: "cursor movement", input: "\x1b[2Aup", want: "up"},
		{name: "erase line", input: "\x1b[2Kline", want: "line"},
		{name: "csi with intermediate byte", input: "\x1b[?25hcursor", want: "cursor"},

		// OSC sequences
		{name: "osc title bel terminated", input: "\x1b]0;title\x07after", want: "after"},
		{name: "osc st terminated", input: "\x1b]8;;http://x\x1b\\link", want: "link"},

		// Two-byte ESC sequences
		{name: "esc M reverse index", input: "\x1bMtext", want: "text"},
		{name: "esc D index", input: "a\x1bDb", want: "ab"},

		// Malformed and unterminated input
		{name: "lone esc at end dropped", input: "text\x1b", want: "text"},
		{name: "unterminated csi dropped", input: "text\x1b[31", want: "text"},
		{name: "unterminated osc dropped", input: "text\x1b]0;title", want: "text"},
		{name: "esc before plain byte kept", input: "a\x1b0b", want: "a\x1b0b"},
		{name: "csi aborted by out of range byte", input: "\x1b[31\x01x", want: "\x01x"},

		// Invalid UTF-8 passes through for the caller to validate
		{name: "invalid utf8 preserved", input: "a\xffb", want: "a\xffb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Strip([]byte(tt.input))
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestStripDoesNotMutateInput(t *testing.T) {
	input := []byte("\x1b[31mred\x1b[0m")
	original := string(input)

	_ = Strip(input)
	assert.Equal(t, original, string(input))
}
