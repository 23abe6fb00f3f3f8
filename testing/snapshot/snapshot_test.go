package snapshot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripANSI(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "plain", input: "12+5", expected: "12+5"},
		{name: "foreground", input: "\x1b[38;5;62m17\x1b[0m", expected: "17"},
		{name: "reverse bold button", input: "\x1b[1;7m 7 \x1b[0m", expected: " 7 "},
		{name: "cursor hide", input: "\x1b[?25lx", expected: "x"},
		{name: "osc8 hyperlink", input: "\x1b]8;;https://example.com\x1b\\link\x1b]8;;\x1b\\", expected: "link"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StripANSI(tt.input))
		})
	}
}

func TestLinesAndWidth(t *testing.T) {
	tests := []struct {
		name  string
		input string
		lines int
		width int
	}{
		{name: "single line", input: "sin", lines: 1, width: 3},
		{name: "ragged", input: "x^n\nasin\n=", lines: 3, width: 4},
		{name: "styled", input: "\x1b[31merror\x1b[0m\nok", lines: 2, width: 5},
		{name: "rounded box", input: "╭──╮\n│ab│\n╰──╯", lines: 3, width: 4},
		{name: "ellipsis", input: "123456789…", lines: 1, width: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.lines, Lines(tt.input))
			assert.Equal(t, tt.width, Width(tt.input))
		})
	}
}

func TestNormalizeOutput(t *testing.T) {
	result := normalizeOutput("clr   \r\n\x1b[36m+\x1b[0m  \n")
	assert.Equal(t, "clr\n+\n", result)
}
