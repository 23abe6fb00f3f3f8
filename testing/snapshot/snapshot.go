// Package snapshot provides assertions on rendered TUI output.
// Output is compared with ANSI sequences stripped so tests do not depend on
// the color profile.
package snapshot

import (
	"regexp"
	"strings"
	"testing"

	"github.com/muesli/ansi"
)

var (
	csiRegex = regexp.MustCompile(`\x1b\[[0-9;?]*[a-zA-Z]`)
	oscRegex = regexp.MustCompile(`\x1b\]8;;[^\x1b]*\x1b\\`)
)

// Snap checks rendered frames for a single test.
type Snap struct {
	t *testing.T
}

// New creates a new Snap instance for the given test
func New(t *testing.T) *Snap {
	return &Snap{t: t}
}

// AssertContains checks that actual output contains the expected substring
func (s *Snap) AssertContains(actual, substr string) {
	s.t.Helper()
	normalized := normalizeOutput(actual)
	if !strings.Contains(normalized, substr) {
		s.t.Errorf("Output does not contain expected substring.\nExpected to contain: %q\nActual:\n%s", substr, normalized)
	}
}

// AssertNotContains checks that actual output does NOT contain the substring
func (s *Snap) AssertNotContains(actual, substr string) {
	s.t.Helper()
	normalized := normalizeOutput(actual)
	if strings.Contains(normalized, substr) {
		s.t.Errorf("Output unexpectedly contains substring: %q\nActual:\n%s", substr, normalized)
	}
}

// AssertFits checks that no line of actual is wider than width and that it
// has at most height lines.
func (s *Snap) AssertFits(actual string, width, height int) {
	s.t.Helper()
	if w := Width(actual); w > width {
		s.t.Errorf("Output is %d cells wide, want at most %d\n%s", w, width, normalizeOutput(actual))
	}
	if l := Lines(actual); l > height {
		s.t.Errorf("Output has %d lines, want at most %d\n%s", l, height, normalizeOutput(actual))
	}
}

// normalizeOutput strips ANSI codes and normalizes whitespace for comparison
func normalizeOutput(s string) string {
	s = StripANSI(s)
	s = strings.ReplaceAll(s, "\r\n", "\n")

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n")
}

// StripANSI removes all ANSI escape codes from a string
func StripANSI(s string) string {
	s = csiRegex.ReplaceAllString(s, "")
	return oscRegex.ReplaceAllString(s, "")
}

// Lines returns the line count of the rendered output (useful for height tests)
func Lines(s string) int {
	return len(strings.Split(StripANSI(s), "\n"))
}

// Width returns the maximum printable width of the rendered output.
func Width(s string) int {
	maxWidth := 0
	for _, line := range strings.Split(s, "\n") {
		maxWidth = max(maxWidth, ansi.PrintableRuneWidth(line))
	}
	return maxWidth
}
