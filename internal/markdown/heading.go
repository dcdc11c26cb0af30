// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package markdown

import (
	"regexp"
	"strings"
)

// linePrefix matches a leading enumeration marker: a run of digits and dots
// ("1.2 ", "3. ") or a run of '#', followed by whitespace.
var linePrefix = regexp.MustCompile(`^((?:\d[\d.]*|#+)\s+)(.*)$`)

// splitPrefix separates a trimmed line into its enumeration marker and body
// text. Lines without a marker return an empty prefix and the full line.
func splitPrefix(line string) (prefix, body string) {
	m := linePrefix.FindStringSubmatch(line)
	if m == nil {
		return "", line
	}
	return m[1], m[2]
}

// isHeading reports whether a line carrying the given extracted prefix is a
// heading. A dotted enumeration prefix is decisive on its own; any other
// marker still needs the line to read like a title. Unmarked lines are
// always body text.
func isHeading(prefix, line string) bool {
	if strings.Contains(prefix, ".") {
		return true
	}
	return prefix != "" && isLikelyHeading(line)
}

// isLikelyHeading is the fallback signal when no layout data exists: short
// lines without a trailing period or an embedded comma read like titles.
// It misses wrapped headings and flags some short sentences; that is the
// cost of inferring structure from bare text.
func isLikelyHeading(line string) bool {
	return len(line) < 100 && !strings.HasSuffix(line, ".") && !strings.Contains(line, ",")
}

// headingLevel assigns a depth from the enumeration prefix, falling back to
// a short-all-caps check for unnumbered headings. The rules overlap and are
// matched first-wins: "1.1" must be tested before "1." or every subsection
// of section one would land at depth 1. The order is part of the output
// contract; do not rearrange it.
func headingLevel(prefix, line string) int {
	switch {
	case strings.HasPrefix(prefix, "1.1"), strings.HasPrefix(prefix, "2."):
		return 2
	case strings.HasPrefix(prefix, "1."):
		return 1
	case len(line) < 30 && strings.ToUpper(line) == line:
		return 1
	default:
		return 3
	}
}
