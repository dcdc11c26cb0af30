// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package markdown infers document structure from extracted plain text and
// renders it as Markdown. With no font or layout metadata available, the
// inference is purely heuristic: enumeration prefixes and line shape decide
// headings, all-caps words become bold, and physical lines are joined into
// logical paragraphs until a blank line breaks them.
//
// See docs/ARCHITECTURE § Structure Inference.
package markdown

import "strings"

// blockState records what the previous non-blank line produced. The
// assembler uses it to decide whether the next paragraph line continues an
// open paragraph or starts fresh after a heading.
type blockState int

const (
	paragraphOpen blockState = iota
	headingClosed
)

// hardBreak separates Markdown blocks in the output.
const hardBreak = "\n\n"

// Convert renders extracted plain text as Markdown. It is a total function:
// every input, including the empty string, has a defined output and no
// input can fail. Lines are consumed in a single pass and blocks appear in
// input order.
//
// Blank input lines each append one hard break, never collapsed, so runs of
// blank lines widen the gap in the output. That mirrors the extraction text
// faithfully rather than normalizing it.
func Convert(text string) string {
	var b strings.Builder
	state := paragraphOpen

	for _, line := range splitLines(text) {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			b.WriteString(hardBreak)
			continue
		}

		prefix, body := splitPrefix(trimmed)
		if isHeading(prefix, trimmed) {
			b.WriteString(strings.Repeat("#", headingLevel(prefix, trimmed)))
			b.WriteByte(' ')
			b.WriteString(body)
			b.WriteString(hardBreak)
			state = headingClosed
			continue
		}

		formatted := formatEmphasis(trimmed)
		if state == paragraphOpen {
			// A physical line that follows an open paragraph is a wrapped
			// continuation: join with a space unless a break already ended
			// the previous block.
			if b.Len() > 0 && !strings.HasSuffix(b.String(), hardBreak) {
				b.WriteByte(' ')
			}
			b.WriteString(formatted)
		} else {
			b.WriteString(formatted)
			state = paragraphOpen
		}
	}

	return b.String()
}

// splitLines splits text into physical lines. A trailing newline delimits
// the last line rather than opening an empty one, so "" yields no lines and
// "a\n" yields one.
func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	if n := len(lines); lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}
