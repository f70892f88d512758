// Package transcript parses the raw, ANSI-colored text dumped by the VTOP
// CLI's export command into a structured document. The format has no schema
// guarantee, so every layer here degrades malformed data to defaults instead
// of failing; only caller contract violations surface as errors.
package transcript

import (
	"regexp"
	"strings"
)

// LineKind classifies one transcript line.
type LineKind int

const (
	// KindNoise covers headers, blank lines and decorative borders.
	KindNoise LineKind = iota
	// KindSectionMarker is a `=== NAME ===` section boundary.
	KindSectionMarker
	// KindCourseTitle is a bold-blue course name line.
	KindCourseTitle
	// KindTableRow is a box-drawing-delimited data row.
	KindTableRow
	// KindTotal is the green `scored/weight` line terminating a course block.
	KindTotal
)

// RawLine is one line of source text, style-stripped and pre-split into
// cells when it is a table row. Transient: produced by Tokenize, consumed by
// the section parsers, never persisted.
type RawLine struct {
	Raw   string
	Text  string
	Kind  LineKind
	Cells []string
}

const separator = "│"

// mojibakeSeparators are byte-level renderings of the box-drawing vertical
// bar seen in transcripts that lost their UTF-8 decoding in transit: the
// UTF-8 bytes of U+2502 re-decoded as Windows-1252 (a-circumflex plus two
// curly punctuation marks) or as Latin-1 (a-circumflex plus two C1
// controls). Both are full three-rune sequences; a bare U+00E2 inside an
// accented name never matches.
var mojibakeSeparators = []string{
	"\u00e2\u201d\u201a",
	"\u00e2\u0094\u0082",
}

var (
	// sgrPattern matches ANSI SGR sequences and the degraded bracket-only
	// form left behind when the ESC byte is lost in transit.
	sgrPattern    = regexp.MustCompile("\x1b\\[[0-9;]*m|\\[[0-9;]*m")
	markerPattern = regexp.MustCompile(`^===\s*(.+?)\s*===$`)
	// totalPattern matches the green scored/weight pair. It is applied to
	// ESC-stripped text so both escape renderings collapse to one form.
	totalPattern = regexp.MustCompile(`\[32m([0-9.]+)\[0m/\[32m([0-9.]+)\[0m`)
)

const (
	courseTitleMarker = "[1;34m"
	totalColorMarker  = "[32m"
)

// StripStyles removes ANSI SGR sequences from a line, in both the proper
// ESC-prefixed form and the bare bracketed form. Stray ESC bytes from
// sequences truncated mid-escape are removed as well, so stripped text never
// carries visible garbage.
func StripStyles(line string) string {
	stripped := sgrPattern.ReplaceAllString(line, "")
	return strings.ReplaceAll(stripped, "\x1b", "")
}

// normalizeSeparators rewrites every known byte rendering of the vertical
// separator to the canonical rune.
func normalizeSeparators(line string) string {
	for _, alt := range mojibakeSeparators {
		line = strings.ReplaceAll(line, alt, separator)
	}
	return line
}

// hasSeparator reports whether the line contains the box-drawing vertical
// bar in any tolerated rendering.
func hasSeparator(line string) bool {
	return strings.Contains(normalizeSeparators(line), separator)
}

// splitCells splits a table row into trimmed cells on the separator.
func splitCells(line string) []string {
	parts := strings.Split(normalizeSeparators(StripStyles(line)), separator)
	cells := make([]string, 0, len(parts))
	for _, p := range parts {
		cells = append(cells, strings.TrimSpace(p))
	}
	return cells
}

// classify tags a single line. Classification looks at the raw text, since
// the color markers that identify course titles and totals are exactly what
// stripping removes.
func classify(raw string) RawLine {
	text := strings.TrimSpace(StripStyles(normalizeSeparators(raw)))
	line := RawLine{Raw: raw, Text: text}

	switch {
	case markerPattern.MatchString(text):
		line.Kind = KindSectionMarker
	case strings.Contains(raw, courseTitleMarker):
		line.Kind = KindCourseTitle
	case strings.Contains(raw, totalColorMarker) && strings.Contains(StripEscByte(raw), "/"+totalColorMarker):
		line.Kind = KindTotal
	case hasSeparator(raw):
		line.Kind = KindTableRow
		line.Cells = splitCells(raw)
	default:
		line.Kind = KindNoise
	}
	return line
}

// StripEscByte drops ESC bytes only, leaving the bracketed codes in place.
// Total-line detection needs the codes but must not care whether the ESC
// byte survived transit.
func StripEscByte(line string) string {
	return strings.ReplaceAll(line, "\x1b", "")
}

// Tokenize scans the whole transcript and classifies every line in original
// order. It never fails: unclassifiable content comes back as noise.
func Tokenize(raw string) []RawLine {
	normalized := strings.ReplaceAll(raw, "\r\n", "\n")
	srcLines := strings.Split(normalized, "\n")
	lines := make([]RawLine, 0, len(srcLines))
	for _, l := range srcLines {
		lines = append(lines, classify(l))
	}
	return lines
}
