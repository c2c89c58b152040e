// Package layout paginates a lightly-marked-up text document into fixed-size
// pages of positioned draw commands. It is renderer-agnostic: output is pure
// data (text runs with size, weight, color, and a vertical position) that a
// drawing collaborator turns into pixels or ink. Everything here is
// deterministic and side-effect free.
package layout

import (
	"regexp"
	"strings"
)

// LineKind classifies one cleaned document line.
type LineKind int

const (
	LineBlank  LineKind = iota // vertical spacer, draws nothing
	LineMajor                  // section heading: large, bold, accent color
	LineMinor                  // sub-heading: medium, bold, dark
	LineBullet                 // list item: body style, glyph normalized to •
	LineBody                   // plain text
)

// Heading shapes, checked against the cleaned line. A line is a major heading
// when it is an all-caps run of at least ten letters/spaces, a numbered
// all-caps title, or carries a single '#' marker; a numbered capitalized line
// or a '##' marker makes a minor heading.
var (
	majorCapsRe  = regexp.MustCompile(`^[A-Z\s]{10,}$`)
	majorTitleRe = regexp.MustCompile(`^\d+\.\s+TITLE`)
	minorNumRe   = regexp.MustCompile(`^\d+\.\s+[A-Z]`)
)

// bulletPrefixes are the glyphs recognized as list markers.
var bulletPrefixes = []string{"• ", "- ", "* "}

// Classify maps a cleaned line (emphasis markers stripped, whitespace
// trimmed) to its kind. Predicates run in fixed priority order: blank, major,
// minor, bullet, body. The classifier is state-free — the same line always
// yields the same kind regardless of its neighbors.
func Classify(line string) LineKind {
	if line == "" {
		return LineBlank
	}
	if majorTitleRe.MatchString(line) || majorCapsRe.MatchString(line) || strings.HasPrefix(line, "# ") {
		return LineMajor
	}
	if minorNumRe.MatchString(line) || strings.HasPrefix(line, "## ") {
		return LineMinor
	}
	for _, p := range bulletPrefixes {
		if strings.HasPrefix(line, p) {
			return LineBullet
		}
	}
	return LineBody
}

var markerPrefixRe = regexp.MustCompile(`^#+ `)

// normalizeText strips leading heading markers and rewrites any recognized
// bullet glyph to the canonical •.
func normalizeText(line string, kind LineKind) string {
	line = markerPrefixRe.ReplaceAllString(line, "")
	if kind == LineBullet {
		for _, p := range bulletPrefixes {
			if strings.HasPrefix(line, p) {
				return "• " + line[len(p):]
			}
		}
	}
	return line
}

// RGB is a 24-bit color.
type RGB struct {
	R, G, B uint8
}

// Fixed palette. The accent is overridable via Config; the rest matches the
// document design.
var (
	defaultAccent = RGB{R: 123, G: 44, B: 255}
	colorDark     = RGB{R: 30, G: 30, B: 30}
	colorBody     = RGB{R: 60, G: 60, B: 60}
	colorFooter   = RGB{R: 180, G: 180, B: 180}
	colorMuted    = RGB{R: 100, G: 100, B: 100}
)

// Style is the typography assigned to one draw command.
type Style struct {
	Size          float64 // font size in points
	Bold          bool
	Color         RGB
	LeadingBefore float64 // extra vertical space applied before the run
}

// styleFor returns the typography for a line kind. Bullets share the body
// style — only their glyph is normalized.
func styleFor(kind LineKind, accent RGB) Style {
	switch kind {
	case LineMajor:
		return Style{Size: 13, Bold: true, Color: accent, LeadingBefore: 8}
	case LineMinor:
		return Style{Size: 11, Bold: true, Color: colorDark, LeadingBefore: 6}
	default:
		return Style{Size: 10, Bold: false, Color: colorBody}
	}
}
