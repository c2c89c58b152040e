package layout

import (
	"strings"
)

// MeasureFunc reports the rendered width of text at a font size, in the same
// units as Config.PageWidth. The renderer can supply an exact glyph-metric
// implementation; the default approximates an average proportional face.
type MeasureFunc func(text string, size float64) float64

// mmPerPoint converts font sizes (points) into page units (millimetres).
const mmPerPoint = 25.4 / 72

// defaultMeasure approximates proportional text width as half an em per rune.
// Close enough for pagination decisions when no real font metrics are wired.
func defaultMeasure(text string, size float64) float64 {
	return float64(len([]rune(text))) * size * 0.5 * mmPerPoint
}

// Letterhead is the optional fixed block drawn at the top of the first page:
// a small brand line, a large document title, and a participant line.
type Letterhead struct {
	Brand       string
	Title       string
	Participant string
}

// Config holds the page geometry. All lengths are millimetres; zero fields
// are filled from A4 defaults by Paginate.
type Config struct {
	PageWidth   float64 // default 210
	PageHeight  float64 // default 297
	Margin      float64 // left/right margin, default 20
	TopMargin   float64 // cursor start after a page break, default 25
	BottomLimit float64 // hard content boundary, default 275
	LineSpacing float64 // vertical advance per wrapped line, default 6
	FooterY     float64 // fixed footer position, default 285
	FooterText  string
	Accent      RGB // major-heading color, default purple
	Letterhead  *Letterhead
	Measure     MeasureFunc
}

// DefaultConfig returns the A4 geometry the exporter uses.
func DefaultConfig() Config {
	return Config{
		PageWidth:   210,
		PageHeight:  297,
		Margin:      20,
		TopMargin:   25,
		BottomLimit: 275,
		LineSpacing: 6,
		FooterY:     285,
		FooterText:  "Powered by Elvex Partners. elvexpartners.com",
		Accent:      defaultAccent,
		Measure:     defaultMeasure,
	}
}

// withDefaults fills zero-valued geometry from DefaultConfig so callers can
// specify only the fields they care about.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.PageWidth == 0 {
		c.PageWidth = d.PageWidth
	}
	if c.PageHeight == 0 {
		c.PageHeight = d.PageHeight
	}
	if c.Margin == 0 {
		c.Margin = d.Margin
	}
	if c.TopMargin == 0 {
		c.TopMargin = d.TopMargin
	}
	if c.BottomLimit == 0 {
		c.BottomLimit = d.BottomLimit
	}
	if c.LineSpacing == 0 {
		c.LineSpacing = d.LineSpacing
	}
	if c.FooterY == 0 {
		c.FooterY = d.FooterY
	}
	if c.Accent == (RGB{}) {
		c.Accent = d.Accent
	}
	if c.Measure == nil {
		c.Measure = d.Measure
	}
	return c
}

// contentWidth is the horizontal space available to wrapped text.
func (c Config) contentWidth() float64 {
	return c.PageWidth - 2*c.Margin
}

// DrawCmd is one positioned, styled unit of wrapped text. Lines share the
// style and are rendered at LineSpacing intervals starting at Y. A command
// never spans a page boundary.
type DrawCmd struct {
	Lines []string
	Style Style
	X     float64
	Y     float64
}

// Page is an ordered sequence of draw commands fitting one page.
type Page struct {
	Commands []DrawCmd
}

// state is the mutable layout cursor threaded through pagination: the pages
// built so far and the vertical position on the current one.
type state struct {
	cfg   Config
	pages []Page
	y     float64
}

func (st *state) newPage() {
	st.pages = append(st.pages, Page{})
	st.y = st.cfg.TopMargin
}

func (st *state) draw(cmd DrawCmd) {
	last := len(st.pages) - 1
	st.pages[last].Commands = append(st.pages[last].Commands, cmd)
}

// place appends wrapped lines at the cursor, breaking to a new page first
// when the block would cross the bottom boundary. A block taller than a whole
// page still gets exactly one break and is drawn overflowing — never dropped.
func (st *state) place(lines []string, style Style) {
	st.y += style.LeadingBefore

	extent := float64(len(lines)) * st.cfg.LineSpacing
	if st.y+extent > st.cfg.BottomLimit {
		st.newPage()
	}

	st.draw(DrawCmd{Lines: lines, Style: style, X: st.cfg.Margin, Y: st.y})
	st.y += extent
}

// Paginate lays the document out into pages. Each input line is cleaned
// (doubled-asterisk emphasis stripped, surrounding whitespace trimmed),
// classified, styled, word-wrapped to the content width, and placed with the
// cursor advancing by a fixed per-line spacing. Blank lines advance the
// cursor without drawing. The footer is stamped on the final visible page.
func Paginate(doc string, cfg Config) []Page {
	cfg = cfg.withDefaults()

	st := &state{cfg: cfg}
	st.newPage()

	if cfg.Letterhead != nil {
		st.drawLetterhead(*cfg.Letterhead)
	}

	for _, raw := range strings.Split(doc, "\n") {
		clean := strings.TrimSpace(strings.ReplaceAll(raw, "**", ""))
		kind := Classify(clean)
		if kind == LineBlank {
			st.y += cfg.LineSpacing
			continue
		}

		style := styleFor(kind, cfg.Accent)
		text := normalizeText(clean, kind)
		lines := wrap(text, cfg.contentWidth(), style.Size, cfg.Measure)
		st.place(lines, style)
	}

	if cfg.FooterText != "" {
		st.draw(DrawCmd{
			Lines: []string{cfg.FooterText},
			Style: Style{Size: 7, Color: colorFooter},
			X:     cfg.Margin,
			Y:     cfg.FooterY,
		})
	}

	return st.pages
}

// drawLetterhead stamps the fixed first-page header: brand line, title,
// participant line. Positions mirror the document design rather than the
// body's fit-or-break flow — the header always fits above the content area.
func (st *state) drawLetterhead(lh Letterhead) {
	cfg := st.cfg

	if lh.Brand != "" {
		st.draw(DrawCmd{
			Lines: []string{lh.Brand},
			Style: Style{Size: 8, Bold: true, Color: cfg.Accent},
			X:     cfg.Margin,
			Y:     st.y,
		})
		st.y += 15
	}
	if lh.Title != "" {
		st.draw(DrawCmd{
			Lines: []string{lh.Title},
			Style: Style{Size: 22, Bold: true, Color: cfg.Accent},
			X:     cfg.Margin,
			Y:     st.y,
		})
		st.y += 10
	}
	if lh.Participant != "" {
		st.draw(DrawCmd{
			Lines: []string{"PARTICIPANT: " + strings.ToUpper(lh.Participant)},
			Style: Style{Size: 11, Color: colorMuted},
			X:     cfg.Margin,
			Y:     st.y,
		})
		st.y += 22
	}
}

// wrap greedily packs words into lines no wider than width at the given
// size. A single word wider than the line is hard-split so progress is
// always made. Always returns at least one line.
func wrap(text string, width, size float64, measure MeasureFunc) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	current := ""

	flush := func() {
		if current != "" {
			lines = append(lines, current)
			current = ""
		}
	}

	for _, word := range words {
		for measure(word, size) > width && len([]rune(word)) > 1 {
			// Hard-split an oversized word at the widest fitting prefix.
			runes := []rune(word)
			cut := len(runes) - 1
			for cut > 1 && measure(string(runes[:cut]), size) > width {
				cut--
			}
			flush()
			lines = append(lines, string(runes[:cut]))
			word = string(runes[cut:])
		}

		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if measure(candidate, size) > width && current != "" {
			flush()
			current = word
		} else {
			current = candidate
		}
	}
	flush()

	return lines
}
