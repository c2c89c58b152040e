package layout_test

import (
	"strings"
	"testing"

	"github.com/nyashahama/futurefit/internal/layout"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		line string
		want layout.LineKind
	}{
		{"", layout.LineBlank},
		{"EXECUTIVE SNAPSHOT", layout.LineMajor},   // all-caps run ≥ 10
		{"OWNER COPY IN FULL", layout.LineMajor},   // spaces count toward the run
		{"# Heading", layout.LineMajor},            // single marker
		{"1. TITLE BLOCK", layout.LineMajor},       // numbered all-caps title
		{"## Sub heading", layout.LineMinor},       // doubled marker
		{"2. Persona details", layout.LineMinor},   // numbered capitalized line
		{"• bullet item", layout.LineBullet},
		{"- dash item", layout.LineBullet},
		{"* star item", layout.LineBullet},
		{"Normal body text", layout.LineBody},
		{"SHORTCAPS", layout.LineBody},             // caps run below 10
		{"Overall index: 72.5 / 100", layout.LineBody},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			if got := layout.Classify(tt.line); got != tt.want {
				t.Errorf("Classify(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}

// flatten returns every draw command across all pages except the footer.
func bodyCommands(pages []layout.Page, cfg layout.Config) []layout.DrawCmd {
	var out []layout.DrawCmd
	for _, p := range pages {
		for _, c := range p.Commands {
			if c.Y == cfg.FooterY {
				continue
			}
			out = append(out, c)
		}
	}
	return out
}

func TestPaginate_Typography(t *testing.T) {
	cfg := layout.DefaultConfig()
	doc := "EXECUTIVE SNAPSHOT\n## Details\n- first item\nplain text"
	pages := layout.Paginate(doc, cfg)
	if len(pages) != 1 {
		t.Fatalf("expected 1 page, got %d", len(pages))
	}

	cmds := bodyCommands(pages, cfg)
	if len(cmds) != 4 {
		t.Fatalf("expected 4 body commands, got %d", len(cmds))
	}

	major, minor, bullet, body := cmds[0], cmds[1], cmds[2], cmds[3]
	if major.Style.Size != 13 || !major.Style.Bold || major.Style.Color != cfg.Accent {
		t.Errorf("major heading style wrong: %+v", major.Style)
	}
	if minor.Style.Size != 11 || !minor.Style.Bold {
		t.Errorf("minor heading style wrong: %+v", minor.Style)
	}
	if minor.Lines[0] != "Details" {
		t.Errorf("marker should be stripped, got %q", minor.Lines[0])
	}
	if bullet.Style.Size != 10 || bullet.Style.Bold {
		t.Errorf("bullet should use body style: %+v", bullet.Style)
	}
	if bullet.Lines[0] != "• first item" {
		t.Errorf("bullet glyph not normalized: %q", bullet.Lines[0])
	}
	if body.Style.Size != 10 {
		t.Errorf("body style wrong: %+v", body.Style)
	}
}

func TestPaginate_EmphasisStripped(t *testing.T) {
	pages := layout.Paginate("some **bold** words", layout.DefaultConfig())
	got := pages[0].Commands[0].Lines[0]
	if strings.Contains(got, "*") {
		t.Errorf("emphasis markers should be stripped, got %q", got)
	}
	if got != "some bold words" {
		t.Errorf("got %q", got)
	}
}

func TestPaginate_HeadingLeadingApplied(t *testing.T) {
	cfg := layout.DefaultConfig()
	pages := layout.Paginate("first line\nEXECUTIVE SNAPSHOT", cfg)
	cmds := bodyCommands(pages, cfg)

	// Body at top margin, heading after one line advance + its leading.
	if cmds[0].Y != cfg.TopMargin {
		t.Errorf("first command at y=%v, want %v", cmds[0].Y, cfg.TopMargin)
	}
	wantY := cfg.TopMargin + cfg.LineSpacing + 8
	if cmds[1].Y != wantY {
		t.Errorf("heading at y=%v, want %v", cmds[1].Y, wantY)
	}
}

func TestPaginate_BlankLinesAdvanceWithoutDrawing(t *testing.T) {
	cfg := layout.DefaultConfig()
	pages := layout.Paginate("one\n\n\ntwo", cfg)
	cmds := bodyCommands(pages, cfg)
	if len(cmds) != 2 {
		t.Fatalf("expected 2 commands, got %d", len(cmds))
	}
	wantY := cfg.TopMargin + 3*cfg.LineSpacing // one drawn line + two spacers
	if cmds[1].Y != wantY {
		t.Errorf("second command at y=%v, want %v", cmds[1].Y, wantY)
	}
}

func TestPaginate_BreaksBeforeBottomLimit(t *testing.T) {
	cfg := layout.DefaultConfig()

	var b strings.Builder
	for i := 0; i < 120; i++ {
		b.WriteString("a line of perfectly ordinary body text\n")
	}
	pages := layout.Paginate(b.String(), cfg)

	if len(pages) < 2 {
		t.Fatalf("expected multiple pages, got %d", len(pages))
	}
	for pi, p := range pages {
		for _, c := range p.Commands {
			if c.Y == cfg.FooterY {
				continue
			}
			bottom := c.Y + float64(len(c.Lines))*cfg.LineSpacing
			if bottom > cfg.BottomLimit {
				t.Errorf("page %d: command extends to %v beyond limit %v", pi+1, bottom, cfg.BottomLimit)
			}
		}
	}
	// A fresh page starts at the top margin.
	if first := pages[1].Commands[0]; first.Y != cfg.TopMargin {
		t.Errorf("page 2 starts at y=%v, want %v", first.Y, cfg.TopMargin)
	}
}

func TestPaginate_FooterOnFinalPageOnly(t *testing.T) {
	cfg := layout.DefaultConfig()

	var b strings.Builder
	for i := 0; i < 120; i++ {
		b.WriteString("filler body text line\n")
	}
	pages := layout.Paginate(b.String(), cfg)
	if len(pages) < 2 {
		t.Fatalf("expected multiple pages, got %d", len(pages))
	}

	count := func(p layout.Page) int {
		n := 0
		for _, c := range p.Commands {
			if c.Y == cfg.FooterY && len(c.Lines) == 1 && c.Lines[0] == cfg.FooterText {
				n++
			}
		}
		return n
	}
	for pi, p := range pages[:len(pages)-1] {
		if count(p) != 0 {
			t.Errorf("page %d should carry no footer", pi+1)
		}
	}
	if count(pages[len(pages)-1]) != 1 {
		t.Error("final page should carry exactly one footer")
	}
}

func TestPaginate_Letterhead(t *testing.T) {
	cfg := layout.DefaultConfig()
	cfg.Letterhead = &layout.Letterhead{
		Brand:       "ELVEX PARTNERS | AI FUTURE FIT",
		Title:       "CAREER BLUEPRINT",
		Participant: "Amina Diallo",
	}
	pages := layout.Paginate("body text", cfg)

	cmds := pages[0].Commands
	if len(cmds) < 4 {
		t.Fatalf("expected letterhead + body commands, got %d", len(cmds))
	}
	if cmds[0].Lines[0] != "ELVEX PARTNERS | AI FUTURE FIT" || cmds[0].Style.Size != 8 {
		t.Errorf("brand line wrong: %+v", cmds[0])
	}
	if cmds[1].Lines[0] != "CAREER BLUEPRINT" || cmds[1].Style.Size != 22 {
		t.Errorf("title line wrong: %+v", cmds[1])
	}
	if cmds[2].Lines[0] != "PARTICIPANT: AMINA DIALLO" {
		t.Errorf("participant line wrong: %q", cmds[2].Lines[0])
	}
	// Body starts below the letterhead, not at the top margin.
	if cmds[3].Y <= cfg.TopMargin {
		t.Errorf("body at y=%v should sit below the letterhead", cmds[3].Y)
	}
}

func TestPaginate_WordWrapRespectsWidth(t *testing.T) {
	cfg := layout.DefaultConfig()
	long := strings.Repeat("wrapping words steadily onward ", 20)
	pages := layout.Paginate(long, cfg)

	cmd := pages[0].Commands[0]
	if len(cmd.Lines) < 2 {
		t.Fatalf("expected wrapped lines, got %d", len(cmd.Lines))
	}
	measure := layout.DefaultConfig().Measure
	for _, line := range cmd.Lines {
		if w := measure(line, cmd.Style.Size); w > cfg.PageWidth-2*cfg.Margin {
			t.Errorf("line %q measures %v, wider than content area", line, w)
		}
	}
}

func TestPaginate_EmptyDocument(t *testing.T) {
	cfg := layout.DefaultConfig()
	pages := layout.Paginate("", cfg)
	if len(pages) != 1 {
		t.Fatalf("expected a single page, got %d", len(pages))
	}
	// Only the footer is drawn.
	if len(pages[0].Commands) != 1 || pages[0].Commands[0].Y != cfg.FooterY {
		t.Errorf("unexpected commands on empty document: %+v", pages[0].Commands)
	}
}

func TestPaginate_Deterministic(t *testing.T) {
	cfg := layout.DefaultConfig()
	doc := "EXECUTIVE SNAPSHOT\n\nbody text\n- item one\n- item two"
	first := layout.Paginate(doc, cfg)
	for i := 0; i < 3; i++ {
		again := layout.Paginate(doc, cfg)
		if len(again) != len(first) {
			t.Fatal("page count differs between runs")
		}
		for p := range again {
			if len(again[p].Commands) != len(first[p].Commands) {
				t.Fatal("command count differs between runs")
			}
			for c := range again[p].Commands {
				a, b := again[p].Commands[c], first[p].Commands[c]
				if a.Y != b.Y || a.Style != b.Style || strings.Join(a.Lines, "|") != strings.Join(b.Lines, "|") {
					t.Fatalf("command %d/%d differs between runs", p, c)
				}
			}
		}
	}
}
