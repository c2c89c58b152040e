package export_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nyashahama/futurefit/internal/catalog"
	"github.com/nyashahama/futurefit/internal/export"
	"github.com/nyashahama/futurefit/internal/layout"
	"github.com/nyashahama/futurefit/internal/participant"
	"github.com/nyashahama/futurefit/internal/report"
	"github.com/nyashahama/futurefit/internal/scoring"
)

func TestDirName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Amina Diallo", "AI_Future_Fit_Amina_Diallo"},
		{"One  Two\tThree", "AI_Future_Fit_One_Two_Three"},
		{"Solo", "AI_Future_Fit_Solo"},
	}
	for _, tt := range tests {
		if got := export.DirName(tt.name); got != tt.want {
			t.Errorf("DirName(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestMeasure_Monotonic(t *testing.T) {
	r, err := export.NewRenderer(export.DefaultScale)
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	short := r.Measure("abc", 10)
	long := r.Measure("abcdefghij", 10)
	if short <= 0 {
		t.Errorf("Measure returned %v for non-empty text", short)
	}
	if long <= short {
		t.Errorf("longer text should measure wider: %v vs %v", long, short)
	}
	// Larger sizes measure wider for the same text.
	if r.Measure("abc", 13) <= short {
		t.Error("larger font size should measure wider")
	}
}

func TestRenderPage_Dimensions(t *testing.T) {
	r, err := export.NewRenderer(4)
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	cfg := layout.DefaultConfig()
	pages := layout.Paginate("EXECUTIVE SNAPSHOT\nbody line", cfg)

	img := r.RenderPage(pages[0], cfg)
	b := img.Bounds()
	if b.Dx() != 840 || b.Dy() != 1188 {
		t.Errorf("page raster is %dx%d, want 840x1188", b.Dx(), b.Dy())
	}
}

func TestExport_WritesArtifacts(t *testing.T) {
	p := participant.Participant{
		FullName:   "Amina Diallo",
		Email:      "amina@example.com",
		Industry:   "Logistics",
		Experience: "5-10",
		Location:   "Nairobi",
	}
	answers := scoring.Snapshot{}
	for _, q := range catalog.Questions() {
		if q.Kind == catalog.KindChoice {
			answers[q.ID] = scoring.Label("C")
		} else {
			answers[q.ID] = scoring.Number(3)
		}
	}
	docs := report.Generate(answers, catalog.Questions(), p)

	dir, err := export.Export(docs, p, export.Options{OutDir: t.TempDir()})
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if filepath.Base(dir) != "AI_Future_Fit_Amina_Diallo" {
		t.Errorf("export dir %q has wrong name", dir)
	}

	for _, name := range []string{"page-1.png", "report.txt", "internal.txt"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("missing artifact %s: %v", name, err)
		}
	}

	body, err := os.ReadFile(filepath.Join(dir, "report.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if string(body) != docs.Participant {
		t.Error("report.txt should contain the participant document verbatim")
	}
}
