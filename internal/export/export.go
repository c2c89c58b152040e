// Package export is the document-writing collaborator: it renders paginated
// draw commands to one PNG per page and writes the raw text documents next to
// them. The layout engine stays renderer-agnostic; this package owns fonts,
// pixels, and the filesystem.
package export

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"regexp"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/nyashahama/futurefit/internal/layout"
	"github.com/nyashahama/futurefit/internal/participant"
	"github.com/nyashahama/futurefit/internal/report"
)

// mmPerPoint converts font sizes (points) to page millimetres.
const mmPerPoint = 25.4 / 72

// DefaultScale is the raster density in pixels per millimetre. 4 px/mm puts
// an A4 page at 840×1188 — crisp enough for screens and cheap to encode.
const DefaultScale = 4

// Renderer rasterizes layout pages. It owns the parsed fonts and a face
// cache; faces are keyed by (size, weight) because freetype faces are sized
// at construction.
type Renderer struct {
	scale   float64
	regular *truetype.Font
	bold    *truetype.Font
	faces   map[faceKey]font.Face
}

type faceKey struct {
	size float64
	bold bool
}

// NewRenderer parses the embedded Go fonts at the given pixel density.
func NewRenderer(scale float64) (*Renderer, error) {
	if scale <= 0 {
		scale = DefaultScale
	}
	reg, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse regular font: %w", err)
	}
	bld, err := truetype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse bold font: %w", err)
	}
	return &Renderer{
		scale:   scale,
		regular: reg,
		bold:    bld,
		faces:   make(map[faceKey]font.Face),
	}, nil
}

// face returns the cached font.Face for a style, sized in device pixels.
func (r *Renderer) face(sizePt float64, bold bool) font.Face {
	key := faceKey{size: sizePt, bold: bold}
	if f, ok := r.faces[key]; ok {
		return f
	}
	src := r.regular
	if bold {
		src = r.bold
	}
	f := truetype.NewFace(src, &truetype.Options{
		Size: sizePt * mmPerPoint * r.scale, // point size → mm → px
		DPI:  72,
	})
	r.faces[key] = f
	return f
}

// Measure reports rendered text width in millimetres, satisfying
// layout.MeasureFunc — wrapping decisions then match the drawn glyphs.
func (r *Renderer) Measure(text string, sizePt float64) float64 {
	adv := font.MeasureString(r.face(sizePt, false), text)
	return float64(adv) / 64 / r.scale
}

// RenderPage rasterizes one page onto a white canvas.
func (r *Renderer) RenderPage(p layout.Page, cfg layout.Config) image.Image {
	w := int(cfg.PageWidth * r.scale)
	h := int(cfg.PageHeight * r.scale)

	dc := gg.NewContext(w, h)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	for _, cmd := range p.Commands {
		dc.SetFontFace(r.face(cmd.Style.Size, cmd.Style.Bold))
		c := cmd.Style.Color
		dc.SetRGB255(int(c.R), int(c.G), int(c.B))

		y := cmd.Y
		for _, line := range cmd.Lines {
			dc.DrawString(line, cmd.X*r.scale, y*r.scale)
			y += cfg.LineSpacing
		}
	}

	return dc.Image()
}

// dirNameRe collapses whitespace runs when building the export folder name.
var dirNameRe = regexp.MustCompile(`\s+`)

// DirName builds the export folder name for a participant, mirroring the
// report file convention: "AI_Future_Fit_<Name_With_Underscores>".
func DirName(fullName string) string {
	return "AI_Future_Fit_" + dirNameRe.ReplaceAllString(fullName, "_")
}

// Options tune one export run. Zero values fall back to defaults: the
// current directory, DefaultScale, and the layout package's accent color.
type Options struct {
	OutDir string
	Scale  float64
	Accent layout.RGB
}

// Export paginates the participant document and writes the full artifact set
// under opts.OutDir: page-N.png per page, report.txt, and internal.txt.
// Returns the created directory. Any filesystem or encoding failure aborts
// with an error for the caller to surface — partial output may remain on
// disk.
func Export(docs report.Documents, p participant.Participant, opts Options) (string, error) {
	r, err := NewRenderer(opts.Scale)
	if err != nil {
		return "", err
	}
	if opts.OutDir == "" {
		opts.OutDir = "."
	}

	cfg := layout.DefaultConfig()
	cfg.Measure = r.Measure
	if opts.Accent != (layout.RGB{}) {
		cfg.Accent = opts.Accent
	}
	cfg.Letterhead = &layout.Letterhead{
		Brand:       "ELVEX PARTNERS | AI FUTURE FIT",
		Title:       "CAREER BLUEPRINT",
		Participant: p.FullName,
	}

	pages := layout.Paginate(docs.Participant, cfg)

	dir := filepath.Join(opts.OutDir, DirName(p.FullName))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}

	for i, page := range pages {
		img := r.RenderPage(page, cfg)
		path := filepath.Join(dir, fmt.Sprintf("page-%d.png", i+1))
		if err := gg.SavePNG(path, img); err != nil {
			return "", fmt.Errorf("write %s: %w", path, err)
		}
	}

	if err := os.WriteFile(filepath.Join(dir, "report.txt"), []byte(docs.Participant), 0o644); err != nil {
		return "", fmt.Errorf("write report.txt: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "internal.txt"), []byte(docs.Internal), 0o644); err != nil {
		return "", fmt.Errorf("write internal.txt: %w", err)
	}

	return dir, nil
}
