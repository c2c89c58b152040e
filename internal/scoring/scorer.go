// Package scoring implements the deterministic transformation of raw answers
// into normalized per-question percentages and ranked category scores. It is
// intentionally lean: it imports nothing beyond the catalog and can be tested
// without any UI or renderer.
package scoring

import (
	"sort"
	"strconv"
	"strings"

	"github.com/nyashahama/futurefit/internal/catalog"
)

// ─── CONSTANTS ────────────────────────────────────────────────────────────────

// Readiness band thresholds over the overall index.
const (
	bandHigh     = 80 // index >= 80 → "High readiness"
	bandSolid    = 60 // index >= 60 → "Solid foundation"
	bandEmerging = 40 // index >= 40 → "Emerging readiness"
)

// ─── TYPES ────────────────────────────────────────────────────────────────────

// Raw is one raw answer: either a numeric value or a text label. The zero
// value is "unanswered" and normalizes to nothing.
//
// A small discriminated type (rather than interface{}) keeps the snapshot
// easy to construct in tests and impossible to fill with surprise types.
type Raw struct {
	num   float64
	text  string
	isNum bool
	set   bool
}

// Number wraps a numeric raw answer (a scale selection, typically).
func Number(v float64) Raw { return Raw{num: v, isNum: true, set: true} }

// Label wraps a text raw answer: either a choice key ("A".."F") or digits
// typed for a scale question.
func Label(s string) Raw { return Raw{text: s, set: true} }

// IsLabel reports whether the answer is the given text label, matched
// case-insensitively the way choice keys are resolved.
func (r Raw) IsLabel(key string) bool {
	return r.set && !r.isNum && strings.EqualFold(r.text, key)
}

// IsNumber reports whether the answer is exactly the given numeric value.
func (r Raw) IsNumber(v float64) bool {
	return r.set && r.isNum && r.num == v
}

// Snapshot maps question id → raw answer. The UI owns the only mutable copy;
// the engine reads it once and never writes.
type Snapshot map[int]Raw

// Normalized is one (category, percentage) data point produced from an
// answered question. Pct is always in [0, 100].
type Normalized struct {
	QuestionID int
	Category   string
	Pct        float64
}

// CategoryScore is the mean percentage across one category's data points.
type CategoryScore struct {
	Category string
	Score    float64
}

// Result is the aggregated outcome of one assessment. Categories is sorted
// descending by score; ties keep the order in which each category first
// produced a normalized data point.
type Result struct {
	Overall    float64 // answer-weighted mean of every normalized percentage
	Categories []CategoryScore
}

// ─── NORMALIZATION ────────────────────────────────────────────────────────────

// clamp constrains v to [min, max].
func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// resolve turns a raw answer into its numeric value for the given question.
// Returns 0 for anything unresolvable — blank text, an unknown choice key —
// which is the shared "no value" sentinel. Choice ranks are 1-based, so a
// legitimate answer can never resolve to 0.
func resolve(q catalog.Question, raw Raw) float64 {
	if raw.isNum {
		return raw.num
	}
	text := strings.TrimSpace(raw.text)
	if text == "" {
		return 0
	}
	// Scale answers sometimes arrive as text; numbers win over choice keys.
	if v, err := strconv.ParseFloat(text, 64); err == nil {
		return v
	}
	return float64(q.OptionRank(text))
}

// Normalize converts the answered subset of the catalog into (category, pct)
// data points, in catalog order. Unanswered questions and unresolvable
// answers contribute nothing — they are dropped, never imputed as zero.
//
// For each resolvable answer the value is clamped into the question's
// declared range and rescaled linearly: range minimum → 0, maximum → 100.
func Normalize(answers Snapshot, questions []catalog.Question) []Normalized {
	out := make([]Normalized, 0, len(questions))

	for _, q := range questions {
		raw, ok := answers[q.ID]
		if !ok || !raw.set {
			continue
		}

		value := resolve(q, raw)
		if value == 0 {
			continue
		}

		min, max := q.Range()
		fmin, fmax := float64(min), float64(max)
		clamped := clamp(value, fmin, fmax)

		span := fmax - fmin
		if span < 1 {
			span = 1
		}
		pct := (clamped - fmin) / span * 100

		out = append(out, Normalized{
			QuestionID: q.ID,
			Category:   q.Category,
			Pct:        pct,
		})
	}

	return out
}

// ─── AGGREGATION ──────────────────────────────────────────────────────────────

// Aggregate groups normalized data points by category and ranks the category
// means descending. The overall index is the mean of every individual
// percentage — each answered question weighs the same regardless of how many
// questions share its category.
func Aggregate(scores []Normalized) Result {
	if len(scores) == 0 {
		return Result{}
	}

	total := 0.0
	type acc struct {
		sum float64
		n   int
	}
	byCat := make(map[string]*acc, len(scores))
	order := make([]string, 0, len(scores)) // first-occurrence order

	for _, s := range scores {
		total += s.Pct
		a, ok := byCat[s.Category]
		if !ok {
			a = &acc{}
			byCat[s.Category] = a
			order = append(order, s.Category)
		}
		a.sum += s.Pct
		a.n++
	}

	cats := make([]CategoryScore, 0, len(order))
	for _, name := range order {
		a := byCat[name]
		cats = append(cats, CategoryScore{
			Category: name,
			Score:    a.sum / float64(a.n),
		})
	}

	// Descending by score; SliceStable keeps first-occurrence order on ties.
	sort.SliceStable(cats, func(a, b int) bool {
		return cats[a].Score > cats[b].Score
	})

	return Result{
		Overall:    total / float64(len(scores)),
		Categories: cats,
	}
}

// Top3 returns the three highest-scoring categories (fewer if fewer exist).
func (r Result) Top3() []CategoryScore {
	if len(r.Categories) <= 3 {
		return r.Categories
	}
	return r.Categories[:3]
}

// Bottom3 returns the three lowest-scoring categories with the order
// reversed, so the single lowest score comes first. The action plan assigns
// Week 1 to the first entry — the worst category gets attention first.
func (r Result) Bottom3() []CategoryScore {
	n := len(r.Categories)
	start := n - 3
	if start < 0 {
		start = 0
	}
	tail := r.Categories[start:]

	out := make([]CategoryScore, len(tail))
	for i, c := range tail {
		out[len(tail)-1-i] = c
	}
	return out
}

// Band buckets the overall index into one of the four readiness labels.
func (r Result) Band() string {
	switch {
	case r.Overall >= bandHigh:
		return "High readiness"
	case r.Overall >= bandSolid:
		return "Solid foundation"
	case r.Overall >= bandEmerging:
		return "Emerging readiness"
	default:
		return "At risk"
	}
}
