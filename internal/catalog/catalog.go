// Package catalog holds the static question battery for the AI Future Fit
// Discovery assessment. The catalog is compiled in and immutable: every other
// package treats it as read-only input. It is intentionally dependency-free so
// the scoring and report packages can be tested without any infrastructure.
package catalog

import "strings"

// Kind is the answer modality of a question.
type Kind string

const (
	// KindChoice questions are answered by picking one of an ordered set of
	// lettered options. The option's position defines its numeric rank.
	KindChoice Kind = "choice"

	// KindScale questions are answered with an integer in [Min, Max].
	KindScale Kind = "scale"
)

// Option is one selectable answer for a choice question. Key is the short
// label the participant picks ("A".."F"); Label is the display text.
type Option struct {
	Key   string
	Label string
}

// Question is one entry in the battery. ID is unique and ascending — catalog
// order is the canonical question order and also the tie-break order for
// category ranking downstream.
type Question struct {
	ID       int
	Category string // competency theme shared by related questions
	Text     string
	Subtext  string // optional scale anchor hint, e.g. "(1: … - 5: …)"
	Kind     Kind

	// Choice questions only. Options are ordered; rank of an answer is its
	// 1-based position in this slice.
	Options []Option

	// Scale questions only. Inclusive bounds.
	Min int
	Max int
}

// Range returns the numeric value range used for normalization. Choice
// questions span [1, number-of-options] (6 when the option set is missing);
// scale questions span [Min, Max] with 1 and 5 substituted for unset bounds.
func (q Question) Range() (min, max int) {
	if q.Kind == KindChoice {
		if len(q.Options) == 0 {
			return 1, 6
		}
		return 1, len(q.Options)
	}
	min, max = q.Min, q.Max
	if min == 0 {
		min = 1
	}
	if max == 0 {
		max = 5
	}
	return min, max
}

// OptionRank returns the 1-based rank of key within the question's ordered
// option set, matching case-insensitively. Returns 0 when the key is not a
// defined option — 0 is the shared "no value" sentinel that normalization
// drops, so a choice answer can never legitimately map to it.
func (q Question) OptionRank(key string) int {
	for i, opt := range q.Options {
		if strings.EqualFold(opt.Key, key) {
			return i + 1
		}
	}
	return 0
}

// Meta identifies the framework the battery belongs to. Used for report
// branding and the export letterhead.
type Meta struct {
	Name    string
	Owner   string
	Author  string
	Tagline string
}

// Framework is the metadata for this battery.
var Framework = Meta{
	Name:    "AI Future Fit Discovery Assessment",
	Owner:   "Elvex Partners LLC-FZ",
	Author:  "Moataz Saleh",
	Tagline: "Determining your economic contribution style in the era of intelligence.",
}

// Questions returns the full ordered battery. The returned slice is shared;
// callers must not mutate it.
func Questions() []Question { return questions }

// Len returns the number of questions in the battery.
func Len() int { return len(questions) }

// ByID returns the question with the given id, or false when absent.
func ByID(id int) (Question, bool) {
	for _, q := range questions {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}
