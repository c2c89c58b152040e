// Package report assembles the two narrative documents — the participant
// report and the internal owner copy — from a scored assessment. Generation
// is total and deterministic: identical inputs always produce byte-identical
// documents, and degenerate inputs (zero answers) still yield a well-formed
// report with every fixed section present.
package report

import (
	"fmt"
	"strings"

	"github.com/nyashahama/futurefit/internal/catalog"
	"github.com/nyashahama/futurefit/internal/insight"
	"github.com/nyashahama/futurefit/internal/participant"
	"github.com/nyashahama/futurefit/internal/scoring"
)

// Documents is the pair of finished text documents for one assessment.
type Documents struct {
	Participant string // shown to the participant and exported
	Internal    string // owner copy: lead summary + follow-ups
}

// Generate runs scoring steps 1–4 end to end and assembles both documents.
// It never fails: malformed answers are dropped during normalization and an
// empty snapshot degrades to an "At risk" report with empty lists.
func Generate(answers scoring.Snapshot, questions []catalog.Question, p participant.Participant) Documents {
	result := scoring.Aggregate(scoring.Normalize(answers, questions))

	top3 := result.Top3()
	bottom3 := result.Bottom3()

	topNames := make([]string, len(top3))
	for i, c := range top3 {
		topNames[i] = c.Category
	}
	persona := insight.ClassifyPersona(topNames)

	return Documents{
		Participant: participantDoc(p, result, persona, top3, bottom3),
		Internal:    internalDoc(p, result, persona, top3, bottom3),
	}
}

// roundScore renders a category mean as a whole number, rounding half up.
func roundScore(v float64) int { return int(v + 0.5) }

// strengthsList formats ranked entries as "N) Category (score / 100)" with
// the category's strength or risk line beneath. Returns "Not available" for
// an empty list so the section header never dangles over nothing.
func strengthsList(cats []scoring.CategoryScore, pick func(insight.Entry) string) string {
	if len(cats) == 0 {
		return "Not available"
	}
	items := make([]string, len(cats))
	for i, c := range cats {
		e := insight.Lookup(c.Category)
		items[i] = fmt.Sprintf("%d) %s (%d / 100)\n- %s", i+1, c.Category, roundScore(c.Score), pick(e))
	}
	return strings.Join(items, "\n\n")
}

// actionPlan builds the 30-day plan: weeks 1–3 strengthen the bottom-3
// categories in delivered order (lowest score first), up to three actions
// each, followed by the fixed consolidation week.
func actionPlan(bottom3 []scoring.CategoryScore) string {
	var lines []string

	for i, c := range bottom3 {
		if i >= 3 {
			break
		}
		e := insight.Lookup(c.Category)
		lines = append(lines, fmt.Sprintf("Week %d: Strengthen %s", i+1, c.Category))
		for j, a := range e.Actions {
			if j >= 3 {
				break
			}
			lines = append(lines, "- "+a)
		}
		lines = append(lines, "")
	}

	lines = append(lines,
		"Week 4: Consolidate and scale",
		"- Choose one workflow to standardize and reuse (prompt + checklist + template).",
		"- Share the workflow with one colleague and capture improvements.",
		"- Review results: time saved, quality improved, and decision speed.",
	)
	return strings.Join(lines, "\n")
}

// summaryList renders "Category (score)" pairs comma-joined for the owner
// copy's lead summary. Empty input renders as an empty string.
func summaryList(cats []scoring.CategoryScore) string {
	parts := make([]string, len(cats))
	for i, c := range cats {
		parts[i] = fmt.Sprintf("%s (%d)", c.Category, roundScore(c.Score))
	}
	return strings.Join(parts, ", ")
}

func participantDoc(p participant.Participant, r scoring.Result, persona insight.Persona, top3, bottom3 []scoring.CategoryScore) string {
	return fmt.Sprintf(`AI Future Fit Discovery Report

Participant
Name: %s
Email: %s
Industry: %s
Role: %s
Location: %s
Experience: %s

Executive snapshot
Overall index: %.1f / 100 (%s)

Persona label
%s
%s

Top 3 strengths
%s

Top 3 risks to manage
%s

30-day action plan
%s

How to use this report
- Start with your lowest area first. Raising the constraint improves everything else.
- Use your strongest area as leverage. Apply it to accelerate progress in the gaps.
- Recheck after 30 days. The goal is visible behavioral change, not perfect scores.

Disclaimer
This briefing is an indicative diagnostic based on self-reported answers and should be used as directional guidance.`,
		p.FullName,
		p.Email,
		p.Industry,
		p.RoleOrDefault(),
		p.Location,
		p.Experience,
		r.Overall,
		r.Band(),
		persona.Label,
		persona.Meaning,
		strengthsList(top3, func(e insight.Entry) string { return e.Strength }),
		strengthsList(bottom3, func(e insight.Entry) string { return e.Risk }),
		actionPlan(bottom3),
	)
}

func internalDoc(p participant.Participant, r scoring.Result, persona insight.Persona, top3, bottom3 []scoring.CategoryScore) string {
	return fmt.Sprintf(`OWNER COPY (Internal)

Lead summary
Overall index: %.1f / 100 (%s)
Persona: %s
Top strengths: %s
Top risks: %s

Recommended follow-up
- Offer a 20-minute debrief to validate the top risk areas and confirm role context.
- Propose a 60-minute working session: AI workflow design + adoption plan for one high-frequency process.
- If this is an enterprise lead, propose an AI adoption readiness workshop focused on operating model, enablement, governance, and change adoption.

Data captured
Participant: %s
Email: %s
Industry: %s
Role: %s
Location: %s
Experience: %s

Notes
Generated locally with no external calls. Scores are deterministic for identical answers.`,
		r.Overall,
		r.Band(),
		persona.Label,
		summaryList(top3),
		summaryList(bottom3),
		p.FullName,
		p.Email,
		p.Industry,
		p.RoleOrDefault(),
		p.Location,
		p.Experience,
	)
}
