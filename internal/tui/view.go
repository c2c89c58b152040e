package tui

import (
	"fmt"
	"strings"

	"github.com/nyashahama/futurefit/internal/catalog"
	"github.com/nyashahama/futurefit/internal/participant"
)

func (m Model) View() string {
	switch m.phase {
	case phaseWelcome:
		return m.viewWelcome()
	case phaseIntake:
		return m.viewIntake()
	case phaseAssessment:
		return m.viewAssessment()
	case phaseGenerating:
		return m.viewGenerating()
	case phaseReport:
		return m.viewReport()
	case phaseDone:
		return m.viewDone()
	}
	return ""
}

func (m Model) viewWelcome() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(catalog.Framework.Name) + "\n")
	b.WriteString(taglineStyle.Render(catalog.Framework.Tagline) + "\n\n")
	b.WriteString(fmt.Sprintf("%d questions, about 10 minutes. Your answers stay on this machine.\n\n", catalog.Len()))
	b.WriteString(helpStyle.Render("enter to begin · q to quit"))
	return boxStyle.Render(b.String())
}

func (m Model) viewIntake() string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render("Participant details") + "\n\n")

	labels := []string{"Name", "Email", "Industry", "Role", "Experience", "Location"}
	for f := 0; f < fieldCount; f++ {
		b.WriteString(labelStyle.Render(labels[f]) + "\n")
		if f == fieldExperience {
			b.WriteString(m.renderExperience() + "\n")
			continue
		}
		b.WriteString(m.inputs[inputIndex(f)].View() + "\n")
	}

	if m.formErr != "" {
		b.WriteString("\n" + errorStyle.Render(m.formErr) + "\n")
	}
	b.WriteString("\n" + helpStyle.Render("tab/↑↓ move · ←→ pick experience · enter on last field to continue"))
	return boxStyle.Render(b.String())
}

// renderExperience shows the bucket strip with the active bucket highlighted.
func (m Model) renderExperience() string {
	parts := make([]string, len(participant.ExperienceBuckets))
	for i, bucket := range participant.ExperienceBuckets {
		label := bucket + " yrs"
		if i == m.expIdx {
			parts[i] = selectedStyle.Render("[" + label + "]")
		} else {
			parts[i] = optionStyle.Render(label)
		}
	}
	return strings.Join(parts, " ")
}

func (m Model) viewAssessment() string {
	q := m.questions[m.step]

	var b strings.Builder
	b.WriteString(m.prog.ViewAs(float64(m.step)/float64(len(m.questions))) + "\n")
	b.WriteString(helpStyle.Render(fmt.Sprintf("Question %d of %d", m.step+1, len(m.questions))) + "\n\n")

	b.WriteString(categoryStyle.Render(strings.ToUpper(q.Category)) + "\n")
	b.WriteString(sectionStyle.Render(q.Text) + "\n")
	if q.Subtext != "" {
		b.WriteString(taglineStyle.Render(q.Subtext) + "\n")
	}
	b.WriteString("\n")

	current, answered := m.answers[q.ID]

	if q.Kind == catalog.KindChoice {
		for _, opt := range q.Options {
			line := fmt.Sprintf("%s) %s", opt.Key, opt.Label)
			if answered && current.IsLabel(opt.Key) {
				b.WriteString(selectedStyle.Render(line) + "\n")
			} else {
				b.WriteString(optionStyle.Render(line) + "\n")
			}
		}
		b.WriteString("\n" + helpStyle.Render("a-f to answer · b back · q quit"))
	} else {
		lo, hi := q.Range()
		for v := lo; v <= hi; v++ {
			line := fmt.Sprintf("%d", v)
			if answered && current.IsNumber(float64(v)) {
				line = selectedStyle.Render("[" + line + "]")
			} else {
				line = optionStyle.Render(line)
			}
			b.WriteString(line)
		}
		b.WriteString("\n\n" + helpStyle.Render(fmt.Sprintf("%d (lowest) to %d (highest) · b back · q quit", lo, hi)))
	}

	return boxStyle.Render(b.String())
}

func (m Model) viewGenerating() string {
	return boxStyle.Render(sectionStyle.Render("Scoring your answers...") + "\n\n" +
		helpStyle.Render("All processing happens locally."))
}

func (m Model) viewReport() string {
	header := titleStyle.Render("AI Future Fit Discovery Report")
	if m.showInternal {
		header = titleStyle.Render("OWNER COPY (Internal)")
	}

	status := ""
	if m.exportErr != nil {
		status = "\n" + errorStyle.Render("export failed: "+m.exportErr.Error())
	}

	return header + "\n" + m.vp.View() + status + "\n" +
		helpStyle.Render("↑↓ scroll · o toggle internal copy · e export · q quit")
}

func (m Model) viewDone() string {
	return boxStyle.Render(
		sectionStyle.Render("Report exported") + "\n\n" +
			"Artifacts written to:\n" + m.exportDir + "\n\n" +
			helpStyle.Render("enter or q to exit"))
}
