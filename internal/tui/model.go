// Package tui implements the interactive assessment flow as a Bubble Tea
// program: welcome → intake → question stepper → report view → export. The
// model owns the only mutable answer store; the scoring and layout engines
// receive read-only snapshots when the flow completes.
package tui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/nyashahama/futurefit/internal/catalog"
	"github.com/nyashahama/futurefit/internal/config"
	"github.com/nyashahama/futurefit/internal/export"
	"github.com/nyashahama/futurefit/internal/participant"
	"github.com/nyashahama/futurefit/internal/report"
	"github.com/nyashahama/futurefit/internal/scoring"
)

// phase is the screen the model is currently showing.
type phase int

const (
	phaseWelcome phase = iota
	phaseIntake
	phaseAssessment
	phaseGenerating
	phaseReport
	phaseDone
)

// intake field indices; the experience bucket sits between role and location
// and is selected with arrow keys rather than typed.
const (
	fieldName = iota
	fieldEmail
	fieldIndustry
	fieldRole
	fieldExperience
	fieldLocation
	fieldCount
)

// Messages produced by background commands.
type (
	reportReadyMsg struct{ docs report.Documents }
	exportDoneMsg  struct {
		dir string
		err error
	}
)

// Model is the full TUI state for one assessment session.
type Model struct {
	cfg    *config.Config
	logger *slog.Logger

	session uuid.UUID
	phase   phase
	width   int
	height  int

	// Intake.
	inputs  []textinput.Model
	focus   int
	expIdx  int
	formErr string

	// Assessment.
	questions []catalog.Question
	step      int
	answers   scoring.Snapshot
	prog      progress.Model

	// Report.
	docs         report.Documents
	showInternal bool
	vp           viewport.Model
	vpReady      bool
	exportDir    string
	exportErr    error
}

// New constructs the initial model.
func New(cfg *config.Config, logger *slog.Logger) Model {
	inputs := make([]textinput.Model, 5)
	for i := range inputs {
		ti := textinput.New()
		ti.CharLimit = 80
		ti.Width = 42
		inputs[i] = ti
	}
	inputs[0].Placeholder = "Full name"
	inputs[1].Placeholder = "Email"
	inputs[2].Placeholder = "Industry"
	inputs[3].Placeholder = "Role (optional)"
	inputs[4].Placeholder = "Location"

	expIdx := 0
	for i, b := range participant.ExperienceBuckets {
		if b == participant.DefaultExperience {
			expIdx = i
		}
	}

	return Model{
		cfg:       cfg,
		logger:    logger,
		session:   uuid.New(),
		phase:     phaseWelcome,
		inputs:    inputs,
		expIdx:    expIdx,
		questions: catalog.Questions(),
		answers:   scoring.Snapshot{},
		prog:      progress.New(progress.WithDefaultGradient()),
	}
}

func (m Model) Init() tea.Cmd { return nil }

// inputIndex maps an intake field to its textinput slot, skipping the
// experience selector. Returns -1 for the experience field.
func inputIndex(field int) int {
	switch {
	case field < fieldExperience:
		return field
	case field == fieldExperience:
		return -1
	default:
		return field - 1
	}
}

func (m Model) participantRecord() participant.Participant {
	return participant.Participant{
		FullName:   strings.TrimSpace(m.inputs[0].Value()),
		Email:      strings.TrimSpace(m.inputs[1].Value()),
		Industry:   strings.TrimSpace(m.inputs[2].Value()),
		Role:       strings.TrimSpace(m.inputs[3].Value()),
		Experience: participant.ExperienceBuckets[m.expIdx],
		Location:   strings.TrimSpace(m.inputs[4].Value()),
	}
}

// ─── UPDATE ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.prog.Width = min(msg.Width-8, 60)
		if m.vpReady {
			m.vp.Width = msg.Width - 4
			m.vp.Height = msg.Height - 6
		}
		return m, nil

	case reportReadyMsg:
		m.docs = msg.docs
		m.phase = phaseReport
		m.vp = viewport.New(max(m.width-4, 40), max(m.height-6, 10))
		m.vp.SetContent(m.docs.Participant)
		m.vpReady = true
		m.logger.Info("report generated", "session", m.session)
		return m, nil

	case exportDoneMsg:
		m.exportDir, m.exportErr = msg.dir, msg.err
		if msg.err != nil {
			m.logger.Error("export failed", "session", m.session, "error", msg.err)
			return m, nil
		}
		m.logger.Info("export complete", "session", m.session, "dir", msg.dir)
		m.phase = phaseDone
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		switch m.phase {
		case phaseWelcome:
			return m.updateWelcome(msg)
		case phaseIntake:
			return m.updateIntake(msg)
		case phaseAssessment:
			return m.updateAssessment(msg)
		case phaseReport:
			return m.updateReport(msg)
		case phaseDone:
			if msg.String() == "q" || msg.Type == tea.KeyEnter {
				return m, tea.Quit
			}
		}
	}

	return m, nil
}

func (m Model) updateWelcome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "enter":
		m.phase = phaseIntake
		m.focus = fieldName
		return m, m.inputs[0].Focus()
	}
	return m, nil
}

func (m Model) updateIntake(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "tab", "down":
		if msg.String() == "enter" && m.focus == fieldCount-1 {
			return m.submitIntake()
		}
		return m.moveFocus(1)
	case "shift+tab", "up":
		return m.moveFocus(-1)
	case "left":
		if m.focus == fieldExperience && m.expIdx > 0 {
			m.expIdx--
			return m, nil
		}
	case "right":
		if m.focus == fieldExperience && m.expIdx < len(participant.ExperienceBuckets)-1 {
			m.expIdx++
			return m, nil
		}
	}

	if idx := inputIndex(m.focus); idx >= 0 {
		var cmd tea.Cmd
		m.inputs[idx], cmd = m.inputs[idx].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) moveFocus(delta int) (tea.Model, tea.Cmd) {
	if idx := inputIndex(m.focus); idx >= 0 {
		m.inputs[idx].Blur()
	}
	m.focus = (m.focus + delta + fieldCount) % fieldCount
	if idx := inputIndex(m.focus); idx >= 0 {
		return m, m.inputs[idx].Focus()
	}
	return m, nil
}

func (m Model) submitIntake() (tea.Model, tea.Cmd) {
	p := m.participantRecord()
	if err := p.Validate(); err != nil {
		m.formErr = err.Error()
		return m, nil
	}
	m.formErr = ""
	m.phase = phaseAssessment
	m.step = 0
	m.logger.Info("assessment started", "session", m.session, "questions", len(m.questions))
	return m, nil
}

func (m Model) updateAssessment(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	q := m.questions[m.step]
	key := msg.String()

	switch key {
	case "b", "left":
		if m.step > 0 {
			m.step--
		}
		return m, nil
	case "q":
		return m, tea.Quit
	}

	if answered, raw := readAnswer(q, key); answered {
		m.answers[q.ID] = raw
		return m.advance()
	}
	return m, nil
}

// readAnswer maps a keypress to a raw answer for the current question:
// option letters (or their 1-based digits) for choice questions, digits
// within range for scales.
func readAnswer(q catalog.Question, key string) (bool, scoring.Raw) {
	if q.Kind == catalog.KindChoice {
		for i, opt := range q.Options {
			if strings.EqualFold(key, opt.Key) || key == fmt.Sprintf("%d", i+1) {
				return true, scoring.Label(opt.Key)
			}
		}
		return false, scoring.Raw{}
	}

	min, max := q.Range()
	for v := min; v <= max; v++ {
		if key == fmt.Sprintf("%d", v) {
			return true, scoring.Number(float64(v))
		}
	}
	return false, scoring.Raw{}
}

func (m Model) advance() (tea.Model, tea.Cmd) {
	if m.step < len(m.questions)-1 {
		m.step++
		return m, nil
	}
	m.phase = phaseGenerating
	return m, m.generateCmd()
}

// generateCmd runs the scoring engine off the update loop. The snapshot and
// participant record are captured by value; the engine never sees the model.
func (m Model) generateCmd() tea.Cmd {
	answers := make(scoring.Snapshot, len(m.answers))
	for k, v := range m.answers {
		answers[k] = v
	}
	questions := m.questions
	p := m.participantRecord()

	return func() tea.Msg {
		return reportReadyMsg{docs: report.Generate(answers, questions, p)}
	}
}

func (m Model) updateReport(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "o":
		m.showInternal = !m.showInternal
		if m.showInternal {
			m.vp.SetContent(m.docs.Internal)
		} else {
			m.vp.SetContent(m.docs.Participant)
		}
		m.vp.GotoTop()
		return m, nil
	case "e":
		return m, m.exportCmd()
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func (m Model) exportCmd() tea.Cmd {
	docs := m.docs
	p := m.participantRecord()
	opts := export.Options{
		OutDir: m.cfg.OutputDir,
		Scale:  m.cfg.PageScale,
		Accent: m.cfg.Accent,
	}
	return func() tea.Msg {
		dir, err := export.Export(docs, p, opts)
		return exportDoneMsg{dir: dir, err: err}
	}
}
