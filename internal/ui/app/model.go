package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	sessiondto "stepcount/internal/modules/session/dto"
	apperrors "stepcount/internal/platform/errors"
	"stepcount/internal/platform/numfmt"
	"stepcount/internal/platform/theme"
)

// ─── ports ───────────────────────────────────────────────────────────────────

type sessionPort interface {
	Begin(ctx context.Context) sessiondto.BeginOutput
	Goal(token string) sessiondto.GoalOutput
	Days(token string) sessiondto.DaysOutput
	Sample(ctx context.Context, token string, goal float64) (sessiondto.SampleOutput, error)
	Finish(ctx context.Context, input sessiondto.FinishInput) (sessiondto.RunOutput, error)
	Report(out sessiondto.RunOutput) string
}

// ─── phases ──────────────────────────────────────────────────────────────────

type phase int

const (
	phaseGoal phase = iota
	phaseDays
	phaseSamples
	phaseReport
)

// ─── async messages ──────────────────────────────────────────────────────────

type finishedMsg struct {
	out sessiondto.RunOutput
	err error
}

// ─── key bindings ────────────────────────────────────────────────────────────

type keyMap struct {
	Enter key.Binding
	Help  key.Binding
	Quit  key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Enter: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
		Help:  key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:  key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Enter, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Enter}, {k.Help, k.Quit}}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model walks the same goal, day-count and per-day prompts as the console
// session, one text field at a time.
type Model struct {
	session sessionPort

	defaultGoal float64
	defaultDays int

	begin   sessiondto.BeginOutput
	goal    float64
	days    int
	samples []float64
	log     []string

	phase    phase
	input    textinput.Model
	report   viewport.Model
	keys     keyMap
	help     help.Model
	showHelp bool
	status   string
	width    int
	height   int
}

func NewModel(session sessionPort, defaultGoal float64, defaultDays int) Model {
	ti := textinput.New()
	ti.Prompt = "› "
	ti.CharLimit = 32
	ti.Focus()

	m := Model{
		session:     session,
		defaultGoal: defaultGoal,
		defaultDays: defaultDays,
		goal:        defaultGoal,
		days:        defaultDays,
		input:       ti,
		keys:        defaultKeys(),
		help:        help.New(),
		phase:       phaseGoal,
	}
	m.begin = session.Begin(context.Background())
	m.input.Placeholder = numfmt.Count(defaultGoal)
	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// ─── update ──────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.report.Width = m.reportWidth()
		m.report.Height = m.reportHeight()
		return m, nil

	case finishedMsg:
		if msg.err != nil {
			m.status = "report failed: " + msg.err.Error()
			return m, nil
		}
		m.report = viewport.New(m.reportWidth(), m.reportHeight())
		m.report.SetContent(strings.TrimRight(m.session.Report(msg.out), "\n"))
		m.phase = phaseReport
		m.input.Blur()
		m.status = "done · ↑/↓ scroll · esc to quit"
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help) && m.input.Value() == "":
			m.showHelp = !m.showHelp
			return m, nil
		case key.Matches(msg, m.keys.Enter):
			return m.submit()
		}
		if m.phase == phaseReport {
			var cmd tea.Cmd
			m.report, cmd = m.report.Update(msg)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	token := strings.TrimSpace(m.input.Value())
	m.input.SetValue("")

	switch m.phase {
	case phaseGoal:
		out := m.session.Goal(token)
		m.goal = out.Goal
		m.log = append(m.log, fmt.Sprintf("Goal: %s steps", numfmt.Count(m.goal)))
		m.phase = phaseDays
		m.input.Placeholder = fmt.Sprintf("%d", m.defaultDays)
		m.status = ""

	case phaseDays:
		out := m.session.Days(token)
		m.days = out.Days
		m.samples = nil
		m.log = append(m.log, fmt.Sprintf("Tracking %d days", m.days))
		m.phase = phaseSamples
		m.input.Placeholder = "steps"
		m.status = ""

	case phaseSamples:
		out, err := m.session.Sample(context.Background(), token, m.goal)
		switch {
		case errors.Is(err, apperrors.ErrNotANumber):
			m.status = "Please enter a valid number."
			return m, nil
		case errors.Is(err, apperrors.ErrNegativeSample):
			m.status = "Please enter a positive number."
			return m, nil
		case err != nil:
			m.status = err.Error()
			return m, nil
		}
		m.samples = append(m.samples, out.Value)
		m.log = append(m.log, fmt.Sprintf("Day %d: %s", len(m.samples), strings.TrimSpace(out.Feedback)))
		m.status = ""
		if len(m.samples) == m.days {
			m.input.Blur()
			return m, m.finishCmd()
		}
	}
	return m, nil
}

func (m Model) finishCmd() tea.Cmd {
	session := m.session
	input := sessiondto.FinishInput{
		SessionID: m.begin.SessionID,
		Goal:      m.goal,
		Days:      m.days,
		Samples:   append([]float64(nil), m.samples...),
		StartedAt: m.begin.StartedAt,
	}
	return func() tea.Msg {
		out, err := session.Finish(context.Background(), input)
		return finishedMsg{out: out, err: err}
	}
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	if m.showHelp {
		return theme.App.Render(m.help.FullHelpView(m.keys.FullHelp()))
	}

	var b strings.Builder
	b.WriteString(theme.Title.Render("WEEKLY STEP COUNTER"))
	b.WriteString("\n\n")
	for _, line := range m.log {
		b.WriteString(theme.Muted.Render(line))
		b.WriteString("\n")
	}
	if len(m.log) > 0 {
		b.WriteString("\n")
	}

	if m.phase == phaseReport {
		b.WriteString(theme.Pane.Render(m.report.View()))
	} else {
		b.WriteString(m.promptLabel())
		b.WriteString("\n")
		b.WriteString(theme.PaneActive.Render(m.input.View()))
	}
	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(theme.Hot.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(m.help.ShortHelpView(m.keys.ShortHelp()))

	content := b.String()
	if m.width > 0 {
		content = lipgloss.NewStyle().MaxWidth(m.width).Render(content)
	}
	return theme.App.Render(content)
}

func (m Model) promptLabel() string {
	switch m.phase {
	case phaseGoal:
		return fmt.Sprintf("Daily step goal (default %s)", numfmt.Count(m.defaultGoal))
	case phaseDays:
		return fmt.Sprintf("Days to track (default %d)", m.defaultDays)
	case phaseSamples:
		return fmt.Sprintf("Day %d of %d - steps", len(m.samples)+1, m.days)
	}
	return ""
}

// ─── helpers ─────────────────────────────────────────────────────────────────

func (m Model) reportWidth() int {
	if m.width <= 0 {
		return 80
	}
	return max(m.width-8, 20)
}

// reportHeight leaves room for the header, the pane border and the help line.
func (m Model) reportHeight() int {
	if m.height <= 0 {
		return 40
	}
	return max(m.height-12, 5)
}
