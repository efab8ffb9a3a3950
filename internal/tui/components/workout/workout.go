package workout

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/timer"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/weeklift/internal/constants"
	"github.com/julianstephens/weeklift/internal/logger"
	"github.com/julianstephens/weeklift/internal/models"
	"github.com/julianstephens/weeklift/internal/projection"
	"github.com/julianstephens/weeklift/internal/session"
	"github.com/julianstephens/weeklift/internal/utils"
)

var (
	exerciseStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true)

	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	doneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Strikethrough(true)

	missedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	pendingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250"))

	restStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true)

	summaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)
)

type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Complete key.Binding
	Miss     key.Binding
	Reset    key.Binding
	Skip     key.Binding
	Start    key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Complete: key.NewBinding(
			key.WithKeys(" ", "c"),
			key.WithHelp("space", "complete set"),
		),
		Miss: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "miss set"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset set"),
		),
		Skip: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "skip rest"),
		),
		Start: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "start workout"),
		),
	}
}

// Model runs one day's workout: a set list with a cursor and a rest countdown
type Model struct {
	viewport viewport.Model
	keys     KeyMap
	session  *session.Session
	cursor   int
	rest     timer.Model
	resting  bool
	restFor  string
	width    int
	height   int
}

func New(width, height int) Model {
	return Model{
		viewport: viewport.New(width, height),
		keys:     DefaultKeyMap(),
	}
}

func (m Model) Keys() KeyMap {
	return m.keys
}

// Start begins a workout for day from the given plan snapshot
func (m *Model) Start(plan models.WeeklyPlan, day constants.Day) {
	m.session = session.Start(day, projection.WorkoutInstances(plan, day))
	m.cursor = 0
	m.resting = false
	m.render()
}

// Session returns the running session, or nil
func (m Model) Session() *session.Session {
	return m.session
}

func (m Model) Resting() bool {
	return m.resting
}

// Remaining returns the seconds left on the rest countdown
func (m Model) Remaining() int {
	if !m.resting {
		return 0
	}
	return int(m.rest.Timeout.Round(time.Second).Seconds())
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case timer.TickMsg, timer.StartStopMsg:
		if !m.resting {
			return m, nil
		}
		var cmd tea.Cmd
		m.rest, cmd = m.rest.Update(msg)
		m.render()
		return m, cmd

	case timer.TimeoutMsg:
		if m.resting && msg.ID == m.rest.ID() {
			m.endRest()
			m.render()
		}
		return m, nil

	case tea.KeyMsg:
		if m.session == nil {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			m.render()
			return m, nil
		case key.Matches(msg, m.keys.Down):
			if m.cursor < m.session.Len()-1 {
				m.cursor++
			}
			m.render()
			return m, nil
		case key.Matches(msg, m.keys.Complete):
			return m, m.complete()
		case key.Matches(msg, m.keys.Miss):
			if err := m.session.Miss(m.cursor); err != nil {
				logger.Debug("Miss ignored", "error", err)
			}
			m.advance()
			m.render()
			return m, nil
		case key.Matches(msg, m.keys.Reset):
			if err := m.session.Reset(m.cursor); err != nil {
				logger.Debug("Reset ignored", "error", err)
			}
			m.render()
			return m, nil
		case key.Matches(msg, m.keys.Skip):
			if m.resting {
				m.endRest()
				m.render()
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m *Model) complete() tea.Cmd {
	if err := m.session.Complete(m.cursor); err != nil {
		logger.Debug("Complete ignored", "error", err)
		return nil
	}
	m.advance()

	rest, ok := m.session.Rest()
	if !ok || m.session.Summary().Done() {
		m.endRest()
		m.render()
		return nil
	}
	m.rest = timer.NewWithInterval(time.Duration(rest.Seconds)*time.Second, time.Second)
	m.resting = true
	m.restFor = rest.Exercise
	m.render()
	return m.rest.Init()
}

// advance moves the cursor to the next pending set
func (m *Model) advance() {
	if i, ok := m.session.NextPending(m.cursor + 1); ok {
		m.cursor = i
	}
}

func (m *Model) endRest() {
	m.resting = false
	m.restFor = ""
	if m.session != nil {
		m.session.EndRest()
	}
}

func (m Model) View() string {
	if m.session == nil {
		return "No workout running. Press 's' to start one."
	}
	if m.session.Len() == 0 {
		return fmt.Sprintf("Nothing planned for %s. Enjoy the rest day.", m.session.Day().Name())
	}
	return m.viewport.View()
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height
	m.render()
}

func (m *Model) render() {
	if m.session == nil {
		m.viewport.SetContent("")
		return
	}

	var b strings.Builder
	if m.resting {
		b.WriteString(restStyle.Render(fmt.Sprintf("Break after %s: %s", m.restFor, utils.FormatSeconds(m.Remaining()))))
		b.WriteString("\n\n")
	}

	current := ""
	for i, set := range m.session.Sets() {
		e := set.Instance.Exercise
		if e.ID != current {
			if current != "" {
				b.WriteString("\n")
			}
			b.WriteString(exerciseStyle.Render(e.Name) + "\n")
			current = e.ID
		}

		line := projection.SetLine(set.Instance)
		switch set.Status {
		case constants.SetDone:
			line = doneStyle.Render("✓ " + line)
		case constants.SetMissed:
			line = missedStyle.Render("✗ " + line)
		default:
			line = pendingStyle.Render("· " + line)
		}

		prefix := "  "
		if i == m.cursor {
			prefix = cursorStyle.Render("> ")
		}
		b.WriteString(prefix + line + "\n")
	}

	sum := m.session.Summary()
	b.WriteString("\n")
	b.WriteString(summaryStyle.Render(fmt.Sprintf(
		"Total: %d | Completed: %d | Missed: %d | Sets left: %d",
		sum.TotalExercises, sum.CompletedExercises, sum.MissedExercises, sum.PendingSets,
	)))
	if sum.Done() {
		b.WriteString("\n" + restStyle.Render("Workout finished 💪"))
	}

	m.viewport.SetContent(b.String())
}
