package exerciselist

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/weeklift/internal/constants"
	"github.com/julianstephens/weeklift/internal/models"
	"github.com/julianstephens/weeklift/internal/utils"
)

type AddExerciseMsg struct{}

type DeleteExerciseMsg struct {
	ID string
}

type EditExerciseMsg struct {
	Exercise models.Exercise
}

type StartWorkoutMsg struct{}

type Item struct {
	Exercise models.Exercise
}

func (i Item) Title() string { return i.Exercise.Name }

func (i Item) Description() string {
	e := i.Exercise
	parts := []string{
		e.Category.Label(),
		fmt.Sprintf("%d x %s", e.Sets, utils.FormatRepsOrSeconds(e)),
	}
	if e.Type == constants.TypeWeights {
		parts = append(parts, utils.FormatTarget(e.TargetWeight))
	}
	parts = append(parts, "rest "+utils.FormatSeconds(e.RestSeconds))
	return strings.Join(parts, " | ")
}

func (i Item) FilterValue() string { return i.Exercise.Name }

type KeyMap struct {
	Add    key.Binding
	Edit   key.Binding
	Delete key.Binding
	Start  key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e", "enter"),
			key.WithHelp("e", "edit"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Start: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "start workout"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
	day  constants.Day
}

func New(exercises []models.Exercise, width, height int) Model {
	l := list.New(toItems(exercises), list.NewDefaultDelegate(), width, height)
	l.SetShowTitle(false)
	l.SetShowHelp(false) // help is rendered by the root model
	l.SetFilteringEnabled(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Edit, keys.Delete, keys.Start}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Edit, keys.Delete, keys.Start}
	}

	return Model{list: l, keys: keys}
}

func toItems(exercises []models.Exercise) []list.Item {
	items := make([]list.Item, len(exercises))
	for i, e := range exercises {
		items[i] = Item{Exercise: e}
	}
	return items
}

// SetExercises replaces the list content, keeping the cursor in range
func (m *Model) SetExercises(day constants.Day, exercises []models.Exercise) {
	if day != m.day {
		m.list.ResetSelected()
	}
	m.day = day
	m.list.SetItems(toItems(exercises))
	if idx := m.list.Index(); idx >= len(exercises) && len(exercises) > 0 {
		m.list.Select(len(exercises) - 1)
	}
}

// Selected returns the exercise under the cursor
func (m Model) Selected() (models.Exercise, bool) {
	if i, ok := m.list.SelectedItem().(Item); ok {
		return i.Exercise, true
	}
	return models.Exercise{}, false
}

func (m Model) Len() int {
	return len(m.list.Items())
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Add):
			return m, func() tea.Msg { return AddExerciseMsg{} }
		case key.Matches(msg, m.keys.Edit):
			if e, ok := m.Selected(); ok {
				return m, func() tea.Msg { return EditExerciseMsg{Exercise: e} }
			}
			return m, nil
		case key.Matches(msg, m.keys.Delete):
			if e, ok := m.Selected(); ok {
				return m, func() tea.Msg { return DeleteExerciseMsg{ID: e.ID} }
			}
			return m, nil
		case key.Matches(msg, m.keys.Start):
			if m.Len() > 0 {
				return m, func() tea.Msg { return StartWorkoutMsg{} }
			}
			return m, nil
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  No exercises on " + m.day.Name() + " yet.\n  Press 'a' to add one."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
