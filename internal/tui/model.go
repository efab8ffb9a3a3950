package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/weeklift/internal/constants"
	"github.com/julianstephens/weeklift/internal/form"
	"github.com/julianstephens/weeklift/internal/models"
	"github.com/julianstephens/weeklift/internal/projection"
	"github.com/julianstephens/weeklift/internal/selection"
	"github.com/julianstephens/weeklift/internal/storage"
	"github.com/julianstephens/weeklift/internal/tui/components/exerciselist"
	"github.com/julianstephens/weeklift/internal/tui/components/week"
	"github.com/julianstephens/weeklift/internal/tui/components/workout"
	"github.com/julianstephens/weeklift/internal/validation"
)

// planFeed receives snapshots pushed by the store. Copies of the Model share it.
type planFeed struct {
	plan    models.WeeklyPlan
	changed bool
}

type Model struct {
	store       storage.Provider
	sel         *selection.Controller
	feed        *planFeed
	unsubscribe func()

	state         constants.SessionState
	previousState constants.SessionState
	keys          KeyMap
	help          help.Model

	exerciseList exerciselist.Model
	workoutModel workout.Model
	weekModel    week.Model

	conflicts []validation.Conflict

	form     *huh.Form
	draft    *form.Draft
	deleteID string

	// FormError is shown above the form while a commit is blocked
	FormError string
	status    string

	quitting bool
	width    int
	height   int
}

func NewModel(store storage.Provider, sel *selection.Controller) Model {
	feed := &planFeed{plan: store.GetPlan()}
	unsubscribe := store.Subscribe(func(p models.WeeklyPlan) {
		feed.plan = p
		feed.changed = true
	})

	m := Model{
		store:        store,
		sel:          sel,
		feed:         feed,
		unsubscribe:  unsubscribe,
		state:        constants.StateExercises,
		keys:         DefaultKeyMap(),
		help:         help.New(),
		exerciseList: exerciselist.New(nil, 0, 0),
		workoutModel: workout.New(0, 0),
		weekModel:    week.New(),
	}
	m.refresh()
	return m
}

// refresh re-reads the latest snapshot into every view
func (m *Model) refresh() {
	day := m.sel.CurrentDay()
	m.exerciseList.SetExercises(day, projection.ExercisesForDay(m.feed.plan, day))
	m.weekModel.SetPlan(m.feed.plan, day)
	m.conflicts = validation.New().ValidatePlan(m.feed.plan).Conflicts
	m.feed.changed = false
}

func (m Model) CurrentDay() constants.Day {
	return m.sel.CurrentDay()
}

func (m Model) State() constants.SessionState {
	return m.state
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.PrevDay, m.keys.NextDay, m.keys.Quit, m.keys.Help}
	wk := m.workoutModel.Keys()
	switch m.state {
	case constants.StateExercises:
		keys = append(keys, m.keys.Add, m.keys.Edit, m.keys.Delete, m.keys.Start)
	case constants.StateWorkout:
		keys = append(keys, m.keys.Start, wk.Complete, wk.Miss)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.PrevDay, m.keys.NextDay, m.keys.Quit, m.keys.Help}
	navigation := []key.Binding{m.keys.Up, m.keys.Down, m.keys.Enter}

	var actions []key.Binding
	switch m.state {
	case constants.StateExercises:
		actions = []key.Binding{m.keys.Add, m.keys.Edit, m.keys.Delete, m.keys.Start}
	case constants.StateWorkout:
		wk := m.workoutModel.Keys()
		actions = []key.Binding{m.keys.Start, wk.Complete, wk.Miss, wk.Reset, wk.Skip}
	}

	return [][]key.Binding{global, navigation, actions}
}

func (m Model) Init() tea.Cmd {
	return nil
}
