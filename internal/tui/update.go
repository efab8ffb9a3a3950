package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/timer"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/weeklift/internal/constants"
	"github.com/julianstephens/weeklift/internal/form"
	"github.com/julianstephens/weeklift/internal/logger"
	"github.com/julianstephens/weeklift/internal/models"
	"github.com/julianstephens/weeklift/internal/tui/components/exerciselist"
)

// headerHeight covers tabs, day bar, status line and help
const headerHeight = 6

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	// Rest countdown ticks must keep flowing whatever view is active
	switch msg.(type) {
	case timer.TickMsg, timer.StartStopMsg, timer.TimeoutMsg:
		m.workoutModel, cmd = m.workoutModel.Update(msg)
		return m, cmd
	}

	m.syncFeed()

	switch m.state {
	case constants.StateForm:
		cmd = m.updateForm(msg)
		m.syncFeed()
		return m, cmd
	case constants.StateConfirmDelete:
		m.updateConfirmDelete(msg)
		m.syncFeed()
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		h, v := docStyle.GetFrameSize()
		m.exerciseList.SetSize(msg.Width-h, msg.Height-headerHeight-v)
		m.workoutModel.SetSize(msg.Width-h, msg.Height-headerHeight-v)
		m.weekModel.SetSize(msg.Width-h, msg.Height-headerHeight-v)
		return m, nil

	case exerciselist.AddExerciseMsg:
		return m, m.openForm(nil)

	case exerciselist.EditExerciseMsg:
		e := msg.Exercise
		return m, m.openForm(&e)

	case exerciselist.DeleteExerciseMsg:
		m.deleteID = msg.ID
		m.previousState = m.state
		m.state = constants.StateConfirmDelete
		return m, nil

	case exerciselist.StartWorkoutMsg:
		m.startWorkout()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			if m.unsubscribe != nil {
				m.unsubscribe()
			}
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab):
			m.state = (m.state + 1) % constants.NumMainTabs
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = (m.state - 1 + constants.NumMainTabs) % constants.NumMainTabs
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.PrevDay):
			m.sel.PrevDay()
			m.status = ""
			m.refresh()
			return m, nil
		case key.Matches(msg, m.keys.NextDay):
			m.sel.NextDay()
			m.status = ""
			m.refresh()
			return m, nil
		case m.state == constants.StateWorkout && key.Matches(msg, m.keys.Start):
			m.startWorkout()
			return m, nil
		}
	}

	switch m.state {
	case constants.StateExercises:
		m.exerciseList, cmd = m.exerciseList.Update(msg)
		cmds = append(cmds, cmd)
	case constants.StateWorkout:
		m.workoutModel, cmd = m.workoutModel.Update(msg)
		cmds = append(cmds, cmd)
	}

	m.syncFeed()
	return m, tea.Batch(cmds...)
}

// syncFeed refreshes the views when the store pushed a new snapshot
func (m *Model) syncFeed() {
	if m.feed.changed {
		m.refresh()
	}
}

// openForm shows the exercise form, in edit mode when target is set
func (m *Model) openForm(target *models.Exercise) tea.Cmd {
	if target != nil {
		m.sel.BeginEdit(*target)
	} else {
		m.sel.OpenCreate()
	}
	fc := m.sel.Form()
	d := fc.Draft()
	m.draft = &d
	m.form = NewExerciseForm(m.draft, fc.Mode())
	m.FormError = ""
	m.previousState = m.state
	m.state = constants.StateForm
	return m.form.Init()
}

func (m *Model) updateForm(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.closeForm(true)
		return nil
	}

	f, cmd := m.form.Update(msg)
	if hf, ok := f.(*huh.Form); ok {
		m.form = hf
	}

	switch m.form.State {
	case huh.StateCompleted:
		return m.submitForm()
	case huh.StateAborted:
		m.closeForm(true)
		return nil
	}
	return cmd
}

// submitForm hands the draft to the form controller. A blocked commit reopens
// the form with the same values and the validation message.
func (m *Model) submitForm() tea.Cmd {
	fc := m.sel.Form()
	fc.SetDraft(*m.draft)
	mode := fc.Mode()

	e, err := m.sel.Submit()
	if err != nil {
		m.FormError = fc.Message()
		m.form = NewExerciseForm(m.draft, mode)
		return m.form.Init()
	}

	verb := "Added"
	if mode == form.ModeEdit {
		verb = "Updated"
	}
	m.status = fmt.Sprintf("%s %s on %s", verb, e.Name, m.sel.CurrentDay().Name())
	logger.Debug("Exercise saved", "mode", mode, "id", e.ID, "day", m.sel.CurrentDay())
	m.closeForm(false)
	return nil
}

func (m *Model) closeForm(cancel bool) {
	if cancel {
		m.sel.CancelOrFinishEdit()
	}
	m.form = nil
	m.draft = nil
	m.FormError = ""
	m.state = m.previousState
	m.refresh()
}

func (m *Model) updateConfirmDelete(msg tea.Msg) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return
	}
	switch keyMsg.String() {
	case "y", "Y":
		name := m.deleteID
		if e, _, found := m.feed.plan.FindExercise(m.deleteID); found {
			name = e.Name
		}
		if m.sel.RequestDelete(m.deleteID) {
			m.status = fmt.Sprintf("Deleted %s", name)
		}
		m.deleteID = ""
		m.state = m.previousState
	case "n", "N", "esc":
		m.deleteID = ""
		m.state = m.previousState
	}
}

func (m *Model) startWorkout() {
	m.workoutModel.Start(m.feed.plan, m.sel.CurrentDay())
	m.state = constants.StateWorkout
	m.status = ""
}
