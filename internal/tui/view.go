package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/weeklift/internal/constants"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string

	switch m.state {
	case constants.StateExercises:
		content = m.viewExercises()
	case constants.StateWorkout:
		content = m.viewWorkout()
	case constants.StateWeek:
		content = m.viewWeek()
	case constants.StateForm:
		content = m.viewForm()
	case constants.StateConfirmDelete:
		content = m.viewConfirmDelete()
	}

	ui := lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		m.viewDays(),
		m.viewStatus(),
		content,
		m.help.View(m),
	)
	return ui
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range []string{"Exercises", "Workout", "Week"} {
		if m.state == constants.SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewDays() string {
	var days []string
	current := m.sel.CurrentDay()
	for _, d := range constants.WeekDays {
		if d == current {
			days = append(days, activeDayStyle.Render(string(d)))
		} else {
			days = append(days, dayStyle.Render(string(d)))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, days...)
}

// viewStatus shows a tolerated validation message first, then the last action
func (m Model) viewStatus() string {
	if m.state == constants.StateForm {
		return ""
	}
	if msg := m.sel.Form().Message(); msg != "" {
		return warningStyle.Render("⚠ " + msg)
	}
	return m.status
}

func (m Model) viewExercises() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(m.sel.CurrentDay().Name()),
		docStyle.Render(m.exerciseList.View()),
	)
}

func (m Model) viewWorkout() string {
	title := "Start Workout"
	if s := m.workoutModel.Session(); s != nil {
		title = fmt.Sprintf("%s workout", s.Day().Name())
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(title),
		docStyle.Render(m.workoutModel.View()),
	)
}

func (m Model) viewWeek() string {
	if len(m.conflicts) == 0 {
		return docStyle.Render(m.weekModel.View())
	}
	banner := bannerStyle.Render(fmt.Sprintf("⚠ %d PLAN WARNING(S)", len(m.conflicts)))
	lines := []string{banner}
	for _, c := range m.conflicts {
		lines = append(lines, warningStyle.Render("- "+c.Description))
	}
	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		m.weekModel.View(),
		"",
		lipgloss.JoinVertical(lipgloss.Left, lines...),
	))
}

func (m Model) viewForm() string {
	if m.form == nil {
		return ""
	}
	var errLine string
	if m.FormError != "" {
		errLine = dangerStyle.Render(m.FormError)
	}
	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, errLine, m.form.View()))
}

func (m Model) viewConfirmDelete() string {
	name := m.deleteID
	if e, _, ok := m.feed.plan.FindExercise(m.deleteID); ok {
		name = e.Name
	}
	return lipgloss.Place(m.width, m.height-headerHeight,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render(fmt.Sprintf("Delete %s from %s?", name, m.sel.CurrentDay().Name())),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}
