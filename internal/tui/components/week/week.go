package week

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/julianstephens/weeklift/internal/constants"
	"github.com/julianstephens/weeklift/internal/models"
	"github.com/julianstephens/weeklift/internal/projection"
	"github.com/julianstephens/weeklift/internal/utils"
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Padding(0, 1)

	selectedStyle = cellStyle.
			Background(lipgloss.Color("236")).
			Bold(true)

	restDayStyle = cellStyle.
			Foreground(lipgloss.Color("240")).
			Italic(true)
)

// Model renders the per-day overview of the whole week
type Model struct {
	rows   []projection.DaySummary
	day    constants.Day
	width  int
	height int
}

func New() Model {
	return Model{}
}

func (m *Model) SetPlan(plan models.WeeklyPlan, current constants.Day) {
	m.rows = projection.WeekOverview(plan)
	m.day = current
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m Model) View() string {
	rows := make([][]string, len(m.rows))
	for i, r := range m.rows {
		timed := "-"
		if r.Seconds > 0 {
			timed = utils.FormatSeconds(r.Seconds)
		}
		rows[i] = []string{r.Day.Name(), strconv.Itoa(r.Exercises), strconv.Itoa(r.Sets), timed}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers("Day", "Exercises", "Sets", "Timed work").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if row < 0 || row >= len(m.rows) {
				return cellStyle
			}
			switch {
			case m.rows[row].Day == m.day:
				return selectedStyle
			case m.rows[row].Exercises == 0:
				return restDayStyle
			}
			return cellStyle
		})

	total := 0
	for _, r := range m.rows {
		total += r.Exercises
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		t.Render(),
		fmt.Sprintf("%d exercises this week", total),
	)
}
