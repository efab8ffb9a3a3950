package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/weeklift/internal/logger"
	"github.com/julianstephens/weeklift/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *Context) error {
	logger.Info("Starting TUI", "day", ctx.Selection.CurrentDay(), "exercises", ctx.Store.GetPlan().ExerciseCount())

	p := tea.NewProgram(tui.NewModel(ctx.Store, ctx.Selection), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui exited with error: %w", err)
	}
	return nil
}
