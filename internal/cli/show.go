package cli

import (
	"fmt"

	"github.com/julianstephens/weeklift/internal/constants"
	"github.com/julianstephens/weeklift/internal/projection"
	"github.com/julianstephens/weeklift/internal/utils"
)

type ShowCmd struct {
	Day string `help:"Day to show (Mon..Sun, full name or 'today'). Defaults to default_day." short:"d"`
}

func (c *ShowCmd) Run(ctx *Context) error {
	day, err := ctx.resolveDay(c.Day)
	if err != nil {
		return err
	}
	w := ctx.out()

	exercises := projection.ExercisesForDay(ctx.Store.GetPlan(), day)
	fmt.Fprintf(w, "Exercises for %s:\n\n", day.Name())
	if len(exercises) == 0 {
		fmt.Fprintln(w, "  No exercises planned")
		return nil
	}

	for _, e := range exercises {
		fmt.Fprintf(w, "  %-24s %-10s %d x %-9s rest %s\n",
			e.Name, e.Category.Label(), e.Sets, utils.FormatRepsOrSeconds(e), utils.FormatSeconds(e.RestSeconds))
		if e.Type == constants.TypeWeights {
			fmt.Fprintf(w, "      Target: %s\n", utils.FormatTarget(e.TargetWeight))
		}
	}
	return nil
}
