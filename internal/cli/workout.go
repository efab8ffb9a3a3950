package cli

import (
	"fmt"

	"github.com/julianstephens/weeklift/internal/projection"
)

type WorkoutCmd struct {
	Day string `help:"Day of the workout (Mon..Sun, full name or 'today'). Defaults to default_day." short:"d"`
}

func (c *WorkoutCmd) Run(ctx *Context) error {
	day, err := ctx.resolveDay(c.Day)
	if err != nil {
		return err
	}
	w := ctx.out()

	instances := projection.WorkoutInstances(ctx.Store.GetPlan(), day)
	fmt.Fprintf(w, "Workout for %s:\n", day.Name())
	if len(instances) == 0 {
		fmt.Fprintln(w, "\n  Rest day")
		return nil
	}

	current := ""
	for _, in := range instances {
		if in.Exercise.ID != current {
			fmt.Fprintf(w, "\n  %s\n", in.Exercise.Name)
			current = in.Exercise.ID
		}
		fmt.Fprintf(w, "    %s\n", projection.SetLine(in))
	}
	return nil
}
