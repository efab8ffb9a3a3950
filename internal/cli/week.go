package cli

import (
	"fmt"

	"github.com/julianstephens/weeklift/internal/projection"
	"github.com/julianstephens/weeklift/internal/utils"
)

type WeekCmd struct{}

func (c *WeekCmd) Run(ctx *Context) error {
	w := ctx.out()

	fmt.Fprintln(w, "Week overview:")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %-10s %9s %5s %11s\n", "Day", "Exercises", "Sets", "Timed work")
	for _, row := range projection.WeekOverview(ctx.Store.GetPlan()) {
		timed := "-"
		if row.Seconds > 0 {
			timed = utils.FormatSeconds(row.Seconds)
		}
		fmt.Fprintf(w, "  %-10s %9d %5d %11s\n", row.Day.Name(), row.Exercises, row.Sets, timed)
	}
	return nil
}
