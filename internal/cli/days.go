package cli

import (
	"fmt"

	"github.com/julianstephens/weeklift/internal/constants"
)

type DaysCmd struct{}

func (c *DaysCmd) Run(ctx *Context) error {
	w := ctx.out()

	fmt.Fprintln(w, "Days:")
	for _, d := range constants.WeekDays {
		marker := " "
		if d == ctx.Selection.CurrentDay() {
			marker = "*"
		}
		fmt.Fprintf(w, "  %s %s  %s\n", marker, d, d.Name())
	}

	fmt.Fprintln(w, "\nTypes:")
	for _, t := range constants.ExerciseTypes {
		fmt.Fprintf(w, "  %-11s %s\n", t, t.Label())
	}

	fmt.Fprintln(w, "\nCategories:")
	for _, cat := range constants.Categories {
		fmt.Fprintf(w, "  %-11s %s\n", cat, cat.Label())
	}
	return nil
}
