package cli

import (
	"fmt"

	"github.com/julianstephens/weeklift/internal/validation"
)

type ValidateCmd struct {
	Day string `help:"Only validate this day." short:"d"`
}

func (cmd *ValidateCmd) Run(ctx *Context) error {
	validator := validation.New()
	plan := ctx.Store.GetPlan()
	w := ctx.out()

	var result validation.ValidationResult
	if cmd.Day == "" {
		fmt.Fprintln(w, "Validating weekly plan...")
		result = validator.ValidatePlan(plan)
	} else {
		day, err := ctx.resolveDay(cmd.Day)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "Validating %s...\n", day.Name())
		dp, _ := plan.Day(day)
		result = validator.ValidateDay(dp)
	}

	// Conflicts are reported, not treated as a failure
	fmt.Fprintln(w)
	fmt.Fprintln(w, result.FormatReport())
	return nil
}
