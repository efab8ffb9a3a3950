package cli

import (
	"fmt"

	"github.com/julianstephens/weeklift/internal/constants"
	"github.com/julianstephens/weeklift/internal/form"
)

// CheckCmd runs a draft through the form controller against the loaded plan.
// The plan lives in memory only, so nothing is saved.
type CheckCmd struct {
	Day      string `help:"Day to add the exercise to. Defaults to default_day." short:"d"`
	Edit     string `help:"ID of an existing exercise on that day to check as an edit."`
	Name     string `help:"Exercise name."`
	Type     string `help:"Exercise type (weights, bodyweight, time-based). Defaults to default_type."`
	Sets     string `help:"Number of sets."`
	Reps     string `help:"Reps per set."`
	Duration string `help:"Seconds per set for time-based exercises."`
	Rest     string `help:"Rest between sets in seconds."`
	Target   string `help:"Target weight in kg (0 means body weight)."`
	Category string `help:"Exercise category. Defaults to default_category."`
}

func (c *CheckCmd) Run(ctx *Context) error {
	day, err := ctx.resolveDay(c.Day)
	if err != nil {
		return err
	}
	if err := ctx.Selection.SelectDay(day); err != nil {
		return err
	}

	if c.Edit != "" {
		e, found := findOnDay(ctx, day, c.Edit)
		if !found {
			return fmt.Errorf("exercise %s not found on %s", c.Edit, day.Name())
		}
		ctx.Selection.BeginEdit(e)
	} else {
		ctx.Selection.OpenCreate()
	}

	fc := ctx.Selection.Form()
	d := fc.Draft()
	c.apply(&d)
	fc.SetDraft(d)

	e, err := ctx.Selection.Submit()
	if err != nil {
		return fmt.Errorf("%s", fc.Message())
	}

	w := ctx.out()
	if msg := fc.Message(); msg != "" {
		fmt.Fprintf(w, "⚠ %s (committed because strict_required_fields is off)\n", msg)
	} else {
		fmt.Fprintln(w, "✓ Exercise is valid")
	}

	return printJSON(ctx, e)
}

// apply overlays the flags onto d. Unset flags keep the draft's value so an
// edit check only needs the fields being changed.
func (c *CheckCmd) apply(d *form.Draft) {
	if c.Name != "" {
		d.Name = c.Name
	}
	if c.Type != "" {
		if t, err := constants.ParseExerciseType(c.Type); err == nil {
			d.Type = t
		} else {
			d.Type = constants.ExerciseType(c.Type)
		}
	}
	if c.Category != "" {
		if cat, err := constants.ParseCategory(c.Category); err == nil {
			d.Category = cat
		} else {
			d.Category = constants.Category(c.Category)
		}
	}
	if c.Sets != "" {
		d.Sets = c.Sets
	}
	if c.Reps != "" {
		d.Reps = c.Reps
	}
	if c.Duration != "" {
		d.Duration = c.Duration
	}
	if c.Rest != "" {
		d.Rest = c.Rest
	}
	if c.Target != "" {
		d.TargetWeight = c.Target
	}
}
