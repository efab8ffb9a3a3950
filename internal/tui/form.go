package tui

import (
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/weeklift/internal/constants"
	"github.com/julianstephens/weeklift/internal/form"
)

// NewExerciseForm binds a huh form to d. Field rules are enforced by the form
// controller on submit, so the inputs carry no validators of their own.
func NewExerciseForm(d *form.Draft, mode form.Mode) *huh.Form {
	typeOptions := make([]huh.Option[constants.ExerciseType], len(constants.ExerciseTypes))
	for i, t := range constants.ExerciseTypes {
		typeOptions[i] = huh.NewOption(t.Label(), t)
	}
	categoryOptions := make([]huh.Option[constants.Category], len(constants.Categories))
	for i, c := range constants.Categories {
		categoryOptions[i] = huh.NewOption(c.Label(), c)
	}

	title := "Add exercise"
	if mode == form.ModeEdit {
		title = "Edit exercise"
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().Title(title),
			huh.NewInput().
				Title("Name").
				Placeholder("Squat").
				Value(&d.Name),
			huh.NewSelect[constants.ExerciseType]().
				Title("Type").
				Options(typeOptions...).
				Value(&d.Type),
			huh.NewSelect[constants.Category]().
				Title("Category").
				Options(categoryOptions...).
				Value(&d.Category),
			huh.NewInput().
				Title("Sets").
				Value(&d.Sets),
			huh.NewInput().
				Title("Rest (seconds)").
				Value(&d.Rest),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Reps").
				Value(&d.Reps),
		).WithHideFunc(func() bool { return d.Type == constants.TypeTimeBased }),
		huh.NewGroup(
			huh.NewInput().
				Title("Duration (seconds)").
				Value(&d.Duration),
		).WithHideFunc(func() bool { return d.Type != constants.TypeTimeBased }),
		huh.NewGroup(
			huh.NewInput().
				Title("Target weight (kg)").
				Description("0 means body weight").
				Value(&d.TargetWeight),
		).WithHideFunc(func() bool { return d.Type != constants.TypeWeights }),
	).WithTheme(huh.ThemeDracula())
}
