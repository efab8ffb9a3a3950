package cli

import (
	"encoding/json"
	"fmt"

	"github.com/julianstephens/weeklift/internal/config"
	"github.com/julianstephens/weeklift/internal/constants"
	"github.com/julianstephens/weeklift/internal/models"
	"github.com/julianstephens/weeklift/internal/projection"
)

type DebugCmd struct {
	ConfigPath   *DebugConfigPathCmd   `cmd:"" help:"Show config and seed paths."`
	DumpPlan     *DebugDumpPlanCmd     `cmd:"" help:"Dump plan data as JSON."`
	DumpExercise *DebugDumpExerciseCmd `cmd:"" help:"Dump exercise data as JSON."`
}

type DebugConfigPathCmd struct{}

func (cmd *DebugConfigPathCmd) Run(ctx *Context) error {
	path := ctx.Config.Path
	if path == "" {
		path = config.DefaultPath()
	}

	// Output in machine-readable format
	output := map[string]string{
		"config": path,
		"dir":    ctx.Config.Dir,
		"seed":   ctx.SeedPath,
	}
	return printJSON(ctx, output)
}

type DebugDumpPlanCmd struct {
	Day string `arg:"" optional:"" help:"Only dump this day (Mon..Sun or 'today')."`
}

func (cmd *DebugDumpPlanCmd) Run(ctx *Context) error {
	plan := ctx.Store.GetPlan()
	if cmd.Day == "" {
		return printJSON(ctx, plan)
	}

	day, err := ctx.resolveDay(cmd.Day)
	if err != nil {
		return err
	}
	return printJSON(ctx, models.DayPlan{Day: day, Exercises: projection.ExercisesForDay(plan, day)})
}

type DebugDumpExerciseCmd struct {
	ID string `arg:"" help:"ID of the exercise to dump."`
}

func (cmd *DebugDumpExerciseCmd) Run(ctx *Context) error {
	e, day, ok := ctx.Store.GetPlan().FindExercise(cmd.ID)
	if !ok {
		return fmt.Errorf("exercise not found: %s", cmd.ID)
	}
	return printJSON(ctx, struct {
		Day      constants.Day   `json:"day"`
		Exercise models.Exercise `json:"exercise"`
	}{day, e})
}

func printJSON(ctx *Context, v any) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Fprintln(ctx.out(), string(jsonBytes))
	return nil
}

func findOnDay(ctx *Context, day constants.Day, id string) (models.Exercise, bool) {
	for _, e := range projection.ExercisesForDay(ctx.Store.GetPlan(), day) {
		if e.ID == id {
			return e, true
		}
	}
	return models.Exercise{}, false
}
