package main

import (
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/weeklift/internal/cli"
	"github.com/julianstephens/weeklift/internal/config"
	"github.com/julianstephens/weeklift/internal/constants"
	"github.com/julianstephens/weeklift/internal/errors"
	"github.com/julianstephens/weeklift/internal/logger"
	"github.com/julianstephens/weeklift/internal/models"
	"github.com/julianstephens/weeklift/internal/seed"
)

var CLI struct {
	Version  kong.VersionFlag
	Config   string `help:"Config file path." type:"path" default:"~/.config/weeklift/config.yaml"`
	Seed     string `help:"Read-only JSON plan to start from. Overrides seed_path." type:"path"`
	Empty    bool   `help:"Start from an empty week instead of the sample plan."`
	Strict   bool   `help:"Block commits that miss name, sets or rest."`
	LogDebug bool   `name:"debug" help:"Enable debug logging."`

	Tui      cli.TuiCmd      `cmd:"" help:"Launch the interactive planner." default:"1"`
	Days     cli.DaysCmd     `cmd:"" help:"List days, exercise types and categories."`
	Show     cli.ShowCmd     `cmd:"" help:"List the exercises planned for a day."`
	Workout  cli.WorkoutCmd  `cmd:"" help:"List a day's workout set by set."`
	Week     cli.WeekCmd     `cmd:"" help:"Show the week overview."`
	Check    cli.CheckCmd    `cmd:"" help:"Run an exercise through the form rules without saving."`
	Validate cli.ValidateCmd `cmd:"" help:"Check the plan for conflicts."`
	Doctor   cli.DoctorCmd   `cmd:"" help:"Run health checks and diagnostics."`
	Debug    cli.DebugCmd    `cmd:"" help:"Debug commands for troubleshooting."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Weekly workout planner"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	cfg, err := config.Load(CLI.Config)
	if err != nil {
		errors.Fatal(err)
	}
	if CLI.Strict {
		cfg.StrictRequiredFields = true
	}
	if CLI.LogDebug {
		cfg.Debug = true
	}
	if CLI.Seed != "" {
		cfg.SeedPath = CLI.Seed
	}

	// The TUI owns the terminal, so only plain commands mirror logs to stderr
	interactive := strings.HasPrefix(ctx.Command(), "tui")
	if err := logger.Init(logger.Config{
		Debug:     cfg.Debug,
		ConfigDir: cfg.Dir,
		Stderr:    !interactive,
	}); err != nil {
		errors.Fatal(err)
	}

	plan, err := loadPlan(cfg)
	if err != nil {
		errors.Fatal(err)
	}

	appCtx, err := cli.NewContext(cfg, plan)
	if err != nil {
		errors.Fatal(err)
	}
	appCtx.SeedPath = cfg.SeedPath

	errors.Fatal(ctx.Run(appCtx))
}

func loadPlan(cfg config.Config) (models.WeeklyPlan, error) {
	switch {
	case CLI.Empty:
		return models.NewWeeklyPlan(), nil
	case cfg.SeedPath != "":
		return seed.Load(cfg.SeedPath)
	default:
		return seed.Sample(), nil
	}
}
