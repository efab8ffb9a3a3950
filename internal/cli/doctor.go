package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/julianstephens/weeklift/internal/seed"
	"github.com/julianstephens/weeklift/internal/utils"
	"github.com/julianstephens/weeklift/internal/validation"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *Context) error {
	w := ctx.out()
	fmt.Fprintln(w, "Running diagnostics...")
	fmt.Fprintln(w)

	hasError := false

	// Check 1: Config file
	if ctx.Config.Path == "" {
		fmt.Fprintf(w, "⚠ Config file: WARNING\n")
		fmt.Fprintf(w, "   No config file in %s, using defaults\n", ctx.Config.Dir)
	} else {
		fmt.Fprintf(w, "✓ Config file: OK (%s)\n", ctx.Config.Path)
	}

	// Check 2: Log directory writable
	if err := checkLogDirWritable(ctx.Config.Dir); err != nil {
		fmt.Fprintf(w, "❌ Log directory: FAIL\n")
		fmt.Fprintf(w, "   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Fprintf(w, "✓ Log directory: OK\n")
	}

	// Check 3: Seed file parses
	if ctx.SeedPath == "" {
		fmt.Fprintf(w, "⊘ Seed file: SKIPPED (no seed configured)\n")
	} else if _, err := seed.Load(ctx.SeedPath); err != nil {
		fmt.Fprintf(w, "❌ Seed file: FAIL\n")
		fmt.Fprintf(w, "   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Fprintf(w, "✓ Seed file: OK\n")
	}

	// Check 4: Plan validation (warning only)
	result := validation.New().ValidatePlan(ctx.Store.GetPlan())
	if result.HasConflicts() {
		fmt.Fprintf(w, "⚠ Plan validation: WARNING\n")
		fmt.Fprintf(w, "   %d conflict(s), run 'weeklift validate' for details\n", len(result.Conflicts))
	} else {
		fmt.Fprintf(w, "✓ Plan validation: OK\n")
	}

	// Check 5: Timezone resolves
	if err := checkTimezone(ctx.Config.Timezone); err != nil {
		fmt.Fprintf(w, "❌ Clock/timezone: FAIL\n")
		fmt.Fprintf(w, "   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Fprintf(w, "✓ Clock/timezone: OK\n")
	}

	fmt.Fprintln(w)
	if hasError {
		fmt.Fprintln(w, "Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Fprintln(w, "All diagnostics passed!")
	return nil
}

func checkLogDirWritable(configDir string) error {
	logDir := filepath.Join(configDir, "logs")
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", logDir, err)
	}
	f, err := os.CreateTemp(logDir, ".doctor-*")
	if err != nil {
		return fmt.Errorf("%s is not writable: %w", logDir, err)
	}
	name := f.Name()
	f.Close()
	return os.Remove(name)
}

func checkTimezone(timezone string) error {
	loc, err := utils.LoadLocation(timezone)
	if err != nil {
		return fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}

	// Check if time is in a reasonable range (after 2020 and before 2100)
	now := time.Now().In(loc)
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	return nil
}
