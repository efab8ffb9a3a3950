package validation

import (
	"fmt"
	"sort"
	"strings"

	"github.com/julianstephens/weeklift/internal/constants"
	"github.com/julianstephens/weeklift/internal/models"
)

// ConflictType represents the type of plan warning
type ConflictType string

const (
	ConflictDuplicateName   ConflictType = "duplicate_exercise_name"
	ConflictInvalidExercise ConflictType = "invalid_exercise"
	ConflictOvercommitted   ConflictType = "overcommitted_day"
)

// MaxSetsPerDay is the set count above which a day is reported as overcommitted
const MaxSetsPerDay = 40

// Conflict represents one problem found in the plan
type Conflict struct {
	Type        ConflictType
	Description string
	Day         constants.Day
	Items       []string // exercise names involved
	ExerciseIDs []string
}

// ValidationResult contains all detected conflicts
type ValidationResult struct {
	Conflicts []Conflict
}

// HasConflicts returns true if there are any conflicts
func (vr *ValidationResult) HasConflicts() bool {
	return len(vr.Conflicts) > 0
}

// FormatReport returns a human-readable report of all conflicts
func (vr *ValidationResult) FormatReport() string {
	if !vr.HasConflicts() {
		return "No conflicts detected."
	}

	var b strings.Builder
	b.WriteString("Conflicts detected:\n")
	for _, conflict := range vr.Conflicts {
		fmt.Fprintf(&b, "- %s\n", conflict.Description)
	}
	return b.String()
}

// Validator checks a plan snapshot for problems the form controller lets through
type Validator struct {
	maxSets int
}

func New() *Validator {
	return &Validator{maxSets: MaxSetsPerDay}
}

// ValidatePlan checks every day of the plan in weekday order
func (v *Validator) ValidatePlan(plan models.WeeklyPlan) ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}
	for _, d := range constants.WeekDays {
		dp, ok := plan.Day(d)
		if !ok {
			continue
		}
		result.Conflicts = append(result.Conflicts, v.ValidateDay(dp).Conflicts...)
	}
	return result
}

// ValidateDay checks one day for invalid exercises, repeated names and set overload
func (v *Validator) ValidateDay(dp models.DayPlan) ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}

	for _, e := range dp.Exercises {
		if err := e.Validate(); err != nil {
			name := e.Name
			if strings.TrimSpace(name) == "" {
				name = "(unnamed)"
			}
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictInvalidExercise,
				Description: fmt.Sprintf("%s: exercise %q is incomplete: %v", dp.Day.Name(), name, err),
				Day:         dp.Day,
				Items:       []string{name},
				ExerciseIDs: []string{e.ID},
			})
		}
	}

	nameIDs := make(map[string][]string)
	for _, e := range dp.Exercises {
		key := strings.ToLower(strings.TrimSpace(e.Name))
		// Skip empty names to avoid false positives
		if key == "" {
			continue
		}
		nameIDs[key] = append(nameIDs[key], e.ID)
	}
	names := make([]string, 0, len(nameIDs))
	for name := range nameIDs {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		ids := nameIDs[name]
		if len(ids) > 1 {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictDuplicateName,
				Description: fmt.Sprintf("%s: %q appears %d times", dp.Day.Name(), name, len(ids)),
				Day:         dp.Day,
				Items:       []string{name},
				ExerciseIDs: ids,
			})
		}
	}

	sets := 0
	for _, e := range dp.Exercises {
		sets += e.Sets
	}
	if sets > v.maxSets {
		result.Conflicts = append(result.Conflicts, Conflict{
			Type:        ConflictOvercommitted,
			Description: fmt.Sprintf("%s: %d sets planned (more than %d)", dp.Day.Name(), sets, v.maxSets),
			Day:         dp.Day,
		})
	}

	return result
}
