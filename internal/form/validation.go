package form

import (
	"math"
	"strconv"
	"strings"

	"github.com/julianstephens/weeklift/internal/constants"
	"github.com/julianstephens/weeklift/internal/models"
)

// Check evaluates every rule against d and returns the failures in precedence order:
// required fields, then the type-specific fields, then choices, then number formats.
// At most one failure is produced per rule group.
func Check(d Draft) []*ValidationError {
	var failures []*ValidationError

	switch {
	case blank(d.Name):
		failures = append(failures, missingRequired("name"))
	case blank(d.Sets):
		failures = append(failures, missingRequired("sets"))
	case blank(d.Rest):
		failures = append(failures, missingRequired("rest"))
	}

	switch d.Type {
	case constants.TypeWeights:
		if blank(d.Reps) {
			failures = append(failures, missingWeighted("reps"))
		} else if blank(d.TargetWeight) {
			failures = append(failures, missingWeighted("target weight"))
		}
	case constants.TypeTimeBased:
		if blank(d.Duration) {
			failures = append(failures, missingDuration())
		}
	case constants.TypeBodyweight:
		if blank(d.Reps) {
			failures = append(failures, missingReps())
		}
	default:
		failures = append(failures, invalidChoice("type", string(d.Type)))
	}

	if !d.Category.Valid() {
		failures = append(failures, invalidChoice("category", string(d.Category)))
	}

	if f := checkNumbers(d); f != nil {
		failures = append(failures, f)
	}

	return failures
}

func checkNumbers(d Draft) *ValidationError {
	if !blank(d.Sets) {
		n, err := parseInt(d.Sets)
		if err != nil || n < 1 || n > constants.MaxSetsPerExercise {
			return invalidNumber("sets", "a whole number between 1 and "+strconv.Itoa(constants.MaxSetsPerExercise))
		}
	}
	if usesReps(d.Type) && !blank(d.Reps) {
		if n, err := parseInt(d.Reps); err != nil || n < 1 {
			return invalidNumber("reps", "a positive whole number")
		}
	}
	if d.Type == constants.TypeTimeBased && !blank(d.Duration) {
		if n, err := parseInt(d.Duration); err != nil || n < 1 {
			return invalidNumber("duration", "a positive number of seconds")
		}
	}
	if !blank(d.Rest) {
		if n, err := parseInt(d.Rest); err != nil || n < 1 {
			return invalidNumber("rest", "a positive number of seconds")
		}
	}
	if d.Type == constants.TypeWeights && !blank(d.TargetWeight) {
		if w, err := ParseWeight(d.TargetWeight); err != nil || w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return invalidNumber("target weight", "a non-negative number (0 for body weight)")
		}
	}
	return nil
}

// Build converts a checked draft into an exercise with the given id.
// Fields that do not apply to the draft's type are dropped. Blank numeric
// fields become zero, which only happens when a missing required field was tolerated.
func Build(d Draft, id string) models.Exercise {
	e := models.Exercise{
		ID:       id,
		Name:     strings.TrimSpace(d.Name),
		Type:     d.Type,
		Category: d.Category,
	}
	e.Sets, _ = parseInt(d.Sets)
	e.RestSeconds, _ = parseInt(d.Rest)

	if usesReps(d.Type) {
		if n, err := parseInt(d.Reps); err == nil {
			e.Reps = models.IntPtr(n)
		}
	}
	if d.Type == constants.TypeTimeBased {
		if n, err := parseInt(d.Duration); err == nil {
			e.DurationSeconds = models.IntPtr(n)
		}
	}
	if d.Type == constants.TypeWeights {
		if w, err := ParseWeight(d.TargetWeight); err == nil {
			e.TargetWeight = models.FloatPtr(w)
		}
	}
	return e
}

// ParseWeight parses a weight in kg, accepting a comma as the decimal separator
func ParseWeight(s string) (float64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	return strconv.ParseFloat(s, 64)
}

func parseInt(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}

func usesReps(t constants.ExerciseType) bool {
	return t == constants.TypeWeights || t == constants.TypeBodyweight
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
