package models

import (
	"fmt"
	"strings"

	"github.com/julianstephens/weeklift/internal/constants"
)

type Exercise struct {
	ID              string                 `json:"id"`
	Name            string                 `json:"name"`
	Type            constants.ExerciseType `json:"type"`
	Sets            int                    `json:"sets"`
	Reps            *int                   `json:"reps,omitempty"`
	DurationSeconds *int                   `json:"duration_seconds,omitempty"`
	RestSeconds     int                    `json:"rest"`
	TargetWeight    *float64               `json:"target_weight,omitempty"` // 0 means body weight
	Category        constants.Category     `json:"category"`
}

// Validate checks the structural invariants of a committed exercise.
// Form-level rules (which fields a user must fill) live in the form package.
func (e *Exercise) Validate() error {
	if strings.TrimSpace(e.ID) == "" {
		return fmt.Errorf("exercise id cannot be empty")
	}
	if strings.TrimSpace(e.Name) == "" {
		return fmt.Errorf("exercise name cannot be empty")
	}
	if !e.Type.Valid() {
		return fmt.Errorf("invalid exercise type: %q", e.Type)
	}
	if !e.Category.Valid() {
		return fmt.Errorf("invalid category: %q", e.Category)
	}
	if e.Sets < 1 || e.Sets > constants.MaxSetsPerExercise {
		return fmt.Errorf("sets must be between 1 and %d", constants.MaxSetsPerExercise)
	}
	if e.RestSeconds < 1 {
		return fmt.Errorf("rest must be at least 1 second")
	}

	switch e.Type {
	case constants.TypeTimeBased:
		if e.DurationSeconds == nil || *e.DurationSeconds < 1 {
			return fmt.Errorf("time-based exercise %q needs a positive duration", e.Name)
		}
		if e.Reps != nil {
			return fmt.Errorf("time-based exercise %q cannot have reps", e.Name)
		}
	default:
		if e.Reps == nil || *e.Reps < 1 {
			return fmt.Errorf("exercise %q needs a positive number of reps", e.Name)
		}
		if e.DurationSeconds != nil {
			return fmt.Errorf("exercise %q cannot have a duration", e.Name)
		}
	}

	if e.TargetWeight != nil {
		if e.Type != constants.TypeWeights {
			return fmt.Errorf("only weights exercises can have a target weight")
		}
		if *e.TargetWeight < 0 {
			return fmt.Errorf("target weight cannot be negative")
		}
	} else if e.Type == constants.TypeWeights {
		return fmt.Errorf("weights exercise %q needs a target weight", e.Name)
	}

	return nil
}

// Clone returns a deep copy so the optional fields never alias between copies
func (e Exercise) Clone() Exercise {
	c := e
	if e.Reps != nil {
		v := *e.Reps
		c.Reps = &v
	}
	if e.DurationSeconds != nil {
		v := *e.DurationSeconds
		c.DurationSeconds = &v
	}
	if e.TargetWeight != nil {
		v := *e.TargetWeight
		c.TargetWeight = &v
	}
	return c
}

// IsBodyWeightTarget reports whether the target weight is the explicit body-weight marker
func (e Exercise) IsBodyWeightTarget() bool {
	return e.TargetWeight != nil && *e.TargetWeight == 0
}

// IntPtr and FloatPtr build optional field values
func IntPtr(v int) *int { return &v }

func FloatPtr(v float64) *float64 { return &v }
