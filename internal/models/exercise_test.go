package models

import (
	"strings"
	"testing"

	"github.com/julianstephens/weeklift/internal/constants"
)

func validWeighted() Exercise {
	return Exercise{
		ID:           "e1",
		Name:         "Squat",
		Type:         constants.TypeWeights,
		Sets:         3,
		Reps:         IntPtr(10),
		RestSeconds:  60,
		TargetWeight: FloatPtr(40),
		Category:     constants.CategoryLegs,
	}
}

func TestExerciseValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(e *Exercise)
		wantErr string
	}{
		{"valid weighted", func(e *Exercise) {}, ""},
		{"body weight target", func(e *Exercise) { e.TargetWeight = FloatPtr(0) }, ""},
		{"valid bodyweight", func(e *Exercise) {
			e.Type = constants.TypeBodyweight
			e.TargetWeight = nil
		}, ""},
		{"valid time-based", func(e *Exercise) {
			e.Type = constants.TypeTimeBased
			e.Reps = nil
			e.TargetWeight = nil
			e.DurationSeconds = IntPtr(45)
		}, ""},
		{"empty id", func(e *Exercise) { e.ID = " " }, "id cannot be empty"},
		{"empty name", func(e *Exercise) { e.Name = "" }, "name cannot be empty"},
		{"bad type", func(e *Exercise) { e.Type = "yoga" }, "invalid exercise type"},
		{"bad category", func(e *Exercise) { e.Category = "neck" }, "invalid category"},
		{"zero sets", func(e *Exercise) { e.Sets = 0 }, "sets must be between 1 and"},
		{"max sets", func(e *Exercise) { e.Sets = constants.MaxSetsPerExercise }, ""},
		{"too many sets", func(e *Exercise) { e.Sets = constants.MaxSetsPerExercise + 1 }, "sets must be between 1 and"},
		{"zero rest", func(e *Exercise) { e.RestSeconds = 0 }, "rest must be"},
		{"missing reps", func(e *Exercise) { e.Reps = nil }, "positive number of reps"},
		{"missing target", func(e *Exercise) { e.TargetWeight = nil }, "needs a target weight"},
		{"negative target", func(e *Exercise) { e.TargetWeight = FloatPtr(-1) }, "cannot be negative"},
		{"duration on weighted", func(e *Exercise) { e.DurationSeconds = IntPtr(30) }, "cannot have a duration"},
		{"timed without duration", func(e *Exercise) {
			e.Type = constants.TypeTimeBased
			e.Reps = nil
			e.TargetWeight = nil
		}, "positive duration"},
		{"timed with reps", func(e *Exercise) {
			e.Type = constants.TypeTimeBased
			e.TargetWeight = nil
			e.DurationSeconds = IntPtr(45)
		}, "cannot have reps"},
		{"target on bodyweight", func(e *Exercise) { e.Type = constants.TypeBodyweight }, "only weights exercises"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := validWeighted()
			tt.mutate(&e)
			err := e.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want %q", err, tt.wantErr)
			}
		})
	}
}

func TestExerciseClone(t *testing.T) {
	e := validWeighted()
	c := e.Clone()

	*c.Reps = 1
	*c.TargetWeight = 99
	if *e.Reps != 10 || *e.TargetWeight != 40 {
		t.Error("clone shares optional fields with the original")
	}
}

func TestWeeklyPlan(t *testing.T) {
	plan := NewWeeklyPlan()
	if len(plan.Days) != 7 {
		t.Fatalf("expected 7 days, got %d", len(plan.Days))
	}
	plan.Days[2].Exercises = append(plan.Days[2].Exercises, validWeighted())

	if _, ok := plan.Day(constants.Day("Funday")); ok {
		t.Error("unknown day should not be found")
	}
	e, d, ok := plan.FindExercise("e1")
	if !ok || d != constants.DayWed || e.Name != "Squat" {
		t.Errorf("FindExercise = %+v, %s, %v", e, d, ok)
	}
	if plan.ExerciseCount() != 1 {
		t.Errorf("ExerciseCount() = %d", plan.ExerciseCount())
	}
	bw := validWeighted()
	bw.TargetWeight = FloatPtr(0)
	if !bw.IsBodyWeightTarget() || validWeighted().IsBodyWeightTarget() {
		t.Error("only a zero target is the body-weight marker")
	}
}
