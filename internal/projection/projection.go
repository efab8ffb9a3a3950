// Package projection derives read-only views of a plan snapshot.
package projection

import (
	"fmt"
	"strings"

	"github.com/julianstephens/weeklift/internal/constants"
	"github.com/julianstephens/weeklift/internal/models"
	"github.com/julianstephens/weeklift/internal/utils"
)

// DaySummary is one row of the week overview
type DaySummary struct {
	Day       constants.Day
	Exercises int
	Sets      int
	Seconds   int // time-based work only
}

// ExercisesForDay returns the day's exercises in stored order. Unknown or
// empty days yield an empty, non-nil slice.
func ExercisesForDay(plan models.WeeklyPlan, day constants.Day) []models.Exercise {
	dp, ok := plan.Day(day)
	if !ok || len(dp.Exercises) == 0 {
		return []models.Exercise{}
	}
	out := make([]models.Exercise, len(dp.Exercises))
	copy(out, dp.Exercises)
	return out
}

// WorkoutInstances expands each exercise of the day into one entry per set
func WorkoutInstances(plan models.WeeklyPlan, day constants.Day) []models.WorkoutInstance {
	exercises := ExercisesForDay(plan, day)
	out := []models.WorkoutInstance{}
	for _, e := range exercises {
		for set := 1; set <= e.Sets; set++ {
			out = append(out, models.WorkoutInstance{Exercise: e, SetIndex: set})
		}
	}
	return out
}

func WeekOverview(plan models.WeeklyPlan) []DaySummary {
	out := make([]DaySummary, 0, len(constants.WeekDays))
	for _, d := range constants.WeekDays {
		s := DaySummary{Day: d}
		for _, e := range ExercisesForDay(plan, d) {
			s.Exercises++
			if e.Sets > 0 {
				s.Sets += e.Sets
			}
			if e.Type == constants.TypeTimeBased && e.DurationSeconds != nil {
				s.Seconds += e.Sets * *e.DurationSeconds
			}
		}
		out = append(out, s)
	}
	return out
}

// SetLine renders one workout set, e.g. "Set 2: 10 reps 40 kg ⏱️ 01:00s"
func SetLine(in models.WorkoutInstance) string {
	e := in.Exercise
	var b strings.Builder
	fmt.Fprintf(&b, "Set %d: ", in.SetIndex)
	b.WriteString(utils.FormatRepsOrSeconds(e))
	if e.Type != constants.TypeTimeBased && e.TargetWeight != nil && *e.TargetWeight > 0 {
		b.WriteString(" " + utils.FormatWeight(*e.TargetWeight) + " kg")
	}
	b.WriteString(" ⏱️ " + utils.FormatSeconds(e.RestSeconds))
	return b.String()
}
