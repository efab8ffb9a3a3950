package models

import "github.com/julianstephens/weeklift/internal/constants"

type DayPlan struct {
	Day       constants.Day `json:"day"`
	Exercises []Exercise    `json:"exercises"`
}

// WeeklyPlan always holds exactly one DayPlan per weekday, in constants.WeekDays order.
// Snapshots handed out by the store must be treated as read-only.
type WeeklyPlan struct {
	Days []DayPlan `json:"days"`
}

// WorkoutInstance is one set of one exercise in the expanded workout list
type WorkoutInstance struct {
	Exercise Exercise `json:"exercise"`
	SetIndex int      `json:"set_index"` // 1-based
}

// NewWeeklyPlan returns a plan with an empty sequence for every weekday
func NewWeeklyPlan() WeeklyPlan {
	days := make([]DayPlan, len(constants.WeekDays))
	for i, d := range constants.WeekDays {
		days[i] = DayPlan{Day: d, Exercises: []Exercise{}}
	}
	return WeeklyPlan{Days: days}
}

// Day returns the DayPlan for d and whether d is part of the plan
func (p WeeklyPlan) Day(d constants.Day) (DayPlan, bool) {
	for _, dp := range p.Days {
		if dp.Day == d {
			return dp, true
		}
	}
	return DayPlan{}, false
}

// FindExercise locates an exercise anywhere in the plan
func (p WeeklyPlan) FindExercise(id string) (Exercise, constants.Day, bool) {
	for _, dp := range p.Days {
		for _, e := range dp.Exercises {
			if e.ID == id {
				return e, dp.Day, true
			}
		}
	}
	return Exercise{}, "", false
}

// ExerciseCount returns the number of exercises across the week
func (p WeeklyPlan) ExerciseCount() int {
	n := 0
	for _, dp := range p.Days {
		n += len(dp.Exercises)
	}
	return n
}
