package constants

import (
	"fmt"
	"strings"
)

// WeekDays lists the weekly plan's days in display order
var WeekDays = []Day{DayMon, DayTue, DayWed, DayThu, DayFri, DaySat, DaySun}

// ExerciseTypes lists the supported exercise types in form order
var ExerciseTypes = []ExerciseType{TypeWeights, TypeBodyweight, TypeTimeBased}

// Categories lists the supported exercise categories in form order
var Categories = []Category{
	CategoryCore,
	CategoryLegs,
	CategoryChest,
	CategoryBack,
	CategoryShoulders,
	CategoryArms,
	CategoryCardio,
	CategoryFullBody,
}

var dayNames = map[Day]string{
	DayMon: "Monday",
	DayTue: "Tuesday",
	DayWed: "Wednesday",
	DayThu: "Thursday",
	DayFri: "Friday",
	DaySat: "Saturday",
	DaySun: "Sunday",
}

var categoryLabels = map[Category]string{
	CategoryCore:      "Core",
	CategoryLegs:      "Legs",
	CategoryChest:     "Chest",
	CategoryBack:      "Back",
	CategoryShoulders: "Shoulders",
	CategoryArms:      "Arms",
	CategoryCardio:    "Cardio",
	CategoryFullBody:  "Full Body",
}

var typeLabels = map[ExerciseType]string{
	TypeWeights:    "Weights",
	TypeBodyweight: "Bodyweight",
	TypeTimeBased:  "Time-based",
}

// Name returns the long weekday name, e.g. "Monday"
func (d Day) Name() string {
	if n, ok := dayNames[d]; ok {
		return n
	}
	return string(d)
}

// Valid reports whether d is one of the seven weekdays
func (d Day) Valid() bool {
	_, ok := dayNames[d]
	return ok
}

// Index returns the position of d in WeekDays, or -1
func (d Day) Index() int {
	for i, wd := range WeekDays {
		if wd == d {
			return i
		}
	}
	return -1
}

// Label returns the display label of the category
func (c Category) Label() string {
	if l, ok := categoryLabels[c]; ok {
		return l
	}
	return string(c)
}

// Valid reports whether c is a known category
func (c Category) Valid() bool {
	_, ok := categoryLabels[c]
	return ok
}

// Label returns the display label of the exercise type
func (t ExerciseType) Label() string {
	if l, ok := typeLabels[t]; ok {
		return l
	}
	return string(t)
}

// Valid reports whether t is a known exercise type
func (t ExerciseType) Valid() bool {
	_, ok := typeLabels[t]
	return ok
}

// ParseDay parses a weekday from its short or long name, case-insensitively
func ParseDay(s string) (Day, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	for _, d := range WeekDays {
		if strings.ToLower(string(d)) == s || strings.ToLower(d.Name()) == s {
			return d, nil
		}
	}
	return "", fmt.Errorf("invalid day: %q", s)
}

// ParseCategory parses a category from its value or label, case-insensitively
func ParseCategory(s string) (Category, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	for _, c := range Categories {
		if string(c) == s || strings.ToLower(c.Label()) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("invalid category: %q", s)
}

// ParseExerciseType parses an exercise type, accepting "time" and "timed" for time-based
func ParseExerciseType(s string) (ExerciseType, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	switch s {
	case "time", "timed", "time_based":
		return TypeTimeBased, nil
	}
	for _, t := range ExerciseTypes {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("invalid exercise type: %q", s)
}
