package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/weeklift/internal/constants"
)

// LoadLocation loads a timezone location from an IANA timezone name.
// If the timezone is "Local" or empty, it returns the system's local timezone.
func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" || timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(timezone)
}

// DayOf maps a time.Weekday onto the plan's day identifiers
func DayOf(wd time.Weekday) constants.Day {
	// time.Weekday starts on Sunday, the plan starts on Monday
	return constants.WeekDays[(int(wd)+6)%7]
}

// Today returns the plan day for the current date in the given timezone
func Today(timezone string) (constants.Day, error) {
	loc, err := LoadLocation(timezone)
	if err != nil {
		return "", fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return DayOf(time.Now().In(loc).Weekday()), nil
}

// ResolveDay parses s as a day name, accepting "today" in the given timezone
func ResolveDay(s, timezone string) (constants.Day, error) {
	if strings.EqualFold(strings.TrimSpace(s), "today") {
		return Today(timezone)
	}
	return constants.ParseDay(s)
}
