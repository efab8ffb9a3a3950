// Package session tracks progress through one day's workout.
package session

import (
	"errors"
	"fmt"

	"github.com/julianstephens/weeklift/internal/constants"
	"github.com/julianstephens/weeklift/internal/logger"
	"github.com/julianstephens/weeklift/internal/models"
)

var ErrNoSuchSet = errors.New("no such set")

type Set struct {
	Instance models.WorkoutInstance
	Status   constants.SetStatus
}

// RestPeriod is the break started by the most recent completed set
type RestPeriod struct {
	Exercise string
	Seconds  int
}

type Summary struct {
	TotalExercises     int
	CompletedExercises int
	MissedExercises    int
	TotalSets          int
	CompletedSets      int
	MissedSets         int
	PendingSets        int
}

// Done reports whether no set is left pending
func (s Summary) Done() bool {
	return s.TotalSets > 0 && s.PendingSets == 0
}

type Session struct {
	day  constants.Day
	sets []Set
	rest *RestPeriod
}

// Start builds a session with every instance pending
func Start(day constants.Day, instances []models.WorkoutInstance) *Session {
	sets := make([]Set, len(instances))
	for i, in := range instances {
		sets[i] = Set{Instance: in, Status: constants.SetPending}
	}
	logger.Debug("Workout started", "day", day, "sets", len(sets))
	return &Session{day: day, sets: sets}
}

func (s *Session) Day() constants.Day { return s.day }

func (s *Session) Len() int { return len(s.sets) }

// Sets returns a copy of the session's sets in workout order
func (s *Session) Sets() []Set {
	out := make([]Set, len(s.sets))
	copy(out, s.sets)
	return out
}

func (s *Session) Set(i int) (Set, error) {
	if i < 0 || i >= len(s.sets) {
		return Set{}, fmt.Errorf("set %d: %w", i, ErrNoSuchSet)
	}
	return s.sets[i], nil
}

// Complete marks set i done and starts the exercise's rest period
func (s *Session) Complete(i int) error {
	if err := s.mark(i, constants.SetDone); err != nil {
		return err
	}
	e := s.sets[i].Instance.Exercise
	if e.RestSeconds > 0 {
		s.rest = &RestPeriod{Exercise: e.Name, Seconds: e.RestSeconds}
	} else {
		s.rest = nil
	}
	return nil
}

func (s *Session) Miss(i int) error {
	return s.mark(i, constants.SetMissed)
}

func (s *Session) Reset(i int) error {
	return s.mark(i, constants.SetPending)
}

// Rest returns the active rest period, if any
func (s *Session) Rest() (RestPeriod, bool) {
	if s.rest == nil {
		return RestPeriod{}, false
	}
	return *s.rest, true
}

func (s *Session) EndRest() {
	s.rest = nil
}

// NextPending returns the index of the first pending set at or after from, wrapping around
func (s *Session) NextPending(from int) (int, bool) {
	n := len(s.sets)
	for k := 0; k < n; k++ {
		i := (from + k) % n
		if i < 0 {
			i += n
		}
		if s.sets[i].Status == constants.SetPending {
			return i, true
		}
	}
	return 0, false
}

func (s *Session) Summary() Summary {
	var sum Summary
	type tally struct{ total, done, missed int }
	byExercise := map[string]*tally{}
	var order []string

	for _, set := range s.sets {
		id := set.Instance.Exercise.ID
		t, ok := byExercise[id]
		if !ok {
			t = &tally{}
			byExercise[id] = t
			order = append(order, id)
		}
		t.total++
		sum.TotalSets++
		switch set.Status {
		case constants.SetDone:
			t.done++
			sum.CompletedSets++
		case constants.SetMissed:
			t.missed++
			sum.MissedSets++
		default:
			sum.PendingSets++
		}
	}

	sum.TotalExercises = len(order)
	for _, id := range order {
		t := byExercise[id]
		switch {
		case t.missed > 0:
			sum.MissedExercises++
		case t.done == t.total:
			sum.CompletedExercises++
		}
	}
	return sum
}

func (s *Session) mark(i int, status constants.SetStatus) error {
	if i < 0 || i >= len(s.sets) {
		return fmt.Errorf("set %d: %w", i, ErrNoSuchSet)
	}
	s.sets[i].Status = status
	logger.Debug("Set updated",
		"exercise", s.sets[i].Instance.Exercise.Name,
		"set", s.sets[i].Instance.SetIndex,
		"status", status,
	)
	return nil
}
