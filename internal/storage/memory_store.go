package storage

import (
	"github.com/julianstephens/weeklift/internal/constants"
	"github.com/julianstephens/weeklift/internal/logger"
	"github.com/julianstephens/weeklift/internal/models"
)

// MemoryStore holds the weekly plan as a chain of immutable snapshots.
// Mutations copy the touched day's sequence and the day list; untouched days
// share their backing arrays with the previous snapshot, which is never written again.
// MemoryStore is meant to be driven from a single goroutine.
type MemoryStore struct {
	plan      models.WeeklyPlan
	revision  int
	listeners map[int]Listener
	nextSubID int
}

// NewMemoryStore creates a store with an empty sequence for every weekday
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		plan:      models.NewWeeklyPlan(),
		listeners: make(map[int]Listener),
	}
}

// NewMemoryStoreFrom creates a store seeded with plan. Days missing from plan start
// empty and unknown days are dropped, so the seven-day shape always holds.
func NewMemoryStoreFrom(plan models.WeeklyPlan) *MemoryStore {
	s := NewMemoryStore()
	for i, d := range constants.WeekDays {
		dp, ok := plan.Day(d)
		if !ok {
			continue
		}
		exercises := make([]models.Exercise, len(dp.Exercises))
		for j, e := range dp.Exercises {
			exercises[j] = e.Clone()
		}
		s.plan.Days[i].Exercises = exercises
	}
	return s
}

func (s *MemoryStore) GetPlan() models.WeeklyPlan {
	return s.plan
}

func (s *MemoryStore) Revision() int {
	return s.revision
}

func (s *MemoryStore) HasExerciseID(id string) bool {
	_, _, ok := s.plan.FindExercise(id)
	return ok
}

func (s *MemoryStore) AppendExercise(day constants.Day, exercise models.Exercise) bool {
	idx := day.Index()
	if idx < 0 {
		logger.Warn("Append ignored for unknown day", "day", day, "exercise", exercise.Name)
		return false
	}

	old := s.plan.Days[idx].Exercises
	exercises := make([]models.Exercise, len(old), len(old)+1)
	copy(exercises, old)
	exercises = append(exercises, exercise.Clone())

	s.commit(idx, exercises)
	logger.Debug("Exercise appended", "day", day, "id", exercise.ID, "name", exercise.Name)
	return true
}

func (s *MemoryStore) ReplaceExercise(day constants.Day, exerciseID string, updated models.Exercise) bool {
	idx := day.Index()
	if idx < 0 {
		return false
	}

	old := s.plan.Days[idx].Exercises
	pos := indexOf(old, exerciseID)
	if pos < 0 {
		logger.Debug("Replace found no match", "day", day, "id", exerciseID)
		return false
	}

	exercises := make([]models.Exercise, len(old))
	copy(exercises, old)
	exercises[pos] = updated.Clone()

	s.commit(idx, exercises)
	logger.Debug("Exercise replaced", "day", day, "id", exerciseID)
	return true
}

func (s *MemoryStore) RemoveExercise(day constants.Day, exerciseID string) bool {
	idx := day.Index()
	if idx < 0 {
		return false
	}

	old := s.plan.Days[idx].Exercises
	pos := indexOf(old, exerciseID)
	if pos < 0 {
		return false
	}

	exercises := make([]models.Exercise, 0, len(old)-1)
	exercises = append(exercises, old[:pos]...)
	exercises = append(exercises, old[pos+1:]...)

	s.commit(idx, exercises)
	logger.Debug("Exercise removed", "day", day, "id", exerciseID)
	return true
}

// Subscribe registers fn for future snapshots. The returned func removes it.
func (s *MemoryStore) Subscribe(fn Listener) func() {
	id := s.nextSubID
	s.nextSubID++
	s.listeners[id] = fn
	return func() {
		delete(s.listeners, id)
	}
}

// commit installs a new snapshot whose day idx holds exercises
func (s *MemoryStore) commit(idx int, exercises []models.Exercise) {
	days := make([]models.DayPlan, len(s.plan.Days))
	copy(days, s.plan.Days)
	days[idx] = models.DayPlan{Day: days[idx].Day, Exercises: exercises}

	s.plan = models.WeeklyPlan{Days: days}
	s.revision++

	for _, fn := range s.listeners {
		fn(s.plan)
	}
}

func indexOf(exercises []models.Exercise, id string) int {
	for i, e := range exercises {
		if e.ID == id {
			return i
		}
	}
	return -1
}
