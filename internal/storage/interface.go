package storage

import (
	"github.com/julianstephens/weeklift/internal/constants"
	"github.com/julianstephens/weeklift/internal/models"
)

// Listener receives the new snapshot after every effective mutation
type Listener func(models.WeeklyPlan)

type Provider interface {
	// Reads
	GetPlan() models.WeeklyPlan
	HasExerciseID(id string) bool
	Revision() int

	// Mutations. Each returns whether the plan changed; misses are silent no-ops.
	AppendExercise(day constants.Day, exercise models.Exercise) bool
	ReplaceExercise(day constants.Day, exerciseID string, updated models.Exercise) bool
	RemoveExercise(day constants.Day, exerciseID string) bool

	// Observers
	Subscribe(fn Listener) (unsubscribe func())
}
