package form

import (
	"strconv"

	"github.com/julianstephens/weeklift/internal/constants"
	"github.com/julianstephens/weeklift/internal/models"
)

// Draft holds the form's working values as the inputs deliver them
type Draft struct {
	Name         string
	Type         constants.ExerciseType
	Sets         string
	Reps         string
	Duration     string // seconds, time-based only
	Rest         string // seconds
	TargetWeight string // kg, weights only
	Category     constants.Category
}

// NewDraft returns an empty draft with the given type and category defaults
func NewDraft(t constants.ExerciseType, c constants.Category) Draft {
	return Draft{Type: t, Category: c}
}

// DraftFrom seeds a draft from an existing exercise by value.
// Zero sets or rest come back as blank fields, the inverse of Build.
func DraftFrom(e models.Exercise) Draft {
	d := Draft{
		Name:     e.Name,
		Type:     e.Type,
		Category: e.Category,
	}
	if e.Sets != 0 {
		d.Sets = strconv.Itoa(e.Sets)
	}
	if e.RestSeconds != 0 {
		d.Rest = strconv.Itoa(e.RestSeconds)
	}
	if e.Reps != nil {
		d.Reps = strconv.Itoa(*e.Reps)
	}
	if e.DurationSeconds != nil {
		d.Duration = strconv.Itoa(*e.DurationSeconds)
	}
	if e.TargetWeight != nil {
		d.TargetWeight = strconv.FormatFloat(*e.TargetWeight, 'f', -1, 64)
	}
	return d
}
