package selection

import (
	"fmt"

	"github.com/julianstephens/weeklift/internal/constants"
	"github.com/julianstephens/weeklift/internal/form"
	"github.com/julianstephens/weeklift/internal/logger"
	"github.com/julianstephens/weeklift/internal/models"
	"github.com/julianstephens/weeklift/internal/storage"
)

// Controller tracks the selected day and the exercise being edited, and drives
// the form controller through its create/edit transitions.
type Controller struct {
	store   storage.Provider
	form    *form.Controller
	day     constants.Day
	editing *models.Exercise
}

// New creates a selection controller starting on day. An invalid day falls back to Monday.
func New(store storage.Provider, fc *form.Controller, day constants.Day) *Controller {
	if !day.Valid() {
		day = constants.DefaultDay
	}
	return &Controller{store: store, form: fc, day: day}
}

func (c *Controller) CurrentDay() constants.Day {
	return c.day
}

func (c *Controller) Form() *form.Controller {
	return c.form
}

// EditTarget returns the exercise being edited, if any
func (c *Controller) EditTarget() (models.Exercise, bool) {
	if c.editing == nil {
		return models.Exercise{}, false
	}
	return c.editing.Clone(), true
}

// SelectDay changes the current day. The draft and form visibility are untouched.
func (c *Controller) SelectDay(day constants.Day) error {
	if !day.Valid() {
		return fmt.Errorf("invalid day: %q", day)
	}
	c.day = day
	return nil
}

// NextDay and PrevDay cycle through the week
func (c *Controller) NextDay() {
	c.day = constants.WeekDays[(c.day.Index()+1)%len(constants.WeekDays)]
}

func (c *Controller) PrevDay() {
	n := len(constants.WeekDays)
	c.day = constants.WeekDays[(c.day.Index()-1+n)%n]
}

// OpenCreate opens the form in create mode for the current day
func (c *Controller) OpenCreate() {
	c.editing = nil
	c.form.Open()
}

// BeginEdit marks e as the edit target and opens the form seeded from it
func (c *Controller) BeginEdit(e models.Exercise) {
	target := e.Clone()
	c.editing = &target
	c.form.BeginEdit(e)
}

// CancelOrFinishEdit clears the edit target and returns the form to create mode
func (c *Controller) CancelOrFinishEdit() {
	c.editing = nil
	c.form.Cancel()
}

// Submit commits the form against the current day. The edit target is cleared
// only when the commit goes through.
func (c *Controller) Submit() (models.Exercise, error) {
	e, err := c.form.Commit(c.day)
	if err != nil {
		return models.Exercise{}, err
	}
	c.editing = nil
	return e, nil
}

// RequestDelete removes the exercise from the current day. Deleting the edit
// target also cancels the edit. It reports whether anything was removed.
func (c *Controller) RequestDelete(exerciseID string) bool {
	removed := c.store.RemoveExercise(c.day, exerciseID)
	if !removed {
		logger.Debug("Delete found no match", "day", c.day, "id", exerciseID)
		return false
	}
	if c.editing != nil && c.editing.ID == exerciseID {
		c.CancelOrFinishEdit()
	}
	return true
}
