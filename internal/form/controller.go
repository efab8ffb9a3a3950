package form

import (
	"github.com/google/uuid"

	"github.com/julianstephens/weeklift/internal/constants"
	"github.com/julianstephens/weeklift/internal/logger"
	"github.com/julianstephens/weeklift/internal/models"
	"github.com/julianstephens/weeklift/internal/storage"
)

// Mode is the form's current purpose
type Mode int

const (
	ModeCreate Mode = iota
	ModeEdit
)

func (m Mode) String() string {
	if m == ModeEdit {
		return "edit"
	}
	return "create"
}

// Options configures a Controller
type Options struct {
	// StrictRequired makes a missing name, sets or rest block the commit.
	// When false the failure is reported but the exercise is still committed.
	StrictRequired  bool
	DefaultType     constants.ExerciseType
	DefaultCategory constants.Category
	// NewID generates exercise identifiers. Defaults to random UUIDs.
	NewID func() string
}

// Controller owns the draft for one exercise being created or edited
type Controller struct {
	store  storage.Provider
	opts   Options
	mode   Mode
	target models.Exercise
	draft  Draft
	open   bool
	err    *ValidationError
}

// New creates a closed controller in create mode
func New(store storage.Provider, opts Options) *Controller {
	if !opts.DefaultType.Valid() {
		opts.DefaultType = constants.DefaultType
	}
	if !opts.DefaultCategory.Valid() {
		opts.DefaultCategory = constants.DefaultCategory
	}
	if opts.NewID == nil {
		opts.NewID = func() string { return uuid.New().String() }
	}
	c := &Controller{store: store, opts: opts}
	c.resetDraft()
	return c
}

func (c *Controller) Mode() Mode {
	return c.mode
}

// Target returns a copy of the exercise being edited
func (c *Controller) Target() (models.Exercise, bool) {
	if c.mode != ModeEdit {
		return models.Exercise{}, false
	}
	return c.target.Clone(), true
}

func (c *Controller) IsOpen() bool {
	return c.open
}

func (c *Controller) Strict() bool {
	return c.opts.StrictRequired
}

// Draft returns a copy of the current draft
func (c *Controller) Draft() Draft {
	return c.draft
}

// SetDraft replaces every draft field at once, e.g. from a bound form
func (c *Controller) SetDraft(d Draft) {
	c.draft = d
}

func (c *Controller) SetName(v string)                 { c.draft.Name = v }
func (c *Controller) SetType(v constants.ExerciseType) { c.draft.Type = v }
func (c *Controller) SetSets(v string)                 { c.draft.Sets = v }
func (c *Controller) SetReps(v string)                 { c.draft.Reps = v }
func (c *Controller) SetDuration(v string)             { c.draft.Duration = v }
func (c *Controller) SetRest(v string)                 { c.draft.Rest = v }
func (c *Controller) SetTargetWeight(v string)         { c.draft.TargetWeight = v }
func (c *Controller) SetCategory(v constants.Category) { c.draft.Category = v }

// Err returns the last reported validation failure, or nil
func (c *Controller) Err() error {
	if c.err == nil {
		return nil
	}
	return c.err
}

// Message returns the human-readable form of Err, or ""
func (c *Controller) Message() string {
	if c.err == nil {
		return ""
	}
	return c.err.Msg
}

// Open shows the form in create mode with a fresh draft
func (c *Controller) Open() {
	c.mode = ModeCreate
	c.target = models.Exercise{}
	c.resetDraft()
	c.err = nil
	c.open = true
}

// BeginEdit switches to edit mode and seeds the draft from e by value
func (c *Controller) BeginEdit(e models.Exercise) {
	c.mode = ModeEdit
	c.target = e.Clone()
	c.draft = DraftFrom(e)
	c.err = nil
	c.open = true
}

// Cancel discards the draft, returns to create mode and closes the form
func (c *Controller) Cancel() {
	c.Reset()
	c.open = false
}

// Reset returns to create mode with an empty draft and no error
func (c *Controller) Reset() {
	c.mode = ModeCreate
	c.target = models.Exercise{}
	c.resetDraft()
	c.err = nil
}

// Commit validates the draft and applies it to day. On success the exercise
// that was appended or written back is returned and the form is reset and closed.
// A tolerated missing-field failure stays visible through Err after a successful commit.
func (c *Controller) Commit(day constants.Day) (models.Exercise, error) {
	failures := Check(c.draft)

	var reported *ValidationError
	blocked := false
	for _, f := range failures {
		if reported == nil {
			reported = f
		}
		if f.Blocking(c.opts.StrictRequired) {
			blocked = true
		}
	}
	c.err = reported

	if blocked {
		logger.Debug("Exercise commit rejected", "mode", c.mode, "rule", reported.Rule, "field", reported.Field)
		return models.Exercise{}, reported
	}
	if reported != nil {
		logger.Warn("Committing exercise with missing required field", "field", reported.Field, "day", day)
	}

	var exercise models.Exercise
	switch c.mode {
	case ModeEdit:
		exercise = Build(c.draft, c.target.ID)
		c.store.ReplaceExercise(day, c.target.ID, exercise)
	default:
		exercise = Build(c.draft, c.newID())
		c.store.AppendExercise(day, exercise)
	}

	c.mode = ModeCreate
	c.target = models.Exercise{}
	c.resetDraft()
	c.open = false
	return exercise, nil
}

// newID returns an identifier not used anywhere in the plan
func (c *Controller) newID() string {
	id := c.opts.NewID()
	for c.store.HasExerciseID(id) {
		id = c.opts.NewID()
	}
	return id
}

func (c *Controller) resetDraft() {
	c.draft = NewDraft(c.opts.DefaultType, c.opts.DefaultCategory)
}
