package form

import (
	"bytes"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/julianstephens/weeklift/internal/constants"
	"github.com/julianstephens/weeklift/internal/logger"
	"github.com/julianstephens/weeklift/internal/models"
	"github.com/julianstephens/weeklift/internal/storage"
)

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("ex-%d", n)
	}
}

func newTestController(strict bool) (*Controller, *storage.MemoryStore) {
	store := storage.NewMemoryStore()
	c := New(store, Options{StrictRequired: strict, NewID: sequentialIDs()})
	return c, store
}

func squatDraft() Draft {
	return Draft{
		Name:         "Squat",
		Type:         constants.TypeWeights,
		Sets:         "3",
		Reps:         "10",
		Rest:         "60",
		TargetWeight: "40",
		Category:     constants.CategoryLegs,
	}
}

// captureLogs routes the package logger into a buffer for the rest of the test
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	prev := logger.Logger
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	t.Cleanup(func() { logger.Logger = prev })
	return &buf
}

func dayOf(t *testing.T, store storage.Provider, d constants.Day) []models.Exercise {
	t.Helper()
	dp, ok := store.GetPlan().Day(d)
	if !ok {
		t.Fatalf("day %s missing", d)
	}
	return dp.Exercises
}

func TestNew_Defaults(t *testing.T) {
	c, _ := newTestController(false)

	if c.Mode() != ModeCreate {
		t.Errorf("mode = %v, want create", c.Mode())
	}
	if c.IsOpen() {
		t.Error("form should start closed")
	}
	d := c.Draft()
	if d.Type != constants.TypeWeights || d.Category != constants.CategoryCore {
		t.Errorf("default draft = %+v", d)
	}
	if d.Name != "" || d.Sets != "" {
		t.Errorf("default draft should be empty: %+v", d)
	}
}

func TestCommit_SquatScenario(t *testing.T) {
	c, store := newTestController(false)
	c.Open()
	c.SetDraft(squatDraft())

	got, err := c.Commit(constants.DayMon)
	if err != nil {
		t.Fatalf("commit failed: %v", err)
	}

	want := models.Exercise{
		ID:           "ex-1",
		Name:         "Squat",
		Type:         constants.TypeWeights,
		Sets:         3,
		Reps:         models.IntPtr(10),
		RestSeconds:  60,
		TargetWeight: models.FloatPtr(40),
		Category:     constants.CategoryLegs,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("committed exercise = %+v, want %+v", got, want)
	}

	mon := dayOf(t, store, constants.DayMon)
	if len(mon) != 1 || !reflect.DeepEqual(mon[0], want) {
		t.Fatalf("Monday = %+v", mon)
	}
	if err := mon[0].Validate(); err != nil {
		t.Errorf("committed exercise is not valid: %v", err)
	}
	if c.IsOpen() {
		t.Error("form should close after commit")
	}
	if c.Draft() != NewDraft(constants.TypeWeights, constants.CategoryCore) {
		t.Errorf("draft not reset: %+v", c.Draft())
	}
	if c.Err() != nil {
		t.Errorf("error should be clear after clean commit: %v", c.Err())
	}
}

func TestCommit_WeightedDraftsAppendExactlyOne(t *testing.T) {
	drafts := []Draft{
		squatDraft(),
		{Name: "Bench", Type: constants.TypeWeights, Sets: "5", Reps: "5", Rest: "120", TargetWeight: "62.5", Category: constants.CategoryChest},
		{Name: "Dips", Type: constants.TypeWeights, Sets: "3", Reps: "8", Rest: "90", TargetWeight: "0", Category: constants.CategoryArms},
		{Name: "Row", Type: constants.TypeWeights, Sets: "4", Reps: "12", Rest: "75", TargetWeight: "22,5", Category: constants.CategoryBack},
	}

	c, store := newTestController(false)
	seen := map[string]bool{}
	for i, d := range drafts {
		t.Run(d.Name, func(t *testing.T) {
			c.Open()
			c.SetDraft(d)
			got, err := c.Commit(constants.DayThu)
			if err != nil {
				t.Fatalf("commit failed: %v", err)
			}
			thu := dayOf(t, store, constants.DayThu)
			if len(thu) != i+1 {
				t.Fatalf("expected %d exercises, got %d", i+1, len(thu))
			}
			if seen[got.ID] {
				t.Errorf("duplicate id %s", got.ID)
			}
			seen[got.ID] = true
			if got.Name != d.Name || got.Category != d.Category || got.Type != d.Type {
				t.Errorf("fields not copied: %+v", got)
			}
			if got.TargetWeight == nil {
				t.Fatal("target weight missing")
			}
		})
	}

	thu := dayOf(t, store, constants.DayThu)
	if !thu[2].IsBodyWeightTarget() {
		t.Error("target weight 0 should be kept as the body-weight marker")
	}
	if *thu[3].TargetWeight != 22.5 {
		t.Errorf("comma decimal parsed as %v", *thu[3].TargetWeight)
	}
}

func TestCommit_TimeBasedMissingDuration(t *testing.T) {
	c, store := newTestController(false)
	c.Open()
	c.SetDraft(Draft{Name: "Plank", Type: constants.TypeTimeBased, Sets: "3", Rest: "30", Category: constants.CategoryCore})
	before := store.GetPlan()

	_, err := c.Commit(constants.DayMon)
	if !errors.Is(err, ErrMissingDuration) {
		t.Fatalf("expected ErrMissingDuration, got %v", err)
	}
	if !reflect.DeepEqual(before, store.GetPlan()) || store.Revision() != 0 {
		t.Error("plan changed after failed commit")
	}
	if !c.IsOpen() {
		t.Error("form should stay open after a blocked commit")
	}
	if c.Message() == "" {
		t.Error("expected a message after a blocked commit")
	}
	if c.Draft().Name != "Plank" {
		t.Error("draft should survive a blocked commit")
	}
}

func TestCommit_TimeBasedDropsReps(t *testing.T) {
	c, _ := newTestController(false)
	c.Open()
	c.SetDraft(Draft{Name: "Plank", Type: constants.TypeTimeBased, Sets: "3", Reps: "12", Duration: "45", Rest: "30", TargetWeight: "10", Category: constants.CategoryCore})

	got, err := c.Commit(constants.DayMon)
	if err != nil {
		t.Fatalf("commit failed: %v", err)
	}
	if got.Reps != nil || got.TargetWeight != nil {
		t.Errorf("inapplicable fields kept: %+v", got)
	}
	if got.DurationSeconds == nil || *got.DurationSeconds != 45 {
		t.Errorf("duration = %v", got.DurationSeconds)
	}
}

func TestCommit_WeightedFieldsMissing(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(*Draft)
		field string
	}{
		{"missing reps", func(d *Draft) { d.Reps = "" }, "reps"},
		{"missing target", func(d *Draft) { d.TargetWeight = "  " }, "target weight"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, store := newTestController(false)
			d := squatDraft()
			tt.edit(&d)
			c.Open()
			c.SetDraft(d)

			_, err := c.Commit(constants.DayMon)
			if !errors.Is(err, ErrMissingWeightedFields) {
				t.Fatalf("expected ErrMissingWeightedFields, got %v", err)
			}
			var verr *ValidationError
			if !errors.As(err, &verr) || verr.Field != tt.field {
				t.Errorf("field = %v, want %s", verr, tt.field)
			}
			if store.Revision() != 0 {
				t.Error("plan changed")
			}
		})
	}
}

// A missing name, sets or rest is reported but does not block unless strict.
func TestCommit_MissingRequiredField_Lenient(t *testing.T) {
	logs := captureLogs(t)
	c, store := newTestController(false)
	c.Open()
	d := squatDraft()
	d.Name = ""
	c.SetDraft(d)

	got, err := c.Commit(constants.DayMon)
	if err != nil {
		t.Fatalf("lenient commit should succeed, got %v", err)
	}
	if len(dayOf(t, store, constants.DayMon)) != 1 {
		t.Fatal("exercise should be appended in lenient mode")
	}
	if got.Name != "" {
		t.Errorf("name = %q", got.Name)
	}
	if !errors.Is(c.Err(), ErrMissingRequiredField) {
		t.Errorf("expected recorded ErrMissingRequiredField, got %v", c.Err())
	}
	if c.IsOpen() {
		t.Error("form should close after commit")
	}
	if !strings.Contains(logs.String(), "Committing exercise with missing required field") {
		t.Errorf("lenient commit was not logged: %q", logs.String())
	}

	// The next clean commit clears the message
	c.Open()
	c.SetDraft(squatDraft())
	if _, err := c.Commit(constants.DayMon); err != nil {
		t.Fatalf("commit failed: %v", err)
	}
	if c.Err() != nil || c.Message() != "" {
		t.Errorf("message not cleared: %q", c.Message())
	}
}

func TestCommit_MissingRequiredField_Strict(t *testing.T) {
	for _, field := range []string{"name", "sets", "rest"} {
		t.Run(field, func(t *testing.T) {
			c, store := newTestController(true)
			d := squatDraft()
			switch field {
			case "name":
				d.Name = ""
			case "sets":
				d.Sets = ""
			case "rest":
				d.Rest = ""
			}
			c.Open()
			c.SetDraft(d)

			_, err := c.Commit(constants.DayMon)
			if !errors.Is(err, ErrMissingRequiredField) {
				t.Fatalf("expected ErrMissingRequiredField, got %v", err)
			}
			if store.Revision() != 0 {
				t.Error("plan changed in strict mode")
			}
		})
	}
}

// Only the first failing rule is reported, even when a later rule blocks.
func TestCommit_ReportsFirstFailingRule(t *testing.T) {
	c, store := newTestController(false)
	c.Open()
	c.SetDraft(Draft{Type: constants.TypeTimeBased, Category: constants.CategoryCore})

	_, err := c.Commit(constants.DayMon)
	if !errors.Is(err, ErrMissingRequiredField) {
		t.Fatalf("expected the required-field failure to be reported, got %v", err)
	}
	if store.Revision() != 0 {
		t.Error("missing duration should still block the commit")
	}
}

func TestCommit_BodyweightNeedsReps(t *testing.T) {
	c, _ := newTestController(false)
	c.Open()
	c.SetDraft(Draft{Name: "Push-up", Type: constants.TypeBodyweight, Sets: "3", Rest: "45", Category: constants.CategoryChest})

	if _, err := c.Commit(constants.DayMon); !errors.Is(err, ErrMissingReps) {
		t.Fatalf("expected ErrMissingReps, got %v", err)
	}

	c.SetReps("15")
	c.SetTargetWeight("20")
	got, err := c.Commit(constants.DayMon)
	if err != nil {
		t.Fatalf("commit failed: %v", err)
	}
	if got.TargetWeight != nil {
		t.Error("bodyweight exercise should not keep a target weight")
	}
	if got.Reps == nil || *got.Reps != 15 {
		t.Errorf("reps = %v", got.Reps)
	}
}

func TestCommit_InvalidNumbers(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(*Draft)
		field string
	}{
		{"sets not a number", func(d *Draft) { d.Sets = "three" }, "sets"},
		{"zero sets", func(d *Draft) { d.Sets = "0" }, "sets"},
		{"too many sets", func(d *Draft) { d.Sets = "500" }, "sets"},
		{"negative reps", func(d *Draft) { d.Reps = "-2" }, "reps"},
		{"zero rest", func(d *Draft) { d.Rest = "0" }, "rest"},
		{"negative weight", func(d *Draft) { d.TargetWeight = "-5" }, "target weight"},
		{"weight NaN", func(d *Draft) { d.TargetWeight = "NaN" }, "target weight"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, store := newTestController(false)
			d := squatDraft()
			tt.edit(&d)
			c.Open()
			c.SetDraft(d)

			_, err := c.Commit(constants.DayMon)
			if !errors.Is(err, ErrInvalidNumber) {
				t.Fatalf("expected ErrInvalidNumber, got %v", err)
			}
			var verr *ValidationError
			if errors.As(err, &verr) && verr.Field != tt.field {
				t.Errorf("field = %s, want %s", verr.Field, tt.field)
			}
			if store.Revision() != 0 {
				t.Error("plan changed")
			}
		})
	}
}

func TestCommit_InvalidChoice(t *testing.T) {
	c, _ := newTestController(false)
	c.Open()
	d := squatDraft()
	d.Category = constants.Category("neck")
	c.SetDraft(d)

	if _, err := c.Commit(constants.DayMon); !errors.Is(err, ErrInvalidChoice) {
		t.Fatalf("expected ErrInvalidChoice, got %v", err)
	}

	d = squatDraft()
	d.Type = constants.ExerciseType("yoga")
	c.SetDraft(d)
	if _, err := c.Commit(constants.DayMon); !errors.Is(err, ErrInvalidChoice) {
		t.Fatalf("expected ErrInvalidChoice for type, got %v", err)
	}
}

func TestEdit_UnchangedCommitKeepsPlanIdentical(t *testing.T) {
	c, store := newTestController(false)
	for _, name := range []string{"Squat", "Deadlift", "Lunge"} {
		c.Open()
		d := squatDraft()
		d.Name = name
		c.SetDraft(d)
		if _, err := c.Commit(constants.DayMon); err != nil {
			t.Fatalf("seed commit failed: %v", err)
		}
	}
	before := dayOf(t, store, constants.DayMon)

	c.BeginEdit(before[1])
	if c.Mode() != ModeEdit || !c.IsOpen() {
		t.Fatal("expected open edit mode")
	}
	got, err := c.Commit(constants.DayMon)
	if err != nil {
		t.Fatalf("edit commit failed: %v", err)
	}
	if got.ID != before[1].ID {
		t.Errorf("id changed from %s to %s", before[1].ID, got.ID)
	}

	after := dayOf(t, store, constants.DayMon)
	if !reflect.DeepEqual(before, after) {
		t.Errorf("plan changed after unchanged edit:\nbefore %+v\nafter  %+v", before, after)
	}
	if c.Mode() != ModeCreate || c.IsOpen() {
		t.Error("controller should return to closed create mode")
	}
}

func TestEdit_UnchangedCommitOfLenientExercise(t *testing.T) {
	c, store := newTestController(false)
	c.Open()
	d := squatDraft()
	d.Sets = ""
	d.Rest = " "
	c.SetDraft(d)
	e, err := c.Commit(constants.DayMon)
	if err != nil {
		t.Fatalf("lenient commit failed: %v", err)
	}
	if e.Sets != 0 || e.RestSeconds != 0 {
		t.Fatalf("expected zero sets and rest, got %d and %d", e.Sets, e.RestSeconds)
	}
	before := dayOf(t, store, constants.DayMon)

	c.BeginEdit(e)
	if got := c.Draft(); got.Sets != "" || got.Rest != "" {
		t.Errorf("edit draft sets = %q, rest = %q, want blank", got.Sets, got.Rest)
	}
	if _, err := c.Commit(constants.DayMon); err != nil {
		t.Fatalf("unchanged edit commit failed: %v", err)
	}
	if !reflect.DeepEqual(before, dayOf(t, store, constants.DayMon)) {
		t.Error("plan changed after unchanged edit")
	}
}

func TestEdit_UnchangedCommitAtSetLimit(t *testing.T) {
	e := models.Exercise{
		ID:           "seeded",
		Name:         "Calf Raise",
		Type:         constants.TypeWeights,
		Sets:         constants.MaxSetsPerExercise,
		Reps:         models.IntPtr(15),
		RestSeconds:  20,
		TargetWeight: models.FloatPtr(0),
		Category:     constants.CategoryLegs,
	}
	if err := e.Validate(); err != nil {
		t.Fatalf("exercise at the set limit should be valid: %v", err)
	}
	over := e
	over.Sets++
	if over.Validate() == nil {
		t.Fatal("exercise above the set limit should be invalid")
	}

	store := storage.NewMemoryStoreFrom(models.WeeklyPlan{Days: []models.DayPlan{
		{Day: constants.DayThu, Exercises: []models.Exercise{e}},
	}})
	c := New(store, Options{NewID: sequentialIDs()})
	before := dayOf(t, store, constants.DayThu)

	c.BeginEdit(e)
	if _, err := c.Commit(constants.DayThu); err != nil {
		t.Fatalf("unchanged edit commit failed: %v", err)
	}
	if !reflect.DeepEqual(before, dayOf(t, store, constants.DayThu)) {
		t.Error("plan changed after unchanged edit")
	}
}

func TestEdit_ReplacesInPlace(t *testing.T) {
	c, store := newTestController(false)
	c.Open()
	c.SetDraft(squatDraft())
	original, _ := c.Commit(constants.DayMon)

	c.BeginEdit(original)
	c.SetType(constants.TypeTimeBased)
	c.SetDuration("90")
	c.SetName("Wall Sit")

	got, err := c.Commit(constants.DayMon)
	if err != nil {
		t.Fatalf("commit failed: %v", err)
	}
	mon := dayOf(t, store, constants.DayMon)
	if len(mon) != 1 {
		t.Fatalf("expected 1 exercise, got %d", len(mon))
	}
	if mon[0].ID != original.ID || mon[0].Name != "Wall Sit" {
		t.Errorf("edited exercise = %+v", mon[0])
	}
	if got.Reps != nil || got.TargetWeight != nil {
		t.Errorf("weights fields kept after switching to time-based: %+v", got)
	}
}

func TestBeginEdit_DraftDoesNotAliasPlan(t *testing.T) {
	c, store := newTestController(false)
	c.Open()
	c.SetDraft(squatDraft())
	original, _ := c.Commit(constants.DayMon)

	c.BeginEdit(original)
	c.SetName("Changed")
	c.SetReps("1")

	mon := dayOf(t, store, constants.DayMon)
	if mon[0].Name != "Squat" || *mon[0].Reps != 10 {
		t.Errorf("plan changed before commit: %+v", mon[0])
	}
	target, ok := c.Target()
	if !ok || target.Name != "Squat" {
		t.Errorf("target = %+v", target)
	}
}

func TestCancel(t *testing.T) {
	c, store := newTestController(false)
	c.Open()
	c.SetDraft(squatDraft())
	original, _ := c.Commit(constants.DayMon)

	c.BeginEdit(original)
	c.SetName("Discard me")
	c.Cancel()

	if c.Mode() != ModeCreate || c.IsOpen() {
		t.Error("cancel should close the form in create mode")
	}
	if c.Draft().Name != "" {
		t.Error("cancel should reset the draft")
	}
	if _, ok := c.Target(); ok {
		t.Error("cancel should clear the edit target")
	}
	if dayOf(t, store, constants.DayMon)[0].Name != "Squat" {
		t.Error("cancel changed the plan")
	}
}

func TestNewID_SkipsIDsInUse(t *testing.T) {
	store := storage.NewMemoryStore()
	store.AppendExercise(constants.DaySat, models.Exercise{ID: "dup", Name: "Existing"})

	ids := []string{"dup", "dup", "fresh"}
	i := 0
	c := New(store, Options{NewID: func() string {
		id := ids[i]
		i++
		return id
	}})
	c.Open()
	c.SetDraft(squatDraft())

	got, err := c.Commit(constants.DayMon)
	if err != nil {
		t.Fatalf("commit failed: %v", err)
	}
	if got.ID != "fresh" {
		t.Errorf("id = %s, want fresh", got.ID)
	}
}

func TestNew_DefaultIDsAreUUIDs(t *testing.T) {
	store := storage.NewMemoryStore()
	c := New(store, Options{})
	c.Open()
	c.SetDraft(squatDraft())

	got, err := c.Commit(constants.DayMon)
	if err != nil {
		t.Fatalf("commit failed: %v", err)
	}
	if len(got.ID) != 36 {
		t.Errorf("expected a UUID, got %q", got.ID)
	}
}

func TestDraftFrom(t *testing.T) {
	e := models.Exercise{
		ID:           "x",
		Name:         "Curl",
		Type:         constants.TypeWeights,
		Sets:         3,
		Reps:         models.IntPtr(12),
		RestSeconds:  45,
		TargetWeight: models.FloatPtr(12.5),
		Category:     constants.CategoryArms,
	}
	d := DraftFrom(e)
	want := Draft{Name: "Curl", Type: constants.TypeWeights, Sets: "3", Reps: "12", Rest: "45", TargetWeight: "12.5", Category: constants.CategoryArms}
	if d != want {
		t.Errorf("DraftFrom() = %+v, want %+v", d, want)
	}
	if !reflect.DeepEqual(Build(d, "x"), e) {
		t.Errorf("Build(DraftFrom(e)) != e")
	}
}
