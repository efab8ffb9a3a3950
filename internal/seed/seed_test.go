package seed

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/julianstephens/weeklift/internal/constants"
)

const validSeed = `[
  {"day": "Mon", "exercises": [
    {"id": "sq", "name": "Squat", "type": "weights", "sets": 3, "reps": 10, "rest": 60, "target_weight": 40, "category": "legs"},
    {"name": "Plank", "type": "Time-based", "sets": 2, "duration_seconds": 45, "rest": 30, "category": "Core"}
  ]},
  {"day": "friday", "exercises": []}
]`

func TestParse(t *testing.T) {
	plan, err := Parse([]byte(validSeed))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	mon, _ := plan.Day(constants.DayMon)
	if len(mon.Exercises) != 2 {
		t.Fatalf("expected 2 Monday exercises, got %d", len(mon.Exercises))
	}
	if mon.Exercises[0].ID != "sq" || *mon.Exercises[0].TargetWeight != 40 {
		t.Errorf("squat = %+v", mon.Exercises[0])
	}
	plank := mon.Exercises[1]
	if plank.ID == "" {
		t.Error("missing id should be generated")
	}
	if plank.Type != constants.TypeTimeBased || plank.Category != constants.CategoryCore {
		t.Errorf("plank type/category not normalized: %s/%s", plank.Type, plank.Category)
	}
	if len(plan.Days) != 7 || plan.ExerciseCount() != 2 {
		t.Errorf("unexpected plan shape: %d days, %d exercises", len(plan.Days), plan.ExerciseCount())
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"not json", `{`, "failed to parse seed"},
		{"unknown field", `[{"day": "Mon", "exercises": [], "notes": "x"}]`, "failed to parse seed"},
		{"unknown day", `[{"day": "Funday", "exercises": []}]`, "invalid day"},
		{"repeated day", `[{"day": "Mon", "exercises": []}, {"day": "monday", "exercises": []}]`, "more than once"},
		{
			"duplicate id",
			`[{"day": "Mon", "exercises": [
			  {"id": "a", "name": "Dips", "type": "bodyweight", "sets": 3, "reps": 10, "rest": 60, "category": "arms"}]},
			  {"day": "Tue", "exercises": [
			  {"id": "a", "name": "Dips", "type": "bodyweight", "sets": 3, "reps": 10, "rest": 60, "category": "arms"}]}]`,
			"duplicate exercise id",
		},
		{
			"bad type",
			`[{"day": "Mon", "exercises": [{"name": "Row", "type": "rowing", "sets": 3, "reps": 10, "rest": 60, "category": "back"}]}]`,
			"invalid exercise type",
		},
		{
			"weights without target",
			`[{"day": "Mon", "exercises": [{"name": "Row", "type": "weights", "sets": 3, "reps": 10, "rest": 60, "category": "back"}]}]`,
			"needs a target weight",
		},
		{
			"time-based without duration",
			`[{"day": "Mon", "exercises": [{"name": "Plank", "type": "timed", "sets": 3, "rest": 60, "category": "core"}]}]`,
			"positive duration",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not contain %q", err, tt.want)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plan.json")
	if err := os.WriteFile(path, []byte(validSeed), 0644); err != nil {
		t.Fatalf("failed to write seed: %v", err)
	}
	before, _ := os.ReadFile(path)

	plan, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if plan.ExerciseCount() != 2 {
		t.Errorf("expected 2 exercises, got %d", plan.ExerciseCount())
	}

	after, _ := os.ReadFile(path)
	if string(before) != string(after) {
		t.Error("seed file was modified")
	}

	if _, err := Load(filepath.Join(dir, "missing.json")); err == nil || !strings.Contains(err.Error(), "not found") {
		t.Errorf("expected not found error, got %v", err)
	}
}

func TestSample(t *testing.T) {
	plan := Sample()
	if len(plan.Days) != 7 {
		t.Fatalf("expected 7 days, got %d", len(plan.Days))
	}

	ids := map[string]bool{}
	for _, dp := range plan.Days {
		for _, e := range dp.Exercises {
			if err := e.Validate(); err != nil {
				t.Errorf("sample exercise %q invalid: %v", e.Name, err)
			}
			if ids[e.ID] {
				t.Errorf("duplicate sample id %q", e.ID)
			}
			ids[e.ID] = true
		}
	}

	for _, d := range []constants.Day{constants.DayMon, constants.DayWed, constants.DayFri} {
		if dp, _ := plan.Day(d); len(dp.Exercises) == 0 {
			t.Errorf("%s should have exercises", d)
		}
	}
	if dp, _ := plan.Day(constants.DayTue); len(dp.Exercises) != 0 {
		t.Error("Tuesday should be a rest day")
	}
}
