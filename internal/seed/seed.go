// Package seed builds the initial weekly plan, either from a read-only JSON
// file or from the built-in sample plan.
package seed

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/julianstephens/weeklift/internal/constants"
	"github.com/julianstephens/weeklift/internal/logger"
	"github.com/julianstephens/weeklift/internal/models"
)

type seedDay struct {
	Day       string            `json:"day"`
	Exercises []models.Exercise `json:"exercises"`
}

// Load reads a seed plan from path. The file is never written back.
func Load(path string) (models.WeeklyPlan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return models.WeeklyPlan{}, fmt.Errorf("seed file not found: %s", path)
		}
		return models.WeeklyPlan{}, fmt.Errorf("failed to read seed file: %w", err)
	}

	plan, err := Parse(data)
	if err != nil {
		logger.Error("Invalid seed plan", "path", path, "error", err)
		return models.WeeklyPlan{}, fmt.Errorf("invalid seed file %s: %w", path, err)
	}
	logger.Info("Seed plan loaded", "path", path, "exercises", plan.ExerciseCount())
	return plan, nil
}

// Parse decodes a seed plan of the form [{"day": "Mon", "exercises": [...]}].
// Missing ids are generated; types and categories may be given by label.
func Parse(data []byte) (models.WeeklyPlan, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var days []seedDay
	if err := dec.Decode(&days); err != nil {
		return models.WeeklyPlan{}, fmt.Errorf("failed to parse seed: %w", err)
	}

	plan := models.NewWeeklyPlan()
	seenDays := map[constants.Day]bool{}
	seenIDs := map[string]bool{}

	for _, sd := range days {
		day, err := constants.ParseDay(sd.Day)
		if err != nil {
			return models.WeeklyPlan{}, err
		}
		if seenDays[day] {
			return models.WeeklyPlan{}, fmt.Errorf("day %s listed more than once", day)
		}
		seenDays[day] = true

		exercises := make([]models.Exercise, 0, len(sd.Exercises))
		for i, e := range sd.Exercises {
			if err := normalize(&e); err != nil {
				return models.WeeklyPlan{}, fmt.Errorf("%s exercise %d: %w", day, i+1, err)
			}
			if e.ID == "" {
				e.ID = uuid.New().String()
			}
			if seenIDs[e.ID] {
				return models.WeeklyPlan{}, fmt.Errorf("duplicate exercise id %q", e.ID)
			}
			seenIDs[e.ID] = true

			if err := e.Validate(); err != nil {
				return models.WeeklyPlan{}, fmt.Errorf("%s exercise %d: %w", day, i+1, err)
			}
			exercises = append(exercises, e)
		}
		plan.Days[day.Index()].Exercises = exercises
	}

	return plan, nil
}

func normalize(e *models.Exercise) error {
	e.ID = strings.TrimSpace(e.ID)
	e.Name = strings.TrimSpace(e.Name)

	t, err := constants.ParseExerciseType(string(e.Type))
	if err != nil {
		return err
	}
	e.Type = t

	c, err := constants.ParseCategory(string(e.Category))
	if err != nil {
		return err
	}
	e.Category = c
	return nil
}
