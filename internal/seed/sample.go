package seed

import (
	"github.com/julianstephens/weeklift/internal/constants"
	"github.com/julianstephens/weeklift/internal/models"
)

// Sample returns the built-in starter plan: full body on Monday, Wednesday and Friday
func Sample() models.WeeklyPlan {
	plan := models.NewWeeklyPlan()

	set := func(d constants.Day, exercises ...models.Exercise) {
		plan.Days[d.Index()].Exercises = exercises
	}

	set(constants.DayMon,
		weighted("mon-squat", "Squat", constants.CategoryLegs, 3, 10, 60, 40),
		weighted("mon-bench", "Bench Press", constants.CategoryChest, 3, 8, 90, 35),
		bodyweight("mon-pushups", "Push-ups", constants.CategoryChest, 3, 15, 45),
		timed("mon-plank", "Plank", constants.CategoryCore, 3, 45, 30),
	)
	set(constants.DayWed,
		weighted("wed-deadlift", "Deadlift", constants.CategoryBack, 3, 6, 120, 60),
		bodyweight("wed-pullups", "Pull-ups", constants.CategoryBack, 3, 8, 90),
		weighted("wed-press", "Overhead Press", constants.CategoryShoulders, 3, 10, 60, 20),
		timed("wed-bike", "Bike Sprint", constants.CategoryCardio, 4, 30, 60),
	)
	set(constants.DayFri,
		weighted("fri-lunge", "Walking Lunge", constants.CategoryLegs, 3, 12, 60, 0),
		weighted("fri-curl", "Bicep Curl", constants.CategoryArms, 3, 12, 45, 10),
		bodyweight("fri-dips", "Dips", constants.CategoryArms, 3, 10, 60),
		timed("fri-burpees", "Burpees", constants.CategoryFullBody, 3, 40, 45),
	)

	return plan
}

func weighted(id, name string, c constants.Category, sets, reps, rest int, target float64) models.Exercise {
	return models.Exercise{
		ID:           id,
		Name:         name,
		Type:         constants.TypeWeights,
		Sets:         sets,
		Reps:         models.IntPtr(reps),
		RestSeconds:  rest,
		TargetWeight: models.FloatPtr(target),
		Category:     c,
	}
}

func bodyweight(id, name string, c constants.Category, sets, reps, rest int) models.Exercise {
	return models.Exercise{
		ID:          id,
		Name:        name,
		Type:        constants.TypeBodyweight,
		Sets:        sets,
		Reps:        models.IntPtr(reps),
		RestSeconds: rest,
		Category:    c,
	}
}

func timed(id, name string, c constants.Category, sets, secs, rest int) models.Exercise {
	return models.Exercise{
		ID:              id,
		Name:            name,
		Type:            constants.TypeTimeBased,
		Sets:            sets,
		DurationSeconds: models.IntPtr(secs),
		RestSeconds:     rest,
		Category:        c,
	}
}
