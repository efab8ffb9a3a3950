package utils

import (
	"fmt"
	"strconv"

	"github.com/julianstephens/weeklift/internal/constants"
	"github.com/julianstephens/weeklift/internal/models"
)

// BodyWeightLabel is shown for an explicit target weight of 0
const BodyWeightLabel = "Body Weight 🏋️‍♂️"

// FormatWeight renders a weight without trailing zeros, e.g. 40 or 22.5
func FormatWeight(w float64) string {
	return strconv.FormatFloat(w, 'f', -1, 64)
}

// FormatTarget renders a target weight: the body-weight label for 0, "-" when absent
func FormatTarget(w *float64) string {
	switch {
	case w == nil:
		return "-"
	case *w == 0:
		return BodyWeightLabel
	default:
		return FormatWeight(*w) + " kg"
	}
}

// FormatSeconds renders a countdown as MM:SSs, e.g. 04:44s
func FormatSeconds(total int) string {
	if total < 0 {
		total = 0
	}
	return fmt.Sprintf("%02d:%02ds", total/60, total%60)
}

// FormatRepsOrSeconds renders the reps/seconds column of an exercise
func FormatRepsOrSeconds(e models.Exercise) string {
	if e.Type == constants.TypeTimeBased {
		if e.DurationSeconds == nil {
			return "-"
		}
		return fmt.Sprintf("%ds", *e.DurationSeconds)
	}
	if e.Reps == nil {
		return "-"
	}
	return fmt.Sprintf("%d reps", *e.Reps)
}
