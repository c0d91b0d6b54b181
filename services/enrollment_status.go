package services

import (
	"math"

	"github.com/CPU-commits/Intranet_BLearning/funct"
	"github.com/CPU-commits/Intranet_BLearning/models"
)

var transitions = map[string][]string{
	models.ENROLLMENT_ACTIVE:  {models.ENROLLMENT_PAUSED, models.ENROLLMENT_DROPPED},
	models.ENROLLMENT_PAUSED:  {models.ENROLLMENT_ACTIVE, models.ENROLLMENT_DROPPED},
	models.ENROLLMENT_DROPPED: {models.ENROLLMENT_ACTIVE},
}

// CanTransition reports whether a user may move an enrollment from one
// status to another. Completed is reached through progress only.
func CanTransition(from, to string) bool {
	return funct.Some(transitions[from], func(status string) bool {
		return status == to
	})
}

// ProgressPercent rounds completed over total to a 0..100 percentage
func ProgressPercent(completed, total int) int {
	if total <= 0 || completed <= 0 {
		return 0
	}
	percent := int(math.Round(float64(completed) / float64(total) * 100))
	if percent > 100 {
		return 100
	}
	return percent
}
