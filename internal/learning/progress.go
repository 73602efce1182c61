package learning

import (
	"time"

	"github.com/tanvir/vocabflash/internal/models"
)

// Mastery adjustments per review outcome.
const (
	masteryGain = 10
	masteryLoss = 5
)

// NextMastery applies one review outcome to a mastery level, clamped to
// [0, 100]. Correct answers gain 10, incorrect lose 5.
func NextMastery(prev int, wasCorrect bool) int {
	next := prev - masteryLoss
	if wasCorrect {
		next = prev + masteryGain
	}
	if next < 0 {
		return 0
	}
	if next > 100 {
		return 100
	}
	return next
}

// StatusForMastery maps a mastery level to a card status via fixed
// thresholds. Not monotonic over a card's life: mastery can drop and move
// the status backward.
func StatusForMastery(mastery int) models.FlashcardStatus {
	switch {
	case mastery >= 80:
		return models.StatusMastered
	case mastery >= 50:
		return models.StatusReviewing
	case mastery >= 20:
		return models.StatusLearning
	default:
		return models.StatusNew
	}
}

// NextStreak computes the study streak after a study action at now.
// Studying again the same day leaves the streak unchanged; studying the day
// after the last study extends it; any gap (or a first-ever study) resets
// to 1.
func NextStreak(lastStudy *time.Time, now time.Time, current int) int {
	if lastStudy == nil {
		return 1
	}

	today := dateOf(now)
	last := dateOf(*lastStudy)

	switch {
	case last.Equal(today):
		return current
	case last.Equal(today.AddDate(0, 0, -1)):
		return current + 1
	default:
		return 1
	}
}

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
