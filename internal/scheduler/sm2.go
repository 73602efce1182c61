package scheduler

import (
	"math"
	"time"
)

// Difficulty factor bounds. New cards start at DefaultDifficulty.
const (
	MinDifficulty     = 1.3
	MaxDifficulty     = 2.5
	DefaultDifficulty = 2.5
)

// Schedule is the result of applying one review to a card's prior state.
type Schedule struct {
	NextReviewAt     time.Time `json:"next_review_at"`
	DifficultyFactor float64   `json:"difficulty_factor"`
	ReviewCount      int       `json:"review_count"`
	IntervalDays     int       `json:"interval_days"`
}

// Next applies the SM-2 variant to a card's prior difficulty, interval, and
// repetition count given a 0-5 quality score.
//
// Quality scale:
//
//	0: complete blackout, wrong answer
//	1: incorrect answer but remembered something
//	2: incorrect answer but felt familiar
//	3: correct answer with serious difficulty
//	4: correct answer with some difficulty
//	5: perfect answer with instant recognition
func Next(prevDifficulty float64, prevIntervalDays, prevRepetitions, quality int) Schedule {
	return NextAt(time.Now(), prevDifficulty, prevIntervalDays, prevRepetitions, quality)
}

// NextAt is Next with an explicit clock. Pure and deterministic: the same
// inputs always produce the same schedule.
func NextAt(now time.Time, prevDifficulty float64, prevIntervalDays, prevRepetitions, quality int) Schedule {
	// The difficulty update and clamp happen before the interval branch
	// reads the new value.
	miss := float64(5 - quality)
	difficulty := prevDifficulty + 0.1 - miss*(0.08+miss*0.02)
	if difficulty < MinDifficulty {
		difficulty = MinDifficulty
	}
	if difficulty > MaxDifficulty {
		difficulty = MaxDifficulty
	}

	var interval, repetitions int
	if quality < 3 {
		// A wrong or weak answer resets the schedule to tomorrow
		// regardless of history.
		repetitions = 0
		interval = 1
	} else {
		repetitions = prevRepetitions + 1
		switch repetitions {
		case 1:
			interval = 1
		case 2:
			interval = 3
		default:
			// The previous interval is multiplied, not the one
			// before it; interval state must be threaded exactly.
			interval = int(math.Round(float64(prevIntervalDays) * difficulty))
		}
	}

	return Schedule{
		NextReviewAt:     now.AddDate(0, 0, interval),
		DifficultyFactor: difficulty,
		ReviewCount:      repetitions,
		IntervalDays:     interval,
	}
}
