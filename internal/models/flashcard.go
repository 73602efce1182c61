package models

import "time"

// FlashcardStatus tracks how well a card is learned. Transitions follow the
// mastery level and are not monotonic: a poor review can move a card backward.
type FlashcardStatus string

const (
	StatusNew       FlashcardStatus = "NEW"
	StatusLearning  FlashcardStatus = "LEARNING"
	StatusReviewing FlashcardStatus = "REVIEWING"
	StatusMastered  FlashcardStatus = "MASTERED"
)

type Flashcard struct {
	ID               int64           `json:"id"`
	UserID           int64           `json:"user_id"`
	WordID           int64           `json:"word_id"`
	FrontContent     string          `json:"front_content"`
	BackContent      string          `json:"back_content"`
	Status           FlashcardStatus `json:"status"`
	MasteryLevel     int             `json:"mastery_level"`
	DifficultyFactor float64         `json:"difficulty_factor"`
	ReviewCount      int             `json:"review_count"`
	IntervalDays     int             `json:"interval_days"`
	NextReviewAt     time.Time       `json:"next_review_at"`
	LastReviewedAt   *time.Time      `json:"last_reviewed_at"`
	CreatedAt        time.Time       `json:"created_at"`
}

type FlashcardWithWord struct {
	Flashcard
	Word      string `json:"word"`
	Frequency int    `json:"frequency"`
	Language  string `json:"language"`
}

// Review is one recorded review event for a flashcard.
type Review struct {
	ID           int64     `json:"id"`
	FlashcardID  int64     `json:"flashcard_id"`
	WasCorrect   bool      `json:"was_correct"`
	QualityScore int       `json:"quality_score"`
	NextReviewAt time.Time `json:"next_review_at"`
	ReviewedAt   time.Time `json:"reviewed_at"`
}
