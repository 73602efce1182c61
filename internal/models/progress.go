package models

import "time"

// LearningProgress is the per-user aggregate learning state: streaks, daily
// counters, and quiz totals. One row per user.
type LearningProgress struct {
	ID                    int64      `json:"id"`
	UserID                int64      `json:"user_id"`
	CurrentStreak         int        `json:"current_streak"`
	LongestStreak         int        `json:"longest_streak"`
	LastStudyDate         *time.Time `json:"last_study_date"`
	TodayStudied          int        `json:"today_studied"`
	DailyGoal             int        `json:"daily_goal"`
	TotalStudyTime        int        `json:"total_study_time"`
	TotalQuizzesAttempted int        `json:"total_quizzes_attempted"`
	TotalQuizzesCorrect   int        `json:"total_quizzes_correct"`
}

// Dashboard aggregates a user's learning state for the overview endpoint.
type Dashboard struct {
	Progress      LearningProgress        `json:"progress"`
	TotalCards    int                     `json:"total_cards"`
	CardsByStatus map[FlashcardStatus]int `json:"cards_by_status"`
	DueCards      int                     `json:"due_cards"`
	Achievements  []Achievement           `json:"achievements"`
}

// QuizQuestion is one generated multiple-choice item. The answer is included
// so clients can grade locally and report the outcome via the quiz answer
// endpoint.
type QuizQuestion struct {
	WordID  int64    `json:"word_id"`
	Word    string   `json:"word"`
	Options []string `json:"options"`
	Answer  string   `json:"answer"`
}

type Achievement struct {
	ID          int64     `json:"id"`
	ProgressID  int64     `json:"progress_id"`
	Badge       string    `json:"badge"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	UnlockedAt  time.Time `json:"unlocked_at"`
}
