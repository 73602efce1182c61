package learning

// Badge identifies an achievement.
type Badge string

const (
	BadgeFirstCard     Badge = "FIRST_CARD"
	BadgeFirst10       Badge = "FIRST_10"
	BadgeFirst50       Badge = "FIRST_50"
	BadgeFirst100      Badge = "FIRST_100"
	BadgeDailyStreak7  Badge = "DAILY_STREAK_7"
	BadgeDailyStreak30 Badge = "DAILY_STREAK_30"
	BadgeQuizMaster    Badge = "QUIZ_MASTER"
)

// BadgeDef is the display metadata for a badge.
type BadgeDef struct {
	Title       string
	Description string
}

// Definitions holds the display metadata for every badge.
var Definitions = map[Badge]BadgeDef{
	BadgeFirstCard:     {Title: "First Step", Description: "Created your first flashcard"},
	BadgeFirst10:       {Title: "Beginner", Description: "Created 10 flashcards"},
	BadgeFirst50:       {Title: "Enthusiast", Description: "Created 50 flashcards"},
	BadgeFirst100:      {Title: "Committed Learner", Description: "Created 100 flashcards"},
	BadgeDailyStreak7:  {Title: "On Fire", Description: "Studied for 7 consecutive days"},
	BadgeDailyStreak30: {Title: "Unstoppable", Description: "Studied for 30 consecutive days"},
	BadgeQuizMaster:    {Title: "Quiz Master", Description: "Answered 100 quiz questions correctly"},
}

// Counts are the aggregate numbers achievements are checked against.
type Counts struct {
	Flashcards     int
	CurrentStreak  int
	QuizzesCorrect int
}

type threshold struct {
	badge Badge
	meets func(Counts) bool
}

var thresholds = []threshold{
	{BadgeFirstCard, func(c Counts) bool { return c.Flashcards >= 1 }},
	{BadgeFirst10, func(c Counts) bool { return c.Flashcards >= 10 }},
	{BadgeFirst50, func(c Counts) bool { return c.Flashcards >= 50 }},
	{BadgeFirst100, func(c Counts) bool { return c.Flashcards >= 100 }},
	{BadgeDailyStreak7, func(c Counts) bool { return c.CurrentStreak >= 7 }},
	{BadgeDailyStreak30, func(c Counts) bool { return c.CurrentStreak >= 30 }},
	{BadgeQuizMaster, func(c Counts) bool { return c.QuizzesCorrect >= 100 }},
}

// EvaluateAchievements returns the badges newly earned given the current
// counts and the set already unlocked. Idempotent: re-running with unchanged
// counts returns nothing new.
func EvaluateAchievements(counts Counts, unlocked map[Badge]bool) []Badge {
	var earned []Badge
	for _, t := range thresholds {
		if unlocked[t.badge] {
			continue
		}
		if t.meets(counts) {
			earned = append(earned, t.badge)
		}
	}
	return earned
}
