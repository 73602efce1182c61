package services

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/tanvir/vocabflash/internal/errors"
	"github.com/tanvir/vocabflash/internal/learning"
	"github.com/tanvir/vocabflash/internal/logger"
	"github.com/tanvir/vocabflash/internal/models"
	"github.com/tanvir/vocabflash/internal/repository"
	"github.com/tanvir/vocabflash/internal/scheduler"
)

// LearningService handles flashcard study flow and progress tracking
type LearningService interface {
	GenerateFlashcards(ctx context.Context, userID, projectID int64, limit int) (int, error)
	DueFlashcards(ctx context.Context, userID int64, limit int) ([]models.FlashcardWithWord, error)
	RecordReview(ctx context.Context, userID, flashcardID int64, wasCorrect bool, quality int) (*models.Flashcard, error)
	GenerateQuiz(ctx context.Context, projectID int64, count int) ([]models.QuizQuestion, error)
	RecordQuizAnswer(ctx context.Context, userID int64, wasCorrect bool) error
	Dashboard(ctx context.Context, userID int64) (*models.Dashboard, error)
}

type learningService struct {
	flashcards repository.FlashcardRepository
	words      repository.WordRepository
	progress   repository.ProgressRepository
	now        func() time.Time
	rng        *rand.Rand
}

// NewLearningService creates a new LearningService
func NewLearningService(
	flashcards repository.FlashcardRepository,
	words repository.WordRepository,
	progress repository.ProgressRepository,
) LearningService {
	return &learningService{
		flashcards: flashcards,
		words:      words,
		progress:   progress,
		now:        time.Now,
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// GenerateFlashcards creates one card per vocabulary word of a project, most
// frequent words first. Words that already have a card are left untouched, so
// regeneration is safe. Returns how many cards were newly created.
func (s *learningService) GenerateFlashcards(ctx context.Context, userID, projectID int64, limit int) (int, error) {
	log := logger.FromContext(ctx)
	log.Info("generating flashcards: user_id=%d, project_id=%d, limit=%d", userID, projectID, limit)

	filter := models.WordFilter{ProjectID: projectID, OrderBy: "frequency", OrderDir: "DESC"}
	if limit > 0 {
		filter.Limit = limit
	}
	words, err := s.words.List(ctx, filter)
	if err != nil {
		return 0, errors.NewInternalError(err)
	}
	if len(words) == 0 {
		return 0, errors.NewNotFoundError("words for project", projectID)
	}

	var created int
	for _, w := range words {
		existing, err := s.flashcards.GetByWord(ctx, userID, w.ID)
		if err != nil {
			return created, errors.NewInternalError(err)
		}
		if existing != nil {
			continue
		}
		_, err = s.flashcards.Insert(ctx, models.Flashcard{
			UserID:           userID,
			WordID:           w.ID,
			FrontContent:     w.Word,
			BackContent:      fmt.Sprintf("Define: %s", w.Word),
			Status:           models.StatusNew,
			DifficultyFactor: scheduler.DefaultDifficulty,
			NextReviewAt:     s.now(),
		})
		if err != nil {
			return created, errors.NewInternalError(err)
		}
		created++
	}

	if created > 0 {
		if err := s.checkAchievements(ctx, userID); err != nil {
			log.Warn("achievement check failed: %v", err)
		}
	}

	log.Info("flashcards generated: created=%d of %d words", created, len(words))
	return created, nil
}

func (s *learningService) DueFlashcards(ctx context.Context, userID int64, limit int) ([]models.FlashcardWithWord, error) {
	cards, err := s.flashcards.Due(ctx, userID, limit)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	return cards, nil
}

// RecordReview applies one review to a card: reschedules it, adjusts mastery
// and status, stores the review event, and updates streaks and achievements.
// Correctness and quality are independent inputs: mastery moves by wasCorrect
// while the schedule follows the quality score, and the two may disagree.
func (s *learningService) RecordReview(ctx context.Context, userID, flashcardID int64, wasCorrect bool, quality int) (*models.Flashcard, error) {
	log := logger.FromContext(ctx)
	log.Debug("recording review: flashcard_id=%d, was_correct=%t, quality=%d", flashcardID, wasCorrect, quality)

	if quality < 0 || quality > 5 {
		return nil, errors.NewValidationError("quality", "must be between 0 and 5")
	}

	card, err := s.flashcards.Get(ctx, flashcardID, userID)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	if card == nil {
		return nil, errors.NewNotFoundError("flashcard", flashcardID)
	}

	now := s.now()

	next := scheduler.NextAt(now, card.DifficultyFactor, card.IntervalDays, card.ReviewCount, quality)
	card.DifficultyFactor = next.DifficultyFactor
	card.IntervalDays = next.IntervalDays
	card.ReviewCount = next.ReviewCount
	card.NextReviewAt = next.NextReviewAt
	card.LastReviewedAt = &now
	card.MasteryLevel = learning.NextMastery(card.MasteryLevel, wasCorrect)
	card.Status = learning.StatusForMastery(card.MasteryLevel)

	if err := s.flashcards.Update(ctx, *card); err != nil {
		return nil, errors.NewInternalError(err)
	}

	if err := s.flashcards.InsertReview(ctx, models.Review{
		FlashcardID:  card.ID,
		WasCorrect:   wasCorrect,
		QualityScore: quality,
		NextReviewAt: next.NextReviewAt,
		ReviewedAt:   now,
	}); err != nil {
		// The card update already landed; losing one history row is not
		// worth failing the review.
		log.Warn("failed to store review event: %v", err)
	}

	if err := s.recordStudyActivity(ctx, userID, now); err != nil {
		log.Warn("failed to update study progress: %v", err)
	}

	log.Debug("review recorded: status=%s, mastery=%d, next_review=%s",
		card.Status, card.MasteryLevel, card.NextReviewAt.Format(time.RFC3339))
	return card, nil
}

// GenerateQuiz builds multiple-choice questions over a project's vocabulary,
// most frequent words first, with distractors drawn from the same project.
func (s *learningService) GenerateQuiz(ctx context.Context, projectID int64, count int) ([]models.QuizQuestion, error) {
	words, err := s.words.List(ctx, models.WordFilter{
		ProjectID: projectID,
		OrderBy:   "frequency",
		OrderDir:  "DESC",
	})
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	if len(words) < learning.QuizOptionCount {
		return nil, errors.NewValidationError("project",
			fmt.Sprintf("needs at least %d extracted words for a quiz", learning.QuizOptionCount))
	}

	questions := learning.BuildQuiz(words, count, s.rng)
	logger.FromContext(ctx).Debug("quiz generated: project_id=%d, questions=%d", projectID, len(questions))
	return questions, nil
}

// RecordQuizAnswer updates quiz totals and re-checks quiz achievements.
func (s *learningService) RecordQuizAnswer(ctx context.Context, userID int64, wasCorrect bool) error {
	progress, err := s.progress.GetOrCreate(ctx, userID)
	if err != nil {
		return errors.NewInternalError(err)
	}

	progress.TotalQuizzesAttempted++
	if wasCorrect {
		progress.TotalQuizzesCorrect++
	}
	if err := s.progress.Update(ctx, *progress); err != nil {
		return errors.NewInternalError(err)
	}

	if err := s.checkAchievements(ctx, userID); err != nil {
		logger.FromContext(ctx).Warn("achievement check failed: %v", err)
	}
	return nil
}

func (s *learningService) Dashboard(ctx context.Context, userID int64) (*models.Dashboard, error) {
	progress, err := s.progress.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}

	total, err := s.flashcards.CountByUser(ctx, userID)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	byStatus, err := s.flashcards.CountByStatus(ctx, userID)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	due, err := s.flashcards.Due(ctx, userID, 1000)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	achievements, err := s.progress.Achievements(ctx, progress.ID)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}

	return &models.Dashboard{
		Progress:      *progress,
		TotalCards:    total,
		CardsByStatus: byStatus,
		DueCards:      len(due),
		Achievements:  achievements,
	}, nil
}

// recordStudyActivity advances streak state for one study action at now.
func (s *learningService) recordStudyActivity(ctx context.Context, userID int64, now time.Time) error {
	progress, err := s.progress.GetOrCreate(ctx, userID)
	if err != nil {
		return err
	}

	sameDay := progress.LastStudyDate != nil &&
		progress.LastStudyDate.Year() == now.Year() &&
		progress.LastStudyDate.YearDay() == now.YearDay()

	progress.CurrentStreak = learning.NextStreak(progress.LastStudyDate, now, progress.CurrentStreak)
	if progress.CurrentStreak > progress.LongestStreak {
		progress.LongestStreak = progress.CurrentStreak
	}
	if sameDay {
		progress.TodayStudied++
	} else {
		progress.TodayStudied = 1
	}
	progress.LastStudyDate = &now

	if err := s.progress.Update(ctx, *progress); err != nil {
		return err
	}
	return s.checkAchievements(ctx, userID)
}

// checkAchievements evaluates all badge thresholds and unlocks anything newly
// earned. Safe to call repeatedly; already unlocked badges are skipped.
func (s *learningService) checkAchievements(ctx context.Context, userID int64) error {
	progress, err := s.progress.GetOrCreate(ctx, userID)
	if err != nil {
		return err
	}
	cardCount, err := s.flashcards.CountByUser(ctx, userID)
	if err != nil {
		return err
	}
	existing, err := s.progress.Achievements(ctx, progress.ID)
	if err != nil {
		return err
	}

	unlocked := make(map[learning.Badge]bool, len(existing))
	for _, a := range existing {
		unlocked[learning.Badge(a.Badge)] = true
	}

	earned := learning.EvaluateAchievements(learning.Counts{
		Flashcards:     cardCount,
		CurrentStreak:  progress.CurrentStreak,
		QuizzesCorrect: progress.TotalQuizzesCorrect,
	}, unlocked)

	for _, badge := range earned {
		def := learning.Definitions[badge]
		if err := s.progress.InsertAchievement(ctx, models.Achievement{
			ProgressID:  progress.ID,
			Badge:       string(badge),
			Title:       def.Title,
			Description: def.Description,
		}); err != nil {
			return err
		}
		logger.FromContext(ctx).Info("achievement unlocked: user_id=%d, badge=%s", userID, badge)
	}
	return nil
}
