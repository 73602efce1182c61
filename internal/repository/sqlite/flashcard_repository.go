package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/tanvir/vocabflash/internal/logger"
	"github.com/tanvir/vocabflash/internal/models"
	"github.com/tanvir/vocabflash/internal/repository"
)

type flashcardRepository struct {
	db *sql.DB
}

// NewFlashcardRepository creates a new FlashcardRepository implementation
func NewFlashcardRepository(db *sql.DB) repository.FlashcardRepository {
	return &flashcardRepository{db: db}
}

func (r *flashcardRepository) Insert(ctx context.Context, c models.Flashcard) (int64, error) {
	log := logger.FromContext(ctx).WithPrefix("flashcard_repo")
	log.Debug("inserting flashcard: user_id=%d, word_id=%d", c.UserID, c.WordID)

	status := c.Status
	if status == "" {
		status = models.StatusNew
	}
	res, err := r.db.ExecContext(ctx, `
INSERT INTO flashcards (
    user_id, word_id, front_content, back_content, status,
    mastery_level, difficulty_factor, review_count, interval_days, next_review_at
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(user_id, word_id) DO NOTHING
`, c.UserID, c.WordID, c.FrontContent, c.BackContent, status,
		c.MasteryLevel, c.DifficultyFactor, c.ReviewCount, c.IntervalDays, c.NextReviewAt)
	if err != nil {
		log.Error("failed to insert flashcard: %v", err)
		return 0, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	if affected == 0 {
		// Card already exists for this word, reuse it.
		var id int64
		err = r.db.QueryRowContext(ctx, `
SELECT id FROM flashcards WHERE user_id = ? AND word_id = ?
`, c.UserID, c.WordID).Scan(&id)
		if err != nil {
			log.Error("failed to get existing flashcard id: %v", err)
			return 0, err
		}
		log.Debug("flashcard exists: id=%d", id)
		return id, nil
	}
	id, err := res.LastInsertId()
	if err != nil {
		log.Error("failed to get flashcard id: %v", err)
		return 0, err
	}
	log.Debug("flashcard inserted: id=%d", id)
	return id, nil
}

func (r *flashcardRepository) Get(ctx context.Context, id, userID int64) (*models.Flashcard, error) {
	log := logger.FromContext(ctx).WithPrefix("flashcard_repo")

	var c models.Flashcard
	err := r.db.QueryRowContext(ctx, `
SELECT id, user_id, word_id, front_content, back_content, status, mastery_level,
       difficulty_factor, review_count, interval_days, next_review_at, last_reviewed_at, created_at
FROM flashcards
WHERE id = ? AND user_id = ?
`, id, userID).Scan(&c.ID, &c.UserID, &c.WordID, &c.FrontContent, &c.BackContent, &c.Status, &c.MasteryLevel,
		&c.DifficultyFactor, &c.ReviewCount, &c.IntervalDays, &c.NextReviewAt, &c.LastReviewedAt, &c.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("flashcard not found: id=%d, user_id=%d", id, userID)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get flashcard: %v", err)
		return nil, err
	}
	return &c, nil
}

func (r *flashcardRepository) GetByWord(ctx context.Context, userID, wordID int64) (*models.Flashcard, error) {
	log := logger.FromContext(ctx).WithPrefix("flashcard_repo")

	var c models.Flashcard
	err := r.db.QueryRowContext(ctx, `
SELECT id, user_id, word_id, front_content, back_content, status, mastery_level,
       difficulty_factor, review_count, interval_days, next_review_at, last_reviewed_at, created_at
FROM flashcards
WHERE user_id = ? AND word_id = ?
`, userID, wordID).Scan(&c.ID, &c.UserID, &c.WordID, &c.FrontContent, &c.BackContent, &c.Status, &c.MasteryLevel,
		&c.DifficultyFactor, &c.ReviewCount, &c.IntervalDays, &c.NextReviewAt, &c.LastReviewedAt, &c.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get flashcard by word: %v", err)
		return nil, err
	}
	return &c, nil
}

func (r *flashcardRepository) Update(ctx context.Context, c models.Flashcard) error {
	log := logger.FromContext(ctx).WithPrefix("flashcard_repo")
	log.Debug("updating flashcard: id=%d, status=%s, mastery=%d", c.ID, c.Status, c.MasteryLevel)

	_, err := r.db.ExecContext(ctx, `
UPDATE flashcards
SET status = ?, mastery_level = ?, difficulty_factor = ?, review_count = ?,
    interval_days = ?, next_review_at = ?, last_reviewed_at = ?
WHERE id = ?
`, c.Status, c.MasteryLevel, c.DifficultyFactor, c.ReviewCount,
		c.IntervalDays, c.NextReviewAt, c.LastReviewedAt, c.ID)
	if err != nil {
		log.Error("failed to update flashcard: %v", err)
	}
	return err
}

func (r *flashcardRepository) Due(ctx context.Context, userID int64, limit int) ([]models.FlashcardWithWord, error) {
	log := logger.FromContext(ctx).WithPrefix("flashcard_repo")
	log.Debug("listing due flashcards: user_id=%d, limit=%d", userID, limit)

	if limit <= 0 {
		limit = 20
	}
	rows, err := r.db.QueryContext(ctx, `
SELECT f.id, f.user_id, f.word_id, f.front_content, f.back_content, f.status, f.mastery_level,
       f.difficulty_factor, f.review_count, f.interval_days, f.next_review_at, f.last_reviewed_at, f.created_at,
       w.word, w.frequency, w.language
FROM flashcards f
JOIN words w ON w.id = f.word_id
WHERE f.user_id = ? AND f.next_review_at <= CURRENT_TIMESTAMP
ORDER BY f.next_review_at ASC
LIMIT ?
`, userID, limit)
	if err != nil {
		log.Error("failed to list due flashcards: %v", err)
		return nil, err
	}
	defer rows.Close()

	var cards []models.FlashcardWithWord
	for rows.Next() {
		var c models.FlashcardWithWord
		if err := rows.Scan(&c.ID, &c.UserID, &c.WordID, &c.FrontContent, &c.BackContent, &c.Status, &c.MasteryLevel,
			&c.DifficultyFactor, &c.ReviewCount, &c.IntervalDays, &c.NextReviewAt, &c.LastReviewedAt, &c.CreatedAt,
			&c.Word, &c.Frequency, &c.Language); err != nil {
			log.Error("failed to scan due flashcard row: %v", err)
			return nil, err
		}
		cards = append(cards, c)
	}
	log.Debug("found %d due flashcards", len(cards))
	return cards, rows.Err()
}

func (r *flashcardRepository) CountByUser(ctx context.Context, userID int64) (int, error) {
	log := logger.FromContext(ctx).WithPrefix("flashcard_repo")

	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM flashcards WHERE user_id = ?`, userID).Scan(&count)
	if err != nil {
		log.Error("failed to count flashcards: %v", err)
		return 0, err
	}
	return count, nil
}

func (r *flashcardRepository) CountByStatus(ctx context.Context, userID int64) (map[models.FlashcardStatus]int, error) {
	log := logger.FromContext(ctx).WithPrefix("flashcard_repo")

	rows, err := r.db.QueryContext(ctx, `
SELECT status, COUNT(*) FROM flashcards WHERE user_id = ? GROUP BY status
`, userID)
	if err != nil {
		log.Error("failed to count flashcards by status: %v", err)
		return nil, err
	}
	defer rows.Close()

	counts := make(map[models.FlashcardStatus]int)
	for rows.Next() {
		var status models.FlashcardStatus
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}
	return counts, rows.Err()
}

func (r *flashcardRepository) InsertReview(ctx context.Context, rv models.Review) error {
	log := logger.FromContext(ctx).WithPrefix("flashcard_repo")
	log.Debug("inserting review: flashcard_id=%d, correct=%t, quality=%d", rv.FlashcardID, rv.WasCorrect, rv.QualityScore)

	_, err := r.db.ExecContext(ctx, `
INSERT INTO reviews (flashcard_id, was_correct, quality_score, next_review_at, reviewed_at)
VALUES (?, ?, ?, ?, ?)
`, rv.FlashcardID, rv.WasCorrect, rv.QualityScore, rv.NextReviewAt, rv.ReviewedAt)
	if err != nil {
		log.Error("failed to insert review: %v", err)
	}
	return err
}
