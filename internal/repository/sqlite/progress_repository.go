package sqlite

import (
	"context"
	"database/sql"

	"github.com/tanvir/vocabflash/internal/logger"
	"github.com/tanvir/vocabflash/internal/models"
	"github.com/tanvir/vocabflash/internal/repository"
)

type progressRepository struct {
	db *sql.DB
}

// NewProgressRepository creates a new ProgressRepository implementation
func NewProgressRepository(db *sql.DB) repository.ProgressRepository {
	return &progressRepository{db: db}
}

func (r *progressRepository) GetOrCreate(ctx context.Context, userID int64) (*models.LearningProgress, error) {
	log := logger.FromContext(ctx).WithPrefix("progress_repo")

	_, err := r.db.ExecContext(ctx, `
INSERT INTO learning_progress (user_id) VALUES (?) ON CONFLICT(user_id) DO NOTHING
`, userID)
	if err != nil {
		log.Error("failed to ensure progress row: %v", err)
		return nil, err
	}

	var p models.LearningProgress
	err = r.db.QueryRowContext(ctx, `
SELECT id, user_id, current_streak, longest_streak, last_study_date, today_studied,
       daily_goal, total_study_time, total_quizzes_attempted, total_quizzes_correct
FROM learning_progress
WHERE user_id = ?
`, userID).Scan(&p.ID, &p.UserID, &p.CurrentStreak, &p.LongestStreak, &p.LastStudyDate, &p.TodayStudied,
		&p.DailyGoal, &p.TotalStudyTime, &p.TotalQuizzesAttempted, &p.TotalQuizzesCorrect)
	if err != nil {
		log.Error("failed to load progress: %v", err)
		return nil, err
	}
	return &p, nil
}

func (r *progressRepository) Update(ctx context.Context, p models.LearningProgress) error {
	log := logger.FromContext(ctx).WithPrefix("progress_repo")
	log.Debug("updating progress: user_id=%d, streak=%d", p.UserID, p.CurrentStreak)

	_, err := r.db.ExecContext(ctx, `
UPDATE learning_progress
SET current_streak = ?, longest_streak = ?, last_study_date = ?, today_studied = ?,
    daily_goal = ?, total_study_time = ?, total_quizzes_attempted = ?, total_quizzes_correct = ?
WHERE id = ?
`, p.CurrentStreak, p.LongestStreak, p.LastStudyDate, p.TodayStudied,
		p.DailyGoal, p.TotalStudyTime, p.TotalQuizzesAttempted, p.TotalQuizzesCorrect, p.ID)
	if err != nil {
		log.Error("failed to update progress: %v", err)
	}
	return err
}

func (r *progressRepository) Achievements(ctx context.Context, progressID int64) ([]models.Achievement, error) {
	log := logger.FromContext(ctx).WithPrefix("progress_repo")

	rows, err := r.db.QueryContext(ctx, `
SELECT id, progress_id, badge, title, description, unlocked_at
FROM achievements
WHERE progress_id = ?
ORDER BY unlocked_at ASC
`, progressID)
	if err != nil {
		log.Error("failed to list achievements: %v", err)
		return nil, err
	}
	defer rows.Close()

	var achievements []models.Achievement
	for rows.Next() {
		var a models.Achievement
		if err := rows.Scan(&a.ID, &a.ProgressID, &a.Badge, &a.Title, &a.Description, &a.UnlockedAt); err != nil {
			return nil, err
		}
		achievements = append(achievements, a)
	}
	return achievements, rows.Err()
}

func (r *progressRepository) InsertAchievement(ctx context.Context, a models.Achievement) error {
	log := logger.FromContext(ctx).WithPrefix("progress_repo")
	log.Debug("unlocking achievement: progress_id=%d, badge=%s", a.ProgressID, a.Badge)

	_, err := r.db.ExecContext(ctx, `
INSERT INTO achievements (progress_id, badge, title, description)
VALUES (?, ?, ?, ?)
ON CONFLICT(progress_id, badge) DO NOTHING
`, a.ProgressID, a.Badge, a.Title, a.Description)
	if err != nil {
		log.Error("failed to insert achievement: %v", err)
	}
	return err
}
