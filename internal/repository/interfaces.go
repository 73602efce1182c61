package repository

import (
	"context"

	"github.com/tanvir/vocabflash/internal/models"
)

// UserRepository handles user data access
type UserRepository interface {
	Get(ctx context.Context, id int64) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	Upsert(ctx context.Context, username string) (*models.User, error)
}

// ProjectRepository handles project and project-file data access
type ProjectRepository interface {
	Insert(ctx context.Context, project models.Project) (int64, error)
	Get(ctx context.Context, id int64) (*models.Project, error)
	ListByUser(ctx context.Context, userID int64) ([]models.Project, error)
	UpdateStatus(ctx context.Context, id int64, status string) error

	InsertFile(ctx context.Context, file models.ProjectFile) (int64, error)
	FilesByIDs(ctx context.Context, projectID int64, fileIDs []int64) ([]models.ProjectFile, error)
	UpdateFileStatus(ctx context.Context, fileID int64, status string) error
}

// WordRepository handles vocabulary data access
type WordRepository interface {
	// Insert adds one word, skipping duplicates of (project_id, word).
	// The returned flag reports whether a row was actually created.
	Insert(ctx context.Context, word models.Word) (bool, error)
	List(ctx context.Context, filter models.WordFilter) ([]models.Word, error)
	Count(ctx context.Context, filter models.WordFilter) (int, error)
	ListByProject(ctx context.Context, projectID int64) ([]models.Word, error)
	DeleteByProject(ctx context.Context, projectID int64) error
}

// FlashcardRepository handles flashcard data access
type FlashcardRepository interface {
	Insert(ctx context.Context, card models.Flashcard) (int64, error)
	Get(ctx context.Context, id, userID int64) (*models.Flashcard, error)
	GetByWord(ctx context.Context, userID, wordID int64) (*models.Flashcard, error)
	Update(ctx context.Context, card models.Flashcard) error
	Due(ctx context.Context, userID int64, limit int) ([]models.FlashcardWithWord, error)
	CountByUser(ctx context.Context, userID int64) (int, error)
	CountByStatus(ctx context.Context, userID int64) (map[models.FlashcardStatus]int, error)
	InsertReview(ctx context.Context, review models.Review) error
}

// ProgressRepository handles learning progress and achievements
type ProgressRepository interface {
	GetOrCreate(ctx context.Context, userID int64) (*models.LearningProgress, error)
	Update(ctx context.Context, progress models.LearningProgress) error
	Achievements(ctx context.Context, progressID int64) ([]models.Achievement, error)
	InsertAchievement(ctx context.Context, achievement models.Achievement) error
}
