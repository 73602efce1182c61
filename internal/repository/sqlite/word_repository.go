package sqlite

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/tanvir/vocabflash/internal/logger"
	"github.com/tanvir/vocabflash/internal/models"
	"github.com/tanvir/vocabflash/internal/repository"
)

type wordRepository struct {
	db *sql.DB
}

// NewWordRepository creates a new WordRepository implementation
func NewWordRepository(db *sql.DB) repository.WordRepository {
	return &wordRepository{db: db}
}

func (r *wordRepository) Insert(ctx context.Context, w models.Word) (bool, error) {
	log := logger.FromContext(ctx).WithPrefix("word_repo")

	res, err := r.db.ExecContext(ctx, `
INSERT INTO words (project_id, word, frequency, word_length, language)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT(project_id, word) DO NOTHING
`, w.ProjectID, w.Word, w.Frequency, w.WordLength, w.Language)
	if err != nil {
		log.Error("failed to insert word %q: %v", w.Word, err)
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		log.Error("failed to read rows affected: %v", err)
		return false, err
	}
	if affected == 0 {
		log.Debug("word already exists, skipped: project_id=%d, word=%s", w.ProjectID, w.Word)
		return false, nil
	}
	return true, nil
}

func (r *wordRepository) List(ctx context.Context, filter models.WordFilter) ([]models.Word, error) {
	log := logger.FromContext(ctx).WithPrefix("word_repo")
	log.Debug("listing words with filter: project_id=%d, language=%s, min_frequency=%d, search=%s",
		filter.ProjectID, filter.Language, filter.MinFrequency, filter.Search)

	query := sqlBuilder.Select(
		"id", "project_id", "word", "frequency", "word_length", "language", "created_at",
	).From("words")

	query = applyWordFilter(query, filter)

	// Safe ORDER BY with validation
	orderBy := "frequency"
	switch filter.OrderBy {
	case "word", "frequency", "word_length", "created_at":
		orderBy = filter.OrderBy
	}
	orderDir := "DESC"
	if filter.OrderDir == "ASC" {
		orderDir = "ASC"
	}
	query = query.OrderBy(orderBy + " " + orderDir)

	// Pagination
	limit := filter.Limit
	if limit <= 0 {
		limit = 200
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}
	query = query.Limit(uint64(limit)).Offset(uint64(offset))

	sql, args, err := query.ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sql, args...)
	if err != nil {
		log.Error("failed to list words: %v", err)
		return nil, err
	}
	defer rows.Close()

	var words []models.Word
	for rows.Next() {
		var w models.Word
		if err := rows.Scan(&w.ID, &w.ProjectID, &w.Word, &w.Frequency, &w.WordLength, &w.Language, &w.CreatedAt); err != nil {
			log.Error("failed to scan word row: %v", err)
			return nil, err
		}
		words = append(words, w)
	}
	log.Debug("found %d words", len(words))
	return words, rows.Err()
}

func (r *wordRepository) Count(ctx context.Context, filter models.WordFilter) (int, error) {
	log := logger.FromContext(ctx).WithPrefix("word_repo")

	query := sqlBuilder.Select("COUNT(*)").From("words")
	query = applyWordFilter(query, filter)

	sql, args, err := query.ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return 0, err
	}

	var count int
	err = r.db.QueryRowContext(ctx, sql, args...).Scan(&count)
	if err != nil {
		log.Error("failed to count words: %v", err)
		return 0, err
	}
	return count, nil
}

// applyWordFilter adds the same WHERE clauses to List and Count queries.
func applyWordFilter(query squirrel.SelectBuilder, filter models.WordFilter) squirrel.SelectBuilder {
	if filter.ProjectID != 0 {
		query = query.Where(squirrel.Eq{"project_id": filter.ProjectID})
	}
	if filter.Language != "" {
		query = query.Where(squirrel.Eq{"language": filter.Language})
	}
	if filter.MinFrequency > 0 {
		query = query.Where(squirrel.GtOrEq{"frequency": filter.MinFrequency})
	}
	if filter.Search != "" {
		query = query.Where(squirrel.Like{"word": "%" + filter.Search + "%"})
	}
	return query
}

func (r *wordRepository) ListByProject(ctx context.Context, projectID int64) ([]models.Word, error) {
	log := logger.FromContext(ctx).WithPrefix("word_repo")
	log.Debug("listing all words: project_id=%d", projectID)

	rows, err := r.db.QueryContext(ctx, `
SELECT id, project_id, word, frequency, word_length, language, created_at
FROM words
WHERE project_id = ?
ORDER BY frequency DESC, word ASC
`, projectID)
	if err != nil {
		log.Error("failed to list words: %v", err)
		return nil, err
	}
	defer rows.Close()

	var words []models.Word
	for rows.Next() {
		var w models.Word
		if err := rows.Scan(&w.ID, &w.ProjectID, &w.Word, &w.Frequency, &w.WordLength, &w.Language, &w.CreatedAt); err != nil {
			log.Error("failed to scan word row: %v", err)
			return nil, err
		}
		words = append(words, w)
	}
	return words, rows.Err()
}

func (r *wordRepository) DeleteByProject(ctx context.Context, projectID int64) error {
	log := logger.FromContext(ctx).WithPrefix("word_repo")
	log.Debug("deleting words: project_id=%d", projectID)

	_, err := r.db.ExecContext(ctx, `DELETE FROM words WHERE project_id = ?`, projectID)
	if err != nil {
		log.Error("failed to delete words: %v", err)
	}
	return err
}
