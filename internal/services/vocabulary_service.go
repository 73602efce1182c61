package services

import (
	"context"

	"github.com/tanvir/vocabflash/internal/analytics"
	"github.com/tanvir/vocabflash/internal/errors"
	"github.com/tanvir/vocabflash/internal/logger"
	"github.com/tanvir/vocabflash/internal/models"
	"github.com/tanvir/vocabflash/internal/repository"
)

// WordPage is one page of a filtered word listing.
type WordPage struct {
	Words []models.Word `json:"words"`
	Total int           `json:"total"`
}

// VocabularyService exposes extracted vocabulary and its analytics
type VocabularyService interface {
	ListWords(ctx context.Context, filter models.WordFilter) (*WordPage, error)
	ProjectAnalytics(ctx context.Context, projectID int64) (*analytics.Metrics, error)
}

type vocabularyService struct {
	projects repository.ProjectRepository
	words    repository.WordRepository
}

// NewVocabularyService creates a new VocabularyService
func NewVocabularyService(projects repository.ProjectRepository, words repository.WordRepository) VocabularyService {
	return &vocabularyService{projects: projects, words: words}
}

func (s *vocabularyService) ListWords(ctx context.Context, filter models.WordFilter) (*WordPage, error) {
	log := logger.FromContext(ctx)

	if filter.ProjectID == 0 {
		return nil, errors.NewValidationError("project_id", "is required")
	}

	words, err := s.words.List(ctx, filter)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	total, err := s.words.Count(ctx, filter)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}

	log.Debug("listed %d of %d words for project_id=%d", len(words), total, filter.ProjectID)
	return &WordPage{Words: words, Total: total}, nil
}

func (s *vocabularyService) ProjectAnalytics(ctx context.Context, projectID int64) (*analytics.Metrics, error) {
	project, err := s.projects.Get(ctx, projectID)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	if project == nil {
		return nil, errors.NewNotFoundError("project", projectID)
	}

	words, err := s.words.ListByProject(ctx, projectID)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}

	metrics := analytics.Compute(words)
	return &metrics, nil
}
