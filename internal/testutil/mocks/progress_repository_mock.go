package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/tanvir/vocabflash/internal/models"
)

// MockProgressRepository is a mock implementation of repository.ProgressRepository
type MockProgressRepository struct {
	mock.Mock
}

func (m *MockProgressRepository) GetOrCreate(ctx context.Context, userID int64) (*models.LearningProgress, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.LearningProgress), args.Error(1)
}

func (m *MockProgressRepository) Update(ctx context.Context, progress models.LearningProgress) error {
	args := m.Called(ctx, progress)
	return args.Error(0)
}

func (m *MockProgressRepository) Achievements(ctx context.Context, progressID int64) ([]models.Achievement, error) {
	args := m.Called(ctx, progressID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Achievement), args.Error(1)
}

func (m *MockProgressRepository) InsertAchievement(ctx context.Context, achievement models.Achievement) error {
	args := m.Called(ctx, achievement)
	return args.Error(0)
}
