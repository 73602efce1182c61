package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/tanvir/vocabflash/internal/models"
)

// MockProjectRepository is a mock implementation of repository.ProjectRepository
type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) Insert(ctx context.Context, project models.Project) (int64, error) {
	args := m.Called(ctx, project)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProjectRepository) Get(ctx context.Context, id int64) (*models.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Project), args.Error(1)
}

func (m *MockProjectRepository) ListByUser(ctx context.Context, userID int64) ([]models.Project, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Project), args.Error(1)
}

func (m *MockProjectRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockProjectRepository) InsertFile(ctx context.Context, file models.ProjectFile) (int64, error) {
	args := m.Called(ctx, file)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProjectRepository) FilesByIDs(ctx context.Context, projectID int64, fileIDs []int64) ([]models.ProjectFile, error) {
	args := m.Called(ctx, projectID, fileIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ProjectFile), args.Error(1)
}

func (m *MockProjectRepository) UpdateFileStatus(ctx context.Context, fileID int64, status string) error {
	args := m.Called(ctx, fileID, status)
	return args.Error(0)
}
