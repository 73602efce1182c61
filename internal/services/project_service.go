package services

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/tanvir/vocabflash/internal/errors"
	"github.com/tanvir/vocabflash/internal/logger"
	"github.com/tanvir/vocabflash/internal/models"
	"github.com/tanvir/vocabflash/internal/repository"
)

// ProjectService handles project and upload management
type ProjectService interface {
	CreateProject(ctx context.Context, userID int64, name string) (*models.Project, error)
	GetProject(ctx context.Context, id int64) (*models.Project, error)
	ListProjects(ctx context.Context, userID int64) ([]models.Project, error)
	UploadFile(ctx context.Context, projectID int64, originalName string, content io.Reader) (*models.ProjectFile, error)
}

type projectService struct {
	projects  repository.ProjectRepository
	uploadDir string
}

// NewProjectService creates a new ProjectService
func NewProjectService(projects repository.ProjectRepository, uploadDir string) ProjectService {
	return &projectService{projects: projects, uploadDir: uploadDir}
}

func (s *projectService) CreateProject(ctx context.Context, userID int64, name string) (*models.Project, error) {
	log := logger.FromContext(ctx)

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.NewValidationError("name", "must not be empty")
	}

	id, err := s.projects.Insert(ctx, models.Project{UserID: userID, Name: name, Status: models.ProjectCreated})
	if err != nil {
		return nil, errors.NewInternalError(err)
	}

	log.Info("project created: id=%d, name=%s", id, name)
	return s.GetProject(ctx, id)
}

func (s *projectService) GetProject(ctx context.Context, id int64) (*models.Project, error) {
	project, err := s.projects.Get(ctx, id)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	if project == nil {
		return nil, errors.NewNotFoundError("project", id)
	}
	return project, nil
}

func (s *projectService) ListProjects(ctx context.Context, userID int64) ([]models.Project, error) {
	projects, err := s.projects.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	return projects, nil
}

// UploadFile stores an uploaded document under a generated name and registers
// it with the project. The original name is kept only for display.
func (s *projectService) UploadFile(ctx context.Context, projectID int64, originalName string, content io.Reader) (*models.ProjectFile, error) {
	log := logger.FromContext(ctx)

	project, err := s.GetProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	originalName = filepath.Base(strings.TrimSpace(originalName))
	if originalName == "" || originalName == "." {
		return nil, errors.NewValidationError("file", "a file name is required")
	}

	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return nil, errors.NewInternalError(err)
	}

	storedName := fmt.Sprintf("%s%s", uuid.NewString(), filepath.Ext(originalName))
	path := filepath.Join(s.uploadDir, storedName)
	dst, err := os.Create(path)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	if _, err := io.Copy(dst, content); err != nil {
		dst.Close()
		os.Remove(path)
		return nil, errors.NewInternalError(err)
	}
	if err := dst.Close(); err != nil {
		os.Remove(path)
		return nil, errors.NewInternalError(err)
	}

	file := models.ProjectFile{
		ProjectID:        project.ID,
		FileName:         storedName,
		OriginalName:     originalName,
		ProcessingStatus: models.FileUploaded,
	}
	id, err := s.projects.InsertFile(ctx, file)
	if err != nil {
		os.Remove(path)
		return nil, errors.NewInternalError(err)
	}
	file.ID = id

	log.Info("file uploaded: project_id=%d, file_id=%d, name=%s", project.ID, id, originalName)
	return &file, nil
}
