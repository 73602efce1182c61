package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/tanvir/vocabflash/internal/logger"
	"github.com/tanvir/vocabflash/internal/models"
	"github.com/tanvir/vocabflash/internal/repository"
)

type projectRepository struct {
	db *sql.DB
}

// NewProjectRepository creates a new ProjectRepository implementation
func NewProjectRepository(db *sql.DB) repository.ProjectRepository {
	return &projectRepository{db: db}
}

func (r *projectRepository) Insert(ctx context.Context, p models.Project) (int64, error) {
	log := logger.FromContext(ctx).WithPrefix("project_repo")
	log.Debug("inserting project: user_id=%d, name=%s", p.UserID, p.Name)

	status := p.Status
	if status == "" {
		status = models.ProjectCreated
	}
	res, err := r.db.ExecContext(ctx, `
INSERT INTO projects (user_id, name, status) VALUES (?, ?, ?)
`, p.UserID, p.Name, status)
	if err != nil {
		log.Error("failed to insert project: %v", err)
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		log.Error("failed to get project id: %v", err)
		return 0, err
	}
	log.Debug("project inserted: id=%d", id)
	return id, nil
}

func (r *projectRepository) Get(ctx context.Context, id int64) (*models.Project, error) {
	log := logger.FromContext(ctx).WithPrefix("project_repo")

	var p models.Project
	err := r.db.QueryRowContext(ctx, `
SELECT id, user_id, name, status, created_at FROM projects WHERE id = ?
`, id).Scan(&p.ID, &p.UserID, &p.Name, &p.Status, &p.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("project not found: id=%d", id)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get project: %v", err)
		return nil, err
	}
	return &p, nil
}

func (r *projectRepository) ListByUser(ctx context.Context, userID int64) ([]models.Project, error) {
	log := logger.FromContext(ctx).WithPrefix("project_repo")
	log.Debug("listing projects: user_id=%d", userID)

	rows, err := r.db.QueryContext(ctx, `
SELECT id, user_id, name, status, created_at
FROM projects
WHERE user_id = ?
ORDER BY created_at DESC
`, userID)
	if err != nil {
		log.Error("failed to list projects: %v", err)
		return nil, err
	}
	defer rows.Close()

	var projects []models.Project
	for rows.Next() {
		var p models.Project
		if err := rows.Scan(&p.ID, &p.UserID, &p.Name, &p.Status, &p.CreatedAt); err != nil {
			log.Error("failed to scan project row: %v", err)
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func (r *projectRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	log := logger.FromContext(ctx).WithPrefix("project_repo")
	log.Debug("updating project status: project_id=%d, status=%s", id, status)

	_, err := r.db.ExecContext(ctx, `UPDATE projects SET status = ? WHERE id = ?`, status, id)
	if err != nil {
		log.Error("failed to update project status: %v", err)
	}
	return err
}

func (r *projectRepository) InsertFile(ctx context.Context, f models.ProjectFile) (int64, error) {
	log := logger.FromContext(ctx).WithPrefix("project_repo")
	log.Debug("inserting project file: project_id=%d, name=%s", f.ProjectID, f.OriginalName)

	status := f.ProcessingStatus
	if status == "" {
		status = models.FileUploaded
	}
	res, err := r.db.ExecContext(ctx, `
INSERT INTO project_files (project_id, file_name, original_name, processing_status)
VALUES (?, ?, ?, ?)
`, f.ProjectID, f.FileName, f.OriginalName, status)
	if err != nil {
		log.Error("failed to insert project file: %v", err)
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		log.Error("failed to get file id: %v", err)
		return 0, err
	}
	return id, nil
}

func (r *projectRepository) FilesByIDs(ctx context.Context, projectID int64, fileIDs []int64) ([]models.ProjectFile, error) {
	log := logger.FromContext(ctx).WithPrefix("project_repo")
	log.Debug("loading %d files for project_id=%d", len(fileIDs), projectID)

	if len(fileIDs) == 0 {
		return nil, nil
	}

	query := sqlBuilder.Select(
		"id", "project_id", "file_name", "original_name", "processing_status", "created_at",
	).From("project_files").
		Where(squirrel.Eq{"project_id": projectID}).
		Where(squirrel.Eq{"id": fileIDs}).
		OrderBy("id ASC")

	sql, args, err := query.ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sql, args...)
	if err != nil {
		log.Error("failed to load files: %v", err)
		return nil, err
	}
	defer rows.Close()

	var files []models.ProjectFile
	for rows.Next() {
		var f models.ProjectFile
		if err := rows.Scan(&f.ID, &f.ProjectID, &f.FileName, &f.OriginalName, &f.ProcessingStatus, &f.CreatedAt); err != nil {
			log.Error("failed to scan file row: %v", err)
			return nil, err
		}
		files = append(files, f)
	}
	log.Debug("found %d files", len(files))
	return files, rows.Err()
}

func (r *projectRepository) UpdateFileStatus(ctx context.Context, fileID int64, status string) error {
	log := logger.FromContext(ctx).WithPrefix("project_repo")
	log.Debug("updating file status: file_id=%d, status=%s", fileID, status)

	_, err := r.db.ExecContext(ctx, `UPDATE project_files SET processing_status = ? WHERE id = ?`, status, fileID)
	if err != nil {
		log.Error("failed to update file status: %v", err)
	}
	return err
}
