package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/tanvir/vocabflash/internal/errors"
	"github.com/tanvir/vocabflash/internal/logger"
	"github.com/tanvir/vocabflash/internal/models"
)

// maxUploadBytes caps one uploaded document at 10 MB.
const maxUploadBytes = 10 << 20

func (s *Server) handleListProjects(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())

	projects, err := s.Projects.ListProjects(r.Context(), user.ID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, map[string]any{"projects": projects})
}

func (s *Server) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())

	var body struct {
		Name string `json:"name"`
	}
	if err := decodeJSON(r, &body); err != nil {
		handleError(w, r, err)
		return
	}

	project, err := s.Projects.CreateProject(r.Context(), user.ID, body.Name)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusCreated, project)
}

func (s *Server) handleGetProject(w http.ResponseWriter, r *http.Request) {
	project, err := s.ownedProject(r)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, project)
}

func (s *Server) handleUploadFile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	project, err := s.ownedProject(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		handleError(w, r, errors.NewBadRequestError("invalid multipart upload"))
		return
	}

	upload, header, err := r.FormFile("file")
	if err != nil {
		handleError(w, r, errors.NewValidationError("file", "is required"))
		return
	}
	defer upload.Close()

	log.Debug("receiving upload: project_id=%d, name=%s, size=%d", project.ID, header.Filename, header.Size)

	file, err := s.Projects.UploadFile(r.Context(), project.ID, header.Filename, upload)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusCreated, file)
}

func (s *Server) handleStartExtraction(w http.ResponseWriter, r *http.Request) {
	project, err := s.ownedProject(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	var body struct {
		FileIDs []int64 `json:"file_ids"`
	}
	if err := decodeJSON(r, &body); err != nil {
		handleError(w, r, err)
		return
	}

	job, err := s.Extraction.StartExtraction(r.Context(), project.ID, body.FileIDs)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusAccepted, job)
}

func (s *Server) handleExtractionStatus(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "jobID")
	job, err := s.Extraction.JobStatus(r.Context(), jobID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, job)
}

// ownedProject loads the project from the URL and verifies it belongs to the
// active user. Foreign projects read as not found, never as forbidden.
func (s *Server) ownedProject(r *http.Request) (*models.Project, error) {
	id, err := idParam(r, "id")
	if err != nil {
		return nil, err
	}

	project, err := s.Projects.GetProject(r.Context(), id)
	if err != nil {
		return nil, err
	}

	user := userFromContext(r.Context())
	if user == nil || project.UserID != user.ID {
		logger.FromContext(r.Context()).Warn("project does not belong to current user")
		return nil, errors.NewNotFoundError("project", id)
	}
	return project, nil
}
