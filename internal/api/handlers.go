package api

import (
	"net/http"
	"strings"

	"github.com/tanvir/vocabflash/internal/errors"
	"github.com/tanvir/vocabflash/internal/logger"
	"github.com/tanvir/vocabflash/internal/repository"
	"github.com/tanvir/vocabflash/internal/services"
)

type Server struct {
	Users        repository.UserRepository
	Projects     services.ProjectService
	Extraction   services.ExtractionService
	Vocabulary   services.VocabularyService
	Learning     services.LearningService
	DueCardLimit int
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.Users.List(r.Context())
	if err != nil {
		handleError(w, r, errors.NewInternalError(err))
		return
	}
	respondJSON(w, r, http.StatusOK, map[string]any{"users": users})
}

func (s *Server) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var body struct {
		Username string `json:"username"`
	}
	if err := decodeJSON(r, &body); err != nil {
		handleError(w, r, err)
		return
	}

	username := strings.ToLower(strings.TrimSpace(body.Username))
	if username == "" {
		handleError(w, r, errors.NewValidationError("username", "must not be empty"))
		return
	}

	user, err := s.Users.Upsert(r.Context(), username)
	if err != nil {
		log.Error("failed to create user: %v", err)
		handleError(w, r, errors.NewInternalError(err))
		return
	}

	setUserCookie(w, user.ID)
	respondJSON(w, r, http.StatusCreated, user)
}

func (s *Server) handleSelectUser(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		handleError(w, r, err)
		return
	}

	user, err := s.Users.Get(r.Context(), id)
	if err != nil {
		handleError(w, r, errors.NewInternalError(err))
		return
	}
	if user == nil {
		handleError(w, r, errors.NewNotFoundError("user", id))
		return
	}

	setUserCookie(w, user.ID)
	respondJSON(w, r, http.StatusOK, user)
}
