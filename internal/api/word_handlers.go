package api

import (
	"net/http"
	"strings"

	"github.com/tanvir/vocabflash/internal/logger"
	"github.com/tanvir/vocabflash/internal/models"
)

func (s *Server) handleListWords(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	project, err := s.ownedProject(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	q := r.URL.Query()
	page := queryInt(r, "page", 1)
	if page < 1 {
		page = 1
	}
	perPage := queryInt(r, "per_page", 50)
	if perPage < 1 || perPage > 200 {
		perPage = 50
	}

	filter := models.WordFilter{
		ProjectID:    project.ID,
		Language:     q.Get("language"),
		MinFrequency: queryInt(r, "min_frequency", 0),
		Search:       q.Get("search"),
		OrderBy:      q.Get("order_by"),
		OrderDir:     strings.ToUpper(q.Get("order_dir")),
		Limit:        perPage,
		Offset:       (page - 1) * perPage,
	}

	log.Debug("listing words: project_id=%d, page=%d, per_page=%d", project.ID, page, perPage)

	result, err := s.Vocabulary.ListWords(r.Context(), filter)
	if err != nil {
		handleError(w, r, err)
		return
	}

	totalPages := result.Total / perPage
	if result.Total%perPage != 0 {
		totalPages++
	}
	if totalPages == 0 {
		totalPages = 1
	}

	respondJSON(w, r, http.StatusOK, map[string]any{
		"words":       result.Words,
		"total":       result.Total,
		"page":        page,
		"per_page":    perPage,
		"total_pages": totalPages,
	})
}

func (s *Server) handleProjectAnalytics(w http.ResponseWriter, r *http.Request) {
	project, err := s.ownedProject(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	metrics, err := s.Vocabulary.ProjectAnalytics(r.Context(), project.ID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, metrics)
}
