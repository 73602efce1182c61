package api

import (
	"net/http"

	"github.com/tanvir/vocabflash/internal/logger"
)

func (s *Server) handleGenerateFlashcards(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())

	project, err := s.ownedProject(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	var body struct {
		Limit int `json:"limit"`
	}
	if err := decodeJSON(r, &body); err != nil {
		handleError(w, r, err)
		return
	}

	created, err := s.Learning.GenerateFlashcards(r.Context(), user.ID, project.ID, body.Limit)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusCreated, map[string]any{"created": created})
}

func (s *Server) handleDueFlashcards(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())

	limit := queryInt(r, "limit", s.DueCardLimit)
	if limit < 1 || limit > 100 {
		limit = s.DueCardLimit
	}

	cards, err := s.Learning.DueFlashcards(r.Context(), user.ID, limit)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, map[string]any{"flashcards": cards})
}

func (s *Server) handleReviewFlashcard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	user := userFromContext(r.Context())

	id, err := idParam(r, "id")
	if err != nil {
		handleError(w, r, err)
		return
	}

	var body struct {
		WasCorrect bool `json:"was_correct"`
		Quality    int  `json:"quality"`
	}
	if err := decodeJSON(r, &body); err != nil {
		handleError(w, r, err)
		return
	}

	log.Debug("reviewing flashcard: flashcard_id=%d, was_correct=%t, quality=%d", id, body.WasCorrect, body.Quality)

	card, err := s.Learning.RecordReview(r.Context(), user.ID, id, body.WasCorrect, body.Quality)
	if err != nil {
		handleError(w, r, err)
		return
	}

	log.Info("flashcard reviewed successfully")
	respondJSON(w, r, http.StatusOK, card)
}

func (s *Server) handleGenerateQuiz(w http.ResponseWriter, r *http.Request) {
	project, err := s.ownedProject(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	count := queryInt(r, "count", 10)
	if count < 1 || count > 50 {
		count = 10
	}

	questions, err := s.Learning.GenerateQuiz(r.Context(), project.ID, count)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, map[string]any{"questions": questions})
}

func (s *Server) handleQuizAnswer(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())

	var body struct {
		WasCorrect bool `json:"was_correct"`
	}
	if err := decodeJSON(r, &body); err != nil {
		handleError(w, r, err)
		return
	}

	if err := s.Learning.RecordQuizAnswer(r.Context(), user.ID, body.WasCorrect); err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, map[string]string{"status": "recorded"})
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())

	dash, err := s.Learning.Dashboard(r.Context(), user.ID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, dash)
}
