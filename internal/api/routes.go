package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)
	r.Use(s.userMiddleware)

	r.Get("/health", s.handleHealth)

	r.Get("/users", s.handleListUsers)
	r.Post("/users", s.handleCreateUser)
	r.Post("/users/{id}/select", s.handleSelectUser)

	r.Get("/projects", s.handleListProjects)
	r.Post("/projects", s.handleCreateProject)
	r.Get("/projects/{id}", s.handleGetProject)
	r.Post("/projects/{id}/files", s.handleUploadFile)
	r.Post("/projects/{id}/extract", s.handleStartExtraction)
	r.Get("/projects/{id}/words", s.handleListWords)
	r.Get("/projects/{id}/analytics", s.handleProjectAnalytics)
	r.Post("/projects/{id}/flashcards", s.handleGenerateFlashcards)
	r.Get("/projects/{id}/quiz", s.handleGenerateQuiz)

	r.Get("/extract/jobs/{jobID}", s.handleExtractionStatus)

	r.Get("/flashcards/due", s.handleDueFlashcards)
	r.Post("/flashcards/{id}/review", s.handleReviewFlashcard)
	r.Post("/quiz/answers", s.handleQuizAnswer)
	r.Get("/dashboard", s.handleDashboard)

	return r
}
