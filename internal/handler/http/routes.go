package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/version/", h.getServerVersion)
		r.Get("/api/categories", h.listCategories)
		r.Get("/api/leaderboard", h.getLeaderboard)

		r.Post("/api/quiz/start", h.startQuiz)
		r.Post("/api/quiz/check", h.checkAnswer)
		r.Post("/api/quiz/submit", h.submitQuiz)

		r.Post("/api/admin/login", h.login)
	})

	// admin routes
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/admin/questions", h.listQuestions)
		r.Get("/api/admin/questions/{id}", h.getQuestion)
		r.Delete("/api/admin/questions/{id}", h.deleteQuestion)
		r.Delete("/api/admin/scores/{id}", h.deleteScore)
		r.Get("/api/admin/stats", h.getStatistics)

		r.With(h.verifyBodyHash).Post("/api/admin/questions", h.createQuestion)
		r.With(h.verifyBodyHash).Put("/api/admin/questions/{id}", h.updateQuestion)
		r.With(h.verifyBodyHash).Post("/api/admin/categories", h.createCategory)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
