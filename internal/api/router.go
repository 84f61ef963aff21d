// internal/api/router.go
package api

import "net/http"

func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	// Auth
	mux.HandleFunc("POST /auth/signup", h.signup)
	mux.HandleFunc("POST /auth/login", h.login)
	mux.HandleFunc("POST /auth/guest", h.guest)

	// Question pool
	mux.HandleFunc("POST /questions", h.addQuestion)
	mux.HandleFunc("GET /questions", h.listQuestions)
	mux.HandleFunc("DELETE /questions/{questionID}", h.deleteQuestion)
	mux.HandleFunc("GET /categories", h.listCategories)

	// Quizzes
	mux.HandleFunc("POST /quizzes", h.createQuiz)
	mux.HandleFunc("GET /quizzes/{quizID}", h.getQuiz)
	mux.HandleFunc("POST /quizzes/{quizID}/selection", h.selectOption)
	mux.HandleFunc("POST /quizzes/{quizID}/answer", h.submitAnswer)
	mux.HandleFunc("GET /quizzes/{quizID}/results", h.getResults)
	mux.HandleFunc("GET /quizzes/{quizID}/review", h.getReview)
	mux.HandleFunc("DELETE /quizzes/{quizID}", h.abandonQuiz)

	// Leaderboard and history
	mux.HandleFunc("GET /leaderboard", h.getLeaderboard)
	mux.HandleFunc("GET /users/{username}/history", h.getHistory)
}
