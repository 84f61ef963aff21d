package api

import (
	"errors"
	"net/http"

	quizsession "github.com/codequiz/backend/internal/domain/quiz_session"
	"github.com/codequiz/backend/internal/service"
)

// ── Request / Response types ────────────────────────────────────────────────

type CreateQuizRequest struct {
	Category string `json:"category"`
}

type ProgressResponse struct {
	Current    int     `json:"current"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
}

type QuizStateResponse struct {
	ID               string            `json:"id"`
	Category         string            `json:"category"`
	Question         *QuestionPayload  `json:"question,omitempty"`
	Progress         ProgressResponse  `json:"progress"`
	RemainingSeconds int               `json:"remaining_seconds"`
	TotalSeconds     int               `json:"total_seconds"`
	TimeBand         string            `json:"time_band"`
	Ended            bool              `json:"ended"`
}

// QuestionPayload deliberately omits the correct index: the client learns it
// only from the submission feedback.
type QuestionPayload struct {
	Text    string   `json:"text"`
	Options []string `json:"options"`
}

type SelectOptionRequest struct {
	Option int `json:"option"`
}

type FeedbackResponse struct {
	Selected  int  `json:"selected"`
	Correct   int  `json:"correct"`
	IsCorrect bool `json:"is_correct"`
}

type ResultsResponse struct {
	Score      int    `json:"score"`
	Correct    int    `json:"correct"`
	Wrong      int    `json:"wrong"`
	Total      int    `json:"total"`
	Percentage int    `json:"percentage"`
	TimeTaken  int    `json:"time_taken"`
	Category   string `json:"category"`
}

type ReviewItemResponse struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	UserAnswer    string   `json:"user_answer"`
	CorrectAnswer string   `json:"correct_answer"`
	IsCorrect     bool     `json:"is_correct"`
	WasSkipped    bool     `json:"was_skipped"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// POST /quizzes
func (h *Handler) createQuiz(w http.ResponseWriter, r *http.Request) {
	var req CreateQuizRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Category == "" {
		respondError(w, http.StatusBadRequest, "category is required")
		return
	}

	session, err := h.quizzes.StartQuiz(r.Context(), req.Category, h.username(r))
	if errors.Is(err, quizsession.ErrNoQuestions) {
		respondError(w, http.StatusNotFound, "no questions available for this category")
		return
	}
	if err != nil {
		h.logger.Error("failed to start quiz", "category", req.Category, "error", err)
		respondError(w, http.StatusInternalServerError, "failed to start quiz")
		return
	}

	respondJSON(w, http.StatusCreated, quizStateResponse(session))
}

// GET /quizzes/{quizID}
func (h *Handler) getQuiz(w http.ResponseWriter, r *http.Request) {
	session, ok := h.lookupQuiz(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, quizStateResponse(session))
}

// POST /quizzes/{quizID}/selection
func (h *Handler) selectOption(w http.ResponseWriter, r *http.Request) {
	session, ok := h.lookupQuiz(w, r)
	if !ok {
		return
	}

	var req SelectOptionRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if h.handleQuizError(w, session.SelectOption(req.Option)) {
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// POST /quizzes/{quizID}/answer
func (h *Handler) submitAnswer(w http.ResponseWriter, r *http.Request) {
	session, ok := h.lookupQuiz(w, r)
	if !ok {
		return
	}

	fb, err := session.SubmitAnswer()
	if h.handleQuizError(w, err) {
		return
	}

	respondJSON(w, http.StatusOK, FeedbackResponse{
		Selected:  fb.Selected,
		Correct:   fb.Correct,
		IsCorrect: fb.IsCorrect,
	})
}

// GET /quizzes/{quizID}/results
func (h *Handler) getResults(w http.ResponseWriter, r *http.Request) {
	session, ok := h.lookupQuiz(w, r)
	if !ok {
		return
	}

	res, done := session.Results()
	if !done {
		respondError(w, http.StatusConflict, "quiz still in progress")
		return
	}

	respondJSON(w, http.StatusOK, ResultsResponse{
		Score:      res.Score,
		Correct:    res.Correct,
		Wrong:      res.Wrong,
		Total:      res.Total,
		Percentage: res.Percentage,
		TimeTaken:  res.TimeTaken,
		Category:   res.Category,
	})
}

// GET /quizzes/{quizID}/review
func (h *Handler) getReview(w http.ResponseWriter, r *http.Request) {
	session, ok := h.lookupQuiz(w, r)
	if !ok {
		return
	}

	if !session.Ended() {
		respondError(w, http.StatusConflict, "quiz still in progress")
		return
	}

	review := session.Review()
	response := make([]ReviewItemResponse, len(review))
	for i, item := range review {
		response[i] = ReviewItemResponse{
			Question:      item.QuestionText,
			Options:       item.Options,
			UserAnswer:    item.UserAnswer,
			CorrectAnswer: item.CorrectAnswer,
			IsCorrect:     item.IsCorrect,
			WasSkipped:    item.WasSkipped,
		}
	}
	respondJSON(w, http.StatusOK, response)
}

// DELETE /quizzes/{quizID}
func (h *Handler) abandonQuiz(w http.ResponseWriter, r *http.Request) {
	quizID := r.PathValue("quizID")

	if err := h.quizzes.Abandon(quizID); errors.Is(err, service.ErrQuizNotFound) {
		respondError(w, http.StatusNotFound, "quiz not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ── Helpers ─────────────────────────────────────────────────────────────────

func (h *Handler) lookupQuiz(w http.ResponseWriter, r *http.Request) (*quizsession.Session, bool) {
	session, err := h.quizzes.Get(r.PathValue("quizID"))
	if errors.Is(err, service.ErrQuizNotFound) {
		respondError(w, http.StatusNotFound, "quiz not found")
		return nil, false
	}
	if err != nil {
		h.logger.Error("failed to look up quiz", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return nil, false
	}
	return session, true
}

// handleQuizError maps engine errors onto HTTP statuses. Returns true if an
// error was handled.
func (h *Handler) handleQuizError(w http.ResponseWriter, err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, quizsession.ErrSessionEnded):
		respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, quizsession.ErrAlreadyAnswered):
		respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, quizsession.ErrInvalidSelection),
		errors.Is(err, quizsession.ErrNoSelection):
		respondError(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.Error("quiz error", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
	}
	return true
}

func quizStateResponse(s *quizsession.Session) QuizStateResponse {
	progress := s.Progress()
	remaining := s.RemainingTime()

	resp := QuizStateResponse{
		ID:       s.ID,
		Category: s.Category,
		Progress: ProgressResponse{
			Current:    progress.Current,
			Total:      progress.Total,
			Percentage: progress.Percentage,
		},
		RemainingSeconds: remaining,
		TotalSeconds:     s.TotalTime(),
		TimeBand:         s.Band().String(),
		Ended:            s.Ended(),
	}

	if q, ok := s.CurrentQuestion(); ok {
		resp.Question = &QuestionPayload{
			Text:    q.Text,
			Options: q.Options,
		}
	}
	return resp
}
