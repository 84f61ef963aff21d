package api

import (
	"net/http"

	"github.com/codequiz/backend/internal/domain/category"
	"github.com/codequiz/backend/internal/domain/question"
	"github.com/codequiz/backend/internal/id"
)

// ── Request / Response types ────────────────────────────────────────────────

type AddQuestionRequest struct {
	Category     string   `json:"category"`
	Text         string   `json:"text"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_index"`
}

type QuestionResponse struct {
	ID           string   `json:"id"`
	Category     string   `json:"category"`
	Text         string   `json:"text"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_index"`
}

type CategoryResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Icon          string `json:"icon"`
	QuestionCount int    `json:"question_count"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// POST /questions
func (h *Handler) addQuestion(w http.ResponseWriter, r *http.Request) {
	var req AddQuestionRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	q := question.Question{
		ID:           id.New(),
		Category:     req.Category,
		Text:         req.Text,
		Options:      req.Options,
		CorrectIndex: req.CorrectIndex,
	}
	if err := q.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if _, ok := category.ByID(q.Category); !ok {
		respondError(w, http.StatusBadRequest, "unknown category")
		return
	}

	if err := h.store.SaveQuestion(r.Context(), q); err != nil {
		h.logger.Error("failed to save question", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to save question")
		return
	}

	respondJSON(w, http.StatusCreated, questionResponse(q))
}

// GET /questions?category=css
func (h *Handler) listQuestions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	cat := r.URL.Query().Get("category")

	var (
		questions []question.Question
		err       error
	)
	if cat == "" {
		questions, err = h.store.ListQuestions(ctx)
	} else {
		questions, err = h.store.ListQuestionsByCategory(ctx, cat)
	}
	if h.handleStoreError(w, err, "questions") {
		return
	}

	response := make([]QuestionResponse, len(questions))
	for i, q := range questions {
		response[i] = questionResponse(q)
	}
	respondJSON(w, http.StatusOK, response)
}

// DELETE /questions/{questionID}
func (h *Handler) deleteQuestion(w http.ResponseWriter, r *http.Request) {
	questionID := r.PathValue("questionID")

	if h.handleStoreError(w, h.store.DeleteQuestion(r.Context(), questionID), "question") {
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GET /categories
func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	counts, err := h.store.QuestionCounts(r.Context())
	if h.handleStoreError(w, err, "categories") {
		return
	}

	response := make([]CategoryResponse, len(category.Builtin))
	for i, c := range category.Builtin {
		response[i] = CategoryResponse{
			ID:            c.ID,
			Name:          c.Name,
			Icon:          c.Icon,
			QuestionCount: counts[c.ID],
		}
	}
	respondJSON(w, http.StatusOK, response)
}

func questionResponse(q question.Question) QuestionResponse {
	return QuestionResponse{
		ID:           q.ID,
		Category:     q.Category,
		Text:         q.Text,
		Options:      q.Options,
		CorrectIndex: q.CorrectIndex,
	}
}
