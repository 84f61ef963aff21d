package api

import (
	"net/http"
	"time"

	"github.com/codequiz/backend/internal/domain/category"
)

// ── Response types ──────────────────────────────────────────────────────────

type LeaderboardEntryResponse struct {
	Rank      int       `json:"rank"`
	Username  string    `json:"username"`
	Category  string    `json:"category"`
	Score     int       `json:"score"`
	TimeTaken int       `json:"time_taken"`
	Correct   int       `json:"correct"`
	Total     int       `json:"total"`
	PlayedAt  time.Time `json:"played_at"`
}

type HistoryEntryResponse struct {
	Category   string    `json:"category"`
	Score      int       `json:"score"`
	Correct    int       `json:"correct"`
	Wrong      int       `json:"wrong"`
	Total      int       `json:"total"`
	Percentage int       `json:"percentage"`
	TimeTaken  int       `json:"time_taken"`
	PlayedAt   time.Time `json:"played_at"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// GET /leaderboard?category=css
func (h *Handler) getLeaderboard(w http.ResponseWriter, r *http.Request) {
	cat := r.URL.Query().Get("category")

	entries, err := h.store.ListLeaderboard(r.Context(), cat)
	if h.handleStoreError(w, err, "leaderboard") {
		return
	}

	response := make([]LeaderboardEntryResponse, len(entries))
	for i, e := range entries {
		response[i] = LeaderboardEntryResponse{
			Rank:      i + 1,
			Username:  e.Username,
			Category:  category.DisplayName(e.Category),
			Score:     e.Score,
			TimeTaken: e.TimeTaken,
			Correct:   e.Correct,
			Total:     e.Total,
			PlayedAt:  e.CreatedAt,
		}
	}
	respondJSON(w, http.StatusOK, response)
}

// GET /users/{username}/history
func (h *Handler) getHistory(w http.ResponseWriter, r *http.Request) {
	username := r.PathValue("username")

	results, err := h.store.ListResults(r.Context(), username)
	if h.handleStoreError(w, err, "history") {
		return
	}

	response := make([]HistoryEntryResponse, len(results))
	for i, res := range results {
		response[i] = HistoryEntryResponse{
			Category:   res.Category,
			Score:      res.Score,
			Correct:    res.Correct,
			Wrong:      res.Wrong,
			Total:      res.Total,
			Percentage: res.Percentage,
			TimeTaken:  res.TimeTaken,
			PlayedAt:   res.CreatedAt,
		}
	}
	respondJSON(w, http.StatusOK, response)
}
