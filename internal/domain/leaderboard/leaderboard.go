package leaderboard

import (
	"sort"
	"time"

	quizsession "github.com/codequiz/backend/internal/domain/quiz_session"
)

// Entry is one finished quiz on the leaderboard.
type Entry struct {
	ID        string
	Username  string
	Category  string
	Score     int
	TimeTaken int // seconds
	Correct   int
	Total     int
	CreatedAt time.Time
}

// FromResults projects a finished quiz into a leaderboard entry.
func FromResults(username string, res quizsession.Results) Entry {
	return Entry{
		Username:  username,
		Category:  res.Category,
		Score:     res.Score,
		TimeTaken: res.TimeTaken,
		Correct:   res.Correct,
		Total:     res.Total,
	}
}

// Sort orders entries highest score first, ties broken by faster time.
func Sort(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return entries[i].TimeTaken < entries[j].TimeTaken
	})
}

// Filter returns the entries for one category, or all entries when the
// category is "all" or empty.
func Filter(entries []Entry, category string) []Entry {
	if category == "" || category == "all" {
		return entries
	}
	var out []Entry
	for _, e := range entries {
		if e.Category == category {
			out = append(out, e)
		}
	}
	return out
}
