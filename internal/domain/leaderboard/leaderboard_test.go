package leaderboard_test

import (
	"testing"

	"github.com/codequiz/backend/internal/domain/leaderboard"
	quizsession "github.com/codequiz/backend/internal/domain/quiz_session"
)

func TestSort_ScoreThenTime(t *testing.T) {
	entries := []leaderboard.Entry{
		{Username: "slow", Score: 80, TimeTaken: 300},
		{Username: "low", Score: 40, TimeTaken: 100},
		{Username: "fast", Score: 80, TimeTaken: 120},
	}

	leaderboard.Sort(entries)

	want := []string{"fast", "slow", "low"}
	for i, name := range want {
		if entries[i].Username != name {
			t.Errorf("position %d: expected %s, got %s", i, name, entries[i].Username)
		}
	}
}

func TestFilter(t *testing.T) {
	entries := []leaderboard.Entry{
		{Username: "a", Category: "css"},
		{Username: "b", Category: "java"},
		{Username: "c", Category: "css"},
	}

	css := leaderboard.Filter(entries, "css")
	if len(css) != 2 {
		t.Errorf("expected 2 css entries, got %d", len(css))
	}

	all := leaderboard.Filter(entries, "all")
	if len(all) != 3 {
		t.Errorf("expected all 3 entries, got %d", len(all))
	}
}

func TestFromResults(t *testing.T) {
	res := quizsession.Results{
		Category:  "python",
		Score:     70,
		Correct:   7,
		Wrong:     3,
		Total:     10,
		TimeTaken: 412,
	}

	e := leaderboard.FromResults("ada", res)
	if e.Username != "ada" || e.Category != "python" {
		t.Errorf("unexpected entry %+v", e)
	}
	if e.Score != 70 || e.TimeTaken != 412 || e.Correct != 7 || e.Total != 10 {
		t.Errorf("projection dropped fields: %+v", e)
	}
}
