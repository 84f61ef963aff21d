package quizsession_test

import (
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/codequiz/backend/internal/domain/question"
	quizsession "github.com/codequiz/backend/internal/domain/quiz_session"
)

// poolOf builds n four-option questions for a category, with the correct
// option rotating through the positions.
func poolOf(cat string, n int) []question.Question {
	pool := make([]question.Question, n)
	for i := 0; i < n; i++ {
		pool[i] = question.Question{
			ID:       cat + "-" + string(rune('a'+i)),
			Category: cat,
			Text:     "Question " + string(rune('A'+i)),
			Options: []string{
				"option w", "option x", "option y", "option z",
			},
			CorrectIndex: i % 4,
		}
	}
	return pool
}

// fastConfig keeps quiz time short and ticks quick so timer tests finish in
// milliseconds.
func fastConfig() quizsession.Config {
	cfg := quizsession.DefaultConfig()
	cfg.SecondsPerQuestion = 1
	cfg.FeedbackDelay = 5 * time.Millisecond
	cfg.TickInterval = 50 * time.Millisecond
	return cfg
}

func waitUntil(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", what)
}

func TestSetup_DrawsAtMostRequestedCount(t *testing.T) {
	s, err := quizsession.Setup("css", poolOf("css", 25), quizsession.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	if got := len(s.Questions()); got != 10 {
		t.Errorf("expected 10 questions, got %d", got)
	}
	if got := len(s.Answers()); got != 10 {
		t.Errorf("expected answer slice of 10, got %d", got)
	}
}

func TestSetup_SmallPoolShortensQuiz(t *testing.T) {
	// 3 questions available, 10 requested: the quiz has 3 questions and
	// 3 minutes on the clock.
	s, err := quizsession.Setup("css", poolOf("css", 3), quizsession.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	if got := len(s.Questions()); got != 3 {
		t.Errorf("expected 3 questions, got %d", got)
	}
	if got := s.TotalTime(); got != 180 {
		t.Errorf("expected 180 seconds total, got %d", got)
	}
	if got := s.RemainingTime(); got != 180 {
		t.Errorf("expected 180 seconds remaining, got %d", got)
	}
}

func TestSetup_EmptyCategoryFails(t *testing.T) {
	s, err := quizsession.Setup("java", poolOf("css", 5), quizsession.DefaultConfig())
	if !errors.Is(err, quizsession.ErrNoQuestions) {
		t.Fatalf("expected ErrNoQuestions, got %v", err)
	}
	if s != nil {
		t.Error("expected no session on setup failure")
	}
}

func TestSetup_FiltersByCategory(t *testing.T) {
	pool := append(poolOf("css", 4), poolOf("python", 4)...)
	s, err := quizsession.Setup("python", pool, quizsession.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	for _, q := range s.Questions() {
		if q.ID[:6] != "python" {
			t.Errorf("question %s leaked in from another category", q.ID)
		}
	}
}

func TestSetup_NoDuplicateQuestions(t *testing.T) {
	s, err := quizsession.Setup("css", poolOf("css", 25), quizsession.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	seen := make(map[string]bool)
	for _, q := range s.Questions() {
		if seen[q.ID] {
			t.Errorf("question %s drawn twice", q.ID)
		}
		seen[q.ID] = true
	}
}

func TestSetup_OptionShuffleIsAPermutation(t *testing.T) {
	orig := question.Question{
		ID:           "q1",
		Category:     "css",
		Text:         "Which property changes text color?",
		Options:      []string{"text-color", "font-color", "color", "foreground"},
		CorrectIndex: 2,
	}

	for i := 0; i < 50; i++ {
		s, err := quizsession.Setup("css", []question.Question{orig}, quizsession.DefaultConfig())
		if err != nil {
			t.Fatal(err)
		}
		q := s.Questions()[0]

		if q.Options[q.CorrectIndex] != "color" {
			t.Fatalf("relocated correct index points at %q, want %q",
				q.Options[q.CorrectIndex], "color")
		}

		want := append([]string(nil), orig.Options...)
		got := append([]string(nil), q.Options...)
		sort.Strings(want)
		sort.Strings(got)
		for j := range want {
			if got[j] != want[j] {
				t.Fatalf("shuffled options %v are not a permutation of %v", q.Options, orig.Options)
			}
		}
	}
}

func TestSetup_RandomizesQuestionOrder(t *testing.T) {
	pool := poolOf("css", 20)
	first, err := quizsession.Setup("css", pool, quizsession.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}

	// Statistically certain to differ at least once across 10 draws.
	for i := 0; i < 10; i++ {
		s, err := quizsession.Setup("css", pool, quizsession.DefaultConfig())
		if err != nil {
			t.Fatal(err)
		}
		if !sameOrder(first.Questions(), s.Questions()) {
			return
		}
	}
	t.Error("expected question order to vary across sessions")
}

func sameOrder(a, b []quizsession.PresentedQuestion) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].ID != b[i].ID {
			return false
		}
	}
	return true
}
