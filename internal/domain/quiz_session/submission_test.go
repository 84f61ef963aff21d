package quizsession_test

import (
	"errors"
	"testing"
	"time"

	quizsession "github.com/codequiz/backend/internal/domain/quiz_session"
)

func startedSession(t *testing.T, questions int, cfg quizsession.Config) *quizsession.Session {
	t.Helper()
	s, err := quizsession.Setup("css", poolOf("css", questions), cfg)
	if err != nil {
		t.Fatal(err)
	}
	s.Start()
	t.Cleanup(s.Stop)
	return s
}

func TestSubmitAnswer_CorrectScoresPoints(t *testing.T) {
	cfg := quizsession.DefaultConfig()
	cfg.FeedbackDelay = 5 * time.Millisecond
	s := startedSession(t, 1, cfg)

	q, ok := s.CurrentQuestion()
	if !ok {
		t.Fatal("expected a current question")
	}

	if err := s.SelectOption(q.CorrectIndex); err != nil {
		t.Fatal(err)
	}
	fb, err := s.SubmitAnswer()
	if err != nil {
		t.Fatal(err)
	}

	if !fb.IsCorrect {
		t.Error("expected correct feedback")
	}
	if fb.Selected != q.CorrectIndex || fb.Correct != q.CorrectIndex {
		t.Errorf("feedback %+v does not match correct index %d", fb, q.CorrectIndex)
	}
	if got := s.Score(); got != 10 {
		t.Errorf("expected score 10, got %d", got)
	}
	if got := s.Answers()[0]; got != q.CorrectIndex {
		t.Errorf("expected answer %d recorded, got %d", q.CorrectIndex, got)
	}

	// Single question: the deferred advance ends the session.
	waitUntil(t, "session end", s.Ended)

	res, ok := s.Results()
	if !ok {
		t.Fatal("expected results after end")
	}
	if res.Correct != 1 || res.Wrong != 0 || res.Percentage != 100 {
		t.Errorf("unexpected results %+v", res)
	}
}

func TestSubmitAnswer_WrongScoresNothing(t *testing.T) {
	cfg := quizsession.DefaultConfig()
	cfg.FeedbackDelay = 5 * time.Millisecond
	s := startedSession(t, 1, cfg)

	q, _ := s.CurrentQuestion()
	wrong := (q.CorrectIndex + 1) % len(q.Options)

	if err := s.SelectOption(wrong); err != nil {
		t.Fatal(err)
	}
	fb, err := s.SubmitAnswer()
	if err != nil {
		t.Fatal(err)
	}

	if fb.IsCorrect {
		t.Error("expected incorrect feedback")
	}
	if got := s.Score(); got != 0 {
		t.Errorf("expected score 0, got %d", got)
	}
}

func TestSubmitAnswer_WithoutSelectionFails(t *testing.T) {
	s := startedSession(t, 2, quizsession.DefaultConfig())

	if _, err := s.SubmitAnswer(); !errors.Is(err, quizsession.ErrNoSelection) {
		t.Fatalf("expected ErrNoSelection, got %v", err)
	}
	if got := s.Answers()[0]; got != quizsession.AnswerUnset {
		t.Errorf("expected answer to stay unset, got %d", got)
	}
	if got := s.Score(); got != 0 {
		t.Errorf("expected score 0, got %d", got)
	}
}

func TestSubmitAnswer_RepeatInFeedbackWindowRejected(t *testing.T) {
	cfg := quizsession.DefaultConfig()
	cfg.FeedbackDelay = 50 * time.Millisecond
	s := startedSession(t, 2, cfg)

	q, _ := s.CurrentQuestion()
	if err := s.SelectOption(q.CorrectIndex); err != nil {
		t.Fatal(err)
	}
	if _, err := s.SubmitAnswer(); err != nil {
		t.Fatal(err)
	}

	// Still inside the feedback window: the question is committed and must
	// not score or advance a second time.
	if _, err := s.SubmitAnswer(); !errors.Is(err, quizsession.ErrAlreadyAnswered) {
		t.Fatalf("expected ErrAlreadyAnswered on repeat submit, got %v", err)
	}
	if got := s.Score(); got != 10 {
		t.Errorf("expected score 10 after repeat submit, got %d", got)
	}

	waitUntil(t, "advance to question 2", func() bool {
		return s.Progress().Current == 2
	})

	// Exactly one advance fired: question 2 is live, the session goes on.
	time.Sleep(100 * time.Millisecond)
	if s.Ended() {
		t.Error("repeat submit must not end the session early")
	}
	if got := s.Progress().Current; got != 2 {
		t.Errorf("expected to sit on question 2, got %d", got)
	}
}

func TestSelectOption_OutOfRangeRejected(t *testing.T) {
	s := startedSession(t, 2, quizsession.DefaultConfig())

	if err := s.SelectOption(5); !errors.Is(err, quizsession.ErrInvalidSelection) {
		t.Fatalf("expected ErrInvalidSelection, got %v", err)
	}
	if err := s.SelectOption(-1); !errors.Is(err, quizsession.ErrInvalidSelection) {
		t.Fatalf("expected ErrInvalidSelection, got %v", err)
	}

	// The rejected call must not have committed anything.
	if _, err := s.SubmitAnswer(); !errors.Is(err, quizsession.ErrNoSelection) {
		t.Fatalf("expected ErrNoSelection after rejected select, got %v", err)
	}
}

func TestSelectOption_AnsweredQuestionRejected(t *testing.T) {
	cfg := quizsession.DefaultConfig()
	cfg.FeedbackDelay = time.Second // hold the session in its feedback window
	s := startedSession(t, 2, cfg)

	if err := s.SelectOption(0); err != nil {
		t.Fatal(err)
	}
	if _, err := s.SubmitAnswer(); err != nil {
		t.Fatal(err)
	}

	if err := s.SelectOption(1); !errors.Is(err, quizsession.ErrAlreadyAnswered) {
		t.Fatalf("expected ErrAlreadyAnswered, got %v", err)
	}
}

func TestDeferredAdvance_MovesToNextQuestion(t *testing.T) {
	cfg := quizsession.DefaultConfig()
	cfg.FeedbackDelay = 5 * time.Millisecond
	s := startedSession(t, 3, cfg)

	if err := s.SelectOption(0); err != nil {
		t.Fatal(err)
	}
	if _, err := s.SubmitAnswer(); err != nil {
		t.Fatal(err)
	}

	waitUntil(t, "advance to question 2", func() bool {
		return s.Progress().Current == 2
	})

	// The commit cleared the in-progress selection.
	if _, err := s.SubmitAnswer(); !errors.Is(err, quizsession.ErrNoSelection) {
		t.Fatalf("expected ErrNoSelection on fresh question, got %v", err)
	}
}

func TestStop_CancelsPendingAdvance(t *testing.T) {
	cfg := quizsession.DefaultConfig()
	cfg.FeedbackDelay = 20 * time.Millisecond
	s := startedSession(t, 1, cfg)

	if err := s.SelectOption(0); err != nil {
		t.Fatal(err)
	}
	if _, err := s.SubmitAnswer(); err != nil {
		t.Fatal(err)
	}
	s.Stop()

	time.Sleep(100 * time.Millisecond)
	if s.Ended() {
		t.Error("cancelled advance still ended the session")
	}
	if s.Active() {
		t.Error("expected session inactive after Stop")
	}
}

func TestEnd_Idempotent(t *testing.T) {
	s := startedSession(t, 2, quizsession.DefaultConfig())

	if err := s.SelectOption(0); err != nil {
		t.Fatal(err)
	}
	if _, err := s.SubmitAnswer(); err != nil {
		t.Fatal(err)
	}

	first := s.End()
	second := s.End()
	if first != second {
		t.Errorf("End not idempotent: %+v vs %+v", first, second)
	}
}

func TestEnd_FiresCallbackOnce(t *testing.T) {
	s, err := quizsession.Setup("css", poolOf("css", 2), quizsession.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	calls := 0
	s.OnEnd(func(quizsession.Results) { calls++ })
	s.Start()

	s.End()
	s.End()
	if calls != 1 {
		t.Errorf("expected 1 end callback, got %d", calls)
	}
}

func TestScoringAndPercentageLaws(t *testing.T) {
	cfg := quizsession.DefaultConfig()
	cfg.FeedbackDelay = time.Millisecond
	s := startedSession(t, 3, cfg)

	// Answer the first question correctly, then end with two unanswered:
	// 1/3 correct rounds to 33.
	q, _ := s.CurrentQuestion()
	if err := s.SelectOption(q.CorrectIndex); err != nil {
		t.Fatal(err)
	}
	if _, err := s.SubmitAnswer(); err != nil {
		t.Fatal(err)
	}
	waitUntil(t, "advance to question 2", func() bool {
		return s.Progress().Current == 2
	})

	res := s.End()
	if res.Score != res.Correct*10 {
		t.Errorf("score %d != correct %d * 10", res.Score, res.Correct)
	}
	if res.Correct != 1 || res.Total != 3 {
		t.Fatalf("unexpected results %+v", res)
	}
	if res.Percentage != 33 {
		t.Errorf("expected percentage 33, got %d", res.Percentage)
	}
}

func TestReview_ListsEveryQuestion(t *testing.T) {
	cfg := quizsession.DefaultConfig()
	cfg.FeedbackDelay = time.Millisecond
	s := startedSession(t, 2, cfg)

	q, _ := s.CurrentQuestion()
	if err := s.SelectOption(q.CorrectIndex); err != nil {
		t.Fatal(err)
	}
	if _, err := s.SubmitAnswer(); err != nil {
		t.Fatal(err)
	}
	waitUntil(t, "advance to question 2", func() bool {
		return s.Progress().Current == 2
	})
	s.End()

	review := s.Review()
	if len(review) != 2 {
		t.Fatalf("expected 2 review items, got %d", len(review))
	}

	first := review[0]
	if !first.IsCorrect || first.WasSkipped {
		t.Errorf("unexpected first review item %+v", first)
	}
	if first.UserAnswer != first.CorrectAnswer {
		t.Errorf("expected matching answer texts, got %q vs %q", first.UserAnswer, first.CorrectAnswer)
	}

	second := review[1]
	if second.UserAnswer != quizsession.NotAnswered || !second.WasSkipped {
		t.Errorf("unexpected second review item %+v", second)
	}
	if second.IsCorrect {
		t.Error("unanswered question marked correct")
	}
}
