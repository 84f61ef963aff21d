package quizsession

import "math"

// Results is the terminal artifact of a session. It is computed once; a
// second end request returns the same value.
type Results struct {
	QuizID     string
	Category   string
	Score      int
	Correct    int
	Wrong      int
	Total      int
	Percentage int // round-half-up of correct/total
	TimeTaken  int // seconds
}

// ReviewItem is one question's entry in the post-quiz review.
type ReviewItem struct {
	QuestionText  string
	Options       []string
	UserAnswer    string
	CorrectAnswer string
	IsCorrect     bool
	WasSkipped    bool
}

// NotAnswered is the review placeholder for skipped or unanswered questions.
const NotAnswered = "Not answered"

// End finishes the session immediately and returns its Results. Ending an
// already ended session returns the previously computed Results unchanged.
func (s *Session) End() Results {
	s.mu.Lock()
	already := s.ended
	res := s.endLocked()
	s.mu.Unlock()
	if !already {
		s.notifyEnd(res)
	}
	return res
}

// Results returns the compiled results, or false while the session is still
// running.
func (s *Session) Results() (Results, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.results == nil {
		return Results{}, false
	}
	return *s.results, true
}

// endLocked stops the timers and compiles results exactly once. Callers
// hold the mutex and are responsible for notifyEnd on the first transition.
func (s *Session) endLocked() Results {
	if s.ended {
		return *s.results
	}
	s.stopLocked()
	s.ended = true

	correct := 0
	for i, a := range s.answers {
		if a >= 0 && a == s.questions[i].CorrectIndex {
			correct++
		}
	}
	total := len(s.questions)

	res := Results{
		QuizID:     s.ID,
		Category:   s.Category,
		Score:      s.score,
		Correct:    correct,
		Wrong:      total - correct,
		Total:      total,
		Percentage: int(math.Round(float64(correct) / float64(total) * 100)),
		TimeTaken:  s.totalTime - s.remaining,
	}
	s.results = &res
	return res
}

func (s *Session) notifyEnd(res Results) {
	if s.onEnd != nil {
		s.onEnd(res)
	}
}

// Review builds the per-question review sequence: what was presented, what
// the player picked and what the correct answer was.
func (s *Session) Review() []ReviewItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]ReviewItem, len(s.questions))
	for i, q := range s.questions {
		a := s.answers[i]
		item := ReviewItem{
			QuestionText:  q.Text,
			Options:       q.Options,
			CorrectAnswer: q.Options[q.CorrectIndex],
			UserAnswer:    NotAnswered,
			WasSkipped:    a == AnswerSkipped || a == AnswerUnset,
		}
		if a >= 0 {
			item.UserAnswer = q.Options[a]
			item.IsCorrect = a == q.CorrectIndex
		}
		items[i] = item
	}
	return items
}
