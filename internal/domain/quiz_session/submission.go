package quizsession

import "time"

// Feedback is the payload shown after a submission: which option the player
// picked and where the correct one was.
type Feedback struct {
	Selected  int
	Correct   int
	IsCorrect bool
}

// SelectOption records an in-progress choice for the current question. It
// does not score anything; the choice is committed by SubmitAnswer. A
// rejected call leaves the session unchanged.
func (s *Session) SelectOption(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ended || !s.active {
		return ErrSessionEnded
	}
	if s.answers[s.current] != AnswerUnset {
		return ErrAlreadyAnswered
	}
	if index < 0 || index >= len(s.questions[s.current].Options) {
		return ErrInvalidSelection
	}
	s.selected = index
	return nil
}

// SubmitAnswer commits the selected option for the current question, scores
// it, resets the selection and schedules the deferred advance to the next
// question. It fails without side effects when nothing is selected, and a
// question accepts exactly one submission: a repeat call inside the feedback
// window is rejected with ErrAlreadyAnswered.
func (s *Session) SubmitAnswer() (Feedback, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ended || !s.active {
		return Feedback{}, ErrSessionEnded
	}
	if s.answers[s.current] != AnswerUnset {
		return Feedback{}, ErrAlreadyAnswered
	}
	if s.selected == AnswerUnset {
		return Feedback{}, ErrNoSelection
	}

	q := s.questions[s.current]
	fb := Feedback{
		Selected:  s.selected,
		Correct:   q.CorrectIndex,
		IsCorrect: s.selected == q.CorrectIndex,
	}

	s.answers[s.current] = s.selected
	s.selected = AnswerUnset
	if fb.IsCorrect {
		s.score += s.cfg.PointsPerCorrect
	}

	// One outstanding advance at most: the committed answer blocks a repeat
	// submit until the advance has fired and moved on.
	gen := s.gen
	s.advance = time.AfterFunc(s.cfg.FeedbackDelay, func() {
		s.advanceQuestion(gen)
	})
	return fb, nil
}

// advanceQuestion is the deferred continuation that runs after the feedback
// delay. A stale callback (session stopped or timed out in the meantime)
// observes a bumped generation and does nothing.
func (s *Session) advanceQuestion(gen uint64) {
	s.mu.Lock()
	if gen != s.gen || s.ended || !s.active {
		s.mu.Unlock()
		return
	}
	s.advance = nil

	if s.current < len(s.questions)-1 {
		s.current++
		s.mu.Unlock()
		return
	}

	res := s.endLocked()
	s.mu.Unlock()
	s.notifyEnd(res)
}
