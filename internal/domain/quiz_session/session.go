package quizsession

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/codequiz/backend/internal/domain/question"
	"github.com/codequiz/backend/internal/id"
)

var (
	ErrNoQuestions      = errors.New("no questions available for this category")
	ErrInvalidSelection = errors.New("selected option is out of range")
	ErrNoSelection      = errors.New("no option selected")
	ErrAlreadyAnswered  = errors.New("current question already answered")
	ErrSessionEnded     = errors.New("quiz session has ended")
)

// Answer sentinels. Recorded answers are option indexes (>= 0); the
// sentinels distinguish "never answered" from "ran out of time".
const (
	AnswerUnset   = -2
	AnswerSkipped = -1
)

// PresentedQuestion is a pool question with its per-session option order.
// Options is a permutation of the original options and CorrectIndex is the
// position of the originally-correct option within that permutation.
type PresentedQuestion struct {
	ID           string
	Text         string
	Options      []string
	CorrectIndex int
}

// Session is one complete quiz attempt. All state transitions serialize on
// the internal mutex: user calls, timer ticks and the deferred advance never
// mutate the session concurrently. The generation counter makes stale
// scheduled callbacks inert after Stop.
type Session struct {
	ID       string
	Category string

	mu        sync.Mutex
	questions []PresentedQuestion
	current   int
	answers   []int
	selected  int
	score     int
	totalTime int // seconds
	remaining int // seconds
	active    bool
	ended     bool
	results   *Results
	startedAt time.Time

	cfg        Config
	gen        uint64
	cancelTick context.CancelFunc
	advance    *time.Timer
	onEnd      func(Results)
}

// Setup draws a quiz session for a category from the given question pool.
// It filters the pool, draws min(cfg.QuestionsPerQuiz, available) questions
// without replacement and shuffles each question's options, tracking where
// the correct option lands. The session is created stopped; call Start to
// begin the countdown.
func Setup(cat string, pool []question.Question, cfg Config) (*Session, error) {
	var filtered []question.Question
	for _, q := range pool {
		if q.Category == cat {
			filtered = append(filtered, q)
		}
	}
	if len(filtered) == 0 {
		return nil, ErrNoQuestions
	}

	drawn := make([]question.Question, len(filtered))
	copy(drawn, filtered)
	rand.Shuffle(len(drawn), func(i, j int) {
		drawn[i], drawn[j] = drawn[j], drawn[i]
	})
	if cfg.QuestionsPerQuiz > 0 && cfg.QuestionsPerQuiz < len(drawn) {
		drawn = drawn[:cfg.QuestionsPerQuiz]
	}

	presented := make([]PresentedQuestion, len(drawn))
	for i, q := range drawn {
		presented[i] = present(q)
	}

	answers := make([]int, len(presented))
	for i := range answers {
		answers[i] = AnswerUnset
	}

	total := len(presented) * cfg.SecondsPerQuestion

	return &Session{
		ID:        id.New(),
		Category:  cat,
		questions: presented,
		answers:   answers,
		selected:  AnswerUnset,
		totalTime: total,
		remaining: total,
		cfg:       cfg,
	}, nil
}

// present shuffles a question's options while tracking the correct one.
func present(q question.Question) PresentedQuestion {
	type option struct {
		text    string
		correct bool
	}

	opts := make([]option, len(q.Options))
	for i, text := range q.Options {
		opts[i] = option{text: text, correct: i == q.CorrectIndex}
	}
	rand.Shuffle(len(opts), func(i, j int) {
		opts[i], opts[j] = opts[j], opts[i]
	})

	p := PresentedQuestion{
		ID:      q.ID,
		Text:    q.Text,
		Options: make([]string, len(opts)),
	}
	for i, o := range opts {
		p.Options[i] = o.text
		if o.correct {
			p.CorrectIndex = i
		}
	}
	return p
}

// OnEnd registers a callback invoked once when the session ends, whether by
// answering the last question or by running out of time. Must be called
// before Start.
func (s *Session) OnEnd(fn func(Results)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onEnd = fn
}

// Progress reports the 1-based position within the quiz.
type Progress struct {
	Current    int
	Total      int
	Percentage float64
}

// CurrentQuestion returns the question at the session's current position.
// The second return is false once the session has ended.
func (s *Session) CurrentQuestion() (PresentedQuestion, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ended {
		return PresentedQuestion{}, false
	}
	return s.questions[s.current], true
}

// Progress returns how far into the quiz the player is.
func (s *Session) Progress() Progress {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := len(s.questions)
	return Progress{
		Current:    s.current + 1,
		Total:      total,
		Percentage: float64(s.current+1) / float64(total) * 100,
	}
}

// RemainingTime returns the seconds left on the session clock.
func (s *Session) RemainingTime() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.remaining
}

// TotalTime returns the full session time in seconds.
func (s *Session) TotalTime() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalTime
}

// Score returns the accumulated score.
func (s *Session) Score() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.score
}

// Answers returns a copy of the recorded answer slice.
func (s *Session) Answers() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]int, len(s.answers))
	copy(out, s.answers)
	return out
}

// Questions returns the session's presented questions in order.
func (s *Session) Questions() []PresentedQuestion {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]PresentedQuestion, len(s.questions))
	copy(out, s.questions)
	return out
}

// Active reports whether the countdown is running.
func (s *Session) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// Ended reports whether the session has reached its terminal state.
func (s *Session) Ended() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ended
}
