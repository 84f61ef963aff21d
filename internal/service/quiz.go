// internal/service/quiz.go
package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/codequiz/backend/internal/domain/leaderboard"
	quizsession "github.com/codequiz/backend/internal/domain/quiz_session"
	"github.com/codequiz/backend/internal/domain/user"
	"github.com/codequiz/backend/internal/store"
	"github.com/codequiz/backend/internal/worker"
)

var ErrQuizNotFound = errors.New("quiz not found")

// QuizService owns the active quiz sessions and wires finished quizzes to
// the persistence collaborator. The engine itself is identity-agnostic: it
// always produces Results, and this service decides whether they are stored.
type QuizService struct {
	store  store.Store
	cfg    quizsession.Config
	logger *slog.Logger
	pool   *worker.Pool

	mu       sync.Mutex
	sessions map[string]*quizsession.Session
	pending  map[string]*sync.WaitGroup // quizID → outstanding persistence jobs
}

// NewQuizService creates a QuizService with a small worker pool for
// result/leaderboard writes.
func NewQuizService(s store.Store, cfg quizsession.Config, logger *slog.Logger) *QuizService {
	qs := &QuizService{
		store:    s,
		cfg:      cfg,
		logger:   logger,
		pool:     worker.NewPool(2, 16),
		sessions: make(map[string]*quizsession.Session),
		pending:  make(map[string]*sync.WaitGroup),
	}
	go qs.drainResults()
	return qs
}

func (qs *QuizService) drainResults() {
	for r := range qs.pool.Results() {
		if r.Err != nil {
			qs.logger.Error("persistence job failed", "job", r.JobID, "error", r.Err)
		}
	}
}

// StartQuiz samples a session for the category, registers it and starts its
// countdown. Username decides persistence on finish; guests play without
// being stored.
func (qs *QuizService) StartQuiz(ctx context.Context, category, username string) (*quizsession.Session, error) {
	pool, err := qs.store.ListQuestionsByCategory(ctx, category)
	if err != nil {
		return nil, err
	}

	session, err := quizsession.Setup(category, pool, qs.cfg)
	if err != nil {
		return nil, err
	}

	session.OnEnd(func(res quizsession.Results) {
		qs.persistResults(username, res)
	})

	qs.mu.Lock()
	qs.sessions[session.ID] = session
	qs.pending[session.ID] = &sync.WaitGroup{}
	qs.mu.Unlock()

	session.Start()
	return session, nil
}

// Get returns an active or finished session by id.
func (qs *QuizService) Get(quizID string) (*quizsession.Session, error) {
	qs.mu.Lock()
	defer qs.mu.Unlock()
	session, ok := qs.sessions[quizID]
	if !ok {
		return nil, ErrQuizNotFound
	}
	return session, nil
}

// Abandon stops a session and drops it from the registry. Stopping cancels
// the countdown and any pending advance before the reference is released,
// so a superseded session can never mutate state afterwards.
func (qs *QuizService) Abandon(quizID string) error {
	qs.mu.Lock()
	session, ok := qs.sessions[quizID]
	if ok {
		delete(qs.sessions, quizID)
		delete(qs.pending, quizID)
	}
	qs.mu.Unlock()

	if !ok {
		return ErrQuizNotFound
	}
	session.Stop()
	return nil
}

// persistResults hands the finished quiz to the store through the worker
// pool. It uses context.Background because persistence runs asynchronously
// and must not be cancelled when the originating HTTP request ends.
func (qs *QuizService) persistResults(username string, res quizsession.Results) {
	if username == "" || username == user.GuestName {
		return
	}

	qs.mu.Lock()
	wg := qs.pending[res.QuizID]
	qs.mu.Unlock()
	if wg != nil {
		wg.Add(2)
	}

	entry := leaderboard.FromResults(username, res)

	qs.pool.Submit(res.QuizID+"/result", func() error {
		if wg != nil {
			defer wg.Done()
		}
		return qs.store.SaveResult(context.Background(), username, res)
	})
	qs.pool.Submit(res.QuizID+"/leaderboard", func() error {
		if wg != nil {
			defer wg.Done()
		}
		return qs.store.SaveLeaderboardEntry(context.Background(), entry)
	})
}

// WaitForPersistence blocks until the finished quiz's writes have landed.
func (qs *QuizService) WaitForPersistence(quizID string) {
	qs.mu.Lock()
	wg := qs.pending[quizID]
	qs.mu.Unlock()

	if wg != nil {
		wg.Wait()
	}
}
