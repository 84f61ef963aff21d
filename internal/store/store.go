package store

import (
	"context"
	"errors"
	"time"

	"github.com/codequiz/backend/internal/domain/leaderboard"
	"github.com/codequiz/backend/internal/domain/question"
	quizsession "github.com/codequiz/backend/internal/domain/quiz_session"
	"github.com/codequiz/backend/internal/domain/user"
)

var (
	ErrNotFound = errors.New("not found")
)

// StoredResult is a finished quiz as kept in a user's history.
type StoredResult struct {
	ID       string
	Username string
	quizsession.Results
	CreatedAt time.Time
}

// Store is the persistence collaborator: the question pool, registered
// users, per-user result history and the leaderboard. The quiz engine never
// touches it directly.
type Store interface {
	SaveQuestion(ctx context.Context, q question.Question) error
	ListQuestions(ctx context.Context) ([]question.Question, error)
	ListQuestionsByCategory(ctx context.Context, category string) ([]question.Question, error)
	DeleteQuestion(ctx context.Context, id string) error
	QuestionCounts(ctx context.Context) (map[string]int, error)

	SaveUser(ctx context.Context, u *user.User) error
	GetUser(ctx context.Context, username string) (*user.User, error)

	SaveResult(ctx context.Context, username string, res quizsession.Results) error
	ListResults(ctx context.Context, username string) ([]StoredResult, error)

	SaveLeaderboardEntry(ctx context.Context, e leaderboard.Entry) error
	ListLeaderboard(ctx context.Context, category string) ([]leaderboard.Entry, error)
}
