// internal/store/sqlite.go
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/codequiz/backend/internal/domain/leaderboard"
	"github.com/codequiz/backend/internal/domain/question"
	quizsession "github.com/codequiz/backend/internal/domain/quiz_session"
	"github.com/codequiz/backend/internal/domain/user"
)

const schema = `
CREATE TABLE IF NOT EXISTS questions (
    id TEXT PRIMARY KEY,
    category TEXT NOT NULL,
    text TEXT NOT NULL,
    options TEXT NOT NULL,
    correct_index INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS users (
    username TEXT PRIMARY KEY COLLATE NOCASE,
    password_hash TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS results (
    id TEXT PRIMARY KEY,
    username TEXT NOT NULL,
    category TEXT NOT NULL,
    score INTEGER NOT NULL,
    correct INTEGER NOT NULL,
    wrong INTEGER NOT NULL,
    total INTEGER NOT NULL,
    percentage INTEGER NOT NULL,
    time_taken INTEGER NOT NULL,
    created_at TIMESTAMP NOT NULL,
    FOREIGN KEY (username) REFERENCES users(username)
);

CREATE TABLE IF NOT EXISTS leaderboard (
    id TEXT PRIMARY KEY,
    username TEXT NOT NULL,
    category TEXT NOT NULL,
    score INTEGER NOT NULL,
    time_taken INTEGER NOT NULL,
    correct INTEGER NOT NULL,
    total INTEGER NOT NULL,
    created_at TIMESTAMP NOT NULL
);
`

type SQLiteStore struct {
	db *sql.DB
}

func NewSQLite(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(schema); err != nil {
		return nil, err
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// ============================================================================
// Questions
// ============================================================================

func (s *SQLiteStore) SaveQuestion(ctx context.Context, q question.Question) error {
	optionsJSON, err := json.Marshal(q.Options)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		"INSERT INTO questions (id, category, text, options, correct_index) VALUES (?, ?, ?, ?, ?)",
		q.ID, q.Category, q.Text, string(optionsJSON), q.CorrectIndex,
	)
	return err
}

func (s *SQLiteStore) ListQuestions(ctx context.Context) ([]question.Question, error) {
	return s.queryQuestions(ctx, "SELECT id, category, text, options, correct_index FROM questions")
}

func (s *SQLiteStore) ListQuestionsByCategory(ctx context.Context, category string) ([]question.Question, error) {
	return s.queryQuestions(ctx,
		"SELECT id, category, text, options, correct_index FROM questions WHERE category = ?", category)
}

func (s *SQLiteStore) queryQuestions(ctx context.Context, query string, args ...any) ([]question.Question, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var questions []question.Question
	for rows.Next() {
		var q question.Question
		var optionsJSON string
		if err := rows.Scan(&q.ID, &q.Category, &q.Text, &optionsJSON, &q.CorrectIndex); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(optionsJSON), &q.Options); err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, rows.Err()
}

func (s *SQLiteStore) DeleteQuestion(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM questions WHERE id = ?", id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLiteStore) QuestionCounts(ctx context.Context) (map[string]int, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT category, COUNT(*) FROM questions GROUP BY category")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var category string
		var n int
		if err := rows.Scan(&category, &n); err != nil {
			return nil, err
		}
		counts[category] = n
	}
	return counts, rows.Err()
}

// ============================================================================
// Users
// ============================================================================

func (s *SQLiteStore) SaveUser(ctx context.Context, u *user.User) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO users (username, password_hash, created_at) VALUES (?, ?, ?)",
		u.Username, u.PasswordHash, u.CreatedAt,
	)
	return err
}

func (s *SQLiteStore) GetUser(ctx context.Context, username string) (*user.User, error) {
	var u user.User
	err := s.db.QueryRowContext(ctx,
		"SELECT username, password_hash, created_at FROM users WHERE username = ?", username,
	).Scan(&u.Username, &u.PasswordHash, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// ============================================================================
// Results
// ============================================================================

func (s *SQLiteStore) SaveResult(ctx context.Context, username string, res quizsession.Results) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO results (id, username, category, score, correct, wrong, total, percentage, time_taken, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		uuid.NewString(), username, res.Category, res.Score, res.Correct, res.Wrong,
		res.Total, res.Percentage, res.TimeTaken, time.Now().UTC(),
	)
	return err
}

func (s *SQLiteStore) ListResults(ctx context.Context, username string) ([]StoredResult, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, username, category, score, correct, wrong, total, percentage, time_taken, created_at
		 FROM results WHERE username = ? ORDER BY created_at DESC`, username)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []StoredResult
	for rows.Next() {
		var r StoredResult
		if err := rows.Scan(&r.ID, &r.Username, &r.Category, &r.Score, &r.Correct,
			&r.Wrong, &r.Total, &r.Percentage, &r.TimeTaken, &r.CreatedAt); err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, rows.Err()
}

// ============================================================================
// Leaderboard
// ============================================================================

func (s *SQLiteStore) SaveLeaderboardEntry(ctx context.Context, e leaderboard.Entry) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO leaderboard (id, username, category, score, time_taken, correct, total, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Username, e.Category, e.Score, e.TimeTaken, e.Correct, e.Total, time.Now().UTC(),
	)
	return err
}

func (s *SQLiteStore) ListLeaderboard(ctx context.Context, category string) ([]leaderboard.Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, username, category, score, time_taken, correct, total, created_at FROM leaderboard")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []leaderboard.Entry
	for rows.Next() {
		var e leaderboard.Entry
		if err := rows.Scan(&e.ID, &e.Username, &e.Category, &e.Score, &e.TimeTaken,
			&e.Correct, &e.Total, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	entries = leaderboard.Filter(entries, category)
	leaderboard.Sort(entries)
	return entries, nil
}
