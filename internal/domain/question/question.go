package question

import (
	"errors"
	"fmt"
)

// Question is a multiple-choice question as stored in the pool. Options keep
// their authored order; CorrectIndex points into Options.
type Question struct {
	ID           string
	Category     string
	Text         string
	Options      []string
	CorrectIndex int
}

// Validate checks that a question is well formed before it enters the pool.
func (q *Question) Validate() error {
	if q.Text == "" {
		return errors.New("question text is required")
	}
	if q.Category == "" {
		return errors.New("category is required")
	}
	if len(q.Options) < 2 {
		return errors.New("a question needs at least two options")
	}
	if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
		return fmt.Errorf("correct index %d out of range for %d options", q.CorrectIndex, len(q.Options))
	}
	return nil
}
