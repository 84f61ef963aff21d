package quizsession

import "time"

// Config holds the tuning knobs for a quiz session.
type Config struct {
	QuestionsPerQuiz   int // upper bound on questions drawn per quiz
	SecondsPerQuestion int // total quiz time = questions * this
	PointsPerCorrect   int
	WarningThreshold   int // seconds remaining at which the warning band starts
	DangerThreshold    int // seconds remaining at which the danger band starts

	// FeedbackDelay is how long the answer feedback stays on screen before
	// the session advances to the next question. TickInterval is the timer
	// period; one tick counts down one second of quiz time regardless of
	// the wall-clock interval, which keeps tests fast.
	FeedbackDelay time.Duration
	TickInterval  time.Duration
}

// DefaultConfig returns the standard quiz settings.
func DefaultConfig() Config {
	return Config{
		QuestionsPerQuiz:   10,
		SecondsPerQuestion: 60,
		PointsPerCorrect:   10,
		WarningThreshold:   120,
		DangerThreshold:    60,
		FeedbackDelay:      time.Second,
		TickInterval:       time.Second,
	}
}
