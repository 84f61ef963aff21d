package quizsession

import (
	"context"
	"time"
)

// TimeBand classifies remaining time for presentation.
type TimeBand int

const (
	BandNormal TimeBand = iota
	BandWarning
	BandDanger
)

func (b TimeBand) String() string {
	switch b {
	case BandWarning:
		return "warning"
	case BandDanger:
		return "danger"
	default:
		return "normal"
	}
}

// BandFor classifies a remaining-seconds value against the configured
// thresholds.
func BandFor(remaining int, cfg Config) TimeBand {
	switch {
	case remaining <= cfg.DangerThreshold:
		return BandDanger
	case remaining <= cfg.WarningThreshold:
		return BandWarning
	default:
		return BandNormal
	}
}

// Band returns the time band for the session's current remaining time.
func (s *Session) Band() TimeBand {
	s.mu.Lock()
	defer s.mu.Unlock()
	return BandFor(s.remaining, s.cfg)
}

// Start begins the session countdown. One timer covers the whole quiz:
// reaching zero ends the entire session, not just the current question.
// Starting an already running or ended session is a no-op.
func (s *Session) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active || s.ended {
		return
	}
	s.active = true
	s.startedAt = time.Now()

	ctx, cancel := context.WithCancel(context.Background())
	s.cancelTick = cancel
	go s.tickLoop(ctx, s.gen)
}

func (s *Session) tickLoop(ctx context.Context, gen uint64) {
	ticker := time.NewTicker(s.cfg.TickInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if s.tick(gen) {
				return
			}
		}
	}
}

// tick counts down one second. It reports true when the loop should stop,
// either because time ran out or because the session was superseded.
func (s *Session) tick(gen uint64) bool {
	s.mu.Lock()
	if gen != s.gen || !s.active {
		s.mu.Unlock()
		return true
	}
	s.remaining--
	if s.remaining > 0 {
		s.mu.Unlock()
		return false
	}
	s.remaining = 0

	// Time up: everything not yet answered counts as skipped, including a
	// question sitting in its feedback window. Time-up wins over a pending
	// deferred advance.
	for i := s.current; i < len(s.answers); i++ {
		if s.answers[i] == AnswerUnset {
			s.answers[i] = AnswerSkipped
		}
	}
	res := s.endLocked()
	s.mu.Unlock()
	s.notifyEnd(res)
	return true
}

// Stop cancels the countdown and any pending deferred advance. It is
// idempotent, and once it returns no further mutation of the session can
// occur: the generation bump makes any in-flight tick or advance callback
// bail out when it next acquires the lock.
func (s *Session) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
}

func (s *Session) stopLocked() {
	s.gen++
	if s.cancelTick != nil {
		s.cancelTick()
		s.cancelTick = nil
	}
	if s.advance != nil {
		s.advance.Stop()
		s.advance = nil
	}
	s.active = false
}
