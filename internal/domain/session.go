package domain

import (
	"time"
)

// BreakInterval is one pause inside a session. End is nil while the break
// is still open.
type BreakInterval struct {
	Start time.Time  `json:"start"`
	End   *time.Time `json:"end,omitempty"`
}

// Session is one continuous work engagement from start to end, including
// its break intervals. A completed session is immutable history.
type Session struct {
	ID      string          `json:"id"`
	Account AccountID       `json:"account"`
	Project string          `json:"project"`
	Start   time.Time       `json:"start"`
	End     *time.Time      `json:"end,omitempty"`
	Breaks  []BreakInterval `json:"breaks"`
	Status  SessionStatus   `json:"status"`
	Note    string          `json:"note,omitempty"`
}

// State maps the session status onto the punch state it implies.
func (s *Session) State() PunchState {
	switch s.Status {
	case StatusActive:
		return StateWorking
	case StatusOnBreak:
		return StateOnBreak
	default:
		return StateIdle
	}
}

// Completed reports whether the session has ended.
func (s *Session) Completed() bool { return s.Status == StatusCompleted }

// StartBreak opens a new break interval at now.
func (s *Session) StartBreak(now time.Time) error {
	if s.Status != StatusActive {
		return &StateError{Op: "break", State: s.State()}
	}
	s.Breaks = append(s.Breaks, BreakInterval{Start: now})
	s.Status = StatusOnBreak
	return nil
}

// EndBreak closes the open break interval at now.
func (s *Session) EndBreak(now time.Time) error {
	if s.Status != StatusOnBreak {
		return &StateError{Op: "resume", State: s.State()}
	}
	s.Breaks[len(s.Breaks)-1].End = &now
	s.Status = StatusActive
	return nil
}

// Complete ends the session at now. A still-open break is closed at the
// same instant before the session is marked completed.
func (s *Session) Complete(now time.Time) error {
	switch s.Status {
	case StatusActive:
	case StatusOnBreak:
		s.Breaks[len(s.Breaks)-1].End = &now
	default:
		return &StateError{Op: "end", State: s.State()}
	}
	end := now
	s.End = &end
	s.Status = StatusCompleted
	return nil
}

// NetMinutes returns worked minutes net of breaks, truncated to whole
// minutes. For a session that has not ended (or a break that is still open)
// asOf is used as the provisional end.
func (s *Session) NetMinutes(asOf time.Time) int {
	end := asOf
	if s.End != nil {
		end = *s.End
	}
	total := end.Sub(s.Start)

	var paused time.Duration
	for _, b := range s.Breaks {
		bEnd := asOf
		if b.End != nil {
			bEnd = *b.End
		} else if s.End != nil {
			// Should not happen for well-formed history; ignore the
			// open break rather than count it against the session.
			continue
		}
		paused += bEnd.Sub(b.Start)
	}

	m := int((total - paused).Minutes())
	if m < 0 {
		return 0
	}
	return m
}

// Date returns the calendar date of the session start, formatted
// YYYY-MM-DD in the start's own location.
func (s *Session) Date() string {
	return s.Start.Format("2006-01-02")
}

// Validate checks structural invariants: timestamps must be monotonic
// (start ≤ break₁.start ≤ break₁.end ≤ … ≤ end) and status must agree with
// the end timestamp.
func (s *Session) Validate() error {
	if _, err := ParseAccountID(string(s.Account)); err != nil {
		return err
	}
	if s.Project == "" {
		return &ValidationError{Field: "project", Reason: "must not be empty"}
	}
	if s.Start.IsZero() {
		return &ValidationError{Field: "start", Reason: "must be set"}
	}

	cursor := s.Start
	for i, b := range s.Breaks {
		if b.Start.Before(cursor) {
			return &ValidationError{Field: "breaks", Reason: "break start precedes previous timestamp"}
		}
		cursor = b.Start
		if b.End != nil {
			if b.End.Before(cursor) {
				return &ValidationError{Field: "breaks", Reason: "break end precedes break start"}
			}
			cursor = *b.End
		} else if i != len(s.Breaks)-1 {
			return &ValidationError{Field: "breaks", Reason: "only the last break may be open"}
		}
	}

	if s.End != nil {
		if s.End.Before(cursor) {
			return &ValidationError{Field: "end", Reason: "end precedes last break timestamp"}
		}
		if s.Status != StatusCompleted {
			return &ValidationError{Field: "status", Reason: "end is set but status is not completed"}
		}
	} else if s.Status == StatusCompleted {
		return &ValidationError{Field: "status", Reason: "completed session has no end"}
	}
	return nil
}
