package testutil

import (
	"testing"
	"time"

	"github.com/alexanderramin/punchclock/internal/domain"
	"github.com/alexanderramin/punchclock/internal/storage"
	"github.com/google/uuid"
)

// NewTestStore opens a store on a per-test temporary directory.
func NewTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(t.TempDir())
	if err != nil {
		t.Fatalf("opening test store: %v", err)
	}
	return store
}

// SessionOption mutates a fixture session.
type SessionOption func(*domain.Session)

func WithNote(note string) SessionOption {
	return func(s *domain.Session) { s.Note = note }
}

func WithBreak(start, end time.Time) SessionOption {
	return func(s *domain.Session) {
		e := end
		s.Breaks = append(s.Breaks, domain.BreakInterval{Start: start, End: &e})
	}
}

// CompletedSession builds a completed session running [start, end) with no
// breaks unless options add them.
func CompletedSession(account domain.AccountID, project string, start, end time.Time, opts ...SessionOption) *domain.Session {
	e := end
	s := &domain.Session{
		ID:      uuid.New().String(),
		Account: account,
		Project: project,
		Start:   start,
		End:     &e,
		Status:  domain.StatusCompleted,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ActiveSession builds a still-running session started at start.
func ActiveSession(account domain.AccountID, project string, start time.Time) *domain.Session {
	return &domain.Session{
		ID:      uuid.New().String(),
		Account: account,
		Project: project,
		Start:   start,
		Status:  domain.StatusActive,
	}
}

// At builds a local timestamp for fixture data.
func At(year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, time.Local)
}
