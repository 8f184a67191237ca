package service

import (
	"context"
	"time"

	"github.com/alexanderramin/punchclock/internal/domain"
	"github.com/alexanderramin/punchclock/internal/storage"
	"github.com/google/uuid"
)

type punchService struct {
	store *storage.Store
	now   func() time.Time
}

// NewPunchService returns the session state machine backed by the given
// store. State lives in the document only; every transition is one locked
// read-modify-write cycle.
func NewPunchService(store *storage.Store) PunchService {
	return &punchService{store: store, now: time.Now}
}

func (s *punchService) Start(ctx context.Context, account domain.AccountID, project string) (*domain.Session, error) {
	if _, err := domain.ParseAccountID(string(account)); err != nil {
		return nil, err
	}
	if project == "" {
		return nil, &domain.ValidationError{Field: "project", Reason: "must not be empty"}
	}

	var started *domain.Session
	err := s.store.Update(ctx, func(doc *storage.Document) error {
		if open := doc.OpenSession(account); open != nil {
			return &domain.ConflictError{Account: account, Project: open.Project}
		}
		started = &domain.Session{
			ID:      uuid.New().String(),
			Account: account,
			Project: project,
			Start:   s.now(),
			Status:  domain.StatusActive,
		}
		ad := doc.Account(account)
		ad.Sessions = append(ad.Sessions, started)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return started, nil
}

func (s *punchService) Break(ctx context.Context, account domain.AccountID) (*domain.Session, error) {
	return s.transition(ctx, account, "break", func(open *domain.Session) error {
		return open.StartBreak(s.now())
	})
}

func (s *punchService) Resume(ctx context.Context, account domain.AccountID) (*domain.Session, error) {
	return s.transition(ctx, account, "resume", func(open *domain.Session) error {
		return open.EndBreak(s.now())
	})
}

func (s *punchService) End(ctx context.Context, account domain.AccountID) (*domain.Session, error) {
	return s.transition(ctx, account, "end", func(open *domain.Session) error {
		return open.Complete(s.now())
	})
}

// transition applies fn to the account's open session inside one locked
// cycle. The absence of an open session means the account is idle, which is
// invalid for every non-start punch.
func (s *punchService) transition(ctx context.Context, account domain.AccountID, op string, fn func(*domain.Session) error) (*domain.Session, error) {
	var mutated *domain.Session
	err := s.store.Update(ctx, func(doc *storage.Document) error {
		open := doc.OpenSession(account)
		if open == nil {
			return &domain.StateError{Op: op, State: domain.StateIdle}
		}
		if err := fn(open); err != nil {
			return err
		}
		mutated = open
		return nil
	})
	if err != nil {
		return nil, err
	}
	return mutated, nil
}

func (s *punchService) Status(ctx context.Context, account domain.AccountID) (*PunchStatus, error) {
	status := &PunchStatus{Account: account, State: domain.StateIdle}
	err := s.store.View(ctx, func(doc *storage.Document) error {
		if open := doc.OpenSession(account); open != nil {
			status.State = open.State()
			status.Session = open
			status.WorkedMinutes = open.NetMinutes(s.now())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return status, nil
}
