package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/punchclock/internal/domain"
	"github.com/alexanderramin/punchclock/internal/importer"
	"github.com/alexanderramin/punchclock/internal/storage"
)

type importService struct {
	store *storage.Store
}

// NewImportService returns the evidence import facade. Imports merge
// through the same storage engine as punches and never bypass its locking.
func NewImportService(store *storage.Store) ImportService {
	return &importService{store: store}
}

func (s *importService) ImportEvidence(ctx context.Context, path string, dryRun bool) (*ImportResult, error) {
	file, err := importer.LoadEvidenceFile(path)
	if err != nil {
		return nil, err
	}
	if errs := importer.ValidateEvidence(file); len(errs) > 0 {
		return nil, fmt.Errorf("evidence file %s: %w", path, errors.Join(errs...))
	}
	sessions, err := importer.ToSessions(file)
	if err != nil {
		return nil, err
	}

	result := &ImportResult{}
	apply := func(doc *storage.Document) error {
		for _, session := range sessions {
			if hasDuplicate(doc, session) {
				result.SkippedDuplicates++
				continue
			}
			result.Imported++
			result.TotalMinutes += session.NetMinutes(time.Time{})
			if !dryRun {
				ad := doc.Account(session.Account)
				ad.Sessions = append(ad.Sessions, session)
			}
		}
		return nil
	}

	if dryRun {
		err = s.store.View(ctx, apply)
	} else {
		err = s.store.Update(ctx, apply)
	}
	if err != nil {
		return nil, err
	}
	return result, nil
}

// hasDuplicate reports whether the account already holds a session with the
// same project and start instant; re-running an import must not double
// history.
func hasDuplicate(doc *storage.Document, candidate *domain.Session) bool {
	for _, s := range doc.Sessions(candidate.Account) {
		if s.Project == candidate.Project && s.Start.Equal(candidate.Start) {
			return true
		}
	}
	return false
}
