package importer

import (
	"time"

	"github.com/alexanderramin/punchclock/internal/domain"
	"github.com/google/uuid"
)

// ToSessions converts validated evidence records into completed sessions.
// Imported sessions carry no breaks; the estimator already reports net
// working intervals.
func ToSessions(f *EvidenceFile) ([]*domain.Session, error) {
	if errs := ValidateEvidence(f); len(errs) > 0 {
		return nil, errs[0]
	}

	sessions := make([]*domain.Session, 0, len(f.Records))
	for _, rec := range f.Records {
		start, _ := time.Parse(time.RFC3339, rec.Start)
		end, _ := time.Parse(time.RFC3339, rec.End)

		note := rec.Note
		if note == "" {
			note = "imported evidence"
		}
		sessions = append(sessions, &domain.Session{
			ID:      uuid.New().String(),
			Account: domain.AccountID(rec.Account),
			Project: rec.Project,
			Start:   start,
			End:     &end,
			Status:  domain.StatusCompleted,
			Note:    note,
		})
	}
	return sessions, nil
}
