package importer

import (
	"fmt"
	"time"

	"github.com/alexanderramin/punchclock/internal/domain"
)

// ValidateEvidence checks every record and returns all validation errors
// found, so a bad file is reported in one pass.
func ValidateEvidence(f *EvidenceFile) []error {
	var errs []error
	for i, rec := range f.Records {
		prefix := fmt.Sprintf("records[%d]", i)

		if _, err := domain.ParseAccountID(rec.Account); err != nil {
			errs = append(errs, fmt.Errorf("%s.account: %w", prefix, err))
		}
		if rec.Project == "" {
			errs = append(errs, fmt.Errorf("%s.project is required", prefix))
		}

		start, startErr := parseTimestamp(prefix+".start", rec.Start)
		if startErr != nil {
			errs = append(errs, startErr)
		}
		end, endErr := parseTimestamp(prefix+".end", rec.End)
		if endErr != nil {
			errs = append(errs, endErr)
		}
		if startErr == nil && endErr == nil && !end.After(start) {
			errs = append(errs, fmt.Errorf("%s: end %q must be after start %q", prefix, rec.End, rec.Start))
		}
	}
	return errs
}

func parseTimestamp(field, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("%s is required", field)
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s: invalid timestamp %q (expected RFC3339)", field, value)
	}
	return t, nil
}
