package service

import (
	"context"
	"time"

	"github.com/alexanderramin/punchclock/internal/domain"
	"github.com/alexanderramin/punchclock/internal/period"
	"github.com/alexanderramin/punchclock/internal/report"
	"github.com/alexanderramin/punchclock/internal/storage"
)

type reportService struct {
	store  *storage.Store
	policy report.OvertimePolicy
	now    func() time.Time
}

// NewReportService returns the report aggregation facade. The overtime
// policy is proportional apportionment unless overridden.
func NewReportService(store *storage.Store, policy report.OvertimePolicy) ReportService {
	if policy == nil {
		policy = report.Proportional{}
	}
	return &reportService{store: store, policy: policy, now: time.Now}
}

func (s *reportService) Daily(ctx context.Context, account domain.AccountID, date string) (*report.DailyReport, error) {
	if date == "" {
		date = s.now().Format("2006-01-02")
	}
	var r report.DailyReport
	err := s.store.View(ctx, func(doc *storage.Document) error {
		r = report.Daily(doc.Sessions(account), date, doc.Config(account))
		return nil
	})
	if err != nil {
		return nil, err
	}
	r.Account = account
	return &r, nil
}

func (s *reportService) Project(ctx context.Context, account domain.AccountID, project, from, to string) (*report.ProjectReport, error) {
	var r report.ProjectReport
	err := s.store.View(ctx, func(doc *storage.Document) error {
		r = report.Project(doc.Sessions(account), project, from, to)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *reportService) Monthly(ctx context.Context, account domain.AccountID, year int, month time.Month) (*report.MonthlyReport, error) {
	var r report.MonthlyReport
	err := s.store.View(ctx, func(doc *storage.Document) error {
		cfg := doc.Config(account)
		p := period.FromKey(year, month, cfg.ClosingDay, s.now().Location())
		r = report.Monthly(doc.Sessions(account), cfg, p, s.policy)
		return nil
	})
	if err != nil {
		return nil, err
	}
	r.Account = account
	return &r, nil
}

func (s *reportService) Accounts(ctx context.Context) ([]domain.AccountID, error) {
	var ids []domain.AccountID
	err := s.store.View(ctx, func(doc *storage.Document) error {
		ids = doc.AccountIDs()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (s *reportService) Projects(ctx context.Context, account domain.AccountID) ([]string, error) {
	var projects []string
	err := s.store.View(ctx, func(doc *storage.Document) error {
		projects = doc.Projects(account)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return projects, nil
}
