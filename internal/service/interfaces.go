package service

import (
	"context"
	"time"

	"github.com/alexanderramin/punchclock/internal/domain"
	"github.com/alexanderramin/punchclock/internal/report"
)

// PunchStatus is a point-in-time snapshot of one account's punch state.
type PunchStatus struct {
	Account       domain.AccountID
	State         domain.PunchState
	Session       *domain.Session // nil when idle
	WorkedMinutes int             // net minutes worked so far, including the open session
}

type PunchService interface {
	Start(ctx context.Context, account domain.AccountID, project string) (*domain.Session, error)
	Break(ctx context.Context, account domain.AccountID) (*domain.Session, error)
	Resume(ctx context.Context, account domain.AccountID) (*domain.Session, error)
	End(ctx context.Context, account domain.AccountID) (*domain.Session, error)
	Status(ctx context.Context, account domain.AccountID) (*PunchStatus, error)
}

type ReportService interface {
	Daily(ctx context.Context, account domain.AccountID, date string) (*report.DailyReport, error)
	Project(ctx context.Context, account domain.AccountID, project, from, to string) (*report.ProjectReport, error)
	Monthly(ctx context.Context, account domain.AccountID, year int, month time.Month) (*report.MonthlyReport, error)
	Accounts(ctx context.Context) ([]domain.AccountID, error)
	Projects(ctx context.Context, account domain.AccountID) ([]string, error)
}

type ConfigService interface {
	Get(ctx context.Context, account domain.AccountID) (domain.AccountConfig, error)
	Set(ctx context.Context, account domain.AccountID, cfg domain.AccountConfig) error
}

// ImportResult is the outcome of an evidence import.
type ImportResult struct {
	Imported          int
	SkippedDuplicates int
	TotalMinutes      int
}

type ImportService interface {
	ImportEvidence(ctx context.Context, path string, dryRun bool) (*ImportResult, error)
}
