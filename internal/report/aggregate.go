// Package report turns stored sessions into daily, project and monthly
// summaries. It is pure aggregation over values already read from storage;
// rendering is the CLI's concern.
package report

import (
	"sort"
	"time"

	"github.com/alexanderramin/punchclock/internal/domain"
	"github.com/alexanderramin/punchclock/internal/period"
)

// DailyReport summarizes one account's completed sessions on one calendar
// date.
type DailyReport struct {
	Account         domain.AccountID
	Date            string
	TotalMinutes    int
	StandardMinutes int
	OvertimeMinutes int
	Projects        map[string]int
	Sessions        []*domain.Session
}

// Daily groups completed sessions by the calendar date of their start and
// reports the given date. Overtime is minutes beyond the standard day,
// floored at zero.
func Daily(sessions []*domain.Session, date string, cfg domain.AccountConfig) DailyReport {
	r := DailyReport{
		Date:            date,
		StandardMinutes: cfg.StandardMinutes(),
		Projects:        map[string]int{},
	}
	for _, s := range sessions {
		if !s.Completed() || s.Date() != date {
			continue
		}
		r.Account = s.Account
		m := s.NetMinutes(time.Time{})
		r.TotalMinutes += m
		r.Projects[s.Project] += m
		r.Sessions = append(r.Sessions, s)
	}
	if over := r.TotalMinutes - r.StandardMinutes; over > 0 {
		r.OvertimeMinutes = over
	}
	return r
}

// ProjectReport summarizes one project across an arbitrary date range.
// Overtime is date-scoped, not project-scoped, so it has no place here.
type ProjectReport struct {
	Project      string
	SessionCount int
	TotalMinutes int
	ByDate       map[string]int
}

// Project aggregates completed sessions of one project. from and to are
// inclusive YYYY-MM-DD bounds; either may be empty for an open end.
func Project(sessions []*domain.Session, project, from, to string) ProjectReport {
	r := ProjectReport{Project: project, ByDate: map[string]int{}}
	for _, s := range sessions {
		if !s.Completed() || s.Project != project {
			continue
		}
		date := s.Date()
		if from != "" && date < from {
			continue
		}
		if to != "" && date > to {
			continue
		}
		m := s.NetMinutes(time.Time{})
		r.SessionCount++
		r.TotalMinutes += m
		r.ByDate[date] += m
	}
	return r
}

// DayBreakdown is one calendar date inside a monthly report.
type DayBreakdown struct {
	Date              string
	TotalMinutes      int
	OvertimeMinutes   int
	Projects          map[string]int
	OvertimeByProject map[string]float64
}

// ProjectTotals are one project's sums across a monthly period. Overtime is
// the sum of that project's apportioned daily shares, in fractional
// minutes.
type ProjectTotals struct {
	Minutes         int
	OvertimeMinutes float64
	DaysWorked      int
}

// MonthlyReport is the full per-period aggregation.
type MonthlyReport struct {
	Account         domain.AccountID
	Period          period.Period
	Config          domain.AccountConfig
	TotalMinutes    int
	OvertimeMinutes int
	WorkingDays     int
	Days            []DayBreakdown
	Projects        map[string]ProjectTotals
}

// Monthly aggregates completed sessions inside the period. For each date,
// overtime is computed once across all projects combined, then split by the
// policy; per-project period totals are sums of those daily shares.
func Monthly(sessions []*domain.Session, cfg domain.AccountConfig, p period.Period, policy OvertimePolicy) MonthlyReport {
	if policy == nil {
		policy = Proportional{}
	}
	r := MonthlyReport{
		Period:   p,
		Config:   cfg,
		Projects: map[string]ProjectTotals{},
	}

	byDate := map[string]map[string]int{}
	for _, s := range sessions {
		if !s.Completed() || !p.Contains(s.Start) {
			continue
		}
		r.Account = s.Account
		date := s.Date()
		if byDate[date] == nil {
			byDate[date] = map[string]int{}
		}
		byDate[date][s.Project] += s.NetMinutes(time.Time{})
	}

	dates := make([]string, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	standard := cfg.StandardMinutes()
	for _, date := range dates {
		projects := byDate[date]
		day := DayBreakdown{Date: date, Projects: projects}
		for _, m := range projects {
			day.TotalMinutes += m
		}
		if over := day.TotalMinutes - standard; over > 0 {
			day.OvertimeMinutes = over
		}
		day.OvertimeByProject = policy.Apportion(day.OvertimeMinutes, projects)

		for proj, m := range projects {
			t := r.Projects[proj]
			t.Minutes += m
			t.OvertimeMinutes += day.OvertimeByProject[proj]
			t.DaysWorked++
			r.Projects[proj] = t
		}
		r.TotalMinutes += day.TotalMinutes
		r.OvertimeMinutes += day.OvertimeMinutes
		r.WorkingDays++
		r.Days = append(r.Days, day)
	}
	return r
}
