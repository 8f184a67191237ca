package domain

import "fmt"

// Closing day conventions. 31 means the calendar month end regardless of the
// month's actual length; 15 means periods run from the 16th to the 15th.
const (
	ClosingMonthEnd = 31
	ClosingMid      = 15
)

// AccountConfig holds per-account reporting settings.
type AccountConfig struct {
	ClosingDay          int     `json:"closing_day"`
	StandardHoursPerDay float64 `json:"standard_hours_per_day"`
}

// DefaultAccountConfig is used for accounts that never had their settings
// changed: month-end closing, 8-hour standard day.
func DefaultAccountConfig() AccountConfig {
	return AccountConfig{ClosingDay: ClosingMonthEnd, StandardHoursPerDay: 8}
}

// Validate checks the configuration values.
func (c AccountConfig) Validate() error {
	if c.ClosingDay != ClosingMonthEnd && c.ClosingDay != ClosingMid {
		return &ValidationError{Field: "closing_day", Reason: fmt.Sprintf("must be %d or %d, got %d", ClosingMid, ClosingMonthEnd, c.ClosingDay)}
	}
	if c.StandardHoursPerDay <= 0 || c.StandardHoursPerDay > 24 {
		return &ValidationError{Field: "standard_hours_per_day", Reason: fmt.Sprintf("must be in (0, 24], got %g", c.StandardHoursPerDay)}
	}
	return nil
}

// StandardMinutes returns the standard working day in whole minutes.
func (c AccountConfig) StandardMinutes() int {
	return int(c.StandardHoursPerDay * 60)
}
