package report

// OvertimePolicy decides how one calendar date's overtime is split across
// the projects worked that date. Overtime is always computed once per date
// over all projects combined; the policy only distributes it.
type OvertimePolicy interface {
	Apportion(overtimeMinutes int, minutesByProject map[string]int) map[string]float64
}

// Proportional splits a date's overtime across projects in proportion to
// each project's share of that date's total minutes. Summing independently
// computed per-project overtime instead would undercount days where only
// the combined total crosses the standard-hours threshold.
type Proportional struct{}

func (Proportional) Apportion(overtimeMinutes int, minutesByProject map[string]int) map[string]float64 {
	out := make(map[string]float64, len(minutesByProject))
	if overtimeMinutes <= 0 {
		return out
	}
	total := 0
	for _, m := range minutesByProject {
		total += m
	}
	if total <= 0 {
		return out
	}
	for project, m := range minutesByProject {
		out[project] = float64(overtimeMinutes) * float64(m) / float64(total)
	}
	return out
}
