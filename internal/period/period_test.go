package period

import (
	"testing"
	"time"

	"github.com/alexanderramin/punchclock/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestOf_MidMonthClosing_OnOrBeforeClosingDay(t *testing.T) {
	p := Of(date(2025, time.October, 1), domain.ClosingMid)

	assert.Equal(t, date(2025, time.September, 16), p.Start)
	assert.Equal(t, date(2025, time.October, 15), p.End)
}

func TestOf_MidMonthClosing_AfterClosingDay(t *testing.T) {
	p := Of(date(2025, time.October, 20), domain.ClosingMid)

	assert.Equal(t, date(2025, time.October, 16), p.Start)
	assert.Equal(t, date(2025, time.November, 15), p.End)
}

func TestOf_MidMonthClosing_ExactlyOnClosingDay(t *testing.T) {
	p := Of(date(2025, time.October, 15), domain.ClosingMid)

	assert.Equal(t, date(2025, time.September, 16), p.Start)
	assert.Equal(t, date(2025, time.October, 15), p.End)
}

func TestOf_MonthEndClosing_IsCalendarMonth(t *testing.T) {
	p := Of(date(2025, time.October, 1), domain.ClosingMonthEnd)

	assert.Equal(t, date(2025, time.October, 1), p.Start)
	assert.Equal(t, date(2025, time.October, 31), p.End)
}

func TestOf_MonthEndClosing_ShortAndLeapMonths(t *testing.T) {
	feb := Of(date(2024, time.February, 10), domain.ClosingMonthEnd)
	assert.Equal(t, date(2024, time.February, 29), feb.End, "leap February ends on the 29th")

	feb25 := Of(date(2025, time.February, 10), domain.ClosingMonthEnd)
	assert.Equal(t, date(2025, time.February, 28), feb25.End)

	apr := Of(date(2025, time.April, 30), domain.ClosingMonthEnd)
	assert.Equal(t, date(2025, time.April, 30), apr.End)
}

func TestOf_YearRollover(t *testing.T) {
	jan := Of(date(2026, time.January, 5), domain.ClosingMid)
	assert.Equal(t, date(2025, time.December, 16), jan.Start)
	assert.Equal(t, date(2026, time.January, 15), jan.End)

	dec := Of(date(2025, time.December, 20), domain.ClosingMid)
	assert.Equal(t, date(2025, time.December, 16), dec.Start)
	assert.Equal(t, date(2026, time.January, 15), dec.End)
}

func TestOf_SamePeriodForEveryDayInside(t *testing.T) {
	want := Of(date(2025, time.October, 16), domain.ClosingMid)
	for d := date(2025, time.October, 16); !d.After(date(2025, time.November, 15)); d = d.AddDate(0, 0, 1) {
		assert.Equal(t, want, Of(d, domain.ClosingMid), "date %s must map to the same period", d.Format("2006-01-02"))
	}
}

func TestKey_NamedAfterStartMonth(t *testing.T) {
	p := Of(date(2025, time.October, 1), domain.ClosingMid)
	assert.Equal(t, "2025-09", p.Key())

	p = Of(date(2025, time.October, 20), domain.ClosingMid)
	assert.Equal(t, "2025-10", p.Key())

	p = Of(date(2025, time.October, 1), domain.ClosingMonthEnd)
	assert.Equal(t, "2025-10", p.Key())
}

func TestFromKey_RoundTripsWithKey(t *testing.T) {
	for _, closing := range []int{domain.ClosingMonthEnd, domain.ClosingMid} {
		p := FromKey(2025, time.December, closing, time.Local)
		require.Equal(t, "2025-12", p.Key())

		again := FromKey(2025, time.December, closing, time.Local)
		assert.Equal(t, p, again)
	}
}

func TestContains_InclusiveBounds(t *testing.T) {
	p := Of(date(2025, time.October, 20), domain.ClosingMid)

	assert.True(t, p.Contains(date(2025, time.October, 16)))
	assert.True(t, p.Contains(date(2025, time.November, 15)))
	assert.True(t, p.Contains(time.Date(2025, time.November, 15, 23, 59, 0, 0, time.Local)), "late-evening timestamp on the last day is inside")
	assert.False(t, p.Contains(date(2025, time.October, 15)))
	assert.False(t, p.Contains(date(2025, time.November, 16)))
}

func TestDays(t *testing.T) {
	assert.Equal(t, 31, Of(date(2025, time.October, 1), domain.ClosingMonthEnd).Days())
	assert.Equal(t, 28, Of(date(2025, time.February, 1), domain.ClosingMonthEnd).Days())
	assert.Equal(t, 30, Of(date(2025, time.October, 1), domain.ClosingMid).Days(), "Sep 16 through Oct 15")
}

func TestTrailing_OldestFirstAndContiguous(t *testing.T) {
	ps := Trailing(date(2025, time.March, 10), domain.ClosingMonthEnd, 3)
	require.Len(t, ps, 3)

	assert.Equal(t, "2025-01", ps[0].Key())
	assert.Equal(t, "2025-02", ps[1].Key())
	assert.Equal(t, "2025-03", ps[2].Key())

	for i := 1; i < len(ps); i++ {
		assert.Equal(t, ps[i].Start, ps[i-1].End.AddDate(0, 0, 1), "periods must be contiguous")
	}
}

func TestTrailing_MidClosingAcrossYearBoundary(t *testing.T) {
	ps := Trailing(date(2026, time.January, 10), domain.ClosingMid, 2)
	require.Len(t, ps, 2)

	assert.Equal(t, date(2025, time.November, 16), ps[0].Start)
	assert.Equal(t, date(2025, time.December, 15), ps[0].End)
	assert.Equal(t, date(2025, time.December, 16), ps[1].Start)
	assert.Equal(t, date(2026, time.January, 15), ps[1].End)
}

func TestTrailing_NonPositiveCount(t *testing.T) {
	assert.Nil(t, Trailing(date(2025, time.March, 10), domain.ClosingMonthEnd, 0))
	assert.Nil(t, Trailing(date(2025, time.March, 10), domain.ClosingMonthEnd, -1))
}

func TestString(t *testing.T) {
	p := Of(date(2025, time.October, 1), domain.ClosingMid)
	assert.Equal(t, "2025-09-16 – 2025-10-15", p.String())
}
