package formatter

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// FormatMinutes converts raw minutes into a human-friendly duration such
// as "7h 30m".
func FormatMinutes(min int) string {
	if min <= 0 {
		return "0m"
	}
	h := min / 60
	m := min % 60
	if h > 0 && m > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	if h > 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dm", m)
}

// FormatFracMinutes renders fractional minutes (apportioned overtime) to
// the nearest whole minute.
func FormatFracMinutes(min float64) string {
	return FormatMinutes(int(math.Round(min)))
}

// FormatHours renders minutes as decimal hours, e.g. "7.50h".
func FormatHours(min int) string {
	return fmt.Sprintf("%.2fh", float64(min)/60)
}

// Overtime renders an overtime amount with warning coloring when nonzero.
func Overtime(min int) string {
	if min <= 0 {
		return StyleGreen.Render("none")
	}
	return StyleRed.Render(FormatMinutes(min))
}

// Clock renders a timestamp as a wall-clock string.
func Clock(t time.Time) string {
	return t.Format("2006-01-02 15:04:05")
}

// Elapsed renders a live duration as HH:MM:SS for the watch view.
func Elapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Seconds())
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total%3600)/60, total%60)
}

// Header renders a section header with an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len([]rune(upper)))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}
