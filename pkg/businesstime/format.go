package businesstime

import "fmt"

// FormatDuration renders accrued business seconds as "Dd HH:MM:SS", where the
// day unit is the calendar's business-day length rather than 24 hours. The
// remainder is always smaller than one business day, so hours never exceed the
// daily window.
func FormatDuration(seconds int64, cal Calendar) string {
	if seconds < 0 {
		seconds = 0
	}

	unit := cal.DaySeconds()
	days := seconds / unit
	rest := seconds % unit

	return fmt.Sprintf("%dd %02d:%02d:%02d", days, rest/3600, (rest%3600)/60, rest%60)
}
