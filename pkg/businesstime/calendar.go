// Package businesstime implements business-hours elapsed time math: a
// configurable working-week calendar, single-day window clipping, and
// closed-form accrual across arbitrary date spans.
package businesstime

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Calendar defines the working week: which weekdays count, and the daily
// time-of-day window during which elapsed time accrues. Immutable after
// construction.
type Calendar struct {
	workdays [7]bool // indexed by time.Weekday (Sunday = 0)
	dayStart time.Duration
	dayEnd   time.Duration
}

// NewCalendar creates a calendar from a working-weekday set and a daily
// window. Returns an error when the window is empty or inverted, or when no
// weekday is marked as working.
func NewCalendar(weekdays []time.Weekday, dayStart, dayEnd time.Duration) (Calendar, error) {
	if dayEnd <= dayStart {
		return Calendar{}, fmt.Errorf("business day end (%s) must be after start (%s)", dayEnd, dayStart)
	}
	if dayStart < 0 || dayEnd > 24*time.Hour {
		return Calendar{}, fmt.Errorf("business window must fall within a single day")
	}
	if len(weekdays) == 0 {
		return Calendar{}, fmt.Errorf("working weekday set must not be empty")
	}

	c := Calendar{dayStart: dayStart, dayEnd: dayEnd}
	for _, wd := range weekdays {
		if wd < time.Sunday || wd > time.Saturday {
			return Calendar{}, fmt.Errorf("invalid weekday %d", wd)
		}
		c.workdays[wd] = true
	}
	return c, nil
}

// Default returns the standard calendar: Monday through Friday, 08:00-18:00.
func Default() Calendar {
	cal, _ := NewCalendar(
		[]time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday},
		8*time.Hour,
		18*time.Hour,
	)
	return cal
}

// IsWorkday reports whether the given weekday belongs to the working set.
func (c Calendar) IsWorkday(wd time.Weekday) bool {
	return c.workdays[wd]
}

// DaySeconds returns the length of one full business day in seconds.
func (c Calendar) DaySeconds() int64 {
	return int64((c.dayEnd - c.dayStart) / time.Second)
}

// BusinessSecondsOnDay computes the business seconds accrued on the calendar
// date of `day`. startClip / endClip, when non-nil, narrow the daily window to
// the portion after / before their time of day. The result is never negative.
func (c Calendar) BusinessSecondsOnDay(day time.Time, startClip, endClip *time.Time) int64 {
	if !c.workdays[day.Weekday()] {
		return 0
	}

	effStart := c.dayStart
	if startClip != nil {
		if clip := timeOfDay(*startClip); clip > effStart {
			effStart = clip
		}
	}

	effEnd := c.dayEnd
	if endClip != nil {
		if clip := timeOfDay(*endClip); clip < effEnd {
			effEnd = clip
		}
	}

	if effEnd <= effStart {
		return 0
	}
	return int64((effEnd - effStart) / time.Second)
}

// WorkdayCount counts working days between two civil dates, inclusive.
// Runs in constant time: whole weeks contribute the working-set size, the
// remainder (at most six days) is checked by weekday.
func (c Calendar) WorkdayCount(from, to time.Time) int {
	days := int(dayNumber(to)-dayNumber(from)) + 1
	if days <= 0 {
		return 0
	}

	perWeek := 0
	for _, working := range c.workdays {
		if working {
			perWeek++
		}
	}

	count := (days / 7) * perWeek
	wd := from.Weekday()
	for i := 0; i < days%7; i++ {
		if c.workdays[(wd+time.Weekday(i))%7] {
			count++
		}
	}
	return count
}

// timeOfDay returns the offset of t from its local midnight.
func timeOfDay(t time.Time) time.Duration {
	h, m, s := t.Clock()
	return time.Duration(h)*time.Hour + time.Duration(m)*time.Minute + time.Duration(s)*time.Second
}

// dayNumber maps a timestamp to its civil day index. Computed through UTC
// midnight so DST transitions cannot skew date arithmetic.
func dayNumber(t time.Time) int64 {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / 86400
}

// ParseTimeOfDay parses an "HH:MM" string into an offset from midnight.
func ParseTimeOfDay(s string) (time.Duration, error) {
	parsed, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("invalid time of day %q: %w", s, err)
	}
	return time.Duration(parsed.Hour())*time.Hour + time.Duration(parsed.Minute())*time.Minute, nil
}

// ParseWeekdays parses a comma-separated list of ISO weekday numbers
// (1 = Monday ... 7 = Sunday) into weekday values.
func ParseWeekdays(s string) ([]time.Weekday, error) {
	var weekdays []time.Weekday
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil || n < 1 || n > 7 {
			return nil, fmt.Errorf("invalid weekday %q (expected 1-7, Monday=1)", part)
		}
		weekdays = append(weekdays, time.Weekday(n%7)) // ISO 7 (Sunday) wraps to 0
	}
	if len(weekdays) == 0 {
		return nil, fmt.Errorf("no weekdays in %q", s)
	}
	return weekdays, nil
}
