package businesstime

import "time"

// Accrue computes the business seconds elapsed between an order's creation
// moment and an evaluation moment, respecting the calendar.
//
// The span is decomposed in closed form rather than expanded day by day:
//   - the opening day, clipped at the creation time;
//   - every working day strictly between the two dates contributes exactly one
//     full business-day length, counted via weekday arithmetic;
//   - the final day, clipped at the evaluation time.
//
// Returns 0 when createdAt is at or after evalAt.
func Accrue(createdAt, evalAt time.Time, cal Calendar) int64 {
	if !createdAt.Before(evalAt) {
		return 0
	}

	openDay := dayNumber(createdAt)
	lastDay := dayNumber(evalAt)

	if openDay == lastDay {
		return cal.BusinessSecondsOnDay(createdAt, &createdAt, &evalAt)
	}

	total := cal.BusinessSecondsOnDay(createdAt, &createdAt, nil)

	if lastDay-openDay >= 2 {
		first := midnightOf(createdAt).AddDate(0, 0, 1)
		last := midnightOf(evalAt).AddDate(0, 0, -1)
		total += int64(cal.WorkdayCount(first, last)) * cal.DaySeconds()
	}

	total += cal.BusinessSecondsOnDay(evalAt, nil, &evalAt)
	return total
}

// midnightOf truncates a timestamp to its local midnight.
func midnightOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
