package businesstime

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDuration(t *testing.T) {
	cal := Default() // 36000s business day

	tests := []struct {
		seconds int64
		want    string
	}{
		{0, "0d 00:00:00"},
		{59, "0d 00:00:59"},
		{3600, "0d 01:00:00"},
		{7200, "0d 02:00:00"},
		{35999, "0d 09:59:59"},
		{36000, "1d 00:00:00"},
		{72000, "2d 00:00:00"},
		{72000 + 3661, "2d 01:01:01"},
		{-5, "0d 00:00:00"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDuration(tt.seconds, cal))
	}
}

func TestFormatDuration_RoundTrip(t *testing.T) {
	cal := Default()
	unit := cal.DaySeconds()

	for _, seconds := range []int64{0, 1, 59, 3599, 35999, 36000, 36001, 123456, 987654} {
		formatted := FormatDuration(seconds, cal)

		var days, h, m, s int64
		_, err := fmt.Sscanf(formatted, "%dd %d:%d:%d", &days, &h, &m, &s)
		assert.NoError(t, err)

		rest := h*3600 + m*60 + s
		assert.Equal(t, seconds, days*unit+rest, "round trip failed for %q", formatted)
		assert.GreaterOrEqual(t, rest, int64(0))
		assert.Less(t, rest, unit)
	}
}
