package orders

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "Open", StatusOpen.Label())
	assert.Equal(t, "Pending", StatusPending.Label())
	assert.Equal(t, "In Development", StatusInDevelopment.Label())
	assert.Equal(t, "Finished", StatusFinished.Label())
	assert.Equal(t, "Pending Review", StatusPendingReview.Label())
	assert.Equal(t, "Cancelled", StatusCancelled.Label())
	assert.Equal(t, "Unknown", Status(42).Label())
}

func TestStatusPanelExcluded(t *testing.T) {
	excluded := []Status{StatusFinished, StatusPendingReview, StatusCancelled}
	for _, s := range excluded {
		assert.True(t, s.PanelExcluded(), "status %d", s)
	}

	visible := []Status{StatusOpen, StatusPending, StatusInDevelopment, Status(42)}
	for _, s := range visible {
		assert.False(t, s.PanelExcluded(), "status %d", s)
	}
}

func TestPriorityLabel(t *testing.T) {
	code := func(v int) *int { return &v }

	tests := []struct {
		name string
		code *int
		want string
	}{
		{"nil means low", nil, "Low"},
		{"explicit low", code(4), "Low"},
		{"normal", code(3), "Normal"},
		{"high", code(2), "High"},
		{"urgent", code(1), "Urgent"},
		{"unknown codes escalate", code(7), "Urgent"},
		{"zero escalates", code(0), "Urgent"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PriorityLabel(tt.code))
		})
	}
}
