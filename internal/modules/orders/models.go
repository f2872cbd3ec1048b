// Package orders manages service-order records: the domain model, the status
// enumeration, and the sqlite repository the panel engine reads from.
package orders

import (
	"time"
)

// Status is a service-order status code. The numeric values follow the
// operational database and are fixed; new code should always go through the
// named constants rather than bare numbers.
type Status int

const (
	StatusOpen          Status = 1
	StatusPending       Status = 2
	StatusInDevelopment Status = 3
	StatusFinished      Status = 5
	StatusPendingReview Status = 88
	StatusCancelled     Status = 99
)

// Label returns the display label for a status code.
func (s Status) Label() string {
	switch s {
	case StatusOpen:
		return "Open"
	case StatusPending:
		return "Pending"
	case StatusInDevelopment:
		return "In Development"
	case StatusFinished:
		return "Finished"
	case StatusPendingReview:
		return "Pending Review"
	case StatusCancelled:
		return "Cancelled"
	default:
		return "Unknown"
	}
}

// PanelExcluded reports whether orders with this status are hidden from the
// open-orders panel. Finished, pending-review and cancelled orders are no
// longer "open" from the dashboard's point of view.
func (s Status) PanelExcluded() bool {
	return s == StatusFinished || s == StatusPendingReview || s == StatusCancelled
}

// CountsAsPending reports whether this status falls into the header's pending
// bucket. Pending review is counted here even though the panel hides it.
func (s Status) CountsAsPending() bool {
	return s == StatusPending || s == StatusPendingReview
}

// WorkOrder is a service order as read from the store. Never mutated by the
// panel engine.
type WorkOrder struct {
	ID          int64     `json:"id"`
	Client      string    `json:"client"`
	Title       string    `json:"title"`
	CreatedAt   time.Time `json:"createdAt"`
	Status      Status    `json:"statusCode"`
	StatusLabel string    `json:"statusLabel"`
	Priority    *int      `json:"priority"` // nullable priority code, 1 (urgent) to 4 (low)
}

// PriorityLabel maps a raw priority code to its display label. A missing code
// means the order was created before priorities existed and counts as low.
func PriorityLabel(code *int) string {
	if code == nil {
		return "Low"
	}
	switch *code {
	case 4:
		return "Low"
	case 3:
		return "Normal"
	case 2:
		return "High"
	default:
		return "Urgent"
	}
}

// CreateOrder carries the fields accepted when registering a new service
// order. Attachment fields are optional.
type CreateOrder struct {
	Title          string
	Description    string
	ClientID       int64
	SystemID       int64
	RoutineID      int64
	AttachmentNote *string
	Kind           *string
	Image          []byte
}
