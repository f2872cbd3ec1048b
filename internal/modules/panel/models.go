// Package panel implements the open-orders dashboard: per-order business-hours
// accrual, priority labelling, and the period header counters.
package panel

// Row is a single panel line for an open service order. Elapsed time is
// recomputed on every request and never stored.
type Row struct {
	OrderID         int64  `json:"orderId"`
	Client          string `json:"client"`
	Title           string `json:"title"`
	CreatedDate     string `json:"createdDate"` // YYYY-MM-DD
	StatusCode      int    `json:"statusCode"`
	StatusLabel     string `json:"statusLabel"`
	ElapsedDuration string `json:"elapsedDuration"` // "Dd HH:MM:SS", business-day unit
	Priority        string `json:"priority"`
}

// HeaderCounts summarises a period for the dashboard header. The four
// counters are independent overlapping filters, not a partition.
type HeaderCounts struct {
	TotalOpen     int `json:"totalOpen"`
	Finished      int `json:"finished"`
	Pending       int `json:"pending"`
	InDevelopment int `json:"inDevelopment"`
}
