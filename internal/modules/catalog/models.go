// Package catalog serves the read-only system and routine reference lists
// used when registering service orders.
package catalog

// System is a product system orders can be filed against.
type System struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Routine is a routine belonging to a system.
type Routine struct {
	ID       int64  `json:"id"`
	SystemID int64  `json:"systemId"`
	Name     string `json:"name"`
}
