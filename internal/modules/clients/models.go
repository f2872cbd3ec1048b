// Package clients manages client registration and lookup.
package clients

// Client represents a registered client company.
type Client struct {
	ID    int64  `json:"id"`
	TaxID string `json:"taxId"` // 14-character company tax identifier
	Name  string `json:"name"`
}

// TaxIDLength is the required length of a company tax identifier.
const TaxIDLength = 14
