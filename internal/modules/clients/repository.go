package clients

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rs/zerolog"
)

// Repository handles client persistence
type Repository struct {
	db  *sql.DB
	log zerolog.Logger
}

// NewRepository creates a new client repository
func NewRepository(db *sql.DB, log zerolog.Logger) *Repository {
	return &Repository{
		db:  db,
		log: log.With().Str("repo", "clients").Logger(),
	}
}

// GetByTaxID retrieves a client by tax identifier. Returns nil when no client
// matches.
func (r *Repository) GetByTaxID(ctx context.Context, taxID string) (*Client, error) {
	var c Client
	err := r.db.QueryRowContext(ctx,
		"SELECT id, tax_id, name FROM clients WHERE tax_id = ?", taxID,
	).Scan(&c.ID, &c.TaxID, &c.Name)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get client: %w", err)
	}

	return &c, nil
}

// Create registers a new client and returns its ID.
func (r *Repository) Create(ctx context.Context, taxID, name string) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		"INSERT INTO clients (tax_id, name) VALUES (?, ?)", taxID, name,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert client: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get last insert ID: %w", err)
	}

	return id, nil
}
