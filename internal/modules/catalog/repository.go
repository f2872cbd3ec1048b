package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rs/zerolog"
)

// Repository handles catalog reads
type Repository struct {
	db  *sql.DB
	log zerolog.Logger
}

// NewRepository creates a new catalog repository
func NewRepository(db *sql.DB, log zerolog.Logger) *Repository {
	return &Repository{
		db:  db,
		log: log.With().Str("repo", "catalog").Logger(),
	}
}

// ListSystems retrieves all systems.
func (r *Repository) ListSystems(ctx context.Context) ([]System, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT id, name FROM systems ORDER BY name ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to query systems: %w", err)
	}
	defer rows.Close()

	var systems []System
	for rows.Next() {
		var s System
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, fmt.Errorf("failed to scan system: %w", err)
		}
		systems = append(systems, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating systems: %w", err)
	}

	return systems, nil
}

// ListRoutines retrieves the routines belonging to a system.
func (r *Repository) ListRoutines(ctx context.Context, systemID int64) ([]Routine, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, system_id, name FROM routines WHERE system_id = ? ORDER BY name ASC", systemID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query routines: %w", err)
	}
	defer rows.Close()

	var routines []Routine
	for rows.Next() {
		var rt Routine
		if err := rows.Scan(&rt.ID, &rt.SystemID, &rt.Name); err != nil {
			return nil, fmt.Errorf("failed to scan routine: %w", err)
		}
		routines = append(routines, rt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating routines: %w", err)
	}

	return routines, nil
}
