package orders

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

const timeLayout = "2006-01-02 15:04:05"

// Repository handles service-order persistence
type Repository struct {
	db  *sql.DB
	log zerolog.Logger
}

// NewRepository creates a new service-order repository
func NewRepository(db *sql.DB, log zerolog.Logger) *Repository {
	return &Repository{
		db:  db,
		log: log.With().Str("repo", "orders").Logger(),
	}
}

const selectOrders = `
	SELECT o.id, c.name, o.title, o.created_at, o.status,
	       COALESCE(st.label, 'Unknown'), o.priority
	FROM service_orders o
	JOIN clients c ON c.id = o.client_id
	LEFT JOIN order_statuses st ON st.id = o.status
`

// Create inserts a new service order with status Open and returns its ID.
func (r *Repository) Create(ctx context.Context, in CreateOrder) (int64, error) {
	query := `
		INSERT INTO service_orders (
			client_id, system_id, routine_id, title, description,
			status, attachment_note, kind, image, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(
		ctx,
		query,
		in.ClientID,
		in.SystemID,
		in.RoutineID,
		in.Title,
		in.Description,
		StatusOpen,
		in.AttachmentNote,
		in.Kind,
		in.Image,
		time.Now().Format(timeLayout),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert service order: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get last insert ID: %w", err)
	}

	return id, nil
}

// FetchRange retrieves orders whose creation date falls within [start, end],
// compared as calendar dates (both bounds inclusive).
func (r *Repository) FetchRange(ctx context.Context, start, end time.Time) ([]WorkOrder, error) {
	query := selectOrders + `
	WHERE date(o.created_at) BETWEEN date(?) AND date(?)
	ORDER BY o.created_at ASC, o.id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, start.Format("2006-01-02"), end.Format("2006-01-02"))
	if err != nil {
		return nil, fmt.Errorf("failed to query orders by range: %w", err)
	}
	defer rows.Close()

	return r.scanOrders(rows)
}

// FetchSince retrieves orders created on or after the given date.
func (r *Repository) FetchSince(ctx context.Context, start time.Time) ([]WorkOrder, error) {
	query := selectOrders + `
	WHERE date(o.created_at) >= date(?)
	ORDER BY o.created_at ASC, o.id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, start.Format("2006-01-02"))
	if err != nil {
		return nil, fmt.Errorf("failed to query orders since date: %w", err)
	}
	defer rows.Close()

	return r.scanOrders(rows)
}

// scanOrders is a helper to scan multiple work orders
func (r *Repository) scanOrders(rows *sql.Rows) ([]WorkOrder, error) {
	var orders []WorkOrder

	for rows.Next() {
		var o WorkOrder
		var createdAt string

		if err := rows.Scan(
			&o.ID,
			&o.Client,
			&o.Title,
			&createdAt,
			&o.Status,
			&o.StatusLabel,
			&o.Priority,
		); err != nil {
			return nil, fmt.Errorf("failed to scan service order: %w", err)
		}

		parsed, err := time.Parse(timeLayout, createdAt)
		if err != nil {
			return nil, fmt.Errorf("invalid created_at %q for order %d: %w", createdAt, o.ID, err)
		}
		o.CreatedAt = parsed

		orders = append(orders, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating service orders: %w", err)
	}

	return orders, nil
}
