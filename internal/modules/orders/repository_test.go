package orders

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/lagtech/expertos-api/internal/modules/catalog"
	"github.com/lagtech/expertos-api/internal/modules/clients"
)

// newTestRepo opens an in-memory database with the full schema and one client,
// system and routine for orders to reference. MaxOpenConns is pinned to 1
// because each in-memory connection would otherwise get its own database.
func newTestRepo(t *testing.T) (*Repository, *sql.DB) {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, clients.InitSchema(db))
	require.NoError(t, catalog.InitSchema(db))
	require.NoError(t, InitSchema(db))

	_, err = db.Exec(`INSERT INTO clients (id, tax_id, name) VALUES (1, '12345678000190', 'Acme Corp')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO systems (id, name) VALUES (1, 'Billing')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO routines (id, system_id, name) VALUES (1, 1, 'Invoicing')`)
	require.NoError(t, err)

	return NewRepository(db, zerolog.Nop()), db
}

func insertOrder(t *testing.T, db *sql.DB, title, createdAt string, status Status, priority interface{}) {
	t.Helper()
	_, err := db.Exec(
		`INSERT INTO service_orders (client_id, system_id, routine_id, title, description, status, priority, created_at)
		 VALUES (1, 1, 1, ?, '', ?, ?, ?)`,
		title, status, priority, createdAt,
	)
	require.NoError(t, err)
}

func mustTime(t *testing.T, date string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", date)
	require.NoError(t, err)
	return parsed
}

func TestFetchRange_DateBoundsInclusive(t *testing.T) {
	repo, db := newTestRepo(t)

	insertOrder(t, db, "before", "2025-09-30 23:59:59", StatusOpen, nil)
	insertOrder(t, db, "first day", "2025-10-01 00:00:00", StatusOpen, nil)
	insertOrder(t, db, "middle", "2025-10-15 12:30:00", StatusOpen, 2)
	insertOrder(t, db, "last day", "2025-10-31 23:59:59", StatusOpen, nil)
	insertOrder(t, db, "after", "2025-11-01 00:00:00", StatusOpen, nil)

	got, err := repo.FetchRange(context.Background(),
		mustTime(t, "2025-10-01"), mustTime(t, "2025-10-31"))
	require.NoError(t, err)

	require.Len(t, got, 3)
	assert.Equal(t, "first day", got[0].Title)
	assert.Equal(t, "middle", got[1].Title)
	assert.Equal(t, "last day", got[2].Title)

	// Scan round-trips the nullable priority and the status join.
	assert.Nil(t, got[0].Priority)
	require.NotNil(t, got[1].Priority)
	assert.Equal(t, 2, *got[1].Priority)
	assert.Equal(t, "Acme Corp", got[1].Client)
	assert.Equal(t, "Open", got[1].StatusLabel)
	assert.Equal(t, "2025-10-15 12:30:00", got[1].CreatedAt.Format("2006-01-02 15:04:05"))
}

func TestFetchRange_InvertedRangeIsEmpty(t *testing.T) {
	repo, db := newTestRepo(t)
	insertOrder(t, db, "any", "2025-10-15 10:00:00", StatusOpen, nil)

	got, err := repo.FetchRange(context.Background(),
		mustTime(t, "2025-10-31"), mustTime(t, "2025-10-01"))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFetchRange_UnknownStatusLabel(t *testing.T) {
	repo, db := newTestRepo(t)
	insertOrder(t, db, "odd status", "2025-10-02 09:00:00", Status(42), nil)

	got, err := repo.FetchRange(context.Background(),
		mustTime(t, "2025-10-01"), mustTime(t, "2025-10-31"))
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Equal(t, Status(42), got[0].Status)
	assert.Equal(t, "Unknown", got[0].StatusLabel)
}

func TestFetchSince(t *testing.T) {
	repo, db := newTestRepo(t)

	insertOrder(t, db, "old", "2025-09-15 10:00:00", StatusFinished, nil)
	insertOrder(t, db, "on the boundary", "2025-10-01 00:00:00", StatusPending, nil)
	insertOrder(t, db, "recent", "2025-10-20 16:45:00", StatusInDevelopment, 3)

	got, err := repo.FetchSince(context.Background(), mustTime(t, "2025-10-01"))
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, "on the boundary", got[0].Title)
	assert.Equal(t, "recent", got[1].Title)
}

func TestCreate_InsertsOpenOrder(t *testing.T) {
	repo, db := newTestRepo(t)

	note := "screenshot attached"
	kind := "image/png"
	id, err := repo.Create(context.Background(), CreateOrder{
		Title:          "Report crashes on export",
		Description:    "Crashes when exporting to PDF",
		ClientID:       1,
		SystemID:       1,
		RoutineID:      1,
		AttachmentNote: &note,
		Kind:           &kind,
		Image:          []byte{0x89, 0x50, 0x4e, 0x47},
	})
	require.NoError(t, err)
	assert.Greater(t, id, int64(0))

	var status int
	var createdAt string
	err = db.QueryRow(`SELECT status, created_at FROM service_orders WHERE id = ?`, id).
		Scan(&status, &createdAt)
	require.NoError(t, err)
	assert.Equal(t, int(StatusOpen), status)
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}$`, createdAt)
}
