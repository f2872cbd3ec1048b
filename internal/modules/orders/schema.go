package orders

import "database/sql"

// OrdersSchema defines the service_orders table and the status reference
// table. Status labels are seeded from the Status enumeration so the join in
// the repository always resolves.
const OrdersSchema = `
CREATE TABLE IF NOT EXISTS order_statuses (
    id INTEGER PRIMARY KEY,
    label TEXT NOT NULL
);

INSERT OR IGNORE INTO order_statuses (id, label) VALUES
    (1, 'Open'),
    (2, 'Pending'),
    (3, 'In Development'),
    (5, 'Finished'),
    (88, 'Pending Review'),
    (99, 'Cancelled');

CREATE TABLE IF NOT EXISTS service_orders (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    client_id INTEGER NOT NULL REFERENCES clients(id),
    system_id INTEGER NOT NULL REFERENCES systems(id),
    routine_id INTEGER NOT NULL REFERENCES routines(id),
    title TEXT NOT NULL,
    description TEXT NOT NULL,
    status INTEGER NOT NULL DEFAULT 1 REFERENCES order_statuses(id),
    priority INTEGER,
    attachment_note TEXT,
    kind TEXT,
    image BLOB,
    created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_service_orders_created ON service_orders(created_at);
CREATE INDEX IF NOT EXISTS idx_service_orders_status ON service_orders(status);
`

func InitSchema(db *sql.DB) error {
	_, err := db.Exec(OrdersSchema)
	return err
}
