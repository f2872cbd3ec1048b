package clients

import "database/sql"

const ClientsSchema = `
CREATE TABLE IF NOT EXISTS clients (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    tax_id TEXT UNIQUE NOT NULL,
    name TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_clients_tax_id ON clients(tax_id);
`

func InitSchema(db *sql.DB) error {
	_, err := db.Exec(ClientsSchema)
	return err
}
