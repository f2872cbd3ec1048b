package catalog

import "database/sql"

const CatalogSchema = `
CREATE TABLE IF NOT EXISTS systems (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS routines (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    system_id INTEGER NOT NULL REFERENCES systems(id),
    name TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_routines_system ON routines(system_id);
`

func InitSchema(db *sql.DB) error {
	_, err := db.Exec(CatalogSchema)
	return err
}
