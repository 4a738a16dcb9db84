package sqlite

import "database/sql"

// migrations contains the SQL statements to set up the database schema.
// These run on startup to ensure tables exist.
const schema = `
CREATE TABLE IF NOT EXISTS receipts (
    id TEXT PRIMARY KEY,
    grand_total REAL NOT NULL,
    created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS receipt_dishes (
    id TEXT PRIMARY KEY,
    receipt_id TEXT NOT NULL,
    name TEXT NOT NULL,
    price REAL NOT NULL,
    position INTEGER NOT NULL,
    FOREIGN KEY (receipt_id) REFERENCES receipts(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS dish_eaters (
    dish_id TEXT NOT NULL,
    person TEXT NOT NULL,
    position INTEGER NOT NULL,
    PRIMARY KEY (dish_id, person),
    FOREIGN KEY (dish_id) REFERENCES receipt_dishes(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS person_totals (
    receipt_id TEXT NOT NULL,
    person TEXT NOT NULL,
    amount REAL NOT NULL,
    position INTEGER NOT NULL,
    PRIMARY KEY (receipt_id, person),
    FOREIGN KEY (receipt_id) REFERENCES receipts(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_receipt_dishes_receipt_id ON receipt_dishes(receipt_id);
CREATE INDEX IF NOT EXISTS idx_dish_eaters_dish_id ON dish_eaters(dish_id);
CREATE INDEX IF NOT EXISTS idx_person_totals_receipt_id ON person_totals(receipt_id);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
