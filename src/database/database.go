package database

import (
	"database/sql"
	stdlog "log"

	"github.com/username/barcontrol/backend/src/logger"
	_ "modernc.org/sqlite"
)

var DB *sql.DB

func InitDB(databasePath string) {
	db, err := sql.Open("sqlite", databasePath)
	if err != nil {
		stdlog.Fatalf("failed to open database at %s: %v", databasePath, err)
	}

	DB = db

	if logger.L != nil {
		logger.L.Info("Ensuring database schema", "databasePath", databasePath)
	} else {
		stdlog.Println("Ensuring database schema for:", databasePath)
	}

	createTableStatement := `
	CREATE TABLE IF NOT EXISTS transactions (
		id TEXT PRIMARY KEY,
		type TEXT NOT NULL,
		timestamp TEXT,
		total REAL NOT NULL DEFAULT 0,
		payment_method TEXT,
		expense_category TEXT,
		customer_id TEXT,
		tab_name TEXT,
		description TEXT,
		order_created_at TEXT
	);

	CREATE TABLE IF NOT EXISTS transaction_items (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		transaction_id TEXT NOT NULL,
		product_id TEXT,
		name TEXT,
		quantity REAL NOT NULL DEFAULT 0,
		unit_price REAL NOT NULL DEFAULT 0,
		size REAL,
		identifier TEXT,
		FOREIGN KEY(transaction_id) REFERENCES transactions(id)
	);

	CREATE TABLE IF NOT EXISTS products (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		cost_price REAL NOT NULL DEFAULT 0,
		base_unit_size REAL,
		sale_type TEXT
	);

	CREATE TABLE IF NOT EXISTS game_modalities (
		id TEXT PRIMARY KEY,
		name TEXT,
		product_id TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS customers (
		id TEXT PRIMARY KEY,
		name TEXT,
		balance REAL NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS daily_snapshots (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		day TEXT NOT NULL UNIQUE,
		revenue REAL NOT NULL DEFAULT 0,
		cash_inflow REAL NOT NULL DEFAULT 0,
		expenses REAL NOT NULL DEFAULT 0,
		net_profit REAL NOT NULL DEFAULT 0,
		sales_count INTEGER NOT NULL DEFAULT 0,
		goal REAL NOT NULL DEFAULT 0,
		goal_progress REAL NOT NULL DEFAULT 0,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_transactions_timestamp ON transactions(timestamp);
	CREATE INDEX IF NOT EXISTS idx_transactions_type ON transactions(type);
	CREATE INDEX IF NOT EXISTS idx_transaction_items_tx ON transaction_items(transaction_id);
	`

	if _, err := DB.Exec(createTableStatement); err != nil {
		stdlog.Fatalf("failed to ensure database schema: %v", err)
	}
}
