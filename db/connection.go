package db

import (
	"database/sql"
	"fmt"

	"lead-intake/config"

	_ "github.com/lib/pq"
)

var DB *sql.DB

func InitDB() error {
	var err error
	connStr := config.GetDBConnString()

	DB, err = sql.Open("postgres", connStr)
	if err != nil {
		return fmt.Errorf("error opening database: %w", err)
	}

	// Test the connection
	err = DB.Ping()
	if err != nil {
		return fmt.Errorf("error connecting to database: %w", err)
	}

	// Create tables
	if err := createTables(); err != nil {
		return fmt.Errorf("error creating tables: %w", err)
	}

	return nil
}

func createTables() error {
	leadTable := `
	CREATE TABLE IF NOT EXISTS saas_client (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		trade_name TEXT NOT NULL,
		cnpj TEXT NOT NULL,
		phone TEXT NOT NULL,
		note TEXT,
		identifier TEXT NOT NULL UNIQUE,
		email TEXT NOT NULL,
		email_validated BOOLEAN NOT NULL DEFAULT FALSE,
		validation_key TEXT NOT NULL UNIQUE,
		user_type TEXT NOT NULL DEFAULT 'A',
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		validated_at TIMESTAMP
	);`

	// Duplicate detection must hold under concurrent registrations, so the
	// email uniqueness lives in the database, case-insensitively.
	emailIndex := `
	CREATE UNIQUE INDEX IF NOT EXISTS saas_client_email_lower_idx
		ON saas_client (LOWER(email));`

	if _, err := DB.Exec(leadTable); err != nil {
		return fmt.Errorf("error creating saas_client table: %w", err)
	}

	if _, err := DB.Exec(emailIndex); err != nil {
		return fmt.Errorf("error creating email index: %w", err)
	}

	return nil
}
