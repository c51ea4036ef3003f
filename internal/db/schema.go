package database

import (
	"database/sql"
	_ "embed"
	"fmt"
)

//go:embed schema.sql
var schemaSQL string

// defaultCategories are inserted once at bootstrap; nombre is UNIQUE, so
// re-running the seed never duplicates them.
var defaultCategories = []string{"Compras", "Trabajo", "Estudio", "Personal", "Otros"}

// EnsureSchema creates the tables if absent and seeds the default
// categories. Callers treat any error here as fatal to startup.
func EnsureSchema(db *sql.DB) error {
	if _, err := db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return seedCategories(db)
}

func seedCategories(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning seed transaction: %w", err)
	}
	defer tx.Rollback()

	for _, nombre := range defaultCategories {
		if _, err := tx.Exec("INSERT OR IGNORE INTO categorias (nombre) VALUES (?)", nombre); err != nil {
			return fmt.Errorf("seeding category %s: %w", nombre, err)
		}
	}

	return tx.Commit()
}
