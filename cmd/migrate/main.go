package main

import (
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/lib/pq"

	"github.com/pageza/recipe-genie/backend/internal/database"
)

const createMigrationsTable = `
	CREATE TABLE IF NOT EXISTS schema_migrations (
		version VARCHAR(255) PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		applied_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`

func main() {
	rollback := flag.Bool("rollback", false, "Rollback the last migration")
	migrationsDir := flag.String("dir", "migrations", "Directory holding the SQL migrations")
	flag.Parse()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL environment variable is not set")
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	if _, err := db.Exec(createMigrationsTable); err != nil {
		log.Fatalf("failed to create migrations table: %v", err)
	}

	if *rollback {
		if err := rollbackLast(db, *migrationsDir); err != nil {
			log.Fatal(err)
		}
		return
	}

	if err := applyAll(db, *migrationsDir); err != nil {
		log.Fatal(err)
	}
	fmt.Println("All migrations applied successfully.")
}

func applyAll(db *sql.DB, dir string) error {
	files, err := database.MigrationFiles(dir)
	if err != nil {
		return err
	}

	for _, file := range files {
		version := strings.SplitN(file, "_", 2)[0]

		var applied bool
		if err := db.QueryRow("SELECT EXISTS (SELECT 1 FROM schema_migrations WHERE version = $1)", version).Scan(&applied); err != nil {
			return fmt.Errorf("failed to check migration status: %w", err)
		}
		if applied {
			fmt.Printf("Migration already applied: %s\n", file)
			continue
		}

		content, err := os.ReadFile(filepath.Join(dir, file))
		if err != nil {
			return fmt.Errorf("failed to read migration %s: %w", file, err)
		}

		err = inTx(db, func(tx *sql.Tx) error {
			if _, err := tx.Exec(string(content)); err != nil {
				return err
			}
			_, err := tx.Exec("INSERT INTO schema_migrations (version, name) VALUES ($1, $2)", version, file)
			return err
		})
		if err != nil {
			return fmt.Errorf("failed to apply migration %s: %w", file, err)
		}

		fmt.Printf("Successfully applied migration: %s\n", file)
	}
	return nil
}

func rollbackLast(db *sql.DB, dir string) error {
	var version, name string
	err := db.QueryRow("SELECT version, name FROM schema_migrations ORDER BY applied_at DESC, version DESC LIMIT 1").
		Scan(&version, &name)
	if errors.Is(err, sql.ErrNoRows) {
		return errors.New("no migrations to rollback")
	}
	if err != nil {
		return fmt.Errorf("failed to get last migration: %w", err)
	}

	rollbackPath := filepath.Join(dir, strings.TrimSuffix(name, ".sql")+"_rollback.sql")
	content, err := os.ReadFile(rollbackPath)
	if err != nil {
		return fmt.Errorf("failed to read rollback file: %w", err)
	}

	err = inTx(db, func(tx *sql.Tx) error {
		if _, err := tx.Exec(string(content)); err != nil {
			return err
		}
		_, err := tx.Exec("DELETE FROM schema_migrations WHERE version = $1", version)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to roll back %s: %w", name, err)
	}

	fmt.Printf("Successfully rolled back migration: %s\n", name)
	return nil
}

func inTx(db *sql.DB, fn func(*sql.Tx) error) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}
