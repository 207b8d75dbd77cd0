package testutil

import (
	"database/sql"
	"os"
	"testing"

	"github.com/tmplhub/tmplhub/internal/config"
	"github.com/tmplhub/tmplhub/internal/repo"
)

func OpenTestDB(t *testing.T) (*sql.DB, func()) {
	t.Helper()
	host := os.Getenv("TEST_DB_HOST")
	if host == "" {
		t.Skip("TEST_DB_HOST not set, skipping postgres test")
	}
	conn, err := repo.Open(config.DatabaseConfig{
		Host:     host,
		Port:     5432,
		User:     "tmplhub",
		Password: "tmplhub_pass",
		DBName:   "tmplhub_test",
		SSLMode:  "disable",
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := repo.ApplyMigrations(conn); err != nil {
		t.Fatalf("migrations: %v", err)
	}
	ResetTemplates(t, conn)
	return conn, func() {
		_ = conn.Close()
	}
}

func ResetTemplates(t *testing.T, db *sql.DB) {
	t.Helper()
	if _, err := db.Exec("TRUNCATE templates RESTART IDENTITY"); err != nil {
		t.Fatalf("reset templates: %v", err)
	}
}
