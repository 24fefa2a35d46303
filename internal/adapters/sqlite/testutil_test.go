// Package sqlite_test contains integration tests for SQLite repositories.
//
// Tests load the schema through db.GetSchemaSQL() so they always run
// against the authoritative schema; do not hardcode CREATE TABLE
// statements here.
package sqlite_test

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/phishtrack/internal/db"
)

// setupTestDB creates an in-memory database with the authoritative schema.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if _, err := testDB.Exec(db.GetSchemaSQL()); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// seedCampaign inserts a test campaign and returns its ID.
func seedCampaign(t *testing.T, db *sql.DB, id, name string) string {
	t.Helper()
	if id == "" {
		id = "camp-001"
	}
	if name == "" {
		name = "Test Campaign"
	}
	_, err := db.Exec("INSERT INTO campaigns (id, name, template) VALUES (?, ?, 'password_reset')", id, name)
	if err != nil {
		t.Fatalf("failed to seed campaign: %v", err)
	}
	return id
}

// seedEmployee inserts a test employee and returns its ID.
func seedEmployee(t *testing.T, db *sql.DB, id, email, department, campaignID string) string {
	t.Helper()
	if id == "" {
		id = "emp-001"
	}
	if email == "" {
		email = "test@example.com"
	}
	if department == "" {
		department = "Engineering"
	}
	if campaignID == "" {
		campaignID = "camp-001"
	}
	_, err := db.Exec(
		"INSERT INTO employees (id, email, name, department, campaign_id) VALUES (?, ?, 'Test Employee', ?, ?)",
		id, email, department, campaignID,
	)
	if err != nil {
		t.Fatalf("failed to seed employee: %v", err)
	}
	return id
}

// seedResult inserts a test result and returns its token.
func seedResult(t *testing.T, db *sql.DB, id, employeeID, campaignID, token string) string {
	t.Helper()
	if id == "" {
		id = "res-001"
	}
	if employeeID == "" {
		employeeID = "emp-001"
	}
	if campaignID == "" {
		campaignID = "camp-001"
	}
	if token == "" {
		token = "tok-001"
	}
	_, err := db.Exec(
		"INSERT INTO results (id, employee_id, campaign_id, token) VALUES (?, ?, ?, ?)",
		id, employeeID, campaignID, token,
	)
	if err != nil {
		t.Fatalf("failed to seed result: %v", err)
	}
	return token
}
