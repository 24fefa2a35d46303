package db

import "database/sql"

// SchemaSQL is the complete schema for fresh installs.
//
// This is the single source of truth for the database schema. Tests
// load it via GetSchemaSQL() instead of hardcoding CREATE TABLE
// statements, so a repository referencing a column that does not exist
// here fails immediately with "no such column".
//
// Keep this in sync with migrations: new columns or tables get a
// migration in migrations.go and a matching edit here.
const SchemaSQL = `
-- Campaigns (one phishing-awareness exercise bound to one template)
CREATE TABLE IF NOT EXISTS campaigns (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	template TEXT NOT NULL,
	status TEXT NOT NULL CHECK(status IN ('active', 'archived')) DEFAULT 'active',
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Employees (enrolled recipients, unique by email store-wide)
CREATE TABLE IF NOT EXISTS employees (
	id TEXT PRIMARY KEY,
	email TEXT NOT NULL UNIQUE,
	name TEXT NOT NULL,
	department TEXT NOT NULL,
	campaign_id TEXT NOT NULL,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (campaign_id) REFERENCES campaigns(id)
);

-- Results (one per enrollment; the token is the external handle)
CREATE TABLE IF NOT EXISTS results (
	id TEXT PRIMARY KEY,
	employee_id TEXT NOT NULL,
	campaign_id TEXT NOT NULL,
	email_sent INTEGER NOT NULL DEFAULT 0,
	link_clicked INTEGER NOT NULL DEFAULT 0,
	phishing_reported INTEGER NOT NULL DEFAULT 0,
	clicked_at DATETIME,
	reported_at DATETIME,
	token TEXT NOT NULL UNIQUE,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (employee_id) REFERENCES employees(id),
	FOREIGN KEY (campaign_id) REFERENCES campaigns(id)
);

CREATE INDEX IF NOT EXISTS idx_employees_campaign ON employees(campaign_id);
CREATE INDEX IF NOT EXISTS idx_results_campaign ON results(campaign_id);
CREATE INDEX IF NOT EXISTS idx_results_employee ON results(employee_id);
`

// InitSchema creates the schema on fresh installs and runs pending
// migrations on existing databases.
func InitSchema(database *sql.DB) error {
	var tableCount int
	err := database.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'").Scan(&tableCount)
	if err != nil {
		return err
	}

	if tableCount == 0 {
		var existing int
		err = database.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='campaigns'").Scan(&existing)
		if err != nil {
			return err
		}

		if existing > 0 {
			// Pre-versioning database - bring it forward via migrations.
			return RunMigrations(database)
		}

		// Fresh install: create the modern schema directly and mark all
		// migrations as applied so they never run against it.
		if _, err := database.Exec(SchemaSQL); err != nil {
			return err
		}
		if err := ensureVersionTable(database); err != nil {
			return err
		}
		for _, m := range migrations {
			if _, err := database.Exec("INSERT INTO schema_version (version) VALUES (?)", m.Version); err != nil {
				return err
			}
		}
		return nil
	}

	return RunMigrations(database)
}

// GetSchemaSQL returns the authoritative schema SQL for use by tests.
func GetSchemaSQL() string {
	return SchemaSQL
}
