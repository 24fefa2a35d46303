package db

import (
	"database/sql"
	"fmt"
	"time"
)

// SeedFixtures populates the database with development fixtures: one
// campaign with three enrolled recipients, one recorded click and one
// recorded report. Handy for exercising stats and export locally.
func SeedFixtures(database *sql.DB) error {
	now := time.Now().UTC()

	if _, err := database.Exec(
		"INSERT INTO campaigns (id, name, template, status) VALUES (?, ?, ?, 'active')",
		"00000000-0000-0000-0000-0000000000c1", "Seed Campaign", "password_reset",
	); err != nil {
		return fmt.Errorf("seed campaigns: %w", err)
	}

	employees := []struct{ id, email, name, department string }{
		{"00000000-0000-0000-0000-0000000000e1", "alice@example.com", "Alice Seed", "Engineering"},
		{"00000000-0000-0000-0000-0000000000e2", "bob@example.com", "Bob Seed", "Engineering"},
		{"00000000-0000-0000-0000-0000000000e3", "carol@example.com", "Carol Seed", "Sales"},
	}
	for _, e := range employees {
		if _, err := database.Exec(
			"INSERT INTO employees (id, email, name, department, campaign_id) VALUES (?, ?, ?, ?, ?)",
			e.id, e.email, e.name, e.department, "00000000-0000-0000-0000-0000000000c1",
		); err != nil {
			return fmt.Errorf("seed employees: %w", err)
		}
	}

	results := []struct {
		id, employeeID, token string
		clicked, reported     bool
	}{
		{"00000000-0000-0000-0000-0000000000r1", employees[0].id, "seed-token-alice", true, false},
		{"00000000-0000-0000-0000-0000000000r2", employees[1].id, "seed-token-bob", false, true},
		{"00000000-0000-0000-0000-0000000000r3", employees[2].id, "seed-token-carol", false, false},
	}
	for _, r := range results {
		var clickedAt, reportedAt any
		if r.clicked {
			clickedAt = now
		}
		if r.reported {
			reportedAt = now
		}
		if _, err := database.Exec(
			`INSERT INTO results (id, employee_id, campaign_id, email_sent, link_clicked, phishing_reported, clicked_at, reported_at, token)
			 VALUES (?, ?, ?, 1, ?, ?, ?, ?, ?)`,
			r.id, r.employeeID, "00000000-0000-0000-0000-0000000000c1",
			r.clicked, r.reported, clickedAt, reportedAt, r.token,
		); err != nil {
			return fmt.Errorf("seed results: %w", err)
		}
	}

	return nil
}
