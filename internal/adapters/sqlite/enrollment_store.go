package sqlite

import (
	"context"
	"database/sql"

	"github.com/example/phishtrack/internal/apperr"
	"github.com/example/phishtrack/internal/ports/secondary"
)

// EnrollmentStore implements secondary.EnrollmentStore with SQLite.
type EnrollmentStore struct {
	db *sql.DB
}

// NewEnrollmentStore creates a new SQLite enrollment store.
func NewEnrollmentStore(db *sql.DB) *EnrollmentStore {
	return &EnrollmentStore{db: db}
}

// EnrollBatch runs the whole batch inside one transaction. Each row is
// two explicit steps: an insert-if-absent on the employee keyed by
// email, then an unconditional result insert against the canonical
// employee row. The two-step shape keeps the duplicate-email contract
// explicit: a known email never updates name or department, but every
// roster record still yields a fresh result.
func (s *EnrollmentStore) EnrollBatch(ctx context.Context, campaignID string, rows []*secondary.EnrollmentRow) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return apperr.NewStorage("begin enrollment", err)
	}
	defer tx.Rollback()

	for _, row := range rows {
		_, err := tx.ExecContext(ctx,
			"INSERT OR IGNORE INTO employees (id, email, name, department, campaign_id) VALUES (?, ?, ?, ?, ?)",
			row.EmployeeID, row.Email, row.Name, row.Department, campaignID,
		)
		if err != nil {
			return apperr.NewStorage("enroll employee", err)
		}

		// Resolve the canonical employee ID; a pre-existing email keeps
		// its original row.
		var employeeID string
		err = tx.QueryRowContext(ctx,
			"SELECT id FROM employees WHERE email = ?",
			row.Email,
		).Scan(&employeeID)
		if err != nil {
			return apperr.NewStorage("resolve employee", err)
		}

		_, err = tx.ExecContext(ctx,
			"INSERT INTO results (id, employee_id, campaign_id, token) VALUES (?, ?, ?, ?)",
			row.ResultID, employeeID, campaignID, row.Token,
		)
		if err != nil {
			return apperr.NewStorage("create result", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return apperr.NewStorage("commit enrollment", err)
	}

	return nil
}

// Ensure EnrollmentStore implements the interface.
var _ secondary.EnrollmentStore = (*EnrollmentStore)(nil)
