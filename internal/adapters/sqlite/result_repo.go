package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/example/phishtrack/internal/apperr"
	"github.com/example/phishtrack/internal/ports/secondary"
)

// ResultRepository implements secondary.ResultRepository with SQLite.
type ResultRepository struct {
	db *sql.DB
}

// NewResultRepository creates a new SQLite result repository.
func NewResultRepository(db *sql.DB) *ResultRepository {
	return &ResultRepository{db: db}
}

// GetByToken retrieves a result by its tracking token.
func (r *ResultRepository) GetByToken(ctx context.Context, token string) (*secondary.ResultRecord, error) {
	var (
		clickedAt  sql.NullTime
		reportedAt sql.NullTime
		createdAt  time.Time
	)

	record := &secondary.ResultRecord{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, employee_id, campaign_id, email_sent, link_clicked, phishing_reported, clicked_at, reported_at, token, created_at
		 FROM results WHERE token = ?`,
		token,
	).Scan(&record.ID, &record.EmployeeID, &record.CampaignID,
		&record.EmailSent, &record.LinkClicked, &record.PhishingReported,
		&clickedAt, &reportedAt, &record.Token, &createdAt)

	if err == sql.ErrNoRows {
		return nil, apperr.NewNotFound("token", token)
	}
	if err != nil {
		return nil, apperr.NewStorage("get result", err)
	}

	if clickedAt.Valid {
		record.ClickedAt = clickedAt.Time.Format(time.RFC3339)
	}
	if reportedAt.Valid {
		record.ReportedAt = reportedAt.Time.Format(time.RFC3339)
	}
	record.CreatedAt = createdAt.Format(time.RFC3339)

	return record, nil
}

// ListRecipients returns the (email, name, token) triples for all
// results under a campaign, joined to their employees.
func (r *ResultRepository) ListRecipients(ctx context.Context, campaignID string) ([]*secondary.RecipientRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT e.email, e.name, r.token
		 FROM results r
		 JOIN employees e ON e.id = r.employee_id
		 WHERE r.campaign_id = ?
		 ORDER BY e.email ASC, r.token ASC`,
		campaignID,
	)
	if err != nil {
		return nil, apperr.NewStorage("list recipients", err)
	}
	defer rows.Close()

	var recipients []*secondary.RecipientRecord
	for rows.Next() {
		record := &secondary.RecipientRecord{}
		if err := rows.Scan(&record.Email, &record.Name, &record.Token); err != nil {
			return nil, apperr.NewStorage("scan recipient", err)
		}
		recipients = append(recipients, record)
	}

	return recipients, nil
}

// MarkSent sets email_sent on the result with the given token.
func (r *ResultRepository) MarkSent(ctx context.Context, token string) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE results SET email_sent = 1 WHERE token = ?",
		token,
	)
	if err != nil {
		return apperr.NewStorage("mark result sent", err)
	}
	return nil
}

// MarkClicked sets link_clicked and the click timestamp on the result
// with the given token. Repeated calls refresh the timestamp.
func (r *ResultRepository) MarkClicked(ctx context.Context, token string, clickedAt time.Time) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE results SET link_clicked = 1, clicked_at = ? WHERE token = ?",
		clickedAt, token,
	)
	if err != nil {
		return apperr.NewStorage("mark result clicked", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return apperr.NewNotFound("token", token)
	}

	return nil
}

// MarkReported sets phishing_reported and the report timestamp on the
// results an employee holds under a campaign.
func (r *ResultRepository) MarkReported(ctx context.Context, employeeID, campaignID string, reportedAt time.Time) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE results SET phishing_reported = 1, reported_at = ? WHERE employee_id = ? AND campaign_id = ?",
		reportedAt, employeeID, campaignID,
	)
	if err != nil {
		return apperr.NewStorage("mark result reported", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return apperr.NewNotFound("result for employee", employeeID)
	}

	return nil
}

// Totals aggregates result counters for a campaign.
func (r *ResultRepository) Totals(ctx context.Context, campaignID string) (*secondary.ResultTotals, error) {
	totals := &secondary.ResultTotals{}
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*),
		        COALESCE(SUM(email_sent), 0),
		        COALESCE(SUM(link_clicked), 0),
		        COALESCE(SUM(phishing_reported), 0)
		 FROM results WHERE campaign_id = ?`,
		campaignID,
	).Scan(&totals.Total, &totals.Sent, &totals.Clicked, &totals.Reported)
	if err != nil {
		return nil, apperr.NewStorage("aggregate results", err)
	}

	return totals, nil
}

// DepartmentTotals aggregates result counters per department for a
// campaign.
func (r *ResultRepository) DepartmentTotals(ctx context.Context, campaignID string) ([]*secondary.DepartmentTotals, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT e.department,
		        COUNT(*),
		        COALESCE(SUM(r.link_clicked), 0),
		        COALESCE(SUM(r.phishing_reported), 0)
		 FROM employees e
		 JOIN results r ON e.id = r.employee_id
		 WHERE e.campaign_id = ?
		 GROUP BY e.department
		 ORDER BY e.department ASC`,
		campaignID,
	)
	if err != nil {
		return nil, apperr.NewStorage("aggregate department results", err)
	}
	defer rows.Close()

	var totals []*secondary.DepartmentTotals
	for rows.Next() {
		record := &secondary.DepartmentTotals{}
		if err := rows.Scan(&record.Department, &record.Total, &record.Clicked, &record.Reported); err != nil {
			return nil, apperr.NewStorage("scan department totals", err)
		}
		totals = append(totals, record)
	}

	return totals, nil
}

// Ensure ResultRepository implements the interface.
var _ secondary.ResultRepository = (*ResultRepository)(nil)
