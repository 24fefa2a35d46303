package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/example/phishtrack/internal/adapters/sqlite"
	"github.com/example/phishtrack/internal/apperr"
)

func TestResultRepository_GetByToken(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewResultRepository(db)
	ctx := context.Background()

	seedCampaign(t, db, "", "")
	seedEmployee(t, db, "", "", "", "")
	seedResult(t, db, "", "", "", "tok-abc")

	got, err := repo.GetByToken(ctx, "tok-abc")
	if err != nil {
		t.Fatalf("GetByToken failed: %v", err)
	}
	if got.Token != "tok-abc" {
		t.Errorf("expected token tok-abc, got %s", got.Token)
	}
	if got.EmailSent || got.LinkClicked || got.PhishingReported {
		t.Error("expected all counters false on a fresh result")
	}
	if got.ClickedAt != "" || got.ReportedAt != "" {
		t.Error("expected null event timestamps on a fresh result")
	}
}

func TestResultRepository_GetByToken_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewResultRepository(db)

	_, err := repo.GetByToken(context.Background(), "tok-missing")
	if !apperr.IsNotFound(err) {
		t.Errorf("expected not-found error, got %v", err)
	}
}

func TestResultRepository_MarkSent(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewResultRepository(db)
	ctx := context.Background()

	seedCampaign(t, db, "", "")
	seedEmployee(t, db, "", "", "", "")
	seedResult(t, db, "", "", "", "tok-abc")

	if err := repo.MarkSent(ctx, "tok-abc"); err != nil {
		t.Fatalf("MarkSent failed: %v", err)
	}

	got, err := repo.GetByToken(ctx, "tok-abc")
	if err != nil {
		t.Fatalf("GetByToken failed: %v", err)
	}
	if !got.EmailSent {
		t.Error("expected email_sent true")
	}
}

func TestResultRepository_MarkClicked_Idempotent(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewResultRepository(db)
	ctx := context.Background()

	seedCampaign(t, db, "", "")
	seedEmployee(t, db, "", "", "", "")
	seedResult(t, db, "", "", "", "tok-abc")

	first := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	second := time.Date(2026, 3, 1, 11, 0, 0, 0, time.UTC)

	if err := repo.MarkClicked(ctx, "tok-abc", first); err != nil {
		t.Fatalf("MarkClicked failed: %v", err)
	}
	if err := repo.MarkClicked(ctx, "tok-abc", second); err != nil {
		t.Fatalf("repeated MarkClicked failed: %v", err)
	}

	got, err := repo.GetByToken(ctx, "tok-abc")
	if err != nil {
		t.Fatalf("GetByToken failed: %v", err)
	}
	if !got.LinkClicked {
		t.Error("expected link_clicked true")
	}
	if got.ClickedAt != second.Format(time.RFC3339) {
		t.Errorf("expected refreshed timestamp %s, got %s", second.Format(time.RFC3339), got.ClickedAt)
	}
}

func TestResultRepository_MarkClicked_UnknownToken(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewResultRepository(db)
	ctx := context.Background()

	seedCampaign(t, db, "", "")
	seedEmployee(t, db, "", "", "", "")
	seedResult(t, db, "", "", "", "tok-abc")

	err := repo.MarkClicked(ctx, "tok-missing", time.Now())
	if !apperr.IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}

	// the miss must leave existing rows untouched
	got, err := repo.GetByToken(ctx, "tok-abc")
	if err != nil {
		t.Fatalf("GetByToken failed: %v", err)
	}
	if got.LinkClicked {
		t.Error("unrelated result was modified")
	}
}

func TestResultRepository_MarkReported(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewResultRepository(db)
	ctx := context.Background()

	seedCampaign(t, db, "camp-001", "")
	seedEmployee(t, db, "emp-001", "alice@x.com", "Eng", "camp-001")
	seedResult(t, db, "res-001", "emp-001", "camp-001", "tok-1")
	seedResult(t, db, "res-002", "emp-001", "camp-001", "tok-2")

	ts := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	if err := repo.MarkReported(ctx, "emp-001", "camp-001", ts); err != nil {
		t.Fatalf("MarkReported failed: %v", err)
	}

	// all of the employee's results under the campaign are updated
	for _, token := range []string{"tok-1", "tok-2"} {
		got, err := repo.GetByToken(ctx, token)
		if err != nil {
			t.Fatalf("GetByToken failed: %v", err)
		}
		if !got.PhishingReported {
			t.Errorf("result %s: expected phishing_reported true", token)
		}
		if got.ReportedAt != ts.Format(time.RFC3339) {
			t.Errorf("result %s: unexpected timestamp %s", token, got.ReportedAt)
		}
	}
}

func TestResultRepository_MarkReported_NoResults(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewResultRepository(db)

	seedCampaign(t, db, "camp-001", "")

	err := repo.MarkReported(context.Background(), "emp-missing", "camp-001", time.Now())
	if !apperr.IsNotFound(err) {
		t.Errorf("expected not-found error, got %v", err)
	}
}

func TestResultRepository_ListRecipients(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewResultRepository(db)
	ctx := context.Background()

	seedCampaign(t, db, "camp-001", "")
	seedCampaign(t, db, "camp-002", "")
	seedEmployee(t, db, "emp-001", "alice@x.com", "Eng", "camp-001")
	seedEmployee(t, db, "emp-002", "bob@x.com", "Sales", "camp-001")
	seedResult(t, db, "res-001", "emp-001", "camp-001", "tok-1")
	seedResult(t, db, "res-002", "emp-002", "camp-001", "tok-2")
	seedResult(t, db, "res-003", "emp-002", "camp-002", "tok-3")

	recipients, err := repo.ListRecipients(ctx, "camp-001")
	if err != nil {
		t.Fatalf("ListRecipients failed: %v", err)
	}
	if len(recipients) != 2 {
		t.Fatalf("expected 2 recipients, got %d", len(recipients))
	}
	if recipients[0].Email != "alice@x.com" || recipients[0].Token != "tok-1" {
		t.Errorf("unexpected first recipient: %+v", recipients[0])
	}
	if recipients[1].Email != "bob@x.com" || recipients[1].Token != "tok-2" {
		t.Errorf("unexpected second recipient: %+v", recipients[1])
	}
}

func TestResultRepository_Totals_EmptyCampaign(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewResultRepository(db)

	seedCampaign(t, db, "camp-001", "")

	totals, err := repo.Totals(context.Background(), "camp-001")
	if err != nil {
		t.Fatalf("Totals failed: %v", err)
	}
	if totals.Total != 0 || totals.Sent != 0 || totals.Clicked != 0 || totals.Reported != 0 {
		t.Errorf("expected zeroed totals, got %+v", totals)
	}
}

func TestResultRepository_DepartmentTotals(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewResultRepository(db)
	ctx := context.Background()

	seedCampaign(t, db, "camp-001", "")
	seedEmployee(t, db, "emp-001", "alice@x.com", "Eng", "camp-001")
	seedEmployee(t, db, "emp-002", "bob@x.com", "Eng", "camp-001")
	seedEmployee(t, db, "emp-003", "carol@x.com", "Sales", "camp-001")
	seedResult(t, db, "res-001", "emp-001", "camp-001", "tok-1")
	seedResult(t, db, "res-002", "emp-002", "camp-001", "tok-2")
	seedResult(t, db, "res-003", "emp-003", "camp-001", "tok-3")

	if err := repo.MarkClicked(ctx, "tok-1", time.Now()); err != nil {
		t.Fatalf("MarkClicked failed: %v", err)
	}

	departments, err := repo.DepartmentTotals(ctx, "camp-001")
	if err != nil {
		t.Fatalf("DepartmentTotals failed: %v", err)
	}
	if len(departments) != 2 {
		t.Fatalf("expected 2 departments, got %d", len(departments))
	}
	if departments[0].Department != "Eng" || departments[0].Total != 2 || departments[0].Clicked != 1 {
		t.Errorf("unexpected Eng totals: %+v", departments[0])
	}
	if departments[1].Department != "Sales" || departments[1].Total != 1 || departments[1].Clicked != 0 {
		t.Errorf("unexpected Sales totals: %+v", departments[1])
	}
}
