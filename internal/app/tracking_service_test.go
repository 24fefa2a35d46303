package app

import (
	"context"
	"testing"
	"time"

	"github.com/example/phishtrack/internal/apperr"
	"github.com/example/phishtrack/internal/ports/secondary"
)

func TestRecordClick(t *testing.T) {
	resultRepo := newMockResultRepo()
	resultRepo.results["tok-1"] = &secondary.ResultRecord{ID: "res-001", Token: "tok-1"}
	service := NewTrackingService(newMockEmployeeRepo(), resultRepo)

	fixed := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return fixed }

	if err := service.RecordClick(context.Background(), "tok-1"); err != nil {
		t.Fatalf("RecordClick failed: %v", err)
	}
	if got := resultRepo.clickedTokens["tok-1"]; !got.Equal(fixed) {
		t.Errorf("expected click at %v, got %v", fixed, got)
	}
}

func TestRecordClick_UnknownToken(t *testing.T) {
	service := NewTrackingService(newMockEmployeeRepo(), newMockResultRepo())

	err := service.RecordClick(context.Background(), "tok-missing")
	if !apperr.IsNotFound(err) {
		t.Errorf("expected not-found error, got %v", err)
	}
}

func TestRecordReport(t *testing.T) {
	employeeRepo := newMockEmployeeRepo()
	employeeRepo.add(&secondary.EmployeeRecord{
		ID:         "emp-001",
		Email:      "alice@x.com",
		CampaignID: "camp-001",
	})
	resultRepo := newMockResultRepo()
	service := NewTrackingService(employeeRepo, resultRepo)

	fixed := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return fixed }

	if err := service.RecordReport(context.Background(), "alice@x.com", "camp-001"); err != nil {
		t.Fatalf("RecordReport failed: %v", err)
	}
	if got := resultRepo.reportedTargets["emp-001|camp-001"]; !got.Equal(fixed) {
		t.Errorf("expected report at %v, got %v", fixed, got)
	}
}

func TestRecordReport_UnknownEmployee(t *testing.T) {
	resultRepo := newMockResultRepo()
	service := NewTrackingService(newMockEmployeeRepo(), resultRepo)

	err := service.RecordReport(context.Background(), "nobody@x.com", "camp-001")
	if !apperr.IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
	if len(resultRepo.reportedTargets) != 0 {
		t.Error("a failed lookup must not mark anything reported")
	}
}
