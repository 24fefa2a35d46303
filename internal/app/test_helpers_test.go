package app

import (
	"context"
	"time"

	"github.com/example/phishtrack/internal/apperr"
	"github.com/example/phishtrack/internal/ports/secondary"
)

// Ensure mockCampaignRepo implements the interface
var _ secondary.CampaignRepository = (*mockCampaignRepo)(nil)

// mockCampaignRepo implements secondary.CampaignRepository for testing.
type mockCampaignRepo struct {
	campaigns map[string]*secondary.CampaignRecord
	createErr error
	listErr   error
}

func newMockCampaignRepo() *mockCampaignRepo {
	return &mockCampaignRepo{
		campaigns: make(map[string]*secondary.CampaignRecord),
	}
}

func (m *mockCampaignRepo) Create(ctx context.Context, campaign *secondary.CampaignRecord) error {
	if m.createErr != nil {
		return m.createErr
	}
	stored := *campaign
	if stored.Status == "" {
		stored.Status = "active"
	}
	if stored.CreatedAt == "" {
		stored.CreatedAt = "2026-01-01T00:00:00Z"
	}
	m.campaigns[stored.ID] = &stored
	return nil
}

func (m *mockCampaignRepo) GetByID(ctx context.Context, id string) (*secondary.CampaignRecord, error) {
	campaign, ok := m.campaigns[id]
	if !ok {
		return nil, apperr.NewNotFound("campaign", id)
	}
	return campaign, nil
}

func (m *mockCampaignRepo) List(ctx context.Context) ([]*secondary.CampaignRecord, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var records []*secondary.CampaignRecord
	for _, c := range m.campaigns {
		records = append(records, c)
	}
	return records, nil
}

// Ensure mockEmployeeRepo implements the interface
var _ secondary.EmployeeRepository = (*mockEmployeeRepo)(nil)

// mockEmployeeRepo implements secondary.EmployeeRepository for testing.
// Employees are keyed by email plus campaign.
type mockEmployeeRepo struct {
	employees map[string]*secondary.EmployeeRecord
}

func newMockEmployeeRepo() *mockEmployeeRepo {
	return &mockEmployeeRepo{
		employees: make(map[string]*secondary.EmployeeRecord),
	}
}

func (m *mockEmployeeRepo) add(record *secondary.EmployeeRecord) {
	m.employees[record.Email+"|"+record.CampaignID] = record
}

func (m *mockEmployeeRepo) GetByEmailAndCampaign(ctx context.Context, email, campaignID string) (*secondary.EmployeeRecord, error) {
	employee, ok := m.employees[email+"|"+campaignID]
	if !ok {
		return nil, apperr.NewNotFound("employee", email)
	}
	return employee, nil
}

// Ensure mockEnrollmentStore implements the interface
var _ secondary.EnrollmentStore = (*mockEnrollmentStore)(nil)

// mockEnrollmentStore implements secondary.EnrollmentStore for testing.
type mockEnrollmentStore struct {
	batches   map[string][]*secondary.EnrollmentRow
	enrollErr error
}

func newMockEnrollmentStore() *mockEnrollmentStore {
	return &mockEnrollmentStore{
		batches: make(map[string][]*secondary.EnrollmentRow),
	}
}

func (m *mockEnrollmentStore) EnrollBatch(ctx context.Context, campaignID string, rows []*secondary.EnrollmentRow) error {
	if m.enrollErr != nil {
		return m.enrollErr
	}
	m.batches[campaignID] = append(m.batches[campaignID], rows...)
	return nil
}

// Ensure mockResultRepo implements the interface
var _ secondary.ResultRepository = (*mockResultRepo)(nil)

// mockResultRepo implements secondary.ResultRepository for testing.
type mockResultRepo struct {
	results    map[string]*secondary.ResultRecord
	recipients []*secondary.RecipientRecord

	totals      *secondary.ResultTotals
	departments []*secondary.DepartmentTotals

	markSentErr     error
	markSentCalls   []string
	clickedTokens   map[string]time.Time
	reportedTargets map[string]time.Time
}

func newMockResultRepo() *mockResultRepo {
	return &mockResultRepo{
		results:         make(map[string]*secondary.ResultRecord),
		totals:          &secondary.ResultTotals{},
		clickedTokens:   make(map[string]time.Time),
		reportedTargets: make(map[string]time.Time),
	}
}

func (m *mockResultRepo) GetByToken(ctx context.Context, token string) (*secondary.ResultRecord, error) {
	result, ok := m.results[token]
	if !ok {
		return nil, apperr.NewNotFound("token", token)
	}
	return result, nil
}

func (m *mockResultRepo) ListRecipients(ctx context.Context, campaignID string) ([]*secondary.RecipientRecord, error) {
	return m.recipients, nil
}

func (m *mockResultRepo) MarkSent(ctx context.Context, token string) error {
	m.markSentCalls = append(m.markSentCalls, token)
	return m.markSentErr
}

func (m *mockResultRepo) MarkClicked(ctx context.Context, token string, clickedAt time.Time) error {
	if _, ok := m.results[token]; !ok {
		return apperr.NewNotFound("token", token)
	}
	m.clickedTokens[token] = clickedAt
	return nil
}

func (m *mockResultRepo) MarkReported(ctx context.Context, employeeID, campaignID string, reportedAt time.Time) error {
	m.reportedTargets[employeeID+"|"+campaignID] = reportedAt
	return nil
}

func (m *mockResultRepo) Totals(ctx context.Context, campaignID string) (*secondary.ResultTotals, error) {
	return m.totals, nil
}

func (m *mockResultRepo) DepartmentTotals(ctx context.Context, campaignID string) ([]*secondary.DepartmentTotals, error) {
	return m.departments, nil
}

// Ensure mockEmailWriter implements the interface
var _ secondary.EmailWriter = (*mockEmailWriter)(nil)

// mockEmailWriter implements secondary.EmailWriter for testing. It
// records written documents instead of touching the filesystem.
type mockEmailWriter struct {
	written  map[string]string
	writeErr error
}

func newMockEmailWriter() *mockEmailWriter {
	return &mockEmailWriter{
		written: make(map[string]string),
	}
}

func (m *mockEmailWriter) WriteEmail(ctx context.Context, dir, filename, body string) (string, error) {
	if m.writeErr != nil {
		return "", m.writeErr
	}
	m.written[filename] = body
	return dir + "/" + filename, nil
}
