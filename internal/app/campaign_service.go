// Package app contains the application services implementing the
// primary ports.
package app

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/example/phishtrack/internal/apperr"
	"github.com/example/phishtrack/internal/catalog"
	"github.com/example/phishtrack/internal/ports/primary"
	"github.com/example/phishtrack/internal/ports/secondary"
)

// CampaignServiceImpl implements the CampaignService interface.
type CampaignServiceImpl struct {
	campaignRepo secondary.CampaignRepository
	catalog      *catalog.Catalog
}

// NewCampaignService creates a new CampaignService with injected dependencies.
func NewCampaignService(campaignRepo secondary.CampaignRepository, cat *catalog.Catalog) *CampaignServiceImpl {
	return &CampaignServiceImpl{
		campaignRepo: campaignRepo,
		catalog:      cat,
	}
}

// CreateCampaign creates a new campaign bound to a catalog template.
// An unknown template fails validation before any write.
func (s *CampaignServiceImpl) CreateCampaign(ctx context.Context, req primary.CreateCampaignRequest) (*primary.CreateCampaignResponse, error) {
	if req.Name == "" {
		return nil, apperr.NewValidation("campaign name is required")
	}
	if _, ok := s.catalog.Lookup(req.Template); !ok {
		return nil, apperr.NewValidation("unknown template %q (available: %s)",
			req.Template, strings.Join(s.catalog.Names(), ", "))
	}

	record := &secondary.CampaignRecord{
		ID:       uuid.NewString(),
		Name:     req.Name,
		Template: req.Template,
	}
	if err := s.campaignRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	// Fetch the stored row so status and timestamp come from the store.
	created, err := s.campaignRepo.GetByID(ctx, record.ID)
	if err != nil {
		return nil, err
	}

	return &primary.CreateCampaignResponse{
		CampaignID: created.ID,
		Campaign:   recordToCampaign(created),
	}, nil
}

// GetCampaign retrieves a campaign by ID.
func (s *CampaignServiceImpl) GetCampaign(ctx context.Context, campaignID string) (*primary.Campaign, error) {
	record, err := s.campaignRepo.GetByID(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	return recordToCampaign(record), nil
}

// ListCampaigns retrieves all campaigns.
func (s *CampaignServiceImpl) ListCampaigns(ctx context.Context) ([]*primary.Campaign, error) {
	records, err := s.campaignRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	campaigns := make([]*primary.Campaign, len(records))
	for i, r := range records {
		campaigns[i] = recordToCampaign(r)
	}
	return campaigns, nil
}

func recordToCampaign(r *secondary.CampaignRecord) *primary.Campaign {
	return &primary.Campaign{
		ID:        r.ID,
		Name:      r.Name,
		Template:  r.Template,
		Status:    r.Status,
		CreatedAt: r.CreatedAt,
	}
}

// Ensure CampaignServiceImpl implements the interface.
var _ primary.CampaignService = (*CampaignServiceImpl)(nil)
