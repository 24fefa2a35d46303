package app

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/example/phishtrack/internal/apperr"
	"github.com/example/phishtrack/internal/catalog"
	"github.com/example/phishtrack/internal/core/render"
	"github.com/example/phishtrack/internal/ports/primary"
	"github.com/example/phishtrack/internal/ports/secondary"
)

// MailoutServiceImpl implements the MailoutService interface.
type MailoutServiceImpl struct {
	campaignRepo secondary.CampaignRepository
	resultRepo   secondary.ResultRepository
	writer       secondary.EmailWriter
	catalog      *catalog.Catalog
	trackingHost string
}

// NewMailoutService creates a new MailoutService with injected dependencies.
func NewMailoutService(
	campaignRepo secondary.CampaignRepository,
	resultRepo secondary.ResultRepository,
	writer secondary.EmailWriter,
	cat *catalog.Catalog,
	trackingHost string,
) *MailoutServiceImpl {
	return &MailoutServiceImpl{
		campaignRepo: campaignRepo,
		resultRepo:   resultRepo,
		writer:       writer,
		catalog:      cat,
		trackingHost: trackingHost,
	}
}

// GenerateEmails renders one document per enrolled recipient into the
// output directory. The email_sent flag update after each write is
// best-effort: a failed update is logged and never aborts the rest of
// the mailout.
func (s *MailoutServiceImpl) GenerateEmails(ctx context.Context, req primary.GenerateEmailsRequest) (*primary.GenerateEmailsResponse, error) {
	campaign, err := s.campaignRepo.GetByID(ctx, req.CampaignID)
	if err != nil {
		return nil, err
	}

	// Defensive: the stored template name should always be in the catalog.
	tmpl, ok := s.catalog.Lookup(campaign.Template)
	if !ok {
		return nil, apperr.NewNotFound("template", campaign.Template)
	}

	recipients, err := s.resultRepo.ListRecipients(ctx, req.CampaignID)
	if err != nil {
		return nil, err
	}

	written := 0
	for _, recipient := range recipients {
		url := render.TrackingURL(s.trackingHost, recipient.Token)
		doc := render.BuildDocument(tmpl, campaign.Name, recipient.Email, url, recipient.Token)

		if _, err := s.writer.WriteEmail(ctx, req.OutputDir, render.Filename(recipient.Email), doc); err != nil {
			return nil, err
		}
		written++

		if err := s.resultRepo.MarkSent(ctx, recipient.Token); err != nil {
			log.Warn().Err(err).Str("token", recipient.Token).Msg("failed to mark email as sent")
		}
	}

	return &primary.GenerateEmailsResponse{
		EmailsWritten: written,
		OutputDir:     req.OutputDir,
	}, nil
}

// Ensure MailoutServiceImpl implements the interface.
var _ primary.MailoutService = (*MailoutServiceImpl)(nil)
