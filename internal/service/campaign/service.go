package campaign

import (
	"context"
	"fmt"

	"github.com/ignite/listmonk-mcp/internal/domain"
	"github.com/ignite/listmonk-mcp/internal/pkg/logger"
	"github.com/ignite/listmonk-mcp/internal/schedule"
)

// Service sequences campaign writes against a Gateway. It holds no state
// between calls and is safe for concurrent use if the gateway is.
type Service struct {
	gw    Gateway
	sched schedule.Converter
}

// NewService creates a campaign service. send_at values are converted with
// schedule.Default.
func NewService(gw Gateway) *Service {
	return &Service{gw: gw, sched: schedule.Default}
}

// SetScheduler overrides the converter applied to send_at.
func (s *Service) SetScheduler(c schedule.Converter) {
	s.sched = c
}

// Create creates the campaign and, when a status other than draft was
// requested, transitions it. On transition failure the draft campaign is
// returned together with an error wrapping ErrTransitionFailed.
func (s *Service) Create(ctx context.Context, req domain.CreateCampaignRequest) (domain.Campaign, error) {
	req.SendAt = s.convertSendAt(req.SendAt)

	created, err := s.gw.CreateCampaign(ctx, req)
	if err != nil {
		return domain.Campaign{}, err
	}

	if req.Status == "" || req.Status == domain.CampaignDraft {
		return created, nil
	}
	if created.ID == 0 {
		return created, ErrMissingID
	}

	updated, err := s.gw.UpdateCampaignStatus(ctx, created.ID, req.Status)
	if err != nil {
		logger.Warn("campaign created but status transition failed",
			"campaign_id", created.ID,
			"status", string(req.Status),
			"error", err.Error(),
		)
		return created, fmt.Errorf("%w for campaign %d: %w", ErrTransitionFailed, created.ID, err)
	}
	return updated, nil
}

// Update applies field changes and then, if a status was supplied,
// transitions the campaign. The transition result is returned in that case.
func (s *Service) Update(ctx context.Context, id int, req domain.UpdateCampaignRequest) (domain.Campaign, error) {
	req.SendAt = s.convertSendAt(req.SendAt)

	updated, err := s.gw.UpdateCampaign(ctx, id, req)
	if err != nil {
		return domain.Campaign{}, err
	}
	if req.Status == "" {
		return updated, nil
	}

	transitioned, err := s.gw.UpdateCampaignStatus(ctx, id, req.Status)
	if err != nil {
		return updated, fmt.Errorf("%w for campaign %d: %w", ErrTransitionFailed, id, err)
	}
	return transitioned, nil
}

// Transition changes the status of an existing campaign.
func (s *Service) Transition(ctx context.Context, id int, status domain.CampaignStatus) (domain.Campaign, error) {
	return s.gw.UpdateCampaignStatus(ctx, id, status)
}

func (s *Service) convertSendAt(sendAt *string) *string {
	if sendAt == nil {
		return nil
	}
	converted := s.sched.ToUTC(*sendAt)
	return &converted
}
