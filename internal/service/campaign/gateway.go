package campaign

import (
	"context"

	"github.com/ignite/listmonk-mcp/internal/domain"
)

// Gateway is the subset of the listmonk client the service drives.
// *listmonk.Client satisfies it.
type Gateway interface {
	CreateCampaign(ctx context.Context, req domain.CreateCampaignRequest) (domain.Campaign, error)
	UpdateCampaign(ctx context.Context, id int, req domain.UpdateCampaignRequest) (domain.Campaign, error)
	UpdateCampaignStatus(ctx context.Context, id int, status domain.CampaignStatus) (domain.Campaign, error)
}
