package listmonk

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/ignite/listmonk-mcp/internal/domain"
)

// GetCampaigns retrieves a page of campaigns, optionally filtered by status.
func (c *Client) GetCampaigns(ctx context.Context, q domain.CampaignQuery) (domain.Page[domain.Campaign], error) {
	params := pageParams(q.PageQuery)
	if q.Status != "" {
		params.Set("status", string(q.Status))
	}
	return get[domain.Page[domain.Campaign]](ctx, c, "/api/campaigns", params)
}

// GetCampaign retrieves a single campaign by ID.
func (c *Client) GetCampaign(ctx context.Context, id int) (domain.Campaign, error) {
	return get[domain.Campaign](ctx, c, fmt.Sprintf("/api/campaigns/%d", id), nil)
}

// CreateCampaign creates a campaign. listmonk always creates it as a draft;
// req.Status is not sent.
func (c *Client) CreateCampaign(ctx context.Context, req domain.CreateCampaignRequest) (domain.Campaign, error) {
	return send[domain.Campaign](ctx, c, http.MethodPost, "/api/campaigns", req)
}

// UpdateCampaign changes campaign fields. Status changes go through
// UpdateCampaignStatus.
func (c *Client) UpdateCampaign(ctx context.Context, id int, req domain.UpdateCampaignRequest) (domain.Campaign, error) {
	return send[domain.Campaign](ctx, c, http.MethodPut, fmt.Sprintf("/api/campaigns/%d", id), req)
}

// UpdateCampaignStatus transitions a campaign. Legality of the transition is
// decided by listmonk.
func (c *Client) UpdateCampaignStatus(ctx context.Context, id int, status domain.CampaignStatus) (domain.Campaign, error) {
	return send[domain.Campaign](ctx, c, http.MethodPut, fmt.Sprintf("/api/campaigns/%d/status", id),
		domain.CampaignStatusRequest{Status: status})
}

// DeleteCampaign removes a campaign. The response body is not inspected.
func (c *Client) DeleteCampaign(ctx context.Context, id int) error {
	_, err := c.doRequest(ctx, http.MethodDelete, fmt.Sprintf("/api/campaigns/%d", id), nil, nil)
	return err
}

// GetCampaignAnalytics fetches view, click, bounce or link counts for one
// campaign. from and to are passed through when set.
func (c *Client) GetCampaignAnalytics(ctx context.Context, q domain.AnalyticsQuery) ([]domain.AnalyticsPoint, error) {
	params := url.Values{}
	params.Set("id", fmt.Sprint(q.CampaignID))
	if q.From != "" {
		params.Set("from", q.From)
	}
	if q.To != "" {
		params.Set("to", q.To)
	}
	return get[[]domain.AnalyticsPoint](ctx, c, "/api/campaigns/analytics/"+url.PathEscape(string(q.Type)), params)
}
