package listmonk

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/ignite/listmonk-mcp/internal/domain"
)

// GetHealth retrieves the instance health.
func (c *Client) GetHealth(ctx context.Context) (domain.Health, error) {
	return get[domain.Health](ctx, c, "/api/health", nil)
}

// GetDashboardCounts retrieves subscriber, list, campaign and message totals.
func (c *Client) GetDashboardCounts(ctx context.Context) (domain.DashboardCounts, error) {
	return get[domain.DashboardCounts](ctx, c, "/api/dashboard/counts", nil)
}

// SendTransactional sends one templated message. Subscriber and template
// identifiers are resolved by listmonk.
func (c *Client) SendTransactional(ctx context.Context, req domain.TransactionalMessageRequest) (bool, error) {
	return send[bool](ctx, c, http.MethodPost, "/api/tx", req)
}

// GetMedia lists uploaded media. Older listmonk releases return a bare array
// instead of a page; both are accepted.
func (c *Client) GetMedia(ctx context.Context, q domain.PageQuery) (domain.Page[domain.Media], error) {
	raw, err := get[json.RawMessage](ctx, c, "/api/media", pageParams(q))
	if err != nil {
		return domain.Page[domain.Media]{}, err
	}

	var page domain.Page[domain.Media]
	if err := json.Unmarshal(raw, &page); err == nil {
		return page, nil
	}

	var items []domain.Media
	if err := json.Unmarshal(raw, &items); err != nil {
		return domain.Page[domain.Media]{}, &DecodeError{Body: string(raw), Err: err}
	}
	return domain.Page[domain.Media]{Results: items, Total: len(items), PerPage: len(items), Page: 1}, nil
}
