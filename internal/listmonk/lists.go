package listmonk

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ignite/listmonk-mcp/internal/domain"
)

// GetLists lists mailing lists, optionally filtered by tag.
func (c *Client) GetLists(ctx context.Context, q domain.ListQuery) (domain.Page[domain.MailingList], error) {
	params := pageParams(q.PageQuery)
	if q.Tag != "" {
		params.Set("tag", q.Tag)
	}
	return get[domain.Page[domain.MailingList]](ctx, c, "/api/lists", params)
}

// GetList retrieves a single mailing list by ID.
func (c *Client) GetList(ctx context.Context, id int) (domain.MailingList, error) {
	return get[domain.MailingList](ctx, c, fmt.Sprintf("/api/lists/%d", id), nil)
}

// CreateList creates a mailing list.
func (c *Client) CreateList(ctx context.Context, req domain.CreateListRequest) (domain.MailingList, error) {
	return send[domain.MailingList](ctx, c, http.MethodPost, "/api/lists", req)
}

// UpdateList updates a mailing list.
func (c *Client) UpdateList(ctx context.Context, id int, req domain.UpdateListRequest) (domain.MailingList, error) {
	return send[domain.MailingList](ctx, c, http.MethodPut, fmt.Sprintf("/api/lists/%d", id), req)
}

// DeleteList removes a mailing list. The response body is not inspected.
func (c *Client) DeleteList(ctx context.Context, id int) error {
	_, err := c.doRequest(ctx, http.MethodDelete, fmt.Sprintf("/api/lists/%d", id), nil, nil)
	return err
}
