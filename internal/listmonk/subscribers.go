package listmonk

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/ignite/listmonk-mcp/internal/domain"
)

// GetSubscribers lists subscribers, optionally filtered by list and status.
func (c *Client) GetSubscribers(ctx context.Context, q domain.SubscriberQuery) (domain.Page[domain.Subscriber], error) {
	params := pageParams(q.PageQuery)
	if q.ListID != nil {
		params.Set("list_id", strconv.Itoa(*q.ListID))
	}
	if q.Status != "" {
		params.Set("status", string(q.Status))
	}
	return get[domain.Page[domain.Subscriber]](ctx, c, "/api/subscribers", params)
}

// GetSubscriber retrieves a single subscriber by ID.
func (c *Client) GetSubscriber(ctx context.Context, id int) (domain.Subscriber, error) {
	return get[domain.Subscriber](ctx, c, fmt.Sprintf("/api/subscribers/%d", id), nil)
}

// CreateSubscriber creates a subscriber and returns the stored record.
func (c *Client) CreateSubscriber(ctx context.Context, req domain.CreateSubscriberRequest) (domain.Subscriber, error) {
	return send[domain.Subscriber](ctx, c, http.MethodPost, "/api/subscribers", req)
}

// UpdateSubscriber replaces the given subscriber fields.
func (c *Client) UpdateSubscriber(ctx context.Context, id int, req domain.UpdateSubscriberRequest) (domain.Subscriber, error) {
	return send[domain.Subscriber](ctx, c, http.MethodPut, fmt.Sprintf("/api/subscribers/%d", id), req)
}

// DeleteSubscriber removes a subscriber. The response body is not inspected.
func (c *Client) DeleteSubscriber(ctx context.Context, id int) error {
	_, err := c.doRequest(ctx, http.MethodDelete, fmt.Sprintf("/api/subscribers/%d", id), nil, nil)
	return err
}
