package listmonk

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/ignite/listmonk-mcp/internal/domain"
)

// GetTemplates retrieves all templates. The endpoint is not paginated.
func (c *Client) GetTemplates(ctx context.Context) ([]domain.Template, error) {
	return get[[]domain.Template](ctx, c, "/api/templates", nil)
}

// GetTemplate retrieves a single template by ID.
func (c *Client) GetTemplate(ctx context.Context, id int) (domain.Template, error) {
	return get[domain.Template](ctx, c, fmt.Sprintf("/api/templates/%d", id), nil)
}

// GetTemplatePreview returns the rendered HTML as-is; the preview endpoint
// does not use the JSON envelope.
func (c *Client) GetTemplatePreview(ctx context.Context, id int) (string, error) {
	body, err := c.doRequest(ctx, http.MethodGet, fmt.Sprintf("/api/templates/%d/preview", id), nil, nil)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// CreateTemplate creates a template.
func (c *Client) CreateTemplate(ctx context.Context, req domain.CreateTemplateRequest) (domain.Template, error) {
	return send[domain.Template](ctx, c, http.MethodPost, "/api/templates", req)
}

// UpdateTemplate updates a template.
func (c *Client) UpdateTemplate(ctx context.Context, id int, req domain.UpdateTemplateRequest) (domain.Template, error) {
	return send[domain.Template](ctx, c, http.MethodPut, fmt.Sprintf("/api/templates/%d", id), req)
}

// SetDefaultTemplate marks a template as the default. The payload shape
// differs between listmonk versions so it is returned undecoded.
func (c *Client) SetDefaultTemplate(ctx context.Context, id int) (json.RawMessage, error) {
	return send[json.RawMessage](ctx, c, http.MethodPut, fmt.Sprintf("/api/templates/%d/default", id), nil)
}

// DeleteTemplate removes a template. listmonk refuses to delete the default.
func (c *Client) DeleteTemplate(ctx context.Context, id int) error {
	_, err := c.doRequest(ctx, http.MethodDelete, fmt.Sprintf("/api/templates/%d", id), nil, nil)
	return err
}
