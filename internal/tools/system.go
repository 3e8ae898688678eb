package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ignite/listmonk-mcp/internal/domain"
	"github.com/ignite/listmonk-mcp/internal/normalize"
)

var txContentType = normalize.Enum{Field: "content_type", Allowed: domain.ContentTypeValues, Policy: normalize.Ignore}

func (h *Handlers) systemTools() []toolConfig {
	return []toolConfig{
		{
			tool:   newTool("get_health", "Check whether the Listmonk instance is healthy"),
			action: "getting health",
			handle: h.getHealth,
		},
		{
			tool:   newTool("get_dashboard_stats", "Get subscriber, list, campaign and message counts"),
			action: "getting dashboard stats",
			handle: h.getDashboardStats,
		},
		{
			tool: newTool("send_transactional_email",
				"Send a transactional message. Address the recipient by subscriber_email or subscriber_id, and the template by template_id or template_name.",
				mcp.WithString("subscriber_email", mcp.Description("Recipient email")),
				mcp.WithNumber("subscriber_id", mcp.Description("Recipient subscriber ID")),
				mcp.WithNumber("template_id", mcp.Description("Transactional template ID")),
				mcp.WithString("template_name", mcp.Description("Transactional template name")),
				mcp.WithObject("data", mcp.Description("Data made available to the template as .Tx.Data")),
				mcp.WithArray("headers", mcp.Description("Extra message headers, e.g. [{\"X-Tag\": \"a\"}]"),
					mcp.Items(map[string]any{"type": "object"})),
				mcp.WithString("messenger", mcp.Description("Messenger to send through (default: email)")),
				mcp.WithString("content_type", mcp.Description("Message format"), mcp.Enum(domain.ContentTypeValues...)),
			),
			action: "sending transactional email",
			handle: h.sendTransactional,
		},
		{
			tool:   newTool("get_media", "List uploaded media files", pagingArgs()...),
			action: "getting media",
			handle: h.getMedia,
		},
	}
}

func (h *Handlers) getHealth(ctx context.Context, _ normalize.Args) (any, error) {
	return h.api.GetHealth(ctx)
}

func (h *Handlers) getDashboardStats(ctx context.Context, _ normalize.Args) (any, error) {
	return h.api.GetDashboardCounts(ctx)
}

func (h *Handlers) sendTransactional(ctx context.Context, args normalize.Args) (any, error) {
	email, subscriberID := args.OptionalString("subscriber_email"), args.OptionalID("subscriber_id")
	if err := exactlyOne("subscriber_email", email != nil, "subscriber_id", subscriberID != nil); err != nil {
		return nil, err
	}
	templateName, templateID := args.OptionalString("template_name"), args.OptionalID("template_id")
	if err := exactlyOne("template_id", templateID != nil, "template_name", templateName != nil); err != nil {
		return nil, err
	}
	contentType, err := txContentType.Parse(args)
	if err != nil {
		return nil, err
	}

	req := domain.TransactionalMessageRequest{
		Data:        args.Object("data"),
		Headers:     args.Headers("headers"),
		Messenger:   args.StringOr("messenger", domain.DefaultMessenger),
		ContentType: domain.ContentType(contentType),
	}
	if email != nil {
		req.SubscriberEmail = *email
	} else {
		req.SubscriberID = *subscriberID
	}
	if templateID != nil {
		req.TemplateID = *templateID
	} else {
		req.TemplateName = *templateName
	}
	return h.api.SendTransactional(ctx, req)
}

func (h *Handlers) getMedia(ctx context.Context, args normalize.Args) (any, error) {
	return h.api.GetMedia(ctx, domain.PageQuery{
		Page:    args.Int("page", 1),
		PerPage: args.Int("per_page", 20),
	})
}

// exactlyOne requires one, and only one, of a pair of addressing fields.
func exactlyOne(a string, hasA bool, b string, hasB bool) error {
	switch {
	case hasA && hasB:
		return &normalize.Rejection{
			Kind:    normalize.Conflict,
			Fields:  []string{a, b},
			Message: "only one of " + a + " or " + b + " may be set",
		}
	case !hasA && !hasB:
		return &normalize.Rejection{
			Kind:    normalize.MissingRequired,
			Fields:  []string{a, b},
			Message: a + " or " + b + " is required",
		}
	}
	return nil
}
