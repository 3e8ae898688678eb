package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ignite/listmonk-mcp/internal/domain"
	"github.com/ignite/listmonk-mcp/internal/normalize"
)

var (
	campaignStatusFilter = normalize.Enum{Field: "status", Allowed: domain.CampaignStatusValues, Policy: normalize.Ignore}
	campaignStatus       = normalize.Enum{Field: "status", Allowed: domain.CampaignStatusValues}
	campaignType         = normalize.Enum{Field: "type", Allowed: domain.CampaignTypeValues, Default: string(domain.CampaignRegular)}
	analyticsType        = normalize.Enum{Field: "type", Allowed: domain.AnalyticsTypeValues}

	// Unknown content types on create fall back to richtext; update rejects them.
	createContentType = normalize.Enum{
		Field:   "content_type",
		Allowed: domain.ContentTypeValues,
		Policy:  normalize.Fallback,
		Default: string(domain.ContentRichtext),
	}
	updateContentType = normalize.Enum{Field: "content_type", Allowed: domain.ContentTypeValues}
)

func (h *Handlers) campaignTools() []toolConfig {
	return []toolConfig{
		{
			tool: newTool("get_campaigns", "Retrieve campaigns from Listmonk",
				append(pagingArgs(),
					mcp.WithString("query", mcp.Description("Search by campaign name or subject")),
					mcp.WithString("status", mcp.Description("Campaign status filter"), mcp.Enum(domain.CampaignStatusValues...)),
				)...),
			action: "getting campaigns",
			handle: h.getCampaigns,
		},
		{
			tool:   newTool("get_campaign", "Get details of a specific campaign by ID", idArg("Campaign")),
			action: "getting campaign",
			handle: h.getCampaign,
		},
		{
			tool: newTool("create_campaign",
				"Create a new campaign. A status other than draft is applied with a separate transition after creation.",
				mcp.WithString("name", mcp.Required(), mcp.Description("Campaign name")),
				mcp.WithString("subject", mcp.Required(), mcp.Description("Email subject line")),
				intListArg("lists", "Target list IDs", mcp.Required()),
				mcp.WithString("status", mcp.Description("Initial status (default: draft)"), mcp.Enum(domain.CampaignStatusValues...)),
				mcp.WithString("body", mcp.Description("Campaign body")),
				mcp.WithString("from_email", mcp.Description("From address, e.g. 'Name <a@b.co>'")),
				mcp.WithString("content_type", mcp.Description("Body format (default: richtext)"), mcp.Enum(domain.ContentTypeValues...)),
				mcp.WithString("type", mcp.Description("Campaign type (default: regular)"), mcp.Enum(domain.CampaignTypeValues...)),
				mcp.WithString("messenger", mcp.Description("Messenger to send through (default: email)")),
				stringListArg("tags", "Campaign tags"),
				mcp.WithNumber("template_id", mcp.Description("Template ID (default template when omitted)")),
				mcp.WithString("send_at", mcp.Description("Send time in local time: 'HH:MM', 'YYYY-MM-DD HH:MM:SS' or 'YYYY-MM-DD'; converted to UTC")),
			),
			action: "creating campaign",
			handle: h.createCampaign,
		},
		{
			tool: newTool("update_campaign",
				"Update an existing campaign. A supplied status is applied with a separate transition after the update.",
				idArg("Campaign"),
				mcp.WithString("name", mcp.Description("New name")),
				mcp.WithString("subject", mcp.Description("New subject")),
				intListArg("lists", "Replacement list IDs"),
				mcp.WithString("status", mcp.Description("New status"), mcp.Enum(domain.CampaignStatusValues...)),
				mcp.WithString("body", mcp.Description("New body")),
				mcp.WithString("alt_body", mcp.Description("New plain-text alternative body")),
				mcp.WithString("from_email", mcp.Description("New from address")),
				mcp.WithString("content_type", mcp.Description("New body format"), mcp.Enum(domain.ContentTypeValues...)),
				stringListArg("tags", "Replacement tags"),
				mcp.WithNumber("template_id", mcp.Description("New template ID")),
				mcp.WithString("send_at", mcp.Description("New send time in local time; converted to UTC")),
			),
			action: "updating campaign",
			handle: h.updateCampaign,
		},
		{
			tool: newTool("update_campaign_status", "Update the status of an existing campaign",
				idArg("Campaign"),
				mcp.WithString("status", mcp.Required(), mcp.Description("New campaign status"), mcp.Enum(domain.CampaignStatusValues...)),
			),
			action: "updating campaign status",
			handle: h.updateCampaignStatus,
		},
		{
			tool:   newTool("delete_campaign", "Delete a campaign by ID", idArg("Campaign")),
			action: "deleting campaign",
			handle: h.deleteCampaign,
		},
		{
			tool: newTool("get_campaign_analytics", "Get view, click, bounce or link analytics for a campaign",
				idArg("Campaign"),
				mcp.WithString("type", mcp.Required(), mcp.Description("Analytics type"), mcp.Enum(domain.AnalyticsTypeValues...)),
				mcp.WithString("from", mcp.Description("Start date (YYYY-MM-DD)")),
				mcp.WithString("to", mcp.Description("End date (YYYY-MM-DD)")),
			),
			action: "getting campaign analytics",
			handle: h.getCampaignAnalytics,
		},
	}
}

func (h *Handlers) getCampaigns(ctx context.Context, args normalize.Args) (any, error) {
	status, err := campaignStatusFilter.Parse(args)
	if err != nil {
		return nil, err
	}
	return h.api.GetCampaigns(ctx, domain.CampaignQuery{
		PageQuery: pageQuery(args),
		Status:    domain.CampaignStatus(status),
	})
}

func (h *Handlers) getCampaign(ctx context.Context, args normalize.Args) (any, error) {
	if err := args.RequireParams("id"); err != nil {
		return nil, err
	}
	return h.api.GetCampaign(ctx, args.ID("id"))
}

func (h *Handlers) createCampaign(ctx context.Context, args normalize.Args) (any, error) {
	if err := args.Require("name", "subject", "lists"); err != nil {
		return nil, err
	}
	lists, err := args.RequiredIntList("lists")
	if err != nil {
		return nil, err
	}
	status, err := campaignStatus.Parse(args)
	if err != nil {
		return nil, err
	}
	contentType, err := createContentType.Parse(args)
	if err != nil {
		return nil, err
	}
	typ, err := campaignType.Parse(args)
	if err != nil {
		return nil, err
	}

	return h.campaigns.Create(ctx, domain.CreateCampaignRequest{
		Name:        args.String("name"),
		Subject:     args.String("subject"),
		Lists:       lists,
		Status:      domain.CampaignStatus(status),
		Body:        args.OptionalString("body"),
		FromEmail:   args.OptionalString("from_email"),
		ContentType: domain.ContentType(contentType),
		Messenger:   args.StringOr("messenger", domain.DefaultMessenger),
		Type:        domain.CampaignType(typ),
		Tags:        args.OptionalStringList("tags"),
		TemplateID:  args.OptionalID("template_id"),
		SendAt:      args.OptionalString("send_at"),
	})
}

func (h *Handlers) updateCampaign(ctx context.Context, args normalize.Args) (any, error) {
	if err := args.RequireParams("id"); err != nil {
		return nil, err
	}
	status, err := campaignStatus.Parse(args)
	if err != nil {
		return nil, err
	}
	contentType, err := updateContentType.Parse(args)
	if err != nil {
		return nil, err
	}

	return h.campaigns.Update(ctx, args.ID("id"), domain.UpdateCampaignRequest{
		Name:        args.OptionalString("name"),
		Subject:     args.OptionalString("subject"),
		Lists:       args.OptionalIntList("lists"),
		Status:      domain.CampaignStatus(status),
		Body:        args.OptionalString("body"),
		AltBody:     args.OptionalString("alt_body"),
		FromEmail:   args.OptionalString("from_email"),
		ContentType: domain.ContentType(contentType),
		Tags:        args.OptionalStringList("tags"),
		TemplateID:  args.OptionalID("template_id"),
		SendAt:      args.OptionalString("send_at"),
	})
}

func (h *Handlers) updateCampaignStatus(ctx context.Context, args normalize.Args) (any, error) {
	if err := args.RequireParams("id", "status"); err != nil {
		return nil, err
	}
	status, err := campaignStatus.Parse(args)
	if err != nil {
		return nil, err
	}
	return h.campaigns.Transition(ctx, args.ID("id"), domain.CampaignStatus(status))
}

func (h *Handlers) deleteCampaign(ctx context.Context, args normalize.Args) (any, error) {
	if err := args.RequireParams("id"); err != nil {
		return nil, err
	}
	id := args.ID("id")
	if err := h.api.DeleteCampaign(ctx, id); err != nil {
		return nil, err
	}
	return fmt.Sprintf("Campaign %d deleted successfully", id), nil
}

func (h *Handlers) getCampaignAnalytics(ctx context.Context, args normalize.Args) (any, error) {
	if err := args.RequireParams("id", "type"); err != nil {
		return nil, err
	}
	typ, err := analyticsType.Parse(args)
	if err != nil {
		return nil, err
	}
	return h.api.GetCampaignAnalytics(ctx, domain.AnalyticsQuery{
		CampaignID: args.ID("id"),
		Type:       domain.AnalyticsType(typ),
		From:       args.String("from"),
		To:         args.String("to"),
	})
}
