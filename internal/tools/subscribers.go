package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ignite/listmonk-mcp/internal/domain"
	"github.com/ignite/listmonk-mcp/internal/normalize"
)

var (
	subscriberStatusFilter = normalize.Enum{Field: "status", Allowed: domain.SubscriberStatusValues, Policy: normalize.Ignore}
	subscriberStatus       = normalize.Enum{Field: "status", Allowed: domain.SubscriberStatusValues}
)

func (h *Handlers) subscriberTools() []toolConfig {
	return []toolConfig{
		{
			tool: newTool("get_subscribers", "Retrieve subscribers from Listmonk with optional filtering",
				append(pagingArgs(),
					mcp.WithString("query", mcp.Description("SQL expression to filter subscribers")),
					mcp.WithNumber("list_id", mcp.Description("Only return subscribers of this list")),
					mcp.WithString("status", mcp.Description("Subscriber status filter"), mcp.Enum(domain.SubscriberStatusValues...)),
				)...),
			action: "getting subscribers",
			handle: h.getSubscribers,
		},
		{
			tool:   newTool("get_subscriber", "Get details of a specific subscriber by ID", idArg("Subscriber")),
			action: "getting subscriber",
			handle: h.getSubscriber,
		},
		{
			tool: newTool("create_subscriber", "Create a new subscriber in Listmonk",
				mcp.WithString("email", mcp.Required(), mcp.Description("Subscriber email address")),
				mcp.WithString("name", mcp.Required(), mcp.Description("Subscriber name")),
				mcp.WithString("status", mcp.Required(), mcp.Description("Subscriber status"), mcp.Enum(domain.SubscriberStatusValues...)),
				intListArg("lists", "List IDs to subscribe to"),
				mcp.WithObject("attribs", mcp.Description("Custom subscriber attributes")),
				mcp.WithBoolean("preconfirm_subscriptions", mcp.Description("Skip double opt-in confirmation (default: false)")),
			),
			action: "creating subscriber",
			handle: h.createSubscriber,
		},
		{
			tool: newTool("update_subscriber", "Update an existing subscriber",
				idArg("Subscriber"),
				mcp.WithString("email", mcp.Description("New email address")),
				mcp.WithString("name", mcp.Description("New name")),
				mcp.WithString("status", mcp.Description("New status"), mcp.Enum(domain.SubscriberStatusValues...)),
				intListArg("lists", "Replacement list IDs"),
				mcp.WithObject("attribs", mcp.Description("Replacement attributes")),
			),
			action: "updating subscriber",
			handle: h.updateSubscriber,
		},
		{
			tool:   newTool("delete_subscriber", "Delete a subscriber by ID", idArg("Subscriber")),
			action: "deleting subscriber",
			handle: h.deleteSubscriber,
		},
	}
}

func (h *Handlers) getSubscribers(ctx context.Context, args normalize.Args) (any, error) {
	status, err := subscriberStatusFilter.Parse(args)
	if err != nil {
		return nil, err
	}
	return h.api.GetSubscribers(ctx, domain.SubscriberQuery{
		PageQuery: pageQuery(args),
		ListID:    args.OptionalID("list_id"),
		Status:    domain.SubscriberStatus(status),
	})
}

func (h *Handlers) getSubscriber(ctx context.Context, args normalize.Args) (any, error) {
	if err := args.RequireParams("id"); err != nil {
		return nil, err
	}
	return h.api.GetSubscriber(ctx, args.ID("id"))
}

func (h *Handlers) createSubscriber(ctx context.Context, args normalize.Args) (any, error) {
	if err := args.Require("email", "name", "status"); err != nil {
		return nil, err
	}
	status, err := subscriberStatus.Parse(args)
	if err != nil {
		return nil, err
	}
	preconfirm := args.Bool("preconfirm_subscriptions", false)

	return h.api.CreateSubscriber(ctx, domain.CreateSubscriberRequest{
		Email:                   args.String("email"),
		Name:                    args.String("name"),
		Status:                  domain.SubscriberStatus(status),
		Lists:                   args.OptionalIntList("lists"),
		Attribs:                 args.Object("attribs"),
		PreconfirmSubscriptions: &preconfirm,
	})
}

func (h *Handlers) updateSubscriber(ctx context.Context, args normalize.Args) (any, error) {
	if err := args.RequireParams("id"); err != nil {
		return nil, err
	}
	status, err := subscriberStatus.Parse(args)
	if err != nil {
		return nil, err
	}

	return h.api.UpdateSubscriber(ctx, args.ID("id"), domain.UpdateSubscriberRequest{
		Email:   args.OptionalString("email"),
		Name:    args.OptionalString("name"),
		Status:  domain.SubscriberStatus(status),
		Lists:   args.OptionalIntList("lists"),
		Attribs: args.Object("attribs"),
	})
}

func (h *Handlers) deleteSubscriber(ctx context.Context, args normalize.Args) (any, error) {
	if err := args.RequireParams("id"); err != nil {
		return nil, err
	}
	id := args.ID("id")
	if err := h.api.DeleteSubscriber(ctx, id); err != nil {
		return nil, err
	}
	return fmt.Sprintf("Subscriber %d deleted successfully", id), nil
}
