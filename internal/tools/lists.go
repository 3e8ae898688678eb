package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ignite/listmonk-mcp/internal/domain"
	"github.com/ignite/listmonk-mcp/internal/normalize"
)

var (
	listType  = normalize.Enum{Field: "type", Allowed: domain.ListTypeValues}
	listOptin = normalize.Enum{Field: "optin", Allowed: domain.OptinTypeValues}
)

func (h *Handlers) listTools() []toolConfig {
	return []toolConfig{
		{
			tool: newTool("get_lists", "Retrieve mailing lists from Listmonk",
				append(pagingArgs(),
					mcp.WithString("query", mcp.Description("Search by list name")),
					mcp.WithString("tag", mcp.Description("Only return lists carrying this tag")),
				)...),
			action: "getting lists",
			handle: h.getLists,
		},
		{
			tool:   newTool("get_list", "Get details of a specific mailing list by ID", idArg("List")),
			action: "getting list",
			handle: h.getList,
		},
		{
			tool: newTool("create_list", "Create a new mailing list",
				mcp.WithString("name", mcp.Required(), mcp.Description("List name")),
				mcp.WithString("type", mcp.Required(), mcp.Description("List visibility"), mcp.Enum(domain.ListTypeValues...)),
				mcp.WithString("optin", mcp.Required(), mcp.Description("Opt-in mode"), mcp.Enum(domain.OptinTypeValues...)),
				stringListArg("tags", "List tags"),
				mcp.WithString("description", mcp.Description("List description")),
			),
			action: "creating list",
			handle: h.createList,
		},
		{
			tool: newTool("update_list", "Update an existing mailing list",
				idArg("List"),
				mcp.WithString("name", mcp.Description("New list name")),
				mcp.WithString("type", mcp.Description("New visibility"), mcp.Enum(domain.ListTypeValues...)),
				mcp.WithString("optin", mcp.Description("New opt-in mode"), mcp.Enum(domain.OptinTypeValues...)),
				stringListArg("tags", "Replacement tags"),
				mcp.WithString("description", mcp.Description("New description")),
			),
			action: "updating list",
			handle: h.updateList,
		},
		{
			tool:   newTool("delete_list", "Delete a mailing list by ID", idArg("List")),
			action: "deleting list",
			handle: h.deleteList,
		},
	}
}

func (h *Handlers) getLists(ctx context.Context, args normalize.Args) (any, error) {
	return h.api.GetLists(ctx, domain.ListQuery{
		PageQuery: pageQuery(args),
		Tag:       strings.TrimSpace(args.String("tag")),
	})
}

func (h *Handlers) getList(ctx context.Context, args normalize.Args) (any, error) {
	if err := args.RequireParams("id"); err != nil {
		return nil, err
	}
	return h.api.GetList(ctx, args.ID("id"))
}

func (h *Handlers) createList(ctx context.Context, args normalize.Args) (any, error) {
	if err := args.Require("name", "type", "optin"); err != nil {
		return nil, err
	}
	typ, err := listType.Parse(args)
	if err != nil {
		return nil, err
	}
	optin, err := listOptin.Parse(args)
	if err != nil {
		return nil, err
	}

	return h.api.CreateList(ctx, domain.CreateListRequest{
		Name:        args.String("name"),
		Type:        domain.ListType(typ),
		Optin:       domain.OptinType(optin),
		Tags:        args.OptionalStringList("tags"),
		Description: args.OptionalString("description"),
	})
}

func (h *Handlers) updateList(ctx context.Context, args normalize.Args) (any, error) {
	if err := args.RequireParams("id"); err != nil {
		return nil, err
	}
	typ, err := listType.Parse(args)
	if err != nil {
		return nil, err
	}
	optin, err := listOptin.Parse(args)
	if err != nil {
		return nil, err
	}

	return h.api.UpdateList(ctx, args.ID("id"), domain.UpdateListRequest{
		Name:        args.OptionalString("name"),
		Type:        domain.ListType(typ),
		Optin:       domain.OptinType(optin),
		Tags:        args.OptionalStringList("tags"),
		Description: args.OptionalString("description"),
	})
}

func (h *Handlers) deleteList(ctx context.Context, args normalize.Args) (any, error) {
	if err := args.RequireParams("id"); err != nil {
		return nil, err
	}
	id := args.ID("id")
	if err := h.api.DeleteList(ctx, id); err != nil {
		return nil, err
	}
	return fmt.Sprintf("List %d deleted successfully", id), nil
}
