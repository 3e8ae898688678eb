package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ignite/listmonk-mcp/internal/domain"
	"github.com/ignite/listmonk-mcp/internal/normalize"
)

var templateType = normalize.Enum{Field: "type", Allowed: domain.TemplateTypeValues}

func (h *Handlers) templateTools() []toolConfig {
	return []toolConfig{
		{
			tool:   newTool("get_templates", "Retrieve all templates from Listmonk"),
			action: "getting templates",
			handle: h.getTemplates,
		},
		{
			tool:   newTool("get_template", "Get details of a specific template by ID", idArg("Template")),
			action: "getting template",
			handle: h.getTemplate,
		},
		{
			tool:   newTool("get_template_preview", "Render a template and return its HTML", idArg("Template")),
			action: "getting template preview",
			handle: h.getTemplatePreview,
		},
		{
			tool: newTool("create_template", "Create a new template",
				mcp.WithString("name", mcp.Required(), mcp.Description("Template name")),
				mcp.WithString("type", mcp.Required(), mcp.Description("Template type"), mcp.Enum(domain.TemplateTypeValues...)),
				mcp.WithString("body", mcp.Required(), mcp.Description("Template body; campaign templates must contain {{ template \"content\" . }}")),
				mcp.WithString("subject", mcp.Description("Subject line, tx templates only")),
			),
			action: "creating template",
			handle: h.createTemplate,
		},
		{
			tool: newTool("update_template", "Update an existing template",
				idArg("Template"),
				mcp.WithString("name", mcp.Description("New name")),
				mcp.WithString("type", mcp.Description("New type"), mcp.Enum(domain.TemplateTypeValues...)),
				mcp.WithString("body", mcp.Description("New body")),
				mcp.WithString("subject", mcp.Description("New subject, tx templates only")),
			),
			action: "updating template",
			handle: h.updateTemplate,
		},
		{
			tool:   newTool("set_default_template", "Make a template the default for new campaigns", idArg("Template")),
			action: "setting default template",
			handle: h.setDefaultTemplate,
		},
		{
			tool:   newTool("delete_template", "Delete a template by ID", idArg("Template")),
			action: "deleting template",
			handle: h.deleteTemplate,
		},
	}
}

func (h *Handlers) getTemplates(ctx context.Context, _ normalize.Args) (any, error) {
	return h.api.GetTemplates(ctx)
}

func (h *Handlers) getTemplate(ctx context.Context, args normalize.Args) (any, error) {
	if err := args.RequireParams("id"); err != nil {
		return nil, err
	}
	return h.api.GetTemplate(ctx, args.ID("id"))
}

func (h *Handlers) getTemplatePreview(ctx context.Context, args normalize.Args) (any, error) {
	if err := args.RequireParams("id"); err != nil {
		return nil, err
	}
	return h.api.GetTemplatePreview(ctx, args.ID("id"))
}

func (h *Handlers) createTemplate(ctx context.Context, args normalize.Args) (any, error) {
	if err := args.Require("name", "type", "body"); err != nil {
		return nil, err
	}
	typ, err := templateType.Parse(args)
	if err != nil {
		return nil, err
	}
	return h.api.CreateTemplate(ctx, domain.CreateTemplateRequest{
		Name:    args.String("name"),
		Type:    domain.TemplateType(typ),
		Body:    args.String("body"),
		Subject: args.OptionalString("subject"),
	})
}

func (h *Handlers) updateTemplate(ctx context.Context, args normalize.Args) (any, error) {
	if err := args.RequireParams("id"); err != nil {
		return nil, err
	}
	typ, err := templateType.Parse(args)
	if err != nil {
		return nil, err
	}
	return h.api.UpdateTemplate(ctx, args.ID("id"), domain.UpdateTemplateRequest{
		Name:    args.OptionalString("name"),
		Type:    domain.TemplateType(typ),
		Body:    args.OptionalString("body"),
		Subject: args.OptionalString("subject"),
	})
}

func (h *Handlers) setDefaultTemplate(ctx context.Context, args normalize.Args) (any, error) {
	if err := args.RequireParams("id"); err != nil {
		return nil, err
	}
	return h.api.SetDefaultTemplate(ctx, args.ID("id"))
}

func (h *Handlers) deleteTemplate(ctx context.Context, args normalize.Args) (any, error) {
	if err := args.RequireParams("id"); err != nil {
		return nil, err
	}
	id := args.ID("id")
	if err := h.api.DeleteTemplate(ctx, id); err != nil {
		return nil, err
	}
	return fmt.Sprintf("Template %d deleted successfully", id), nil
}
