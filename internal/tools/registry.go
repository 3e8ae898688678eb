package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/ignite/listmonk-mcp/internal/domain"
	"github.com/ignite/listmonk-mcp/internal/listmonk"
	"github.com/ignite/listmonk-mcp/internal/metrics"
	"github.com/ignite/listmonk-mcp/internal/normalize"
	"github.com/ignite/listmonk-mcp/internal/pkg/logger"
	"github.com/ignite/listmonk-mcp/internal/service/campaign"
)

// handlerFunc does the work of one tool. A string result is returned as-is;
// anything else is wrapped in {"data": ...}.
type handlerFunc func(ctx context.Context, args normalize.Args) (any, error)

// toolConfig binds a tool definition to its handler. action completes the
// failure text "Error <action>: <cause>".
type toolConfig struct {
	tool   mcp.Tool
	action string
	handle handlerFunc
}

// Handlers holds the dependencies shared by every tool.
type Handlers struct {
	api       API
	campaigns *campaign.Service
	metrics   *metrics.Collector
	newID     func() string
}

// NewHandlers creates the tool handlers. m may be nil.
func NewHandlers(api API, m *metrics.Collector) *Handlers {
	return &Handlers{
		api:       api,
		campaigns: campaign.NewService(api),
		metrics:   m,
		newID:     func() string { return uuid.New().String() },
	}
}

// Campaigns exposes the campaign service, e.g. to adjust its scheduler.
func (h *Handlers) Campaigns() *campaign.Service {
	return h.campaigns
}

func (h *Handlers) configs() []toolConfig {
	var all []toolConfig
	all = append(all, h.subscriberTools()...)
	all = append(all, h.listTools()...)
	all = append(all, h.campaignTools()...)
	all = append(all, h.templateTools()...)
	all = append(all, h.systemTools()...)
	return all
}

// Definitions returns every tool definition in registration order.
func (h *Handlers) Definitions() []mcp.Tool {
	configs := h.configs()
	out := make([]mcp.Tool, len(configs))
	for i, c := range configs {
		out[i] = c.tool
	}
	return out
}

// Handler returns the MCP handler for the named tool.
func (h *Handlers) Handler(name string) (server.ToolHandlerFunc, bool) {
	for _, c := range h.configs() {
		if c.tool.Name == name {
			return h.wrap(c), true
		}
	}
	return nil, false
}

// Register adds every tool to the MCP server.
func (h *Handlers) Register(s *server.MCPServer) {
	for _, c := range h.configs() {
		s.AddTool(c.tool, h.wrap(c))
		logger.Debug("registered tool", "name", c.tool.Name)
	}
}

// wrap turns a handlerFunc into an MCP handler. It tags the context with a
// request id, records the outcome and converts every failure, including a
// panic, into an error result.
func (h *Handlers) wrap(c toolConfig) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (result *mcp.CallToolResult, err error) {
		requestID := h.newID()
		ctx = listmonk.WithRequestID(ctx, requestID)
		start := time.Now()
		outcome := metrics.OutcomeSuccess

		defer func() {
			if r := recover(); r != nil {
				outcome = metrics.OutcomeFailed
				logger.Error("tool panicked", "tool", c.tool.Name, "request_id", requestID, "panic", fmt.Sprint(r))
				result, err = mcp.NewToolResultError(fmt.Sprintf("Error %s: internal error", c.action)), nil
			}
			h.metrics.ObserveTool(c.tool.Name, outcome, time.Since(start))
			logger.Info("tool invoked",
				"tool", c.tool.Name,
				"request_id", requestID,
				"duration_ms", time.Since(start).Milliseconds(),
				"outcome", outcome,
			)
		}()

		args := normalize.Args(req.GetArguments())
		value, callErr := c.handle(ctx, args)
		if callErr != nil {
			if rej, ok := normalize.AsRejection(callErr); ok {
				outcome = metrics.OutcomeRejected
				logger.Debug("tool arguments rejected", "tool", c.tool.Name, "request_id", requestID, "kind", string(rej.Kind))
				return mcp.NewToolResultError("Error: " + rej.Message), nil
			}
			outcome = metrics.OutcomeFailed
			logger.Warn("tool failed", "tool", c.tool.Name, "request_id", requestID, "error", callErr.Error())
			return mcp.NewToolResultError(fmt.Sprintf("Error %s: %v", c.action, callErr)), nil
		}

		return render(value)
	}
}

func render(value any) (*mcp.CallToolResult, error) {
	if text, ok := value.(string); ok {
		return mcp.NewToolResultText(text), nil
	}
	b, err := json.Marshal(domain.Envelope[any]{Data: value})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error encoding result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}

// Shared argument schemas.

func idArg(resource string) mcp.ToolOption {
	return mcp.WithNumber("id", mcp.Required(), mcp.Description(resource+" ID"))
}

func pagingArgs() []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithNumber("page", mcp.Description("Page number (default: 1)"), mcp.Min(1)),
		mcp.WithNumber("per_page", mcp.Description("Items per page (default: 20)"), mcp.Min(1), mcp.Max(100)),
	}
}

func intListArg(name, desc string, opts ...mcp.PropertyOption) mcp.ToolOption {
	opts = append(opts,
		mcp.Description(desc+" (array of integers, or a JSON-encoded array string)"),
		mcp.Items(map[string]any{"type": "integer"}),
	)
	return mcp.WithArray(name, opts...)
}

func stringListArg(name, desc string) mcp.ToolOption {
	return mcp.WithArray(name,
		mcp.Description(desc+" (array of strings, or a JSON-encoded array string)"),
		mcp.Items(map[string]any{"type": "string"}),
	)
}

func newTool(name, desc string, opts ...mcp.ToolOption) mcp.Tool {
	return mcp.NewTool(name, append([]mcp.ToolOption{mcp.WithDescription(desc)}, opts...)...)
}

func pageQuery(args normalize.Args) domain.PageQuery {
	return domain.PageQuery{
		Page:    args.Int("page", 1),
		PerPage: args.Int("per_page", 20),
		Query:   strings.TrimSpace(args.String("query")),
	}
}
