package iconmcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/louisbranch/msricons/icons"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ListIconsInput takes no arguments.
type ListIconsInput struct{}

// ListIconsResult lists registered icon names in registry order.
type ListIconsResult struct {
	Names []string `json:"names"`
}

// RenderIconInput mirrors icons.Request for tool callers.
type RenderIconInput struct {
	Name      string   `json:"name" jsonschema:"registered icon name, e.g. SvgFacebook"`
	Size      *float64 `json:"size,omitempty" jsonschema:"edge length in pixels, defaults to 24"`
	Color     string   `json:"color,omitempty" jsonschema:"fill color"`
	IsColored *bool    `json:"is_colored,omitempty" jsonschema:"use intrinsic colors, defaults to true"`
	Class     string   `json:"class,omitempty" jsonschema:"extra CSS classes for the container"`
}

// RenderIconResult carries the rendered markup. Found is false and Markup
// empty when the name is not registered.
type RenderIconResult struct {
	Found  bool   `json:"found"`
	Markup string `json:"markup"`
}

// ListIconsTool defines the MCP tool schema for listing icons.
func ListIconsTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "list_icons",
		Description: "Lists every registered icon name",
	}
}

// RenderIconTool defines the MCP tool schema for rendering one icon.
func RenderIconTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "render_icon",
		Description: "Renders an icon as HTML markup",
	}
}

// ListIconsHandler returns the registry names.
func ListIconsHandler(registry *icons.Registry) mcp.ToolHandlerFor[ListIconsInput, ListIconsResult] {
	return func(_ context.Context, _ *mcp.CallToolRequest, _ ListIconsInput) (*mcp.CallToolResult, ListIconsResult, error) {
		return nil, ListIconsResult{Names: registry.Names()}, nil
	}
}

// RenderIconHandler renders the requested icon.
func RenderIconHandler(registry *icons.Registry) mcp.ToolHandlerFor[RenderIconInput, RenderIconResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input RenderIconInput) (*mcp.CallToolResult, RenderIconResult, error) {
		node, ok := registry.Resolve(icons.Request{
			Name:      input.Name,
			Size:      input.Size,
			Color:     input.Color,
			IsColored: input.IsColored,
			Class:     input.Class,
		})
		if !ok {
			return nil, RenderIconResult{}, nil
		}
		var b strings.Builder
		if err := node.Render(ctx, &b); err != nil {
			return nil, RenderIconResult{}, fmt.Errorf("render %s: %w", input.Name, err)
		}
		return nil, RenderIconResult{Found: true, Markup: b.String()}, nil
	}
}
