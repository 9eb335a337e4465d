// Package iconmcp exposes the icon registry as MCP tools.
package iconmcp

import (
	"context"
	"errors"
	"log"

	"github.com/louisbranch/msricons/icons"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverVersion = "1.0.0"

// Config defines startup inputs for the MCP server.
type Config struct {
	Name string
	// Registry defaults to icons.Default().
	Registry *icons.Registry
}

// NewServer registers the icon tools on a new MCP server.
func NewServer(cfg Config) (*mcp.Server, error) {
	if cfg.Name == "" {
		return nil, errors.New("server name is required")
	}
	registry := cfg.Registry
	if registry == nil {
		registry = icons.Default()
	}
	server := mcp.NewServer(&mcp.Implementation{Name: cfg.Name, Version: serverVersion}, nil)
	mcp.AddTool(server, ListIconsTool(), ListIconsHandler(registry))
	mcp.AddTool(server, RenderIconTool(), RenderIconHandler(registry))
	return server, nil
}

// Run serves the tools over stdio until the context is cancelled or the
// client disconnects.
func Run(ctx context.Context, cfg Config) error {
	return runWithTransport(ctx, cfg, &mcp.StdioTransport{})
}

func runWithTransport(ctx context.Context, cfg Config, transport mcp.Transport) error {
	server, err := NewServer(cfg)
	if err != nil {
		return err
	}
	log.Printf("mcp serving name=%s", cfg.Name)
	if err := server.Run(ctx, transport); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
