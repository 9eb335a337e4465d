// Package mcp parses MCP command flags and launches the tool server.
package mcp

import (
	"context"
	"flag"

	entrypoint "github.com/louisbranch/msricons/internal/platform/cmd"
	"github.com/louisbranch/msricons/internal/services/iconmcp"
)

// Config holds MCP command configuration.
type Config struct {
	Name string `env:"MCP_NAME" envDefault:"msricons"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.Name, "name", cfg.Name, "Name reported to MCP clients")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run serves the icon tools over stdio.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceMCP, func(ctx context.Context) error {
		return iconmcp.Run(ctx, iconmcp.Config{Name: cfg.Name})
	})
}
