// Package gallery parses gallery service flags and launches the service.
package gallery

import (
	"context"
	"flag"
	"fmt"

	entrypoint "github.com/louisbranch/msricons/internal/platform/cmd"
	"github.com/louisbranch/msricons/internal/services/gallery"
)

// Config holds gallery command configuration.
type Config struct {
	HTTPAddr string `env:"GALLERY_HTTP_ADDR" envDefault:"localhost:8095"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the icon gallery HTTP service.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceGallery, func(ctx context.Context) error {
		server, err := gallery.NewServer(gallery.Config{HTTPAddr: cfg.HTTPAddr})
		if err != nil {
			return fmt.Errorf("init gallery server: %w", err)
		}
		defer server.Close()

		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve gallery: %w", err)
		}
		return nil
	})
}
