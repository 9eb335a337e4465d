// Command iconls prints the icon registry to the terminal.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/louisbranch/msricons/icons"
	"github.com/louisbranch/msricons/internal/platform/config"
)

var (
	colorAccent = lipgloss.AdaptiveColor{Light: "#399ee6", Dark: "#59c2ff"}
	colorMuted  = lipgloss.AdaptiveColor{Light: "#828c99", Dark: "#6c7680"}

	titleStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	nameStyle  = lipgloss.NewStyle().Foreground(colorAccent)
	mutedStyle = lipgloss.NewStyle().Foreground(colorMuted)
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		config.Exitf("iconls: %v", err)
	}
}

func run(args []string, stdout io.Writer, stderr io.Writer) error {
	var plain bool
	var filter string
	flags := flag.NewFlagSet("iconls", flag.ContinueOnError)
	flags.BoolVar(&plain, "plain", false, "print names only, without styling")
	flags.StringVar(&filter, "filter", "", "only list names containing this substring (case-insensitive)")
	flags.SetOutput(stderr)
	if err := flags.Parse(args); err != nil {
		return err
	}

	entries := matching(icons.Catalog(), filter)
	if plain {
		for _, entry := range entries {
			fmt.Fprintln(stdout, entry.Name)
		}
		return nil
	}

	width := 0
	for _, entry := range entries {
		width = max(width, lipgloss.Width(entry.Name))
	}
	fmt.Fprintln(stdout, titleStyle.Render(fmt.Sprintf("%d icons", len(entries))))
	for _, entry := range entries {
		name := nameStyle.Width(width + 2).Render(entry.Name)
		detail := mutedStyle.Render(fmt.Sprintf("%s (%d layers)", entry.Label, entry.Layers))
		fmt.Fprintln(stdout, lipgloss.JoinHorizontal(lipgloss.Top, name, detail))
	}
	return nil
}

func matching(entries []icons.Entry, filter string) []icons.Entry {
	filter = strings.ToLower(strings.TrimSpace(filter))
	if filter == "" {
		return entries
	}
	out := make([]icons.Entry, 0, len(entries))
	for _, entry := range entries {
		if strings.Contains(strings.ToLower(entry.Name), filter) {
			out = append(out, entry)
		}
	}
	return out
}
