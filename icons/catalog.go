package icons

import (
	"strconv"
	"strings"
)

// Entry describes a registered icon for listings.
type Entry struct {
	Name   string
	Label  string
	Layers int
}

// Catalog returns one entry per registered icon in registry order.
func (r *Registry) Catalog() []Entry {
	names := r.Names()
	result := make([]Entry, 0, len(names))
	for _, name := range names {
		def, _ := r.Lookup(name)
		entry := Entry{Name: name, Label: name}
		if svg, ok := def.(SVG); ok {
			if svg.Label != "" {
				entry.Label = svg.Label
			}
			entry.Layers = len(svg.Layers)
		}
		result = append(result, entry)
	}
	return result
}

// CatalogMarkdown renders the catalog as a markdown table.
func (r *Registry) CatalogMarkdown() string {
	var builder strings.Builder
	builder.WriteString("# Icon Catalog\n\n")
	builder.WriteString("Generated by `go generate ./icons`.\n\n")
	builder.WriteString("| Name | Label | Layers |\n")
	builder.WriteString("| --- | --- | --- |\n")
	for _, entry := range r.Catalog() {
		builder.WriteString("| ")
		builder.WriteString(entry.Name)
		builder.WriteString(" | ")
		builder.WriteString(entry.Label)
		builder.WriteString(" | ")
		builder.WriteString(strconv.Itoa(entry.Layers))
		builder.WriteString(" |\n")
	}
	return builder.String()
}

// Catalog lists the default registry.
func Catalog() []Entry {
	return Default().Catalog()
}

// CatalogMarkdown renders the default registry catalog.
func CatalogMarkdown() string {
	return Default().CatalogMarkdown()
}
