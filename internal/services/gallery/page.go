package gallery

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"github.com/louisbranch/msricons/icons"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const previewSize = 48

// pageData is everything the gallery page needs to render.
type pageData struct {
	Lang     language.Tag
	Printer  *message.Printer
	Registry *icons.Registry
}

func galleryPage(data pageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		entries := data.Registry.Catalog()

		var head strings.Builder
		head.WriteString(`<!DOCTYPE html><html lang="`)
		head.WriteString(templ.EscapeString(data.Lang.String()))
		head.WriteString(`"><head><meta charset="utf-8"><title>`)
		head.WriteString(templ.EscapeString(data.Printer.Sprintf("gallery.title")))
		head.WriteString(`</title><link rel="stylesheet" href="/static/icon.css"></head><body><h1>`)
		head.WriteString(templ.EscapeString(data.Printer.Sprintf("gallery.title")))
		head.WriteString(`</h1><p class="gallery-count">`)
		head.WriteString(templ.EscapeString(data.Printer.Sprintf("gallery.count", len(entries))))
		head.WriteString(`</p><p class="gallery-hint">`)
		head.WriteString(templ.EscapeString(data.Printer.Sprintf("gallery.copy_hint")))
		head.WriteString(`</p><ul class="gallery-grid">`)
		if _, err := io.WriteString(w, head.String()); err != nil {
			return err
		}

		for _, entry := range entries {
			if err := galleryItem(data.Registry, entry).Render(ctx, w); err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, `</ul></body></html>`)
		return err
	})
}

func galleryItem(registry *icons.Registry, entry icons.Entry) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<li data-name="`+templ.EscapeString(entry.Name)+`">`); err != nil {
			return err
		}
		icon := registry.Icon(icons.Request{
			Name:    entry.Name,
			Size:    icons.Sized(previewSize),
			Class:   "gallery-icon",
			OnClick: "navigator.clipboard.writeText(" + strconv.Quote(entry.Name) + ")",
			Attrs:   templ.Attributes{"role": "img", "aria-label": entry.Label},
		})
		if err := icon.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `<span class="gallery-label">`+templ.EscapeString(entry.Label)+`</span></li>`)
		return err
	})
}
