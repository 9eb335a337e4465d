package icons

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

const defaultFill = "currentColor"

// Props are the parameters a Definition receives from the wrapper.
type Props struct {
	// FillColor tints the icon. Empty means the definition picks its own fallback.
	FillColor string
	// IsColored selects the intrinsic multi-color palette (true) or a single
	// tinted fill (false).
	IsColored bool
	// OnClick is JavaScript handler source rendered as the onclick attribute.
	OnClick string
	// Attrs are forwarded verbatim onto the rendered graphic.
	Attrs templ.Attributes
}

// Definition is a renderable icon identified by its registry name.
type Definition interface {
	Name() string
	Component(Props) templ.Component
}

// Layer is one filled path of an SVG icon. An empty Fill marks a layer that
// takes the caller's tint even in colored mode.
type Layer struct {
	D    string `yaml:"d"`
	Fill string `yaml:"fill"`
}

// SVG is a Definition drawn from static path data.
type SVG struct {
	ID      string  `yaml:"name"`
	Label   string  `yaml:"label"`
	ViewBox string  `yaml:"viewBox"`
	Layers  []Layer `yaml:"layers"`
}

// Name returns the registry key.
func (s SVG) Name() string {
	return s.ID
}

// Component renders the icon as an inline <svg> element. Attrs win over the
// built-in attributes of the same name, OnClick included.
func (s SVG) Component(p Props) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString("<svg")
		for _, a := range s.baseAttrs(p) {
			if hasAttr(p.Attrs, a[0]) {
				continue
			}
			b.WriteString(" ")
			b.WriteString(a[0])
			b.WriteString(`="`)
			b.WriteString(templ.EscapeString(a[1]))
			b.WriteString(`"`)
		}
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
		if len(p.Attrs) > 0 {
			if err := templ.RenderAttributes(ctx, w, p.Attrs); err != nil {
				return err
			}
		}
		b.Reset()
		b.WriteString(">")
		for _, layer := range s.Layers {
			b.WriteString(`<path d="`)
			b.WriteString(templ.EscapeString(layer.D))
			b.WriteString(`" fill="`)
			b.WriteString(templ.EscapeString(s.fill(layer, p)))
			b.WriteString(`"></path>`)
		}
		b.WriteString("</svg>")
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// baseAttrs lists the attributes every icon carries, in render order.
func (s SVG) baseAttrs(p Props) [][2]string {
	attrs := [][2]string{
		{"xmlns", "http://www.w3.org/2000/svg"},
		{"viewBox", s.ViewBox},
		{"width", "100%"},
		{"height", "100%"},
		{"data-icon", s.ID},
	}
	if p.OnClick != "" {
		attrs = append(attrs, [2]string{"onclick", p.OnClick})
	}
	return attrs
}

// hasAttr reports whether attrs sets key. HTML attribute names are case
// insensitive.
func hasAttr(attrs templ.Attributes, key string) bool {
	for k := range attrs {
		if strings.EqualFold(k, key) {
			return true
		}
	}
	return false
}

// fill picks the paint for a layer. Colored mode keeps intrinsic fills and
// only tints unpainted layers; tint mode paints every layer with FillColor.
// Both fall back to currentColor so the icon follows the surrounding text.
func (s SVG) fill(layer Layer, p Props) string {
	if p.IsColored && layer.Fill != "" {
		return layer.Fill
	}
	if p.FillColor != "" {
		return p.FillColor
	}
	return defaultFill
}
