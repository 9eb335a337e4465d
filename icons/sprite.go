package icons

import (
	"strings"

	"github.com/a-h/templ"
)

const symbolPrefix = "hicon-"

// SymbolID returns the sprite symbol ID for an icon name.
func SymbolID(name string) string {
	return symbolPrefix + name
}

// Sprite returns SVG sprite markup with one <symbol> per registered icon,
// painted in colored mode.
func (r *Registry) Sprite() string {
	var b strings.Builder
	b.WriteString(`<svg xmlns="http://www.w3.org/2000/svg" style="display:none">`)
	for _, name := range r.Names() {
		def, _ := r.Lookup(name)
		svg, ok := def.(SVG)
		if !ok {
			continue
		}
		b.WriteString(`<symbol id="`)
		b.WriteString(templ.EscapeString(SymbolID(name)))
		b.WriteString(`" viewBox="`)
		b.WriteString(templ.EscapeString(svg.ViewBox))
		b.WriteString(`">`)
		for _, layer := range svg.Layers {
			b.WriteString(`<path d="`)
			b.WriteString(templ.EscapeString(layer.D))
			b.WriteString(`" fill="`)
			b.WriteString(templ.EscapeString(svg.fill(layer, Props{IsColored: true})))
			b.WriteString(`"></path>`)
		}
		b.WriteString(`</symbol>`)
	}
	b.WriteString(`</svg>`)
	return b.String()
}

// Sprite returns the default registry sprite.
func Sprite() string {
	return Default().Sprite()
}
