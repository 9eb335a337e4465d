package icons

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

const (
	// BaseClass is carried by every icon container.
	BaseClass = "hicon"
	// DefaultSize is the edge length used when Request.Size is nil.
	DefaultSize = 24
)

// Request holds the inputs of a single icon render.
type Request struct {
	Name string
	// Size is applied to both width and height. Nil means DefaultSize. See Sized.
	Size  *float64
	Color string
	// IsColored defaults to true when nil. See Colored.
	IsColored *bool
	OnClick   string
	Class     string
	// Style is overlaid on the computed size, so callers can override width
	// and height.
	Style Style
	// Attrs are forwarded to the icon definition untouched.
	Attrs templ.Attributes
}

// Sized returns a pointer suitable for Request.Size.
func Sized(v float64) *float64 {
	return &v
}

// Colored returns a pointer suitable for Request.IsColored.
func Colored(v bool) *bool {
	return &v
}

// Node is a resolved icon: the container it renders in and the definition
// inside it.
type Node struct {
	Class      string
	Style      Style
	Definition Definition
	Props      Props
}

// Render writes the container and the icon. A node without a definition
// renders nothing.
func (n Node) Render(ctx context.Context, w io.Writer) error {
	if n.Definition == nil {
		return nil
	}
	var b strings.Builder
	b.WriteString(`<span class="`)
	b.WriteString(templ.EscapeString(n.Class))
	b.WriteString(`" style="`)
	b.WriteString(templ.EscapeString(n.Style.String()))
	b.WriteString(`">`)
	if _, err := io.WriteString(w, b.String()); err != nil {
		return err
	}
	if err := n.Definition.Component(n.Props).Render(ctx, w); err != nil {
		return err
	}
	_, err := io.WriteString(w, "</span>")
	return err
}

// Resolve computes the node for req against the registry. It reports false
// when the name is not registered.
func (r *Registry) Resolve(req Request) (Node, bool) {
	def, ok := r.Lookup(req.Name)
	if !ok {
		return Node{}, false
	}

	size := float64(DefaultSize)
	if req.Size != nil {
		size = *req.Size
	}
	isColored := true
	if req.IsColored != nil {
		isColored = *req.IsColored
	}

	style := Style{
		{Key: "width", Value: Px(size)},
		{Key: "height", Value: Px(size)},
	}.Merge(req.Style)

	return Node{
		Class:      strings.TrimSpace(BaseClass + " " + req.Class),
		Style:      style,
		Definition: def,
		Props: Props{
			FillColor: req.Color,
			IsColored: isColored,
			OnClick:   req.OnClick,
			Attrs:     req.Attrs,
		},
	}, true
}

// Icon returns the component for req. Unknown names render nothing.
func (r *Registry) Icon(req Request) templ.Component {
	node, ok := r.Resolve(req)
	if !ok {
		return templ.NopComponent
	}
	return node
}

// Resolve computes the node for req against the default registry.
func Resolve(req Request) (Node, bool) {
	return Default().Resolve(req)
}

// Icon renders req against the default registry.
func Icon(req Request) templ.Component {
	return Default().Icon(req)
}
