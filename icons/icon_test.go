package icons

import (
	"context"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/a-h/templ"
	"golang.org/x/net/html"
)

func renderString(t *testing.T, c templ.Component) string {
	t.Helper()
	var b strings.Builder
	if err := c.Render(context.Background(), &b); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	return b.String()
}

func findElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if found := findElement(child, tag); found != nil {
			return found
		}
	}
	return nil
}

// attr looks key up case-insensitively since the parser rewrites SVG names
// such as viewBox.
func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, key) {
			return a.Val, true
		}
	}
	return "", false
}

func parseContainer(t *testing.T, markup string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		t.Fatalf("html.Parse() error = %v", err)
	}
	span := findElement(doc, "span")
	if span == nil {
		t.Fatalf("expected span container in %q", markup)
	}
	return span
}

// recordingDefinition captures the props it receives.
type recordingDefinition struct {
	name string
	mu   sync.Mutex
	got  []Props
}

func (d *recordingDefinition) Name() string { return d.name }

func (d *recordingDefinition) Component(p Props) templ.Component {
	d.mu.Lock()
	d.got = append(d.got, p)
	d.mu.Unlock()
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "<i></i>")
		return err
	})
}

func TestIconRendersEveryRegisteredNameWithDefaults(t *testing.T) {
	t.Parallel()

	names := IconNames()
	if len(names) == 0 {
		t.Fatal("expected registered icons")
	}
	for _, name := range names {
		span := parseContainer(t, renderString(t, Icon(Request{Name: name})))
		if class, _ := attr(span, "class"); class != BaseClass {
			t.Errorf("%s: class = %q, want %q", name, class, BaseClass)
		}
		if style, _ := attr(span, "style"); style != "width:24px;height:24px" {
			t.Errorf("%s: style = %q, want 24px square", name, style)
		}
		svg := findElement(span, "svg")
		if svg == nil {
			t.Fatalf("%s: expected svg inside container", name)
		}
		if got, _ := attr(svg, "data-icon"); got != name {
			t.Errorf("%s: data-icon = %q", name, got)
		}
	}
}

func TestIconUnknownNameRendersNothing(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"", "DoesNotExist", "svgfacebook", " SvgFacebook"} {
		if got := renderString(t, Icon(Request{Name: name})); got != "" {
			t.Errorf("Icon(%q) = %q, want empty", name, got)
		}
		if _, ok := Resolve(Request{Name: name}); ok {
			t.Errorf("Resolve(%q) ok = true, want false", name)
		}
	}
}

func TestResolveAppliesSizeToBothEdges(t *testing.T) {
	t.Parallel()

	for _, size := range []float64{0, 1, 16, 32, 48.5, -4} {
		node, ok := Resolve(Request{Name: "SvgStar", Size: Sized(size)})
		if !ok {
			t.Fatal("expected SvgStar to resolve")
		}
		want := Px(size)
		if got, _ := node.Style.Get("width"); got != want {
			t.Errorf("size %v: width = %q, want %q", size, got, want)
		}
		if got, _ := node.Style.Get("height"); got != want {
			t.Errorf("size %v: height = %q, want %q", size, got, want)
		}
	}
}

func TestResolveZeroSizeIsExplicit(t *testing.T) {
	t.Parallel()

	span := parseContainer(t, renderString(t, Icon(Request{Name: "SvgStar", Size: Sized(0)})))
	if style, _ := attr(span, "style"); style != "width:0px;height:0px" {
		t.Fatalf("style = %q, want width:0px;height:0px", style)
	}

	node, ok := Resolve(Request{Name: "SvgStar"})
	if !ok {
		t.Fatal("expected SvgStar to resolve")
	}
	if got := node.Style.String(); got != "width:24px;height:24px" {
		t.Fatalf("omitted size style = %q, want 24px square", got)
	}
}

func TestNodeWithoutDefinitionRendersNothing(t *testing.T) {
	t.Parallel()

	if got := renderString(t, Node{}); got != "" {
		t.Fatalf("Node{} rendered %q, want empty", got)
	}
	if got := renderString(t, Node{Class: BaseClass, Style: Style{{Key: "width", Value: "24px"}}}); got != "" {
		t.Fatalf("definitionless node rendered %q, want empty", got)
	}
}

func TestResolveCallerStyleOverridesComputedSize(t *testing.T) {
	t.Parallel()

	node, ok := Resolve(Request{
		Name:  "SvgStar",
		Size:  Sized(24),
		Style: Style{{Key: "width", Value: "100px"}, {Key: "color", Value: "red"}},
	})
	if !ok {
		t.Fatal("expected SvgStar to resolve")
	}
	if got := node.Style.String(); got != "width:100px;height:24px;color:red" {
		t.Fatalf("style = %q", got)
	}
}

func TestResolveClassConcatenation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		class string
		want  string
	}{
		{class: "", want: "hicon"},
		{class: "foo", want: "hicon foo"},
		{class: "foo bar ", want: "hicon foo bar"},
	}
	for _, tc := range tests {
		node, ok := Resolve(Request{Name: "SvgHome", Class: tc.class})
		if !ok {
			t.Fatal("expected SvgHome to resolve")
		}
		if node.Class != tc.want {
			t.Errorf("class %q: got %q, want %q", tc.class, node.Class, tc.want)
		}
	}
}

func TestIconForwardsPropsToDefinition(t *testing.T) {
	t.Parallel()

	def := &recordingDefinition{name: "Probe"}
	registry, err := NewRegistry(def)
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}

	renderString(t, registry.Icon(Request{
		Name:      "Probe",
		Color:     "#333",
		IsColored: Colored(false),
		OnClick:   "pick('Probe')",
		Attrs:     templ.Attributes{"data-future": "yes", "aria-hidden": true},
	}))

	if len(def.got) != 1 {
		t.Fatalf("definition rendered %d times, want 1", len(def.got))
	}
	got := def.got[0]
	if got.FillColor != "#333" || got.IsColored || got.OnClick != "pick('Probe')" {
		t.Fatalf("props = %+v", got)
	}
	if got.Attrs["data-future"] != "yes" || got.Attrs["aria-hidden"] != true {
		t.Fatalf("attrs = %+v", got.Attrs)
	}
}

func TestIconIsColoredDefaultsToTrue(t *testing.T) {
	t.Parallel()

	def := &recordingDefinition{name: "Probe"}
	registry, err := NewRegistry(def)
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}
	node, ok := registry.Resolve(Request{Name: "Probe"})
	if !ok {
		t.Fatal("expected Probe to resolve")
	}
	if !node.Props.IsColored {
		t.Fatal("IsColored = false, want true")
	}
}

func TestIconRenderIsIdempotent(t *testing.T) {
	t.Parallel()

	req := Request{
		Name:    "SvgYoutube",
		Size:    Sized(40),
		Color:   "#222",
		Class:   "video",
		OnClick: "play()",
		Style:   Style{{Key: "margin", Value: "2px"}},
		Attrs:   templ.Attributes{"data-id": "7"},
	}
	first := renderString(t, Icon(req))
	second := renderString(t, Icon(req))
	if first != second {
		t.Fatalf("renders differ:\n%s\n%s", first, second)
	}
}

func TestIconFacebookScenario(t *testing.T) {
	t.Parallel()

	node, ok := Resolve(Request{Name: "SvgFacebook", Size: Sized(32), Color: "#333"})
	if !ok {
		t.Fatal("expected SvgFacebook to resolve")
	}
	if node.Definition.Name() != "SvgFacebook" {
		t.Fatalf("definition = %q", node.Definition.Name())
	}
	if node.Props.FillColor != "#333" {
		t.Fatalf("FillColor = %q, want #333", node.Props.FillColor)
	}

	span := parseContainer(t, renderString(t, node))
	if style, _ := attr(span, "style"); style != "width:32px;height:32px" {
		t.Fatalf("style = %q", style)
	}
}

func TestIconPassthroughAttributesReachSVG(t *testing.T) {
	t.Parallel()

	markup := renderString(t, Icon(Request{
		Name:    "SvgHeart",
		OnClick: "like()",
		Attrs:   templ.Attributes{"data-track": "heart"},
	}))
	span := parseContainer(t, markup)
	svg := findElement(span, "svg")
	if svg == nil {
		t.Fatalf("expected svg in %q", markup)
	}
	if got, _ := attr(svg, "data-track"); got != "heart" {
		t.Fatalf("data-track = %q", got)
	}
	if got, _ := attr(svg, "onclick"); got != "like()" {
		t.Fatalf("onclick = %q", got)
	}
}

func TestIconConcurrentRenders(t *testing.T) {
	t.Parallel()

	want := renderString(t, Icon(Request{Name: "SvgGithub", Size: Sized(20)}))
	var wg sync.WaitGroup
	errs := make(chan string, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var b strings.Builder
			if err := Icon(Request{Name: "SvgGithub", Size: Sized(20)}).Render(context.Background(), &b); err != nil {
				errs <- err.Error()
				return
			}
			if b.String() != want {
				errs <- "render mismatch"
			}
		}()
	}
	wg.Wait()
	close(errs)
	for msg := range errs {
		t.Error(msg)
	}
}
