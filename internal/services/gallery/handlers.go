package gallery

import (
	"bytes"
	"net/http"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"github.com/louisbranch/msricons/icons"
	"github.com/louisbranch/msricons/internal/platform/httpx"
	"github.com/louisbranch/msricons/internal/platform/i18n"
)

const htmlContentType = "text/html; charset=utf-8"

type handlers struct {
	registry *icons.Registry
}

// namesResponse is the JSON body of the icon list endpoint.
type namesResponse struct {
	Names []string `json:"names"`
}

func (h handlers) index(w http.ResponseWriter, r *http.Request) {
	tag := i18n.ResolveTag(r)
	h.render(w, r, http.StatusOK, galleryPage(pageData{
		Lang:     tag,
		Printer:  i18n.Printer(tag),
		Registry: h.registry,
	}))
}

// icon renders a single icon. Unknown names get a 404 with an empty body.
func (h handlers) icon(w http.ResponseWriter, r *http.Request) {
	req, err := parseIconRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if _, ok := h.registry.Lookup(req.Name); !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	h.render(w, r, http.StatusOK, h.registry.Icon(req))
}

func (h handlers) names(w http.ResponseWriter, _ *http.Request) {
	_ = httpx.WriteJSON(w, http.StatusOK, namesResponse{Names: h.registry.Names()})
}

func (h handlers) stylesheet(w http.ResponseWriter, _ *http.Request) {
	_ = httpx.WriteText(w, http.StatusOK, "text/css; charset=utf-8", icons.Stylesheet())
}

func (h handlers) sprite(w http.ResponseWriter, _ *http.Request) {
	_ = httpx.WriteText(w, http.StatusOK, "image/svg+xml", h.registry.Sprite())
}

// render buffers the component so a render error still yields a clean 500.
func (h handlers) render(w http.ResponseWriter, r *http.Request, status int, c templ.Component) {
	var buf bytes.Buffer
	if err := c.Render(r.Context(), &buf); err != nil {
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", htmlContentType)
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// parseIconRequest maps the path and query onto an icon request. Click
// handlers are never taken from the query.
func parseIconRequest(r *http.Request) (icons.Request, error) {
	query := r.URL.Query()
	req := icons.Request{
		Name:  r.PathValue("name"),
		Color: strings.TrimSpace(query.Get("color")),
		Class: query.Get("class"),
	}
	if raw := strings.TrimSpace(query.Get("size")); raw != "" {
		size, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return icons.Request{}, errInvalidParam("size", raw)
		}
		req.Size = icons.Sized(size)
	}
	if raw := strings.TrimSpace(query.Get("colored")); raw != "" {
		colored, err := strconv.ParseBool(raw)
		if err != nil {
			return icons.Request{}, errInvalidParam("colored", raw)
		}
		req.IsColored = icons.Colored(colored)
	}
	return req, nil
}

type invalidParamError struct {
	param string
	value string
}

func (e invalidParamError) Error() string {
	return "invalid " + e.param + " " + strconv.Quote(e.value)
}

func errInvalidParam(param, value string) error {
	return invalidParamError{param: param, value: value}
}
