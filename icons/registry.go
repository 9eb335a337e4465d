package icons

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed assets/icons.yaml
var manifestYAML []byte

// Registry is an immutable name-to-definition table.
type Registry struct {
	names []string
	defs  map[string]Definition
}

// NewRegistry builds a registry from defs, keeping their order.
func NewRegistry(defs ...Definition) (*Registry, error) {
	r := &Registry{
		names: make([]string, 0, len(defs)),
		defs:  make(map[string]Definition, len(defs)),
	}
	for i, def := range defs {
		if def == nil {
			return nil, fmt.Errorf("definition %d is nil", i)
		}
		name := def.Name()
		if strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("definition %d: name is required", i)
		}
		if _, exists := r.defs[name]; exists {
			return nil, fmt.Errorf("definition %q is registered twice", name)
		}
		r.names = append(r.names, name)
		r.defs[name] = def
	}
	return r, nil
}

var defaultRegistry = sync.OnceValue(func() *Registry {
	r, err := loadManifest(manifestYAML)
	if err != nil {
		panic("icons: load embedded manifest: " + err.Error())
	}
	return r
})

// Default returns the process-wide registry built from the embedded manifest.
func Default() *Registry {
	return defaultRegistry()
}

type manifest struct {
	Icons []SVG `yaml:"icons"`
}

func loadManifest(data []byte) (*Registry, error) {
	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	defs := make([]Definition, 0, len(m.Icons))
	for _, icon := range m.Icons {
		if len(icon.Layers) == 0 {
			return nil, fmt.Errorf("icon %q has no layers", icon.ID)
		}
		if icon.ViewBox == "" {
			icon.ViewBox = "0 0 24 24"
		}
		defs = append(defs, icon)
	}
	return NewRegistry(defs...)
}

// Lookup returns the definition registered under name.
func (r *Registry) Lookup(name string) (Definition, bool) {
	if r == nil {
		return nil, false
	}
	def, ok := r.defs[name]
	return def, ok
}

// Names returns registered names in registration order.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Map returns a copy of the name-to-definition table.
func (r *Registry) Map() map[string]Definition {
	if r == nil {
		return nil
	}
	out := make(map[string]Definition, len(r.defs))
	for name, def := range r.defs {
		out[name] = def
	}
	return out
}

// Len reports how many icons are registered.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.names)
}

// IconNames lists every icon in the default registry.
func IconNames() []string {
	return Default().Names()
}

// Icons returns the default registry table.
func Icons() map[string]Definition {
	return Default().Map()
}

// Lookup finds name in the default registry.
func Lookup(name string) (Definition, bool) {
	return Default().Lookup(name)
}
