package template

import (
	"embed"
	"fmt"
	"sort"
)

//go:embed templates/*.html
var templateFS embed.FS

// Template couples a storefront layout with the theme defaults the
// materializer falls back to when a store saved no background of its own.
type Template struct {
	ID                string
	Name              string
	HTML              string
	DefaultBackground string
}

// DefaultTemplateID is served whenever a store carries an unknown template
// id. The fallback is silent: old stores keep rendering after a template is
// retired.
const DefaultTemplateID = "bladesmith"

var registry = map[string]*Template{}

var descriptors = []struct {
	id         string
	name       string
	background string
}{
	{"bladesmith", "Struvaris", "#1a1a1a"},
	{"aurora", "Aurora", "#f5f0e8"},
	{"verdant", "Verdant", "#1e3a2a"},
	{"noir", "Noir", "#0d0d0f"},
	{"coastal", "Coastal", "#eaf4f7"},
}

func init() {
	for _, d := range descriptors {
		raw, err := templateFS.ReadFile(fmt.Sprintf("templates/%s.html", d.id))
		if err != nil {
			panic(fmt.Sprintf("template %s missing from embed: %v", d.id, err))
		}
		registry[d.id] = &Template{
			ID:                d.id,
			Name:              d.name,
			HTML:              string(raw),
			DefaultBackground: d.background,
		}
	}
}

// Lookup returns the template for id, falling back to the default template
// for unknown ids. It never returns nil.
func Lookup(id string) *Template {
	if tpl, ok := registry[id]; ok {
		return tpl
	}
	return registry[DefaultTemplateID]
}

// All returns every registered template sorted by id, for the builder's
// template picker.
func All() []*Template {
	out := make([]*Template, 0, len(registry))
	for _, tpl := range registry {
		out = append(out, tpl)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
