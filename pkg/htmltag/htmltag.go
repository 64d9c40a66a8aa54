// Package htmltag emits HTML tags on top of github.com/gobuffalo/tags.
package htmltag

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/gobuffalo/tags/v3"

	"github.com/goliatone/go-boostform/pkg/optmap"
	"github.com/goliatone/go-boostform/pkg/render"
)

var voidElements = map[string]struct{}{
	"area": {}, "base": {}, "br": {}, "col": {}, "embed": {}, "hr": {}, "img": {},
	"input": {}, "link": {}, "meta": {}, "source": {}, "track": {}, "wbr": {},
}

// Builder implements render.TagEmitter.
type Builder struct {
	defaultTag string
}

var _ render.TagEmitter = (*Builder)(nil)

// Option configures a Builder.
type Option func(*Builder)

// WithDefaultTag sets the element used when WrapInTag receives an empty tag.
func WithDefaultTag(tag string) Option {
	return func(b *Builder) {
		if trimmed := strings.TrimSpace(tag); trimmed != "" {
			b.defaultTag = strings.ToLower(trimmed)
		}
	}
}

// New constructs a Builder.
func New(options ...Option) *Builder {
	b := &Builder{defaultTag: "div"}
	for _, opt := range options {
		if opt != nil {
			opt(b)
		}
	}
	return b
}

// WrapInTag wraps inner in tag. inner is trusted markup.
func (b *Builder) WrapInTag(tag, inner string, attrs optmap.Map) string {
	name := strings.ToLower(strings.TrimSpace(tag))
	if name == "" {
		name = b.defaultTag
	}
	t := tags.New(name, Options(attrs))
	if inner != "" {
		t.Append(template.HTML(inner))
	}
	return t.String()
}

// WrapInDiv wraps inner in a div carrying class.
func (b *Builder) WrapInDiv(class, inner string) string {
	attrs := optmap.Map{}
	if strings.TrimSpace(class) != "" {
		attrs["class"] = class
	}
	return b.WrapInTag("div", inner, attrs)
}

// Tag renders a complete element; void elements ignore inner.
func (b *Builder) Tag(name string, attrs optmap.Map, inner string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if _, void := voidElements[name]; void {
		return tags.New(name, Options(attrs)).String()
	}
	return b.WrapInTag(name, inner, attrs)
}

// Open renders the start tag of name.
func Open(name string, attrs optmap.Map) string {
	name = strings.ToLower(strings.TrimSpace(name))
	opts := Options(attrs)
	if len(opts) == 0 {
		return "<" + name + ">"
	}
	return "<" + name + " " + opts.String() + ">"
}

// Close renders the end tag of name.
func Close(name string) string {
	return "</" + strings.ToLower(strings.TrimSpace(name)) + ">"
}

// Options converts an option map into tag attributes. Nil and false values
// are dropped, true renders as key="key", nested maps and slices are skipped.
func Options(attrs optmap.Map) tags.Options {
	out := tags.Options{}
	for key, value := range attrs {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		switch v := value.(type) {
		case nil:
			continue
		case bool:
			if v {
				out[key] = key
			}
		case string:
			out[key] = v
		case fmt.Stringer:
			out[key] = v.String()
		case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
			out[key] = fmt.Sprint(v)
		default:
			continue
		}
	}
	return out
}
