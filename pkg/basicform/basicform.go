// Package basicform is the default form-rendering engine behind the Bootstrap
// helper. It names controls after their model field ("Widget.name" becomes
// data[Widget][name], id WidgetName), picks control types from model
// introspection, renders labels and validation errors, and tracks the fields
// a form submits so End can sign them.
package basicform

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/goliatone/go-boostform/pkg/htmltag"
	"github.com/goliatone/go-boostform/pkg/optmap"
	"github.com/goliatone/go-boostform/pkg/render"
)

// ErrUnknownField is returned in strict mode when a field is not declared by
// the bound model.
var ErrUnknownField = errors.New("basicform: unknown field")

// Option configures a Renderer.
type Option func(*Renderer)

// WithModel binds model up front, as Create would.
func WithModel(model string) Option {
	return func(r *Renderer) {
		r.model = strings.TrimSpace(model)
	}
}

// WithValues seeds bound field values. Keys are dotted paths ("Widget.name")
// or nested maps keyed by model then field.
func WithValues(values map[string]any) Option {
	return func(r *Renderer) {
		r.values = values
	}
}

// WithErrors seeds validation errors.
func WithErrors(set render.ErrorSet) Option {
	return func(r *Renderer) {
		r.errors = set
	}
}

// WithIntrospector sets the model introspection source.
func WithIntrospector(introspector render.Introspector) Option {
	return func(r *Renderer) {
		r.introspector = introspector
	}
}

// WithStrictFields makes RenderInput reject fields the bound model does not
// declare.
func WithStrictFields(strict bool) Option {
	return func(r *Renderer) {
		r.strict = strict
	}
}

// WithSecurityKey enables form tamper protection: End and PostLink emit a
// signed token over the tracked fields.
func WithSecurityKey(key []byte) Option {
	return func(r *Renderer) {
		r.securityKey = slices.Clone(key)
	}
}

// WithIDGenerator overrides the generator of post-link form ids.
func WithIDGenerator(fn func() string) Option {
	return func(r *Renderer) {
		if fn != nil {
			r.newID = fn
		}
	}
}

// WithTagBuilder overrides the tag builder.
func WithTagBuilder(builder *htmltag.Builder) Option {
	return func(r *Renderer) {
		if builder != nil {
			r.tags = builder
		}
	}
}

// WithLogger attaches a debug logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Renderer) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// Renderer implements render.FormRenderer. A Renderer holds per-form state and
// belongs to a single request.
type Renderer struct {
	model        string
	action       string
	values       map[string]any
	errors       render.ErrorSet
	introspector render.Introspector
	strict       bool
	securityKey  []byte
	newID        func() string
	tags         *htmltag.Builder
	logger       *slog.Logger

	fields   []string
	unlocked []string
}

var _ render.FormRenderer = (*Renderer)(nil)

// New constructs a Renderer.
func New(options ...Option) *Renderer {
	r := &Renderer{
		newID:  randomID,
		tags:   htmltag.New(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// Model implements render.FormRenderer.
func (r *Renderer) Model() string {
	return r.model
}

// Fields implements render.FormRenderer.
func (r *Renderer) Fields() []string {
	return slices.Clone(r.fields)
}

// SetFields implements render.FormRenderer.
func (r *Renderer) SetFields(fields []string) {
	r.fields = slices.Clone(fields)
}

// Secure implements render.FormRenderer. Unlocked fields are never tracked.
func (r *Renderer) Secure(fieldName string) {
	name := strings.TrimSpace(fieldName)
	if name == "" || slices.Contains(r.unlocked, name) || slices.Contains(r.fields, name) {
		return
	}
	r.fields = append(r.fields, name)
}

// UnlockField implements render.FormRenderer.
func (r *Renderer) UnlockField(name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	if !slices.Contains(r.unlocked, name) {
		r.unlocked = append(r.unlocked, name)
	}
	r.fields = slices.DeleteFunc(r.fields, func(field string) bool { return field == name })
}

// Unlocked returns the unlocked field names.
func (r *Renderer) Unlocked() []string {
	return slices.Clone(r.unlocked)
}

// Create implements render.FormRenderer. Recognised options: url (or
// action), type (or method, default post), id, plus free attributes.
func (r *Renderer) Create(model string, opts optmap.Map) (string, error) {
	opts = opts.Clone()
	r.model = strings.TrimSpace(model)
	r.fields = nil
	r.unlocked = nil

	action := opts.String("url")
	if action == "" {
		action = opts.String("action")
	}
	if action == "" {
		action = "/"
	}
	method := strings.ToLower(opts.String("type"))
	if method == "" {
		method = strings.ToLower(opts.String("method"))
	}
	if method == "" {
		method = "post"
	}
	r.action = action

	attrs := opts.Without("url", "type", "method", "action", "model")
	attrs["action"] = action
	if !attrs.IsSet("id") && r.model != "" {
		attrs["id"] = r.model + "Form"
	}
	if !attrs.IsSet("accept-charset") {
		attrs["accept-charset"] = "utf-8"
	}
	formMethod := method
	if method != "get" {
		formMethod = "post"
	}
	attrs["method"] = formMethod

	var out strings.Builder
	out.WriteString(htmltag.Open("form", attrs))
	if method != "get" {
		out.WriteString(`<div style="display:none;">`)
		out.WriteString(r.UseTag("hidden", optmap.Map{"name": "_method", "value": strings.ToUpper(method)}))
		out.WriteString("</div>")
	}
	return out.String(), nil
}

// End implements render.FormRenderer. It emits the token block when a
// security key is configured and releases the bound model.
func (r *Renderer) End(opts optmap.Map) (string, error) {
	var out strings.Builder
	if len(r.securityKey) > 0 {
		out.WriteString(r.tokenFields(r.action, r.fields, r.unlocked))
	}
	out.WriteString(htmltag.Close("form"))

	r.model = ""
	r.action = ""
	r.fields = nil
	r.unlocked = nil
	return out.String(), nil
}

func randomID() string {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return "0000000000000000"
	}
	return hex.EncodeToString(buf)
}
