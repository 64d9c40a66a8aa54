// Package boostform wires the Bootstrap form helper to its default delegate
// renderer so callers can build a form for one request in a single call.
package boostform

import (
	"errors"
	"io"
	"log/slog"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-boostform/pkg/basicform"
	"github.com/goliatone/go-boostform/pkg/boost"
	"github.com/goliatone/go-boostform/pkg/config"
	"github.com/goliatone/go-boostform/pkg/model"
	"github.com/goliatone/go-boostform/pkg/optmap"
	"github.com/goliatone/go-boostform/pkg/render"
	"github.com/goliatone/go-boostform/pkg/view"
)

// Request carries the per-request inputs of a form.
type Request struct {
	Model        string
	Introspector render.Introspector
	Request      render.Request
	Values       map[string]any
	Errors       render.ErrorSet
}

// Option customises NewForm.
type Option func(*options)

type options struct {
	logger        *slog.Logger
	themes        theme.ThemeSelector
	helperOptions []boost.Option
	formOptions   []basicform.Option
}

// WithLogger shares logger between the helper and the delegate renderer.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithThemes replaces the selector used to resolve the configured theme.
func WithThemes(selector theme.ThemeSelector) Option {
	return func(o *options) {
		o.themes = selector
	}
}

// WithHelperOptions appends helper options applied after the configuration.
func WithHelperOptions(opts ...boost.Option) Option {
	return func(o *options) {
		o.helperOptions = append(o.helperOptions, opts...)
	}
}

// WithFormOptions appends delegate renderer options applied after the
// configuration.
func WithFormOptions(opts ...basicform.Option) Option {
	return func(o *options) {
		o.formOptions = append(o.formOptions, opts...)
	}
}

// Form is a helper bound to its delegate renderer and view blocks.
type Form struct {
	*boost.Helper

	Renderer *basicform.Renderer
	Blocks   *view.Blocks

	introspector render.Introspector
}

// NewForm builds the delegate renderer and helper for one request. A theme
// named in cfg is resolved through the built-in themes unless WithThemes
// supplies another selector.
func NewForm(cfg config.Config, req Request, opts ...Option) (*Form, error) {
	o := options{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	formOpts := []basicform.Option{
		basicform.WithModel(req.Model),
		basicform.WithValues(req.Values),
		basicform.WithErrors(req.Errors),
		basicform.WithLogger(o.logger),
	}
	if req.Introspector != nil {
		formOpts = append(formOpts, basicform.WithIntrospector(req.Introspector))
	}
	formOpts = append(formOpts, cfg.FormOptions()...)
	formOpts = append(formOpts, o.formOptions...)
	renderer := basicform.New(formOpts...)

	blocks := view.NewBlocks()
	helperOpts := []boost.Option{
		boost.WithBlocks(blocks),
		boost.WithLogger(o.logger),
	}
	if req.Introspector != nil {
		helperOpts = append(helperOpts, boost.WithIntrospector(req.Introspector))
	}
	if req.Request != nil {
		helperOpts = append(helperOpts, boost.WithRequest(req.Request))
	}
	if name := strings.TrimSpace(cfg.Theme.Name); name != "" {
		selector := o.themes
		if selector == nil {
			selector = BuiltinThemes()
		}
		helperOpts = append(helperOpts, boost.WithThemeSelector(selector, name, cfg.Theme.Variant))
	}
	helperOpts = append(helperOpts, cfg.HelperOptions()...)
	helperOpts = append(helperOpts, o.helperOptions...)

	helper, err := boost.New(renderer, helperOpts...)
	if err != nil {
		return nil, err
	}
	return &Form{Helper: helper, Renderer: renderer, Blocks: blocks, introspector: req.Introspector}, nil
}

// LabelledFields lists the introspected fields of the request model, each
// labelled with its humanized name.
func (f *Form) LabelledFields() boost.FieldList {
	if f.introspector == nil {
		return nil
	}
	fields := f.introspector.Fields(f.Renderer.Model())
	out := make(boost.FieldList, 0, len(fields))
	for _, field := range fields {
		out = append(out, boost.FieldEntry{
			Name:    field.Name,
			Options: optmap.Map{"label": model.Humanize(field.Name)},
		})
	}
	return out
}

// RenderModel emits a complete form for the request model: the opening tag,
// every labelled field except blacklist, and the closing tag with a submit
// button captioned submit. An empty submit omits the button.
func (f *Form) RenderModel(createOpts, inputsOpts optmap.Map, blacklist []string, submit string) (string, error) {
	modelName := f.Renderer.Model()
	if modelName == "" {
		return "", errors.New("boostform: model is required")
	}
	var out strings.Builder

	open, err := f.Create(modelName, createOpts)
	if err != nil {
		return "", err
	}
	out.WriteString(open)

	var fields any
	if labelled := f.LabelledFields(); len(labelled) > 0 {
		fields = labelled
	}
	body, err := f.Inputs(fields, blacklist, inputsOpts)
	if err != nil {
		return "", err
	}
	out.WriteString(body)

	endOpts := optmap.Map{}
	if submit != "" {
		endOpts["label"] = submit
	}
	closing, err := f.End(endOpts)
	if err != nil {
		return "", err
	}
	out.WriteString(closing)
	return out.String(), nil
}
