package render

import (
	"github.com/goliatone/go-boostform/pkg/model"
	"github.com/goliatone/go-boostform/pkg/optmap"
)

// FormRenderer is the delegate form-rendering engine. It owns control
// emission, label and error markup, field bookkeeping and the bound model.
type FormRenderer interface {
	// Create binds model and returns the opening form tag.
	Create(model string, opts optmap.Map) (string, error)
	// End returns the closing form tag and releases the bound model.
	End(opts optmap.Map) (string, error)
	// Model returns the currently bound model name, or "".
	Model() string

	// RenderInput renders one labelled control. hooks let the caller take part
	// in wrapper resolution and control decoration.
	RenderInput(fieldName string, opts optmap.Map, hooks InputHooks) (string, error)
	// RenderError returns the validation error markup of fieldName; ok is false
	// when the field has no errors.
	RenderError(fieldName string, opts optmap.Map) (html string, ok bool)
	// WrapperOptions resolves the `div` option (false, string, map) of opts
	// for fieldName and opts["type"] into wrapper attributes including "tag".
	// Nil means no wrapper.
	WrapperOptions(fieldName string, opts optmap.Map) optmap.Map
	// FieldHasError reports whether fieldName currently fails validation.
	FieldHasError(fieldName string) bool
	// Value looks up the bound value of fieldName.
	Value(fieldName string) any

	// UseTag emits the named control tag ("submit", "submitimage", "hidden",
	// "link") with attrs.
	UseTag(name string, attrs optmap.Map) string
	// PostLink renders an auxiliary hidden form plus a link submitting it.
	PostLink(title, url string, opts optmap.Map) (string, error)

	// Fields returns the secured field list tracked for the open form.
	Fields() []string
	// SetFields replaces the secured field list.
	SetFields(fields []string)
	// Secure adds fieldName to the secured field list.
	Secure(fieldName string)
	// UnlockField excludes name from tamper protection.
	UnlockField(name string)
}

// InputHooks are the extension points RenderInput offers while it assembles a
// control. Nil hooks fall back to the renderer's own behaviour.
type InputHooks struct {
	// Wrapper resolves the outer wrapper attributes once the input type is
	// known. Returning nil disables the wrapper.
	Wrapper func(inputType string, opts optmap.Map) optmap.Map
	// Control may replace the bare control markup for inputType; ok=false keeps
	// the renderer's control.
	Control func(fieldName, inputType string, opts optmap.Map) (html string, ok bool, err error)
	// Decorate post-processes the bare control before it is placed between the
	// label, `between` and `after` content.
	Decorate func(inputType, control string) (string, error)
	// CheckboxOption rewrites a single option of a multi-checkbox select.
	CheckboxOption func(option string, attrs optmap.Map) string
}

// TagEmitter is the HTML tag-emission helper.
type TagEmitter interface {
	WrapInTag(tag, inner string, attrs optmap.Map) string
	WrapInDiv(class, inner string) string
}

// Introspector lists the fields a model declares.
type Introspector interface {
	Fields(model string) []model.Field
}

// IntrospectorFunc adapts a function to Introspector.
type IntrospectorFunc func(model string) []model.Field

// Fields implements Introspector.
func (f IntrospectorFunc) Fields(name string) []model.Field {
	if f == nil {
		return nil
	}
	return f(name)
}

// Request exposes the current request's action name.
type Request interface {
	Action() string
}

// BlockRegistry collects markup for named, deferred content blocks.
type BlockRegistry interface {
	Append(block, html string)
	Fetch(block string) string
}
