package basicform

import (
	"fmt"
	"html"
	"strings"

	"github.com/goliatone/go-boostform/pkg/model"
	"github.com/goliatone/go-boostform/pkg/optmap"
	"github.com/goliatone/go-boostform/pkg/render"
)

// layoutKeys are options RenderInput consumes; everything else becomes an
// attribute of the control.
var layoutKeys = []string{
	"type", "label", "div", "before", "after", "between", "format", "error",
	"errorMessage", "options", "empty", "multiple", "hiddenField", "secure",
	"selected", "legend", "fieldset", "escape",
}

var (
	defaultFormat  = []string{"before", "label", "between", "input", "after", "error"}
	checkboxFormat = []string{"before", "input", "between", "label", "after", "error"}
)

// RenderInput implements render.FormRenderer.
func (r *Renderer) RenderInput(fieldName string, opts optmap.Map, hooks render.InputHooks) (string, error) {
	if strings.TrimSpace(fieldName) == "" {
		return "", fmt.Errorf("basicform: field name is required")
	}
	opts = opts.Clone()
	e := r.entity(fieldName)

	if r.strict {
		if declared, known := r.modelDeclares(e); known && !declared {
			return "", fmt.Errorf("%w: %s", ErrUnknownField, e.dotted())
		}
	}

	def, hasDef := r.fieldDef(e)
	inputType := r.inputType(e, def, hasDef, opts)
	opts["type"] = inputType
	if _, ok := opts["options"]; !ok && inputType == "select" && len(def.Choices) > 0 {
		opts["options"] = choiceOptions(def.Choices)
	}

	var wrapper optmap.Map
	if hooks.Wrapper != nil {
		wrapper = hooks.Wrapper(inputType, opts)
	} else {
		wrapper = r.WrapperOptions(fieldName, opts)
	}

	label := ""
	if inputType != "hidden" {
		label = r.label(e, opts)
	}

	parts := map[string]string{
		"before":  opts.String("before"),
		"label":   label,
		"between": opts.String("between"),
		"after":   opts.String("after"),
	}

	if inputType != "hidden" && !opts.IsFalse("error") {
		if errorOpts, ok := errorOptions(opts.Get("error")); ok {
			if msg, has := r.RenderError(fieldName, errorOpts); has {
				wrapper = addWrapperClass(wrapper, "error")
				if opts.Bool("errorMessage", true) {
					parts["error"] = msg
				}
			}
		}
	}

	control, err := r.control(fieldName, e, def, inputType, opts, hooks)
	if err != nil {
		return "", err
	}
	if hooks.Decorate != nil {
		control, err = hooks.Decorate(inputType, control)
		if err != nil {
			return "", err
		}
	}
	parts["input"] = control

	var out strings.Builder
	for _, element := range r.format(inputType, opts) {
		out.WriteString(parts[element])
	}

	if len(wrapper) > 0 {
		tag := wrapper.String("tag")
		return r.tags.WrapInTag(tag, out.String(), wrapper.Without("tag")), nil
	}
	return out.String(), nil
}

// WrapperOptions implements render.FormRenderer. The default wrapper of a
// text field is <div class="input text">; string div options replace the
// class, maps merge over it. Required fields gain the "required" class.
func (r *Renderer) WrapperOptions(fieldName string, opts optmap.Map) optmap.Map {
	inputType := opts.String("type")
	if inputType == "hidden" {
		return nil
	}
	div, present := opts["div"]
	if !present {
		div = true
	}
	if div == nil || div == false || div == "" {
		return nil
	}

	wrapper := optmap.Map{"class": strings.TrimSpace("input " + inputType)}
	switch v := div.(type) {
	case string:
		wrapper["class"] = v
	default:
		if nested, ok := optmap.AsMap(v); ok {
			wrapper = optmap.Merge(wrapper, nested)
		}
	}

	if !opts.IsFalse("required") {
		if def, ok := r.fieldDef(r.entity(fieldName)); ok && def.Required {
			wrapper = addWrapperClass(wrapper, "required")
		}
	}
	if wrapper.String("tag") == "" {
		wrapper["tag"] = "div"
	}
	return wrapper
}

func addWrapperClass(wrapper optmap.Map, class string) optmap.Map {
	if wrapper == nil {
		return nil
	}
	return wrapper.AddClass(class)
}

// inputType picks the control type: explicit type, option lists, well-known
// field names, then the introspected column type.
func (r *Renderer) inputType(e entity, def model.Field, hasDef bool, opts optmap.Map) string {
	if explicit := strings.ToLower(opts.String("type")); explicit != "" {
		return explicit
	}
	if opts.IsSet("options") {
		return "select"
	}
	key := e.field()
	switch key {
	case "password", "passwd", "psword":
		return "password"
	case "tel", "telephone", "phone":
		return "tel"
	case "email":
		return "email"
	}
	if opts.IsSet("checked") {
		return "checkbox"
	}
	if hasDef {
		if def.PrimaryKey {
			return "hidden"
		}
		if len(def.Choices) > 0 {
			return "select"
		}
		switch def.Type {
		case model.FieldTypeBoolean:
			return "checkbox"
		case model.FieldTypeText:
			return "textarea"
		case model.FieldTypeInteger, model.FieldTypeFloat:
			return "number"
		case model.FieldTypeDate:
			return "date"
		case model.FieldTypeDatetime:
			return "datetime"
		case model.FieldTypeTime:
			return "time"
		case model.FieldTypeBinary:
			return "file"
		}
	}
	return "text"
}

func (r *Renderer) format(inputType string, opts optmap.Map) []string {
	if raw, ok := opts["format"].([]string); ok {
		return raw
	}
	if raw, ok := opts["format"].([]any); ok {
		out := make([]string, 0, len(raw))
		for _, item := range raw {
			out = append(out, optmap.ToString(item))
		}
		return out
	}
	switch inputType {
	case "hidden":
		return []string{"input"}
	case "checkbox":
		return checkboxFormat
	default:
		return defaultFormat
	}
}

// label renders the field label. label=false suppresses it; a string is the
// text; a map carries text plus attributes. Text is escaped unless the map
// sets escape=false.
func (r *Renderer) label(e entity, opts optmap.Map) string {
	raw, present := opts["label"]
	if present && (raw == nil || raw == false) {
		return ""
	}

	attrs := optmap.Map{}
	text := ""
	switch v := raw.(type) {
	case string:
		text = v
	default:
		if nested, ok := optmap.AsMap(v); ok {
			attrs = nested.Clone()
			text = attrs.String("text")
		}
	}
	if text == "" {
		text = model.Humanize(strings.TrimSuffix(e.field(), "_id"))
	}
	if attrs.Bool("escape", true) {
		text = html.EscapeString(text)
	}
	attrs = attrs.Without("text", "escape")
	if !attrs.IsSet("for") {
		attrs["for"] = controlID(e, opts)
	}
	return r.tags.WrapInTag("label", text, attrs)
}

func controlID(e entity, opts optmap.Map) string {
	if id := opts.String("id"); id != "" {
		return id
	}
	return e.id()
}

func errorOptions(raw any) (optmap.Map, bool) {
	switch v := raw.(type) {
	case nil:
		return optmap.Map{}, true
	case bool:
		return optmap.Map{}, v
	case string:
		return optmap.Map{"text": v}, true
	default:
		if nested, ok := optmap.AsMap(v); ok {
			return nested, true
		}
		return optmap.Map{}, true
	}
}

func choiceOptions(choices []model.Choice) []Choice {
	out := make([]Choice, 0, len(choices))
	for _, choice := range choices {
		label := choice.Label
		if label == "" {
			label = choice.Value
		}
		out = append(out, Choice{Value: choice.Value, Label: label})
	}
	return out
}
