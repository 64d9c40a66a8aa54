package basicform

import (
	"fmt"
	"html"
	"slices"
	"strings"

	"github.com/goliatone/go-boostform/pkg/model"
	"github.com/goliatone/go-boostform/pkg/optmap"
	"github.com/goliatone/go-boostform/pkg/render"
)

// Choice is one entry of a select, radio or multi-checkbox list.
type Choice struct {
	Value string
	Label string
}

func (r *Renderer) control(fieldName string, e entity, def model.Field, inputType string, opts optmap.Map, hooks render.InputHooks) (string, error) {
	attrs := opts.Without(layoutKeys...)
	if !attrs.IsSet("name") {
		attrs["name"] = e.name()
	}
	if !attrs.IsSet("id") {
		attrs["id"] = e.id()
	}
	if def.Required && !attrs.Has("required") && inputType != "hidden" && inputType != "checkbox" {
		attrs["required"] = true
	}
	if def.Length > 0 && !attrs.Has("maxlength") && (inputType == "text" || inputType == "password" || inputType == "email" || inputType == "tel") {
		attrs["maxlength"] = def.Length
	}
	if !opts.IsFalse("secure") {
		r.Secure(e.dotted())
	}

	if hooks.Control != nil {
		controlOpts := attrs.Clone()
		controlOpts["type"] = inputType
		if opts.Has("empty") {
			controlOpts["empty"] = opts.Get("empty")
		}
		markup, ok, err := hooks.Control(fieldName, inputType, controlOpts)
		if err != nil {
			return "", err
		}
		if ok {
			return markup, nil
		}
	}

	switch inputType {
	case "checkbox":
		return r.checkbox(fieldName, attrs, opts), nil
	case "textarea":
		value := attrs.Get("value")
		if value == nil {
			value = r.Value(fieldName)
		}
		return r.tags.WrapInTag("textarea", html.EscapeString(optmap.ToString(value)), attrs.Without("value")), nil
	case "select":
		return r.selectControl(fieldName, attrs, opts, hooks), nil
	case "radio":
		return r.radio(fieldName, attrs, opts), nil
	case "submit":
		if !attrs.IsSet("value") {
			attrs["value"] = model.Humanize(e.field())
		}
		return r.UseTag("submit", attrs), nil
	case "file":
		return r.input("file", attrs.Without("value")), nil
	default:
		if !attrs.Has("value") {
			if value := r.Value(fieldName); value != nil {
				attrs["value"] = optmap.ToString(value)
			}
		}
		if inputType == "datetime" {
			inputType = "datetime-local"
		}
		return r.input(inputType, attrs), nil
	}
}

func (r *Renderer) input(inputType string, attrs optmap.Map) string {
	attrs = attrs.Clone()
	attrs["type"] = inputType
	return r.tags.Tag("input", attrs, "")
}

// checkbox renders the hidden companion (value 0) followed by the checkbox
// (value 1).
func (r *Renderer) checkbox(fieldName string, attrs, opts optmap.Map) string {
	attrs = attrs.Clone()
	if !attrs.IsSet("value") {
		attrs["value"] = "1"
	}
	if !attrs.Has("checked") {
		attrs["checked"] = truthy(r.Value(fieldName))
	}

	var out strings.Builder
	if hidden, ok := opts["hiddenField"]; !ok || hidden != false {
		value := "0"
		if s, ok := hidden.(string); ok {
			value = s
		}
		out.WriteString(r.input("hidden", optmap.Map{
			"name":  attrs.String("name"),
			"id":    attrs.String("id") + "_",
			"value": value,
		}))
	}
	out.WriteString(r.input("checkbox", attrs))
	return out.String()
}

func (r *Renderer) selectControl(fieldName string, attrs, opts optmap.Map, hooks render.InputHooks) string {
	choices := normalizeChoices(opts.Get("options"))
	selected := selectedValues(opts.Get("selected"))
	if selected == nil {
		selected = selectedValues(attrs.Get("value"))
	}
	if selected == nil {
		selected = selectedValues(r.Value(fieldName))
	}
	attrs = attrs.Without("value")

	if opts.String("multiple") == "checkbox" {
		return r.checkboxList(attrs, choices, selected, hooks)
	}

	var body strings.Builder
	if empty, ok := opts["empty"]; ok && empty != false && empty != nil {
		text := ""
		if s, ok := empty.(string); ok {
			text = s
		}
		body.WriteString(r.tags.WrapInTag("option", html.EscapeString(text), optmap.Map{"value": ""}))
	}
	for _, choice := range choices {
		optAttrs := optmap.Map{"value": choice.Value}
		if slices.Contains(selected, choice.Value) {
			optAttrs["selected"] = true
		}
		body.WriteString(r.tags.WrapInTag("option", html.EscapeString(choice.Label), optAttrs))
	}

	if multiple, ok := opts["multiple"]; ok && multiple != false && multiple != nil {
		attrs["multiple"] = true
		attrs["name"] = attrs.String("name") + "[]"
	}
	return r.tags.WrapInTag("select", body.String(), attrs)
}

// checkboxList renders a multi-checkbox select: a hidden empty value then one
// wrapped checkbox and label per choice. hooks.CheckboxOption may rewrite each
// option.
func (r *Renderer) checkboxList(attrs optmap.Map, choices []Choice, selected []string, hooks render.InputHooks) string {
	name := attrs.String("name")
	baseID := attrs.String("id")
	class := attrs.String("class")

	var out strings.Builder
	out.WriteString(r.input("hidden", optmap.Map{"name": name, "value": "", "id": baseID}))
	for _, choice := range choices {
		id := baseID + model.Camelize(choice.Value)
		box := optmap.Map{"name": name + "[]", "value": choice.Value, "id": id}
		if slices.Contains(selected, choice.Value) {
			box["checked"] = true
		}
		option := r.input("checkbox", box) +
			r.tags.WrapInTag("label", html.EscapeString(choice.Label), optmap.Map{"for": id})
		divClass := "checkbox"
		if slices.Contains(selected, choice.Value) {
			divClass += " selected"
		}
		option = r.tags.WrapInDiv(divClass, option)
		if hooks.CheckboxOption != nil {
			option = hooks.CheckboxOption(option, optmap.Map{"class": class})
		}
		out.WriteString(option)
	}
	return out.String()
}

func (r *Renderer) radio(fieldName string, attrs, opts optmap.Map) string {
	choices := normalizeChoices(opts.Get("options"))
	value := optmap.ToString(attrs.Get("value"))
	if !attrs.Has("value") {
		value = optmap.ToString(r.Value(fieldName))
	}
	name := attrs.String("name")
	baseID := attrs.String("id")
	base := attrs.Without("value", "id", "name")

	var out strings.Builder
	out.WriteString(r.input("hidden", optmap.Map{"name": name, "value": "", "id": baseID + "_"}))
	for _, choice := range choices {
		id := baseID + model.Camelize(choice.Value)
		radio := base.Clone()
		radio["name"] = name
		radio["id"] = id
		radio["value"] = choice.Value
		if value != "" && value == choice.Value {
			radio["checked"] = true
		}
		out.WriteString(r.input("radio", radio))
		out.WriteString(r.tags.WrapInTag("label", html.EscapeString(choice.Label), optmap.Map{"for": id}))
	}
	return out.String()
}

// normalizeChoices accepts []Choice, []model.Choice, []string, []any and maps
// (ordered by key).
func normalizeChoices(raw any) []Choice {
	switch v := raw.(type) {
	case nil:
		return nil
	case []Choice:
		return slices.Clone(v)
	case []model.Choice:
		return choiceOptions(v)
	case []string:
		out := make([]Choice, 0, len(v))
		for _, item := range v {
			out = append(out, Choice{Value: item, Label: item})
		}
		return out
	case []any:
		out := make([]Choice, 0, len(v))
		for _, item := range v {
			s := optmap.ToString(item)
			out = append(out, Choice{Value: s, Label: s})
		}
		return out
	default:
		nested, ok := optmap.AsMap(v)
		if !ok {
			return nil
		}
		out := make([]Choice, 0, len(nested))
		for _, key := range nested.Keys() {
			out = append(out, Choice{Value: key, Label: optmap.ToString(nested[key])})
		}
		return out
	}
}

func selectedValues(raw any) []string {
	switch v := raw.(type) {
	case nil:
		return nil
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			out = append(out, optmap.ToString(item))
		}
		return out
	case bool:
		if v {
			return []string{"1"}
		}
		return []string{"0"}
	default:
		return []string{fmt.Sprint(v)}
	}
}

func truthy(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != "" && v != "0" && v != "false"
	case int:
		return v != 0
	case int64:
		return v != 0
	case float64:
		return v != 0
	default:
		return true
	}
}
