package boost

import (
	"strings"

	"github.com/goliatone/go-boostform/pkg/markup"
	"github.com/goliatone/go-boostform/pkg/optmap"
	"github.com/goliatone/go-boostform/pkg/render"
)

// helperKeys are understood by the helper only and never reach the delegate.
var helperKeys = []string{"wrapInput", "checkboxDiv", "beforeInput", "afterInput", "errorClass"}

// inputCall is the resolved state of a single Input call. Each call builds
// its own, so nested renders never observe each other.
type inputCall struct {
	field     string
	options   optmap.Map
	inputType string
	// checkboxID is the id the delegate gave the field's own checkbox.
	checkboxID string
}

// beforeMarker stands in for the before option while the delegate output is
// rewritten, so caller markup never takes part in the rewrite.
const beforeMarker = "<!--boostform:before-->"

// fallbackOptions are the lowest-precedence options of every input.
func (h *Helper) fallbackOptions() optmap.Map {
	return optmap.Map{
		"error": optmap.Map{
			"attributes": optmap.Map{
				"wrap":  "span",
				"class": h.classes.Error,
			},
		},
		"wrapInput":   optmap.Map{"tag": "div"},
		"checkboxDiv": h.classes.CheckboxDiv,
		"beforeInput": "",
		"afterInput":  "",
		"errorClass":  h.classes.ErrorClass,
	}
}

// inputDefaultSettings are the component defaults overlaid with the helper's
// and the open form's input defaults. The overlay is shallow: a default
// replaces the component value for the same key.
func (h *Helper) inputDefaultSettings() optmap.Map {
	settings := optmap.Map{
		"div":       h.classes.Div,
		"label":     optmap.Map{"class": h.classes.Label},
		"wrapInput": h.classes.WrapInput,
		"class":     h.classes.Input,
	}
	for _, layer := range []optmap.Map{h.inputDefaults, h.formDefaults} {
		for key, value := range layer {
			settings[key] = value
		}
	}
	return settings
}

// NormalizeOptions returns the complete option map Input works from:
// fallback defaults, then input defaults, then opts. A string label becomes
// {text: label}; a missing, nil or false label turns the label off. A true
// label keeps the default label attributes and lets the delegate derive the
// text from the field name.
func (h *Helper) NormalizeOptions(opts optmap.Map) optmap.Map {
	caller := opts.Clone()
	switch label := caller["label"].(type) {
	case nil:
		caller["label"] = false
	case bool:
		if label {
			caller["label"] = optmap.Map{}
		} else {
			caller["label"] = false
		}
	case string:
		caller["label"] = optmap.Map{"text": label}
	default:
		if nested, ok := optmap.AsMap(label); ok {
			caller["label"] = nested
		} else {
			caller["label"] = optmap.Map{"text": optmap.ToString(label)}
		}
	}
	return optmap.Merge(h.fallbackOptions(), h.inputDefaultSettings(), caller)
}

// delegateOptions strips helper-only keys and turns off the delegate's own
// error output.
func delegateOptions(options optmap.Map) optmap.Map {
	out := options.Without(helperKeys...)
	out["error"] = false
	return out
}

// Input renders one labelled, Bootstrap wrapped control for fieldName
// ("Model.field" or a bare field of the open form). Errors of the delegate
// renderer are returned unchanged.
func (h *Helper) Input(fieldName string, opts optmap.Map) (string, error) {
	call := &inputCall{
		field:   fieldName,
		options: h.NormalizeOptions(opts),
	}
	delegated := delegateOptions(call.options)
	before := delegated.String("before")
	if before != "" {
		delegated["before"] = beforeMarker
	}
	out, err := h.renderer.RenderInput(fieldName, delegated, h.inputHooks(call))
	if err != nil {
		return "", err
	}
	if call.inputType == "checkbox" {
		relocated, ok := markup.RelocateCheckboxLabel(out, call.checkboxID, markup.CheckboxClasses{
			Label: h.classes.CheckboxLabel,
			Input: h.classes.CheckboxInput,
		})
		if ok {
			out = relocated
		} else {
			h.logger.Debug("checkbox label left in place", "field", fieldName, "id", call.checkboxID)
		}
	}
	if before != "" {
		out = strings.Replace(out, beforeMarker, before, 1)
	}
	return out, nil
}

func (h *Helper) inputHooks(call *inputCall) render.InputHooks {
	return render.InputHooks{
		Wrapper: func(inputType string, opts optmap.Map) optmap.Map {
			call.inputType = inputType
			return h.outerWrapper(call, opts)
		},
		Control: func(fieldName, inputType string, opts optmap.Map) (string, bool, error) {
			if !isDateType(inputType) {
				return "", false, nil
			}
			out, err := h.dateTimeControl(fieldName, inputType, opts)
			return out, err == nil, err
		},
		Decorate: func(inputType, control string) (string, error) {
			if call.inputType == "" {
				call.inputType = inputType
			}
			return h.decorate(call, inputType, control), nil
		},
		CheckboxOption: func(option string, attrs optmap.Map) string {
			out, _ := markup.InlineCheckboxOption(option, attrs.String("class"))
			return out
		},
	}
}

// outerWrapper resolves the outer div. A div given as a map starts without
// the delegate's default class; the error class is added while the field
// fails validation.
func (h *Helper) outerWrapper(call *inputCall, opts optmap.Map) optmap.Map {
	merged := optmap.Merge(optmap.Map{"div": optmap.Map{"class": nil}}, opts)
	wrapper := h.renderer.WrapperOptions(call.field, merged)
	if wrapper == nil {
		return nil
	}
	if h.renderer.FieldHasError(call.field) {
		wrapper = wrapper.AddClass(call.options.String("errorClass"))
	}
	return wrapper
}

// decorate applies the per-type class rewrites and builds the inner wrapper
// holding beforeInput, the control, afterInput and the error message.
func (h *Helper) decorate(call *inputCall, inputType, control string) string {
	options := call.options
	switch {
	case isDateType(inputType):
		control = h.rewrite(call, control, func(src string) (string, bool) {
			return markup.AppendClass(src, markup.All(markup.Input(), markup.Not(markup.Input("hidden"))), h.classes.Picker, inputType)
		})
	case inputType == "select":
		control = h.rewrite(call, control, func(src string) (string, bool) {
			return markup.AppendClass(src, markup.Element("select"), h.classes.Select)
		})
	case inputType == "submit":
		control = h.rewrite(call, control, func(src string) (string, bool) {
			return markup.SetClass(src, markup.Input("submit"), h.classes.Submit)
		})
	case inputType == "checkbox":
		call.checkboxID, _ = markup.AttrOf(control, markup.Input("checkbox"), "id")
		control = h.rewrite(call, control, func(src string) (string, bool) {
			return markup.SetClass(src, markup.Input("checkbox"), h.classes.CheckboxInput)
		})
		if div, ok := options["checkboxDiv"]; ok && div != false && div != nil {
			control = h.tags.WrapInDiv(optmap.ToString(div), control)
		}
	}

	var out strings.Builder
	out.WriteString(h.clean(options.String("beforeInput")))
	out.WriteString(control)
	out.WriteString(h.clean(options.String("afterInput")))
	out.WriteString(h.errorMessage(call, inputType))

	inner := h.renderer.WrapperOptions(call.field, optmap.Map{
		"type": inputType,
		"div":  options.Get("wrapInput"),
	})
	if len(inner) == 0 {
		return out.String()
	}
	tag := inner.String("tag")
	return h.tags.WrapInTag(tag, out.String(), inner.Without("tag"))
}

func (h *Helper) rewrite(call *inputCall, src string, fn func(string) (string, bool)) string {
	out, ok := fn(src)
	if !ok {
		h.logger.Debug("control markup left unchanged", "field", call.field, "type", call.inputType)
		return src
	}
	return out
}

// errorMessage renders the field error unless the input is hidden or error
// is false. errorMessage=false keeps the error state but drops the text.
func (h *Helper) errorMessage(call *inputCall, inputType string) string {
	if inputType == "hidden" {
		return ""
	}
	options := call.options
	raw := options.Get("error")
	if raw == false {
		return ""
	}
	errorOpts := optmap.Map{}
	switch v := raw.(type) {
	case string:
		errorOpts["text"] = v
	default:
		if nested, ok := optmap.AsMap(v); ok {
			errorOpts = nested
		}
	}
	msg, ok := h.renderer.RenderError(call.field, errorOpts)
	if !ok || !options.Bool("errorMessage", true) {
		return ""
	}
	return msg
}

func isDateType(inputType string) bool {
	switch inputType {
	case "date", "datetime", "time":
		return true
	}
	return false
}
