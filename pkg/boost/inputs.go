package boost

import (
	"html"
	"slices"
	"strings"

	"github.com/goliatone/go-boostform/pkg/model"
	"github.com/goliatone/go-boostform/pkg/optmap"
)

// FieldEntry is one field of an input set. Options is usually an
// optmap.Map; an entry without a name whose Options is a string names the
// field instead.
type FieldEntry struct {
	Name    string
	Options any
}

// FieldList is an ordered field specification for Inputs.
type FieldList []FieldEntry

// Fields builds a FieldList from names, each optionally followed by its
// option map: Fields("title", optmap.Map{"label": "Title"}, "body").
func Fields(items ...any) FieldList {
	out := make(FieldList, 0, len(items))
	for _, item := range items {
		switch v := item.(type) {
		case string:
			out = append(out, FieldEntry{Name: v})
		case FieldEntry:
			out = append(out, v)
		default:
			opts, ok := optmap.AsMap(v)
			if !ok || len(out) == 0 || out[len(out)-1].Options != nil {
				continue
			}
			out[len(out)-1].Options = opts
		}
	}
	return out
}

// Inputs renders an input for every field of fields minus blacklist,
// optionally inside a fieldset with a legend.
//
// fields may be nil (every field of the bound model), a FieldList, a list of
// names or a map of name to options (rendered in name order). Any other value
// is a legend shorthand: Inputs("Details", nil, nil) renders the model fields
// in a fieldset titled Details. opts may carry "legend" and "fieldset"; a
// legend of true is replaced by "New Model" or "Edit Model" depending on the
// current action.
func (h *Helper) Inputs(fields any, blacklist []string, opts optmap.Map) (string, error) {
	var fieldset, legend any = nil, false
	modelName := h.renderer.Model()
	modelFields := h.modelFields(modelName)

	var entries FieldList
	switch v := fields.(type) {
	case nil:
	case FieldList:
		entries = slices.Clone(v)
	case []FieldEntry:
		entries = slices.Clone(v)
	case []string:
		for _, name := range v {
			entries = append(entries, FieldEntry{Name: name})
		}
	default:
		if m, ok := optmap.AsMap(v); ok {
			for _, key := range m.Keys() {
				entries = append(entries, FieldEntry{Name: key, Options: m[key]})
			}
			break
		}
		legend = v
		if b, ok := v.(bool); ok {
			fieldset = b
		} else {
			fieldset = true
		}
	}

	entries, legacyLegend, legacyFieldset := extractLegacy(entries, modelFields)
	if legacyLegend != nil {
		legend = *legacyLegend
	}
	if legacyFieldset != nil {
		fieldset = *legacyFieldset
	}
	if opts.IsSet("legend") {
		legend = opts.Get("legend")
	}
	if opts.IsSet("fieldset") {
		fieldset = opts.Get("fieldset")
	}
	if fieldset == nil {
		fieldset = truthy(legend)
	}

	if len(entries) == 0 {
		for _, name := range modelFields {
			entries = append(entries, FieldEntry{Name: name})
		}
	}

	if legend == true {
		legend = h.autoLegend(modelName)
	}

	var out strings.Builder
	for _, entry := range entries {
		name, fieldOpts, ok := entry.resolve()
		if !ok || blacklisted(name, blacklist) {
			continue
		}
		rendered, err := h.Input(name, fieldOpts)
		if err != nil {
			return "", err
		}
		out.WriteString(rendered)
	}

	if !truthy(fieldset) {
		return out.String(), nil
	}
	body := out.String()
	if text := optmap.ToString(legend); truthy(legend) && text != "" {
		if opts.Bool("escape", true) {
			text = html.EscapeString(text)
		}
		body = h.tags.WrapInTag("legend", h.clean(text), nil) + body
	}
	attrs := optmap.Map{}
	if class, ok := fieldset.(string); ok {
		attrs["class"] = class
	}
	return h.tags.WrapInTag("fieldset", body, attrs), nil
}

func (h *Helper) modelFields(modelName string) []string {
	if modelName == "" || h.introspector == nil {
		return nil
	}
	return model.Names(h.introspector.Fields(modelName))
}

// autoLegend titles the input set after the model, as "Edit Model" when the
// current action updates or edits and "New Model" otherwise.
func (h *Helper) autoLegend(modelName string) string {
	format := "New %s"
	if h.request != nil {
		action := h.request.Action()
		if strings.Contains(action, "update") || strings.Contains(action, "edit") {
			format = "Edit %s"
		}
	}
	name := model.Humanize(model.Underscore(modelName))
	return h.translate(format, h.translate(name))
}

// extractLegacy pulls legend and fieldset entries out of the field list
// unless the model declares fields of the same name.
func extractLegacy(entries FieldList, modelFields []string) (FieldList, *any, *any) {
	var legend, fieldset *any
	out := entries[:0:0]
	for _, entry := range entries {
		switch {
		case entry.Name == "legend" && !slices.Contains(modelFields, "legend"):
			value := entry.Options
			legend = &value
		case entry.Name == "fieldset" && !slices.Contains(modelFields, "fieldset") && entry.Options != nil:
			value := entry.Options
			fieldset = &value
		default:
			out = append(out, entry)
		}
	}
	return out, legend, fieldset
}

func (e FieldEntry) resolve() (string, optmap.Map, bool) {
	name := strings.TrimSpace(e.Name)
	if name == "" {
		s, ok := e.Options.(string)
		if !ok || strings.TrimSpace(s) == "" {
			return "", nil, false
		}
		return strings.TrimSpace(s), optmap.Map{}, true
	}
	opts, ok := optmap.AsMap(e.Options)
	if !ok {
		opts = optmap.Map{}
	}
	return name, opts, true
}

// blacklisted matches the full field name or its last segment.
func blacklisted(name string, blacklist []string) bool {
	if len(blacklist) == 0 {
		return false
	}
	last := name
	if idx := strings.LastIndex(name, "."); idx >= 0 {
		last = name[idx+1:]
	}
	return slices.Contains(blacklist, name) || slices.Contains(blacklist, last)
}
