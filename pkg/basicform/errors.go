package basicform

import (
	"html"
	"strings"

	"github.com/goliatone/go-boostform/pkg/optmap"
)

// FieldHasError implements render.FormRenderer.
func (r *Renderer) FieldHasError(fieldName string) bool {
	e := r.entity(fieldName)
	return len(r.errors.Messages(e.model, strings.Join(e.path, "."))) > 0
}

// RenderError implements render.FormRenderer. opts may carry "text" to
// replace the recorded messages, "escape" (default true) and "attributes"
// with "wrap" (default div, false for bare text) and "class" (default
// error-message). Several messages render as a list.
func (r *Renderer) RenderError(fieldName string, opts optmap.Map) (string, bool) {
	e := r.entity(fieldName)
	messages := r.errors.Messages(e.model, strings.Join(e.path, "."))
	if len(messages) == 0 {
		return "", false
	}
	if text := opts.String("text"); text != "" {
		messages = []string{text}
	}
	escape := opts.Bool("escape", true)
	for idx, message := range messages {
		if escape {
			messages[idx] = html.EscapeString(message)
		}
	}

	var body string
	if len(messages) == 1 {
		body = messages[0]
	} else {
		var list strings.Builder
		for _, message := range messages {
			list.WriteString(r.tags.WrapInTag("li", message, nil))
		}
		body = r.tags.WrapInTag("ul", list.String(), nil)
	}

	attrs, _ := opts.Map("attributes")
	attrs = attrs.Clone()
	wrap, present := attrs["wrap"]
	if present && (wrap == false || wrap == nil) {
		return body, true
	}
	tag := optmap.ToString(wrap)
	if tag == "" {
		tag = "div"
	}
	if !attrs.Has("class") {
		attrs["class"] = "error-message"
	}
	return r.tags.WrapInTag(tag, body, attrs.Without("wrap")), true
}
