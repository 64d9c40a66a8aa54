package basicform

import (
	"fmt"
	"html"
	"html/template"
	"strconv"
	"strings"

	"github.com/gobuffalo/tags/v3"
	"github.com/gobuffalo/tags/v3/form"

	"github.com/goliatone/go-boostform/pkg/htmltag"
	"github.com/goliatone/go-boostform/pkg/optmap"
)

// UseTag implements render.FormRenderer for the control tags the helpers
// emit directly: submit, submitimage (attrs["src"] is the image), hidden,
// reset and button.
func (r *Renderer) UseTag(name string, attrs optmap.Map) string {
	attrs = attrs.Clone()
	switch strings.ToLower(name) {
	case "submit":
		if !attrs.IsSet("type") {
			attrs["type"] = "submit"
		}
		return r.tags.Tag("input", attrs, "")
	case "submitimage":
		attrs["type"] = "image"
		return r.tags.Tag("input", attrs, "")
	case "hidden":
		attrs["type"] = "hidden"
		return r.tags.Tag("input", attrs, "")
	case "reset":
		attrs["type"] = "reset"
		return r.tags.Tag("input", attrs, "")
	case "button":
		text := attrs.String("text")
		if !attrs.IsSet("type") {
			attrs["type"] = "button"
		}
		return r.tags.WrapInTag("button", text, attrs.Without("text"))
	default:
		return r.tags.Tag(name, attrs, "")
	}
}

// PostLink implements render.FormRenderer. It renders a hidden form posting
// to url followed by a link that submits it. Options: method (default post,
// sent as _method), data (hidden fields), confirm (prompt text), escape
// (default true, for title) plus link attributes. onclick is replaced.
func (r *Renderer) PostLink(title, url string, opts optmap.Map) (string, error) {
	opts = opts.Clone()
	method := strings.ToUpper(opts.String("method"))
	if method == "" {
		method = "POST"
	}
	data, _ := opts.Map("data")
	confirm := opts.String("confirm")
	escape := opts.Bool("escape", true)
	attrs := opts.Without("method", "data", "confirm", "escape", "block", "onclick")

	formName := "post_" + r.newID()
	postForm := form.New(tags.Options{
		"action": url,
		"name":   formName,
		"id":     formName,
		"style":  "display:none;",
		"method": "post",
	})
	postForm.Append(template.HTML(r.UseTag("hidden", optmap.Map{"name": "_method", "value": method})))

	var secured []string
	for _, key := range data.Keys() {
		e := r.entity(key)
		postForm.Append(template.HTML(r.UseTag("hidden", optmap.Map{
			"name":  e.name(),
			"value": optmap.ToString(data[key]),
		})))
		secured = append(secured, e.dotted())
	}
	if len(r.securityKey) > 0 {
		postForm.Append(template.HTML(r.tokenFields(url, secured, nil)))
	}

	onclick := fmt.Sprintf("document.%s.submit(); event.returnValue = false; return false;", formName)
	if confirm != "" {
		onclick = fmt.Sprintf("if (confirm(%s)) { %s } event.returnValue = false; return false;", strconv.Quote(confirm), onclick)
	}
	attrs["href"] = "#"
	attrs["onclick"] = onclick

	text := title
	if escape {
		text = html.EscapeString(title)
	}
	link := tags.New("a", htmltag.Options(attrs))
	link.Append(template.HTML(text))

	return postForm.String() + link.String(), nil
}
