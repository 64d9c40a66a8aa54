package boost

import (
	"regexp"
	"strings"

	"github.com/goliatone/go-boostform/pkg/optmap"
)

var imageCaption = regexp.MustCompile(`\.(jpg|jpe|jpeg|gif|png|ico)$`)

// Submit renders a submit button wrapped in <div class="submit">.
//
// caption is the button text, or an image: an absolute URL, a path relative
// to the webroot when it starts with "/", else a path under the image base.
// Options: div (true, false, a class or wrapper attributes), before, after,
// type (reset for reset buttons), secure, plus button attributes.
func (h *Helper) Submit(caption string, opts optmap.Map) string {
	if caption == "" {
		caption = h.translate("Submit")
	}
	options := opts.Clone()

	var div any = true
	if options.IsSet("div") {
		div, _ = options.Pop("div")
	} else {
		delete(options, "div")
	}
	for key, value := range map[string]any{
		"class":  h.classes.Submit,
		"type":   "submit",
		"secure": false,
	} {
		if !options.Has(key) {
			options[key] = value
		}
	}

	var wrapper optmap.Map
	switch v := div.(type) {
	case bool:
		if v {
			wrapper = optmap.Map{"tag": "div", "class": h.classes.SubmitDiv}
		}
	case string:
		wrapper = optmap.Map{"tag": "div", "class": v}
	default:
		if nested, ok := optmap.AsMap(v); ok {
			wrapper = optmap.Merge(optmap.Map{"tag": "div", "class": h.classes.SubmitDiv}, nested)
		}
	}

	secure, _ := options.Pop("secure")
	if options.IsSet("name") {
		name := strings.NewReplacer("[", ".", "]", "").Replace(options.String("name"))
		if secure == true {
			h.renderer.Secure(name)
		} else {
			h.renderer.UnlockField(name)
		}
	}
	before, _ := options.Pop("before")
	after, _ := options.Pop("after")

	isURL := strings.Contains(caption, "://")
	isImage := imageCaption.MatchString(caption)
	if isURL || isImage {
		unlock := []string{"x", "y"}
		if name := options.String("name"); name != "" {
			unlock = []string{name + "_x", name + "_y"}
		}
		for _, field := range unlock {
			h.renderer.UnlockField(field)
		}
	}

	var tag string
	switch {
	case isURL:
		delete(options, "type")
		options["src"] = caption
		tag = h.renderer.UseTag("submitimage", options)
	case isImage:
		delete(options, "type")
		options["src"] = h.imageURL(caption)
		tag = h.renderer.UseTag("submitimage", options)
	default:
		options["value"] = caption
		tag = h.renderer.UseTag("submit", options)
	}

	out := optmap.ToString(before) + tag + optmap.ToString(after)
	if wrapper == nil {
		return out
	}
	return h.tags.WrapInTag(wrapper.String("tag"), out, wrapper.Without("tag"))
}

func (h *Helper) imageURL(caption string) string {
	webroot := h.webroot
	if !strings.HasSuffix(webroot, "/") {
		webroot += "/"
	}
	if strings.HasPrefix(caption, "/") {
		return webroot + strings.Trim(caption, "/")
	}
	return webroot + strings.TrimPrefix(h.imageBase, "/") + caption
}
