package boost

import (
	"github.com/goliatone/go-boostform/pkg/optmap"
)

// Create opens a form for modelName. An "inputDefaults" option applies to
// every Input until End; the form carries role="form".
func (h *Helper) Create(modelName string, opts optmap.Map) (string, error) {
	options := opts.Clone()
	if raw, ok := options.Pop("inputDefaults"); ok {
		defaults, _ := optmap.AsMap(raw)
		h.formDefaults = defaults.Clone()
	} else {
		h.formDefaults = nil
	}
	return h.renderer.Create(modelName, optmap.Merge(optmap.Map{"role": "form"}, options))
}

// End closes the open form. A "label" option renders a submit button with
// that caption first; the remaining options go to the button.
func (h *Helper) End(opts optmap.Map) (string, error) {
	options := opts.Clone()
	out := ""
	if raw, ok := options.Pop("label"); ok && raw != nil && raw != false {
		out = h.Submit(optmap.ToString(raw), options)
	}
	closing, err := h.renderer.End(nil)
	if err != nil {
		return "", err
	}
	h.formDefaults = nil
	return out + closing, nil
}
