package boost

import (
	"github.com/goliatone/go-boostform/pkg/markup"
	"github.com/goliatone/go-boostform/pkg/optmap"
)

// PostLink renders a link submitting a hidden form with the given method.
// The tracked secured fields of the enclosing form are left untouched. With
// a "block" option the hidden form is appended to that content block and
// only the link is returned.
func (h *Helper) PostLink(title, url string, opts optmap.Map) (string, error) {
	options := opts.Clone()
	block := ""
	if raw, ok := options.Pop("block"); ok {
		block = optmap.ToString(raw)
	}

	saved := h.renderer.Fields()
	h.renderer.SetFields(nil)
	out, err := h.renderer.PostLink(title, url, options)
	h.renderer.SetFields(saved)
	if err != nil {
		return "", err
	}

	if block == "" || h.blocks == nil {
		return out, nil
	}
	form, rest, ok := markup.ExtractElement(out, "form")
	if !ok {
		h.logger.Debug("post link has no form to move", "block", block)
		return out, nil
	}
	h.blocks.Append(block, form)
	return rest, nil
}

// Fetch returns the content collected in block.
func (h *Helper) Fetch(block string) string {
	if h.blocks == nil {
		return ""
	}
	return h.blocks.Fetch(block)
}
