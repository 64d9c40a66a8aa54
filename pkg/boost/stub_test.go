package boost_test

import (
	"github.com/goliatone/go-boostform/pkg/basicform"
	"github.com/goliatone/go-boostform/pkg/optmap"
)

// stubRenderer wraps the basic renderer and records what PostLink sees.
// Like a real delegate it secures the fields of the form it emits.
type stubRenderer struct {
	*basicform.Renderer
	postLinkFields [][]string
	postLinkErr    error
}

func newStubRenderer(modelName string) *stubRenderer {
	return &stubRenderer{Renderer: newRenderer(modelName)}
}

func (s *stubRenderer) PostLink(title, url string, opts optmap.Map) (string, error) {
	s.postLinkFields = append(s.postLinkFields, append([]string{}, s.Fields()...))
	s.Secure("Post.secret")
	if s.postLinkErr != nil {
		return "", s.postLinkErr
	}
	return s.Renderer.PostLink(title, url, opts)
}
