package view

import (
	"net/http"
	"path"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/goliatone/go-boostform/pkg/render"
)

// StaticRequest is a fixed action name.
type StaticRequest string

var _ render.Request = StaticRequest("")

// Action implements render.Request.
func (s StaticRequest) Action() string {
	return string(s)
}

// RouteRequest derives the action from a chi-routed request.
type RouteRequest struct {
	req   *http.Request
	param string
}

var _ render.Request = (*RouteRequest)(nil)

// RequestOption configures a RouteRequest.
type RequestOption func(*RouteRequest)

// WithActionParam names the chi URL parameter holding the action
// (default "action").
func WithActionParam(name string) RequestOption {
	return func(r *RouteRequest) {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			r.param = trimmed
		}
	}
}

// FromHTTP wraps r.
func FromHTTP(r *http.Request, options ...RequestOption) *RouteRequest {
	out := &RouteRequest{req: r, param: "action"}
	for _, opt := range options {
		if opt != nil {
			opt(out)
		}
	}
	return out
}

// Action returns the action URL parameter when the route declares one,
// otherwise the last static segment of the matched route pattern, otherwise
// the last segment of the request path.
func (r *RouteRequest) Action() string {
	if r == nil || r.req == nil {
		return ""
	}
	if action := chi.URLParam(r.req, r.param); action != "" {
		return action
	}
	if rctx := chi.RouteContext(r.req.Context()); rctx != nil {
		if segment := lastStaticSegment(rctx.RoutePattern()); segment != "" {
			return segment
		}
	}
	if r.req.URL == nil {
		return ""
	}
	return lastStaticSegment(r.req.URL.Path)
}

func lastStaticSegment(pattern string) string {
	segments := strings.Split(strings.Trim(path.Clean("/"+pattern), "/"), "/")
	for i := len(segments) - 1; i >= 0; i-- {
		segment := segments[i]
		if segment == "" || segment == "*" || strings.HasPrefix(segment, "{") {
			continue
		}
		return segment
	}
	return ""
}
