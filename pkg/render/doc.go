// Package render declares the collaborators the Bootstrap form helper consumes
// as black boxes: the delegate form renderer, the HTML tag emitter, model
// introspection, the request context, the deferred content-block registry and
// translations. Default implementations live in pkg/basicform, pkg/htmltag,
// pkg/model, pkg/openapi and pkg/view.
package render
