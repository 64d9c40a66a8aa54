// Package boost renders Bootstrap-styled forms on top of a render.FormRenderer.
//
// Helper.Input merges caller options over Bootstrap defaults, lets the
// delegate renderer emit the control and its label, and rewrites the result
// per input type: checkboxes get their label wrapped around them, date and
// time inputs are marked for a client-side picker, selects and submit buttons
// get Bootstrap classes, and validation errors render inside the input
// wrapper. Inputs renders a whole field set, PostLink renders links that
// submit through a hidden form, optionally hoisting that form into a content
// block.
//
// A Helper carries per-request state and must not be shared across requests.
package boost
