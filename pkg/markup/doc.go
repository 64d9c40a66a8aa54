// Package markup rewrites generated HTML fragments as node trees. Every
// transformation is best effort: when a fragment cannot be parsed or nothing
// matches, the input comes back unchanged together with ok=false.
package markup
