// Package template defines the template engine seam used to render pages that
// call the form helpers. The gotemplate subpackage implements it with pongo2.
package template
