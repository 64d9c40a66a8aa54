// Package model describes the fields a bound model declares so form helpers
// can pick control types and render whole input sets. Introspection sources
// (Go structs via Registry, OpenAPI schemas via pkg/openapi) all produce the
// Field descriptors defined here. Humanize and Underscore provide the name
// inflections used for labels and legends.
package model
