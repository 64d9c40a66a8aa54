// Package openapi introspects model fields from OpenAPI 3 documents. Object
// schemas under components, and inline request bodies named after their
// operation, become models whose properties are the form fields.
package openapi
