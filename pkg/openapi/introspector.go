package openapi

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-boostform/pkg/model"
	"github.com/goliatone/go-boostform/pkg/render"
)

const (
	orderExtensionKey   = "x-boostform-order"
	typeExtensionKey    = "x-boostform-type"
	primaryExtensionKey = "x-boostform-primary"
)

// Introspector serves model fields read from an OpenAPI document.
type Introspector struct {
	models map[string][]model.Field
}

var _ render.Introspector = (*Introspector)(nil)

// FromData introspects an OpenAPI document held in memory (JSON or YAML).
func FromData(ctx context.Context, data []byte, options ...Option) (*Introspector, error) {
	return fromData(ctx, data, newConfig(options))
}

func fromData(ctx context.Context, data []byte, cfg config) (*Introspector, error) {
	if len(data) == 0 {
		return nil, errors.New("openapi: document payload is empty")
	}
	loader := &openapi3.Loader{
		Context:               ctx,
		IsExternalRefsAllowed: cfg.externalRefs,
	}
	doc, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("openapi: load document: %w", err)
	}
	if cfg.validate {
		if err := doc.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
			return nil, fmt.Errorf("openapi: validate: %w", err)
		}
	}
	return fromDocument(doc), nil
}

func fromDocument(doc *openapi3.T) *Introspector {
	out := &Introspector{models: make(map[string][]model.Field)}

	if doc.Components != nil {
		for name, ref := range doc.Components.Schemas {
			if fields := objectFields(ref); fields != nil {
				out.models[name] = fields
			}
		}
	}

	if doc.Paths != nil {
		for _, item := range doc.Paths.Map() {
			if item == nil {
				continue
			}
			for _, operation := range item.Operations() {
				out.collectRequestBody(operation)
			}
		}
	}
	return out
}

// collectRequestBody registers inline request body schemas under the
// operation id. Referenced schemas are already known from components.
func (i *Introspector) collectRequestBody(operation *openapi3.Operation) {
	if operation == nil || operation.RequestBody == nil || operation.RequestBody.Value == nil {
		return
	}
	content := operation.RequestBody.Value.Content
	var schema *openapi3.SchemaRef
	for _, mediaType := range []string{"application/x-www-form-urlencoded", "multipart/form-data", "application/json"} {
		if mt, ok := content[mediaType]; ok && mt != nil {
			schema = mt.Schema
			break
		}
	}
	if schema == nil {
		return
	}

	name := refName(schema.Ref)
	if name == "" {
		name = model.Camelize(operation.OperationID)
	}
	if name == "" {
		return
	}
	if _, exists := i.models[name]; exists {
		return
	}
	if fields := objectFields(schema); fields != nil {
		i.models[name] = fields
	}
}

// Fields implements render.Introspector. Unknown models yield nil.
func (i *Introspector) Fields(name string) []model.Field {
	if i == nil {
		return nil
	}
	fields, ok := i.models[name]
	if !ok {
		return nil
	}
	return slices.Clone(fields)
}

// Models lists the introspected model names, sorted.
func (i *Introspector) Models() []string {
	if i == nil {
		return nil
	}
	names := make([]string, 0, len(i.models))
	for name := range i.models {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func refName(ref string) string {
	if ref == "" {
		return ""
	}
	idx := strings.LastIndex(ref, "/")
	return ref[idx+1:]
}

func objectFields(ref *openapi3.SchemaRef) []model.Field {
	if ref == nil || ref.Value == nil {
		return nil
	}
	schema := ref.Value
	if len(schema.Properties) == 0 {
		return nil
	}
	if kind := firstSchemaType(schema.Type); kind != "" && kind != openapi3.TypeObject {
		return nil
	}

	required := make(map[string]struct{}, len(schema.Required))
	for _, name := range schema.Required {
		required[name] = struct{}{}
	}

	fields := make([]model.Field, 0, len(schema.Properties))
	for _, name := range propertyOrder(schema) {
		property := schema.Properties[name]
		if property == nil || property.Value == nil {
			continue
		}
		kind, ok := fieldType(property.Value)
		if !ok {
			continue
		}
		field := model.Field{
			Name:       name,
			Type:       kind,
			PrimaryKey: name == "id" || boolExtension(property.Value.Extensions, primaryExtensionKey),
			Choices:    choices(property.Value.Enum),
		}
		if _, ok := required[name]; ok {
			field.Required = true
		}
		if property.Value.MaxLength != nil {
			field.Length = int(*property.Value.MaxLength)
		}
		fields = append(fields, field)
	}
	return fields
}

// propertyOrder lists the names given by x-boostform-order first, then the
// remaining properties alphabetically.
func propertyOrder(schema *openapi3.Schema) []string {
	seen := make(map[string]struct{}, len(schema.Properties))
	var out []string
	if raw, ok := schema.Extensions[orderExtensionKey].([]any); ok {
		for _, item := range raw {
			name, ok := item.(string)
			if !ok {
				continue
			}
			if _, exists := schema.Properties[name]; !exists {
				continue
			}
			if _, dup := seen[name]; dup {
				continue
			}
			seen[name] = struct{}{}
			out = append(out, name)
		}
	}
	rest := make([]string, 0, len(schema.Properties))
	for name := range schema.Properties {
		if _, ok := seen[name]; !ok {
			rest = append(rest, name)
		}
	}
	slices.Sort(rest)
	return append(out, rest...)
}

func fieldType(schema *openapi3.Schema) (model.FieldType, bool) {
	if override, ok := schema.Extensions[typeExtensionKey].(string); ok && override != "" {
		return model.FieldType(strings.ToLower(override)), true
	}
	switch firstSchemaType(schema.Type) {
	case openapi3.TypeString, "":
		switch schema.Format {
		case "date":
			return model.FieldTypeDate, true
		case "date-time":
			return model.FieldTypeDatetime, true
		case "time":
			return model.FieldTypeTime, true
		case "binary", "byte":
			return model.FieldTypeBinary, true
		case "textarea", "text":
			return model.FieldTypeText, true
		}
		return model.FieldTypeString, true
	case openapi3.TypeInteger:
		return model.FieldTypeInteger, true
	case openapi3.TypeNumber:
		return model.FieldTypeFloat, true
	case openapi3.TypeBoolean:
		return model.FieldTypeBoolean, true
	default:
		return "", false
	}
}

func firstSchemaType(types *openapi3.Types) string {
	if types == nil {
		return ""
	}
	values := types.Slice()
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

func choices(values []any) []model.Choice {
	if len(values) == 0 {
		return nil
	}
	out := make([]model.Choice, 0, len(values))
	for _, value := range values {
		if value == nil {
			continue
		}
		raw := fmt.Sprint(value)
		out = append(out, model.Choice{Value: raw, Label: model.Humanize(raw)})
	}
	return out
}

func boolExtension(extensions map[string]any, key string) bool {
	value, ok := extensions[key].(bool)
	return ok && value
}
