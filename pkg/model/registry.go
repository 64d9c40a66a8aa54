package model

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Registry is an in-memory Introspector keyed by model name. Models are
// registered explicitly or derived from Go struct types.
type Registry struct {
	mu     sync.RWMutex
	models map[string][]Field
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{models: make(map[string][]Field)}
}

// Register stores the declared fields of model, replacing earlier entries.
func (r *Registry) Register(name string, fields ...Field) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errors.New("model: model name is required")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.models[name] = slices.Clone(fields)
	return nil
}

// MustRegister mirrors Register but panics on error.
func (r *Registry) MustRegister(name string, fields ...Field) {
	if err := r.Register(name, fields...); err != nil {
		panic(err)
	}
}

// RegisterStruct derives fields from the exported fields of a struct value or
// pointer and registers them under the struct's type name. Field names are
// underscored unless a `form:"name"` tag says otherwise; `form:"-"` skips the
// field. Tag flags: required, pk, text, type=<FieldType>, length=<n>,
// choices=a|b|c.
func (r *Registry) RegisterStruct(value any) (string, error) {
	typ := reflect.TypeOf(value)
	for typ != nil && typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	if typ == nil || typ.Kind() != reflect.Struct {
		return "", fmt.Errorf("model: expected struct, got %T", value)
	}
	fields, err := structFields(typ)
	if err != nil {
		return "", err
	}
	name := typ.Name()
	if err := r.Register(name, fields...); err != nil {
		return "", err
	}
	return name, nil
}

// Fields returns the declared fields of model, or nil for unknown models.
func (r *Registry) Fields(model string) []Field {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.models[model])
}

// Models returns the registered model names, sorted.
func (r *Registry) Models() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.models))
	for name := range r.models {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

var timeType = reflect.TypeOf(time.Time{})

func structFields(typ reflect.Type) ([]Field, error) {
	fields := make([]Field, 0, typ.NumField())
	for idx := 0; idx < typ.NumField(); idx++ {
		sf := typ.Field(idx)
		tag, hasTag := sf.Tag.Lookup("form")
		if tag == "-" {
			continue
		}
		if sf.Anonymous && !hasTag {
			embedded := sf.Type
			if embedded.Kind() == reflect.Pointer {
				embedded = embedded.Elem()
			}
			if embedded.Kind() == reflect.Struct && embedded != timeType {
				nested, err := structFields(embedded)
				if err != nil {
					return nil, err
				}
				fields = append(fields, nested...)
				continue
			}
		}

		if !sf.IsExported() {
			continue
		}
		field := Field{Name: Underscore(sf.Name), Type: kindOf(sf.Type)}
		if field.Name == "id" {
			field.PrimaryKey = true
		}
		if err := applyTag(&field, tag); err != nil {
			return nil, fmt.Errorf("model: field %s: %w", sf.Name, err)
		}
		fields = append(fields, field)
	}
	return fields, nil
}

func applyTag(field *Field, tag string) error {
	if tag == "" {
		return nil
	}
	parts := strings.Split(tag, ",")
	if name := strings.TrimSpace(parts[0]); name != "" {
		field.Name = name
	}
	for _, raw := range parts[1:] {
		flag := strings.TrimSpace(raw)
		key, value, _ := strings.Cut(flag, "=")
		switch key {
		case "":
		case "required":
			field.Required = true
		case "pk":
			field.PrimaryKey = true
		case "text":
			field.Type = FieldTypeText
		case "type":
			field.Type = FieldType(value)
		case "length":
			length, err := strconv.Atoi(value)
			if err != nil {
				return fmt.Errorf("invalid length %q: %w", value, err)
			}
			field.Length = length
		case "choices":
			for _, choice := range strings.Split(value, "|") {
				if choice = strings.TrimSpace(choice); choice != "" {
					field.Choices = append(field.Choices, Choice{Value: choice, Label: Humanize(choice)})
				}
			}
		default:
			return fmt.Errorf("unknown form tag flag %q", key)
		}
	}
	return nil
}

func kindOf(typ reflect.Type) FieldType {
	for typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	if typ == timeType {
		return FieldTypeDatetime
	}
	switch typ.Kind() {
	case reflect.Bool:
		return FieldTypeBoolean
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return FieldTypeInteger
	case reflect.Float32, reflect.Float64:
		return FieldTypeFloat
	case reflect.Slice:
		if typ.Elem().Kind() == reflect.Uint8 {
			return FieldTypeBinary
		}
	}
	return FieldTypeString
}
