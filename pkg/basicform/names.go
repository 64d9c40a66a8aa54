package basicform

import (
	"strings"

	"github.com/goliatone/go-boostform/pkg/model"
	"github.com/goliatone/go-boostform/pkg/optmap"
)

// entity is a field reference resolved against the bound model.
type entity struct {
	model string
	path  []string
}

func (r *Renderer) entity(fieldName string) entity {
	parts := strings.Split(strings.Trim(strings.TrimSpace(fieldName), "."), ".")
	if len(parts) == 1 {
		return entity{model: r.model, path: parts}
	}
	return entity{model: parts[0], path: parts[1:]}
}

// field is the last path segment.
func (e entity) field() string {
	return e.path[len(e.path)-1]
}

// dotted returns "Model.field".
func (e entity) dotted() string {
	if e.model == "" {
		return strings.Join(e.path, ".")
	}
	return e.model + "." + strings.Join(e.path, ".")
}

// name returns the control name: data[Model][field].
func (e entity) name() string {
	var b strings.Builder
	b.WriteString("data")
	if e.model != "" {
		b.WriteString("[" + e.model + "]")
	}
	for _, part := range e.path {
		b.WriteString("[" + part + "]")
	}
	return b.String()
}

// id returns the DOM id: ModelField.
func (e entity) id() string {
	var b strings.Builder
	b.WriteString(model.Camelize(e.model))
	for _, part := range e.path {
		b.WriteString(model.Camelize(part))
	}
	return b.String()
}

// Value implements render.FormRenderer. Dotted keys win over nested maps.
func (r *Renderer) Value(fieldName string) any {
	if len(r.values) == 0 {
		return nil
	}
	e := r.entity(fieldName)
	if value, ok := r.values[e.dotted()]; ok {
		return value
	}
	var current any = map[string]any(r.values)
	keys := e.path
	if e.model != "" {
		keys = append([]string{e.model}, e.path...)
	}
	for _, key := range keys {
		nested, ok := optmap.AsMap(current)
		if !ok {
			return nil
		}
		current, ok = nested[key]
		if !ok {
			return nil
		}
	}
	return current
}

func (r *Renderer) fieldDef(e entity) (model.Field, bool) {
	if r.introspector == nil || e.model == "" {
		return model.Field{}, false
	}
	return model.Lookup(r.introspector.Fields(e.model), e.field())
}

func (r *Renderer) modelDeclares(e entity) (declared, known bool) {
	if r.introspector == nil || e.model == "" {
		return false, false
	}
	fields := r.introspector.Fields(e.model)
	if len(fields) == 0 {
		return false, false
	}
	_, ok := model.Lookup(fields, e.field())
	return ok, true
}
