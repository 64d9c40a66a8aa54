// Package optmap implements the option maps accepted by the form helpers.
//
// A Map mixes layout options understood by the helpers (div, label, wrapInput,
// ...) with free-form HTML attributes. Keys nobody recognises pass through to
// the rendered element untouched.
package optmap

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Map is a per-call option map.
type Map map[string]any

// Has reports whether key is present, even when its value is nil.
func (m Map) Has(key string) bool {
	if m == nil {
		return false
	}
	_, ok := m[key]
	return ok
}

// IsSet mirrors PHP's isset: present and not nil.
func (m Map) IsSet(key string) bool {
	if m == nil {
		return false
	}
	value, ok := m[key]
	return ok && value != nil
}

// Get returns the raw value stored under key.
func (m Map) Get(key string) any {
	if m == nil {
		return nil
	}
	return m[key]
}

// String returns the scalar value under key formatted as a string. Maps,
// slices, nil and booleans yield "".
func (m Map) String(key string) string {
	return ToString(m.Get(key))
}

// Bool returns the boolean under key, or fallback when it is absent or not a
// boolean.
func (m Map) Bool(key string, fallback bool) bool {
	if value, ok := m.Get(key).(bool); ok {
		return value
	}
	return fallback
}

// IsFalse reports whether key holds the literal false.
func (m Map) IsFalse(key string) bool {
	value, ok := m.Get(key).(bool)
	return ok && !value
}

// Map returns the nested map under key.
func (m Map) Map(key string) (Map, bool) {
	return AsMap(m.Get(key))
}

// Clone returns a deep copy of the map; nested maps are cloned, other values
// are shared.
func (m Map) Clone() Map {
	if m == nil {
		return Map{}
	}
	out := make(Map, len(m))
	for key, value := range m {
		if nested, ok := AsMap(value); ok {
			out[key] = nested.Clone()
			continue
		}
		out[key] = value
	}
	return out
}

// Without returns a clone of m minus keys.
func (m Map) Without(keys ...string) Map {
	out := m.Clone()
	for _, key := range keys {
		delete(out, key)
	}
	return out
}

// Pop removes key from m and returns its value.
func (m Map) Pop(key string) (any, bool) {
	if m == nil {
		return nil, false
	}
	value, ok := m[key]
	delete(m, key)
	return value, ok
}

// Keys returns the sorted keys of m.
func (m Map) Keys() []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}

// AddClass appends class to the class list stored under "class".
func (m Map) AddClass(class string) Map {
	out := m.Clone()
	class = strings.TrimSpace(class)
	if class == "" {
		return out
	}
	current := strings.TrimSpace(out.String("class"))
	if current == "" {
		out["class"] = class
		return out
	}
	out["class"] = current + " " + class
	return out
}

// AsMap coerces Map and map[string]any values.
func AsMap(value any) (Map, bool) {
	switch v := value.(type) {
	case Map:
		return v, v != nil
	case map[string]any:
		return Map(v), v != nil
	case map[string]string:
		out := make(Map, len(v))
		for key, item := range v {
			out[key] = item
		}
		return out, true
	default:
		return nil, false
	}
}

// ToString formats scalar values. Booleans, nil and containers produce "".
func ToString(value any) string {
	switch v := value.(type) {
	case nil, bool:
		return ""
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case Map, map[string]any, []any, []string:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

// FromPairs builds a map from alternating key/value arguments, the calling
// convention used by template functions. A trailing key without value is
// ignored, as are non-string keys.
func FromPairs(pairs ...any) Map {
	out := make(Map, len(pairs)/2)
	for idx := 0; idx+1 < len(pairs); idx += 2 {
		key, ok := pairs[idx].(string)
		if !ok || key == "" {
			continue
		}
		out[key] = pairs[idx+1]
	}
	return out
}
