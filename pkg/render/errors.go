package render

import (
	"slices"
	"strings"
)

// ErrorSet holds validation messages keyed by dotted field path
// ("Widget.name"). Paths given as JSON pointers ("/Widget/name") or with index
// brackets ("Widget.tags[0]") are normalised on construction.
type ErrorSet struct {
	fields map[string][]string
}

// NewErrorSet builds an ErrorSet, trimming and de-duplicating messages and
// dropping fields without any.
func NewErrorSet(payload map[string][]string) ErrorSet {
	set := ErrorSet{fields: make(map[string][]string, len(payload))}
	for rawPath, messages := range payload {
		path := NormalizeFieldPath(rawPath)
		if path == "" {
			continue
		}
		merged := normalizeMessages(append(slices.Clone(set.fields[path]), messages...))
		if len(merged) == 0 {
			continue
		}
		set.fields[path] = merged
	}
	return set
}

// Messages returns the messages recorded for path, trying the model-qualified
// form first when path carries no model prefix.
func (s ErrorSet) Messages(model, path string) []string {
	if len(s.fields) == 0 {
		return nil
	}
	path = NormalizeFieldPath(path)
	if model != "" && !strings.Contains(path, ".") {
		if messages, ok := s.fields[model+"."+path]; ok {
			return slices.Clone(messages)
		}
	}
	if messages, ok := s.fields[path]; ok {
		return slices.Clone(messages)
	}
	if model != "" {
		if trimmed, ok := strings.CutPrefix(path, model+"."); ok {
			return slices.Clone(s.fields[trimmed])
		}
	}
	return nil
}

// Empty reports whether the set holds no messages.
func (s ErrorSet) Empty() bool {
	return len(s.fields) == 0
}

// Paths returns the recorded field paths, sorted.
func (s ErrorSet) Paths() []string {
	paths := make([]string, 0, len(s.fields))
	for path := range s.fields {
		paths = append(paths, path)
	}
	slices.Sort(paths)
	return paths
}

// NormalizeFieldPath converts JSON pointer and bracket notations into the
// dotted form used by field names.
func NormalizeFieldPath(raw string) string {
	path := strings.TrimSpace(raw)
	path = strings.TrimPrefix(path, "$.")
	path = strings.TrimPrefix(path, "/")
	path = strings.ReplaceAll(path, "/", ".")
	path = strings.ReplaceAll(path, "[", ".")
	path = strings.ReplaceAll(path, "]", "")
	path = strings.ReplaceAll(path, "~1", "/")
	path = strings.ReplaceAll(path, "~0", "~")
	return strings.Trim(path, ".")
}

func normalizeMessages(messages []string) []string {
	if len(messages) == 0 {
		return nil
	}

	out := make([]string, 0, len(messages))
	seen := make(map[string]struct{}, len(messages))

	for _, message := range messages {
		trimmed := strings.TrimSpace(message)
		if trimmed == "" {
			continue
		}
		if _, exists := seen[trimmed]; exists {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}

	if len(out) == 0 {
		return nil
	}
	return out
}
