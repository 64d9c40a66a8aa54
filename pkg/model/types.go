package model

// FieldType is the storage-level kind of a model field. Form helpers map it to
// a control type (boolean becomes a checkbox, text a textarea, ...).
type FieldType string

const (
	FieldTypeString   FieldType = "string"
	FieldTypeText     FieldType = "text"
	FieldTypeInteger  FieldType = "integer"
	FieldTypeFloat    FieldType = "float"
	FieldTypeBoolean  FieldType = "boolean"
	FieldTypeDate     FieldType = "date"
	FieldTypeDatetime FieldType = "datetime"
	FieldTypeTime     FieldType = "time"
	FieldTypeBinary   FieldType = "binary"
)

// Choice is one enumerated value a field accepts.
type Choice struct {
	Value string `json:"value" yaml:"value"`
	Label string `json:"label,omitempty" yaml:"label,omitempty"`
}

// Field describes a declared model field.
type Field struct {
	Name       string    `json:"name" yaml:"name"`
	Type       FieldType `json:"type" yaml:"type"`
	Length     int       `json:"length,omitempty" yaml:"length,omitempty"`
	Required   bool      `json:"required,omitempty" yaml:"required,omitempty"`
	PrimaryKey bool      `json:"primaryKey,omitempty" yaml:"primaryKey,omitempty"`
	Choices    []Choice  `json:"choices,omitempty" yaml:"choices,omitempty"`
}

// Lookup finds the field called name.
func Lookup(fields []Field, name string) (Field, bool) {
	for _, field := range fields {
		if field.Name == name {
			return field, true
		}
	}
	return Field{}, false
}

// Names returns the field names in declaration order.
func Names(fields []Field) []string {
	out := make([]string, 0, len(fields))
	for _, field := range fields {
		out = append(out, field.Name)
	}
	return out
}
