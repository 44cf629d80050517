package facts

import "fmt"

// Field identifies one attribute slot of an entity.
type Field string

const (
	FieldOrigin    Field = "origin"
	FieldInsertion Field = "insertion"
	FieldAction    Field = "action"
)

// AllFields returns all fields in display order.
func AllFields() []Field {
	return []Field{FieldOrigin, FieldInsertion, FieldAction}
}

// Valid reports whether f is one of the known fields.
func (f Field) Valid() bool {
	switch f {
	case FieldOrigin, FieldInsertion, FieldAction:
		return true
	}
	return false
}

// DisplayName returns a human-readable name for a field.
func (f Field) DisplayName() string {
	switch f {
	case FieldOrigin:
		return "Origin"
	case FieldInsertion:
		return "Insertion"
	case FieldAction:
		return "Action"
	default:
		return string(f)
	}
}

// ParseField parses a field name.
func ParseField(s string) (Field, error) {
	f := Field(s)
	if !f.Valid() {
		return "", fmt.Errorf("unknown field %q", s)
	}
	return f, nil
}
