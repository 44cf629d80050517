package facts

// Entity is a named subject with three attribute values.
type Entity struct {
	Name      string
	Origin    string
	Insertion string
	Action    string
}

// Value returns the attribute value for field. The second result is false
// for an unknown field.
func (e Entity) Value(field Field) (string, bool) {
	switch field {
	case FieldOrigin:
		return e.Origin, true
	case FieldInsertion:
		return e.Insertion, true
	case FieldAction:
		return e.Action, true
	}
	return "", false
}
