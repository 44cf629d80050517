package facts

import "fmt"

// NotFoundError indicates a lookup for an entity or field that is not in the table.
type NotFoundError struct {
	Entity string
	Field  Field
}

func (e *NotFoundError) Error() string {
	if e.Field != "" && !e.Field.Valid() {
		return fmt.Sprintf("unknown field %q", string(e.Field))
	}
	return fmt.Sprintf("unknown entity %q", e.Entity)
}

// ConfigurationError indicates the table cannot supply enough distinct
// values for a field to build a full option list.
type ConfigurationError struct {
	Field    Field
	Distinct int
	Need     int
	Err      error
}

func (e *ConfigurationError) Error() string {
	msg := fmt.Sprintf("field %q has %d distinct values, need %d", e.Field, e.Distinct, e.Need)
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *ConfigurationError) Unwrap() error { return e.Err }
