package dsgo

import "fmt"

// IndexOutOfRangeError indicates an index outside the current logical bounds
// of a container. It is returned by every get/set/remove/bit-access that
// validates its index; indexes are never clamped silently.
type IndexOutOfRangeError struct {
	Index  int
	Length int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("index %d out of range [0, %d)", e.Index, e.Length)
}

// Is reports whether target is an IndexOutOfRangeError, so callers can match
// with errors.Is against a zero-valued instance.
func (e *IndexOutOfRangeError) Is(target error) bool {
	_, ok := target.(*IndexOutOfRangeError)
	return ok
}

// InvalidConfigurationError indicates construction with an invalid value,
// such as a negative initial capacity or bit length.
type InvalidConfigurationError struct {
	Field string
	Value int
}

func (e *InvalidConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s = %d", e.Field, e.Value)
}

// Is reports whether target is an InvalidConfigurationError.
func (e *InvalidConfigurationError) Is(target error) bool {
	_, ok := target.(*InvalidConfigurationError)
	return ok
}

// NewIndexOutOfRange returns an IndexOutOfRangeError for index i in a
// container of the given logical length.
func NewIndexOutOfRange(i, length int) error {
	return &IndexOutOfRangeError{Index: i, Length: length}
}

// NewInvalidConfiguration returns an InvalidConfigurationError for the named
// constructor field.
func NewInvalidConfiguration(field string, value int) error {
	return &InvalidConfigurationError{Field: field, Value: value}
}
