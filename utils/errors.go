package utils

import (
	"fmt"
	"reflect"

	"github.com/pkg/errors"
)

// IndexOutOfRangeError is returned when a caller passes an index that does not address an element of a
// sized collection, e.g. a joint index beyond a skeleton's joint count.
type IndexOutOfRangeError struct {
	What   string
	Index  int
	Length int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("%s index %d out of range [0, %d)", e.What, e.Index, e.Length)
}

// NewIndexOutOfRangeError is used when an index is outside [0, length).
func NewIndexOutOfRangeError(what string, index, length int) error {
	return &IndexOutOfRangeError{What: what, Index: index, Length: length}
}

// LengthMismatchError is returned when two collections that must be the same length are not.
type LengthMismatchError struct {
	What     string
	Expected int
	Actual   int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("expected %d %s but got %d", e.Expected, e.What, e.Actual)
}

// NewLengthMismatchError is used when two collections disagree in length.
func NewLengthMismatchError(what string, expected, actual int) error {
	return &LengthMismatchError{What: what, Expected: expected, Actual: actual}
}

// NewUnexpectedTypeError is used when there is a type mismatch.
func NewUnexpectedTypeError[ExpectedT any](actual interface{}) error {
	return errors.Errorf("expected %s but got %T", reflect.TypeOf((*ExpectedT)(nil)).Elem(), actual)
}

// NewConfigValidationError returns a config validation error
// occurring at a given path.
func NewConfigValidationError(path string, err error) error {
	return errors.Wrapf(err, "error validating %q", path)
}

// NewConfigValidationFieldRequiredError returns a config validation
// error for a field missing at a given path.
func NewConfigValidationFieldRequiredError(path, field string) error {
	return NewConfigValidationError(path, errors.Errorf("%q is required", field))
}
