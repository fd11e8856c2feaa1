package params

import (
	"errors"
	"fmt"
)

var (
	ErrNotConfirmed = errors.New("params: dialog was not confirmed")
	ErrMissing      = errors.New("params: no value for key")
	ErrTypeMismatch = errors.New("params: stored value has the wrong type")

	errNilWrite = errors.New("params: write to nil *Parameters")
)

// TypeMismatchError reports a value stored under Key that is not of type Want.
type TypeMismatchError struct {
	Key  string
	Want string
	Got  string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("params: value for %q is %s, want %s", e.Key, e.Got, e.Want)
}

func (e *TypeMismatchError) Is(target error) bool { return target == ErrTypeMismatch }
