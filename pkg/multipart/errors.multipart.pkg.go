package multipart

import (
	"errors"
	"fmt"
)

var (
	ErrConsumed          = errors.New("multipart: builder already built")
	ErrInvalidBoundary   = errors.New("multipart: invalid boundary")
	ErrBoundaryCollision = errors.New("multipart: boundary occurs inside a part payload")
	ErrInvalidPart       = errors.New("multipart: invalid part kind")
)

// SerializationError reports a JSON part whose value could not be encoded.
type SerializationError struct {
	Field string
	Err   error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("multipart: error marshalling field %q to json: %s", e.Field, e.Err)
}

func (e *SerializationError) Unwrap() error {
	return e.Err
}
