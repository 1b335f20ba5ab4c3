package domain

import (
	"errors"
	"fmt"
)

type MissingFieldError struct {
	Path string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("S3 event is missing required field %s", e.Path)
}

type DecodeError struct {
	base error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("Unable to decode S3 event from json: %v", e.base)
}

func (e *DecodeError) Unwrap() error {
	return e.base
}

type EncodeError struct {
	fields Fields
	base   error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("Unable to encode %+v to json: %v", e.fields, e.base)
}

func (e *EncodeError) Unwrap() error {
	return e.base
}

// IsExtractionError reports whether err means the payload did not have the
// shape of an S3 object-created notification.
func IsExtractionError(err error) bool {
	var missingErr *MissingFieldError
	var decodeErr *DecodeError
	return errors.As(err, &missingErr) || errors.As(err, &decodeErr)
}
