package ejbjar

import "errors"

var (
	// ErrUnknownElement is returned when a document root or a value to be
	// marshaled does not correspond to any element of the model.
	ErrUnknownElement = errors.New("unknown element")

	// ErrChoiceConflict is returned when a document sets more than one
	// branch of a choice group.
	ErrChoiceConflict = errors.New("conflicting choice")

	// ErrEmptyDocument is returned when the input holds no element at all.
	ErrEmptyDocument = errors.New("empty document")

	// ErrNoSchema is returned when validation is requested for an element
	// that is not a document root.
	ErrNoSchema = errors.New("no schema for element")
)
