package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrUnknownCollection    = errors.New("unknown collection")
	ErrInvalidOwnerID       = errors.New("invalid owner ID")
	ErrInvalidDocumentID    = errors.New("invalid document id")
	ErrEmptyFields          = errors.New("document fields cannot be empty")
	ErrMissingRequiredField = errors.New("missing required field")

	ErrInvalidEmail  = errors.New("invalid email")
	ErrEmptyPassword = errors.New("password is required")
)
