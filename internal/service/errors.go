package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrMissingTokenMaterial = errors.New("token sign key and issuer must be configured")

	ErrValidationNoFieldsProvided = errors.New("no fields for update were provided")
)
