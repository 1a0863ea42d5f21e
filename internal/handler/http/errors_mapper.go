package http

import (
	"errors"
	"net/http"

	"github.com/jmoreno/datebook/internal/service"
	"github.com/jmoreno/datebook/internal/store"
	"github.com/jmoreno/datebook/internal/validators"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:        http.StatusBadRequest,
	service.ErrWrongPassword:              http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid:    http.StatusUnauthorized,
	service.ErrValidationNoFieldsProvided: http.StatusBadRequest,

	validators.ErrUnknownCollection:    http.StatusNotFound,
	validators.ErrInvalidOwnerID:       http.StatusBadRequest,
	validators.ErrInvalidDocumentID:    http.StatusBadRequest,
	validators.ErrEmptyFields:          http.StatusBadRequest,
	validators.ErrMissingRequiredField: http.StatusBadRequest,

	store.ErrEmailAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:     http.StatusNotFound,
	store.ErrDocumentNotSaved:   http.StatusInternalServerError,
	store.ErrDocumentNotFound:   http.StatusNotFound,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrEncodingFields:     http.StatusInternalServerError,
	store.ErrDecodingFields:     http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
