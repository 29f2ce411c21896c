package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/internal/validators"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrVersionIsNotSpecified:   http.StatusBadRequest,
	service.ErrEmptyBlobName:           http.StatusBadRequest,
	service.ErrEmptyBlobPayload:        http.StatusBadRequest,
	service.ErrBlobPathNotOwned:        http.StatusForbidden,
	service.ErrBlobURLExpired:          http.StatusForbidden,
	service.ErrBlobURLInvalidSign:      http.StatusForbidden,

	validators.ErrNameTooLong:        http.StatusBadRequest,
	validators.ErrDescriptionTooLong: http.StatusBadRequest,
	validators.ErrImagePathTooLong:   http.StatusBadRequest,
	validators.ErrUnsupportedType:    http.StatusBadRequest,

	store.ErrLoginAlreadyExists: http.StatusConflict,
	store.ErrUserNotFound:       http.StatusNotFound,
	store.ErrNoteNotFound:       http.StatusNotFound,
	store.ErrBlobNotFound:       http.StatusNotFound,
	store.ErrInvalidBlobPath:    http.StatusBadRequest,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
