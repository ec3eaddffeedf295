package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-gift-catalog/internal/logger"
	"github.com/MKhiriev/go-gift-catalog/internal/service"
	"github.com/MKhiriev/go-gift-catalog/internal/store"
	"github.com/MKhiriev/go-gift-catalog/internal/utils"
	"github.com/MKhiriev/go-gift-catalog/internal/validators"
	"github.com/MKhiriev/go-gift-catalog/models"
)

var errorStatusMap = map[error]int{
	ErrInvalidProductID:        http.StatusBadRequest,
	ErrInvalidJSON:             http.StatusBadRequest,
	ErrEmptyAuthenticateHeader: http.StatusUnauthorized,

	service.ErrInvalidProduct:          http.StatusBadRequest,
	service.ErrInvalidCredentials:      http.StatusBadRequest,
	service.ErrWrongCredentials:        http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,
	validators.ErrInvalidInput:         http.StatusBadRequest,

	store.ErrEmailAlreadyExists: http.StatusConflict,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
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

// writeError renders err with the status resolved by statusFromError.
// Validation failures get a JSON body listing the broken fields; server
// errors are logged and answered with the generic status text.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	if fields := validators.FieldErrors(err); len(fields) > 0 && status == http.StatusBadRequest {
		log.Debug().Err(err).Msg("request rejected by validation")
		utils.WriteJSON(w, models.ValidationErrorResponse{Errors: fields}, status)
		return
	}

	if status >= http.StatusInternalServerError {
		log.Err(err).Msg("request failed")
		http.Error(w, http.StatusText(status), status)
		return
	}

	log.Info().Err(err).Int("status", status).Msg("request rejected")
	http.Error(w, http.StatusText(status), status)
}
