package handlers

import (
	"errors"
	"net/http"

	"github.com/pollbox/pollbox/middleware"
	"github.com/pollbox/pollbox/models"
)

// writeError maps the error taxonomy onto HTTP status codes: validation
// failures are the caller's fault (400), storage failures mean the change
// may be unpersisted (503), anything else is a 500.
func writeError(w http.ResponseWriter, err error) {
	var verr *models.ValidationError
	var serr *models.StorageError
	switch {
	case errors.As(err, &verr):
		middleware.ErrorResponse(w, http.StatusBadRequest, verr.Error())
	case errors.As(err, &serr):
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, "Storage error: the change may not have been persisted")
	default:
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal error")
	}
}
