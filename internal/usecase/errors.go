package usecase

import (
	"errors"
	"net/http"

	"moviehub/pkg/remote"
	"moviehub/pkg/utils"
)

// ValidationError is a locally rejected trigger. No request is issued for it.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + utils.FormatValidationErrors(e.Fields)
}

var ErrFilterNotSupported = errors.New("this listing has a fixed filter")

const (
	ReasonInvalidInput = "Please check your input and try again."
	ReasonNotFound     = "We couldn't find the movie you're looking for."
	ReasonRejected     = "The movie catalog rejected the request. Please try again later."
	ReasonUnexpected   = "The movie catalog sent an unexpected response. Please try again later."
	ReasonUnavailable  = "The movie catalog is unavailable right now. Please try again later."
)

// failureReason turns an error into the user-facing text of a Failure state.
// It never includes the error's own message.
func failureReason(err error) string {
	var (
		verr *ValidationError
		rerr *remote.RemoteError
		derr *remote.DecodeError
	)

	switch {
	case errors.As(err, &verr):
		return ReasonInvalidInput
	case remote.IsNotFound(err):
		return ReasonNotFound
	case errors.As(err, &rerr) && (rerr.Status == http.StatusUnauthorized || rerr.Status == http.StatusForbidden):
		return ReasonRejected
	case errors.As(err, &derr):
		return ReasonUnexpected
	default:
		return ReasonUnavailable
	}
}

func validationError(errs map[string]string) error {
	if len(errs) == 0 {
		return nil
	}
	return &ValidationError{Fields: errs}
}
