package client

import (
	"fmt"
	"net/http"

	"github.com/AmanKumar245/crimewatch/internal/domain"
	"github.com/AmanKumar245/crimewatch/pkg/api"
)

// APIError is a non-2xx response from the API. It unwraps to the matching
// domain sentinel, so callers can use errors.Is(err, domain.ErrNotFound).
type APIError struct {
	StatusCode int
	Message    string
	Fields     []api.FieldError
	RequestID  string
}

func newAPIError(status int, body api.Error) *APIError {
	msg := body.Error
	if msg == "" {
		msg = http.StatusText(status)
	}
	return &APIError{
		StatusCode: status,
		Message:    msg,
		Fields:     body.Fields,
		RequestID:  body.RequestID,
	}
}

func (e *APIError) Error() string {
	if len(e.Fields) == 1 {
		return fmt.Sprintf("api %d: %s: %s: %s", e.StatusCode, e.Message, e.Fields[0].Field, e.Fields[0].Message)
	}
	if len(e.Fields) > 1 {
		return fmt.Sprintf("api %d: %s (%d fields)", e.StatusCode, e.Message, len(e.Fields))
	}
	return fmt.Sprintf("api %d: %s", e.StatusCode, e.Message)
}

func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusBadRequest:
		return domain.ErrValidation
	case http.StatusUnauthorized:
		return domain.ErrUnauthorized
	case http.StatusNotFound:
		return domain.ErrNotFound
	case http.StatusConflict:
		return domain.ErrAlreadyExists
	}
	return nil
}
