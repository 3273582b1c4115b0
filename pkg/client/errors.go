package client

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/taskboard/taskboard/pkg/taskboard"
)

var (
	ErrInvalidURL        = errors.New("taskboard: invalid base URL")
	ErrFailedToConnect   = errors.New("taskboard: failed to connect")
	ErrNoToken           = errors.New("taskboard: login response carried no token")
	ErrMalformedResponse = errors.New("taskboard: malformed response")
)

// StatusError is returned for responses no domain error describes.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("taskboard: unexpected status %d: %s", e.StatusCode, e.Message)
}

type errorResponse struct {
	Message string `json:"message"`
	Reason  string `json:"reason"`
	Field   string `json:"field"`
}

// domainError rebuilds the error the server reported so callers can match
// it with errors.Is and errors.As.
func domainError(status int, body errorResponse) error {
	switch status {
	case http.StatusUnauthorized:
		if body.Message == "invalid email or password" {
			return taskboard.ErrInvalidCredentials
		}
		return taskboard.ErrUnauthenticated
	case http.StatusForbidden:
		return taskboard.NewErrForbidden(body.Reason)
	case http.StatusNotFound:
		if model, ok := strings.CutSuffix(body.Message, " not found"); ok {
			return taskboard.NewErrNotFound(model)
		}
	case http.StatusBadRequest:
		if body.Field != "" {
			return taskboard.NewErrInvalid(body.Field, invalidMessage(body))
		}
		if rest, ok := strings.CutPrefix(body.Message, "referenced "); ok {
			if model, ok := strings.CutSuffix(rest, " not found"); ok {
				return taskboard.NewErrReferenceNotFound(model)
			}
		}
		if model, ok := strings.CutSuffix(body.Message, " already exists"); ok {
			return taskboard.NewErrAlreadyExists(model)
		}
	}

	return &StatusError{StatusCode: status, Message: body.Message}
}

// invalidMessage strips the "invalid <field>: " prefix the server adds.
func invalidMessage(body errorResponse) string {
	if msg, ok := strings.CutPrefix(body.Message, "invalid "+body.Field+": "); ok {
		return msg
	}

	return body.Message
}
