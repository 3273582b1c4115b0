package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/taskboard/taskboard/pkg/logx"
	"github.com/taskboard/taskboard/pkg/taskboard"
)

type errorResponse struct {
	Message string `json:"message"`
	Reason  string `json:"reason,omitempty"`
	Field   string `json:"field,omitempty"`
}

// errorStatus is the single mapping from domain errors to status codes.
func errorStatus(err error) int {
	var (
		notFound      taskboard.ErrNotFound
		forbidden     taskboard.ErrForbidden
		referenceErr  taskboard.ErrReferenceNotFound
		invalid       taskboard.ErrInvalid
		alreadyExists taskboard.ErrAlreadyExists
	)

	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &forbidden):
		return http.StatusForbidden
	case errors.As(err, &referenceErr), errors.As(err, &invalid), errors.As(err, &alreadyExists):
		return http.StatusBadRequest
	case isUnauthenticated(err):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

func isUnauthenticated(err error) bool {
	return errors.Is(err, taskboard.ErrUnauthenticated) || errors.Is(err, taskboard.ErrInvalidCredentials)
}

func (s *Server) writeError(w http.ResponseWriter, logger logx.Logger, err error) {
	status := errorStatus(err)

	body := errorResponse{Message: err.Error()}
	switch status {
	case http.StatusInternalServerError:
		logger.Error(requestFailed, err)
		body.Message = "internal server error"
	case http.StatusUnauthorized:
		if errors.Is(err, taskboard.ErrInvalidCredentials) {
			body.Message = "invalid email or password"
		} else {
			body.Message = "not authorized"
		}
	}

	var forbidden taskboard.ErrForbidden
	if errors.As(err, &forbidden) {
		body.Reason = forbidden.Reason()
	}

	var invalid taskboard.ErrInvalid
	if errors.As(err, &invalid) {
		body.Field = invalid.Field()
	}

	writeJSON(w, logger, status, body)
}

func writeJSON(w http.ResponseWriter, logger logx.Logger, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error(failedToEncodeResponse, err)
	}
}

// pathID parses the {id} URL parameter. Malformed ids cannot name a record,
// so they are reported as not found.
func pathID(r *http.Request, model string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, taskboard.NewErrNotFound(model)
	}

	return id, nil
}
