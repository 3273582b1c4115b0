package taskboard

import (
	"errors"
	"fmt"
)

type ErrNotFound struct {
	model string
}

func NewErrNotFound(model string) ErrNotFound {
	return ErrNotFound{
		model: model,
	}
}

func (err ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found", err.model)
}

func (err ErrNotFound) Model() string {
	return err.model
}

type ErrAlreadyExists struct {
	model string
}

func NewErrAlreadyExists(model string) ErrAlreadyExists {
	return ErrAlreadyExists{
		model: model,
	}
}

func (err ErrAlreadyExists) Error() string {
	return fmt.Sprintf("%s already exists", err.model)
}

// ErrReferenceNotFound is returned when a foreign key in a payload does not
// resolve to an existing record.
type ErrReferenceNotFound struct {
	model string
}

func NewErrReferenceNotFound(model string) ErrReferenceNotFound {
	return ErrReferenceNotFound{
		model: model,
	}
}

func (err ErrReferenceNotFound) Error() string {
	return fmt.Sprintf("referenced %s not found", err.model)
}

func (err ErrReferenceNotFound) Model() string {
	return err.model
}

type ErrForbidden struct {
	reason string
}

func NewErrForbidden(reason string) ErrForbidden {
	return ErrForbidden{
		reason: reason,
	}
}

func (err ErrForbidden) Error() string {
	return fmt.Sprintf("forbidden: %s", err.reason)
}

func (err ErrForbidden) Reason() string {
	return err.reason
}

type ErrInvalid struct {
	field   string
	message string
}

func NewErrInvalid(field, message string) ErrInvalid {
	return ErrInvalid{
		field:   field,
		message: message,
	}
}

func (err ErrInvalid) Error() string {
	return fmt.Sprintf("invalid %s: %s", err.field, err.message)
}

func (err ErrInvalid) Field() string {
	return err.field
}

var (
	ErrUnauthenticated    = errors.New("taskboard: unauthenticated")
	ErrInvalidCredentials = errors.New("taskboard: invalid email or password")

	ErrUserNotFound      = NewErrNotFound("user")
	ErrUserAlreadyExists = NewErrAlreadyExists("user")

	ErrProjectNotFound      = NewErrNotFound("project")
	ErrProjectAlreadyExists = NewErrAlreadyExists("project")

	ErrTaskNotFound = NewErrNotFound("task")
)
