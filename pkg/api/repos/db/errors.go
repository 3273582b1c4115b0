package db

import "github.com/taskboard/taskboard/pkg/taskboard"

var (
	errUserReferenceNotFound = taskboard.NewErrReferenceNotFound("user")
	errTaskReferenceNotFound = taskboard.NewErrReferenceNotFound("project or user")
)
