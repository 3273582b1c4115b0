package api

import "errors"

var (
	ErrServerStopped       = errors.New("taskboard: the server has been stopped")
	ErrServerFailedToStart = errors.New("taskboard: the server failed to start")
)
