package logx

import (
	"context"
)

//go:generate counterfeiter . SecurityLogger

// SecurityData is a custom string extension of an audit event.
type SecurityData struct {
	Key   string
	Value string
}

// SecurityLogger records authentication and authorization events for audit.
type SecurityLogger interface {
	Log(ctx context.Context, signature, name string, args ...SecurityData)
}
