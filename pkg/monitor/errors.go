package monitor

import "errors"

var (
	ErrExceededMaxLatency      = errors.New("probe: request took too long")
	ErrIncorrectProjectListing = errors.New("probe: project listing did not include the probe project")
	ErrIncorrectTaskListing    = errors.New("probe: task listing did not include the probe task")
)

// FailedToObserveDurationError is returned alongside a successful result
// when its latency could not be recorded.
type FailedToObserveDurationError struct {
	Err error
}

func (e FailedToObserveDurationError) Error() string {
	return e.Err.Error()
}

func (e FailedToObserveDurationError) Unwrap() error {
	return e.Err
}

func isObserveFailure(err error) bool {
	var observeErr FailedToObserveDurationError
	return errors.As(err, &observeErr)
}
