package monitor

import (
	"time"

	"code.cloudfoundry.org/clock"
)

const (
	DefaultTimeout        = time.Second
	DefaultCleanupTimeout = 10 * time.Second
	DefaultMaxLatency     = 100 * time.Millisecond
	DefaultProjectPrefix  = "probe-"
)

type Option func(*options)

// WithTimeout bounds each API call of a run.
func WithTimeout(timeout time.Duration) Option {
	return func(o *options) {
		o.timeout = timeout
	}
}

// WithCleanupTimeout bounds deleting a probe project left behind by a failed run.
func WithCleanupTimeout(timeout time.Duration) Option {
	return func(o *options) {
		o.cleanupTimeout = timeout
	}
}

func WithMaxLatency(latency time.Duration) Option {
	return func(o *options) {
		o.maxLatency = latency
	}
}

// WithProjectPrefix names the projects a run creates. Runs from several
// monitors against one deployment should use distinct prefixes.
func WithProjectPrefix(prefix string) Option {
	return func(o *options) {
		o.projectPrefix = prefix
	}
}

func WithClock(c clock.Clock) Option {
	return func(o *options) {
		o.clock = c
	}
}

type options struct {
	timeout        time.Duration
	cleanupTimeout time.Duration
	maxLatency     time.Duration
	projectPrefix  string
	clock          clock.Clock
}

func newOptions(opts []Option) *options {
	o := &options{
		timeout:        DefaultTimeout,
		cleanupTimeout: DefaultCleanupTimeout,
		maxLatency:     DefaultMaxLatency,
		projectPrefix:  DefaultProjectPrefix,
		clock:          clock.NewClock(),
	}
	for _, opt := range opts {
		opt(o)
	}

	return o
}
