package metrics

import "time"

//go:generate counterfeiter . Statter

// Statter sends metrics. Delivery failures are the implementation's concern
// and never surface to callers.
type Statter interface {
	Inc(metric string, value int64)
	Gauge(metric string, value int64)
	TimingDuration(metric string, value time.Duration)
}

func Discard() Statter {
	return discard{}
}

type discard struct{}

func (discard) Inc(string, int64)                    {}
func (discard) Gauge(string, int64)                  {}
func (discard) TimingDuration(string, time.Duration) {}
