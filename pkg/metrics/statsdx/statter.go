package statsdx

import (
	"time"

	"github.com/cactus/go-statsd-client/v5/statsd"
	"github.com/taskboard/taskboard/pkg/logx"
)

const (
	alwaysSample   = 1
	failureMessage = "failed-to-send-metric"

	DefaultFlushInterval = 300 * time.Millisecond
)

// Statter adapts a statsd client to metrics.Statter, logging send failures.
type Statter struct {
	statsdClient statsd.Statter
	logger       logx.Logger
}

func NewStatter(logger logx.Logger, statsdClient statsd.Statter) *Statter {
	return &Statter{
		statsdClient: statsdClient,
		logger:       logger.WithName("statsd"),
	}
}

// NewClient returns a buffered statsd client sending to address with every
// metric name prefixed by prefix.
func NewClient(address, prefix string) (statsd.Statter, error) {
	return statsd.NewClientWithConfig(&statsd.ClientConfig{
		Address:       address,
		Prefix:        prefix,
		UseBuffered:   true,
		FlushInterval: DefaultFlushInterval,
	})
}

func (s *Statter) Inc(metric string, value int64) {
	if err := s.statsdClient.Inc(metric, value, alwaysSample); err != nil {
		s.logError(err, metric, value)
	}
}

func (s *Statter) Gauge(metric string, value int64) {
	if err := s.statsdClient.Gauge(metric, value, alwaysSample); err != nil {
		s.logError(err, metric, value)
	}
}

func (s *Statter) TimingDuration(metric string, value time.Duration) {
	if err := s.statsdClient.TimingDuration(metric, value, alwaysSample); err != nil {
		s.logError(err, metric, value)
	}
}

func (s *Statter) Close() error {
	return s.statsdClient.Close()
}

func (s *Statter) logError(err error, metric string, value interface{}) {
	s.logger.Error(failureMessage, err, logx.Data{
		Key:   "metric",
		Value: metric,
	}, logx.Data{
		Key:   "value",
		Value: value,
	})
}
