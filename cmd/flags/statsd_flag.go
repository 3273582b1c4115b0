package flags

import (
	"io"
	"net"
	"strconv"

	"github.com/taskboard/taskboard/pkg/logx"
	"github.com/taskboard/taskboard/pkg/metrics"
	"github.com/taskboard/taskboard/pkg/metrics/statsdx"
)

type StatsDFlag struct {
	Hostname string `long:"hostname" env:"STATSD_HOSTNAME" description:"Hostname of the StatsD server; metrics are off when empty"`
	Port     int    `long:"port" env:"STATSD_PORT" default:"8125" description:"Port of the StatsD server"`
	Prefix   string `long:"prefix" env:"STATSD_PREFIX" description:"Prefix of every metric name"`
}

func (f StatsDFlag) Enabled() bool {
	return f.Hostname != ""
}

// Statter returns a discarding statter when no hostname is configured.
func (f StatsDFlag) Statter(logger logx.Logger) (metrics.Statter, io.Closer, error) {
	if !f.Enabled() {
		return metrics.Discard(), nopCloser{}, nil
	}

	addr := net.JoinHostPort(f.Hostname, strconv.Itoa(f.Port))
	client, err := statsdx.NewClient(addr, f.Prefix)
	if err != nil {
		logger.Error(failedToConnectToStatsD, err, logx.Data{Key: "addr", Value: addr})
		return nil, nil, err
	}

	statter := statsdx.NewStatter(logger, client)

	return statter, statter, nil
}

type nopCloser struct{}

func (nopCloser) Close() error {
	return nil
}
