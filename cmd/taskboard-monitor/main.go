package main

import (
	"context"
	"crypto/tls"
	"os"
	"os/signal"
	"syscall"
	"time"

	flags "github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	cmdflags "github.com/taskboard/taskboard/cmd/flags"
	"github.com/taskboard/taskboard/pkg/client"
	"github.com/taskboard/taskboard/pkg/cryptox"
	"github.com/taskboard/taskboard/pkg/ioutilx"
	"github.com/taskboard/taskboard/pkg/logx"
	"github.com/taskboard/taskboard/pkg/monitor"
	"github.com/taskboard/taskboard/pkg/monitor/recording"
	"github.com/taskboard/taskboard/pkg/monitor/stats"
)

const histogramName = "probe.responses.timing"

var histogramQuantiles = []float64{90, 99, 99.9}

type options struct {
	Taskboard taskboardOptions    `group:"Taskboard" namespace:"taskboard"`
	StatsD    cmdflags.StatsDFlag `group:"StatsD" namespace:"statsd"`

	Logger cmdflags.LagerFlag

	Probe probeOptions `group:"Probe" namespace:"probe"`
}

type taskboardOptions struct {
	URL           string                 `long:"url" env:"MONITOR_TASKBOARD_URL" required:"true" description:"Base URL of the taskboard API"`
	CACertificate []ioutilx.FileOrString `long:"ca-certificate" env:"MONITOR_TASKBOARD_CA_CERTIFICATE" env-delim:"," description:"CA certificate(s) of the taskboard API"`
	Email         string                 `long:"email" env:"MONITOR_TASKBOARD_EMAIL" required:"true" description:"Email of the probe account, an Admin or ProjectManager"`
	Password      string                 `long:"password" env:"MONITOR_TASKBOARD_PASSWORD" required:"true" description:"Password of the probe account"`
}

type probeOptions struct {
	Frequency       time.Duration `long:"frequency" env:"MONITOR_PROBE_FREQUENCY" default:"5s" description:"Frequency with which the probe is issued"`
	Timeout         time.Duration `long:"timeout" env:"MONITOR_PROBE_TIMEOUT" default:"1s" description:"Time after which a single API call is considered to have failed"`
	CleanupTimeout  time.Duration `long:"cleanup-timeout" env:"MONITOR_PROBE_CLEANUP_TIMEOUT" default:"10s" description:"Time allowed for deleting a probe project left behind"`
	MaxLatency      time.Duration `long:"max-latency" env:"MONITOR_PROBE_MAX_LATENCY" default:"100ms" description:"Latency above which a call makes the run unsuccessful"`
	ProjectPrefix   string        `long:"project-prefix" env:"MONITOR_PROBE_PROJECT_PREFIX" default:"probe-" description:"Prefix of the projects the probe creates"`
	HistogramWindow int           `long:"histogram-windows" env:"MONITOR_PROBE_HISTOGRAM_WINDOWS" default:"5" description:"Number of windows latencies are kept in"`
	LoginInterval   time.Duration `long:"login-interval" env:"MONITOR_PROBE_LOGIN_INTERVAL" default:"24h" description:"Interval at which the probe account logs in again"`
}

func main() {
	_ = godotenv.Load(envFile())

	opts := &options{}
	parser := flags.NewParser(opts, flags.Default)
	parser.NamespaceDelimiter = "-"
	parser.EnvNamespace = "TASKBOARD"

	if _, err := parser.Parse(); err != nil {
		os.Exit(1)
	}

	logger := opts.Logger.Logger("taskboard-monitor")
	logger.Info(starting)
	defer logger.Info(finished)

	if err := run(logger, opts); err != nil {
		os.Exit(1)
	}
}

func run(logger logx.Logger, opts *options) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	statter, closer, err := opts.StatsD.Statter(logger)
	if err != nil {
		logger.Error(failedToCreateStatter, err)
		return err
	}
	defer closer.Close()

	tlsConfig, err := opts.Taskboard.tlsConfig(logger)
	if err != nil {
		return err
	}

	taskboardClient, err := client.New(opts.Taskboard.URL, client.WithTLSConfig(tlsConfig), client.WithTimeout(opts.Probe.Timeout))
	if err != nil {
		logger.Error(failedToCreateClient, err, logx.Data{Key: "url", Value: opts.Taskboard.URL})
		return err
	}

	if err = login(ctx, logger, taskboardClient, opts.Taskboard); err != nil {
		return err
	}

	histogram := stats.NewHistogram(stats.HistogramOptions{
		Name:        histogramName,
		Quantiles:   histogramQuantiles,
		MaxDuration: opts.Probe.Timeout,
		Windows:     opts.Probe.HistogramWindow,
	})

	probe := monitor.NewProbe(
		recording.NewClient(taskboardClient, histogram),
		histogram,
		statter,
		logger,
		monitor.WithTimeout(opts.Probe.Timeout),
		monitor.WithCleanupTimeout(opts.Probe.CleanupTimeout),
		monitor.WithMaxLatency(opts.Probe.MaxLatency),
		monitor.WithProjectPrefix(opts.Probe.ProjectPrefix),
	)

	probeTicker := time.NewTicker(opts.Probe.Frequency)
	defer probeTicker.Stop()

	loginTicker := time.NewTicker(opts.Probe.LoginInterval)
	defer loginTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-loginTicker.C:
			// A failed login keeps the previous token; the probe reports
			// the outcome.
			_ = login(ctx, logger, taskboardClient, opts.Taskboard)
		case <-probeTicker.C:
			probe.Run()
		}
	}
}

func login(ctx context.Context, logger logx.Logger, c *client.Client, opts taskboardOptions) error {
	user, err := c.Login(ctx, opts.Email, opts.Password)
	if err != nil {
		logger.Error(failedToLogIn, err, logx.Data{Key: "email", Value: opts.Email})
		return err
	}

	logger.Info(loggedIn, logx.Data{Key: "user.id", Value: user.ID}, logx.Data{Key: "user.role", Value: string(user.Role)})
	return nil
}

func (o taskboardOptions) tlsConfig(logger logx.Logger) (*tls.Config, error) {
	if len(o.CACertificate) == 0 {
		return nil, nil
	}

	var certs [][]byte
	for _, cert := range o.CACertificate {
		b, err := cert.Read()
		if err != nil {
			logger.Error(failedToReadCertificate, err)
			return nil, err
		}
		certs = append(certs, b)
	}

	pool, err := cryptox.NewCertPool(certs...)
	if err != nil {
		logger.Error(failedToAppendCertToPool, err)
		return nil, err
	}

	return &tls.Config{RootCAs: pool, MinVersion: tls.VersionTLS12}, nil
}

func envFile() string {
	if path := os.Getenv("TASKBOARD_ENV_FILE"); path != "" {
		return path
	}
	return ".env"
}
