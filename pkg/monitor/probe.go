package monitor

import (
	"context"
	"errors"
	"sort"
	"time"

	"code.cloudfoundry.org/clock"
	uuid "github.com/satori/go.uuid"
	"github.com/taskboard/taskboard/pkg/client"
	"github.com/taskboard/taskboard/pkg/logx"
	"github.com/taskboard/taskboard/pkg/metrics"
	"github.com/taskboard/taskboard/pkg/taskboard"
)

const (
	MetricFailure = 0
	MetricSuccess = 1

	MetricProbeRunsSuccess    = "probe.runs.success"
	MetricProbeRunsCorrect    = "probe.runs.correct"
	MetricProbeAPIRunsSuccess = "probe.api.runs.success"
)

//go:generate counterfeiter . Client

// Client is the part of the taskboard API the probe exercises. It must be
// authenticated as an Admin or a ProjectManager.
type Client interface {
	Me(ctx context.Context) (*taskboard.User, error)
	CreateProject(ctx context.Context, req client.CreateProjectRequest) (*taskboard.Project, error)
	DeleteProject(ctx context.Context, id int64) error
	CreateTask(ctx context.Context, req client.CreateTaskRequest) (*taskboard.Task, error)
	ListProjects(ctx context.Context) ([]*taskboard.Project, error)
	ListTasks(ctx context.Context) ([]*taskboard.Task, error)
}

//go:generate counterfeiter . Store

// Store holds the latency statistics sent after every run.
type Store interface {
	Collect() map[string]int64
}

// Probe walks the API the way a project manager would: it creates a project
// with a task assigned to itself, checks both show up in its listings and
// deletes the project again.
type Probe struct {
	client  Client
	store   Store
	statter metrics.Statter
	logger  logx.Logger
	clock   clock.Clock

	timeout        time.Duration
	cleanupTimeout time.Duration
	maxLatency     time.Duration
	projectPrefix  string
}

func NewProbe(client Client, store Store, statter metrics.Statter, logger logx.Logger, opts ...Option) *Probe {
	o := newOptions(opts)

	return &Probe{
		client:         client,
		store:          store,
		statter:        statter,
		logger:         logger.WithName("probe"),
		clock:          o.clock,
		timeout:        o.timeout,
		cleanupTimeout: o.cleanupTimeout,
		maxLatency:     o.maxLatency,
		projectPrefix:  o.projectPrefix,
	}
}

// Run probes once and sends the outcome and the collected latencies.
func (p *Probe) Run() {
	err := p.Probe()

	switch {
	case err == nil:
		p.statter.Gauge(MetricProbeRunsCorrect, MetricSuccess)
		p.statter.Gauge(MetricProbeRunsSuccess, MetricSuccess)
	case errors.Is(err, ErrExceededMaxLatency):
		p.statter.Gauge(MetricProbeRunsCorrect, MetricSuccess)
		p.statter.Gauge(MetricProbeRunsSuccess, MetricFailure)
	case errors.Is(err, ErrIncorrectProjectListing), errors.Is(err, ErrIncorrectTaskListing):
		p.statter.Gauge(MetricProbeRunsCorrect, MetricFailure)
		p.statter.Gauge(MetricProbeRunsSuccess, MetricFailure)
	default:
		p.statter.Gauge(MetricProbeRunsSuccess, MetricFailure)
	}

	if err != nil {
		p.logger.Error(probeFailed, err)
	}

	values := p.store.Collect()
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		p.statter.Gauge(name, values[name])
	}
}

// Probe runs every call in order and stops at the first failure, deleting
// whatever it created. A slow call does not stop the run; it is reported as
// ErrExceededMaxLatency once every call has succeeded.
func (p *Probe) Probe() (err error) {
	logger := p.logger.WithData(logx.Data{Key: "run", Value: uuid.NewV4().String()})
	logger.Debug(starting)
	defer logger.Debug(finished)

	var (
		slow    bool
		me      *taskboard.User
		project *taskboard.Project
		task    *taskboard.Task
	)

	defer func() {
		if project == nil || err == nil {
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), p.cleanupTimeout)
		defer cancel()

		if cerr := p.client.DeleteProject(ctx, project.ID); cerr != nil && !errors.Is(cerr, taskboard.ErrProjectNotFound) {
			logger.Error(failedToCleanUp, cerr, logx.Data{Key: "project.id", Value: project.ID})
		}
	}()

	steps := []struct {
		name string
		call func(ctx context.Context) error
	}{
		{"me", func(ctx context.Context) (cerr error) {
			me, cerr = p.client.Me(ctx)
			return cerr
		}},
		{"create-project", func(ctx context.Context) (cerr error) {
			project, cerr = p.client.CreateProject(ctx, client.CreateProjectRequest{
				Name:      p.projectPrefix + uuid.NewV4().String(),
				ManagerID: &me.ID,
			})
			return cerr
		}},
		{"create-task", func(ctx context.Context) (cerr error) {
			task, cerr = p.client.CreateTask(ctx, client.CreateTaskRequest{
				ProjectID:    project.ID,
				AssignedToID: me.ID,
				Title:        "probe",
			})
			return cerr
		}},
		{"list-projects", func(ctx context.Context) error {
			projects, cerr := p.client.ListProjects(ctx)
			if cerr != nil && !isObserveFailure(cerr) {
				return cerr
			}
			for _, candidate := range projects {
				if candidate.ID == project.ID {
					return cerr
				}
			}
			logger.Info(incorrectResponse, logx.Data{Key: "call", Value: "list-projects"})
			return ErrIncorrectProjectListing
		}},
		{"list-tasks", func(ctx context.Context) error {
			tasks, cerr := p.client.ListTasks(ctx)
			if cerr != nil && !isObserveFailure(cerr) {
				return cerr
			}
			for _, candidate := range tasks {
				if candidate.ID == task.ID {
					return cerr
				}
			}
			logger.Info(incorrectResponse, logx.Data{Key: "call", Value: "list-tasks"})
			return ErrIncorrectTaskListing
		}},
		{"delete-project", func(ctx context.Context) error {
			cerr := p.client.DeleteProject(ctx, project.ID)
			if cerr != nil && !isObserveFailure(cerr) {
				return cerr
			}
			project = nil
			return cerr
		}},
	}

	for _, step := range steps {
		exceeded, serr := p.call(logger.WithName(step.name), step.call)
		if serr != nil {
			return serr
		}
		slow = slow || exceeded
	}

	if slow {
		return ErrExceededMaxLatency
	}

	return nil
}

// call runs one API call under the probe timeout. It reports whether the
// call took longer than the maximum latency.
func (p *Probe) call(logger logx.Logger, fn func(ctx context.Context) error) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()

	start := p.clock.Now()
	err := fn(ctx)
	duration := p.clock.Since(start)

	var observeErr FailedToObserveDurationError
	if errors.As(err, &observeErr) {
		logger.Error(failedToObserve, observeErr.Err)
		err = nil
	}

	if err != nil {
		if !errors.Is(err, ErrIncorrectProjectListing) && !errors.Is(err, ErrIncorrectTaskListing) {
			logger.Error(failedToCallAPI, err)
			p.statter.Gauge(MetricProbeAPIRunsSuccess, MetricFailure)
		}
		return false, err
	}

	p.statter.Gauge(MetricProbeAPIRunsSuccess, MetricSuccess)

	if duration > p.maxLatency {
		logger.Info(exceededMaxLatency, logx.Data{Key: "duration", Value: duration.String()})
		return true, nil
	}

	return false, nil
}
