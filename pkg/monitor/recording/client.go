package recording

import (
	"context"
	"time"

	"code.cloudfoundry.org/clock"
	"github.com/taskboard/taskboard/pkg/client"
	"github.com/taskboard/taskboard/pkg/monitor"
	"github.com/taskboard/taskboard/pkg/taskboard"
)

//go:generate counterfeiter . DurationRecorder

type DurationRecorder interface {
	Observe(duration time.Duration) error
}

// Client records the latency of every successful call of the wrapped
// client. A failure to record is returned as a
// monitor.FailedToObserveDurationError next to the call's result.
type Client struct {
	client   monitor.Client
	recorder DurationRecorder
	clock    clock.Clock
}

func NewClient(client monitor.Client, recorder DurationRecorder, opts ...Option) *Client {
	o := &options{
		clock: clock.NewClock(),
	}
	for _, opt := range opts {
		opt(o)
	}

	return &Client{
		client:   client,
		recorder: recorder,
		clock:    o.clock,
	}
}

func (c *Client) Me(ctx context.Context) (*taskboard.User, error) {
	start := c.clock.Now()
	user, err := c.client.Me(ctx)
	if err != nil {
		return nil, err
	}

	return user, c.observe(start)
}

func (c *Client) CreateProject(ctx context.Context, req client.CreateProjectRequest) (*taskboard.Project, error) {
	start := c.clock.Now()
	project, err := c.client.CreateProject(ctx, req)
	if err != nil {
		return nil, err
	}

	return project, c.observe(start)
}

func (c *Client) DeleteProject(ctx context.Context, id int64) error {
	start := c.clock.Now()
	if err := c.client.DeleteProject(ctx, id); err != nil {
		return err
	}

	return c.observe(start)
}

func (c *Client) CreateTask(ctx context.Context, req client.CreateTaskRequest) (*taskboard.Task, error) {
	start := c.clock.Now()
	task, err := c.client.CreateTask(ctx, req)
	if err != nil {
		return nil, err
	}

	return task, c.observe(start)
}

func (c *Client) ListProjects(ctx context.Context) ([]*taskboard.Project, error) {
	start := c.clock.Now()
	projects, err := c.client.ListProjects(ctx)
	if err != nil {
		return nil, err
	}

	return projects, c.observe(start)
}

func (c *Client) ListTasks(ctx context.Context) ([]*taskboard.Task, error) {
	start := c.clock.Now()
	tasks, err := c.client.ListTasks(ctx)
	if err != nil {
		return nil, err
	}

	return tasks, c.observe(start)
}

func (c *Client) observe(start time.Time) error {
	if err := c.recorder.Observe(c.clock.Since(start)); err != nil {
		return monitor.FailedToObserveDurationError{Err: err}
	}

	return nil
}

var _ monitor.Client = (*Client)(nil)

type Option func(*options)

func WithClock(c clock.Clock) Option {
	return func(o *options) {
		o.clock = c
	}
}

type options struct {
	clock clock.Clock
}
