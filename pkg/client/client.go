package client

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/taskboard/taskboard/pkg/taskboard"
)

const (
	DefaultTimeout    = 30 * time.Second
	DefaultCookieName = "token"
)

// Client talks to the taskboard HTTP API. It keeps the token of the last
// successful Register or Login and sends it as a bearer token.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	cookieName string

	mu    sync.RWMutex
	token string
}

func New(baseURL string, opts ...Option) (*Client, error) {
	config := &options{
		timeout:    DefaultTimeout,
		cookieName: DefaultCookieName,
	}

	for _, opt := range opts {
		opt(config)
	}

	u, err := url.Parse(strings.TrimSuffix(baseURL, "/"))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, ErrInvalidURL
	}

	httpClient := config.httpClient
	if httpClient == nil {
		transport := http.DefaultTransport.(*http.Transport).Clone()
		transport.TLSClientConfig = config.tlsConfig
		httpClient = &http.Client{
			Transport: transport,
			Timeout:   config.timeout,
		}
	}

	return &Client{
		baseURL:    u,
		httpClient: httpClient,
		cookieName: config.cookieName,
		token:      config.token,
	}, nil
}

func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.token
}

func (c *Client) setToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.token = token
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) (*taskboard.User, error) {
	var res struct {
		Token string          `json:"token"`
		User  *taskboard.User `json:"user"`
	}
	if _, err := c.do(ctx, http.MethodPost, "/api/auth/register", req, &res, "user"); err != nil {
		return nil, err
	}
	if res.Token == "" {
		return nil, ErrNoToken
	}

	c.setToken(res.Token)

	return res.User, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (*taskboard.User, error) {
	var res struct {
		User *taskboard.User `json:"user"`
	}
	httpRes, err := c.do(ctx, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, &res, "user")
	if err != nil {
		return nil, err
	}

	for _, cookie := range httpRes.Cookies() {
		if cookie.Name == c.cookieName && cookie.Value != "" {
			c.setToken(cookie.Value)
			return res.User, nil
		}
	}

	return nil, ErrNoToken
}

func (c *Client) Logout(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodPost, "/api/auth/logout", nil, nil, "")
	if err != nil {
		return err
	}

	c.setToken("")

	return nil
}

func (c *Client) Me(ctx context.Context) (*taskboard.User, error) {
	var user taskboard.User
	if _, err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, &user, "user"); err != nil {
		return nil, err
	}

	return &user, nil
}

func (c *Client) ListUsers(ctx context.Context) ([]*taskboard.User, error) {
	var users []*taskboard.User
	if _, err := c.do(ctx, http.MethodGet, "/api/users", nil, &users, "user"); err != nil {
		return nil, err
	}

	return users, nil
}

func (c *Client) GetUser(ctx context.Context, id int64) (*taskboard.User, error) {
	var user taskboard.User
	if _, err := c.do(ctx, http.MethodGet, "/api/users/"+itoa(id), nil, &user, "user"); err != nil {
		return nil, err
	}

	return &user, nil
}

func (c *Client) UpdateUserRole(ctx context.Context, id int64, role taskboard.Role) (*taskboard.User, error) {
	var user taskboard.User
	path := "/api/users/" + itoa(id) + "/role"
	if _, err := c.do(ctx, http.MethodPut, path, map[string]taskboard.Role{"role": role}, &user, "user"); err != nil {
		return nil, err
	}

	return &user, nil
}

func (c *Client) ListProjects(ctx context.Context) ([]*taskboard.Project, error) {
	var projects []*taskboard.Project
	if _, err := c.do(ctx, http.MethodGet, "/api/projects", nil, &projects, "project"); err != nil {
		return nil, err
	}

	return projects, nil
}

func (c *Client) GetProject(ctx context.Context, id int64) (*taskboard.Project, error) {
	var project taskboard.Project
	if _, err := c.do(ctx, http.MethodGet, "/api/projects/"+itoa(id), nil, &project, "project"); err != nil {
		return nil, err
	}

	return &project, nil
}

func (c *Client) CreateProject(ctx context.Context, req CreateProjectRequest) (*taskboard.Project, error) {
	var project taskboard.Project
	if _, err := c.do(ctx, http.MethodPost, "/api/projects", req, &project, "project"); err != nil {
		return nil, err
	}

	return &project, nil
}

// UpdateProject sends changes as given. Use a nil map value to clear a
// nullable field.
func (c *Client) UpdateProject(ctx context.Context, id int64, changes map[string]interface{}) (*taskboard.Project, error) {
	var project taskboard.Project
	if _, err := c.do(ctx, http.MethodPut, "/api/projects/"+itoa(id), changes, &project, "project"); err != nil {
		return nil, err
	}

	return &project, nil
}

func (c *Client) DeleteProject(ctx context.Context, id int64) error {
	_, err := c.do(ctx, http.MethodDelete, "/api/projects/"+itoa(id), nil, nil, "project")
	return err
}

func (c *Client) ListTasks(ctx context.Context) ([]*taskboard.Task, error) {
	var tasks []*taskboard.Task
	if _, err := c.do(ctx, http.MethodGet, "/api/tasks", nil, &tasks, "task"); err != nil {
		return nil, err
	}

	return tasks, nil
}

func (c *Client) GetTask(ctx context.Context, id int64) (*taskboard.Task, error) {
	var task taskboard.Task
	if _, err := c.do(ctx, http.MethodGet, "/api/tasks/"+itoa(id), nil, &task, "task"); err != nil {
		return nil, err
	}

	return &task, nil
}

func (c *Client) CreateTask(ctx context.Context, req CreateTaskRequest) (*taskboard.Task, error) {
	var task taskboard.Task
	if _, err := c.do(ctx, http.MethodPost, "/api/tasks", req, &task, "task"); err != nil {
		return nil, err
	}

	return &task, nil
}

// UpdateTask sends changes as given. Use a nil dueDate to clear it.
func (c *Client) UpdateTask(ctx context.Context, id int64, changes map[string]interface{}) (*taskboard.Task, error) {
	var task taskboard.Task
	if _, err := c.do(ctx, http.MethodPut, "/api/tasks/"+itoa(id), changes, &task, "task"); err != nil {
		return nil, err
	}

	return &task, nil
}

func (c *Client) DeleteTask(ctx context.Context, id int64) error {
	_, err := c.do(ctx, http.MethodDelete, "/api/tasks/"+itoa(id), nil, nil, "task")
	return err
}

// do sends one request and decodes a successful JSON response into out.
func (c *Client) do(
	ctx context.Context,
	method, path string,
	in interface{},
	out interface{},
	model string,
) (*http.Response, error) {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(b)
	}

	u := *c.baseURL
	u.Path = c.baseURL.Path + path

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, ErrFailedToConnect
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}

	if res.StatusCode >= http.StatusBadRequest {
		var e errorResponse
		_ = json.Unmarshal(raw, &e)
		if res.StatusCode == http.StatusNotFound && e.Message == "" {
			e.Message = model + " not found"
		}
		return res, domainError(res.StatusCode, e)
	}

	if out != nil && len(raw) != 0 {
		if err = json.Unmarshal(raw, out); err != nil {
			return res, ErrMalformedResponse
		}
	}

	return res, nil
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}

type Option func(*options)

func WithTLSConfig(config *tls.Config) Option {
	return func(o *options) {
		o.tlsConfig = config
	}
}

// WithHTTPClient replaces the HTTP client. WithTLSConfig and WithTimeout do
// not apply to it.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) {
		o.httpClient = c
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(o *options) {
		o.timeout = timeout
	}
}

func WithToken(token string) Option {
	return func(o *options) {
		o.token = token
	}
}

func WithCookieName(name string) Option {
	return func(o *options) {
		o.cookieName = name
	}
}

type options struct {
	tlsConfig  *tls.Config
	httpClient *http.Client
	timeout    time.Duration
	token      string
	cookieName string
}
