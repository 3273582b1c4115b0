package api

import (
	"context"
	"crypto/tls"
	"errors"
	"net"
	"net/http"
	"time"

	"code.cloudfoundry.org/clock"
	"github.com/taskboard/taskboard/pkg/api/repos"
	"github.com/taskboard/taskboard/pkg/logx"
	"github.com/taskboard/taskboard/pkg/metrics"
	"github.com/taskboard/taskboard/pkg/policy"
	"github.com/taskboard/taskboard/pkg/taskboard"
)

const (
	DefaultCookieName        = "token"
	DefaultReadHeaderTimeout = 10 * time.Second
	DefaultIdleTimeout       = 2 * time.Minute
)

//go:generate counterfeiter . ActorResolver

type ActorResolver interface {
	ResolveActor(ctx context.Context, logger logx.Logger, credential string) (taskboard.Actor, error)
}

//go:generate counterfeiter . TokenIssuer

type TokenIssuer interface {
	Issue(user *taskboard.User) (string, time.Time, error)
	TTL() time.Duration
}

// Server is the HTTP/JSON boundary. Every handler resolves the caller,
// asks the policy engine for a decision and only touches the store after
// an allow.
type Server struct {
	logger         logx.Logger
	securityLogger logx.SecurityLogger
	statter        metrics.Statter
	clock          clock.Clock

	store    repos.Store
	engine   *policy.Engine
	resolver ActorResolver
	tokens   TokenIssuer

	cookieName   string
	cookieSecure bool

	server *http.Server
}

func NewServer(store repos.Store, resolver ActorResolver, tokens TokenIssuer, opts ...ServerOption) *Server {
	config := &options{
		logger:         logx.Discard(),
		securityLogger: emptySecurityLogger{},
		statter:        metrics.Discard(),
		clock:          clock.NewClock(),
		cookieName:     DefaultCookieName,
	}

	for _, opt := range opts {
		opt(config)
	}

	s := &Server{
		logger:         config.logger,
		securityLogger: config.securityLogger,
		statter:        config.statter,
		clock:          config.clock,
		store:          store,
		engine:         policy.NewEngine(repos.NewPolicyLookup(config.logger, store, store)),
		resolver:       resolver,
		tokens:         tokens,
		cookieName:     config.cookieName,
		cookieSecure:   config.cookieSecure,
	}

	s.server = &http.Server{
		Handler:           s.routes(config.allowedOrigins),
		TLSConfig:         config.tlsConfig,
		ReadHeaderTimeout: DefaultReadHeaderTimeout,
		IdleTimeout:       DefaultIdleTimeout,
	}

	return s
}

// Handler exposes the routed handler, mainly for httptest.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

func (s *Server) Serve(listener net.Listener) error {
	var err error
	if s.server.TLSConfig != nil {
		err = s.server.ServeTLS(listener, "", "")
	} else {
		err = s.server.Serve(listener)
	}

	switch {
	case err == nil:
		return nil
	case errors.Is(err, http.ErrServerClosed):
		return ErrServerStopped
	default:
		s.logger.Error(failedToServe, err)
		return ErrServerFailedToStart
	}
}

// GracefulStop waits for in-flight requests until ctx is done.
func (s *Server) GracefulStop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *Server) Stop() error {
	return s.server.Close()
}

type ServerOption func(*options)

func WithLogger(logger logx.Logger) ServerOption {
	return func(o *options) {
		o.logger = logger
	}
}

func WithSecurityLogger(logger logx.SecurityLogger) ServerOption {
	return func(o *options) {
		o.securityLogger = logger
	}
}

func WithStatter(statter metrics.Statter) ServerOption {
	return func(o *options) {
		o.statter = statter
	}
}

func WithClock(c clock.Clock) ServerOption {
	return func(o *options) {
		o.clock = c
	}
}

func WithTLSConfig(config *tls.Config) ServerOption {
	return func(o *options) {
		o.tlsConfig = config
	}
}

func WithAllowedOrigins(origins ...string) ServerOption {
	return func(o *options) {
		o.allowedOrigins = origins
	}
}

// WithCookie sets the name of the auth cookie and whether it is only sent
// over TLS.
func WithCookie(name string, secure bool) ServerOption {
	return func(o *options) {
		if name != "" {
			o.cookieName = name
		}
		o.cookieSecure = secure
	}
}

type options struct {
	logger         logx.Logger
	securityLogger logx.SecurityLogger
	statter        metrics.Statter
	clock          clock.Clock

	tlsConfig      *tls.Config
	allowedOrigins []string

	cookieName   string
	cookieSecure bool
}

type emptySecurityLogger struct{}

func (emptySecurityLogger) Log(context.Context, string, string, ...logx.SecurityData) {}
