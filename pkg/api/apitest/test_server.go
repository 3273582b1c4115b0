package apitest

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http/httptest"
	"sync/atomic"

	"code.cloudfoundry.org/clock"
	"github.com/taskboard/taskboard/pkg/api"
	"github.com/taskboard/taskboard/pkg/api/repos"
	"github.com/taskboard/taskboard/pkg/api/repos/inmemory"
	"github.com/taskboard/taskboard/pkg/identity"
	"github.com/taskboard/taskboard/pkg/logx"
	"github.com/taskboard/taskboard/pkg/taskboard"
)

const (
	SigningKey = "apitest-signing-key"
	Password   = "password"
)

// TestServer runs the full HTTP boundary over an in-memory store.
type TestServer struct {
	Store  *inmemory.Store
	Tokens *identity.TokenIssuer

	server  *httptest.Server
	counter int64
}

func NewTestServer(opts ...TestServerOption) *TestServer {
	config := &options{
		clock: clock.NewClock(),
	}
	for _, o := range opts {
		o(config)
	}

	store := inmemory.NewStore(config.clock)

	tokens, err := identity.NewTokenIssuer([]byte(SigningKey), identity.WithTokenClock(config.clock))
	if err != nil {
		panic(err)
	}
	resolver := identity.NewResolver(tokens, store, nil)

	serverOpts := append([]api.ServerOption{api.WithClock(config.clock)}, config.serverOpts...)
	server := api.NewServer(store, resolver, tokens, serverOpts...)

	ts := &TestServer{
		Store:  store,
		Tokens: tokens,
	}

	if config.tlsConfig != nil {
		ts.server = httptest.NewUnstartedServer(server.Handler())
		ts.server.TLS = config.tlsConfig
		ts.server.StartTLS()
	} else {
		ts.server = httptest.NewServer(server.Handler())
	}

	return ts
}

func (s *TestServer) URL() string {
	return s.server.URL
}

func (s *TestServer) Close() {
	s.server.Close()
}

// CreateUser registers a user straight into the store, gives it role and
// returns it with a bearer token. Its password is Password.
func (s *TestServer) CreateUser(role taskboard.Role) (*taskboard.User, string) {
	ctx := context.Background()
	n := atomic.AddInt64(&s.counter, 1)

	hash, err := identity.HashPassword(Password)
	if err != nil {
		panic(err)
	}

	user, err := s.Store.RegisterUser(ctx, logx.Discard(), repos.RegisterUserQuery{
		FirstName:    "Test",
		LastName:     fmt.Sprintf("User%d", n),
		Email:        fmt.Sprintf("user-%d@example.com", n),
		PasswordHash: hash,
	})
	if err != nil {
		panic(err)
	}

	if user.Role != role {
		user, err = s.Store.UpdateUserRole(ctx, logx.Discard(), repos.UpdateUserRoleQuery{
			UserID: user.ID,
			Role:   role,
		})
		if err != nil {
			panic(err)
		}
	}

	token, _, err := s.Tokens.Issue(user)
	if err != nil {
		panic(err)
	}

	return user, token
}

type TestServerOption func(*options)

func WithTLSConfig(config *tls.Config) TestServerOption {
	return func(o *options) {
		o.tlsConfig = config
	}
}

func WithClock(c clock.Clock) TestServerOption {
	return func(o *options) {
		o.clock = c
	}
}

func WithServerOptions(opts ...api.ServerOption) TestServerOption {
	return func(o *options) {
		o.serverOpts = append(o.serverOpts, opts...)
	}
}

type options struct {
	tlsConfig  *tls.Config
	clock      clock.Clock
	serverOpts []api.ServerOption
}
