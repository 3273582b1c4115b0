package cmd

import (
	"context"
	"errors"
	"io"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"code.cloudfoundry.org/clock"
	"github.com/taskboard/taskboard/cmd/flags"
	"github.com/taskboard/taskboard/pkg/api"
	"github.com/taskboard/taskboard/pkg/logx"
	"github.com/taskboard/taskboard/pkg/migrations"
	"github.com/taskboard/taskboard/pkg/sqlx"
	"golang.org/x/sync/errgroup"
)

// Version is recorded in audit events. It is set at build time.
var Version = "dev"

type ServeCommand struct {
	Logger flags.LagerFlag

	DB       flags.DBFlag       `group:"DB" namespace:"db"`
	HTTP     flags.HTTPFlag     `group:"HTTP" namespace:"http"`
	Auth     flags.AuthFlag     `group:"Auth" namespace:"auth"`
	AuditLog flags.AuditLogFlag `group:"Audit Log" namespace:"audit-log"`
	StatsD   flags.StatsDFlag   `group:"StatsD" namespace:"statsd"`

	AutoMigrate     bool          `long:"auto-migrate" env:"AUTO_MIGRATE" description:"Apply pending migrations before serving"`
	ShutdownTimeout time.Duration `long:"shutdown-timeout" env:"SHUTDOWN_TIMEOUT" default:"30s" description:"Time in-flight requests get to finish on shutdown"`
}

func (cmd ServeCommand) Execute([]string) error {
	logger := cmd.Logger.Logger("taskboard").WithName("serve")

	listener, err := net.Listen("tcp", cmd.HTTP.Addr())
	if err != nil {
		logger.Error(failedToListen, err, logx.Data{Key: "addr", Value: cmd.HTTP.Addr()})
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return cmd.Serve(ctx, logger, listener)
}

// Serve runs the API on listener until ctx is done, then lets in-flight
// requests finish within the shutdown timeout.
func (cmd ServeCommand) Serve(ctx context.Context, logger logx.Logger, listener net.Listener) error {
	clk := clock.NewClock()

	store, conn, err := cmd.DB.Store(ctx, logger, clk)
	if err != nil {
		return err
	}
	if conn != nil {
		defer closeLogged(logger, conn)

		if err = cmd.prepare(ctx, logger, conn); err != nil {
			return err
		}
	}

	tokens, err := cmd.Auth.TokenIssuer(clk)
	if err != nil {
		return err
	}

	resolver, err := cmd.Auth.Resolver(ctx, logger, tokens, store)
	if err != nil {
		return err
	}

	tlsConfig, err := cmd.HTTP.TLSConfig(logger)
	if err != nil {
		return err
	}

	statter, statterCloser, err := cmd.StatsD.Statter(logger)
	if err != nil {
		return err
	}
	defer closeLogged(logger, statterCloser)

	port := 0
	if addr, ok := listener.Addr().(*net.TCPAddr); ok {
		port = addr.Port
	}

	securityLogger, auditCloser, err := cmd.AuditLog.Logger(logger, Version, port)
	if err != nil {
		return err
	}
	defer closeLogged(logger, auditCloser)

	server := api.NewServer(store, resolver, tokens,
		api.WithLogger(logger),
		api.WithSecurityLogger(securityLogger),
		api.WithStatter(statter),
		api.WithClock(clk),
		api.WithTLSConfig(tlsConfig),
		api.WithAllowedOrigins(cmd.HTTP.AllowedOrigins...),
		api.WithCookie(cmd.Auth.CookieName, cmd.Auth.CookieSecure),
	)

	logger.Info(starting, logx.Data{Key: "addr", Value: listener.Addr().String()}, logx.Data{Key: "tls", Value: tlsConfig != nil})
	defer logger.Info(finished)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		err := server.Serve(listener)
		if errors.Is(err, api.ErrServerStopped) {
			return nil
		}
		return err
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cmd.ShutdownTimeout)
		defer cancel()

		if err := server.GracefulStop(shutdownCtx); err != nil {
			logger.Error(failedToStop, err)
			return server.Stop()
		}
		return nil
	})

	return g.Wait()
}

func (cmd ServeCommand) prepare(ctx context.Context, logger logx.Logger, conn *sqlx.DB) error {
	if cmd.AutoMigrate {
		if err := sqlx.ApplyMigrations(ctx, logger, conn, migrations.TableName, migrations.Migrations); err != nil {
			logger.Error(failedToApplyMigrations, err)
			return err
		}
	}

	if err := sqlx.VerifyAppliedMigrations(ctx, logger.WithName("verify-migrations"), conn, migrations.TableName, migrations.Migrations); err != nil {
		logger.Error(failedToVerifyMigrations, err)
		return err
	}

	return nil
}

func closeLogged(logger logx.Logger, closer io.Closer) {
	if err := closer.Close(); err != nil {
		logger.Error(failedToClose, err)
	}
}
