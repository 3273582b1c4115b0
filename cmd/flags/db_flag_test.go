package flags_test

import (
	"context"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3/lagertest"
	"github.com/taskboard/taskboard/cmd/flags"
	"github.com/taskboard/taskboard/pkg/api/repos/inmemory"
	"github.com/taskboard/taskboard/pkg/logx"
	"github.com/taskboard/taskboard/pkg/logx/lagerx"
	"github.com/taskboard/taskboard/pkg/sqlx"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("DBFlag", func() {
	var (
		ctx    context.Context
		logger logx.Logger

		flag *flags.DBFlag
	)

	BeforeEach(func() {
		ctx = context.Background()
		logger = lagerx.NewLogger(lagertest.NewTestLogger("flags"))

		flag = &flags.DBFlag{
			Driver:   "mysql",
			Host:     "localhost",
			Port:     1234,
			Schema:   "taskboard",
			Username: "taskboard-user",
			Password: "taskboard-password",
		}
	})

	Describe("the in-memory driver", func() {
		BeforeEach(func() {
			flag = &flags.DBFlag{Driver: flags.DBDriverInMemory}
		})

		It("has no connection", func() {
			_, err := flag.Connect(ctx, logger)
			Expect(err).To(MatchError(flags.ErrInMemoryConnect))
		})

		It("opens an in-memory store", func() {
			store, conn, err := flag.Store(ctx, logger, clock.NewClock())
			Expect(err).NotTo(HaveOccurred())
			Expect(conn).To(BeNil())
			Expect(store).To(BeAssignableToTypeOf(&inmemory.Store{}))
		})
	})

	Describe("a connection to a database server", func() {
		It("requires a host", func() {
			flag.Host = ""

			_, err := flag.Connect(ctx, logger)
			Expect(err).To(MatchError(flags.ErrMissingHost))
		})

		It("requires a port", func() {
			flag.Port = 0

			_, err := flag.Connect(ctx, logger)
			Expect(err).To(MatchError(flags.ErrMissingPort))
		})

		It("requires a schema", func() {
			flag.Schema = ""

			_, err := flag.Connect(ctx, logger)
			Expect(err).To(MatchError(flags.ErrMissingSchema))
		})

		It("requires a username", func() {
			flag.Username = ""

			_, err := flag.Connect(ctx, logger)
			Expect(err).To(MatchError(flags.ErrMissingUsername))
		})

		It("rejects root CAs that are not certificates", func() {
			flag.TLS.RootCAs = append(flag.TLS.RootCAs, "not a certificate")

			_, err := flag.Connect(ctx, logger)
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("the sqlite driver", func() {
		BeforeEach(func() {
			flag = &flags.DBFlag{Driver: sqlx.DBDriverSQLite}
		})

		It("opens an in-memory database without any other flag", func() {
			store, conn, err := flag.Store(ctx, logger, clock.NewClock())
			Expect(err).NotTo(HaveOccurred())
			defer conn.Close()

			Expect(store).NotTo(BeNil())
			Expect(conn.Driver()).To(Equal(sqlx.DBDriverSQLite))
		})
	})
})
