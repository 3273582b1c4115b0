package cmd_test

import (
	"context"
	"io"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"time"

	. "github.com/taskboard/taskboard/cmd"
	"github.com/taskboard/taskboard/cmd/flags"
	"github.com/taskboard/taskboard/pkg/logx"
	"github.com/taskboard/taskboard/pkg/sqlx"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("taskboard serve", func() {
	var (
		dir      string
		command  ServeCommand
		listener net.Listener
	)

	BeforeEach(func() {
		var err error
		dir, err = os.MkdirTemp("", "taskboard-serve")
		Expect(err).NotTo(HaveOccurred())

		listener, err = net.Listen("tcp", "127.0.0.1:0")
		Expect(err).NotTo(HaveOccurred())

		command = ServeCommand{
			Logger:          quiet,
			DB:              flags.DBFlag{Driver: flags.DBDriverInMemory},
			Auth:            flags.AuthFlag{SigningKey: "serve-test-signing-key", CookieName: "token"},
			AuditLog:        flags.AuditLogFlag{File: filepath.Join(dir, "audit.log"), Hostname: "taskboard.test"},
			ShutdownTimeout: time.Second,
		}
	})

	AfterEach(func() {
		listener.Close()
		Expect(os.RemoveAll(dir)).To(Succeed())
	})

	serve := func(ctx context.Context) <-chan error {
		done := make(chan error, 1)
		go func() {
			defer GinkgoRecover()
			done <- command.Serve(ctx, logx.Discard(), listener)
		}()
		return done
	}

	It("serves until the context is cancelled", func() {
		ctx, cancel := context.WithCancel(context.Background())
		done := serve(ctx)

		url := "http://" + listener.Addr().String() + "/"
		Eventually(func() (string, error) {
			resp, err := http.Get(url)
			if err != nil {
				return "", err
			}
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			return string(body), err
		}).ShouldNot(BeEmpty())

		cancel()
		Eventually(done, 5*time.Second).Should(Receive(BeNil()))
	})

	It("refuses to start without a signing key", func() {
		command.Auth.SigningKey = ""

		Eventually(serve(context.Background())).Should(Receive(HaveOccurred()))
	})

	It("refuses to start on an unmigrated database", func() {
		command.DB = flags.DBFlag{Driver: sqlx.DBDriverSQLite, Schema: filepath.Join(dir, "taskboard.db")}

		Eventually(serve(context.Background())).Should(Receive(HaveOccurred()))
	})

	It("migrates the database first when asked to", func() {
		command.DB = flags.DBFlag{Driver: sqlx.DBDriverSQLite, Schema: filepath.Join(dir, "taskboard.db")}
		command.AutoMigrate = true

		ctx, cancel := context.WithCancel(context.Background())
		done := serve(ctx)

		Eventually(func() error {
			resp, err := http.Get("http://" + listener.Addr().String() + "/")
			if err == nil {
				resp.Body.Close()
			}
			return err
		}).Should(Succeed())

		cancel()
		Eventually(done, 5*time.Second).Should(Receive(BeNil()))
	})
})
