package cmd_test

import (
	"os"
	"path/filepath"

	. "github.com/taskboard/taskboard/cmd"
	"github.com/taskboard/taskboard/cmd/flags"
	"github.com/taskboard/taskboard/pkg/sqlx"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var quiet = flags.LagerFlag{LogLevel: flags.LogLevelFatal}

var _ = Describe("taskboard migrate", func() {
	var (
		dir string
		db  flags.DBFlag
	)

	BeforeEach(func() {
		var err error
		dir, err = os.MkdirTemp("", "taskboard-migrate")
		Expect(err).NotTo(HaveOccurred())

		db = flags.DBFlag{
			Driver: sqlx.DBDriverSQLite,
			Schema: filepath.Join(dir, "taskboard.db"),
		}
	})

	AfterEach(func() {
		Expect(os.RemoveAll(dir)).To(Succeed())
	})

	It("is a no-op for the in-memory driver", func() {
		memory := flags.DBFlag{Driver: flags.DBDriverInMemory}

		Expect(UpCommand{Logger: quiet, DB: memory}.Execute(nil)).To(Succeed())
		Expect(DownCommand{Logger: quiet, DB: memory}.Execute(nil)).To(Succeed())
		Expect(VerifyCommand{Logger: quiet, DB: memory}.Execute(nil)).To(Succeed())
	})

	It("errors out on a database server without a host", func() {
		err := UpCommand{Logger: quiet, DB: flags.DBFlag{Driver: sqlx.DBDriverMySQL}}.Execute(nil)
		Expect(err).To(MatchError(flags.ErrMissingHost))
	})

	It("fails verification before the migrations are applied", func() {
		Expect(VerifyCommand{Logger: quiet, DB: db}.Execute(nil)).NotTo(Succeed())
	})

	It("applies and rolls back the schema", func() {
		Expect(UpCommand{Logger: quiet, DB: db}.Execute(nil)).To(Succeed())
		Expect(VerifyCommand{Logger: quiet, DB: db}.Execute(nil)).To(Succeed())

		Expect(UpCommand{Logger: quiet, DB: db}.Execute(nil)).To(Succeed())
		Expect(VerifyCommand{Logger: quiet, DB: db}.Execute(nil)).To(Succeed())

		Expect(DownCommand{Logger: quiet, DB: db}.Execute(nil)).To(Succeed())
		Expect(VerifyCommand{Logger: quiet, DB: db}.Execute(nil)).To(MatchError(sqlx.ErrMigrationsOutOfSync))

		Expect(DownCommand{Logger: quiet, DB: db, All: true}.Execute(nil)).To(Succeed())
		Expect(UpCommand{Logger: quiet, DB: db}.Execute(nil)).To(Succeed())
		Expect(VerifyCommand{Logger: quiet, DB: db}.Execute(nil)).To(Succeed())
	})
})
