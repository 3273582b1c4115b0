package flags_test

import (
	"github.com/taskboard/taskboard/cmd/flags"
	"github.com/taskboard/taskboard/pkg/logx"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"
)

var _ = Describe("LagerFlag", func() {
	DescribeTable("filtering by level",
		func(level flags.LogLevel, debug, info, errs bool) {
			buffer := gbytes.NewBuffer()
			logger := flags.LagerFlag{LogLevel: level}.LoggerTo(buffer, "taskboard")

			logger.Debug("debug-message")
			logger.Info("info-message")
			logger.Error("error-message", errFake)

			contents := string(buffer.Contents())
			Expect(contents).To(expectContains(debug, "debug-message"))
			Expect(contents).To(expectContains(info, "info-message"))
			Expect(contents).To(expectContains(errs, "error-message"))
		},
		Entry("debug", flags.LogLevelDebug, true, true, true),
		Entry("info", flags.LogLevelInfo, false, true, true),
		Entry("error", flags.LogLevelError, false, false, true),
		Entry("fatal", flags.LogLevelFatal, false, false, false),
	)

	It("names log lines after the component and session", func() {
		buffer := gbytes.NewBuffer()
		logger := flags.LagerFlag{LogLevel: flags.LogLevelInfo}.LoggerTo(buffer, "taskboard")

		logger.WithName("serve").Info("starting", logx.Data{Key: "port", Value: 5000})

		Eventually(buffer).Should(gbytes.Say(`"message":"taskboard.serve.starting"`))
		Expect(string(buffer.Contents())).To(ContainSubstring(`"port":5000`))
	})
})

type fakeError string

func (e fakeError) Error() string { return string(e) }

var errFake = fakeError("boom")

func expectContains(expected bool, message string) OmegaMatcher {
	if expected {
		return ContainSubstring(message)
	}
	return Not(ContainSubstring(message))
}
