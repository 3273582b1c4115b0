package cef_test

import (
	"context"
	"net"
	"time"

	"github.com/taskboard/taskboard/pkg/contextx"
	"github.com/taskboard/taskboard/pkg/logx"
	. "github.com/taskboard/taskboard/pkg/logx/cef"
	"github.com/taskboard/taskboard/pkg/logx/logxfakes"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	. "github.com/onsi/gomega/gbytes"
)

var _ = Describe("Logger", func() {
	var (
		logOutput *Buffer
		errLogger *logxfakes.FakeLogger

		logger *Logger

		ctx context.Context
	)

	BeforeEach(func() {
		logOutput = NewBuffer()
		errLogger = new(logxfakes.FakeLogger)

		logger = NewLogger(logOutput, "taskboard", "unittest", "0.0.1", "hook", 443, errLogger)

		addr := &net.TCPAddr{IP: net.IPv4(1, 1, 1, 1), Port: 12345}
		rt := time.Date(1999, 12, 31, 23, 59, 59, 59, time.UTC)
		ctx = contextx.WithReceiptTime(contextx.WithRemoteAddr(context.Background(), addr), rt)
	})

	Describe("#Log", func() {
		Context("when all fields are available", func() {
			It("logs the header and the source and destination addresses", func() {
				logger.Log(ctx, "authorize", "update task")

				Eventually(logOutput).Should(Say(`CEF:0\|taskboard\|unittest\|0.0.1\|authorize\|update task\|0\|`))
				Eventually(logOutput).Should(Say("dst=hook"))
				Eventually(logOutput).Should(Say("src=1.1.1.1"))
				Eventually(logOutput).Should(Say("dpt=443"))
				Eventually(logOutput).Should(Say("spt=12345"))
				Eventually(logOutput).Should(Say("rt=\"Dec 31 1999 23:59:59\""))
			})
		})

		Context("when the receipt time is not available", func() {
			It("does not log rt", func() {
				logger.Log(context.Background(), "authorize", "update task")

				Eventually(logOutput).Should(Say("spt=0"))
				Consistently(logOutput).ShouldNot(Say("rt="))
			})
		})

		It("escapes header and extension delimiters", func() {
			logger.Log(ctx, `sig|nature`, `na\me`, logx.SecurityData{Key: "reason", Value: "a=b"})

			Eventually(logOutput).Should(Say(`\|sig\\\|nature\|na\\\\me\|`))
			Eventually(logOutput).Should(Say(`cs1=a\\=b`))
		})

		Context("when there are custom extensions", func() {
			It("labels each extension and keeps msg as is", func() {
				logger.Log(ctx, "authorize", "update task",
					logx.SecurityData{Key: "actor", Value: "7"},
					logx.SecurityData{Key: "msg", Value: "owner-mismatch"},
					logx.SecurityData{Key: "resource", Value: "task"},
				)

				Eventually(logOutput).Should(Say("cs1Label=actor cs1=7"))
				Eventually(logOutput).Should(Say("msg=owner-mismatch"))
				Eventually(logOutput).Should(Say("cs2Label=resource cs2=task"))
				Expect(errLogger.ErrorCallCount()).To(Equal(0))
			})

			Context("when an extension has no key or no value", func() {
				It("skips it and reports it once", func() {
					logger.Log(ctx, "authorize", "update task",
						logx.SecurityData{Value: "no-key"},
						logx.SecurityData{Key: "no-value"},
						logx.SecurityData{Key: "key", Value: "value"},
					)

					Eventually(logOutput).Should(Say("cs1Label=key cs1=value"))
					Expect(string(logOutput.Contents())).NotTo(ContainSubstring("no-key"))
					Expect(string(logOutput.Contents())).NotTo(ContainSubstring("no-value"))

					Expect(errLogger.ErrorCallCount()).To(Equal(1))
					msg, err, _ := errLogger.ErrorArgsForCall(0)
					Expect(msg).To(Equal("invalid-cef-custom-extension"))
					Expect(err).To(MatchError("the extension key and/or value is empty"))
				})
			})

			Context("when there are more than 6 custom extensions", func() {
				It("logs only the first 6", func() {
					var args []logx.SecurityData
					for _, k := range []string{"a", "b", "c", "d", "e", "f", "g"} {
						args = append(args, logx.SecurityData{Key: k, Value: k + "-value"})
					}

					logger.Log(ctx, "authorize", "update task", args...)

					Eventually(logOutput).Should(Say("cs6Label=f cs6=f-value"))
					Expect(string(logOutput.Contents())).NotTo(ContainSubstring("g-value"))

					Expect(errLogger.ErrorCallCount()).To(Equal(1))
					msg, err, _ := errLogger.ErrorArgsForCall(0)
					Expect(msg).To(Equal("invalid-cef-custom-extension"))
					Expect(err).To(MatchError("cannot provide more than 6 custom extensions"))
				})
			})
		})
	})
})
