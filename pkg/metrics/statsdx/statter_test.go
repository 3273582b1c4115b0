package statsdx_test

import (
	"net"
	"time"

	"github.com/cactus/go-statsd-client/v5/statsd"
	"github.com/taskboard/taskboard/pkg/logx/logxfakes"
	. "github.com/taskboard/taskboard/pkg/metrics/statsdx"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Statter", func() {
	var (
		listener net.PacketConn
		client   statsd.Statter
		logger   *logxfakes.FakeLogger

		subject *Statter
	)

	BeforeEach(func() {
		var err error

		listener, err = net.ListenPacket("udp", "127.0.0.1:0")
		Expect(err).NotTo(HaveOccurred())

		client, err = statsd.NewClientWithConfig(&statsd.ClientConfig{
			Address: listener.LocalAddr().String(),
			Prefix:  "taskboard",
		})
		Expect(err).NotTo(HaveOccurred())

		logger = new(logxfakes.FakeLogger)
		subject = NewStatter(logger, client)
	})

	AfterEach(func() {
		Expect(subject.Close()).To(Succeed())
		Expect(listener.Close()).To(Succeed())
	})

	receive := func() string {
		buf := make([]byte, 1024)
		Expect(listener.SetReadDeadline(time.Now().Add(2 * time.Second))).To(Succeed())
		n, _, err := listener.ReadFrom(buf)
		Expect(err).NotTo(HaveOccurred())
		return string(buf[:n])
	}

	It("sends counters with the prefix", func() {
		subject.Inc("count.list-projects", 1)
		Expect(receive()).To(Equal("taskboard.count.list-projects:1|c"))
	})

	It("sends gauges", func() {
		subject.Gauge("probe.runs.success", 1)
		Expect(receive()).To(Equal("taskboard.probe.runs.success:1|g"))
	})

	It("sends timings", func() {
		subject.TimingDuration("requestduration.list-tasks", 5*time.Millisecond)
		Expect(receive()).To(HavePrefix("taskboard.requestduration.list-tasks:5"))
	})

	It("does not log when sends succeed", func() {
		subject.Inc("count.me", 1)
		receive()
		Expect(logger.ErrorCallCount()).To(Equal(0))
	})
})
