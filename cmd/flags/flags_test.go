package flags_test

import (
	"context"

	"code.cloudfoundry.org/clock"
	"github.com/taskboard/taskboard/cmd/flags"
	"github.com/taskboard/taskboard/pkg/api/repos/inmemory"
	"github.com/taskboard/taskboard/pkg/identity"
	"github.com/taskboard/taskboard/pkg/logx"
	"github.com/taskboard/taskboard/pkg/metrics"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("AuthFlag", func() {
	It("requires a signing key", func() {
		_, err := flags.AuthFlag{}.TokenIssuer(clock.NewClock())
		Expect(err).To(MatchError(identity.ErrSigningKeyRequired))
	})

	It("issues tokens with the configured lifetime", func() {
		tokens, err := flags.AuthFlag{SigningKey: "a-literal-signing-key", TokenTTL: 42}.TokenIssuer(clock.NewClock())
		Expect(err).NotTo(HaveOccurred())
		Expect(tokens.TTL()).To(BeEquivalentTo(42))
	})

	It("builds a resolver without OIDC when no issuer is configured", func() {
		tokens, err := flags.AuthFlag{SigningKey: "key"}.TokenIssuer(clock.NewClock())
		Expect(err).NotTo(HaveOccurred())

		resolver, err := flags.AuthFlag{}.Resolver(context.Background(), logx.Discard(), tokens, inmemory.NewStore(clock.NewClock()))
		Expect(err).NotTo(HaveOccurred())
		Expect(resolver).NotTo(BeNil())
	})
})

var _ = Describe("HTTPFlag", func() {
	It("serves plain HTTP without a certificate", func() {
		f := flags.HTTPFlag{Hostname: "127.0.0.1", Port: 5000}

		config, err := f.TLSConfig(logx.Discard())
		Expect(err).NotTo(HaveOccurred())
		Expect(config).To(BeNil())
		Expect(f.Addr()).To(Equal("127.0.0.1:5000"))
	})

	It("rejects a certificate that does not parse", func() {
		f := flags.HTTPFlag{TLSCertificate: "not a certificate", TLSKey: "not a key"}

		_, err := f.TLSConfig(logx.Discard())
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("StatsDFlag", func() {
	It("discards metrics without a hostname", func() {
		statter, closer, err := flags.StatsDFlag{}.Statter(logx.Discard())
		Expect(err).NotTo(HaveOccurred())
		Expect(statter).To(Equal(metrics.Discard()))
		Expect(closer.Close()).To(Succeed())
	})

	It("sends metrics to the configured server", func() {
		f := flags.StatsDFlag{Hostname: "127.0.0.1", Port: 8125, Prefix: "taskboard"}
		Expect(f.Enabled()).To(BeTrue())

		statter, closer, err := f.Statter(logx.Discard())
		Expect(err).NotTo(HaveOccurred())
		Expect(statter).NotTo(BeNil())
		Expect(closer.Close()).To(Succeed())
	})
})
