package cryptox_test

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"time"

	. "github.com/taskboard/taskboard/pkg/cryptox"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func selfSignedPEM() []byte {
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	Expect(err).NotTo(HaveOccurred())

	template := &x509.Certificate{
		SerialNumber:          big.NewInt(1),
		Subject:               pkix.Name{CommonName: "taskboard-test-ca"},
		NotBefore:             time.Now().Add(-time.Hour),
		NotAfter:              time.Now().Add(time.Hour),
		IsCA:                  true,
		BasicConstraintsValid: true,
		KeyUsage:              x509.KeyUsageCertSign,
	}

	der, err := x509.CreateCertificate(rand.Reader, template, template, &key.PublicKey, key)
	Expect(err).NotTo(HaveOccurred())

	return pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der})
}

var _ = Describe("NewCertPool", func() {
	It("adds every certificate", func() {
		pool, err := NewCertPool(selfSignedPEM(), selfSignedPEM())
		Expect(err).NotTo(HaveOccurred())
		Expect(pool.Equal(x509.NewCertPool())).To(BeFalse())
	})

	It("fails on invalid PEM", func() {
		_, err := NewCertPool([]byte("not a certificate"))
		Expect(err).To(Equal(ErrFailedToAppendCertToPool))
	})
})
