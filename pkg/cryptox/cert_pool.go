package cryptox

import (
	"crypto/x509"
	"errors"
)

var ErrFailedToAppendCertToPool = errors.New("cryptox: failed to append certificate to pool")

// NewCertPool builds a pool from PEM encoded certificates.
func NewCertPool(certs ...[]byte) (*x509.CertPool, error) {
	pool := x509.NewCertPool()

	for _, cert := range certs {
		if ok := pool.AppendCertsFromPEM(cert); !ok {
			return nil, ErrFailedToAppendCertToPool
		}
	}

	return pool, nil
}
