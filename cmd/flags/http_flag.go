package flags

import (
	"crypto/tls"
	"net"
	"strconv"

	"github.com/taskboard/taskboard/pkg/ioutilx"
	"github.com/taskboard/taskboard/pkg/logx"
)

type HTTPFlag struct {
	Hostname       string               `long:"listen-hostname" env:"HTTP_LISTEN_HOSTNAME" default:"0.0.0.0" description:"Hostname on which to listen for HTTP traffic"`
	Port           int                  `long:"listen-port" env:"HTTP_LISTEN_PORT" default:"5000" description:"Port on which to listen for HTTP traffic"`
	TLSCertificate ioutilx.FileOrString `long:"tls-certificate" env:"HTTP_TLS_CERTIFICATE" description:"TLS certificate, as a file path or PEM; TLS is off when empty"`
	TLSKey         ioutilx.FileOrString `long:"tls-key" env:"HTTP_TLS_KEY" description:"TLS private key, as a file path or PEM"`
	AllowedOrigins []string             `long:"allowed-origin" env:"HTTP_ALLOWED_ORIGINS" env-delim:"," default:"http://localhost:3000" description:"Origin allowed to make credentialed cross-origin requests"`
}

func (f HTTPFlag) Addr() string {
	return net.JoinHostPort(f.Hostname, strconv.Itoa(f.Port))
}

// TLSConfig returns nil when no certificate is configured.
func (f HTTPFlag) TLSConfig(logger logx.Logger) (*tls.Config, error) {
	if f.TLSCertificate == "" {
		return nil, nil
	}

	cert, err := f.TLSCertificate.Read()
	if err != nil {
		logger.Error(failedToReadFile, err, logx.Data{Key: "flag", Value: "tls-certificate"})
		return nil, err
	}

	key, err := f.TLSKey.Read()
	if err != nil {
		logger.Error(failedToReadFile, err, logx.Data{Key: "flag", Value: "tls-key"})
		return nil, err
	}

	pair, err := tls.X509KeyPair(cert, key)
	if err != nil {
		logger.Error(failedToParseTLSCredentials, err)
		return nil, err
	}

	return &tls.Config{
		Certificates: []tls.Certificate{pair},
		MinVersion:   tls.VersionTLS12,
	}, nil
}
