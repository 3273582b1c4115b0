package contextx

import (
	"context"
	"net"
	"time"
)

type receiptTimeKey struct{}
type remoteAddrKey struct{}

func WithReceiptTime(parent context.Context, rt time.Time) context.Context {
	return context.WithValue(parent, receiptTimeKey{}, rt)
}

func ReceiptTimeFromContext(ctx context.Context) (time.Time, bool) {
	t, ok := ctx.Value(receiptTimeKey{}).(time.Time)
	return t, ok
}

// WithRemoteAddr records the caller's address as seen by the HTTP server.
func WithRemoteAddr(parent context.Context, addr *net.TCPAddr) context.Context {
	return context.WithValue(parent, remoteAddrKey{}, addr)
}

func RemoteAddrFromContext(ctx context.Context) (*net.TCPAddr, bool) {
	addr, ok := ctx.Value(remoteAddrKey{}).(*net.TCPAddr)
	return addr, ok && addr != nil
}

// ParseRemoteAddr parses an http.Request RemoteAddr of the form host:port.
func ParseRemoteAddr(remoteAddr string) (*net.TCPAddr, bool) {
	host, port, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		host = remoteAddr
		port = "0"
	}

	ip := net.ParseIP(host)
	if ip == nil {
		return nil, false
	}

	p, err := net.LookupPort("tcp", port)
	if err != nil {
		p = 0
	}

	return &net.TCPAddr{IP: ip, Port: p}, true
}
