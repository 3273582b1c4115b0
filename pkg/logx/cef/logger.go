package cef

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"sync"

	"github.com/taskboard/taskboard/pkg/contextx"
	"github.com/taskboard/taskboard/pkg/logx"
)

const (
	CEFTimeFormat             = "Jan 2 2006 15:04:05"
	invalidCEFCustomExtension = "invalid-cef-custom-extension"
	failedToWriteEvent        = "failed-to-write-cef-event"

	maxCustomExtensions = 6
)

type Vendor string
type Product string
type Version string
type Hostname string

// Logger writes one ArcSight CEF line per event.
type Logger struct {
	mu     sync.Mutex
	writer io.Writer

	vendor   string
	product  string
	version  string
	hostname string
	destPort int

	errLogger logx.Logger
}

func NewLogger(writer io.Writer, vendor Vendor, product Product, version Version, hostname Hostname, destPort int, errLogger logx.Logger) *Logger {
	return &Logger{
		writer:    writer,
		vendor:    string(vendor),
		product:   string(product),
		version:   string(version),
		hostname:  string(hostname),
		destPort:  destPort,
		errLogger: errLogger,
	}
}

type pair struct {
	key   string
	value string
}

func (l *Logger) Log(ctx context.Context, signature string, name string, args ...logx.SecurityData) {
	var (
		srcAddr net.IP
		srcPort int
	)

	if addr, ok := contextx.RemoteAddrFromContext(ctx); ok {
		srcAddr = addr.IP
		srcPort = addr.Port
	}

	extension := []pair{
		{"dst", l.hostname},
		{"src", srcAddr.String()},
		{"dpt", strconv.Itoa(l.destPort)},
		{"spt", strconv.Itoa(srcPort)},
	}

	if rt, ok := contextx.ReceiptTimeFromContext(ctx); ok {
		extension = append(extension, pair{"rt", fmt.Sprintf("\"%s\"", rt.Format(CEFTimeFormat))})
	}

	counter := 1
	invalidFound := false

	for _, ce := range args {
		if ce.Key == "" || ce.Value == "" {
			if !invalidFound {
				l.errLogger.Error(invalidCEFCustomExtension, errors.New("the extension key and/or value is empty"))
				invalidFound = true
			}
			continue
		}

		if ce.Key == "msg" {
			extension = append(extension, pair{"msg", ce.Value})
			continue
		}

		if counter > maxCustomExtensions {
			l.errLogger.Error(invalidCEFCustomExtension, errors.New("cannot provide more than 6 custom extensions"))
			break
		}

		extension = append(extension,
			pair{fmt.Sprintf("cs%dLabel", counter), ce.Key},
			pair{fmt.Sprintf("cs%d", counter), ce.Value},
		)
		counter++
	}

	l.write(signature, name, extension)
}

func (l *Logger) write(signature, name string, extension []pair) {
	var b strings.Builder

	fmt.Fprintf(&b, "CEF:0|%s|%s|%s|%s|%s|%d|",
		escapeHeader(l.vendor),
		escapeHeader(l.product),
		escapeHeader(l.version),
		escapeHeader(signature),
		escapeHeader(name),
		0,
	)

	for i, p := range extension {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(p.key)
		b.WriteByte('=')
		b.WriteString(escapeExtension(p.value))
	}
	b.WriteByte('\n')

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, err := io.WriteString(l.writer, b.String()); err != nil {
		l.errLogger.Error(failedToWriteEvent, err)
	}
}

var (
	headerEscaper    = strings.NewReplacer(`\`, `\\`, `|`, `\|`, "\n", " ", "\r", " ")
	extensionEscaper = strings.NewReplacer(`\`, `\\`, `=`, `\=`, "\n", `\n`, "\r", `\r`)
)

func escapeHeader(s string) string {
	return headerEscaper.Replace(s)
}

func escapeExtension(s string) string {
	return extensionEscaper.Replace(s)
}
