package flags

import (
	"io"
	"os"

	"github.com/taskboard/taskboard/pkg/ioutilx"
	"github.com/taskboard/taskboard/pkg/logx"
	"github.com/taskboard/taskboard/pkg/logx/cef"
)

const (
	auditVendor  cef.Vendor  = "taskboard"
	auditProduct cef.Product = "taskboard"
)

type AuditLogFlag struct {
	File     string `long:"file" env:"AUDIT_LOG_FILE" default:"-" description:"File receiving the CEF security log; \"-\" for stdout"`
	Hostname string `long:"hostname" env:"AUDIT_LOG_HOSTNAME" description:"Destination host recorded in each event; defaults to the machine hostname"`
}

// Logger opens the audit log. The returned closer releases the file.
func (f AuditLogFlag) Logger(errLogger logx.Logger, version string, destPort int) (*cef.Logger, io.Closer, error) {
	writer, err := ioutilx.OpenLogWriter(f.File)
	if err != nil {
		errLogger.Error(failedToOpenAuditLog, err, logx.Data{Key: "file", Value: f.File})
		return nil, nil, err
	}

	hostname := f.Hostname
	if hostname == "" {
		hostname, _ = os.Hostname()
	}

	logger := cef.NewLogger(writer, auditVendor, auditProduct, cef.Version(version), cef.Hostname(hostname), destPort, errLogger.WithName("audit-log"))

	return logger, writer, nil
}
