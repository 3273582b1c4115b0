package flags

import (
	"fmt"
	"io"
	"os"

	"code.cloudfoundry.org/lager/v3"
	"github.com/taskboard/taskboard/pkg/logx"
	"github.com/taskboard/taskboard/pkg/logx/lagerx"
)

type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelError LogLevel = "error"
	LogLevelFatal LogLevel = "fatal"
)

type LagerFlag struct {
	LogLevel LogLevel `long:"log-level" env:"LOG_LEVEL" default:"info" choice:"debug" choice:"info" choice:"error" choice:"fatal" description:"Minimum level of logs to see."`
}

func (f LagerFlag) Logger(component string) logx.Logger {
	return f.LoggerTo(os.Stdout, component)
}

// LoggerTo writes JSON lines of at least the configured level to w.
func (f LagerFlag) LoggerTo(w io.Writer, component string) logx.Logger {
	logger := lager.NewLogger(component)
	logger.RegisterSink(lager.NewReconfigurableSink(lager.NewWriterSink(w, lager.DEBUG), f.lagerLevel()))

	return lagerx.NewLogger(logger)
}

func (f LagerFlag) lagerLevel() lager.LogLevel {
	switch f.LogLevel {
	case LogLevelDebug:
		return lager.DEBUG
	case LogLevelInfo, "":
		return lager.INFO
	case LogLevelError:
		return lager.ERROR
	case LogLevelFatal:
		return lager.FATAL
	default:
		panic(fmt.Sprintf("unknown log level: %s", f.LogLevel))
	}
}
