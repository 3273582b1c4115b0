package logx

//go:generate counterfeiter . Logger

// Data is one structured key/value attached to a log line.
type Data struct {
	Key   string
	Value interface{}
}

type Logger interface {
	WithName(name string) Logger
	WithData(data ...Data) Logger

	Debug(msg string, data ...Data)
	Info(msg string, data ...Data)
	Error(msg string, err error, data ...Data)
}

// Discard returns a logger that drops everything.
func Discard() Logger {
	return discard{}
}

type discard struct{}

func (d discard) WithName(string) Logger { return d }
func (d discard) WithData(...Data) Logger { return d }
func (discard) Debug(string, ...Data) {}
func (discard) Info(string, ...Data) {}
func (discard) Error(string, error, ...Data) {}
