package ioutilx

import (
	"io"
	"os"
)

// OpenLogFile opens filePath for appending, creating it owner-readable only.
func OpenLogFile(filePath string) (*os.File, error) {
	return os.OpenFile(filePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
}

// OpenLogWriter returns stdout for an empty path or "-", else the opened
// log file.
func OpenLogWriter(filePath string) (io.WriteCloser, error) {
	if filePath == "" || filePath == "-" {
		return nopCloser{os.Stdout}, nil
	}

	return OpenLogFile(filePath)
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error {
	return nil
}
