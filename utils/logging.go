package common

import (
	"fmt"
	"io"
	"os"

	"github.com/op/go-logging"
)

// Modules lists every logger name used by the application.
var Modules = []string{"sixsequences", "common", "six_frame", "orf_finder", "benchmark"}

var formatter = logging.MustStringFormatter(`%{message}`)

// SetupLogging installs a message-only backend writing to logFile (appending)
// or to stderr when logFile is empty, and sets level for all Modules. The
// returned closer must be called before exit.
func SetupLogging(level string, logFile string) (func() error, error) {
	lvl, err := logging.LogLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	var out io.Writer = os.Stderr
	closer := func() error { return nil }
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			return nil, fmt.Errorf("creating log file: %w", err)
		}
		out = f
		closer = f.Close
	}

	backend := logging.NewBackendFormatter(logging.NewLogBackend(out, "", 0), formatter)
	leveled := logging.AddModuleLevel(backend)
	for _, m := range Modules {
		leveled.SetLevel(lvl, m)
	}
	logging.SetBackend(leveled)
	return closer, nil
}
