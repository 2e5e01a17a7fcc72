package system

import (
	"fmt"
	"io"
	"os"

	clog "github.com/charmbracelet/log"
)

// Logger is the shared application logger.
// The terminal belongs to the picker and stderr carries the selection, so
// it discards everything until SetupLogFile points it at a file.
var Logger = clog.NewWithOptions(io.Discard, clog.Options{
	ReportTimestamp: true,
	Prefix:          "tmenu",
})

// SetupLogFile appends log output to path at the given level
// ("debug", "info", "warn" or "error"). The caller closes the file.
func SetupLogFile(path, level string) (io.Closer, error) {
	lvl, err := clog.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	Logger.SetOutput(f)
	Logger.SetLevel(lvl)
	return f, nil
}
