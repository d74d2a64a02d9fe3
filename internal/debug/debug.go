// Package debug provides the shared logger used for protocol tracing.
// Tracing is enabled by setting $WAYLAND_DEBUG to a positive number,
// the same switch libwayland uses.
package debug

import (
	"os"
	"strconv"

	"github.com/charmbracelet/log"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "wayland",
	Level:  log.InfoLevel,
})

func init() {
	debugLevel, err := strconv.ParseInt(os.Getenv("WAYLAND_DEBUG"), 10, 0)
	if err != nil {
		return
	}
	if debugLevel > 0 {
		logger.SetLevel(log.DebugLevel)
	}
}

// Logger returns the protocol logger so that callers can derive
// sub-loggers from it with With.
func Logger() *log.Logger {
	return logger
}

// Enabled reports whether protocol tracing is on.
func Enabled() bool {
	return logger.GetLevel() <= log.DebugLevel
}

func Printf(str string, args ...any) {
	logger.Debugf(str, args...)
}
