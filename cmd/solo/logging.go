// cmd/solo/logging.go
package main

import (
	"fmt"
	"io"

	"github.com/untillpro/goutils/logger"
)

// configureLogging sends every log level to w and picks the level from cfg.
// The returned func restores the previous printer and level.
func configureLogging(cfg config, w io.Writer) (restore func()) {
	prevLevel := currentLogLevel()
	prevPrint := logger.PrintLine

	logger.PrintLine = func(_ logger.TLogLevel, line string) {
		_, _ = fmt.Fprintln(w, line)
	}
	level := logger.LogLevelError
	if cfg.verbose {
		level = logger.LogLevelVerbose
	}
	logger.SetLogLevel(level)

	return func() {
		logger.SetLogLevel(prevLevel)
		logger.PrintLine = prevPrint
	}
}

// currentLogLevel reads back the active level; the logger exposes only predicates.
func currentLogLevel() logger.TLogLevel {
	switch {
	case logger.IsTrace():
		return logger.LogLevelTrace
	case logger.IsVerbose():
		return logger.LogLevelVerbose
	case logger.IsInfo():
		return logger.LogLevelInfo
	case logger.IsWarning():
		return logger.LogLevelWarning
	case logger.IsError():
		return logger.LogLevelError
	default:
		return logger.LogLevelNone
	}
}
