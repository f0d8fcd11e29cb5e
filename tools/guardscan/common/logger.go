package common

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/lmittmann/tint"
)

// ------------------------------------------------------------
// If the verbosity at the call site is less than or equal to
// the level requested, the log will be enabled. Higher callsite
// verbosity values are less likely to be output.
//
// if (2 <= verbosity) { log-is-enabled }
// ------------------------------------------------------------

// LogWriter is the shared scanner logger.
type LogWriter struct {
	verbosity int
	logger    *slog.Logger
}

var logWriter *LogWriter

func NewLogWriter(logfileName string, vLevel int) *LogWriter {
	if logWriter != nil {
		return logWriter
	}

	var erx error
	wrx := os.Stderr
	logfilePath := strings.TrimSpace(logfileName)
	if logfilePath != "" {
		var fp *os.File
		if fp, erx = os.Create(logfilePath); erx == nil {
			wrx = fp
		}
	}

	level := slog.LevelInfo
	if vLevel > 0 {
		level = slog.LevelDebug
	}
	logger := slog.New(tint.NewHandler(wrx, &tint.Options{
		Level:   level,
		NoColor: wrx != os.Stderr,
	}))

	// Advise if the requested logfile was not created
	if erx != nil {
		logger.Warn("unable to create requested logfile", "path", logfilePath, "err", erx)
	}

	logWriter = &LogWriter{vLevel, logger}
	return logWriter
}

func GetLogWriter() *LogWriter {
	return NewLogWriter("", 0)
}

func (lW *LogWriter) IsVerbose() bool {
	return lW.verbosity > 0
}

func (lW *LogWriter) VerboseLevel(v int) bool {
	return v <= lW.verbosity
}

func (lW *LogWriter) Printf(format string, v ...any) {
	lW.logger.Info(fmt.Sprintf(format, v...))
}

func (lW *LogWriter) Debugf(format string, v ...any) {
	lW.logger.Debug(fmt.Sprintf(format, v...))
}

func (lW *LogWriter) Errorf(format string, v ...any) {
	lW.logger.Error(fmt.Sprintf(format, v...))
}

func (lW *LogWriter) Fatalf(format string, v ...any) {
	lW.logger.Error(fmt.Sprintf(format, v...))
	os.Exit(1)
}
