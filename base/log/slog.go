package log

import (
	"context"
	"log/slog"

	"github.com/lmittmann/tint"
)

// setupSLog routes slog through the same writer, so that libraries using the
// default slog logger end up in the same place.
func setupSLog(level Severity) {
	handlerLogLevel := level.toSLogLevel()

	logHandler := tint.NewHandler(slogWriter{}, &tint.Options{
		AddSource:  true,
		Level:      handlerLogLevel,
		TimeFormat: timeFormat,
		NoColor:    !useColor,
	})

	slog.SetDefault(slog.New(logHandler))
	slog.SetLogLoggerLevel(handlerLogLevel)
}

// slogWriter writes to the current log output, after any held back line.
type slogWriter struct{}

func (slogWriter) Write(p []byte) (int, error) {
	output.Lock()
	defer output.Unlock()

	writePending()
	output.pending = nil
	output.duplicates = 0
	return output.w.Write(p)
}

// SLogEnabled reports whether slog would write at the given level.
func SLogEnabled(level Severity) bool {
	return slog.Default().Enabled(context.Background(), level.toSLogLevel())
}
