// Package enginelog is talon's persisted protocol log (spec.md §6
// "Persisted state"): an append-only record of every inbound and
// outbound protocol line plus internal informational events. The
// teacher logs to stdout with the standard `log` package and an
// `info string` prefix (main.go); talon emits no `info string` lines
// and instead backs the durable log file with `go.uber.org/zap`, the
// structured-logging dependency the pack carries
// (`go.rumenx.com/chess`'s go.mod).
package enginelog

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger records protocol traffic and internal events to path, having
// rotated aside whatever log already lived there.
type Logger struct {
	zl *zap.Logger
}

// Open rotates any existing file at path aside (renamed to path.1, with
// older rotations shifted up, see rotate) and starts a fresh
// append-only JSON log.
func Open(path string) (*Logger, error) {
	if err := rotate(path); err != nil {
		return nil, err
	}

	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "ts"
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}

	core := zapcore.NewCore(zapcore.NewJSONEncoder(cfg), zapcore.AddSync(f), zapcore.DebugLevel)
	return &Logger{zl: zap.New(core)}, nil
}

// rotate renames an existing log file at path to path.1, shifting any
// previously rotated files up (path.1 -> path.2, ...) so the previous
// run's log is never silently overwritten.
func rotate(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	} else if err != nil {
		return err
	}

	for i := maxRotations; i >= 1; i-- {
		src := fmt.Sprintf("%s.%d", path, i)
		dst := fmt.Sprintf("%s.%d", path, i+1)
		if _, err := os.Stat(src); err == nil {
			if err := os.Rename(src, dst); err != nil {
				return err
			}
		}
	}
	return os.Rename(path, path+".1")
}

const maxRotations = 9

// Inbound logs a line read from the protocol handler's input.
func (l *Logger) Inbound(line string) {
	l.zl.Info("inbound", zap.String("line", line))
}

// Outbound logs a line written to the protocol handler's output.
func (l *Logger) Outbound(line string) {
	l.zl.Info("outbound", zap.String("line", line))
}

// Event logs an internal informational event, e.g. a search starting
// or stopping.
func (l *Logger) Event(msg string, fields ...zap.Field) {
	l.zl.Info(msg, fields...)
}

// Fatal logs an Internal-kind error and is the last call before the
// process exits nonzero (spec.md §7's propagation policy).
func (l *Logger) Fatal(msg string, fields ...zap.Field) {
	l.zl.Error(msg, fields...)
}

// Close flushes any buffered log entries.
func (l *Logger) Close() error {
	return l.zl.Sync()
}
