package logger

import (
	"fmt"
	"os"
	"path/filepath"

	"wordsnake-arena/internal/application/port/output"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var _ output.LoggerPort = (*ZapLogger)(nil)

// ZapLogger writes structured JSON lines to a single file. The arena keeps
// one for the whole run plus one per experiment.
type ZapLogger struct {
	sugar *zap.SugaredLogger
	file  *os.File
}

func NewFileLogger(path string) (*ZapLogger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create log file: %w", err)
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig()),
		zapcore.AddSync(file),
		zapcore.DebugLevel,
	)

	return &ZapLogger{
		sugar: zap.New(core).Sugar(),
		file:  file,
	}, nil
}

// NewNop returns a logger that discards everything. Handy in tests.
func NewNop() *ZapLogger {
	return &ZapLogger{sugar: zap.NewNop().Sugar()}
}

func encoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "timestamp"
	cfg.MessageKey = "message"
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	return cfg
}

func (l *ZapLogger) Debug(msg string, args ...any) {
	l.sugar.Debugw(msg, args...)
}

func (l *ZapLogger) Info(msg string, args ...any) {
	l.sugar.Infow(msg, args...)
}

func (l *ZapLogger) Warn(msg string, args ...any) {
	l.sugar.Warnw(msg, args...)
}

func (l *ZapLogger) Error(msg string, args ...any) {
	l.sugar.Errorw(msg, args...)
}

func (l *ZapLogger) WithField(key string, value any) output.LoggerPort {
	return &ZapLogger{
		sugar: l.sugar.With(key, value),
		file:  l.file,
	}
}

func (l *ZapLogger) WithFields(fields map[string]any) output.LoggerPort {
	args := make([]any, 0, len(fields)*2)
	for k, v := range fields {
		args = append(args, k, v)
	}
	return &ZapLogger{
		sugar: l.sugar.With(args...),
		file:  l.file,
	}
}

func (l *ZapLogger) Close() error {
	// Sync on a plain file can report ENOTSUP on some platforms; the close
	// below is what actually flushes.
	_ = l.sugar.Sync()
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}

// ExperimentLoggerFactory opens one log file per experiment under dir,
// mirroring the original arena's logs/<run>/experiment-N.log layout.
func ExperimentLoggerFactory(dir string) output.LoggerFactory {
	return func(experiment int) (output.LoggerPort, error) {
		return NewFileLogger(filepath.Join(dir, fmt.Sprintf("experiment-%d.log", experiment)))
	}
}
