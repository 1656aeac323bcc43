package output

type LoggerPort interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)

	WithField(key string, value any) LoggerPort
	WithFields(fields map[string]any) LoggerPort

	Close() error
}

// LoggerFactory opens a dedicated log sink for one experiment. The caller
// owns the returned logger and must close it when the experiment ends.
type LoggerFactory func(experiment int) (LoggerPort, error)
