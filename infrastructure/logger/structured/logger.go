// ABOUTME: Structured logger implementation backed by logrus
// ABOUTME: Writes JSON or text entries to stdout and optionally a rotating log file

package structured

import (
	"io"
	"os"

	"article-parser-api/pkg/config"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger implements the Logger interface using logrus
type Logger struct {
	entry *logrus.Logger
	file  *lumberjack.Logger
}

// New creates a logger from the log configuration. When cfg.File is set the
// output is duplicated into a size-rotated file.
func New(cfg config.LogConfig) (*Logger, error) {
	if cfg.File == "" {
		return newWithOutput(os.Stdout, cfg)
	}

	file := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    100,
		MaxBackups: 3,
		MaxAge:     28,
		Compress:   true,
	}

	l, err := newWithOutput(io.MultiWriter(os.Stdout, file), cfg)
	if err != nil {
		return nil, err
	}
	l.file = file
	return l, nil
}

func newWithOutput(w io.Writer, cfg config.LogConfig) (*Logger, error) {
	level := logrus.InfoLevel
	if cfg.Level != "" {
		parsed, err := logrus.ParseLevel(cfg.Level)
		if err != nil {
			return nil, errors.Wrap(err, "log level")
		}
		level = parsed
	}

	base := logrus.New()
	base.SetOutput(w)
	base.SetLevel(level)

	switch cfg.Format {
	case config.LogFormatText:
		base.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		base.SetFormatter(&logrus.JSONFormatter{})
	}

	return &Logger{entry: base}, nil
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.entry.WithFields(logrus.Fields(fields)).Debug(msg)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.entry.WithFields(logrus.Fields(fields)).Info(msg)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.entry.WithFields(logrus.Fields(fields)).Warn(msg)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.entry.WithFields(logrus.Fields(fields)).Error(msg)
}

// Close releases the rotating log file, if any
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}
