package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Logger wraps logrus.Logger with client-specific helpers
type Logger struct {
	*logrus.Logger
}

// New creates a new logger instance
func New(level string) *Logger {
	log := logrus.New()

	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	log.SetLevel(logLevel)

	log.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  "timestamp",
			logrus.FieldKeyLevel: "level",
			logrus.FieldKeyMsg:   "message",
		},
	})

	log.SetOutput(os.Stdout)

	return &Logger{Logger: log}
}

// Discard creates a logger that drops everything; used by tests
func Discard() *Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	log.SetLevel(logrus.PanicLevel)
	return &Logger{Logger: log}
}

// WithFields creates a new logger entry with the specified fields
func (l *Logger) WithFields(fields map[string]interface{}) *logrus.Entry {
	return l.Logger.WithFields(fields)
}

// WithField creates a new logger entry with a single field
func (l *Logger) WithField(key string, value interface{}) *logrus.Entry {
	return l.Logger.WithField(key, value)
}

// WithError creates a new logger entry with an error field
func (l *Logger) WithError(err error) *logrus.Entry {
	return l.Logger.WithError(err)
}

// WithComponent creates a new logger entry with component name field
func (l *Logger) WithComponent(component string) *logrus.Entry {
	return l.Logger.WithField("component", component)
}

// WithHost creates a new logger entry with the remote host field
func (l *Logger) WithHost(host string) *logrus.Entry {
	return l.Logger.WithField("host", host)
}

// HTTPRequest logs one completed API call
func (l *Logger) HTTPRequest(method, path string, statusCode int, durationMs int64, err error) {
	entry := l.Logger.WithFields(logrus.Fields{
		"http_request": true,
		"method":       method,
		"path":         path,
		"status_code":  statusCode,
		"duration_ms":  durationMs,
	})
	if err != nil {
		entry.WithError(err).Warn("API request failed")
		return
	}
	if statusCode >= 400 {
		entry.Warn("API request completed with error")
	} else {
		entry.Debug("API request completed")
	}
}

// UploadProgress logs a throttled upload progress sample
func (l *Logger) UploadProgress(part string, fraction float64, uploaded, total int64) {
	l.Logger.WithFields(logrus.Fields{
		"upload":         true,
		"part":           part,
		"fraction":       fraction,
		"bytes_uploaded": uploaded,
		"bytes_total":    total,
	}).Debug("Upload progress")
}
