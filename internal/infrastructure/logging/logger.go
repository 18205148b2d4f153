package logging

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// StructuredLogger implements Logger on top of logrus
type StructuredLogger struct {
	mu     sync.RWMutex
	config *LoggerConfig
	logger *logrus.Logger
}

// NewStructuredLogger creates a structured logger from the given configuration
func NewStructuredLogger(config *LoggerConfig) (*StructuredLogger, error) {
	if config == nil {
		config = DefaultConfig()
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid logger config: %w", err)
	}

	l := logrus.New()
	l.SetOutput(config.Output)
	l.SetLevel(toLogrusLevel(config.Level))

	switch config.Format {
	case FormatText:
		l.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.RFC3339,
		})
	default:
		l.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: time.RFC3339Nano,
		})
	}

	return &StructuredLogger{
		config: config,
		logger: l,
	}, nil
}

func toLogrusLevel(level LogLevel) logrus.Level {
	switch level {
	case LevelDebug:
		return logrus.DebugLevel
	case LevelWarn:
		return logrus.WarnLevel
	case LevelError:
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}

func (sl *StructuredLogger) log(ctx context.Context, level LogLevel, message string, fields Fields) {
	lvl := toLogrusLevel(level)
	if !sl.logger.IsLevelEnabled(lvl) {
		return
	}

	sl.mu.RLock()
	entryFields := logrus.Fields{
		"service": sl.config.Service,
	}
	if sl.config.Version != "" {
		entryFields["version"] = sl.config.Version
	}
	if sl.config.Environment != "" {
		entryFields["environment"] = sl.config.Environment
	}
	sl.mu.RUnlock()

	if requestID := GetRequestID(ctx); requestID != "" {
		entryFields[FieldRequestID] = requestID
	}
	if startTime := GetStartTime(ctx); !startTime.IsZero() {
		entryFields[FieldDuration] = float64(time.Since(startTime).Nanoseconds()) / 1e6
	}
	for k, v := range fields {
		entryFields[k] = v
	}

	sl.logger.WithFields(entryFields).Log(lvl, message)
}

// Debug logs a debug message
func (sl *StructuredLogger) Debug(ctx context.Context, message string, fields Fields) {
	sl.log(ctx, LevelDebug, message, fields)
}

// Info logs an info message
func (sl *StructuredLogger) Info(ctx context.Context, message string, fields Fields) {
	sl.log(ctx, LevelInfo, message, fields)
}

// Warn logs a warning message
func (sl *StructuredLogger) Warn(ctx context.Context, message string, fields Fields) {
	sl.log(ctx, LevelWarn, message, fields)
}

// Error logs an error message
func (sl *StructuredLogger) Error(ctx context.Context, message string, fields Fields) {
	sl.log(ctx, LevelError, message, fields)
}

// InfoWithError logs an info message with error details
func (sl *StructuredLogger) InfoWithError(ctx context.Context, message string, err error, fields Fields) {
	sl.log(ctx, LevelInfo, message, enrichWithError(fields, err))
}

// WarnWithError logs a warning message with error details
func (sl *StructuredLogger) WarnWithError(ctx context.Context, message string, err error, fields Fields) {
	sl.log(ctx, LevelWarn, message, enrichWithError(fields, err))
}

// ErrorWithError logs an error message with error details
func (sl *StructuredLogger) ErrorWithError(ctx context.Context, message string, err error, fields Fields) {
	sl.log(ctx, LevelError, message, enrichWithError(fields, err))
}

// enrichWithError copies fields and adds the error details
func enrichWithError(fields Fields, err error) Fields {
	if err == nil {
		return fields
	}

	enriched := make(Fields, len(fields)+2)
	for k, v := range fields {
		enriched[k] = v
	}
	enriched[FieldError] = err.Error()
	enriched[FieldErrorType] = getErrorType(err)
	return enriched
}

// SetLevel changes the log level
func (sl *StructuredLogger) SetLevel(level LogLevel) {
	sl.mu.Lock()
	sl.config.Level = level
	sl.mu.Unlock()
	sl.logger.SetLevel(toLogrusLevel(level))
}

// GetLevel returns the current log level
func (sl *StructuredLogger) GetLevel() LogLevel {
	sl.mu.RLock()
	defer sl.mu.RUnlock()
	return sl.config.Level
}
