package logging

import (
	"fmt"
	"os"
	"sync"
)

// LoggerFactory builds the specialised loggers from one base logger
type LoggerFactory struct {
	baseLogger Logger
}

// NewLoggerFactory creates a factory from a configuration
func NewLoggerFactory(config *LoggerConfig) (*LoggerFactory, error) {
	baseLogger, err := NewStructuredLogger(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create base logger: %w", err)
	}

	return &LoggerFactory{baseLogger: baseLogger}, nil
}

// LoggerSet groups all the specialised loggers
type LoggerSet struct {
	Base        Logger
	HTTP        HTTPLogger
	ExternalAPI ExternalAPILogger
	Cache       CacheLogger
	Business    BusinessLogger
}

// GetLoggerSet returns the full set of loggers
func (f *LoggerFactory) GetLoggerSet() *LoggerSet {
	return &LoggerSet{
		Base:        f.baseLogger,
		HTTP:        NewHTTPLogger(f.baseLogger),
		ExternalAPI: NewExternalAPILogger(f.baseLogger),
		Cache:       NewCacheLogger(f.baseLogger),
		Business:    NewBusinessLogger(f.baseLogger),
	}
}

var (
	globalMu      sync.RWMutex
	globalLoggers *LoggerSet
)

// InitializeGlobalLoggers replaces the process-wide loggers
func InitializeGlobalLoggers(config *LoggerConfig) error {
	factory, err := NewLoggerFactory(config)
	if err != nil {
		return fmt.Errorf("failed to initialize global loggers: %w", err)
	}

	globalMu.Lock()
	globalLoggers = factory.GetLoggerSet()
	globalMu.Unlock()
	return nil
}

// GetGlobalLoggers returns the process-wide loggers, initialising defaults on first use
func GetGlobalLoggers() *LoggerSet {
	globalMu.RLock()
	set := globalLoggers
	globalMu.RUnlock()
	if set != nil {
		return set
	}

	_ = InitializeGlobalLoggers(NewConfig("busyedge", "0.1.0", "development"))

	globalMu.RLock()
	defer globalMu.RUnlock()
	return globalLoggers
}

// GetGlobalLogger returns the process-wide base logger
func GetGlobalLogger() Logger {
	return GetGlobalLoggers().Base
}

// ConfigFromEnvironment builds a configuration from LOG_LEVEL, LOG_FORMAT and ENVIRONMENT
func ConfigFromEnvironment(service, version string) *LoggerConfig {
	environment := os.Getenv("ENVIRONMENT")
	if environment == "" {
		environment = "development"
	}
	config := NewConfig(service, version, environment)

	if level := os.Getenv("LOG_LEVEL"); level != "" {
		config.WithLevel(LogLevelFromString(level))
	}
	if format := os.Getenv("LOG_FORMAT"); format != "" {
		config.WithFormat(LogFormatFromString(format))
	}

	return config
}
