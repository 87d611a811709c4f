package logger

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// Logger provides component-scoped structured logging
type Logger interface {
	Info(component string, message string, fields map[string]interface{})
	Error(component string, err error, fields map[string]interface{})
	Warning(component string, message string, fields map[string]interface{})
	Debug(component string, message string, fields map[string]interface{})
}

// ParseLevel maps a configuration string onto a zerolog level.
func ParseLevel(level string) (zerolog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zerolog.DebugLevel, nil
	case "", "info":
		return zerolog.InfoLevel, nil
	case "warn", "warning":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	case "disabled", "off":
		return zerolog.Disabled, nil
	default:
		return zerolog.NoLevel, fmt.Errorf("unknown log level %q", level)
	}
}

// NoOpLogger discards everything
type NoOpLogger struct{}

func (n NoOpLogger) Info(component string, message string, fields map[string]interface{})    {}
func (n NoOpLogger) Error(component string, err error, fields map[string]interface{})        {}
func (n NoOpLogger) Warning(component string, message string, fields map[string]interface{}) {}
func (n NoOpLogger) Debug(component string, message string, fields map[string]interface{})   {}
