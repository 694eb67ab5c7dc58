// Package logging configures the process-wide logrus logger and the field
// conventions shared by every component.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Field names with dedicated rendering in ConsoleFormatter.
const (
	FieldComponent = "component"
	FieldNetwork   = "network"
	FieldPort      = "port"
	FieldLine      = "line"
)

const timestampFormat = "2006-01-02 15:04:05"

var Logger *logrus.Logger

// LogConfig represents logging configuration
type LogConfig struct {
	Level  string `yaml:"level" env:"LOG_LEVEL" validate:"omitempty,oneof=trace debug info warn warning error fatal panic"`
	Format string `yaml:"format" env:"LOG_FORMAT" validate:"omitempty,oneof=json text simple compact"`
}

// InitLogger initializes the global logger on stdout.
func InitLogger(config LogConfig) {
	InitLoggerWithOutput(config, os.Stdout)
}

// InitLoggerWithOutput initializes the global logger writing to out.
func InitLoggerWithOutput(config LogConfig, out io.Writer) {
	Logger = logrus.New()
	Logger.SetOutput(out)

	level, err := logrus.ParseLevel(config.Level)
	if err != nil {
		level = logrus.InfoLevel
		if config.Level != "" {
			Logger.Warnf("Invalid log level '%s', defaulting to 'info'", config.Level)
		}
	}
	Logger.SetLevel(level)
	Logger.SetFormatter(formatterFor(config.Format))

	Logger.Debugf("Logger initialized with level: %s, format: %s", level.String(), config.Format)
}

// formatterFor maps a format name to a formatter; unknown names fall back to text.
func formatterFor(format string) logrus.Formatter {
	switch strings.ToLower(format) {
	case "json":
		return &logrus.JSONFormatter{TimestampFormat: timestampFormat}
	case "simple":
		return &ConsoleFormatter{}
	case "compact":
		return &ConsoleFormatter{ShowTime: true}
	default:
		return &logrus.TextFormatter{FullTimestamp: true, TimestampFormat: timestampFormat}
	}
}

// GetLogger returns the global logger instance
func GetLogger() *logrus.Logger {
	if Logger == nil {
		InitLogger(LogConfig{Level: "info", Format: "text"})
	}
	return Logger
}

// WithComponent tags entries with the emitting component.
func WithComponent(component string) *logrus.Entry {
	return GetLogger().WithField(FieldComponent, component)
}

// WithNetwork adds the network name to entry, or to the global logger when
// entry is nil.
func WithNetwork(entry *logrus.Entry, network string) *logrus.Entry {
	if entry == nil {
		entry = logrus.NewEntry(GetLogger())
	}
	return entry.WithField(FieldNetwork, network)
}

// WithRow scopes entry to one input row: its network, port and CSV line.
func WithRow(entry *logrus.Entry, network, port string, line int) *logrus.Entry {
	return WithNetwork(entry, network).WithFields(logrus.Fields{
		FieldPort: port,
		FieldLine: line,
	})
}
