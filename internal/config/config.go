// Package config reads the tool's settings from the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"go.uber.org/zap/zapcore"
)

// Environment variables.
const (
	EnvLogLevel = "LISTPROPS_LOG_LEVEL"
	EnvSchema   = "LISTPROPS_SCHEMA"
)

// Log levels.
const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

// Settings holds the run settings.
type Settings struct {
	// LogLevel is the minimum level of diagnostics written to stderr.
	LogLevel string
	// Schemas are catalog overlay files applied on top of the built-in one.
	Schemas []string
}

// Validate validates the settings.
func (s *Settings) Validate() error {
	return validation.ValidateStruct(s,
		validation.Field(&s.LogLevel, validation.Required, validation.In(LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError)),
		validation.Field(&s.Schemas, validation.Each(validation.Required)),
	)
}

// ZapLevel returns the zap level of LogLevel.
func (s *Settings) ZapLevel() zapcore.Level {
	switch s.LogLevel {
	case LogLevelDebug:
		return zapcore.DebugLevel
	case LogLevelInfo:
		return zapcore.InfoLevel
	case LogLevelError:
		return zapcore.ErrorLevel
	default:
		return zapcore.WarnLevel
	}
}

// NewDefaultSettings returns the settings used when nothing is configured.
func NewDefaultSettings(debug bool) *Settings {
	s := &Settings{LogLevel: LogLevelWarn}
	if debug {
		s.LogLevel = LogLevelDebug
	}
	return s
}

// Load returns the defaults overridden by the environment. LISTPROPS_SCHEMA
// holds a list of catalog files separated by the OS path list separator.
func Load(debug bool) (*Settings, error) {
	s := NewDefaultSettings(debug)

	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		s.LogLevel = strings.ToLower(v)
	}
	if v := os.Getenv(EnvSchema); v != "" {
		s.Schemas = filepath.SplitList(v)
	}

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return s, nil
}
