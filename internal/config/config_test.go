package config

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvSchema, "")

	s, err := Load(false)
	require.NoError(t, err)
	assert.Equal(t, LogLevelWarn, s.LogLevel)
	assert.Empty(t, s.Schemas)

	s, err = Load(true)
	require.NoError(t, err)
	assert.Equal(t, LogLevelDebug, s.LogLevel)
}

func TestLoadFromEnv(t *testing.T) {
	a := filepath.Join("a", "x.yaml")
	b := filepath.Join("b", "y.yaml")
	t.Setenv(EnvLogLevel, " INFO ")
	t.Setenv(EnvSchema, strings.Join([]string{a, b}, string(filepath.ListSeparator)))

	s, err := Load(false)
	require.NoError(t, err)
	assert.Equal(t, LogLevelInfo, s.LogLevel)
	assert.Equal(t, []string{a, b}, s.Schemas)
	assert.Equal(t, zapcore.InfoLevel, s.ZapLevel())
}

func TestLoadInvalidLevel(t *testing.T) {
	t.Setenv(EnvLogLevel, "chatty")
	t.Setenv(EnvSchema, "")

	_, err := Load(false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestValidateEmptySchemaEntry(t *testing.T) {
	s := &Settings{LogLevel: LogLevelWarn, Schemas: []string{"ok.yaml", ""}}
	assert.Error(t, s.Validate())
}

func TestZapLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		LogLevelDebug: zapcore.DebugLevel,
		LogLevelInfo:  zapcore.InfoLevel,
		LogLevelWarn:  zapcore.WarnLevel,
		LogLevelError: zapcore.ErrorLevel,
	}
	for level, want := range tests {
		s := &Settings{LogLevel: level}
		assert.Equal(t, want, s.ZapLevel(), level)
	}
}
