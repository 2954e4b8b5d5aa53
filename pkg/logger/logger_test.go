package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewLevels(t *testing.T) {
	tests := []struct {
		level, format string
		want          zapcore.Level
	}{
		{"debug", "console", zapcore.DebugLevel},
		{"warn", "json", zapcore.WarnLevel},
		{"nonsense", "json", zapcore.InfoLevel},
		{"", "", zapcore.InfoLevel},
	}
	for _, tc := range tests {
		l, err := New(tc.level, tc.format)
		require.NoError(t, err)
		assert.True(t, l.Core().Enabled(tc.want), "%s should be enabled", tc.want)
		if tc.want > zapcore.DebugLevel {
			assert.False(t, l.Core().Enabled(tc.want-1))
		}
	}
}

func TestNamedNilBase(t *testing.T) {
	l := Named(nil, "inspections")
	require.NotNil(t, l)
	l.Info("discarded")
}

func TestMustPanics(t *testing.T) {
	assert.Panics(t, func() { Must(nil, assert.AnError) })
}
