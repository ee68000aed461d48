package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew_Levels(t *testing.T) {
	tests := []struct {
		level string
		env   string
		want  zapcore.Level
	}{
		{"info", "production", zapcore.InfoLevel},
		{"warn", "production", zapcore.WarnLevel},
		{"debug", "production", zapcore.DebugLevel},
		{"nonsense", "production", zapcore.InfoLevel},
		{"", "development", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level+"/"+tt.env, func(t *testing.T) {
			log, err := New(tt.level, tt.env)
			require.NoError(t, err)
			assert.True(t, log.Core().Enabled(tt.want))
			if tt.want > zapcore.DebugLevel {
				assert.False(t, log.Core().Enabled(tt.want-1))
			}
		})
	}
}
