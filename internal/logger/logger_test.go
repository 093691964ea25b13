package logger_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/mrfansi/xendit-go/internal/logger"
)

func TestNew(t *testing.T) {
	l, err := logger.New("debug", false)
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zapcore.DebugLevel))

	l, err = logger.New("", true)
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, l.Core().Enabled(zapcore.InfoLevel))

	_, err = logger.New("chatty", false)
	assert.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"", zapcore.InfoLevel},
		{"WARN", zapcore.WarnLevel},
		{" error ", zapcore.ErrorLevel},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := logger.ParseLevel(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOrNop(t *testing.T) {
	assert.NotNil(t, logger.OrNop(nil))
}

func TestMaskAuthorization(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Bearer abcdef1234", "Bearer ****1234"},
		{"Basic eG5kX2RldmVsb3BtZW50OjE=", "Basic ****OjE="},
		{"raw-secret-9999", "****9999"},
		{"abc", "****"},
		{"  ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.MaskAuthorization(tt.in))
		})
	}
}

func TestMaskAPIKey(t *testing.T) {
	assert.Equal(t, "****cdef", logger.MaskAPIKey("xnd_development_abcdef"))
	assert.Equal(t, "", logger.MaskAPIKey(""))
}

func TestMaskHeaders(t *testing.T) {
	h := http.Header{}
	h.Set("Authorization", "Basic c2VjcmV0Og==")
	h.Set("Idempotency-key", "9b2c7a4e-0000-4000-8000-abcdefab1234")
	h.Set("for-user-id", "user-1")
	h.Set("Accept", "application/json")

	masked := logger.MaskHeaders(h)
	assert.Equal(t, "Basic ****Og==", masked["Authorization"])
	assert.Equal(t, "****1234", masked["Idempotency-Key"])
	assert.Equal(t, "user-1", masked["For-User-Id"])
	assert.Equal(t, "application/json", masked["Accept"])
}
