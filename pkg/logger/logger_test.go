package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]struct {
		want    string
		wantErr bool
	}{
		"":        {want: zap.InfoLevel.String()},
		"debug":   {want: zap.DebugLevel.String()},
		"WARN":    {want: zap.WarnLevel.String()},
		"error":   {want: zap.ErrorLevel.String()},
		"verbose": {wantErr: true},
	}

	for input, tt := range tests {
		lvl, err := parseLevel(input)
		if tt.wantErr {
			assert.Error(t, err, input)
			continue
		}
		require.NoError(t, err, input)
		assert.Equal(t, tt.want, lvl.String(), input)
	}
}

func TestNew_WritesToFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "service.log")

	log, err := New(file, "info")
	require.NoError(t, err)

	log.Info("booking created id=%s", "abc")
	log.Debug("hidden at info level")
	require.NoError(t, log.Close())

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), "booking created id=abc")
	assert.NotContains(t, string(data), "hidden at info level")
}
