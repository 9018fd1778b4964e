package logutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestLogConfigLevel(t *testing.T) {
	tests := []struct {
		level   string
		want    zapcore.Level
		wantErr bool
	}{
		{level: "", want: zapcore.InfoLevel},
		{level: "debug", want: zapcore.DebugLevel},
		{level: "WARN", want: zapcore.WarnLevel},
		{level: "loud", wantErr: true},
	}
	for _, tt := range tests {
		cfg := LogConfig{Level: tt.level}
		level, err := cfg.getLevel()
		if tt.wantErr {
			assert.Error(t, err, tt.level)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, level.Level())
	}
}

func TestLogConfigFormat(t *testing.T) {
	for _, format := range []string{"", "console", "json"} {
		cfg := LogConfig{Format: format}
		_, err := cfg.getEncoder()
		assert.NoError(t, err, format)
	}
	cfg := LogConfig{Format: "xml"}
	_, err := cfg.getEncoder()
	assert.Error(t, err)
}

func TestSetupLoggerToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sortlab.log")
	cfg := DefaultLogConfig()
	cfg.Filename = path
	cfg.Format = "json"

	logger, err := SetupLogger(cfg)
	require.NoError(t, err)
	defer SetGlobalLogger(zap.NewNop())

	logger.Info("정렬 완료", zap.String("algorithm", "nat_merge_linked"))
	GetGlobalLogger().Debug("보이지 않음")
	require.NoError(t, logger.Sync())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), `"algorithm":"nat_merge_linked"`)
	assert.NotContains(t, string(content), "보이지 않음")
}
