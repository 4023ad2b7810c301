package glog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLevelsReachLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	defer SetLogger(nil)

	DebugF("frame %d", 1)
	Info("model ", "cube")
	WarnF("slow frame %dms", 40)
	Error("draw failed")

	entries := logs.AllUntimed()
	require.Len(t, entries, 4)
	assert.Equal(t, "frame 1", entries[0].Message)
	assert.Equal(t, "model cube", entries[1].Message)
	assert.Equal(t, zapcore.WarnLevel, entries[2].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[3].Level)
}

func TestInitWritesFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Init(Options{Dir: dir, Release: true}))
	defer SetLogger(nil)

	Info("viewer start")
	Debug("dropped below info")
	Sync()

	files, err := filepath.Glob(filepath.Join(dir, "viewer_*.log"))
	require.NoError(t, err)
	require.Len(t, files, 1)

	data, err := os.ReadFile(files[0])
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "[INFO]"))
	assert.True(t, strings.Contains(string(data), "viewer start"))
	assert.False(t, strings.Contains(string(data), "dropped below info"))
}
