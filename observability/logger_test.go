package observability

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lixenwraith/reorder/config"
)

func TestGetLoggerBeforeInitializeIsNop(t *testing.T) {
	ResetForTest()
	t.Cleanup(ResetForTest)

	logger := GetLogger()
	require.NotNil(t, logger)
	assert.False(t, logger.Core().Enabled(zapcore.ErrorLevel))
}

func TestFileLoggerWritesJSON(t *testing.T) {
	ResetForTest()
	t.Cleanup(ResetForTest)

	path := filepath.Join(t.TempDir(), "board.log")
	cfg := config.NewDefaultConfig().Logger
	cfg.Level = "debug"
	cfg.LogFile = path

	var console bytes.Buffer
	Initialize(cfg, zapcore.AddSync(&console))
	GetLogger().Debug("drag began", zap.Int("index", 2))
	Sync()

	assert.Empty(t, console.String(), "console core disabled by default")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	line := strings.TrimSpace(string(data))
	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(line), &entry))
	assert.Equal(t, "DEBUG", entry["level"])
	assert.Equal(t, "drag began", entry["msg"])
	assert.Equal(t, "reorder-board", entry["logger"])
	assert.EqualValues(t, 2, entry["index"])
}

func TestConsoleLoggerRespectsLevel(t *testing.T) {
	ResetForTest()
	t.Cleanup(ResetForTest)

	cfg := config.LoggerConfig{Level: "warn", Format: "console", Console: true, ServiceName: "test"}
	var console bytes.Buffer
	Initialize(cfg, zapcore.AddSync(&console))

	logger := GetLogger()
	logger.Info("hidden")
	logger.Warn("shown")
	Sync()

	out := console.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "WARN")
}

func TestInitializeRunsOnce(t *testing.T) {
	ResetForTest()
	t.Cleanup(ResetForTest)

	var first, second bytes.Buffer
	Initialize(config.LoggerConfig{Level: "info", Console: true}, zapcore.AddSync(&first))
	Initialize(config.LoggerConfig{Level: "info", Console: true}, zapcore.AddSync(&second))
	GetLogger().Info("once")

	assert.Contains(t, first.String(), "once")
	assert.Empty(t, second.String())
}

func TestInvalidLevelFallsBackToInfo(t *testing.T) {
	ResetForTest()
	t.Cleanup(ResetForTest)

	var console bytes.Buffer
	Initialize(config.LoggerConfig{Level: "loud", Console: true}, zapcore.AddSync(&console))
	GetLogger().Debug("debug")
	GetLogger().Info("info")

	assert.NotContains(t, console.String(), "debug")
	assert.Contains(t, console.String(), "info")
}
