package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func TestConfigure_LevelSelection(t *testing.T) {
	defer Logger.SetLevel(log.WarnLevel)
	t.Setenv("RATBAGCTL_LOG_LEVEL", "")

	Configure(false, "error")
	assert.Equal(t, log.ErrorLevel, Logger.GetLevel())

	Configure(false, "")
	assert.Equal(t, log.WarnLevel, Logger.GetLevel())

	// The verbose flag wins over any configured level.
	Configure(true, "error")
	assert.Equal(t, log.DebugLevel, Logger.GetLevel())
}

func TestConfigure_EnvironmentFallback(t *testing.T) {
	defer Logger.SetLevel(log.WarnLevel)
	t.Setenv("RATBAGCTL_LOG_LEVEL", "INFO")

	Configure(false, "")
	assert.Equal(t, log.InfoLevel, Logger.GetLevel())
}

func TestSetOutput_CapturesDiagnostics(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)
	defer Logger.SetLevel(log.WarnLevel)

	Configure(false, "info")
	Info("opened device", "path", "/dev/input/event4")
	Debug("hidden at info level")
	Warn("report rate out of range")

	out := buf.String()
	assert.Contains(t, out, "opened device")
	assert.Contains(t, out, "/dev/input/event4")
	assert.NotContains(t, out, "hidden at info level")
	assert.Contains(t, out, "report rate out of range")
}

func TestNewStyledLogger_InheritsLevel(t *testing.T) {
	defer Logger.SetLevel(log.WarnLevel)

	Configure(true, "")
	component := NewStyledLogger("emulated")

	assert.Equal(t, log.DebugLevel, component.GetLevel())
	assert.Equal(t, "emulated ", component.GetPrefix())
}
