package log

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetDebug(t *testing.T) {
	t.Helper()
	DebugEnabled = false
	DebugLog = nil
	profiler.Reset()
	t.Cleanup(func() {
		CloseDebug()
		DebugEnabled = false
		DebugLog = nil
	})
}

func TestDebugDisabledByDefault(t *testing.T) {
	resetDebug(t)
	t.Setenv(DebugEnv, "")

	InitDebug()
	assert.False(t, DebugEnabled)
	require.NotNil(t, DebugLog, "a discarding logger is installed")
}

func TestDebugEnabledWithEnvVar(t *testing.T) {
	resetDebug(t)
	t.Setenv(DebugEnv, "1")
	debugLogFileName = filepath.Join(t.TempDir(), "debug.log")

	InitDebug()
	assert.True(t, DebugEnabled)

	LayoutTrace("cell %dx%d", 20, 3)
	CloseDebug()

	data, err := os.ReadFile(debugLogFileName)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[LAYOUT] cell 20x3")
}

func TestTraceHelpersTolerateNilLogger(t *testing.T) {
	resetDebug(t)

	LayoutTrace("x %s", "y")
	InputTrace("x %s", "y")
	EngineTrace("x %s", "y")
	Debug("x %s", "y")

	DebugEnabled = true
	LayoutTrace("x %s", "y")
	InputTrace("x %s", "y")
	EngineTrace("x %s", "y")
	Debug("x %s", "y")
}

func TestRenderProfiler(t *testing.T) {
	t.Run("disabled records nothing", func(t *testing.T) {
		resetDebug(t)
		profiler.StartRender("keypad")()
		assert.Empty(t, profiler.views)
		assert.Empty(t, profiler.GetStats())
	})

	t.Run("renders accumulate per view", func(t *testing.T) {
		resetDebug(t)
		DebugEnabled = true

		for i := 0; i < 5; i++ {
			profiler.StartRender("keypad")()
		}
		done := profiler.StartRender("display")
		time.Sleep(time.Millisecond)
		done()

		require.Contains(t, profiler.views, "keypad")
		assert.EqualValues(t, 5, profiler.views["keypad"].RenderCount)
		assert.GreaterOrEqual(t, profiler.views["display"].MaxTime, time.Millisecond)

		stats := profiler.GetStats()
		assert.Contains(t, stats, "Render Profile")
		assert.Contains(t, stats, "keypad: count=5")
	})
}

func TestRecordFrame(t *testing.T) {
	resetDebug(t)
	DebugEnabled = true

	profiler.RecordFrame(10 * time.Millisecond)
	profiler.RecordFrame(20 * time.Millisecond)
	assert.EqualValues(t, 2, profiler.frameCount)
	assert.Equal(t, 30*time.Millisecond, profiler.totalTime)

	for i := 0; i < 2*frameWindow; i++ {
		profiler.RecordFrame(time.Millisecond)
	}
	assert.Len(t, profiler.frameTimings, frameWindow)
}

func TestInitializeAndClose(t *testing.T) {
	logFileName = filepath.Join(t.TempDir(), "calcgrid.log")
	Initialize()
	InfoLog.Print("hello")
	ErrorLog.Print("boom")
	Close(true)

	data, err := os.ReadFile(FileName())
	require.NoError(t, err)
	assert.Contains(t, string(data), "INFO:")
	assert.Contains(t, string(data), "ERROR:")

	// A second Close is harmless.
	Close(true)
}
