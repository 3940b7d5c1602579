package log

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startBuffered(t *testing.T, level string) *bytes.Buffer {
	t.Helper()

	buf := new(bytes.Buffer)
	Shutdown()
	require.NoError(t, Start(level, buf))
	t.Cleanup(Shutdown)
	return buf
}

func TestLogging(t *testing.T) {
	buf := startBuffered(t, "trace")

	// set levels (static random)
	SetLogLevel(WarningLevel)
	SetLogLevel(InfoLevel)
	SetLogLevel(ErrorLevel)
	SetLogLevel(DebugLevel)
	SetLogLevel(CriticalLevel)
	SetLogLevel(TraceLevel)

	// log
	Trace("Trace")
	Debug("Debug")
	Info("Info")
	Warning("Warning")
	Error("Error")
	Critical("Critical")

	// logf
	Tracef("Trace %s", "f")
	Debugf("Debug %s", "f")
	Infof("Info %s", "f")
	Warningf("Warning %s", "f")
	Errorf("Error %s", "f")
	Criticalf("Critical %s", "f")

	// play with levels
	SetLogLevel(CriticalLevel)
	Warning("hidden warning")
	SetLogLevel(TraceLevel)

	// log invalid level
	log(0xFF, "msg")

	Flush()
	out := buf.String()
	for _, want := range []string{"TRAC", "DEBU", "INFO", "WARN", "ERRO", "CRIT", "Trace f", "Critical f"} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "hidden warning")
	assert.GreaterOrEqual(t, TotalWarningLogLines(), uint64(3))
}

func TestDuplicateLines(t *testing.T) {
	buf := startBuffered(t, "info")

	for range 3 {
		Info("same")
	}
	Info("other")
	Flush()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "[3x]")
	assert.Contains(t, lines[0], "same")
	assert.Contains(t, lines[1], "other")
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	for _, level := range []Severity{TraceLevel, DebugLevel, InfoLevel, WarningLevel, ErrorLevel, CriticalLevel} {
		assert.Equal(t, level, ParseLevel(level.Name()))
		assert.Equal(t, level, ParseLevel(strings.ToUpper(level.Name())))
	}
	assert.Equal(t, Severity(0), ParseLevel("verbose"))
	assert.Equal(t, "none", Severity(0).Name())
}
