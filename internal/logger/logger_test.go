package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func withCapture(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := new(bytes.Buffer)
	SetOutput(buf)
	t.Cleanup(func() {
		SetOutput(os.Stderr)
		SetVerbose(false)
	})
	return buf
}

func TestDebugSilentByDefault(t *testing.T) {
	buf := withCapture(t)
	SetVerbose(false)

	Debug("hidden %d", 1)

	assert.Empty(t, buf.String())
}

func TestDebugVerbose(t *testing.T) {
	buf := withCapture(t)
	SetVerbose(true)

	Debug("indexed %d poems", 42)

	assert.Equal(t, "[DEBUG] indexed 42 poems\n", buf.String())
}

func TestLevels(t *testing.T) {
	buf := withCapture(t)
	SetVerbose(true)

	Info("i")
	Warn("w")
	Section("Search Execution")

	out := buf.String()
	assert.Contains(t, out, "[INFO] i")
	assert.Contains(t, out, "[WARN] w")
	assert.Contains(t, out, "=== Search Execution ===")
}

func TestIsVerbose(t *testing.T) {
	withCapture(t)

	SetVerbose(true)
	assert.True(t, IsVerbose())
	SetVerbose(false)
	assert.False(t, IsVerbose())
}
