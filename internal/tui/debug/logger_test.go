package debug

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plantview/plantview-cli/internal/config"
)

func TestEnabled(t *testing.T) {
	for value, want := range map[string]bool{
		"":            false,
		"0":           false,
		"false":       false,
		"FALSE":       false,
		"1":           true,
		"/tmp/pv.log": true,
	} {
		t.Setenv(config.EnvDebugLog, value)
		assert.Equal(t, want, Enabled(), "value %q", value)
	}
}

func TestLogPath_ExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	t.Setenv(config.EnvDebugLog, path)

	assert.Equal(t, path, LogPath())
}

func TestLogToFile_WritesWhenEnabled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	t.Setenv(config.EnvDebugLog, path)

	LogToFilef("loaded page %d\n", 2)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "loaded page 2")
}

func TestLogToFile_SilentWhenDisabled(t *testing.T) {
	t.Setenv(config.EnvDebugLog, "")

	LogToFile("nothing\n")
	w, closeFn := Writer()
	defer func() { _ = closeFn() }()

	n, err := w.Write([]byte("discarded"))
	assert.NoError(t, err)
	assert.Equal(t, len("discarded"), n)
}

func TestWriter_OpensLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	t.Setenv(config.EnvDebugLog, path)

	w, closeFn := Writer()
	_, err := w.Write([]byte("hello\n"))
	require.NoError(t, err)
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(data))
}
