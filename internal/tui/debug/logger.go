package debug

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/plantview/plantview-cli/internal/config"
)

const logFileName = "plantview_debug.log"

// Enabled reports whether PLANTVIEW_DEBUG_LOG asks for a debug log
func Enabled() bool {
	debugEnv := strings.TrimSpace(os.Getenv(config.EnvDebugLog))
	return debugEnv != "" && debugEnv != "0" && !strings.EqualFold(debugEnv, "false")
}

// LogPath returns the debug log path. A PLANTVIEW_DEBUG_LOG value that looks
// like a path is used as is; otherwise the log goes to logs/ in the project
// root, falling back to the temp dir.
func LogPath() string {
	debugEnv := os.Getenv(config.EnvDebugLog)

	// If it's a path (contains / or \), use it as the log path
	if debugEnv != "" && (filepath.IsAbs(debugEnv) || filepath.Dir(debugEnv) != ".") {
		return debugEnv
	}

	projectRoot := findProjectRoot()
	if projectRoot == "" {
		return filepath.Join(os.TempDir(), logFileName)
	}

	logsDir := filepath.Join(projectRoot, "logs")
	if err := os.MkdirAll(logsDir, 0755); err != nil {
		return filepath.Join(os.TempDir(), logFileName)
	}
	return filepath.Join(logsDir, logFileName)
}

// findProjectRoot searches for the project root by looking for go.mod
func findProjectRoot() string {
	wd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := wd
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}

// Writer returns the destination for TUI logs. The alt screen owns the
// terminal, so when debug logging is off everything is discarded.
func Writer() (io.Writer, func() error) {
	if !Enabled() {
		return io.Discard, func() error { return nil }
	}

	f, err := os.OpenFile(LogPath(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return io.Discard, func() error { return nil }
	}
	return f, f.Close
}

// LogToFile writes a debug message to the debug log file
func LogToFile(message string) {
	if !Enabled() {
		return
	}

	if f, err := os.OpenFile(LogPath(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600); err == nil {
		defer func() { _ = f.Close() }()
		timestamp := time.Now().Format("2006-01-02 15:04:05.000")
		_, _ = fmt.Fprintf(f, "[%s] %s", timestamp, message)
	}
}

// LogToFilef writes a formatted debug message to the debug log file
func LogToFilef(format string, args ...interface{}) {
	LogToFile(fmt.Sprintf(format, args...))
}
