//go:build integration
// +build integration

package integration

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/plantview/plantview-cli/internal/testutil"
)

var (
	binaryPath string
	buildOnce  sync.Once
	buildErr   error
)

// BuildBinary builds the CLI binary once for all tests
func BuildBinary(t *testing.T) string {
	t.Helper()

	buildOnce.Do(func() {
		binaryPath = filepath.Join(os.TempDir(), "plantview-test")
		if os.Getenv("GOOS") == "windows" {
			binaryPath += ".exe"
		}

		cmd := exec.Command("go", "build", "-o", binaryPath, "../../cmd/plantview")
		output, err := cmd.CombinedOutput()
		if err != nil {
			buildErr = fmt.Errorf("failed to build binary: %v\nOutput: %s", err, output)
		}
	})

	if buildErr != nil {
		t.Fatalf("Failed to build binary: %v", buildErr)
	}

	return binaryPath
}

// CommandResult represents the result of running a command
type CommandResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
	Duration time.Duration
	Error    error
}

// RunCommandWithEnv executes the CLI with extra environment variables
func RunCommandWithEnv(t *testing.T, env map[string]string, args ...string) *CommandResult {
	t.Helper()

	binary := BuildBinary(t)
	cmd := exec.Command(binary, args...)

	cmd.Env = os.Environ()
	for k, v := range env {
		cmd.Env = append(cmd.Env, fmt.Sprintf("%s=%s", k, v))
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := runWithTimeout(cmd, 30*time.Second)
	duration := time.Since(start)

	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			// Timeout or other error
			exitCode = -1
		}
	}

	return &CommandResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: exitCode,
		Duration: duration,
		Error:    err,
	}
}

func runWithTimeout(cmd *exec.Cmd, timeout time.Duration) error {
	if err := cmd.Start(); err != nil {
		return err
	}

	done := make(chan error, 1)
	go func() {
		done <- cmd.Wait()
	}()

	select {
	case <-time.After(timeout):
		_ = cmd.Process.Kill()
		return fmt.Errorf("command timed out after %v", timeout)
	case err := <-done:
		return err
	}
}

// SetupTestEnv isolates the config home and starts a mock catalog
func SetupTestEnv(t *testing.T, catalog *testutil.MockCatalog) map[string]string {
	t.Helper()

	home := t.TempDir()
	env := map[string]string{
		"HOME":            home,
		"XDG_CONFIG_HOME": filepath.Join(home, ".config"),
		"NO_COLOR":        "true",
	}
	if catalog != nil {
		env["PLANTVIEW_API_URL"] = catalog.URL()
	}
	return env
}
