package commands

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/plantview/plantview-cli/internal/config"
)

// executeCommand runs the root command with args against a temporary
// config home and returns stdout and stderr.
func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	for _, env := range []string{config.EnvAPIURL, config.EnvDebug, config.EnvLogLevel} {
		t.Setenv(env, "")
	}
	resetFlags(rootCmd)
	cfg = nil

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

// resetFlags restores every flag of cmd and its children to its default,
// since cobra keeps parsed values between executions.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, child := range cmd.Commands() {
		resetFlags(child)
	}
}
