package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/plantview/plantview-cli/internal/api"
	"github.com/plantview/plantview-cli/internal/config"
	"github.com/plantview/plantview-cli/internal/errors"
	"github.com/plantview/plantview-cli/internal/logging"
	"github.com/plantview/plantview-cli/pkg/version"
)

var (
	cfg      *config.Config
	cfgFile  string
	debug    bool
	apiURL   string
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "plantview",
	Short: "plantview - browse a plant catalog from the terminal",
	Long: `plantview browses a paginated plant catalog API. Use 'plantview browse'
for the interactive card grid with family filtering and infinite scroll,
or the list and categories commands for plain output.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		loaded, err := config.Load(cfgFile)
		if err != nil {
			// config commands must still run to repair a broken file
			if !isConfigCommand(cmd) {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s, using defaults\n", errors.FormatUserError(err))
			loaded = config.Default()
		}
		cfg = loaded

		if err := applyFlagOverrides(cmd); err != nil {
			return err
		}

		level := logging.LogLevel(cfg.LogLevel)
		if cfg.Debug {
			level = logging.LevelDebug
		}
		logging.Setup(logging.Config{
			Level:  level,
			Pretty: true,
			Output: cmd.ErrOrStderr(),
		})
		log.Debug().Str("api_url", cfg.APIURL).Str("config", cfgFile).Msg("configuration loaded")

		return nil
	},
}

// applyFlagOverrides layers explicitly set persistent flags over the loaded config.
func applyFlagOverrides(cmd *cobra.Command) error {
	flags := cmd.Flags()
	if flags.Changed("api-url") {
		if err := cfg.Set("api_url", apiURL); err != nil {
			return err
		}
	}
	if flags.Changed("log-level") {
		if err := cfg.Set("log_level", logLevel); err != nil {
			return err
		}
	}
	if debug {
		cfg.Debug = true
	}
	return nil
}

func isConfigCommand(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c == configCmd {
			return true
		}
	}
	return false
}

func newClient() *api.Client {
	return api.NewClient(cfg.APIURL, cfg.Timeout, cfg.Debug)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		reportError(os.Stderr, err)
		os.Exit(1)
	}
}

// reportError prints err the way every command failure is shown to the user
func reportError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %s\n", errors.FormatUserError(err))

	if errors.IsNetworkError(err) {
		fmt.Fprintf(w, "\nHint: Check that the catalog API is running at the configured api-url\n")
	} else if errors.IsServerError(err) {
		fmt.Fprintf(w, "\nHint: The catalog API is having trouble, try again later\n")
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/plantview/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "catalog API base URL (overrides config)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version.GetBuildInfo())
	},
}
