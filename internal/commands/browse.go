// Copyright (C) 2025 Ariel Frischer
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/plantview/plantview-cli/internal/logging"
	"github.com/plantview/plantview-cli/internal/tui"
	"github.com/plantview/plantview-cli/internal/tui/cache"
	tuidebug "github.com/plantview/plantview-cli/internal/tui/debug"
	"github.com/plantview/plantview-cli/internal/tui/views"
)

var (
	browseFamily      string
	browseMetricsAddr string

	// stdoutIsTerminal is replaced in tests
	stdoutIsTerminal = func() bool { return term.IsTerminal(int(os.Stdout.Fd())) }
)

var browseCmd = &cobra.Command{
	Use:     "browse [route]",
	Aliases: []string{"tui"},
	Short:   "Launch the interactive plant browser",
	Long: `Launch the interactive plant catalog browser.

Routes:
  /            the card grid (default)
  /plant/<id>  a plant detail page

The browser provides:
- A card grid that loads more pages as you scroll
- A family filter with fuzzy search (f)
- A detail page per plant with links, synonyms and the raw record (r)

Set PLANTVIEW_DEBUG_LOG=1 to write logs to logs/plantview_debug.log.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBrowse,
}

func init() {
	browseCmd.Flags().StringVar(&browseFamily, "family", "", "start with this family selected")
	browseCmd.Flags().StringVar(&browseMetricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address while browsing (e.g. :9090)")

	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	route := "/"
	if len(args) > 0 {
		route = args[0]
	}
	if _, err := tui.ParseRoute(route); err != nil {
		return err
	}

	if !stdoutIsTerminal() {
		return fmt.Errorf("browse needs an interactive terminal; use 'plantview list' for plain output")
	}

	// The TUI owns the terminal, so logs go to the debug file or nowhere
	out, closeLog := tuidebug.Writer()
	defer func() { _ = closeLog() }()
	level := logging.LogLevel(cfg.LogLevel)
	if cfg.Debug {
		level = logging.LevelDebug
	}
	logging.Setup(logging.Config{Level: level, Output: out})

	if browseMetricsAddr != "" {
		stop := serveMetrics(browseMetricsAddr, log.Logger)
		defer stop()
	}

	opts := tui.Options{
		Route: route,
		List: views.ListOptions{
			Category:        browseFamily,
			PreviewLimit:    cfg.PreviewLimit,
			PreviewMaxPages: cfg.PreviewMaxPages,
			ScrollThreshold: cfg.ScrollThreshold,
		},
		NavTTL: cache.DefaultNavigationTTL,
	}

	log.Info().Str("route", route).Str("api_url", cfg.APIURL).Msg("starting browser")
	return tui.NewApp(newClient(), opts).Run()
}

// serveMetrics exposes the default Prometheus registry on addr and
// returns a function that shuts the server down.
func serveMetrics(addr string, logger zerolog.Logger) func() {
	srv := &http.Server{
		Addr:              addr,
		Handler:           metricsHandler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error().Err(err).Str("addr", addr).Msg("metrics server failed")
		}
	}()
	logger.Info().Str("addr", addr).Msg("serving metrics")

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}
}

func metricsHandler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return mux
}
