// Copyright (C) 2025 Ariel Frischer
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

// Environment variable constants
const (
	// EnvPrefix is the prefix viper binds every config key under
	EnvPrefix = "PLANTVIEW"

	// EnvAPIURL is the environment variable for the catalog API URL
	EnvAPIURL = "PLANTVIEW_API_URL"

	// EnvDebug is the environment variable for debug mode
	EnvDebug = "PLANTVIEW_DEBUG"

	// EnvLogLevel is the environment variable for the log level
	EnvLogLevel = "PLANTVIEW_LOG_LEVEL"

	// EnvDebugLog enables the TUI debug log; a path value selects the file
	EnvDebugLog = "PLANTVIEW_DEBUG_LOG"
)
