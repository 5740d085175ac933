// SPDX-License-Identifier: MPL-2.0

// Package config handles application configuration using Viper with CUE as the file format.
//
// Configuration is loaded from ~/.config/gs1kit/config.cue (or XDG equivalent on Linux,
// ~/Library/Application Support/gs1kit/config.cue on macOS, %APPDATA%\gs1kit\config.cue
// on Windows), falling back to ./config.cue. GS1KIT_* environment variables override file
// values, e.g. GS1KIT_COMPANY_PREFIX or GS1KIT_OUTPUT_FORMAT.
//
// Files are validated against the embedded config_schema.cue; the decoded Config is
// validated again in Go because environment overrides bypass the schema.
package config
