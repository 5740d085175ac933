// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for gs1kit.
//
// This package implements the Cobra command hierarchy of the gs1kit CLI: GTIN
// creation and validation, GS1 element string parsing and encoding, batch label
// files and configuration management. Results are printed as text, JSON, YAML or
// TOML; failures are reported as actionable errors with Markdown guidance.
package cmd
