// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable errors for the command line.
//
// An ActionableError names the failed operation, the resource involved and
// remediation steps, and may link a Markdown guidance page from the issue catalog.
// Guidance pages are rendered for the terminal with glamour.
package issue
