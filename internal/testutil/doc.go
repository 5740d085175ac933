// SPDX-License-Identifier: MPL-2.0

// Package testutil provides helper functions for tests that handle errors
// appropriately, reducing boilerplate and ensuring consistent error handling.
//
// Helpers cover environment variable management (MustSetenv, MustUnsetenv, SetHomeDir),
// the working directory (MustChdir) and fixture files (MustWriteFile).
package testutil
