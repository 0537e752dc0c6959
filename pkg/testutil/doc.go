// Package testutil provides fixtures for testing mmv components.
//
// Key components:
//   - TestEnvironment: a directory tree on either an in-memory or a real
//     temporary filesystem, with the types.FS the code under test uses
//   - CreateFiles / Names: seed and inspect directories on any afero.Fs
//   - Isolate: point mmv's config and state locations at temp dirs
//
// Most tests should use EnvMemoryOnly; EnvIsolated is for behavior that
// depends on the OS (symlinks, permissions, cross-directory renames).
package testutil
