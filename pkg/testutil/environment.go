package testutil

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/mmv/pkg/filesystem"
	"github.com/arthur-debert/mmv/pkg/types"
	"github.com/spf13/afero"
)

// EnvType defines the type of test environment
type EnvType int

const (
	EnvMemoryOnly EnvType = iota // Pure in-memory, no real filesystem
	EnvIsolated                  // Real filesystem in temp directory
)

// memoryRoot is the root of memory environments.
const memoryRoot = "/work"

// TestEnvironment is a scratch directory tree and the filesystem views on it.
type TestEnvironment struct {
	// Root is the directory every relative path is resolved against
	Root string
	// FS is handed to the code under test
	FS types.FS
	// Backing is used to seed and inspect the tree
	Backing afero.Fs

	Type EnvType
	t    *testing.T
}

// NewTestEnvironment creates a new test environment
func NewTestEnvironment(t *testing.T, envType EnvType) *TestEnvironment {
	t.Helper()

	env := &TestEnvironment{t: t, Type: envType}
	switch envType {
	case EnvIsolated:
		env.Root = t.TempDir()
		env.Backing = afero.NewOsFs()
		env.FS = filesystem.NewOS()
	default:
		env.Root = memoryRoot
		env.FS, env.Backing = filesystem.NewMemory()
		if err := env.Backing.MkdirAll(env.Root, 0755); err != nil {
			t.Fatalf("Failed to create %s: %v", env.Root, err)
		}
	}
	return env
}

// Path joins elem under the environment root.
func (e *TestEnvironment) Path(elem ...string) string {
	return filepath.Join(append([]string{e.Root}, elem...)...)
}

// CreateFiles creates names in the root-relative directory dir.
func (e *TestEnvironment) CreateFiles(dir string, names ...string) {
	e.t.Helper()
	CreateFiles(e.t, e.Backing, e.Path(dir), names...)
}

// Names lists the root-relative directory dir.
func (e *TestEnvironment) Names(dir string) []string {
	e.t.Helper()
	return Names(e.t, e.Backing, e.Path(dir))
}

// ReadFile reads a root-relative file.
func (e *TestEnvironment) ReadFile(name string) string {
	e.t.Helper()
	return ReadFile(e.t, e.Backing, e.Path(name))
}
