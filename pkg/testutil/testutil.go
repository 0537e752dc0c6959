package testutil

import (
	"path/filepath"
	"sort"
	"testing"

	"github.com/arthur-debert/mmv/pkg/paths"
	"github.com/spf13/afero"
)

// DefaultContent is written to files created without explicit content.
const DefaultContent = "hihihihi"

// CreateFile writes content to dir/name on fs, creating dir if needed.
// It fails the test if the file cannot be created.
func CreateFile(t testing.TB, fs afero.Fs, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create parent directories for %s: %v", path, err)
	}
	if err := afero.WriteFile(fs, path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create file %s: %v", path, err)
	}
	return path
}

// CreateFiles creates every name in dir with DefaultContent.
func CreateFiles(t testing.TB, fs afero.Fs, dir string, names ...string) {
	t.Helper()
	if err := fs.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("Failed to create directory %s: %v", dir, err)
	}
	for _, name := range names {
		CreateFile(t, fs, dir, name, DefaultContent)
	}
}

// Names returns the sorted entry names of dir.
func Names(t testing.TB, fs afero.Fs, dir string) []string {
	t.Helper()

	infos, err := afero.ReadDir(fs, dir)
	if err != nil {
		t.Fatalf("Failed to read directory %s: %v", dir, err)
	}
	names := make([]string, 0, len(infos))
	for _, info := range infos {
		names = append(names, info.Name())
	}
	sort.Strings(names)
	return names
}

// ReadFile returns the content of path on fs.
func ReadFile(t testing.TB, fs afero.Fs, path string) string {
	t.Helper()

	content, err := afero.ReadFile(fs, path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}

// Isolate points the config file and state directory at fresh temp
// locations so tests never read the user's configuration or write to the
// user's log file. The config file it returns does not exist yet.
func Isolate(t *testing.T) (configFile string) {
	t.Helper()

	configFile = filepath.Join(t.TempDir(), paths.ConfigFileName)
	t.Setenv(paths.EnvConfigFile, configFile)
	t.Setenv(paths.EnvStateDir, t.TempDir())
	return configFile
}
