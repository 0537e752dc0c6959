package types

import (
	"io/fs"
)

// FS is the filesystem interface required for mmv operations
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)

	// For testing, Lstat can fall back to Stat
	Lstat(name string) (fs.FileInfo, error)

	// Directory operations
	ReadDir(name string) ([]fs.DirEntry, error)

	// Other operations
	Rename(oldpath, newpath string) error
}
