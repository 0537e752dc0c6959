// Package lister enumerates the files of a directory whose names match a
// wildcard pattern.
package lister

import (
	"sort"

	"github.com/arthur-debert/mmv/pkg/errors"
	"github.com/arthur-debert/mmv/pkg/logging"
	"github.com/arthur-debert/mmv/pkg/pattern"
	"github.com/arthur-debert/mmv/pkg/types"
	"github.com/rs/zerolog"
)

// Lister matches directory entries against patterns.
type Lister struct {
	fs     types.FS
	logger zerolog.Logger
}

// New creates a Lister reading through fs.
func New(fs types.FS) *Lister {
	return &Lister{
		fs:     fs,
		logger: logging.GetLogger("lister"),
	}
}

// List returns the sorted names of the regular files in dir whose name
// matches p. Directories, symlinks and other special files are skipped.
// An unreadable directory fails with ErrDirRead and an empty result with
// ErrNoMatches.
func (l *Lister) List(dir string, p *pattern.Pattern) ([]string, error) {
	entries, err := l.fs.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrDirRead, "cannot read directory %s", dir).
			WithDetail("path", dir)
	}

	var names []string
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			l.logger.Trace().Str("name", entry.Name()).Msg("Skipping non-regular entry")
			continue
		}
		if p.Matches(entry.Name()) {
			names = append(names, entry.Name())
		}
	}

	l.logger.Debug().
		Str("dir", dir).
		Str("pattern", p.Raw()).
		Int("entries", len(entries)).
		Int("matches", len(names)).
		Msg("Listed directory")

	if len(names) == 0 {
		return nil, errors.Newf(errors.ErrNoMatches, "no files in %s match %q", dir, p.Raw()).
			WithDetail("path", dir).
			WithDetail("pattern", p.Raw())
	}

	sort.Strings(names)
	return names, nil
}
