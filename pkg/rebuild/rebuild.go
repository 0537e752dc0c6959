// Package rebuild derives a new name from an old one: captures are extracted
// with a source pattern and substituted into a target template.
package rebuild

import (
	"github.com/arthur-debert/mmv/pkg/pattern"
	"github.com/arthur-debert/mmv/pkg/placeholder"
)

// Rebuilder rebuilds strings using a fixed placeholder prefix.
type Rebuilder struct {
	prefix string
}

// New creates a Rebuilder for the given placeholder prefix.
func New(prefix string) *Rebuilder {
	return &Rebuilder{prefix: prefix}
}

// Prefix returns the placeholder prefix.
func (r *Rebuilder) Prefix() string {
	return r.prefix
}

// Rebuild returns target with its placeholders bound to the captures of
// candidate under source. ok is false when candidate does not match source.
// Placeholder range errors are returned unchanged.
func (r *Rebuilder) Rebuild(candidate string, source *pattern.Pattern, target string) (string, bool, error) {
	captures, ok := source.Extract(candidate)
	if !ok {
		return "", false, nil
	}
	out, err := placeholder.Resolve(captures, target, r.prefix)
	if err != nil {
		return "", true, err
	}
	return out, true, nil
}

var defaultRebuilder = New(placeholder.DefaultPrefix)

// Rebuild is Rebuilder.Rebuild with the default "#" prefix.
func Rebuild(candidate string, source *pattern.Pattern, target string) (string, bool, error) {
	return defaultRebuilder.Rebuild(candidate, source, target)
}
