// Package placeholder substitutes numbered placeholders in target templates.
//
// A placeholder is the prefix immediately followed by one or more ASCII
// digits, for example "#1" or "#12". The number is a 1-based index into the
// list of values being substituted. Everything else is copied verbatim.
package placeholder

import (
	"strconv"
	"strings"

	"github.com/arthur-debert/mmv/pkg/errors"
)

// DefaultPrefix is the placeholder prefix used by the command line tool.
const DefaultPrefix = "#"

// ref is one placeholder occurrence: template[start:end] spells it and index
// is the parsed number, or -1 when the digit run does not fit in an int.
type ref struct {
	start, end int
	index      int
}

// scan returns the placeholders of template in order of appearance.
func scan(template, prefix string) []ref {
	var refs []ref
	pos := 0
	for pos < len(template) {
		i := strings.Index(template[pos:], prefix)
		if i < 0 {
			break
		}
		start := pos + i
		digits := start + len(prefix)
		end := digits
		for end < len(template) && isDigit(template[end]) {
			end++
		}
		if end == digits {
			// No digits: the prefix is literal text. Resume one byte later
			// so a self-overlapping prefix still finds "##1" in "###1".
			pos = start + 1
			continue
		}
		n, err := strconv.Atoi(template[digits:end])
		if err != nil {
			n = -1
		}
		refs = append(refs, ref{start: start, end: end, index: n})
		pos = end
	}
	return refs
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// Resolve replaces every placeholder in template with values[i-1]. An index
// of zero or above len(values) fails with ErrPlaceholderRange; nothing is
// substituted in that case.
func Resolve(values []string, template, prefix string) (string, error) {
	refs := scan(template, prefix)
	if len(refs) == 0 {
		return template, nil
	}

	var b strings.Builder
	last := 0
	for _, r := range refs {
		if r.index < 1 || r.index > len(values) {
			return "", outOfRange(template, r, len(values))
		}
		b.WriteString(template[last:r.start])
		b.WriteString(values[r.index-1])
		last = r.end
	}
	b.WriteString(template[last:])
	return b.String(), nil
}

func outOfRange(template string, r ref, count int) *errors.MmvError {
	token := template[r.start:r.end]
	return errors.Newf(errors.ErrPlaceholderRange,
		"placeholder %s in %q is out of range: %d value(s) available", token, template, count).
		WithDetail("placeholder", token).
		WithDetail("index", r.index).
		WithDetail("captures", count).
		WithDetail("template", template)
}

// Indices returns the index of every placeholder in template, in order of
// appearance and with repetitions. Indices too large for an int are -1.
func Indices(template, prefix string) []int {
	refs := scan(template, prefix)
	out := make([]int, len(refs))
	for i, r := range refs {
		out[i] = r.index
	}
	return out
}

// Validate checks that every placeholder in template can be resolved against
// count values, without needing the values themselves.
func Validate(template, prefix string, count int) error {
	for _, r := range scan(template, prefix) {
		if r.index < 1 || r.index > count {
			return outOfRange(template, r, count)
		}
	}
	return nil
}
