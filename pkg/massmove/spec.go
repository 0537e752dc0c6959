package massmove

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/mmv/pkg/errors"
)

// Spec is a parsed <directory>/<template> argument.
type Spec struct {
	Dir      string
	Template string
}

// String joins the spec back into its argument form.
func (s Spec) String() string {
	if s.Dir == "/" {
		return "/" + s.Template
	}
	return s.Dir + "/" + s.Template
}

// Path joins name onto the spec directory.
func (s Spec) Path(name string) string {
	return filepath.Join(s.Dir, name)
}

// separators that may split a spec; the OS separator is added on Windows.
var separators = func() string {
	if filepath.Separator != '/' {
		return "/" + string(filepath.Separator)
	}
	return "/"
}()

// ParseSpec splits raw at its last path separator. role names the argument
// in the error message ("source" or "target"). A spec without a separator is
// rejected; an empty directory part means the filesystem root.
func ParseSpec(raw, role string) (Spec, error) {
	i := strings.LastIndexAny(raw, separators)
	if i < 0 {
		return Spec{}, errors.Newf(errors.ErrInvalidSpec,
			"incorrect %s %q: expected <directory>/<template>", role, raw).
			WithDetail("role", role).
			WithDetail("spec", raw)
	}

	dir := raw[:i]
	if dir == "" {
		dir = "/"
	}
	return Spec{Dir: dir, Template: raw[i+1:]}, nil
}
