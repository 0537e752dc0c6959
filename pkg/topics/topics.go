// Package topics holds mmv's built-in help topics. Topics are markdown
// documents embedded in the binary and rendered for the terminal.
package topics

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/arthur-debert/mmv/pkg/errors"
)

//go:embed content/*.md
var content embed.FS

// Topic represents a help topic
type Topic struct {
	Name    string
	Content string
	// Format is the file extension, ".md" for markdown topics
	Format string
}

// Title returns the first markdown heading, or the name.
func (t *Topic) Title() string {
	for _, line := range strings.Split(t.Content, "\n") {
		if strings.HasPrefix(line, "# ") {
			return strings.TrimSpace(strings.TrimPrefix(line, "# "))
		}
	}
	return t.Name
}

// Manager indexes topics found in a filesystem.
type Manager struct {
	topics   map[string]*Topic
	renderer Renderer
}

// Options configures the Manager
type Options struct {
	// Extensions is the list of file extensions to consider as topics.
	// Defaults to [".md", ".txt"].
	Extensions []string

	// Renderer formats topic content. Defaults to PlainRenderer.
	Renderer Renderer
}

// New returns a Manager over the embedded topics.
func New(opts Options) (*Manager, error) {
	return Load(content, opts)
}

// Load returns a Manager over every topic file in fsys.
func Load(fsys fs.FS, opts Options) (*Manager, error) {
	extensions := opts.Extensions
	if len(extensions) == 0 {
		extensions = []string{".md", ".txt"}
	}
	m := &Manager{topics: make(map[string]*Topic), renderer: opts.Renderer}
	if m.renderer == nil {
		m.renderer = &PlainRenderer{}
	}

	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := path.Ext(p)
		if !hasExtension(extensions, ext) {
			return nil
		}
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return err
		}
		name := strings.TrimSuffix(path.Base(p), ext)
		m.topics[name] = &Topic{Name: name, Content: string(data), Format: ext}
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to scan help topics")
	}
	return m, nil
}

func hasExtension(extensions []string, ext string) bool {
	for _, e := range extensions {
		if e == ext {
			return true
		}
	}
	return false
}

// Get retrieves a topic by name. Flag-style names (--prefix) are accepted.
func (m *Manager) Get(name string) (*Topic, bool) {
	name = strings.TrimLeft(name, "-")
	topic, ok := m.topics[name]
	return topic, ok
}

// List returns the topic names, sorted.
func (m *Manager) List() []string {
	names := make([]string, 0, len(m.topics))
	for name := range m.topics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render returns the named topic formatted by the manager's renderer.
func (m *Manager) Render(name string) (string, error) {
	topic, ok := m.Get(name)
	if !ok {
		return "", errors.Newf(errors.ErrInvalidInput, "unknown help topic %q", name).
			WithDetail("topics", m.List())
	}
	return m.renderer.Render(topic.Content, topic.Format), nil
}

// Index describes every topic on its own line: "name  Title".
func (m *Manager) Index() string {
	names := m.List()
	width := 0
	for _, name := range names {
		width = max(width, len(name))
	}
	var b strings.Builder
	for _, name := range names {
		fmt.Fprintf(&b, "  %-*s  %s\n", width, name, m.topics[name].Title())
	}
	return b.String()
}
