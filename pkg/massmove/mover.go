package massmove

import (
	"context"

	"github.com/arthur-debert/mmv/pkg/lister"
	"github.com/arthur-debert/mmv/pkg/logging"
	"github.com/arthur-debert/mmv/pkg/placeholder"
	"github.com/arthur-debert/mmv/pkg/rebuild"
	"github.com/arthur-debert/mmv/pkg/types"
	"github.com/rs/zerolog"
)

// Options configures a Mover.
type Options struct {
	// Prefix is the placeholder prefix; "#" when empty
	Prefix string
}

// Request describes one batch.
type Request struct {
	// Source is <directory>/<wildcard template>
	Source string
	// Target is <directory>/<placeholder template>
	Target string
	// Overwrite allows destinations that already exist
	Overwrite bool
	// DryRun plans and reports without renaming
	DryRun bool
}

// Mover plans and executes batch renames on a filesystem.
type Mover struct {
	fs        types.FS
	lister    *lister.Lister
	rebuilder *rebuild.Rebuilder
	logger    zerolog.Logger
}

// New creates a Mover working on fs.
func New(fs types.FS, opts Options) *Mover {
	prefix := opts.Prefix
	if prefix == "" {
		prefix = placeholder.DefaultPrefix
	}
	return &Mover{
		fs:        fs,
		lister:    lister.New(fs),
		rebuilder: rebuild.New(prefix),
		logger:    logging.GetLogger("massmove"),
	}
}

// Run plans req and executes the plan. When planning fails the result is
// nil; when execution fails the partial result is returned with the error.
func (m *Mover) Run(ctx context.Context, req Request) (*types.Result, error) {
	done := logging.LogOperationStart(m.logger, "mass move")
	defer done()

	plan, err := m.Plan(ctx, req)
	if err != nil {
		return nil, err
	}
	return m.Execute(ctx, plan)
}
