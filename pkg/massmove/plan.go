package massmove

import (
	"context"
	"os"

	"github.com/arthur-debert/mmv/pkg/errors"
	"github.com/arthur-debert/mmv/pkg/pattern"
	"github.com/arthur-debert/mmv/pkg/placeholder"
	"github.com/arthur-debert/mmv/pkg/types"
)

// Plan computes every rename of req without touching any file. The batch is
// rejected as a whole when the specifications are malformed, the target
// template references a missing wildcard, nothing matches, two files would
// land on the same destination, a rename would replace a file the batch has
// yet to move, or (without Overwrite) a destination exists.
func (m *Mover) Plan(ctx context.Context, req Request) (*types.Plan, error) {
	source, err := ParseSpec(req.Source, "source")
	if err != nil {
		return nil, err
	}
	target, err := ParseSpec(req.Target, "target")
	if err != nil {
		return nil, err
	}

	p := pattern.Compile(source.Template)
	if err := placeholder.Validate(target.Template, m.rebuilder.Prefix(), p.Wildcards()); err != nil {
		return nil, err
	}

	m.logger.Debug().
		Str("sourceDir", source.Dir).
		Str("pattern", p.Raw()).
		Int("wildcards", p.Wildcards()).
		Str("targetDir", target.Dir).
		Str("template", target.Template).
		Msg("Planning mass move")

	names, err := m.lister.List(source.Dir, p)
	if err != nil {
		return nil, err
	}

	plan := &types.Plan{
		SourceDir:      source.Dir,
		SourcePattern:  source.Template,
		TargetDir:      target.Dir,
		TargetTemplate: target.Template,
		Overwrite:      req.Overwrite,
		DryRun:         req.DryRun,
		Operations:     make([]types.Operation, 0, len(names)),
	}

	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrap(err, errors.ErrCanceled, "planning canceled")
		}

		op, err := m.operationFor(name, p, source, target)
		if err != nil {
			return nil, err
		}
		plan.Operations = append(plan.Operations, op)
	}

	if err := checkCollisions(plan.Operations); err != nil {
		return nil, err
	}
	if !req.Overwrite {
		if err := m.checkExisting(plan.Operations); err != nil {
			return nil, err
		}
	}

	m.logger.Info().
		Int("operations", len(plan.Operations)).
		Bool("overwrite", req.Overwrite).
		Bool("dryRun", req.DryRun).
		Msg("Plan ready")

	return plan, nil
}

func (m *Mover) operationFor(name string, p *pattern.Pattern, source, target Spec) (types.Operation, error) {
	newName, ok, err := m.rebuilder.Rebuild(name, p, target.Template)
	if err != nil {
		return types.Operation{}, errors.Wrapf(err, errors.ErrPlaceholderRange,
			"cannot build destination for %s", name).
			WithDetail("file", name).
			WithDetail("template", target.Template)
	}
	if !ok {
		// The lister only returns matching names
		return types.Operation{}, errors.Newf(errors.ErrInternal,
			"listed file %s does not match %q", name, p.Raw())
	}
	if newName == "" || newName == "." || newName == ".." {
		return types.Operation{}, errors.Newf(errors.ErrInvalidDestination,
			"template %q gives %s the invalid name %q", target.Template, name, newName).
			WithDetail("file", name).
			WithDetail("destination", newName)
	}

	return types.Operation{
		SourceName:      name,
		Source:          source.Path(name),
		DestinationName: newName,
		Destination:     target.Path(newName),
		Status:          types.StatusReady,
	}, nil
}

// checkCollisions rejects two operations sharing a destination, and an
// operation whose destination is the source of a later one: renames run in
// order, so that file would be replaced before it is moved.
func checkCollisions(ops []types.Operation) error {
	owners := make(map[string]string, len(ops))
	order := make(map[string]int, len(ops))
	for i, op := range ops {
		order[op.Source] = i
	}
	for i, op := range ops {
		if other, taken := owners[op.Destination]; taken {
			return errors.Newf(errors.ErrDestinationCollision,
				"%s and %s would both be moved to %s", other, op.Source, op.Destination).
				WithDetail("destination", op.Destination).
				WithDetail("sources", []string{other, op.Source})
		}
		if j, pending := order[op.Destination]; pending && j > i {
			return errors.Newf(errors.ErrDestinationCollision,
				"%s would replace %s before it is moved to %s", op.Source, op.Destination, ops[j].Destination).
				WithDetail("destination", op.Destination).
				WithDetail("sources", []string{op.Source, op.Destination})
		}
		owners[op.Destination] = op.Source
	}
	return nil
}

func (m *Mover) checkExisting(ops []types.Operation) error {
	for _, op := range ops {
		if op.IsIdentity() {
			continue
		}
		_, err := m.fs.Lstat(op.Destination)
		if err == nil {
			return errors.Newf(errors.ErrDestinationExists,
				"not able to replace existing file: %s", op.Destination).
				WithDetail("source", op.Source).
				WithDetail("destination", op.Destination)
		}
		if !os.IsNotExist(err) {
			return errors.Wrapf(err, errors.ErrFileAccess, "cannot check %s", op.Destination).
				WithDetail("destination", op.Destination)
		}
	}
	return nil
}
