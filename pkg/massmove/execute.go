package massmove

import (
	"context"

	"github.com/arthur-debert/mmv/pkg/errors"
	"github.com/arthur-debert/mmv/pkg/types"
)

// Execute applies plan in order. It stops at the first failed rename and
// reports how many renames had succeeded; those are not rolled back.
// Operations whose destination is their own source are left alone and count
// as successes. In dry-run mode nothing is renamed.
func (m *Mover) Execute(ctx context.Context, plan *types.Plan) (*types.Result, error) {
	result := &types.Result{
		DryRun:     plan.DryRun,
		Operations: make([]types.Operation, len(plan.Operations)),
	}
	for i, op := range plan.Operations {
		op.Status = types.StatusPending
		result.Operations[i] = op
	}

	for i := range result.Operations {
		op := &result.Operations[i]

		if err := ctx.Err(); err != nil {
			return result, errors.Wrapf(err, errors.ErrCanceled,
				"canceled after %d of %d renames", result.Succeeded, result.Total()).
				WithDetail("succeeded", result.Succeeded)
		}

		switch {
		case op.IsIdentity():
			op.Status = types.StatusUnchanged
			result.Unchanged++
			m.logger.Debug().Str("path", op.Source).Msg("Source and destination are the same, skipping")
		case plan.DryRun:
			op.Status = types.StatusSimulated
			m.logger.Info().Str("source", op.Source).Str("destination", op.Destination).Msg("Would move")
		default:
			if err := m.fs.Rename(op.Source, op.Destination); err != nil {
				op.Status = types.StatusFailed
				op.Error = err.Error()
				failed := *op
				result.Failed = &failed

				m.logger.Error().
					Err(err).
					Str("source", op.Source).
					Str("destination", op.Destination).
					Int("succeeded", result.Succeeded).
					Msg("Rename failed")

				return result, errors.Wrapf(err, errors.ErrRenameFailed,
					"couldn't move %s to %s (%d of %d renames succeeded)",
					op.Source, op.Destination, result.Succeeded, result.Total()).
					WithDetail("source", op.Source).
					WithDetail("destination", op.Destination).
					WithDetail("succeeded", result.Succeeded)
			}
			op.Status = types.StatusMoved
			m.logger.Info().Str("source", op.Source).Str("destination", op.Destination).Msg("Moved")
		}
		result.Succeeded++
	}

	return result, nil
}
