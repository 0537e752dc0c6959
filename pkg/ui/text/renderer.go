// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"

	"github.com/arthur-debert/mmv/pkg/types"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) (*Renderer, error) {
	return &Renderer{output: output}, nil
}

// RenderResult renders a result or plan as one line per operation followed
// by a summary line.
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *types.Result:
		for _, op := range v.Operations {
			if _, err := fmt.Fprintln(r.output, OperationLine(op)); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintln(r.output, Summary(v))
		return err
	case *types.Plan:
		for _, op := range v.Operations {
			if _, err := fmt.Fprintf(r.output, "%s -> %s\n", op.Source, op.Destination); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintf(r.output, "%s planned\n", Files(len(v.Operations)))
		return err
	default:
		// For unknown types, just print them
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, err2 := fmt.Fprintf(r.output, "Error: %v\n", err)
	return err2
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}

// OperationLine describes one operation as "src -> dst". Statuses other
// than moved and simulated are appended in brackets.
func OperationLine(op types.Operation) string {
	line := op.Source + " -> " + op.Destination
	switch op.Status {
	case types.StatusMoved, types.StatusSimulated, types.StatusReady:
	default:
		line += " [" + string(op.Status) + "]"
	}
	if op.Error != "" {
		line += " (" + op.Error + ")"
	}
	return line
}

// Summary describes the outcome of a batch in one line.
func Summary(r *types.Result) string {
	var line string
	switch {
	case r.Failed != nil:
		line = fmt.Sprintf("stopped after %d of %d renames", r.Succeeded, r.Total())
	case r.DryRun:
		line = fmt.Sprintf("dry run: %s would be moved", Files(r.Moved()))
	default:
		line = fmt.Sprintf("%s moved", Files(r.Moved()))
	}
	if r.Unchanged > 0 {
		line += fmt.Sprintf(", %d unchanged", r.Unchanged)
	}
	return line
}

// Files renders a file count with the right plural.
func Files(n int) string {
	if n == 1 {
		return "1 file"
	}
	return fmt.Sprintf("%d files", n)
}
