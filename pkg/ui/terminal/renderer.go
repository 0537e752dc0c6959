// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/mmv/pkg/types"
	"github.com/arthur-debert/mmv/pkg/ui/styles"
	"github.com/arthur-debert/mmv/pkg/ui/text"
)

const arrow = "→"

// Renderer provides rich terminal output using the styles registry
type Renderer struct {
	output io.Writer
}

// New creates a new terminal renderer
func New(w io.Writer) (*Renderer, error) {
	return &Renderer{output: w}, nil
}

// statusStyle maps an operation status to its style name.
func statusStyle(status types.OperationStatus) string {
	switch status {
	case types.StatusMoved:
		return "Moved"
	case types.StatusSimulated:
		return "Simulated"
	case types.StatusUnchanged:
		return "Unchanged"
	case types.StatusFailed:
		return "Failed"
	case types.StatusPending:
		return "Pending"
	default:
		return "Muted"
	}
}

// statusWidth pads labels so that paths line up.
const statusWidth = len("simulated")

func (r *Renderer) operationLine(op types.Operation) string {
	label := string(op.Status)
	label += strings.Repeat(" ", max(0, statusWidth-len(label)))

	var b strings.Builder
	b.WriteString(styles.Render(statusStyle(op.Status), label))
	b.WriteString("  ")
	b.WriteString(styles.Render("Source", op.Source))
	b.WriteString(" ")
	b.WriteString(styles.Render("Arrow", arrow))
	b.WriteString(" ")
	b.WriteString(styles.Render("Destination", op.Destination))
	if op.Error != "" {
		b.WriteString("  ")
		b.WriteString(styles.Render("Error", op.Error))
	}
	return b.String()
}

func summaryStyle(r *types.Result) string {
	switch {
	case r.Failed != nil:
		return "Failed"
	case r.DryRun:
		return "Simulated"
	default:
		return "Moved"
	}
}

// RenderResult renders a result or plan with rich terminal formatting
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *types.Result:
		for _, op := range v.Operations {
			if _, err := fmt.Fprintln(r.output, r.operationLine(op)); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintln(r.output, "\n"+styles.Render(summaryStyle(v), text.Summary(v)))
		return err
	case *types.Plan:
		for _, op := range v.Operations {
			if _, err := fmt.Fprintln(r.output, r.operationLine(op)); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintln(r.output, styles.Render("Info", text.Files(len(v.Operations))+" planned"))
		return err
	default:
		// For unknown types, just print them
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

// RenderError renders an error with appropriate formatting
func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintf(r.output, "%s %v\n", styles.Render("Error", "Error:"), err)
	return werr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, styles.Render("Info", msg))
	return err
}
