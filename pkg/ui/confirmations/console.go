// Package confirmations asks the user to approve a plan before it runs.
package confirmations

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/mmv/pkg/types"
	"github.com/arthur-debert/mmv/pkg/ui/text"
)

// maxListed is how many operations are shown before summarizing the rest.
const maxListed = 20

// ConsoleDialog asks for confirmation on a line-oriented console.
type ConsoleDialog struct {
	in  *bufio.Reader
	out io.Writer
}

// NewConsoleDialog creates a dialog reading answers from in and writing
// prompts to out.
func NewConsoleDialog(in io.Reader, out io.Writer) *ConsoleDialog {
	return &ConsoleDialog{in: bufio.NewReader(in), out: out}
}

// ConfirmPlan lists the renames of plan and asks whether to continue.
// Anything but "y" or "yes" declines, end of input included.
func (d *ConsoleDialog) ConfirmPlan(plan *types.Plan) (bool, error) {
	if len(plan.Operations) == 0 {
		return true, nil
	}

	fmt.Fprintln(d.out, "The following files will be renamed:")
	for i, op := range plan.Operations {
		if i == maxListed {
			fmt.Fprintf(d.out, "  ... and %d more\n", len(plan.Operations)-maxListed)
			break
		}
		fmt.Fprintf(d.out, "  %s\n", text.OperationLine(op))
	}

	fmt.Fprintf(d.out, "Continue with %s? [y/N]: ", renames(len(plan.Operations)))
	answer, err := d.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("failed to read user input: %w", err)
	}
	if err == io.EOF {
		fmt.Fprintln(d.out)
	}

	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes", nil
}

func renames(n int) string {
	if n == 1 {
		return "1 rename"
	}
	return fmt.Sprintf("%d renames", n)
}
