package confirmations

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/arthur-debert/mmv/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func planOf(n int) *types.Plan {
	plan := &types.Plan{}
	for i := 0; i < n; i++ {
		plan.Operations = append(plan.Operations, types.Operation{
			Source:      fmt.Sprintf("d/%d.txt", i),
			Destination: fmt.Sprintf("d/%d.md", i),
			Status:      types.StatusReady,
		})
	}
	return plan
}

func TestConfirmPlan(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{"  yes  \n", true},
		{"n\n", false},
		{"\n", false},
		{"", false},
		{"y", true},
		{"maybe\n", false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.input), func(t *testing.T) {
			var out bytes.Buffer
			d := NewConsoleDialog(strings.NewReader(tt.input), &out)

			ok, err := d.ConfirmPlan(planOf(2))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, ok)
			assert.Contains(t, out.String(), "  d/0.txt -> d/0.md\n")
			assert.Contains(t, out.String(), "Continue with 2 renames? [y/N]: ")
		})
	}
}

func TestConfirmEmptyPlan(t *testing.T) {
	var out bytes.Buffer
	ok, err := NewConsoleDialog(strings.NewReader(""), &out).ConfirmPlan(&types.Plan{})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, out.String())
}

func TestConfirmLongPlanIsTruncated(t *testing.T) {
	var out bytes.Buffer
	_, err := NewConsoleDialog(strings.NewReader("n\n"), &out).ConfirmPlan(planOf(maxListed + 5))
	require.NoError(t, err)

	assert.Contains(t, out.String(), "  ... and 5 more\n")
	assert.NotContains(t, out.String(), fmt.Sprintf("d/%d.txt", maxListed))
	assert.Contains(t, out.String(), fmt.Sprintf("Continue with %d renames?", maxListed+5))
}
