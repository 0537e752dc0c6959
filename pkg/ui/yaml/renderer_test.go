package yaml_test

import (
	"bytes"
	"testing"

	"github.com/arthur-debert/mmv/pkg/errors"
	"github.com/arthur-debert/mmv/pkg/types"
	mmvyaml "github.com/arthur-debert/mmv/pkg/ui/yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestRenderResult(t *testing.T) {
	var buf bytes.Buffer
	r, err := mmvyaml.New(&buf)
	require.NoError(t, err)

	result := &types.Result{
		DryRun: true,
		Operations: []types.Operation{
			{Source: "d/a.txt", Destination: "d/a.md", Status: types.StatusSimulated},
		},
		Succeeded: 1,
	}
	require.NoError(t, r.RenderResult(result))

	var decoded types.Result
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, *result, decoded)
	assert.Contains(t, buf.String(), "dryRun: true")
}

func TestRenderError(t *testing.T) {
	var buf bytes.Buffer
	r, _ := mmvyaml.New(&buf)

	require.NoError(t, r.RenderError(errors.New(errors.ErrNoMatches, "nothing matched")))
	assert.Contains(t, buf.String(), "code: NO_MATCHES")
}

func TestRenderMessage(t *testing.T) {
	var buf bytes.Buffer
	r, _ := mmvyaml.New(&buf)

	require.NoError(t, r.RenderMessage("done"))
	assert.Equal(t, "message: done\n", buf.String())
}
